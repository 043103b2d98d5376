// This file implements the scripting section (SCLY): a layered list of
// SclyObject{instance_id, connections, property_data}, where property_data
// is a tagged union over ~80 object types. Only the object types named in
// §3 get concrete Go types here; every other type code round-trips through
// Unknown, preserving its raw bytes exactly as §9 "Polymorphic property
// data" requires.

package res

import (
	"fmt"

	"github.com/tallonforge/primeforge/res/core"
)

// Connection is an inter-object scripting wire: on STATE, send MESSAGE to
// TargetObjectID.
type Connection struct {
	State, Message uint32
	TargetObjectID uint32
}

// PropertyData is the tagged-union payload every SclyObject carries.
// Concrete variants below implement it; Unknown is the fallback.
type PropertyData interface {
	TypeCode() uint32
}

// Unknown preserves an unrecognized property-data type's raw bytes
// verbatim for round-trip, per the Laziness/Polymorphic-data invariant.
type Unknown struct {
	Code uint32
	Raw  []byte
}

func (u *Unknown) TypeCode() uint32 { return u.Code }

// SclyObject is one scripting object within a layer.
type SclyObject struct {
	InstanceID  uint32
	Connections []Connection
	Data        PropertyData
}

// LayerIndex extracts the layer index encoded in the top six bits of
// InstanceID (InstanceID >> 26), per invariant (g).
func (o *SclyObject) LayerIndex() uint32 {
	return o.InstanceID >> 26
}

// SclyLayer is one scripting layer's object list.
type SclyLayer struct {
	Objects []*SclyObject
}

// Scly is the scripting section payload embedded within an MREA.
type Scly struct {
	Layers []SclyLayer
}

func (s *Scly) Kind() core.Kind { return core.KindOf("SCLY") }

// propertyParser decodes a single object type's property-data bytes.
type propertyParser func(raw []byte) (PropertyData, error)

// propertySerializer encodes a property-data value back to bytes.
type propertySerializer func(p PropertyData) ([]byte, error)

type propertyFormat struct {
	parse     propertyParser
	serialize propertySerializer
}

var propertyRegistry = map[uint32]propertyFormat{}

// RegisterPropertyType installs a concrete property-data codec for a
// scripting object type code. Called from each object-type's init().
func RegisterPropertyType(code uint32, parse propertyParser, serialize propertySerializer) {
	propertyRegistry[code] = propertyFormat{parse, serialize}
}

func parsePropertyData(code uint32, raw []byte) (PropertyData, error) {
	if f, ok := propertyRegistry[code]; ok {
		return f.parse(raw)
	}
	return &Unknown{Code: code, Raw: raw}, nil
}

func serializePropertyData(p PropertyData) ([]byte, error) {
	if u, ok := p.(*Unknown); ok {
		return u.Raw, nil
	}
	f, ok := propertyRegistry[p.TypeCode()]
	if !ok {
		return nil, fmt.Errorf("res: serializePropertyData: no codec for type %#x", p.TypeCode())
	}
	return f.serialize(p)
}

func parseScly(raw []byte) (Payload, error) {
	sr := newSliceReader(raw)
	_magic := sr.getByte() // 0x01
	numLayers := sr.getByte()
	_ = sr.readSlice(2) // padding

	layerSizes := make([]uint32, numLayers)
	for i := range layerSizes {
		layerSizes[i] = sr.getUint32()
	}
	sr.padTo4()

	layers := make([]SclyLayer, numLayers)
	for i := range layers {
		start := sr.pos
		layers[i] = parseSclyLayer(sr)
		sr.pos = start + layerSizes[i]
		sr.padTo4()
	}
	_ = _magic
	return &Scly{Layers: layers}, nil
}

func parseSclyLayer(sr *sliceReader) SclyLayer {
	numObjects := sr.getUint32()
	objs := make([]*SclyObject, numObjects)
	for i := range objs {
		typeCode := sr.getUint32()
		objSize := sr.getUint32()
		objStart := sr.pos
		instanceID := sr.getUint32()
		numConns := sr.getUint32()
		conns := make([]Connection, numConns)
		for j := range conns {
			conns[j] = Connection{
				State:          sr.getUint32(),
				Message:        sr.getUint32(),
				TargetObjectID: sr.getUint32(),
			}
		}
		propLen := objStart + objSize - sr.pos
		propBytes := sr.readSlice(propLen)
		data, err := parsePropertyData(typeCode, propBytes)
		if err != nil {
			data = &Unknown{Code: typeCode, Raw: propBytes}
		}
		objs[i] = &SclyObject{InstanceID: instanceID, Connections: conns, Data: data}
	}
	return SclyLayer{Objects: objs}
}

func serializeScly(p Payload) ([]byte, error) {
	s, ok := p.(*Scly)
	if !ok {
		return nil, fmt.Errorf("res: serializeScly: wrong payload type %T", p)
	}
	layerBodies := make([][]byte, len(s.Layers))
	for i, layer := range s.Layers {
		var lw sliceWriter
		lw.putUint32(uint32(len(layer.Objects)))
		for _, obj := range layer.Objects {
			propBytes, err := serializePropertyData(obj.Data)
			if err != nil {
				return nil, err
			}
			var ow sliceWriter
			ow.putUint32(obj.InstanceID)
			ow.putUint32(uint32(len(obj.Connections)))
			for _, c := range obj.Connections {
				ow.putUint32(c.State)
				ow.putUint32(c.Message)
				ow.putUint32(c.TargetObjectID)
			}
			ow.putBytes(propBytes)

			lw.putUint32(obj.Data.TypeCode())
			lw.putUint32(uint32(len(ow.b)))
			lw.putBytes(ow.b)
		}
		lw.padTo(4)
		layerBodies[i] = lw.b
	}

	var sw sliceWriter
	sw.putByte(1)
	sw.putByte(byte(len(s.Layers)))
	sw.putBytes([]byte{0, 0})
	for _, body := range layerBodies {
		sw.putUint32(uint32(len(body)))
	}
	sw.padTo(4)
	for _, body := range layerBodies {
		sw.putBytes(body)
	}
	return sw.b, nil
}

func (sr *sliceReader) padTo4() {
	for sr.pos%4 != 0 {
		sr.pos++
	}
}

func init() {
	registerFormat(&format{Kind: core.KindOf("SCLY"), Parse: parseScly, Serialize: serializeScly})
}
