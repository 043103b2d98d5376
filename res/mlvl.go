// This file implements the MLVL (level meta) format: per-world area
// roster, per-area dependency lists, layer-flag records and names, and
// the memory-relay table. Invariants (d)/(e)/(f) are documented here but
// enforced by patcher.AreaEditor, which is the only supported mutation
// path (§4.3).

package res

import (
	"fmt"

	"github.com/tallonforge/primeforge/res/core"
)

// MlvlArea is one area entry in a level's roster.
type MlvlArea struct {
	MreaID  core.AssetId
	NameSTRG core.AssetId

	// LayerFlags has one bit per scripting layer (1 = active) plus the
	// layer count, per invariant (d): LayerCount == len(DependencyLists)-1.
	LayerFlags uint64
	LayerCount uint32

	// LayerNames has LayerCount entries (invariant (e)).
	LayerNames []string

	// DependencyLists has LayerCount+1 entries: one per layer plus a
	// trailing shared list (invariant (d)).
	DependencyLists [][]core.ResourceKey

	AreaID [16]byte // build-stable area UUID, opaque passthrough
}

// MemoryRelay is one cross-area relay wiring entry.
type MemoryRelay struct {
	SenderID, ReceiverID uint32
	TargetID             uint32
	Message              uint16
}

// Mlvl is a level-meta resource: §3's "Level-Meta (MLVL)".
type Mlvl struct {
	WorldNameSTRG core.AssetId
	Areas         []*MlvlArea
	MemoryRelays  []MemoryRelay
}

func (m *Mlvl) Kind() core.Kind { return core.KindMLVL }

func parseMlvl(raw []byte) (Payload, error) {
	sr := newSliceReader(raw)
	_magic := sr.getUint32()
	_version := sr.getUint32()
	worldName := core.AssetId(sr.getUint32())
	_worldSavw := sr.getUint32()
	_defaultSkyModel := sr.getUint32()

	numAreas := sr.getUint32()
	areas := make([]*MlvlArea, numAreas)
	for i := range areas {
		a := &MlvlArea{}
		copy(a.AreaID[:], sr.readSlice(16))
		_transform := sr.readSlice(12 * 4) // 3x4 area transform, passthrough
		_bbox := sr.readSlice(6 * 4)
		a.MreaID = core.AssetId(sr.getUint32())
		a.NameSTRG = core.AssetId(sr.getUint32())

		numDeps := sr.getUint32()
		a.DependencyLists = make([][]core.ResourceKey, numDeps)
		for j := range a.DependencyLists {
			n := sr.getUint32()
			list := make([]core.ResourceKey, n)
			for k := range list {
				kind := core.KindOf(sr.getString(4))
				id := core.AssetId(sr.getUint32())
				list[k] = core.ResourceKey{ID: id, Kind: kind}
			}
			a.DependencyLists[j] = list
		}
		a.LayerCount = numDeps - 1
		if a.LayerCount > 0 {
			numWords := (a.LayerCount + 31) / 32
			var flags uint64
			for w := uint32(0); w < numWords; w++ {
				flags |= uint64(sr.getUint32()) << (32 * w)
			}
			a.LayerFlags = flags
			a.LayerNames = make([]string, a.LayerCount)
			for j := range a.LayerNames {
				n := sr.getUint32()
				a.LayerNames[j] = sr.getString(n)
			}
		}
		_ = _transform
		_ = _bbox
		areas[i] = a
	}

	numRelays := sr.getUint32()
	relays := make([]MemoryRelay, numRelays)
	for i := range relays {
		relays[i] = MemoryRelay{
			SenderID:   sr.getUint32(),
			ReceiverID: sr.getUint32(),
			TargetID:   sr.getUint32(),
			Message:    sr.getUint16(),
		}
		_ = sr.getUint16() // active flag, ignored
	}

	_ = _magic
	_ = _version
	_ = _worldSavw
	_ = _defaultSkyModel
	return &Mlvl{WorldNameSTRG: worldName, Areas: areas, MemoryRelays: relays}, nil
}

func serializeMlvl(p Payload) ([]byte, error) {
	m, ok := p.(*Mlvl)
	if !ok {
		return nil, fmt.Errorf("res: serializeMlvl: wrong payload type %T", p)
	}
	var sw sliceWriter
	sw.putUint32(0xDEAFBABE)
	sw.putUint32(0x11)
	sw.putUint32(uint32(m.WorldNameSTRG))
	sw.putUint32(0xFFFFFFFF)
	sw.putUint32(0xFFFFFFFF)

	sw.putUint32(uint32(len(m.Areas)))
	for _, a := range m.Areas {
		sw.putBytes(a.AreaID[:])
		sw.b = append(sw.b, make([]byte, 12*4+6*4)...) // transform + bbox, opaque
		sw.putUint32(uint32(a.MreaID))
		sw.putUint32(uint32(a.NameSTRG))

		sw.putUint32(uint32(len(a.DependencyLists)))
		for _, list := range a.DependencyLists {
			sw.putUint32(uint32(len(list)))
			for _, dep := range list {
				sw.putBytes(dep.Kind[:])
				sw.putUint32(uint32(dep.ID))
			}
		}
		if a.LayerCount > 0 {
			numWords := (a.LayerCount + 31) / 32
			for w := uint32(0); w < numWords; w++ {
				sw.putUint32(uint32(a.LayerFlags >> (32 * w)))
			}
			for _, name := range a.LayerNames {
				sw.putUint32(uint32(len(name)))
				sw.b = append(sw.b, name...)
			}
		}
	}

	sw.putUint32(uint32(len(m.MemoryRelays)))
	for _, r := range m.MemoryRelays {
		sw.putUint32(r.SenderID)
		sw.putUint32(r.ReceiverID)
		sw.putUint32(r.TargetID)
		sw.putUint16(r.Message)
		sw.putUint16(1)
	}
	return sw.b, nil
}

func init() {
	registerFormat(&format{Kind: core.KindMLVL, Parse: parseMlvl, Serialize: serializeMlvl})
}
