// This file implements CMDL (model) parsing, limited to the bounding
// box the kernel's consumers actually need (pickup recentering, §4.7):
// per §4.1, CMDL is "parse-only for bbox".

package res

import (
	"fmt"

	"github.com/tallonforge/primeforge/res/core"
)

// Cmdl is a model resource; Mesh holds the section bytes this kernel
// never interprets beyond the leading bounding box.
type Cmdl struct {
	Box  core.AABB
	Mesh []byte
}

func (c *Cmdl) Kind() core.Kind { return core.KindCMDL }

func parseCmdl(raw []byte) (Payload, error) {
	sr := newSliceReader(raw)
	_magic := sr.getUint32()
	_version := sr.getUint32()
	_flags := sr.getUint32()
	box := core.AABB{
		Min: core.Point3{X: sr.getFloat32(), Y: sr.getFloat32(), Z: sr.getFloat32()},
		Max: core.Point3{X: sr.getFloat32(), Y: sr.getFloat32(), Z: sr.getFloat32()},
	}
	mesh := append([]byte(nil), sr.remaining()...)
	_ = _magic
	_ = _version
	_ = _flags
	return &Cmdl{Box: box, Mesh: mesh}, nil
}

func serializeCmdl(p Payload) ([]byte, error) {
	c, ok := p.(*Cmdl)
	if !ok {
		return nil, fmt.Errorf("res: serializeCmdl: wrong payload type %T", p)
	}
	var sw sliceWriter
	sw.putUint32(0xDEADBABE)
	sw.putUint32(2)
	sw.putUint32(0)
	for _, v := range []float32{c.Box.Min.X, c.Box.Min.Y, c.Box.Min.Z, c.Box.Max.X, c.Box.Max.Y, c.Box.Max.Z} {
		sw.putFloat32(v)
	}
	sw.putBytes(c.Mesh)
	return sw.b, nil
}

func init() {
	registerFormat(&format{Kind: core.KindCMDL, Parse: parseCmdl, Serialize: serializeCmdl})
}
