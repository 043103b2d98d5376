// This file implements the MREA (area) format: a binary-packed container
// of geometry sections the kernel never interprets, plus the scripting
// section identified by header.SclySectionIdx (invariant (i)).

package res

import (
	"fmt"

	"github.com/tallonforge/primeforge/res/core"
)

// Mrea is an area resource. Every non-scripting section is kept as an
// opaque blob; only the scripting section is promoted to a typed Scly.
type Mrea struct {
	Version uint32

	// SclySectionIdx is this area's index into Sections, per invariant (i).
	SclySectionIdx uint32

	// Sections holds every geometry/scripting sub-section in on-disk
	// order. Sections[SclySectionIdx] is nil; the scripting data lives in
	// Scly instead, kept as a typed value so edits serialize correctly.
	Sections [][]byte
	Scly     *Scly

	// sectionSizes holds the section sizes as read; serializeMrea
	// recomputes the size table from the section bodies and does not
	// consult this field.
	sectionSizes []uint32
}

func (m *Mrea) Kind() core.Kind { return core.KindMREA }

func parseMrea(raw []byte) (Payload, error) {
	sr := newSliceReader(raw)
	_magic := sr.getUint32() // 0xDEADBEEF
	version := sr.getUint32()
	_worldTransform := sr.readSlice(12 * 4)
	numSections := sr.getUint32()
	sclyIdx := sr.getUint32()
	sizes := make([]uint32, numSections)
	for i := range sizes {
		sizes[i] = sr.getUint32()
	}
	sr.padTo32()

	sections := make([][]byte, numSections)
	var scly *Scly
	for i, size := range sizes {
		data := sr.readSlice(size)
		sr.padTo32()
		if uint32(i) == sclyIdx {
			payload, err := parseScly(data)
			if err != nil {
				return nil, fmt.Errorf("res: parseMrea: scripting section: %w", err)
			}
			scly = payload.(*Scly)
			sections[i] = nil
			continue
		}
		sections[i] = data
	}

	_ = _magic
	_ = _worldTransform
	return &Mrea{Version: version, SclySectionIdx: sclyIdx, Sections: sections, Scly: scly, sectionSizes: sizes}, nil
}

func serializeMrea(p Payload) ([]byte, error) {
	m, ok := p.(*Mrea)
	if !ok {
		return nil, fmt.Errorf("res: serializeMrea: wrong payload type %T", p)
	}
	sclyBytes, err := serializeScly(m.Scly)
	if err != nil {
		return nil, err
	}

	bodies := make([][]byte, len(m.Sections))
	for i, s := range m.Sections {
		if uint32(i) == m.SclySectionIdx {
			bodies[i] = sclyBytes
		} else {
			bodies[i] = s
		}
	}

	var sw sliceWriter
	sw.putUint32(0xDEADBEEF)
	sw.putUint32(m.Version)
	sw.b = append(sw.b, make([]byte, 12*4)...)
	sw.putUint32(uint32(len(bodies)))
	sw.putUint32(m.SclySectionIdx)
	for _, b := range bodies {
		sw.putUint32(uint32(len(b)))
	}
	sw.padTo(32)
	for _, b := range bodies {
		sw.putBytes(b)
		sw.padTo(32)
	}
	return sw.b, nil
}

func (sr *sliceReader) padTo32() {
	for sr.pos%32 != 0 {
		sr.pos++
	}
}

func init() {
	registerFormat(&format{Kind: core.KindMREA, Parse: parseMrea, Serialize: serializeMrea})
}
