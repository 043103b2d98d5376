// This file implements the PAK-as-resource format: the rare case where
// an archive resource itself is nested inside another archive (kept
// separate from package pak's Cursor, which walks the *top-level* disc
// archives the patcher drives; this type is only the Resource Kernel's
// typed view of a PAK's table-of-contents when one is encountered as an
// ordinary resource).

package res

import (
	"fmt"

	"github.com/tallonforge/primeforge/res/core"
)

// PakEntry is one table-of-contents row.
type PakEntry struct {
	Compressed bool
	Kind       core.Kind
	ID         core.AssetId
	Data       []byte
}

// Pak is a nested-archive resource.
type Pak struct {
	Entries []PakEntry
}

func (p *Pak) Kind() core.Kind { return core.KindPAK }

func parsePak(raw []byte) (Payload, error) {
	sr := newSliceReader(raw)
	_major := sr.getUint16()
	_minor := sr.getUint16()
	_ = sr.readSlice(4)

	numNamed := sr.getUint32()
	for i := uint32(0); i < numNamed; i++ {
		_ = core.KindOf(sr.getString(4))
		sr.getUint32()
		n := sr.getUint32()
		sr.getString(n)
	}

	numEntries := sr.getUint32()
	type tocRow struct {
		compressed bool
		kind       core.Kind
		id         core.AssetId
		size       uint32
		offset     uint32
	}
	rows := make([]tocRow, numEntries)
	for i := range rows {
		compressed := sr.getUint32() != 0
		kind := core.KindOf(sr.getString(4))
		id := core.AssetId(sr.getUint32())
		size := sr.getUint32()
		offset := sr.getUint32()
		rows[i] = tocRow{compressed, kind, id, size, offset}
	}
	sr.padTo32()
	dataStart := sr.pos

	entries := make([]PakEntry, numEntries)
	for i, row := range rows {
		entries[i] = PakEntry{
			Compressed: row.compressed,
			Kind:       row.kind,
			ID:         row.id,
			Data:       append([]byte(nil), raw[dataStart+row.offset:dataStart+row.offset+row.size]...),
		}
	}
	_ = _major
	_ = _minor
	return &Pak{Entries: entries}, nil
}

func serializePak(p Payload) ([]byte, error) {
	pk, ok := p.(*Pak)
	if !ok {
		return nil, fmt.Errorf("res: serializePak: wrong payload type %T", p)
	}
	var sw sliceWriter
	sw.putUint16(3)
	sw.putUint16(1)
	sw.putBytes([]byte{0, 0, 0, 0})
	sw.putUint32(0) // no named resources recorded

	sw.putUint32(uint32(len(pk.Entries)))
	tocPos := len(sw.b)
	for range pk.Entries {
		sw.b = append(sw.b, make([]byte, 20)...)
	}
	sw.padTo(32)
	dataStart := uint32(len(sw.b))
	for i, e := range pk.Entries {
		off := uint32(len(sw.b)) - dataStart
		sw.putBytes(e.Data)
		sw.padTo(32)
		row := tocPos + i*20
		if e.Compressed {
			sw.b[row], sw.b[row+1], sw.b[row+2], sw.b[row+3] = 0, 0, 0, 1
		}
		copy(sw.b[row+4:row+8], e.Kind[:])
		putBE32(sw.b[row+8:], uint32(e.ID))
		putBE32(sw.b[row+12:], uint32(len(e.Data)))
		putBE32(sw.b[row+16:], off)
	}
	return sw.b, nil
}

func putBE32(b []byte, v uint32) {
	b[0], b[1], b[2], b[3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
}

func init() {
	registerFormat(&format{Kind: core.KindPAK, Parse: parsePak, Serialize: serializePak})
}
