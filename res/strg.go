// This file implements the STRG (string table) format: a set of named
// languages, each holding an ordered list of strings, stored as UTF-16BE
// on disc. Text decode reuses golang.org/x/text the same way repparser
// reuses it for Korean replay text, swapped to the UTF-16BE encoding the
// console's resource strings actually use.

package res

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tallonforge/primeforge/res/core"
)

// Strg is a multi-language string table resource.
type Strg struct {
	// Languages preserves on-disk order; index 0 is conventionally ENGL.
	Languages []StrgLanguage
}

// StrgLanguage is one language's ordered string list.
type StrgLanguage struct {
	Tag     core.Kind // e.g. "ENGL", "FREN", "GERM"
	Strings []string
}

func (s *Strg) Kind() core.Kind { return core.KindSTRG }

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

func parseStrg(raw []byte) (Payload, error) {
	sr := newSliceReader(raw)
	_magic := sr.getUint32() // 0x87654321
	_version := sr.getUint32()
	numLangs := sr.getUint32()
	numStrings := sr.getUint32()

	type langHeader struct {
		tag    core.Kind
		offset uint32
	}
	headers := make([]langHeader, numLangs)
	for i := range headers {
		headers[i].tag = core.KindOf(sr.getString(4))
		headers[i].offset = sr.getUint32()
	}

	langsStart := sr.pos
	langs := make([]StrgLanguage, numLangs)
	for i, h := range headers {
		lr := newSliceReader(raw[langsStart+h.offset:])
		size := lr.getUint32()
		_ = size
		tableStart := lr.pos
		offsets := make([]uint32, numStrings)
		for j := range offsets {
			offsets[j] = lr.getUint32()
		}
		strs := make([]string, numStrings)
		base := langsStart + h.offset + tableStart
		for j, off := range offsets {
			end := uint32(len(raw))
			if j+1 < len(offsets) {
				end = base + offsets[j+1]
			}
			strs[j] = decodeUTF16BE(trimNull(raw[base+off : end]))
		}
		langs[i] = StrgLanguage{Tag: h.tag, Strings: strs}
	}

	_ = _magic
	_ = _version
	return &Strg{Languages: langs}, nil
}

func serializeStrg(p Payload) ([]byte, error) {
	s, ok := p.(*Strg)
	if !ok {
		return nil, fmt.Errorf("res: serializeStrg: wrong payload type %T", p)
	}
	var sw sliceWriter
	sw.putUint32(0x87654321)
	sw.putUint32(0)
	sw.putUint32(uint32(len(s.Languages)))
	numStrings := uint32(0)
	if len(s.Languages) > 0 {
		numStrings = uint32(len(s.Languages[0].Strings))
	}
	sw.putUint32(numStrings)

	// Placeholder language-header offsets, patched below once each
	// language's encoded block size is known.
	headerPos := len(sw.b)
	for range s.Languages {
		sw.putUint32(0)
		sw.putUint32(0)
	}

	langsStart := uint32(len(sw.b))
	for i, lang := range s.Languages {
		blockStart := uint32(len(sw.b))
		copy(sw.b[headerPos+i*8:headerPos+i*8+4], lang.Tag[:])
		binary.BigEndian.PutUint32(sw.b[headerPos+i*8+4:], blockStart-langsStart)

		sw.putUint32(0) // size placeholder
		sizePos := len(sw.b) - 4
		tableStart := uint32(len(sw.b))
		offsetPos := len(sw.b)
		for range lang.Strings {
			sw.putUint32(0)
		}
		for j, str := range lang.Strings {
			off := uint32(len(sw.b)) - tableStart
			binary.BigEndian.PutUint32(sw.b[offsetPos+j*4:], off)
			enc, _ := utf16be.NewEncoder().Bytes([]byte(str))
			sw.putBytes(enc)
			sw.putUint16(0)
		}
		binary.BigEndian.PutUint32(sw.b[sizePos:], uint32(len(sw.b))-blockStart-4)
	}
	return sw.b, nil
}

func decodeUTF16BE(b []byte) string {
	out, _, err := transform.Bytes(utf16be.NewDecoder(), b)
	if err != nil {
		return ""
	}
	return string(out)
}

func trimNull(b []byte) []byte {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i]
		}
	}
	return b
}

func init() {
	registerFormat(&format{Kind: core.KindSTRG, Parse: parseStrg, Serialize: serializeStrg})
}
