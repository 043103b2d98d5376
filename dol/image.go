// Package dol implements the DOL Patcher (C7): decode/encode of the
// executable's segment table, in-place/appended patching, and a small
// PPC assembly macro DSL for constructing patch payloads.
package dol

import (
	"encoding/binary"
	"fmt"
)

const (
	maxTextSegments = 7
	maxDataSegments = 11
	headerSize      = 0x100
)

// Segment is one text or data segment: its file offset, load address,
// and raw bytes.
type Segment struct {
	Offset uint32
	Addr   uint32
	Data   []byte
}

// Image is a decoded DOL executable: up to 7 text + 11 data segments,
// a BSS region, and an entry point, per §6 "stock layout".
type Image struct {
	Text []Segment
	Data []Segment

	BSSAddr  uint32
	BSSSize  uint32
	EntryPoint uint32
}

// ErrNoFreeSegmentSlot is returned by AddTextSegment when every text
// segment slot is already occupied.
var ErrNoFreeSegmentSlot = fmt.Errorf("dol: no free text segment slot")

// Decode parses a raw DOL image's segment table.
func Decode(raw []byte) (*Image, error) {
	if len(raw) < headerSize {
		return nil, fmt.Errorf("dol: Decode: truncated header")
	}
	img := &Image{}

	var textOffsets, dataOffsets [maxTextSegments + maxDataSegments]uint32
	for i := 0; i < maxTextSegments; i++ {
		textOffsets[i] = be32(raw, 0x00+i*4)
	}
	for i := 0; i < maxDataSegments; i++ {
		dataOffsets[maxTextSegments+i] = be32(raw, 0x1C+i*4)
	}

	var textAddrs, dataAddrs [maxTextSegments + maxDataSegments]uint32
	for i := 0; i < maxTextSegments; i++ {
		textAddrs[i] = be32(raw, 0x48+i*4)
	}
	for i := 0; i < maxDataSegments; i++ {
		dataAddrs[maxTextSegments+i] = be32(raw, 0x64+i*4)
	}

	var textSizes, dataSizes [maxTextSegments + maxDataSegments]uint32
	for i := 0; i < maxTextSegments; i++ {
		textSizes[i] = be32(raw, 0x90+i*4)
	}
	for i := 0; i < maxDataSegments; i++ {
		dataSizes[maxTextSegments+i] = be32(raw, 0xAC+i*4)
	}

	img.BSSAddr = be32(raw, 0xD8)
	img.BSSSize = be32(raw, 0xDC)
	img.EntryPoint = be32(raw, 0xE0)

	for i := 0; i < maxTextSegments; i++ {
		if textSizes[i] == 0 {
			img.Text = append(img.Text, Segment{})
			continue
		}
		img.Text = append(img.Text, Segment{
			Offset: textOffsets[i],
			Addr:   textAddrs[i],
			Data:   append([]byte(nil), raw[textOffsets[i]:textOffsets[i]+textSizes[i]]...),
		})
	}
	for i := 0; i < maxDataSegments; i++ {
		idx := maxTextSegments + i
		if dataSizes[idx] == 0 {
			img.Data = append(img.Data, Segment{})
			continue
		}
		img.Data = append(img.Data, Segment{
			Offset: dataOffsets[idx],
			Addr:   dataAddrs[idx],
			Data:   append([]byte(nil), raw[dataOffsets[idx]:dataOffsets[idx]+dataSizes[idx]]...),
		})
	}

	return img, nil
}

// Encode re-serializes the segment table and bodies, recomputing file
// offsets so every segment stays 32-byte aligned.
func (img *Image) Encode() []byte {
	header := make([]byte, headerSize)
	offset := uint32(headerSize)

	for i, seg := range img.Text {
		if len(seg.Data) == 0 {
			continue
		}
		putBE32(header, 0x00+i*4, offset)
		putBE32(header, 0x48+i*4, seg.Addr)
		putBE32(header, 0x90+i*4, uint32(len(seg.Data)))
		offset += uint32(len(seg.Data))
		offset = align32(offset)
	}
	for i, seg := range img.Data {
		if len(seg.Data) == 0 {
			continue
		}
		putBE32(header, 0x1C+i*4, offset)
		putBE32(header, 0x64+i*4, seg.Addr)
		putBE32(header, 0xAC+i*4, uint32(len(seg.Data)))
		offset += uint32(len(seg.Data))
		offset = align32(offset)
	}
	putBE32(header, 0xD8, img.BSSAddr)
	putBE32(header, 0xDC, img.BSSSize)
	putBE32(header, 0xE0, img.EntryPoint)

	out := header
	for _, seg := range img.Text {
		if len(seg.Data) == 0 {
			continue
		}
		out = append(out, seg.Data...)
		for len(out)%32 != 0 {
			out = append(out, 0)
		}
	}
	for _, seg := range img.Data {
		if len(seg.Data) == 0 {
			continue
		}
		out = append(out, seg.Data...)
		for len(out)%32 != 0 {
			out = append(out, 0)
		}
	}
	return out
}

// segmentFor returns the segment (and a pointer to its slice, text or
// data) whose [Addr, Addr+len(Data)) range contains addr.
func (img *Image) segmentFor(addr uint32) (*Segment, bool) {
	for i := range img.Text {
		s := &img.Text[i]
		if len(s.Data) > 0 && addr >= s.Addr && addr < s.Addr+uint32(len(s.Data)) {
			return s, true
		}
	}
	for i := range img.Data {
		s := &img.Data[i]
		if len(s.Data) > 0 && addr >= s.Addr && addr < s.Addr+uint32(len(s.Data)) {
			return s, true
		}
	}
	return nil, false
}

// Patch overwrites data at a virtual address; the span must lie entirely
// inside one existing segment.
func (img *Image) Patch(addr uint32, data []byte) error {
	seg, ok := img.segmentFor(addr)
	if !ok {
		return fmt.Errorf("dol: Patch: address %#x not in any segment", addr)
	}
	off := addr - seg.Addr
	if off+uint32(len(data)) > uint32(len(seg.Data)) {
		return fmt.Errorf("dol: Patch: write at %#x (%d bytes) overruns its segment", addr, len(data))
	}
	copy(seg.Data[off:], data)
	return nil
}

// AddTextSegment appends a new text segment into the first empty slot.
// data's length must be a multiple of 32, per §4.8.
func (img *Image) AddTextSegment(base uint32, data []byte) error {
	if len(data)%32 != 0 {
		return fmt.Errorf("dol: AddTextSegment: length %d is not a multiple of 32", len(data))
	}
	for i := range img.Text {
		if len(img.Text[i].Data) == 0 {
			img.Text[i] = Segment{Addr: base, Data: append([]byte(nil), data...)}
			return nil
		}
	}
	return ErrNoFreeSegmentSlot
}

func be32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off:])
}

func putBE32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:], v)
}

func align32(v uint32) uint32 {
	for v%32 != 0 {
		v++
	}
	return v
}
