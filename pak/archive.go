// This file implements Archive.Decode/Encode: the 32-byte-aligned PAK
// container format from §6, structured as a small state machine in the
// same style as repdecoder's legacyDecoder/modernDecoder split — here
// the split is by whether a given resource is zlib-compressed, rather
// than by replay engine version.

package pak

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tallonforge/primeforge/res"
	"github.com/tallonforge/primeforge/res/core"
)

// Archive is an in-memory PAK: §3's "ordered list of Resource{id, kind,
// compressed, payload}". The first resource is the implicit root
// (invariant (c)); this package does not special-case it beyond keeping
// its position stable.
type Archive struct {
	Resources []*res.Resource
}

// Cursor returns a fresh Cursor over the archive's current resource list.
func (a *Archive) Cursor() *Cursor {
	return NewCursor(a.Resources)
}

// namedEntry is a named-resource-table row (root-lookup aliases such as
// "!dependencies" or "default_skybox"); the archive passes these through
// unmodified since rewriting them is out of this kernel's scope.
type namedEntry struct {
	kind core.Kind
	id   core.AssetId
	name string
}

// Decode parses a PAK container per §6: 4-byte magic, 4-byte version,
// 4-byte unused, named-resource table, unnamed-resource table, then the
// 32-byte-aligned payload blob.
func Decode(raw []byte) (*Archive, []namedEntry, error) {
	if len(raw) < 12 {
		return nil, nil, fmt.Errorf("pak: Decode: truncated header")
	}
	major := binary.BigEndian.Uint16(raw[0:2])
	minor := binary.BigEndian.Uint16(raw[2:4])
	_ = major
	_ = minor
	pos := uint32(8)

	numNamed := binary.BigEndian.Uint32(raw[pos:])
	pos += 4
	named := make([]namedEntry, numNamed)
	for i := range named {
		kind := core.KindOf(string(raw[pos : pos+4]))
		pos += 4
		id := core.AssetId(binary.BigEndian.Uint32(raw[pos:]))
		pos += 4
		nameLen := binary.BigEndian.Uint32(raw[pos:])
		pos += 4
		name := string(raw[pos : pos+nameLen])
		pos += nameLen
		named[i] = namedEntry{kind, id, name}
	}

	numEntries := binary.BigEndian.Uint32(raw[pos:])
	pos += 4
	type tocRow struct {
		compressed bool
		kind       core.Kind
		id         core.AssetId
		size       uint32
		offset     uint32
	}
	rows := make([]tocRow, numEntries)
	for i := range rows {
		compressed := binary.BigEndian.Uint32(raw[pos:]) != 0
		pos += 4
		kind := core.KindOf(string(raw[pos : pos+4]))
		pos += 4
		id := core.AssetId(binary.BigEndian.Uint32(raw[pos:]))
		pos += 4
		size := binary.BigEndian.Uint32(raw[pos:])
		pos += 4
		offset := binary.BigEndian.Uint32(raw[pos:])
		pos += 4
		rows[i] = tocRow{compressed, kind, id, size, offset}
	}
	pos = align32(pos)
	dataStart := pos

	resources := make([]*res.Resource, numEntries)
	for i, row := range rows {
		payload := raw[dataStart+row.offset : dataStart+row.offset+row.size]
		if row.compressed {
			decompressed, err := decompressPayload(payload)
			if err != nil {
				return nil, nil, fmt.Errorf("pak: Decode: resource %s:%#x: %w", row.kind, uint32(row.id), err)
			}
			payload = decompressed
		}
		resources[i] = res.NewResource(row.id, row.kind, row.compressed, append([]byte(nil), payload...))
	}

	return &Archive{Resources: resources}, named, nil
}

// decompressPayload skips the 4-byte decompressed-size prefix and inflates
// the remainder; zlib.NewReader consumes the 2-byte zlib header, which
// together with the prefix makes up §4.1's "6-byte header".
func decompressPayload(b []byte) ([]byte, error) {
	if len(b) < 6 {
		return nil, fmt.Errorf("truncated compressed payload")
	}
	zr, err := zlib.NewReader(bytes.NewReader(b[4:]))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// Encode serializes the archive back into a PAK container. Recompression
// is never mandatory (§4.1): every resource is re-emitted uncompressed,
// which is always a legal re-rendering of a decompressed payload.
func Encode(a *Archive, k *res.Kernel, named []namedEntry) ([]byte, error) {
	var header bytes.Buffer
	putU16(&header, 3)
	putU16(&header, 1)
	putU32(&header, 0)

	putU32(&header, uint32(len(named)))
	for _, n := range named {
		header.Write(n.kind[:])
		putU32(&header, uint32(n.id))
		putU32(&header, uint32(len(n.name)))
		header.WriteString(n.name)
	}

	putU32(&header, uint32(len(a.Resources)))
	tocStart := header.Len()
	header.Write(make([]byte, len(a.Resources)*20))

	for header.Len()%32 != 0 {
		header.WriteByte(0)
	}

	var body bytes.Buffer
	toc := header.Bytes()[tocStart:]
	for i, r := range a.Resources {
		data, err := r.Bytes(k)
		if err != nil {
			return nil, fmt.Errorf("pak: Encode: resource %s:%#x: %w", r.Kind, uint32(r.ID), err)
		}
		offset := uint32(body.Len())
		body.Write(data)
		for body.Len()%32 != 0 {
			body.WriteByte(0)
		}

		row := toc[i*20 : i*20+20]
		binary.BigEndian.PutUint32(row[0:], 0) // always emitted uncompressed
		copy(row[4:8], r.Kind[:])
		binary.BigEndian.PutUint32(row[8:], uint32(r.ID))
		binary.BigEndian.PutUint32(row[12:], uint32(len(data)))
		binary.BigEndian.PutUint32(row[16:], offset)
	}

	out := append(header.Bytes(), body.Bytes()...)
	for len(out)%32 != 0 {
		out = append(out, 0)
	}
	return out, nil
}

func align32(v uint32) uint32 {
	for v%32 != 0 {
		v++
	}
	return v
}

func putU16(buf *bytes.Buffer, v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	buf.Write(tmp[:])
}

func putU32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}
