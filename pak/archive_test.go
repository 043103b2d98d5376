package pak

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"

	"github.com/tallonforge/primeforge/res"
	"github.com/tallonforge/primeforge/res/core"
)

func TestAlign32RoundsUpToNextMultiple(t *testing.T) {
	cases := []struct{ in, want uint32 }{
		{0, 0}, {1, 32}, {31, 32}, {32, 32}, {33, 64},
	}
	for _, c := range cases {
		if got := align32(c.in); got != c.want {
			t.Errorf("align32(%d): Expected: %d, got: %d", c.in, c.want, got)
		}
	}
}

func buildPak(t *testing.T, named []namedEntry, entries []struct {
	compressed bool
	kind       core.Kind
	id         core.AssetId
	payload    []byte
}) []byte {
	t.Helper()
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

	putU32(&header, uint32(len(entries)))
	tocStart := header.Len()
	header.Write(make([]byte, len(entries)*20))
	for header.Len()%32 != 0 {
		header.WriteByte(0)
	}

	var body bytes.Buffer
	toc := header.Bytes()[tocStart:]
	for i, e := range entries {
		data := e.payload
		if e.compressed {
			var zbuf bytes.Buffer
			zbuf.Write(make([]byte, 4)) // decompressed-size header, unused by decompressPayload
			zw := zlib.NewWriter(&zbuf)
			if _, err := zw.Write(e.payload); err != nil {
				t.Fatalf("zlib write: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("zlib close: %v", err)
			}
			data = zbuf.Bytes()
		}
		offset := uint32(body.Len())
		body.Write(data)
		for body.Len()%32 != 0 {
			body.WriteByte(0)
		}
		row := toc[i*20 : i*20+20]
		compressedFlag := uint32(0)
		if e.compressed {
			compressedFlag = 1
		}
		binary.BigEndian.PutUint32(row[0:], compressedFlag)
		copy(row[4:8], e.kind[:])
		binary.BigEndian.PutUint32(row[8:], uint32(e.id))
		binary.BigEndian.PutUint32(row[12:], uint32(len(data)))
		binary.BigEndian.PutUint32(row[16:], offset)
	}

	out := append(header.Bytes(), body.Bytes()...)
	for len(out)%32 != 0 {
		out = append(out, 0)
	}
	return out
}

func TestDecodeUncompressedResource(t *testing.T) {
	raw := buildPak(t, nil, []struct {
		compressed bool
		kind       core.Kind
		id         core.AssetId
		payload    []byte
	}{
		{false, core.KindSTRG, core.AssetId(0x10), []byte("hello")},
	})

	archive, named, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(named) != 0 {
		t.Errorf("Expected no named entries, got %d", len(named))
	}
	if len(archive.Resources) != 1 {
		t.Fatalf("Expected 1 resource, got %d", len(archive.Resources))
	}
	r := archive.Resources[0]
	if r.ID != core.AssetId(0x10) || r.Kind != core.KindSTRG {
		t.Errorf("Expected id=0x10 kind=STRG, got id=%#x kind=%v", uint32(r.ID), r.Kind)
	}
	k := res.NewKernel()
	data, err := r.Bytes(k)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Expected: %q, got: %q", "hello", data)
	}
}

func TestDecodeInflatesCompressedResource(t *testing.T) {
	raw := buildPak(t, nil, []struct {
		compressed bool
		kind       core.Kind
		id         core.AssetId
		payload    []byte
	}{
		{true, core.KindTXTR, core.AssetId(0x20), bytes.Repeat([]byte("ABCD"), 20)},
	})

	archive, _, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	r := archive.Resources[0]
	if !r.Compressed {
		t.Errorf("Expected the resource to be flagged compressed")
	}
	k := res.NewKernel()
	data, err := r.Bytes(k)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(data) != string(bytes.Repeat([]byte("ABCD"), 20)) {
		t.Errorf("Expected the inflated payload to match the original, got %d bytes", len(data))
	}
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	if _, _, err := Decode([]byte{1, 2, 3}); err == nil {
		t.Errorf("Expected an error for a header shorter than 12 bytes")
	}
}

func TestDecodePreservesNamedEntries(t *testing.T) {
	named := []namedEntry{{kind: core.KindSTRG, id: core.AssetId(0x99), name: "!dependencies"}}
	raw := buildPak(t, named, []struct {
		compressed bool
		kind       core.Kind
		id         core.AssetId
		payload    []byte
	}{
		{false, core.KindSTRG, core.AssetId(0x99), []byte("x")},
	})

	_, gotNamed, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(gotNamed) != 1 || gotNamed[0].name != "!dependencies" {
		t.Errorf("Expected the named entry to round-trip, got %v", gotNamed)
	}
}

func TestEncodeThenDecodeRoundTripsArchive(t *testing.T) {
	k := res.NewKernel()
	archive := &Archive{Resources: []*res.Resource{
		res.NewResource(core.AssetId(1), core.KindSTRG, false, []byte("abc")),
	}}
	raw, err := Encode(archive, k, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, _, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded.Resources) != 1 {
		t.Fatalf("Expected 1 resource, got %d", len(decoded.Resources))
	}
	data, err := decoded.Resources[0].Bytes(k)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("Expected: %q, got: %q", "abc", data)
	}
}

func TestEncodeAlwaysEmitsUncompressed(t *testing.T) {
	k := res.NewKernel()
	archive := &Archive{Resources: []*res.Resource{
		res.NewResource(core.AssetId(1), core.KindSTRG, true, []byte("abc")),
	}}
	raw, err := Encode(archive, k, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, _, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Resources[0].Compressed {
		t.Errorf("Expected Encode to always re-emit resources uncompressed")
	}
}

func TestArchiveCursorWalksAllResources(t *testing.T) {
	a := &Archive{Resources: []*res.Resource{
		res.NewResource(1, core.KindSTRG, false, nil),
		res.NewResource(2, core.KindSTRG, false, nil),
	}}
	c := a.Cursor()
	count := 0
	for {
		if _, ok := c.Peek(); !ok {
			break
		}
		count++
		c.Advance()
	}
	if count != 2 {
		t.Errorf("Expected the cursor to walk 2 resources, got %d", count)
	}
}
