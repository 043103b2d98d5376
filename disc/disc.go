// Package disc defines the container boundary types the patch engine
// walks and writes through: a disc header recognizer, an in-memory file
// tree, and the streaming-sink interface the ISO/GCZ/CISO writers (out
// of scope here, per the engine's external-interfaces boundary) would
// implement.
package disc

import (
	"errors"
	"fmt"
	"io"
)

// ErrAlreadyPatched is returned by Open when the disc root carries the
// randomprime.txt marker file left behind by a previous patch run.
var ErrAlreadyPatched = errors.New("disc: image already patched")

// ErrUnsupportedHeader is returned by Open when the 6-byte id / disc id /
// version tuple at offset 0 isn't in SupportedTuples.
var ErrUnsupportedHeader = errors.New("disc: unsupported or unrecognized header")

// markerFile is the already-patched sentinel at the disc root.
const markerFile = "randomprime.txt"

// Header is the 8-byte disc identification record at offset 0: a 6-byte
// game id, a 1-byte disc id, and a 1-byte version.
type Header struct {
	GameID  [6]byte
	DiscID  byte
	Version byte
}

// Tuple is a (GameID, DiscID, Version) triple used to look up DOL patch
// support (§4.8 "version-aware").
type Tuple struct {
	GameID  string
	DiscID  byte
	Version byte
}

// SupportedTuples lists every (disc id, version) combination the engine
// recognizes, per §6.
var SupportedTuples = []Tuple{
	{"GM8E01", 0, 0},
	{"GM8E01", 0, 2},
	{"GM8P01", 0, 0},
	{"R3ME01", 0, 0},
	{"R3IJ01", 0, 0},
	{"R3MP01", 0, 0},
}

// Supported reports whether h matches one of SupportedTuples.
func (h Header) Supported() bool {
	for _, t := range SupportedTuples {
		if string(h.GameID[:]) == t.GameID && h.DiscID == t.DiscID && h.Version == t.Version {
			return true
		}
	}
	return false
}

// ParseHeader reads the 8-byte header from the start of a raw disc image.
func ParseHeader(raw []byte) (Header, error) {
	if len(raw) < 8 {
		return Header{}, fmt.Errorf("disc: ParseHeader: truncated image (%d bytes)", len(raw))
	}
	var h Header
	copy(h.GameID[:], raw[0:6])
	h.DiscID = raw[6]
	h.Version = raw[7]
	return h, nil
}

// File is one entry in the disc's file tree.
type File struct {
	Path string
	Data []byte
}

// Image is the in-memory file tree abstraction the patcher.Driver walks.
// A real container reader (iso/gcz/ciso) populates this once at load
// time; this package defines the shape, not the reader.
type Image struct {
	Header Header
	Files  []*File
}

// Open validates the header and already-patched marker over a raw disc
// image and file listing, and returns a ready-to-patch Image.
func Open(raw []byte, files []*File) (*Image, error) {
	h, err := ParseHeader(raw)
	if err != nil {
		return nil, err
	}
	if !h.Supported() {
		return nil, fmt.Errorf("%w: %s/%d/%d", ErrUnsupportedHeader, h.GameID, h.DiscID, h.Version)
	}
	for _, f := range files {
		if f.Path == markerFile {
			return nil, ErrAlreadyPatched
		}
	}
	return &Image{Header: h, Files: files}, nil
}

// File looks up a file by exact path.
func (img *Image) File(path string) (*File, bool) {
	for _, f := range img.Files {
		if f.Path == path {
			return f, true
		}
	}
	return nil, false
}

// MarkPatched appends the randomprime.txt marker file so a future Open
// call on the output image rejects re-patching it.
func (img *Image) MarkPatched(comment string) {
	img.Files = append(img.Files, &File{Path: markerFile, Data: []byte(comment)})
}

// Sink is the streaming output the patcher writes through, matching §5's
// "the writer never holds both full images at once" discipline. The
// concrete ISO/GCZ/CISO container writers are out of scope; callers
// supply their own Sink implementation keyed off the output filename
// suffix.
type Sink interface {
	io.Writer
	io.Closer
}
