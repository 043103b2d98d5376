// This file contains a slice reader/writer pair used by every format
// parser in this package, generalized from repparser.sliceReader to the
// big-endian byte order the console's PowerPC CPU uses (SC:BW replays are
// little-endian; disc resources are not).

package res

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ErrTruncated indicates a resource ended before a field could be read.
var ErrTruncated = fmt.Errorf("res: truncated data")

// sliceReader aids reading big-endian data from a byte slice. An
// out-of-range read panics; Kernel.Parse recovers the panic into ErrParsing.
type sliceReader struct {
	b   []byte
	pos uint32
}

func newSliceReader(b []byte) *sliceReader {
	return &sliceReader{b: b}
}

func (sr *sliceReader) remaining() []byte {
	return sr.b[sr.pos:]
}

func (sr *sliceReader) getByte() (r byte) {
	r, sr.pos = sr.b[sr.pos], sr.pos+1
	return
}

func (sr *sliceReader) getUint16() (r uint16) {
	r, sr.pos = binary.BigEndian.Uint16(sr.b[sr.pos:]), sr.pos+2
	return
}

func (sr *sliceReader) getUint32() (r uint32) {
	r, sr.pos = binary.BigEndian.Uint32(sr.b[sr.pos:]), sr.pos+4
	return
}

func (sr *sliceReader) getFloat32() (r float32) {
	r = math.Float32frombits(sr.getUint32())
	return
}

func (sr *sliceReader) getString(size uint32) (r string) {
	r, sr.pos = string(sr.b[sr.pos:sr.pos+size]), sr.pos+size
	return
}

// getCString reads a NUL-terminated string.
func (sr *sliceReader) getCString() string {
	start := sr.pos
	for sr.b[sr.pos] != 0 {
		sr.pos++
	}
	s := string(sr.b[start:sr.pos])
	sr.pos++
	return s
}

func (sr *sliceReader) readSlice(size uint32) (r []byte) {
	r = make([]byte, size)
	sr.pos += uint32(copy(r, sr.b[sr.pos:]))
	return
}

// sliceWriter accumulates a big-endian byte-serialized resource.
type sliceWriter struct {
	b []byte
}

func (sw *sliceWriter) putByte(v byte) {
	sw.b = append(sw.b, v)
}

func (sw *sliceWriter) putUint16(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	sw.b = append(sw.b, tmp[:]...)
}

func (sw *sliceWriter) putUint32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	sw.b = append(sw.b, tmp[:]...)
}

func (sw *sliceWriter) putFloat32(v float32) {
	sw.putUint32(math.Float32bits(v))
}

func (sw *sliceWriter) putBytes(b []byte) {
	sw.b = append(sw.b, b...)
}

func (sw *sliceWriter) putCString(s string) {
	sw.b = append(sw.b, s...)
	sw.b = append(sw.b, 0)
}

func (sw *sliceWriter) padTo(align int) {
	for len(sw.b)%align != 0 {
		sw.b = append(sw.b, 0)
	}
}
