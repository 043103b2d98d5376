// This file implements TXTR parsing limited to the header and mipmap
// byte-range vector, per §4.1: "TXTR, header and mipmap vector only for
// hue rotation". The palette/CMPR texture codec itself (RGBA<->block) is
// out of scope per §1; this format only needs to locate each mip level's
// bytes so a hue-rotation pass can walk pixel words without decoding the
// block format.

package res

import (
	"fmt"

	"github.com/tallonforge/primeforge/res/core"
)

// TxtrFormat is the GX texture format code (CMPR, RGB5A3, I8, ...).
type TxtrFormat uint32

// Txtr is a texture resource: header fields plus one byte slice per
// mipmap level, all still in their native packed format.
type Txtr struct {
	Format        TxtrFormat
	Width, Height uint16
	Mipmaps       [][]byte
}

func (t *Txtr) Kind() core.Kind { return core.KindTXTR }

func parseTxtr(raw []byte) (Payload, error) {
	sr := newSliceReader(raw)
	format := TxtrFormat(sr.getUint32())
	width := sr.getUint16()
	height := sr.getUint16()
	numMips := sr.getUint32()

	blockW, blockH, bitsPerPixel := txtrBlockShape(format)

	mips := make([][]byte, numMips)
	w, h := uint32(width), uint32(height)
	for i := range mips {
		wBlocks := (w + blockW - 1) / blockW
		hBlocks := (h + blockH - 1) / blockH
		size := wBlocks * hBlocks * blockW * blockH * bitsPerPixel / 8
		mips[i] = sr.readSlice(size)
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}
	return &Txtr{Format: format, Width: width, Height: height, Mipmaps: mips}, nil
}

// txtrBlockShape gives the block dimensions and effective bits-per-pixel
// for the GX formats this kernel recognizes; unrecognized formats are
// treated as 1x1/32bpp so at least the first mip's size is plausible.
func txtrBlockShape(f TxtrFormat) (w, h, bpp uint32) {
	switch f {
	case 0x0: // I4
		return 8, 8, 4
	case 0x1: // I8
		return 8, 4, 8
	case 0x4: // RGB565
		return 4, 4, 16
	case 0x5: // RGB5A3
		return 4, 4, 16
	case 0x6: // RGBA8
		return 4, 4, 32
	case 0x8: // CMPR (S3TC-like block compression)
		return 8, 8, 4
	default:
		return 1, 1, 32
	}
}

func serializeTxtr(p Payload) ([]byte, error) {
	t, ok := p.(*Txtr)
	if !ok {
		return nil, fmt.Errorf("res: serializeTxtr: wrong payload type %T", p)
	}
	var sw sliceWriter
	sw.putUint32(uint32(t.Format))
	sw.putUint16(t.Width)
	sw.putUint16(t.Height)
	sw.putUint32(uint32(len(t.Mipmaps)))
	for _, m := range t.Mipmaps {
		sw.putBytes(m)
	}
	return sw.b, nil
}

func init() {
	registerFormat(&format{Kind: core.KindTXTR, Parse: parseTxtr, Serialize: serializeTxtr})
}
