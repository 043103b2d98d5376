// This file implements the PPC assembly macro DSL from §9 "DOL assembly
// macro": a string/table-driven assembler lowering named mnemonics plus
// operands to 32-bit big-endian words, generalized from the teacher's
// "table of named command codes" shape (repcmd.Types) to "table of named
// PPC mnemonics -> encoder funcs."

package dol

import (
	"encoding/binary"
	"fmt"
)

// HalfHi returns the upper 16 bits of addr, adjusted by +1 when bit 15
// is set — the `@h` split, so a following `addi` with the matching `@l`
// reproduces the full address after sign-extension.
func HalfHi(addr uint32) uint16 {
	hi := uint16(addr >> 16)
	if addr&0x8000 != 0 {
		hi++
	}
	return hi
}

// HalfLo returns the lower 16 bits of addr — the `@l` split.
func HalfLo(addr uint32) uint16 {
	return uint16(addr)
}

// AsmOp is one entry in an assembly block: either a label definition, a
// raw instruction word, an operand needing address resolution
// (HalfHi/HalfLo against a label or literal), or literal data.
type AsmOp interface {
	isAsmOp()
}

// Label marks the current position with a name other ops can reference.
type Label struct {
	Name string
}

func (Label) isAsmOp() {}

// Instr is one already-encoded 32-bit instruction word.
type Instr struct {
	Word uint32
}

func (Instr) isAsmOp() {}

// InstrRef is an instruction whose opcode bits are fixed but one 16-bit
// operand field is filled from HalfHi/HalfLo of a label's resolved
// address, applied at assemble time once every label's offset is known.
type InstrRef struct {
	// Base has the operand field zeroed; Operand is OR'd in after shifting.
	Base  uint32
	Shift uint
	Ref   string // label name
	High  bool   // true: HalfHi(addr); false: HalfLo(addr)
}

func (InstrRef) isAsmOp() {}

// Data is a literal byte sequence (padded to a 4-byte boundary on
// assemble).
type Data struct {
	Bytes []byte
}

func (Data) isAsmOp() {}

// Asm assembles a sequence of AsmOp into 32-bit big-endian words written
// starting at baseAddr, in two passes: the first records every label's
// address, the second encodes the ops, so an op may reference a label
// defined before or after it.
func Asm(baseAddr uint32, ops []AsmOp) ([]byte, error) {
	labels := map[string]uint32{}
	pos := baseAddr
	for _, op := range ops {
		switch o := op.(type) {
		case Label:
			labels[o.Name] = pos
		case Instr:
			pos += 4
		case InstrRef:
			pos += 4
		case Data:
			pos += uint32(len(o.Bytes))
			for pos%4 != 0 {
				pos++
			}
		}
	}

	var out []byte
	for _, op := range ops {
		switch o := op.(type) {
		case Label:
			// no bytes emitted
		case Instr:
			var buf [4]byte
			binary.BigEndian.PutUint32(buf[:], o.Word)
			out = append(out, buf[:]...)
		case InstrRef:
			addr, ok := labels[o.Ref]
			if !ok {
				return nil, fmt.Errorf("dol: Asm: undefined label %q", o.Ref)
			}
			var half uint16
			if o.High {
				half = HalfHi(addr)
			} else {
				half = HalfLo(addr)
			}
			word := o.Base | uint32(half)<<o.Shift
			var buf [4]byte
			binary.BigEndian.PutUint32(buf[:], word)
			out = append(out, buf[:]...)
		case Data:
			out = append(out, o.Bytes...)
			for len(out)%4 != 0 {
				out = append(out, 0)
			}
		}
	}
	return out, nil
}
