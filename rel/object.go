// This file implements pipeline step 1 of the REL Linker (C8): reading
// an ELF-PPC relocatable object into the {Sections, ExportedSymbols,
// Relocations} view the rest of the package operates on. Grounded on
// original_source's dol_linker::ObjectFile/Section (built over goblin's
// elf::Elf) — the field shape (name/data/alignment/is_executable/is_bss/
// exported_symbols/relocations) is carried over directly; the reader
// itself uses the standard library's debug/elf instead of goblin, since
// no pack repo imports a third-party ELF library from working code.
//
// Symbol and relocation tables are walked directly off debug/elf's raw
// section data (rather than File.Symbols(), which discards the null
// symbol at index 0 that relocation entries index against) so symbol
// indices line up exactly with what the relocation entries reference.
package rel

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"fmt"
)

// SymbolVis mirrors the ELF symbol-visibility bits the live-section
// filter keys on: only Default-visibility symbols seed the keep set.
type SymbolVis int

const (
	VisDefault SymbolVis = iota
	VisHidden
)

// ExportedSymbol is one global/weak symbol a section defines.
type ExportedSymbol struct {
	Name   string
	Offset uint32
	Vis    SymbolVis
}

// RelocationKind classifies what a Relocation's target resolves to,
// mirroring original_source's RelocationKind enum.
type RelocationKind int

const (
	// RelInternal targets another section within the same object file.
	RelInternal RelocationKind = iota
	// RelExternal targets a named symbol, local or imported.
	RelExternal
	// RelAbsolute targets a fixed address (an SHN_ABS symbol).
	RelAbsolute
)

// Relocation is one relocation site within a Section.
type Relocation struct {
	Kind RelocationKind

	// Valid when Kind == RelInternal: index into the owning Object's
	// Sections slice, plus an extra byte offset within that section.
	TargetSection int
	TargetOffset  uint32

	// Valid when Kind == RelExternal.
	SymbolName string

	// Valid when Kind == RelAbsolute.
	AbsoluteAddr uint32

	Addend uint32
	Offset uint32 // byte offset within the section this relocation patches
	Type   elf.R_PPC
}

// Section is one kept ELF section: allocatable (SHF_ALLOC), either
// SHT_PROGBITS or SHT_NOBITS (bss).
type Section struct {
	Name         string
	Data         []byte
	Alignment    uint32
	IsExecutable bool
	IsBSS        bool

	ExportedSymbols []ExportedSymbol
	Relocations     []Relocation
}

func (s *Section) Size() uint32 { return uint32(len(s.Data)) }

// Object is a decoded ELF-PPC relocatable object file.
type Object struct {
	Sections []*Section
}

// symbol is a fully-resolved (name already looked up in strtab) ELF32
// symbol table entry.
type symbol struct {
	Name  string
	Value uint32
	Info  byte
	Other byte
	Shndx uint16
}

func (s symbol) bind() byte { return s.Info >> 4 }
func (s symbol) kind() byte { return s.Info & 0xF }

const (
	stbGlobal = 1
	stbWeak   = 2
	sttSection = 3

	shnAbs    = 0xFFF1
	shnCommon = 0xFFF2

	stvHidden = 2
)

// Decode parses a 32-bit big-endian PPC ELF relocatable object (ET_REL)
// into an Object, dropping any section not flagged SHF_ALLOC, matching
// original_source's filter over sh_type/sh_flags.
func Decode(raw []byte) (*Object, error) {
	f, err := elf.NewFile(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("rel: Decode: %w", err)
	}
	if f.Machine != elf.EM_PPC {
		return nil, fmt.Errorf("rel: Decode: not a PPC object (machine=%s)", f.Machine)
	}
	if f.Class != elf.ELFCLASS32 {
		return nil, fmt.Errorf("rel: Decode: only 32-bit ELF is supported")
	}

	// allocIdx maps an ELF section index to its position in obj.Sections.
	allocIdx := map[int]int{}
	obj := &Object{}

	for i, sh := range f.Sections {
		if sh.Type != elf.SHT_PROGBITS && sh.Type != elf.SHT_NOBITS {
			continue
		}
		if sh.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		var data []byte
		if sh.Type == elf.SHT_NOBITS {
			data = make([]byte, sh.Size)
		} else {
			data, err = sh.Data()
			if err != nil {
				return nil, fmt.Errorf("rel: Decode: reading section %q: %w", sh.Name, err)
			}
		}
		allocIdx[i] = len(obj.Sections)
		obj.Sections = append(obj.Sections, &Section{
			Name:         sh.Name,
			Data:         data,
			Alignment:    uint32(sh.Addralign),
			IsExecutable: sh.Flags&elf.SHF_EXECINSTR != 0,
			IsBSS:        sh.Type == elf.SHT_NOBITS,
		})
	}

	symtabSec, strtabSec := findSymtab(f)
	if symtabSec == nil {
		return obj, nil
	}
	symtabData, err := symtabSec.Data()
	if err != nil {
		return nil, fmt.Errorf("rel: Decode: reading symtab: %w", err)
	}
	strtabData, err := strtabSec.Data()
	if err != nil {
		return nil, fmt.Errorf("rel: Decode: reading strtab: %w", err)
	}

	syms, err := parseSymtab(symtabData, strtabData, f.ByteOrder)
	if err != nil {
		return nil, fmt.Errorf("rel: Decode: parsing symtab: %w", err)
	}

	for _, sym := range syms {
		if sym.bind() != stbGlobal && sym.bind() != stbWeak {
			continue
		}
		secIdx, ok := allocIdx[int(sym.Shndx)]
		if !ok {
			continue
		}
		vis := VisDefault
		if sym.Other&0x3 == stvHidden {
			vis = VisHidden
		}
		sec := obj.Sections[secIdx]
		sec.ExportedSymbols = append(sec.ExportedSymbols, ExportedSymbol{
			Name:   sym.Name,
			Offset: sym.Value,
			Vis:    vis,
		})
	}

	for _, sh := range f.Sections {
		if sh.Type != elf.SHT_REL && sh.Type != elf.SHT_RELA {
			continue
		}
		targetIdx, ok := allocIdx[int(sh.Info)]
		if !ok {
			continue
		}
		target := obj.Sections[targetIdx]

		relData, err := sh.Data()
		if err != nil {
			return nil, fmt.Errorf("rel: Decode: reading relocations %q: %w", sh.Name, err)
		}
		relocs, err := parseRelocs(relData, sh.Type == elf.SHT_RELA, f.ByteOrder, syms, allocIdx)
		if err != nil {
			return nil, fmt.Errorf("rel: Decode: relocation section %q: %w", sh.Name, err)
		}
		target.Relocations = append(target.Relocations, relocs...)
	}

	for _, sec := range obj.Sections {
		sortRelocationsByOffset(sec.Relocations)
	}

	return obj, nil
}

func findSymtab(f *elf.File) (symtab, strtab *elf.Section) {
	for _, sh := range f.Sections {
		if sh.Type == elf.SHT_SYMTAB {
			symtab = sh
			if int(sh.Link) < len(f.Sections) {
				strtab = f.Sections[sh.Link]
			}
			return
		}
	}
	return nil, nil
}

// parseSymtab reads the raw ELF32_Sym array (including the reserved
// null entry at index 0, which relocation entries may legitimately
// reference) and resolves each name against strtab.
func parseSymtab(data, strtab []byte, order binary.ByteOrder) ([]symbol, error) {
	const entSize = 16
	if len(data)%entSize != 0 {
		return nil, fmt.Errorf("malformed symbol table (%d bytes)", len(data))
	}
	n := len(data) / entSize
	out := make([]symbol, n)
	for i := 0; i < n; i++ {
		b := data[i*entSize : i*entSize+entSize]
		nameOff := order.Uint32(b[0:4])
		out[i] = symbol{
			Name:  cstring(strtab, int(nameOff)),
			Value: order.Uint32(b[4:8]),
			Info:  b[12],
			Other: b[13],
			Shndx: order.Uint16(b[14:16]),
		}
	}
	return out, nil
}

func cstring(b []byte, off int) string {
	if off < 0 || off >= len(b) {
		return ""
	}
	end := off
	for end < len(b) && b[end] != 0 {
		end++
	}
	return string(b[off:end])
}

// parseRelocs turns raw Elf32_Rel/Elf32_Rela entries into Relocations,
// classifying each by its target symbol's kind exactly as
// original_source's Relocation::from_reloc does: section symbols ->
// internal, SHN_ABS -> absolute, everything else -> external (by name).
func parseRelocs(data []byte, hasAddend bool, order binary.ByteOrder, syms []symbol, allocIdx map[int]int) ([]Relocation, error) {
	entSize := 8
	if hasAddend {
		entSize = 12
	}
	if len(data)%entSize != 0 {
		return nil, fmt.Errorf("malformed relocation table (%d bytes)", len(data))
	}
	n := len(data) / entSize
	out := make([]Relocation, 0, n)
	for i := 0; i < n; i++ {
		b := data[i*entSize:]
		off := order.Uint32(b[0:4])
		info := order.Uint32(b[4:8])
		symIdx := info >> 8
		relType := elf.R_PPC(info & 0xFF)
		var addend uint32
		if hasAddend {
			addend = order.Uint32(b[8:12])
		}
		if int(symIdx) >= len(syms) {
			return nil, fmt.Errorf("relocation references out-of-range symbol %d", symIdx)
		}
		sym := syms[symIdx]

		reloc := Relocation{
			Offset: off,
			Addend: addend,
			Type:   relType,
		}

		switch {
		case sym.Shndx == shnAbs:
			reloc.Kind = RelAbsolute
			reloc.AbsoluteAddr = sym.Value

		case sym.kind() == sttSection:
			secIdx, ok := allocIdx[int(sym.Shndx)]
			if !ok {
				reloc.Kind = RelAbsolute
				reloc.AbsoluteAddr = 0
			} else {
				reloc.Kind = RelInternal
				reloc.TargetSection = secIdx
			}

		case sym.Shndx == shnCommon:
			// A SHN_COMMON symbol has no home section, so it is kept as an
			// external reference by name; Link resolves it only when the
			// local or external symbol table defines that name, and fails
			// with ErrUnresolvedSymbol otherwise.
			reloc.Kind = RelExternal
			reloc.SymbolName = sym.Name

		case sym.Name == "":
			// An unnamed local (non-section) symbol still refers to its
			// defining section at a fixed value offset.
			if secIdx, ok := allocIdx[int(sym.Shndx)]; ok {
				reloc.Kind = RelInternal
				reloc.TargetSection = secIdx
				reloc.TargetOffset = sym.Value
				break
			}
			reloc.Kind = RelAbsolute
			reloc.AbsoluteAddr = sym.Value

		default:
			reloc.Kind = RelExternal
			reloc.SymbolName = sym.Name
		}
		out = append(out, reloc)
	}
	return out, nil
}

func sortRelocationsByOffset(rs []Relocation) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j-1].Offset > rs[j].Offset; j-- {
			rs[j-1], rs[j] = rs[j], rs[j-1]
		}
	}
}
