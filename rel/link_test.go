package rel

import (
	"debug/elf"
	"encoding/binary"
	"testing"
)

func TestAlignUp(t *testing.T) {
	cases := []struct{ v, align, want uint32 }{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 8, 8},
		{10, 1, 10},
		{10, 0, 10},
	}
	for _, c := range cases {
		got := alignUp(c.v, c.align)
		if got != c.want {
			t.Errorf("alignUp(%d, %d): Expected: %d, got: %d", c.v, c.align, c.want, got)
		}
	}
}

func TestSortStrings(t *testing.T) {
	s := []string{".data", ".bss", ".text", ".rodata"}
	sortStrings(s)
	want := []string{".bss", ".data", ".rodata", ".text"}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("position %d: Expected: %v, got: %v", i, want, s)
			break
		}
	}
}

func TestLowerRelocTypePassesThroughKnownTypes(t *testing.T) {
	for t32 := elf32RPPC(0); t32 <= rPPCRel14; t32++ {
		got, err := lowerRelocType(t32)
		if err != nil {
			t.Errorf("lowerRelocType(%d): unexpected error: %v", t32, err)
		}
		if got != t32 {
			t.Errorf("lowerRelocType(%d): Expected: %d, got: %d", t32, t32, got)
		}
	}
}

func TestLowerRelocTypeCollapsesVariants(t *testing.T) {
	cases := []struct {
		in   elf32RPPC
		want elf32RPPC
	}{
		{12, rPPCRel14}, // REL14_BRTAKEN
		{13, rPPCRel14}, // REL14_BRNTAKEN
		{18, rPPCRel24}, // PLTREL24
		{24, rPPCAddr32}, // UADDR32
		{25, rPPCAddr16}, // UADDR16
	}
	for _, c := range cases {
		got, err := lowerRelocType(c.in)
		if err != nil {
			t.Fatalf("lowerRelocType(%d): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("lowerRelocType(%d): Expected: %d, got: %d", c.in, c.want, got)
		}
	}
}

func TestLowerRelocTypeRejectsUnsupported(t *testing.T) {
	if _, err := lowerRelocType(255); err == nil {
		t.Errorf("Expected an error for an unsupported relocation type")
	}
}

// TestIsLocallyResolvableAddrNeverBakeableAgainstInternalTarget is the
// regression test for the bug this package's bakeLocalRelocations used
// to have: an ADDR-class relocation against a same-module (internal)
// target must never be classified as locally resolvable, since the
// module's own load address isn't known until Dolphin places it.
func TestIsLocallyResolvableAddrNeverBakeableAgainstInternalTarget(t *testing.T) {
	r := &Relocation{Kind: RelInternal, Type: elf.R_PPC(rPPCAddr32)}
	if isLocallyResolvable(r, SecText, map[string]symLoc{}) {
		t.Errorf("Expected an internal ADDR32 relocation to never be locally resolvable")
	}
}

func TestIsLocallyResolvableRelativeBranchBakeableAgainstInternalTarget(t *testing.T) {
	r := &Relocation{Kind: RelInternal, Type: elf.R_PPC(rPPCRel24)}
	if !isLocallyResolvable(r, SecText, map[string]symLoc{}) {
		t.Errorf("Expected an internal REL24 relocation to be locally resolvable")
	}
}

func TestIsLocallyResolvableAddrBakeableAgainstAbsoluteSymbol(t *testing.T) {
	r := &Relocation{Kind: RelAbsolute, Type: elf.R_PPC(rPPCAddr32)}
	if !isLocallyResolvable(r, SecText, map[string]symLoc{}) {
		t.Errorf("Expected an absolute-symbol ADDR32 relocation to be locally resolvable")
	}
}

func TestIsLocallyResolvableExternalUnresolvedIsStaticButNotRelative(t *testing.T) {
	table := map[string]symLoc{}
	addr := &Relocation{Kind: RelExternal, SymbolName: "OSReport", Type: elf.R_PPC(rPPCAddr32)}
	if !isLocallyResolvable(addr, SecText, table) {
		t.Errorf("Expected an ADDR32 relocation against an unresolved (DOL) symbol to be locally resolvable")
	}
	rel := &Relocation{Kind: RelExternal, SymbolName: "OSReport", Type: elf.R_PPC(rPPCRel24)}
	if isLocallyResolvable(rel, SecText, table) {
		t.Errorf("Expected a REL24 relocation against an unresolved (DOL) symbol to NOT be locally resolvable")
	}
}

func TestIsDolRelocation(t *testing.T) {
	table := map[string]symLoc{"Local": {SecText, 0}}

	local := &Relocation{Kind: RelExternal, SymbolName: "Local"}
	if isDolRelocation(local, table) {
		t.Errorf("Expected a relocation against a local-table symbol to not be a DOL relocation")
	}

	dol := &Relocation{Kind: RelExternal, SymbolName: "OSReport"}
	if !isDolRelocation(dol, table) {
		t.Errorf("Expected a relocation against an unresolved symbol to be a DOL relocation")
	}

	abs := &Relocation{Kind: RelAbsolute}
	if !isDolRelocation(abs, table) {
		t.Errorf("Expected an absolute relocation to be a DOL relocation")
	}

	internal := &Relocation{Kind: RelInternal}
	if isDolRelocation(internal, table) {
		t.Errorf("Expected an internal relocation to not be a DOL relocation")
	}
}

func TestCstring(t *testing.T) {
	buf := []byte("\x00foo\x00bar\x00")
	cases := []struct {
		off  int
		want string
	}{
		{0, ""},
		{1, "foo"},
		{5, "bar"},
		{-1, ""},
		{100, ""},
	}
	for _, c := range cases {
		got := cstring(buf, c.off)
		if got != c.want {
			t.Errorf("cstring(%d): Expected: %q, got: %q", c.off, c.want, got)
		}
	}
}

func TestSortRelocationsByOffset(t *testing.T) {
	rs := []Relocation{{Offset: 8}, {Offset: 0}, {Offset: 4}}
	sortRelocationsByOffset(rs)
	want := []uint32{0, 4, 8}
	for i, w := range want {
		if rs[i].Offset != w {
			t.Errorf("position %d: Expected: %d, got: %d", i, w, rs[i].Offset)
		}
	}
}

// buildLinkFixture constructs a minimal two-section object by hand (no
// ELF parsing involved): one Text section exporting "entry" at offset 0
// with two relocation sites — an internal ADDR32 against the Data
// section (never locally bakeable) and an internal REL24 against itself
// (locally bakeable) — plus the Data section it targets.
func buildLinkFixture() []*Object {
	text := &Section{
		Name:         "text",
		Data:         make([]byte, 8),
		Alignment:    4,
		IsExecutable: true,
		ExportedSymbols: []ExportedSymbol{
			{Name: "entry", Offset: 0, Vis: VisDefault},
		},
	}
	data := &Section{
		Name:      "data",
		Data:      []byte{0xAA, 0xBB, 0xCC, 0xDD},
		Alignment: 4,
	}
	text.Relocations = []Relocation{
		{Kind: RelInternal, TargetSection: 1, TargetOffset: 0, Offset: 0, Type: elf.R_PPC(rPPCAddr32)},
		{Kind: RelInternal, TargetSection: 0, TargetOffset: 0, Offset: 4, Type: elf.R_PPC(rPPCRel24)},
	}
	return []*Object{{Sections: []*Section{text, data}}}
}

func TestLinkBakesOnlyTheLocallyResolvableSite(t *testing.T) {
	objects := buildLinkFixture()
	mod, err := Link(objects, map[string]uint32{}, LinkOptions{ModuleID: 1})
	if err != nil {
		t.Fatalf("Link: %v", err)
	}

	b := mod.Bytes()
	if len(b) == 0 {
		t.Fatalf("Expected a non-empty module")
	}
	if len(b)%32 != 0 {
		t.Errorf("Expected the module's total length to be 32-byte aligned, got %d", len(b))
	}

	numSections := binary.BigEndian.Uint32(b[0x0C:0x10])
	if numSections < 1 {
		t.Errorf("Expected at least the null section slot, got count %d", numSections)
	}

	relocTableOff := binary.BigEndian.Uint32(b[0x24:0x28])
	if relocTableOff == 0 {
		t.Fatalf("Expected a non-zero relocation table offset given an unbaked ADDR32 site")
	}
	// The relocation table must carry exactly one real entry (the ADDR32
	// site) bracketed by a SECTION marker and an END terminator.
	relocType := b[relocTableOff+2]
	if relocType != rDolphinSection {
		t.Errorf("Expected the first relocation table entry to be a SECTION marker, got type %d", relocType)
	}
	siteType := b[relocTableOff+8+2]
	if siteType != byte(rPPCAddr32) {
		t.Errorf("Expected the single relocation entry to be ADDR32, got type %d", siteType)
	}
	endType := b[relocTableOff+16+2]
	if endType != rDolphinEnd {
		t.Errorf("Expected the relocation table to terminate with END, got type %d", endType)
	}
}
