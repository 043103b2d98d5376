package res

import (
	"errors"
	"testing"

	"github.com/tallonforge/primeforge/res/core"
)

func TestResourceBytesReturnsRawWhenUnmodified(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	r := NewResource(1, core.KindSTRG, false, raw)

	k := NewKernel()
	got, err := r.Bytes(k)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(got) != string(raw) {
		t.Errorf("Expected the original raw bytes untouched, got %v", got)
	}
}

func TestResourceMutableReserializesOnBytes(t *testing.T) {
	k := NewKernel()
	strg := &Strg{Languages: []StrgLanguage{{Tag: core.KindOf("ENGL"), Strings: []string{"hi"}}}}
	raw, err := k.Serialize(core.KindSTRG, strg)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	r := NewResource(1, core.KindSTRG, false, raw)
	p, err := r.Mutable(k)
	if err != nil {
		t.Fatalf("Mutable: %v", err)
	}
	if !r.IsModified() {
		t.Errorf("Expected Mutable to mark the resource Modified")
	}
	p.(*Strg).Languages[0].Strings[0] = "bye"

	got, err := r.Bytes(k)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	reparsed, err := k.Parse(core.KindSTRG, got)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if reparsed.(*Strg).Languages[0].Strings[0] != "bye" {
		t.Errorf("Expected the edit to survive a Bytes->Parse round trip, got %q", reparsed.(*Strg).Languages[0].Strings[0])
	}
}

func TestResourceTypedDoesNotMarkModified(t *testing.T) {
	k := NewKernel()
	strg := &Strg{Languages: []StrgLanguage{{Tag: core.KindOf("ENGL"), Strings: []string{"hi"}}}}
	raw, _ := k.Serialize(core.KindSTRG, strg)

	r := NewResource(1, core.KindSTRG, false, raw)
	if _, err := r.Typed(k); err != nil {
		t.Fatalf("Typed: %v", err)
	}
	if r.IsModified() {
		t.Errorf("Expected Typed to leave the resource unmodified")
	}
	got, _ := r.Bytes(k)
	if string(got) != string(raw) {
		t.Errorf("Expected Bytes to still return the original raw bytes after a read-only Typed access")
	}
}

func TestKernelParseReportsUnknownKind(t *testing.T) {
	k := NewKernel()
	_, err := k.Parse(core.KindOf("ZZZZ"), []byte{1, 2, 3})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}

func TestKernelParseRecoversPanicIntoErrParsing(t *testing.T) {
	k := NewKernel()
	// Four bytes isn't enough for STRG's four leading uint32 header
	// fields, so parseStrg will index out of range.
	_, err := k.Parse(core.KindSTRG, []byte{1, 2, 3, 4})
	if !errors.Is(err, ErrParsing) {
		t.Errorf("Expected ErrParsing from a recovered panic, got %v", err)
	}
}

func TestResourceKeyIdentifiesResource(t *testing.T) {
	r := NewResource(core.AssetId(0x42), core.KindSTRG, true, nil)
	want := core.ResourceKey{ID: core.AssetId(0x42), Kind: core.KindSTRG}
	if r.Key() != want {
		t.Errorf("Expected: %v, got: %v", want, r.Key())
	}
}
