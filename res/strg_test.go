package res

import (
	"testing"

	"github.com/tallonforge/primeforge/res/core"
)

func TestStrgRoundTripsMultipleLanguagesAndStrings(t *testing.T) {
	strg := &Strg{
		Languages: []StrgLanguage{
			{Tag: core.KindOf("ENGL"), Strings: []string{"Energy Tank", "Missile Expansion"}},
			{Tag: core.KindOf("FREN"), Strings: []string{"Reservoir d'energie", "Extension de missiles"}},
		},
	}

	raw, err := serializeStrg(strg)
	if err != nil {
		t.Fatalf("serializeStrg: %v", err)
	}

	p, err := parseStrg(raw)
	if err != nil {
		t.Fatalf("parseStrg: %v", err)
	}
	got, ok := p.(*Strg)
	if !ok {
		t.Fatalf("Expected *Strg, got %T", p)
	}

	if len(got.Languages) != 2 {
		t.Fatalf("Expected 2 languages, got %d", len(got.Languages))
	}
	for i, lang := range strg.Languages {
		if got.Languages[i].Tag != lang.Tag {
			t.Errorf("language %d: Expected tag %v, got %v", i, lang.Tag, got.Languages[i].Tag)
		}
		if len(got.Languages[i].Strings) != len(lang.Strings) {
			t.Fatalf("language %d: Expected %d strings, got %d", i, len(lang.Strings), len(got.Languages[i].Strings))
		}
		for j, s := range lang.Strings {
			if got.Languages[i].Strings[j] != s {
				t.Errorf("language %d string %d: Expected: %q, got: %q", i, j, s, got.Languages[i].Strings[j])
			}
		}
	}
}

func TestStrgRoundTripsEmptyString(t *testing.T) {
	strg := &Strg{Languages: []StrgLanguage{{Tag: core.KindOf("ENGL"), Strings: []string{"", "non-empty"}}}}

	raw, err := serializeStrg(strg)
	if err != nil {
		t.Fatalf("serializeStrg: %v", err)
	}
	p, err := parseStrg(raw)
	if err != nil {
		t.Fatalf("parseStrg: %v", err)
	}
	got := p.(*Strg)
	if got.Languages[0].Strings[0] != "" {
		t.Errorf("Expected an empty string to round-trip as empty, got %q", got.Languages[0].Strings[0])
	}
	if got.Languages[0].Strings[1] != "non-empty" {
		t.Errorf("Expected the following string to be unaffected, got %q", got.Languages[0].Strings[1])
	}
}

func TestSerializeStrgRejectsWrongPayloadType(t *testing.T) {
	if _, err := serializeStrg(&Mrea{}); err == nil {
		t.Errorf("Expected an error when serializing a non-Strg payload as STRG")
	}
}

func TestStrgKindIsSTRG(t *testing.T) {
	s := &Strg{}
	if s.Kind() != core.KindSTRG {
		t.Errorf("Expected Kind() to report KindSTRG, got %v", s.Kind())
	}
}
