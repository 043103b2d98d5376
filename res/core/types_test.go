package core

import "testing"

func TestPoint3AddAndSubAreInverses(t *testing.T) {
	p := Point3{X: 1, Y: 2, Z: 3}
	q := Point3{X: 4, Y: -1, Z: 0.5}
	if got := p.Add(q).Sub(q); got != p {
		t.Errorf("Expected Add then Sub to round-trip to %v, got %v", p, got)
	}
}

func TestAABBCenterIsMidpoint(t *testing.T) {
	b := AABB{Min: Point3{X: -2, Y: 0, Z: 4}, Max: Point3{X: 2, Y: 10, Z: 6}}
	want := Point3{X: 0, Y: 5, Z: 5}
	if got := b.Center(); got != want {
		t.Errorf("Expected: %v, got: %v", want, got)
	}
}

func TestKindOfRoundTripsThroughString(t *testing.T) {
	k := KindOf("STRG")
	if k.String() != "STRG" {
		t.Errorf("Expected: %q, got: %q", "STRG", k.String())
	}
}

func TestKindOfPadsShortTags(t *testing.T) {
	k := KindOf("BNR")
	if k.String() != "BNR\x00" {
		t.Errorf("Expected a zero-padded 4th byte, got %q", k.String())
	}
}

func TestResourceKeyStringFormatsKindAndID(t *testing.T) {
	rk := ResourceKey{ID: AssetId(0x1234), Kind: KindSTRG}
	want := "STRG:0x00001234"
	if got := rk.String(); got != want {
		t.Errorf("Expected: %q, got: %q", want, got)
	}
}

func TestResourceKeyEqualityIsByValue(t *testing.T) {
	a := ResourceKey{ID: 1, Kind: KindMREA}
	b := ResourceKey{ID: 1, Kind: KindMREA}
	if a != b {
		t.Errorf("Expected two ResourceKeys with the same fields to compare equal")
	}
}
