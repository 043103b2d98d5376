package pak

import (
	"testing"

	"github.com/tallonforge/primeforge/res"
	"github.com/tallonforge/primeforge/res/core"
)

func resourceAt(id uint32) *res.Resource {
	return res.NewResource(core.AssetId(id), core.KindSTRG, false, nil)
}

func TestCursorWalksEveryResourceOnce(t *testing.T) {
	resources := []*res.Resource{resourceAt(1), resourceAt(2), resourceAt(3)}
	c := NewCursor(resources)

	var seen []uint32
	for {
		r, ok := c.Peek()
		if !ok {
			break
		}
		seen = append(seen, uint32(r.ID))
		c.Advance()
	}

	want := []uint32{1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("Expected %d resources, got %d: %v", len(want), len(seen), seen)
	}
	for i, id := range want {
		if seen[i] != id {
			t.Errorf("position %d: Expected: %v, got: %v", i, id, seen[i])
		}
	}
}

func TestCursorInsertAfterSkipsInsertedOnTheTriggeringAdvance(t *testing.T) {
	c := NewCursor([]*res.Resource{resourceAt(1), resourceAt(2)})

	r, _ := c.Peek()
	if r.ID != 1 {
		t.Fatalf("Expected first resource id 1, got %#x", uint32(r.ID))
	}
	c.InsertAfter(resourceAt(100), resourceAt(101))
	c.Advance() // must skip past the two just-inserted resources

	r, ok := c.Peek()
	if !ok || r.ID != 2 {
		t.Fatalf("Expected to land on resource 2 after skipping inserts, got %v ok=%v", r, ok)
	}
}

func TestCursorInsertAfterIsNotVisitedInTheSameWalk(t *testing.T) {
	c := NewCursor([]*res.Resource{resourceAt(1)})
	c.InsertAfter(resourceAt(100))

	var seen []uint32
	for {
		r, ok := c.Peek()
		if !ok {
			break
		}
		seen = append(seen, uint32(r.ID))
		c.Advance()
	}

	want := []uint32{1}
	if len(seen) != len(want) {
		t.Fatalf("Expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("position %d: Expected: %v, got: %v", i, want[i], seen[i])
		}
	}
}

func TestCursorExhaustionIsBoolNotError(t *testing.T) {
	c := NewCursor(nil)
	if _, ok := c.Peek(); ok {
		t.Errorf("Expected Peek on an empty cursor to report ok=false")
	}
	c.Advance() // must not panic past the end
}
