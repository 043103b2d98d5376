// This file implements the Archive Cursor (C2): a single-pass,
// insert-after-capable iterator over an archive's resource list. Its
// shape — a small stateful type with borrow-don't-return-collections
// methods, infallible exhaustion represented by a bool rather than an
// error — is the same contract repdecoder.Decoder uses for "keep
// advancing until there's nothing left", generalized from "decode the
// next section" to "visit the next archive resource, allowing inserts".
package pak

import "github.com/tallonforge/primeforge/res"

// Cursor walks an Archive's resource list. The zero value is not usable;
// construct with NewCursor.
//
// Iteration contract (§4.2): Peek/Value borrow without consuming,
// Advance moves forward and never revisits an inserted resource in the
// same step, InsertAfter splices a sequence immediately following the
// current position without moving the cursor. There are no error
// returns — exhaustion is represented by Peek/Value returning (nil,
// false).
type Cursor struct {
	resources []*res.Resource
	pos       int

	// inserted maps a position to how many resources were spliced in
	// immediately after it, so the next Advance can skip over them.
	inserted map[int]int
}

// NewCursor builds a Cursor positioned on the first resource.
func NewCursor(resources []*res.Resource) *Cursor {
	return &Cursor{resources: resources, pos: 0}
}

// Peek borrows the current resource without consuming it.
func (c *Cursor) Peek() (*res.Resource, bool) {
	if c.pos >= len(c.resources) {
		return nil, false
	}
	return c.resources[c.pos], true
}

// Value borrows the current resource mutably; since *res.Resource is
// already a pointer, this is Peek under another name kept for symmetry
// with the four-operation contract in §4.2.
func (c *Cursor) Value() (*res.Resource, bool) {
	return c.Peek()
}

// Advance moves to the next original element. Resources spliced in by
// InsertAfter at the current position are skipped over by one Advance
// call, so each original element is visited exactly once and inserted
// elements are not visited in this walk.
func (c *Cursor) Advance() {
	if c.pos >= len(c.resources) {
		return
	}
	c.pos += 1 + c.inserted[c.pos]
	delete(c.inserted, c.pos-1)
}

// InsertAfter splices extra immediately after the current position. The
// cursor does not move; the next Advance call skips over the spliced
// resources so the step that requested the insert doesn't re-visit them.
func (c *Cursor) InsertAfter(extra ...*res.Resource) {
	if len(extra) == 0 {
		return
	}
	if c.inserted == nil {
		c.inserted = make(map[int]int)
	}
	at := c.pos + 1
	tail := append([]*res.Resource(nil), c.resources[at:]...)
	c.resources = append(c.resources[:at], append(append([]*res.Resource(nil), extra...), tail...)...)
	c.inserted[c.pos] += len(extra)
}

// Resources returns the full resource list in its current order,
// reflecting every insert made so far. Used once the driving patch loop
// has finished walking the archive and needs to persist it.
func (c *Cursor) Resources() []*res.Resource {
	return c.resources
}
