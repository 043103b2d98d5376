package patcher

import "testing"

func TestRoomFindsKnownRoom(t *testing.T) {
	c := NewCatalog()
	r, ok := c.Room("Tallon Overworld", "Artifact Temple")
	if !ok {
		t.Fatalf("Expected to find Artifact Temple in Tallon Overworld")
	}
	if r.RoomID != 0x11BE8F30 {
		t.Errorf("Expected: %#x, got: %#x", uint32(0x11BE8F30), r.RoomID)
	}
	if len(r.Pickups) != 1 {
		t.Errorf("Expected 1 pickup slot, got %d", len(r.Pickups))
	}
}

func TestRoomMissingNameReportsNotFound(t *testing.T) {
	c := NewCatalog()
	if _, ok := c.Room("Tallon Overworld", "Nonexistent Room"); ok {
		t.Errorf("Expected Room to report not-found for an unknown name")
	}
}

func TestRoomMissingWorldReportsNotFound(t *testing.T) {
	c := NewCatalog()
	if _, ok := c.Room("Nonexistent World", "Anything"); ok {
		t.Errorf("Expected Room to report not-found for an unknown world")
	}
}

func TestRoomEveryWorldHasAtLeastOneRoom(t *testing.T) {
	c := NewCatalog()
	for world, rooms := range c.Worlds {
		if len(rooms) == 0 {
			t.Errorf("world %q: Expected at least one room", world)
		}
	}
}

func TestRoomReturnsAddressableEntry(t *testing.T) {
	c := NewCatalog()
	r, ok := c.Room("Magmoor Caverns", "Lava Lake")
	if !ok {
		t.Fatalf("Expected to find Lava Lake")
	}
	// Room returns a pointer into the backing slice, not a copy.
	r.MapaID = 0xFFFFFFFF
	r2, _ := c.Room("Magmoor Caverns", "Lava Lake")
	if r2.MapaID != 0xFFFFFFFF {
		t.Errorf("Expected Room to return a pointer into the catalog's backing slice")
	}
}
