package core

import "testing"

func TestPlayerVisorByIDFindsKnownVisor(t *testing.T) {
	v := PlayerVisorByID(1)
	if v != PlayerVisorScan {
		t.Errorf("Expected PlayerVisorByID(1) to return PlayerVisorScan, got %v", v.Name)
	}
}

func TestPlayerVisorByIDFallsBackToUnknownEnum(t *testing.T) {
	v := PlayerVisorByID(99)
	if v.ID != 99 {
		t.Errorf("Expected the unknown id to be preserved, got %d", v.ID)
	}
	if v.Name != "Unknown 0x63" {
		t.Errorf("Expected an UnknownEnum name, got %q", v.Name)
	}
}

func TestPlayerVisorsRosterIsRetailBitfieldOrder(t *testing.T) {
	for i, v := range PlayerVisors {
		if v.ID != uint32(i) {
			t.Errorf("position %d: Expected ID %d, got %d", i, i, v.ID)
		}
	}
}
