package core

import "testing"

func TestPickupKindByIDFindsKnownKind(t *testing.T) {
	k := PickupKindByID(PickupIDMissile)
	if k.Name != "Missile" {
		t.Errorf("Expected: %q, got: %q", "Missile", k.Name)
	}
	if k.IsRefill {
		t.Errorf("Expected Missile to not be a refill kind")
	}
}

func TestPickupKindByIDHealthRefillIsRefill(t *testing.T) {
	k := PickupKindByID(PickupIDHealthRefill)
	if !k.IsRefill {
		t.Errorf("Expected Health Refill to be a refill kind")
	}
}

func TestPickupKindByIDFallsBackToUnknownEnum(t *testing.T) {
	k := PickupKindByID(0xFFFF)
	if k.ID != 0xFFFF {
		t.Errorf("Expected the unknown id to be preserved, got %#x", k.ID)
	}
	if k.Name != "Unknown 0xffff" {
		t.Errorf("Expected an UnknownEnum name, got %q", k.Name)
	}
	if k.IsRefill {
		t.Errorf("Expected a synthetic unknown kind to not be a refill kind")
	}
}

func TestDefaultModelForKindMapsBeamsAndVisors(t *testing.T) {
	cases := []struct {
		kindID uint32
		want   *PickupModel
	}{
		{PickupIDIceBeam, PickupModelIceBeam},
		{PickupIDMissile, PickupModelMissile},
		{PickupIDScanVisor, PickupModelVisor},
		{PickupIDThermalVisor, PickupModelVisor},
		{PickupIDArtifactOfTruth, PickupModelArtifactOfTruth},
	}
	for _, c := range cases {
		if got := DefaultModelForKind(c.kindID); got != c.want {
			t.Errorf("DefaultModelForKind(%d): Expected: %v, got: %v", c.kindID, c.want.Name, got.Name)
		}
	}
}

func TestDefaultModelForKindFallsBackToNothing(t *testing.T) {
	if got := DefaultModelForKind(PickupIDPowerSuit); got != PickupModelNothing {
		t.Errorf("Expected PowerSuit to default to the Nothing model, got %v", got.Name)
	}
}

func TestIsArtifactMatchesArtifactKindIDsOnly(t *testing.T) {
	for _, id := range ArtifactKindIDs {
		if !IsArtifact(id) {
			t.Errorf("Expected kind id %d to be reported as an artifact", id)
		}
	}
	if IsArtifact(PickupIDMissile) {
		t.Errorf("Expected Missile to not be reported as an artifact")
	}
}

func TestArtifactLayerIndexMatchesChozoLoreOrder(t *testing.T) {
	if idx := ArtifactLayerIndex(PickupIDArtifactOfTruth); idx != 0 {
		t.Errorf("Expected Artifact Of Truth at layer index 0, got %d", idx)
	}
	if idx := ArtifactLayerIndex(PickupIDArtifactOfNewborn); idx != 11 {
		t.Errorf("Expected Artifact Of Newborn at layer index 11, got %d", idx)
	}
}

func TestArtifactLayerIndexReportsMinusOneForNonArtifact(t *testing.T) {
	if idx := ArtifactLayerIndex(PickupIDMissile); idx != -1 {
		t.Errorf("Expected -1 for a non-artifact kind, got %d", idx)
	}
}
