package patcher

import (
	"testing"

	"github.com/tallonforge/primeforge/res"
	"github.com/tallonforge/primeforge/res/core"
)

func newAreaEditorWithPickupTrio(pickupID, hudmemoID, audioID uint32) *AreaEditor {
	area := &res.MlvlArea{
		LayerCount:      1,
		LayerFlags:      1,
		LayerNames:      []string{"Default"},
		DependencyLists: [][]core.ResourceKey{{}, {}},
	}
	pickup := &res.SclyObject{
		InstanceID: pickupID,
		Data: &res.Pickup{
			Name:      "stock pickup",
			Position:  core.Point3{X: 1, Y: 2, Z: 3},
			KindID:    core.PickupIDMissile,
			ModelCMDL: 0x1000,
		},
	}
	hudmemo := &res.SclyObject{
		InstanceID: hudmemoID,
		Data:       &res.HudMemo{Name: "stock hudmemo"},
	}
	audio := &res.SclyObject{
		InstanceID: audioID,
		Data:       &res.StreamedAudio{Name: "stock audio"},
	}
	mrea := &res.Mrea{Scly: &res.Scly{Layers: []res.SclyLayer{{Objects: []*res.SclyObject{pickup, hudmemo, audio}}}}}
	return NewAreaEditor(area, mrea)
}

func TestCurrencyRefillUsesZeroMaxIncrease(t *testing.T) {
	kind := core.PickupKindByID(core.PickupIDHealthRefill)
	n := uint32(5)
	curr, max := currency(kind, &n)
	if curr != 5 || max != 0 {
		t.Errorf("Expected curr=5 max=0 for a refill kind, got curr=%d max=%d", curr, max)
	}
}

func TestCurrencyNonRefillMatchesMaxIncreaseToCount(t *testing.T) {
	kind := core.PickupKindByID(core.PickupIDMissile)
	n := uint32(5)
	curr, max := currency(kind, &n)
	if curr != 5 || max != 5 {
		t.Errorf("Expected curr=max=5 for a non-refill kind, got curr=%d max=%d", curr, max)
	}
}

func TestCurrencyDefaultsToOneWhenCountIsNil(t *testing.T) {
	kind := core.PickupKindByID(core.PickupIDMissile)
	curr, max := currency(kind, nil)
	if curr != 1 || max != 1 {
		t.Errorf("Expected curr=max=1 when count is nil, got curr=%d max=%d", curr, max)
	}
}

func TestApplyPickupRecentersAndUpdatesHudmemo(t *testing.T) {
	state := NewState()
	editor := newAreaEditorWithPickupTrio(0x10, 0x11, 0x12)
	loc := PickupLocation{PickupInstanceID: 0x10, HudMemoInstanceID: 0x11, AudioInstanceID: 0x12}
	originalBox := core.AABB{Min: core.Point3{X: -1, Y: -1, Z: -1}, Max: core.Point3{X: 1, Y: 1, Z: 1}}
	edit := PickupEdit{
		KindID:      core.PickupIDChargeBeam,
		HudmemoSTRG: 0x2000,
		ModelCMDL:   0x3000,
		ModelBox:    core.AABB{Min: core.Point3{X: 0, Y: 0, Z: 0}, Max: core.Point3{X: 2, Y: 2, Z: 2}},
	}

	if err := ApplyPickup(state, editor, loc, edit, originalBox); err != nil {
		t.Fatalf("ApplyPickup: %v", err)
	}

	pickupObj, _ := editor.FindObject(0x10)
	pickup, _ := pickupObj.AsPickupMut()
	if pickup.KindID != core.PickupIDChargeBeam {
		t.Errorf("Expected KindID to be updated, got %d", pickup.KindID)
	}
	if pickup.ModelCMDL != 0x3000 {
		t.Errorf("Expected ModelCMDL to be updated, got %#x", uint32(pickup.ModelCMDL))
	}
	// delta = newBox.Center() - originalBox.Center() = (1,1,1) - (0,0,0) = (1,1,1)
	want := core.Point3{X: 2, Y: 3, Z: 4}
	if pickup.Position != want {
		t.Errorf("Expected recentered position %v, got %v", want, pickup.Position)
	}

	hudmemoObj, _ := editor.FindObject(0x11)
	hudmemo, _ := hudmemoObj.AsHudMemo()
	if hudmemo.MessageSTRG != 0x2000 {
		t.Errorf("Expected hudmemo MessageSTRG to be updated, got %#x", uint32(hudmemo.MessageSTRG))
	}
}

func TestApplyPickupObfuscatedKeepsOriginalHitboxAndModel(t *testing.T) {
	state := NewState()
	editor := newAreaEditorWithPickupTrio(0x10, 0x11, 0x12)
	loc := PickupLocation{PickupInstanceID: 0x10, HudMemoInstanceID: 0x11, AudioInstanceID: 0x12}
	originalBox := core.AABB{Min: core.Point3{X: -1, Y: -1, Z: -1}, Max: core.Point3{X: 1, Y: 1, Z: 1}}
	edit := PickupEdit{
		KindID:      core.PickupIDChargeBeam,
		HudmemoSTRG: 0x2000,
		ModelCMDL:   0x3000,
		ModelBox:    core.AABB{Min: core.Point3{X: 10, Y: 10, Z: 10}, Max: core.Point3{X: 20, Y: 20, Z: 20}},
		Obfuscated:  true,
	}

	if err := ApplyPickup(state, editor, loc, edit, originalBox); err != nil {
		t.Fatalf("ApplyPickup: %v", err)
	}

	pickupObj, _ := editor.FindObject(0x10)
	pickup, _ := pickupObj.AsPickupMut()
	// Obfuscated pickups never reveal their true contents via model or
	// hitbox, so ModelCMDL stays untouched and the recenter delta is zero
	// (modelBox falls back to originalBox).
	if pickup.ModelCMDL == 0x3000 {
		t.Errorf("Expected ModelCMDL to remain unchanged for an obfuscated pickup")
	}
	if pickup.Position != (core.Point3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Expected position to be unchanged when the true hitbox is preserved, got %v", pickup.Position)
	}
}

func TestApplyPickupUnknownInstanceErrors(t *testing.T) {
	state := NewState()
	editor := newAreaEditorWithPickupTrio(0x10, 0x11, 0x12)
	loc := PickupLocation{PickupInstanceID: 0xBADBAD, HudMemoInstanceID: 0x11, AudioInstanceID: 0x12}

	if err := ApplyPickup(state, editor, loc, PickupEdit{}, core.AABB{}); err == nil {
		t.Errorf("Expected an error when the pickup instance id isn't found")
	}
}

func TestApplyPickupArtifactAppendsLayerChangeFunction(t *testing.T) {
	state := NewState()
	editor := newAreaEditorWithPickupTrio(0x10, 0x11, 0x12)
	loc := PickupLocation{PickupInstanceID: 0x10, HudMemoInstanceID: 0x11, AudioInstanceID: 0x12}
	edit := PickupEdit{KindID: core.PickupIDArtifactOfTruth, HudmemoSTRG: 0x2000, ModelCMDL: 0x3000}

	if err := ApplyPickup(state, editor, loc, edit, core.AABB{}); err != nil {
		t.Fatalf("ApplyPickup: %v", err)
	}

	newLayer := editor.mrea.Scly.Layers[len(editor.mrea.Scly.Layers)-1]
	foundFn := false
	for _, obj := range newLayer.Objects {
		if fn, ok := obj.AsSpecialFunction(); ok && fn.Function == specialFunctionLayerChange {
			foundFn = true
		}
	}
	if !foundFn {
		t.Errorf("Expected an artifact-layer-change SpecialFunction in the new layer")
	}
}

func TestApplyPickupRespawnAddsSecondInactiveLayer(t *testing.T) {
	state := NewState()
	editor := newAreaEditorWithPickupTrio(0x10, 0x11, 0x12)
	loc := PickupLocation{PickupInstanceID: 0x10, HudMemoInstanceID: 0x11, AudioInstanceID: 0x12}
	edit := PickupEdit{KindID: core.PickupIDMissile, HudmemoSTRG: 0x2000, ModelCMDL: 0x3000, Respawn: true}

	layersBefore := len(editor.mrea.Scly.Layers)
	if err := ApplyPickup(state, editor, loc, edit, core.AABB{}); err != nil {
		t.Fatalf("ApplyPickup: %v", err)
	}
	if len(editor.mrea.Scly.Layers) != layersBefore+2 {
		t.Fatalf("Expected Respawn to add 2 layers (pickup + respawn), got %d new layers", len(editor.mrea.Scly.Layers)-layersBefore)
	}

	respawnLayerIdx := uint32(len(editor.mrea.Scly.Layers) - 1)
	if editor.area.LayerFlags&(1<<respawnLayerIdx) != 0 {
		t.Errorf("Expected the respawn layer to start inactive")
	}
}

func TestAddExtraPickupRequiresPosition(t *testing.T) {
	state := NewState()
	editor := newAreaEditorWithPickupTrio(0x10, 0x11, 0x12)
	edit := PickupEdit{KindID: core.PickupIDMissile, HudmemoSTRG: 0x2000, ModelCMDL: 0x3000}

	if err := AddExtraPickup(state, editor, edit); err == nil {
		t.Errorf("Expected an error when edit.Position is nil")
	}
}

func TestAddExtraPickupAddsDeactivateFunctionUnlessRespawn(t *testing.T) {
	state := NewState()
	editor := newAreaEditorWithPickupTrio(0x10, 0x11, 0x12)
	pos := core.Point3{X: 5, Y: 6, Z: 7}
	edit := PickupEdit{KindID: core.PickupIDMissile, HudmemoSTRG: 0x2000, ModelCMDL: 0x3000, Position: &pos}

	if err := AddExtraPickup(state, editor, edit); err != nil {
		t.Fatalf("AddExtraPickup: %v", err)
	}
	layer := editor.mrea.Scly.Layers[len(editor.mrea.Scly.Layers)-1]
	hasDeactivate := false
	hasPickup := false
	for _, obj := range layer.Objects {
		if fn, ok := obj.AsSpecialFunction(); ok && fn.Function == specialFunctionLayerChange {
			hasDeactivate = true
		}
		if p, ok := obj.AsPickup(); ok && p.Position == pos {
			hasPickup = true
		}
	}
	if !hasDeactivate {
		t.Errorf("Expected a deactivate-layer SpecialFunction when Respawn is false")
	}
	if !hasPickup {
		t.Errorf("Expected the new pickup object to carry edit.Position")
	}
}

func TestAddExtraPickupRespawnSkipsDeactivateFunction(t *testing.T) {
	state := NewState()
	editor := newAreaEditorWithPickupTrio(0x10, 0x11, 0x12)
	pos := core.Point3{X: 5, Y: 6, Z: 7}
	edit := PickupEdit{KindID: core.PickupIDMissile, HudmemoSTRG: 0x2000, ModelCMDL: 0x3000, Position: &pos, Respawn: true}

	if err := AddExtraPickup(state, editor, edit); err != nil {
		t.Fatalf("AddExtraPickup: %v", err)
	}
	layer := editor.mrea.Scly.Layers[len(editor.mrea.Scly.Layers)-1]
	for _, obj := range layer.Objects {
		if fn, ok := obj.AsSpecialFunction(); ok && fn.Function == specialFunctionLayerChange {
			t.Errorf("Expected no deactivate-layer SpecialFunction when Respawn is true")
		}
	}
}
