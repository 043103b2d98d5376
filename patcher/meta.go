// This file implements the Pickup Meta Layer (C9): translating a
// PickupConfig + PickupLocation into either a Replace-in-place or an
// Add-extra scripting edit, per §4.7. Grounded on original_source's
// pickup_meta.rs (PickupModel::pickup_data / from_type, the AABB-recenter
// helper, and the currency rules).

package patcher

import (
	"fmt"

	"github.com/tallonforge/primeforge/res"
	"github.com/tallonforge/primeforge/res/core"
)

// PickupEdit is the resolved input to ApplyPickup, after a patchcfg
// PickupConfig has been looked up against the pickup-kind table and the
// custom-asset pool.
type PickupEdit struct {
	KindID       uint32
	Count        *uint32
	Position     *core.Point3
	HudmemoSTRG  core.AssetId
	ScanSTRG     core.AssetId
	ModelCMDL    core.AssetId
	ModelBox     core.AABB
	Respawn      bool
	Obfuscated   bool
}

// currency resolves the curr_increase/max_increase pair per §4.7's
// currency rules.
func currency(kind *core.PickupKind, count *uint32) (curr, max int32) {
	var n uint32
	if count != nil {
		n = *count
	} else {
		n = 1
	}
	if kind.IsRefill {
		return int32(n), 0
	}
	return int32(n), int32(n)
}

// ApplyPickup performs the Replace-in-place edit: it mutates the
// existing Pickup and HudMemo (the StreamedAudio object of the trio is
// left unchanged), recenters the model via
// the original's CMDL bounds delta, appends a post-pickup relay carrying
// the location's preserved connections, and (for artifacts) appends an
// artifact-layer-change SpecialFunction triggered ARRIVED. If
// edit.Respawn is set, a second layer holding an auto-spawn timer is
// added and wired in via a layer-change SpecialFunction on the first.
func ApplyPickup(state *State, editor *AreaEditor, loc PickupLocation, edit PickupEdit, originalBox core.AABB) error {
	kind := core.PickupKindByID(edit.KindID)

	pickupObj, ok := editor.FindObject(loc.PickupInstanceID)
	if !ok {
		return fmt.Errorf("patcher: ApplyPickup: pickup instance %#x not found", loc.PickupInstanceID)
	}
	pickup, ok := pickupObj.AsPickupMut()
	if !ok {
		return fmt.Errorf("patcher: ApplyPickup: instance %#x is not a Pickup", loc.PickupInstanceID)
	}

	layerIdx := editor.AddLayer(fmt.Sprintf("patcher-pickup-%08x", loc.PickupInstanceID))

	deps := []core.ResourceKey{
		{ID: edit.ModelCMDL, Kind: core.KindCMDL},
		{ID: edit.HudmemoSTRG, Kind: core.KindSTRG},
	}
	if edit.ScanSTRG != 0 {
		deps = append(deps, core.ResourceKey{ID: edit.ScanSTRG, Kind: core.KindSCAN})
	}
	editor.AddDependencies(layerIdx, deps)

	curr, maxInc := currency(kind, edit.Count)

	modelBox := edit.ModelBox
	if edit.Obfuscated {
		modelBox = originalBox // obfuscated pickups keep the true hitbox
	}
	delta := modelBox.Center().Sub(originalBox.Center())
	pickup.Position = pickup.Position.Add(delta)

	pickup.KindID = edit.KindID
	pickup.CurrIncrease = curr
	pickup.MaxIncrease = maxInc
	if !edit.Obfuscated {
		pickup.ModelCMDL = edit.ModelCMDL
	}

	if hudmemoObj, ok := editor.FindObject(loc.HudMemoInstanceID); ok {
		if hudmemo, ok := hudmemoObj.AsHudMemo(); ok {
			hudmemo.MessageSTRG = edit.HudmemoSTRG
		}
	}

	relay := &res.SclyObject{
		InstanceID:  state.InstanceID(layerIdx),
		Connections: loc.RelayConnections,
		Data:        &res.Relay{Name: "post-pickup relay", Active: true},
	}
	editor.AddObject(layerIdx, relay)

	if core.IsArtifact(edit.KindID) {
		fn := &res.SclyObject{
			InstanceID: state.InstanceID(layerIdx),
			Data: &res.SpecialFunction{
				Name:     "artifact layer change",
				Function: specialFunctionLayerChange,
				Arg0:     fmt.Sprintf("artifact-layer-%d", core.ArtifactLayerIndex(edit.KindID)),
				Active:   true,
			},
		}
		editor.AddObject(layerIdx, fn)
	}

	if edit.Respawn {
		respawnLayer := editor.AddLayer(fmt.Sprintf("patcher-respawn-%08x", loc.PickupInstanceID))
		editor.SetLayerActive(respawnLayer, false)

		timer := &res.SclyObject{
			InstanceID: state.InstanceID(respawnLayer),
			Data:       &res.GenericObject{Name: "respawn timer", Active: true},
		}
		editor.AddObject(respawnLayer, timer)

		enable := &res.SclyObject{
			InstanceID: state.InstanceID(layerIdx),
			Data: &res.SpecialFunction{
				Name:     "enable respawn layer",
				Function: specialFunctionLayerChange,
				Arg0:     fmt.Sprintf("layer-%d", respawnLayer),
				Active:   true,
			},
		}
		editor.AddObject(layerIdx, enable)
	}

	return nil
}

// specialFunctionLayerChange is this codebase's internal SpecialFunction
// sub-type code for "enable/disable a named scripting layer."
const specialFunctionLayerChange uint32 = 0x01

// AddExtraPickup performs the Add-extra edit: a brand-new Pickup +
// HudMemo + Sound fabricated in a fresh layer at edit.Position (required
// for extras), deactivated after first pickup unless edit.Respawn is set.
func AddExtraPickup(state *State, editor *AreaEditor, edit PickupEdit) error {
	if edit.Position == nil {
		return fmt.Errorf("patcher: AddExtraPickup: position is required for extra pickups")
	}
	kind := core.PickupKindByID(edit.KindID)
	curr, maxInc := currency(kind, edit.Count)

	layerIdx := editor.AddLayer(fmt.Sprintf("patcher-extra-%08x", state.Next()))
	editor.AddDependencies(layerIdx, []core.ResourceKey{
		{ID: edit.ModelCMDL, Kind: core.KindCMDL},
		{ID: edit.HudmemoSTRG, Kind: core.KindSTRG},
	})

	pickupID := state.InstanceID(layerIdx)
	pickupObj := &res.SclyObject{
		InstanceID: pickupID,
		Data: &res.Pickup{
			Name:         "extra pickup",
			Position:     *edit.Position,
			Scale:        core.Point3{X: 1, Y: 1, Z: 1},
			KindID:       edit.KindID,
			CurrIncrease: curr,
			MaxIncrease:  maxInc,
			ModelCMDL:    edit.ModelCMDL,
		},
	}
	editor.AddObject(layerIdx, pickupObj)

	hudmemoObj := &res.SclyObject{
		InstanceID: state.InstanceID(layerIdx),
		Data:       &res.HudMemo{Name: "extra hudmemo", MessageSTRG: edit.HudmemoSTRG, DisplayTime: 3, ClearOnDone: true},
	}
	editor.AddObject(layerIdx, hudmemoObj)

	soundObj := &res.SclyObject{
		InstanceID: state.InstanceID(layerIdx),
		Data:       &res.GenericObject{Name: "extra attainment audio", Position: *edit.Position, Active: true},
	}
	editor.AddObject(layerIdx, soundObj)

	if !edit.Respawn {
		deactivate := &res.SclyObject{
			InstanceID: state.InstanceID(layerIdx),
			Data: &res.SpecialFunction{
				Name:     "deactivate extra layer",
				Function: specialFunctionLayerChange,
				Arg0:     fmt.Sprintf("layer-%d", layerIdx),
				Active:   true,
			},
		}
		editor.AddObject(layerIdx, deactivate)
	}

	return nil
}
