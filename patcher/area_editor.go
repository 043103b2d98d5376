// This file implements the Scripting-Layer Editor (C3): a paired view
// over one MREA and its matching MLVL area record, grounded on the
// original engine's mlvl_wrapper.rs area-view abstraction.

package patcher

import (
	"fmt"

	"github.com/tallonforge/primeforge/res"
	"github.com/tallonforge/primeforge/res/core"
)

// AreaEditor is the paired MREA/MLVL view for one area. Every mutation
// method preserves invariants (d)/(e)/(f) from §3 by construction: there
// is no exported way to add a layer to one side without the other, or to
// desynchronize layer_count/layer_names/dependency_lists' lengths.
type AreaEditor struct {
	area *res.MlvlArea
	mrea *res.Mrea
}

// NewAreaEditor binds an MLVL area record to its MREA's scripting
// section. Both must already refer to the same area (area.MreaID ==
// the MREA's own asset id, checked by the caller before binding).
func NewAreaEditor(area *res.MlvlArea, mrea *res.Mrea) *AreaEditor {
	return &AreaEditor{area: area, mrea: mrea}
}

// Mrea returns the bound area's MREA payload.
func (e *AreaEditor) Mrea() *res.Mrea { return e.mrea }

// MreaID returns the bound area's MREA asset id.
func (e *AreaEditor) MreaID() core.AssetId { return e.area.MreaID }

// AddLayer appends a new scripting layer, keeping the MLVL area record
// and the MREA's scripting section in lockstep: extends layer_flags with
// an active bit, increments layer_count, appends name to layer_names,
// inserts an empty dependency list at position len-1 (the shared list
// stays last), and appends an empty SclyLayer. Returns the new layer's
// index.
func (e *AreaEditor) AddLayer(name string) uint32 {
	newIdx := e.area.LayerCount

	e.area.LayerFlags |= 1 << newIdx
	e.area.LayerCount++
	e.area.LayerNames = append(e.area.LayerNames, name)

	// The shared dependency list is always last; the new per-layer list
	// goes in just before it.
	deps := e.area.DependencyLists
	shared := deps[len(deps)-1]
	deps = deps[:len(deps)-1]
	deps = append(deps, nil, shared)
	e.area.DependencyLists = deps

	e.mrea.Scly.Layers = append(e.mrea.Scly.Layers, res.SclyLayer{})

	return newIdx
}

// AddDependencies adds each dep not already present in any of this
// area's dependency lists to layerIdx's list, and returns the subset
// that was newly added (callers insert the corresponding pool resources
// into the archive cursor immediately after the MREA for exactly these).
// Deduplication is per area, matching §4.3: "per area, not per PAK."
func (e *AreaEditor) AddDependencies(layerIdx uint32, deps []core.ResourceKey) []core.ResourceKey {
	if int(layerIdx) >= len(e.area.DependencyLists) {
		panic(fmt.Sprintf("patcher: AreaEditor.AddDependencies: layer %d out of range (have %d lists)", layerIdx, len(e.area.DependencyLists)))
	}

	present := make(map[core.ResourceKey]bool)
	for _, list := range e.area.DependencyLists {
		for _, k := range list {
			present[k] = true
		}
	}

	var added []core.ResourceKey
	for _, dep := range deps {
		if present[dep] {
			continue
		}
		e.area.DependencyLists[layerIdx] = append(e.area.DependencyLists[layerIdx], dep)
		present[dep] = true
		added = append(added, dep)
	}
	return added
}

// AddObject installs a fully-formed scripting object into the given
// layer, returning nothing further: callers build the SclyObject (via
// PatcherState.InstanceID for a fresh id) before calling this.
func (e *AreaEditor) AddObject(layerIdx uint32, obj *res.SclyObject) {
	e.mrea.Scly.Layers[layerIdx].Objects = append(e.mrea.Scly.Layers[layerIdx].Objects, obj)
}

// FindObject locates a scripting object by instance id across every
// layer in the bound MREA.
func (e *AreaEditor) FindObject(instanceID uint32) (*res.SclyObject, bool) {
	for _, layer := range e.mrea.Scly.Layers {
		for _, obj := range layer.Objects {
			if obj.InstanceID == instanceID {
				return obj, true
			}
		}
	}
	return nil, false
}

// SetLayerActive flips a layer's active bit in layer_flags, used by the
// respawn-layer wiring in §4.7 ("installs a layer-change SpecialFunction
// that enables the respawn layer on pickup").
func (e *AreaEditor) SetLayerActive(layerIdx uint32, active bool) {
	if active {
		e.area.LayerFlags |= 1 << layerIdx
	} else {
		e.area.LayerFlags &^= 1 << layerIdx
	}
}
