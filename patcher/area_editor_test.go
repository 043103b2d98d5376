package patcher

import (
	"testing"

	"github.com/tallonforge/primeforge/res"
	"github.com/tallonforge/primeforge/res/core"
)

func newTestAreaEditor() *AreaEditor {
	area := &res.MlvlArea{
		LayerCount:      1,
		LayerFlags:      1, // layer 0 active
		LayerNames:      []string{"Default"},
		DependencyLists: [][]core.ResourceKey{{}, {}}, // one per layer + shared
	}
	mrea := &res.Mrea{
		Scly: &res.Scly{Layers: []res.SclyLayer{{}}},
	}
	return NewAreaEditor(area, mrea)
}

func depKey(id uint32) core.ResourceKey {
	return core.ResourceKey{ID: core.AssetId(id), Kind: core.KindSTRG}
}

func TestAddLayerKeepsAreaAndMreaInLockstep(t *testing.T) {
	e := newTestAreaEditor()

	idx := e.AddLayer("Extra")
	if idx != 1 {
		t.Fatalf("Expected new layer index 1, got %d", idx)
	}
	if e.area.LayerCount != 2 {
		t.Errorf("Expected LayerCount 2, got %d", e.area.LayerCount)
	}
	if len(e.area.LayerNames) != 2 || e.area.LayerNames[1] != "Extra" {
		t.Errorf("Expected LayerNames to gain \"Extra\", got %v", e.area.LayerNames)
	}
	// invariant (d): LayerCount == len(DependencyLists)-1
	if len(e.area.DependencyLists) != int(e.area.LayerCount)+1 {
		t.Errorf("Expected %d dependency lists, got %d", e.area.LayerCount+1, len(e.area.DependencyLists))
	}
	if len(e.mrea.Scly.Layers) != 2 {
		t.Errorf("Expected 2 SCLY layers, got %d", len(e.mrea.Scly.Layers))
	}
	if e.area.LayerFlags&(1<<1) == 0 {
		t.Errorf("Expected the new layer's active bit to be set")
	}
}

func TestAddLayerKeepsSharedDependencyListLast(t *testing.T) {
	e := newTestAreaEditor()
	shared := depKey(1)
	e.area.DependencyLists[len(e.area.DependencyLists)-1] = []core.ResourceKey{shared}

	e.AddLayer("Extra")

	last := e.area.DependencyLists[len(e.area.DependencyLists)-1]
	if len(last) != 1 || last[0] != shared {
		t.Errorf("Expected the shared dependency list to remain last, got %v", e.area.DependencyLists)
	}
	newLayerDeps := e.area.DependencyLists[1]
	if len(newLayerDeps) != 0 {
		t.Errorf("Expected the new layer's own dependency list to start empty, got %v", newLayerDeps)
	}
}

func TestAddDependenciesSkipsAlreadyPresentAcrossLayers(t *testing.T) {
	e := newTestAreaEditor()
	e.AddLayer("Extra")

	existing := depKey(10)
	e.area.DependencyLists[0] = append(e.area.DependencyLists[0], existing)

	added := e.AddDependencies(1, []core.ResourceKey{existing, depKey(11)})
	if len(added) != 1 || added[0] != depKey(11) {
		t.Errorf("Expected only the new dependency to be reported added, got %v", added)
	}
	if len(e.area.DependencyLists[1]) != 1 || e.area.DependencyLists[1][0] != depKey(11) {
		t.Errorf("Expected layer 1's dependency list to gain only the new key, got %v", e.area.DependencyLists[1])
	}
}

func TestAddDependenciesPanicsOnOutOfRangeLayer(t *testing.T) {
	e := newTestAreaEditor()
	defer func() {
		if recover() == nil {
			t.Errorf("Expected a panic for an out-of-range layer index")
		}
	}()
	e.AddDependencies(99, []core.ResourceKey{depKey(1)})
}

func TestAddObjectAndFindObject(t *testing.T) {
	e := newTestAreaEditor()
	obj := &res.SclyObject{InstanceID: 0xDEADBABE, Data: &res.Unknown{Code: 0, Raw: nil}}
	e.AddObject(0, obj)

	found, ok := e.FindObject(0xDEADBABE)
	if !ok || found != obj {
		t.Errorf("Expected to find the object by instance id, got %v ok=%v", found, ok)
	}

	if _, ok := e.FindObject(0x1); ok {
		t.Errorf("Expected FindObject to report not-found for an unknown instance id")
	}
}

func TestSetLayerActiveTogglesFlagBit(t *testing.T) {
	e := newTestAreaEditor()
	e.AddLayer("Extra")

	e.SetLayerActive(1, true)
	if e.area.LayerFlags&(1<<1) == 0 {
		t.Errorf("Expected layer 1's bit to be set after SetLayerActive(1, true)")
	}
	e.SetLayerActive(1, false)
	if e.area.LayerFlags&(1<<1) != 0 {
		t.Errorf("Expected layer 1's bit to be cleared after SetLayerActive(1, false)")
	}
	// Layer 0 must be unaffected by edits to layer 1.
	if e.area.LayerFlags&1 == 0 {
		t.Errorf("Expected layer 0's bit to remain set")
	}
}
