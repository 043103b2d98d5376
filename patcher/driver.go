// This file implements the Patcher Driver (C4): three patch registries
// and the five-step drive algorithm from §4.4, verbatim including the
// "MLVL written back last" rule.

package patcher

import (
	"fmt"

	"github.com/tallonforge/primeforge/disc"
	"github.com/tallonforge/primeforge/pak"
	"github.com/tallonforge/primeforge/res"
	"github.com/tallonforge/primeforge/res/core"
)

// FilePatch mutates a whole file entry before it is even considered for
// archive decoding (e.g. DOL/REL patches, which never go through the
// archive codec at all).
type FilePatch func(f *disc.File) error

// ResourceKey identifies a resource-patch registration target.
type ResourceKey struct {
	ArchivePath string
	ID          core.AssetId
	Kind        core.Kind
}

// ResourcePatch mutates one resource in place.
type ResourcePatch func(r *res.Resource) error

// ScriptingKey identifies a scripting-patch registration target: one
// area within one archive.
type ScriptingKey struct {
	ArchivePath string
	AreaID      core.AssetId
}

// ScriptingPatch mutates one area via its paired AreaEditor. Patches
// registered for the same ScriptingKey run in registration order.
type ScriptingPatch func(state *State, area *AreaEditor) error

// Driver is the Patcher Driver (C4): three patch registries plus the
// kernel and pool needed to decode/re-encode archives during Drive.
type Driver struct {
	Kernel *res.Kernel
	Pool   *Pool

	filePatches      map[string][]FilePatch
	resourcePatches  map[ResourceKey][]ResourcePatch
	scriptingPatches map[ScriptingKey][]ScriptingPatch
}

// NewDriver builds an empty Driver bound to a kernel and pool.
func NewDriver(kernel *res.Kernel, pool *Pool) *Driver {
	return &Driver{
		Kernel:           kernel,
		Pool:             pool,
		filePatches:      make(map[string][]FilePatch),
		resourcePatches:  make(map[ResourceKey][]ResourcePatch),
		scriptingPatches: make(map[ScriptingKey][]ScriptingPatch),
	}
}

// RegisterFilePatch registers a file patch for the given archive path.
func (d *Driver) RegisterFilePatch(path string, p FilePatch) {
	d.filePatches[path] = append(d.filePatches[path], p)
}

// RegisterResourcePatch registers a resource patch. A patch may target
// multiple archives by calling this once per archive path with the same
// closure.
func (d *Driver) RegisterResourcePatch(key ResourceKey, p ResourcePatch) {
	d.resourcePatches[key] = append(d.resourcePatches[key], p)
}

// RegisterScriptingPatch registers a scripting patch; multiple patches
// for the same area run in the order registered.
func (d *Driver) RegisterScriptingPatch(key ScriptingKey, p ScriptingPatch) {
	d.scriptingPatches[key] = append(d.scriptingPatches[key], p)
}

// archivePaths computes the union of archive paths referenced by any
// patch table, step 2 of the drive algorithm.
func (d *Driver) archivePaths() map[string]bool {
	paths := make(map[string]bool)
	for p := range d.filePatches {
		paths[p] = true
	}
	for k := range d.resourcePatches {
		paths[k.ArchivePath] = true
	}
	for k := range d.scriptingPatches {
		paths[k.ArchivePath] = true
	}
	return paths
}

// Drive implements the five-step algorithm from §4.4. Any patch
// returning an error aborts the drive immediately; files patched before
// the failing one keep their new Data in img.
func (d *Driver) Drive(img *disc.Image) error {
	state := NewState()
	paths := d.archivePaths()

	for _, f := range img.Files {
		if !paths[f.Path] {
			continue
		}

		for _, fp := range d.filePatches[f.Path] {
			if err := fp(f); err != nil {
				return fmt.Errorf("patcher: file patch for %s: %w", f.Path, err)
			}
		}

		needsArchive := d.archiveHasResourceOrScriptingPatches(f.Path)
		if !needsArchive {
			continue
		}

		if err := d.driveArchive(state, f); err != nil {
			return fmt.Errorf("patcher: archive %s: %w", f.Path, err)
		}
	}

	return nil
}

func (d *Driver) archiveHasResourceOrScriptingPatches(path string) bool {
	for k := range d.resourcePatches {
		if k.ArchivePath == path {
			return true
		}
	}
	for k := range d.scriptingPatches {
		if k.ArchivePath == path {
			return true
		}
	}
	return false
}

// driveArchive decodes one archive, cursor-walks it dispatching resource
// and scripting patches, and re-encodes it back into f.Data.
func (d *Driver) driveArchive(state *State, f *disc.File) error {
	archive, named, err := pak.Decode(f.Data)
	if err != nil {
		return err
	}

	var mlvlEditor *mlvlEditorContext
	if d.archiveHasScriptingPatches(f.Path) {
		mlvlEditor = &mlvlEditorContext{}
		// The MLVL sits after the MREAs it describes, so load it before the walk.
		for _, r := range archive.Resources {
			if r.Kind == core.KindMLVL {
				typed, err := r.Mutable(d.Kernel)
				if err != nil {
					return err
				}
				mlvlEditor.mlvl = typed.(*res.Mlvl)
				mlvlEditor.resource = r
				break
			}
		}
	}

	cursor := archive.Cursor()
	for {
		r, ok := cursor.Peek()
		if !ok {
			break
		}

		if mlvlEditor != nil && r.Kind == core.KindMLVL {
			typed, err := r.Mutable(d.Kernel)
			if err != nil {
				return err
			}
			mlvlEditor.mlvl = typed.(*res.Mlvl)
			mlvlEditor.resource = r
		}

		rkey := ResourceKey{ArchivePath: f.Path, ID: r.ID, Kind: r.Kind}
		for _, rp := range d.resourcePatches[rkey] {
			if err := rp(r); err != nil {
				return fmt.Errorf("resource %s: %w", r.Key(), err)
			}
		}

		if r.Kind == core.KindMREA {
			if err := d.driveScriptingPatches(state, mlvlEditor, cursor, f.Path, r); err != nil {
				return err
			}
		}

		cursor.Advance()
	}

	if mlvlEditor != nil && mlvlEditor.resource != nil {
		mlvlEditor.resource.SetTyped(mlvlEditor.mlvl)
	}

	out, err := pak.Encode(archive, d.Kernel, named)
	if err != nil {
		return err
	}
	f.Data = out
	return nil
}

// mlvlEditorContext buffers the one MLVL resource an archive may carry:
// it is loaded before the cursor walk so the MREAs ahead of it can be
// edited, and written back into its resource after the walk.
type mlvlEditorContext struct {
	mlvl     *res.Mlvl
	resource *res.Resource
}

func (d *Driver) archiveHasScriptingPatches(path string) bool {
	for k := range d.scriptingPatches {
		if k.ArchivePath == path {
			return true
		}
	}
	return false
}

func (d *Driver) driveScriptingPatches(state *State, mlvlCtx *mlvlEditorContext, cursor *pak.Cursor, path string, r *res.Resource) error {
	key := ScriptingKey{ArchivePath: path, AreaID: r.ID}
	patches := d.scriptingPatches[key]
	if len(patches) == 0 {
		return nil
	}
	if mlvlCtx == nil || mlvlCtx.mlvl == nil {
		return fmt.Errorf("scripting patch for %s targets area %#x but no MLVL was found first", path, uint32(r.ID))
	}

	var area *res.MlvlArea
	for _, a := range mlvlCtx.mlvl.Areas {
		if a.MreaID == r.ID {
			area = a
			break
		}
	}
	if area == nil {
		return fmt.Errorf("area %#x not present in MLVL roster", uint32(r.ID))
	}

	typed, err := r.Mutable(d.Kernel)
	if err != nil {
		return err
	}
	mrea := typed.(*res.Mrea)

	editor := NewAreaEditor(area, mrea)
	for _, sp := range patches {
		if err := sp(state, editor); err != nil {
			return fmt.Errorf("scripting patch for area %#x: %w", uint32(r.ID), err)
		}
	}
	return nil
}
