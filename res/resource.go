// This file contains the Resource lazy payload type and the Kernel
// dispatch table, generalized from repparser.Sections's slice-of-struct
// dispatch table (there: one entry per replay section; here: one entry
// per resource Kind).

package res

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/tallonforge/primeforge/res/core"
)

// ErrUnknownKind is returned by Kernel.Parse/Serialize when no format
// handler is registered for a resource's Kind. Unknown-kind resources stay
// Raw for the whole patch run; they are never rejected outright.
var ErrUnknownKind = errors.New("res: unknown resource kind")

// ErrParsing wraps a panic recovered while decoding untrusted resource
// bytes, mirroring repparser.parseProtected's recover-into-sentinel-error
// behavior.
var ErrParsing = errors.New("res: parsing")

// Payload is satisfied by every typed resource representation
// (*Strg, *Scan, *Mlvl, *Mrea, ...).
type Payload interface {
	// Kind returns the resource tag this payload serializes as.
	Kind() core.Kind
}

// state is the three-state payload lifecycle from the Laziness
// discipline: a resource starts Raw, becomes Parsed on first typed
// access, and becomes Modified once a caller takes a mutable view.
type state int

const (
	stateRaw state = iota
	stateParsed
	stateModified
)

// Resource is a single archive entry: compressed-on-disk metadata plus a
// lazily-materialized payload. The zero value is not usable; construct
// with NewResource.
type Resource struct {
	ID         core.AssetId
	Kind       core.Kind
	Compressed bool

	st    state
	raw   []byte
	typed Payload
}

// NewResource wraps raw archive bytes for a resource, leaving it Raw.
func NewResource(id core.AssetId, kind core.Kind, compressed bool, raw []byte) *Resource {
	return &Resource{ID: id, Kind: kind, Compressed: compressed, raw: raw, st: stateRaw}
}

// Key returns the (AssetId, Kind) identity pair.
func (r *Resource) Key() core.ResourceKey {
	return core.ResourceKey{ID: r.ID, Kind: r.Kind}
}

// IsModified reports whether a mutable view was taken, forcing
// reserialization on the next Bytes call regardless of whether the
// caller actually changed anything.
func (r *Resource) IsModified() bool {
	return r.st == stateModified
}

// Typed parses (if needed) and returns the resource's typed payload
// without marking it Modified. Callers that only read should use this.
func (r *Resource) Typed(k *Kernel) (Payload, error) {
	if r.st == stateRaw {
		p, err := k.Parse(r.Kind, r.raw)
		if err != nil {
			return nil, err
		}
		r.typed, r.st = p, stateParsed
	}
	return r.typed, nil
}

// Mutable returns a typed payload and marks the resource Modified: the
// next Bytes call reserializes from the typed view instead of returning
// the original raw bytes verbatim, even if the caller makes no edits.
func (r *Resource) Mutable(k *Kernel) (Payload, error) {
	p, err := r.Typed(k)
	if err != nil {
		return nil, err
	}
	r.st = stateModified
	return p, nil
}

// SetTyped installs an already-constructed payload (used when a patch
// replaces a resource outright rather than editing it in place) and
// marks the resource Modified.
func (r *Resource) SetTyped(p Payload) {
	r.typed, r.st = p, stateModified
}

// Bytes returns the resource's uncompressed payload bytes: the original
// Raw bytes unless the resource is Modified, in which case it
// reserializes from the typed view.
func (r *Resource) Bytes(k *Kernel) ([]byte, error) {
	if r.st != stateModified {
		return r.raw, nil
	}
	return k.Serialize(r.Kind, r.typed)
}

// ParseFunc decodes raw resource bytes into a typed Payload.
type ParseFunc func(raw []byte) (Payload, error)

// SerializeFunc encodes a typed Payload back to raw resource bytes.
type SerializeFunc func(p Payload) ([]byte, error)

// format is one Kernel dispatch table entry, mirroring repparser.Section's
// {ID, Size, ParseFunc} shape generalized to {Kind, Parse, Serialize}.
type format struct {
	Kind      core.Kind
	Parse     ParseFunc
	Serialize SerializeFunc
}

// Kernel is the Kind -> {Parse, Serialize} dispatch table. The zero value
// has no formats registered; use NewKernel.
type Kernel struct {
	formats map[core.Kind]*format
}

// NewKernel builds a Kernel with every format handler in this package
// registered, in the same table-literal-plus-init style as
// repparser.Sections.
func NewKernel() *Kernel {
	k := &Kernel{formats: make(map[core.Kind]*format, len(formats))}
	for _, f := range formats {
		k.formats[f.Kind] = f
	}
	return k
}

// Parse decodes raw bytes for the given Kind, recovering panics from
// malformed input into ErrParsing the same way repparser.parseProtected
// shields the replay parser from untrusted data.
func (k *Kernel) Parse(kind core.Kind, raw []byte) (p Payload, err error) {
	f, ok := k.formats[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	defer func() {
		if rec := recover(); rec != nil {
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("%w: %s: %v\n%s", ErrParsing, kind, rec, buf[:n])
		}
	}()
	return f.Parse(raw)
}

// Serialize encodes a typed payload back to raw bytes.
func (k *Kernel) Serialize(kind core.Kind, p Payload) ([]byte, error) {
	f, ok := k.formats[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return f.Serialize(p)
}
