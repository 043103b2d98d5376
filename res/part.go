// This file implements PART (particle) handling as byte-level dependency
// search, per §4.1's "PART, byte-level search": the kernel never parses
// the particle script's internal element tree, it only scans the raw
// bytes for resource-id-shaped words so that dependency rewrites (e.g.
// retargeting a TXTR id after a custom-asset substitution) can find and
// patch every occurrence without understanding the format.

package res

import (
	"encoding/binary"

	"github.com/tallonforge/primeforge/res/core"
)

// Part is a particle resource, kept fully opaque; only DependencyIDs
// (and ReplaceDependency) give any structured access.
type Part struct {
	Raw []byte
}

func (p *Part) Kind() core.Kind { return core.KindPART }

func parsePart(raw []byte) (Payload, error) {
	return &Part{Raw: append([]byte(nil), raw...)}, nil
}

func serializePart(p Payload) ([]byte, error) {
	return p.(*Part).Raw, nil
}

// DependencyIDs scans the raw bytes for every 4-byte-aligned big-endian
// word equal to any id in candidates, returning the byte offsets found.
func (p *Part) DependencyIDs(candidates []core.AssetId) []int {
	want := make(map[uint32]bool, len(candidates))
	for _, c := range candidates {
		want[uint32(c)] = true
	}
	var offsets []int
	for i := 0; i+4 <= len(p.Raw); i += 4 {
		if want[binary.BigEndian.Uint32(p.Raw[i:])] {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

// ReplaceDependency overwrites every 4-byte-aligned occurrence of from
// with to, returning the number of replacements made.
func (p *Part) ReplaceDependency(from, to core.AssetId) int {
	n := 0
	for i := 0; i+4 <= len(p.Raw); i += 4 {
		if binary.BigEndian.Uint32(p.Raw[i:]) == uint32(from) {
			binary.BigEndian.PutUint32(p.Raw[i:], uint32(to))
			n++
		}
	}
	return n
}

func init() {
	registerFormat(&format{Kind: core.KindPART, Parse: parsePart, Serialize: serializePart})
}
