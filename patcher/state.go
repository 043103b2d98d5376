// This file contains PatcherState, the fresh-instance-id allocator
// shared across an entire drive run.

package patcher

// freshInstanceIDSentinel is the starting value for newly allocated
// scripting-object instance ids: a recognizable marker distinguishing
// patcher-created objects from anything the stock game shipped with.
const freshInstanceIDSentinel uint32 = 0xDEADBABE

// State is PatcherState: the mutable context threaded through a single
// drive run. It owns the only source of fresh instance ids so that every
// area edit across the whole disc draws from one counter.
type State struct {
	next uint32
}

// NewState returns a State whose id counter starts at the sentinel.
func NewState() *State {
	return &State{next: freshInstanceIDSentinel}
}

// Next returns the next unused fresh instance id, low 26 bits only —
// callers that need a specific scripting layer encoded compose the
// result with (layerIdx << 26), per §4.3's "when the high byte is
// required to encode layer number."
func (s *State) Next() uint32 {
	const mask = 1<<26 - 1
	id := s.next & mask
	s.next++
	return id
}

// InstanceID composes a fresh id for the given layer index, per §4.3:
// "the caller composes layer_idx << 26 | lower_26".
func (s *State) InstanceID(layerIdx uint32) uint32 {
	return layerIdx<<26 | s.Next()
}
