// This file contains the player visor taxonomy used by visor-gated
// scripting objects (camera filters, scan points, suit damage overlays).

package core

// PlayerVisor is one of the four HUD visor modes.
type PlayerVisor struct {
	Enum
	ID uint32
}

var (
	PlayerVisorCombat  = &PlayerVisor{e("Combat"), 0}
	PlayerVisorScan    = &PlayerVisor{e("Scan"), 1}
	PlayerVisorThermal = &PlayerVisor{e("Thermal"), 2}
	PlayerVisorXRay    = &PlayerVisor{e("XRay"), 3}
)

// PlayerVisors is the complete visor taxonomy, retail bitfield order.
var PlayerVisors = []*PlayerVisor{PlayerVisorCombat, PlayerVisorScan, PlayerVisorThermal, PlayerVisorXRay}

var playerVisorByID = map[uint32]*PlayerVisor{}

func init() {
	for _, v := range PlayerVisors {
		playerVisorByID[v.ID] = v
	}
}

// PlayerVisorByID looks up a visor by its bitfield index, falling back to
// an UnknownEnum-backed value for ids outside the retail roster.
func PlayerVisorByID(id uint32) *PlayerVisor {
	if v, ok := playerVisorByID[id]; ok {
		return v
	}
	return &PlayerVisor{UnknownEnum(id), id}
}
