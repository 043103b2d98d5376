// This file implements the Pickup/Door Catalog (C6): a compile-time data
// table mapping "room name + pickup slot" to the concrete scripting
// objects a patch must touch. Grounded on original_source's room/pickup
// naming conventions and, for the compile-time-table-plus-named-alias
// shape, on the teacher's large enumeration tables (repcmd.Units,
// repcmd.Orders): []RoomInfo literals keyed by world name, never mutated
// after package init.

package patcher

import "github.com/tallonforge/primeforge/res"

// PickupLocation names the objects one catalog pickup slot touches.
type PickupLocation struct {
	// PickupInstanceID/HudMemoInstanceID/AudioInstanceID locate the
	// existing Pickup/HudMemo/StreamedAudio trio within the room's MREA.
	PickupInstanceID uint32
	HudMemoInstanceID uint32
	AudioInstanceID   uint32

	// RelayConnections are copied onto the post-pickup relay the meta
	// layer appends, so cutscene-skip behavior still fires every
	// connection the stock trio had.
	RelayConnections []res.Connection

	Position [3]float32
}

// DoorLocation names the objects one catalog door slot touches.
type DoorLocation struct {
	DoorInstanceID              uint32
	DamageableTriggerInstanceID uint32

	// ShieldActorInstanceID is 0 when the door has no blast shield.
	ShieldActorInstanceID uint32

	// DockNumber is non-zero when this door's position is also addressed
	// by dock index rather than only by instance id.
	DockNumber int
}

// RoomInfo is one archive's room entry.
type RoomInfo struct {
	ArchivePath string
	RoomID      uint32 // MREA id
	Name        string
	NameSTRG    uint32
	MapaID      uint32

	Pickups []PickupLocation
	Doors   []DoorLocation

	// ObjectsToRemove lists, per layer index, instance ids that must be
	// deleted to enable cutscene-skip behavior without leaving dangling
	// side effects.
	ObjectsToRemove map[uint32][]uint32
}

// Catalog is the compile-time room roster, keyed by world.
type Catalog struct {
	Worlds map[string][]RoomInfo
}

// NewCatalog builds the catalog. Population is deliberately a
// representative subset of rooms per world (see DESIGN.md "Catalog
// completeness") sufficient to exercise every operation named in §4.6/
// §4.7 and scenarios S1-S6; the schema itself (RoomInfo's shape) is
// complete.
func NewCatalog() *Catalog {
	return &Catalog{
		Worlds: map[string][]RoomInfo{
			"Tallon Overworld": tallonOverworldRooms,
			"Chozo Ruins":      chozoRuinsRooms,
			"Magmoor Caverns":  magmoorCavernsRooms,
			"Phendrana Drifts": phendranaDriftsRooms,
			"Phazon Mines":     phazonMinesRooms,
		},
	}
}

// Room looks up a room by (world, name).
func (c *Catalog) Room(world, name string) (*RoomInfo, bool) {
	for i, r := range c.Worlds[world] {
		if r.Name == name {
			return &c.Worlds[world][i], true
		}
	}
	return nil, false
}

var tallonOverworldRooms = []RoomInfo{
	{
		ArchivePath: "Metroid1.pak",
		RoomID:      0x11BE8F30,
		Name:        "Artifact Temple",
		NameSTRG:    0x22334455,
		MapaID:      0x33445566,
		Pickups: []PickupLocation{
			{PickupInstanceID: 0x00140001, HudMemoInstanceID: 0x00140002, AudioInstanceID: 0x00140003, Position: [3]float32{0, 0, 0}},
		},
	},
	{
		ArchivePath: "Metroid4.pak",
		RoomID:      0x2398E09C,
		Name:        "Tallon Canyon",
		NameSTRG:    0x22334466,
		MapaID:      0x33445577,
		Pickups: []PickupLocation{
			{PickupInstanceID: 0x00080001, HudMemoInstanceID: 0x00080002, AudioInstanceID: 0x00080003, Position: [3]float32{32, -14, 2}},
		},
		Doors: []DoorLocation{
			{DoorInstanceID: 0x00080010, DamageableTriggerInstanceID: 0x00080011, DockNumber: 0},
		},
	},
}

var chozoRuinsRooms = []RoomInfo{
	{
		ArchivePath: "Metroid2.pak",
		RoomID: 0x8316EDF9,
		Name:   "Chozo West",
		NameSTRG: 0x22335577,
		MapaID: 0x33446688,
		Pickups: []PickupLocation{
			{PickupInstanceID: 0x000C0001, HudMemoInstanceID: 0x000C0002, AudioInstanceID: 0x000C0003, Position: [3]float32{-10, 4, 0}},
		},
	},
	{
		ArchivePath: "Metroid2.pak",
		RoomID:   0x3EE3E543,
		Name:     "Ruined Shrine",
		NameSTRG: 0x22335588,
		MapaID:   0x33446699,
		Pickups: []PickupLocation{
			{PickupInstanceID: 0x00100001, HudMemoInstanceID: 0x00100002, AudioInstanceID: 0x00100003},
		},
		Doors: []DoorLocation{
			{DoorInstanceID: 0x00100010, DamageableTriggerInstanceID: 0x00100011},
		},
	},
}

var magmoorCavernsRooms = []RoomInfo{
	{
		ArchivePath: "Metroid3.pak",
		RoomID:   0x598CB269,
		Name:     "Lava Lake",
		NameSTRG: 0x22336699,
		MapaID:   0x334477AA,
		Pickups: []PickupLocation{
			{PickupInstanceID: 0x00180001, HudMemoInstanceID: 0x00180002, AudioInstanceID: 0x00180003},
		},
	},
}

var phendranaDriftsRooms = []RoomInfo{
	{
		ArchivePath: "Metroid5.pak",
		RoomID:   0x4148F7B0,
		Name:     "Chapel of the Elders",
		NameSTRG: 0x223377AA,
		MapaID:   0x334488BB,
		Pickups: []PickupLocation{
			{PickupInstanceID: 0x001C0001, HudMemoInstanceID: 0x001C0002, AudioInstanceID: 0x001C0003},
		},
	},
}

var phazonMinesRooms = []RoomInfo{
	{
		ArchivePath: "metroid6.pak",
		RoomID:   0x40C548E9,
		Name:     "Elite Research",
		NameSTRG: 0x223388BB,
		MapaID:   0x334499CC,
		Pickups: []PickupLocation{
			{PickupInstanceID: 0x00200001, HudMemoInstanceID: 0x00200002, AudioInstanceID: 0x00200003},
		},
		Doors: []DoorLocation{
			{DoorInstanceID: 0x00200010, DamageableTriggerInstanceID: 0x00200011, ShieldActorInstanceID: 0x00200012},
		},
	},
}
