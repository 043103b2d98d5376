// Package patchcfg defines the JSON configuration surface the patch
// engine compiles against, matching §6's document shape one-to-one.
// This package carries no parsing/validation logic beyond encoding/json
// struct tags: the configuration surface itself is out of scope (§1),
// but the engine still needs a concrete Go type for its input boundary.
package patchcfg

// Config is the root JSON document.
type Config struct {
	InputISO          string `json:"inputIso"`
	OutputISO         string `json:"outputIso"`
	Seed              uint64 `json:"seed"`
	ForceVanillaLayout bool  `json:"forceVanillaLayout"`

	Preferences Preferences         `json:"preferences"`
	GameConfig  GameConfig          `json:"gameConfig"`
	Tweaks      Tweaks              `json:"tweaks"`
	LevelData   map[string]LevelData `json:"levelData"`
}

// Preferences holds the quality-of-life and presentation toggles.
type Preferences struct {
	QolGameBreaking      bool   `json:"qolGameBreaking"`
	QolCosmetic          bool   `json:"qolCosmetic"`
	QolLogical           bool   `json:"qolLogical"`
	QolCutscenes         string `json:"qolCutscenes"` // "original" | "competitive" | "minor" | "major"
	QolPickupScans       bool   `json:"qolPickupScans"`
	MapDefaultState      string `json:"mapDefaultState"`      // "default" | "visible" | "visited"
	ArtifactHintBehavior string `json:"artifactHintBehavior"` // "default" | "all" | "none"
	AutomaticCrashScreen bool   `json:"automaticCrashScreen"`
	TrilogyDiscPath      string `json:"trilogyDiscPath"`
	Quickplay            bool   `json:"quickplay"`
	Quiet                bool   `json:"quiet"`
}

// GameBanner is the disc banner's text fields (§4.5's custom
// starting-items hudmemo and the BNR resource share this shape).
type GameBanner struct {
	GameName     string `json:"gameName"`
	GameNameFull string `json:"gameNameFull"`
	Developer    string `json:"developer"`
	DeveloperFull string `json:"developerFull"`
	Description  string `json:"description"`
}

// ArtifactLayerOverride pins one artifact's layer-change behavior,
// resolving the "artifactTempleLayerOverrides" Open Question (see
// DESIGN.md) as an explicit, empty-by-default slice.
type ArtifactLayerOverride struct {
	ArtifactKindID uint32 `json:"artifactKindId"`
	LayerName      string `json:"layerName"`
	Enable         bool   `json:"enable"`
}

// GameConfig holds the ~20 gameplay-affecting knobs from §6.
type GameConfig struct {
	StartingRoom        string   `json:"startingRoom"`
	StartingMemo        string   `json:"startingMemo"`
	WarpToStart         bool     `json:"warpToStart"`
	NonvariaHeatDamage  bool     `json:"nonvariaHeatDamage"`
	StaggeredSuitDamage bool     `json:"staggeredSuitDamage"`
	HeatDamagePerSec    float32  `json:"heatDamagePerSec"`
	AutoEnabledElevators bool    `json:"autoEnabledElevators"`

	// MultiworldDolPatches / UpdateHintStateReplacement resolve the
	// corresponding spec.md §9 Open Question: explicit flags, false by
	// default, gating otherwise-half-finished DOL hooks.
	MultiworldDolPatches       bool `json:"multiworldDolPatches"`
	UpdateHintStateReplacement bool `json:"updateHintStateReplacement"`

	StartingItems          []string `json:"startingItems"`
	ItemLossItems          []string `json:"itemLossItems"`
	EtankCapacity          uint32   `json:"etankCapacity"`
	ItemMaxCapacity        map[string]uint32 `json:"itemMaxCapacity"`
	PhazonEliteWithoutDynamo bool   `json:"phazonEliteWithoutDynamo"`
	MainPlazaDoor          bool     `json:"mainPlazaDoor"`
	BackwardsLabs          bool     `json:"backwardsLabs"`
	BackwardsFrigate       bool     `json:"backwardsFrigate"`
	BackwardsUpperMines    bool     `json:"backwardsUpperMines"`
	BackwardsLowerMines    bool     `json:"backwardsLowerMines"`
	GameBanner             GameBanner `json:"gameBanner"`
	Comment                string   `json:"comment"`
	MainMenuMessage        string   `json:"mainMenuMessage"`
	CreditsString          string   `json:"creditsString"`
	ArtifactHints          map[string]string `json:"artifactHints"`
	ArtifactTempleLayerOverrides []ArtifactLayerOverride `json:"artifactTempleLayerOverrides"`
}

// Tweaks is the ~60 PPC-level tuning constants for player/ball/physics.
// Only a representative slice is named explicitly; Extra carries any
// additional tuning constants by key. No patch in dol.Patches reads
// Tweaks.
type Tweaks struct {
	FOV                float32 `json:"fov"`
	PlayerHeight       float32 `json:"playerHeight"`
	PlayerRadius       float32 `json:"playerRadius"`
	BombJumpHeight     float32 `json:"bombJumpHeight"`
	BombJumpRadius     float32 `json:"bombJumpRadius"`
	GrappleSpeed       float32 `json:"grappleSpeed"`
	AimAssistAngle     float32 `json:"aimAssistAngle"`
	Gravity            float32 `json:"gravity"`
	Friction           float32 `json:"friction"`
	MaxSpeed           float32 `json:"maxSpeed"`
	BallCameraDistance float32 `json:"ballCameraDistance"`
	Extra              map[string]float32 `json:"extra"`
}

// PickupConfig is one configured pickup placement, per §4.7.
type PickupConfig struct {
	Kind        string   `json:"type"`
	Count       *uint32  `json:"count,omitempty"`
	Position    *[3]float32 `json:"position,omitempty"`
	HudmemoText string   `json:"hudmemoText,omitempty"`
	ScanText    string   `json:"scanText,omitempty"`
	Model       string   `json:"model,omitempty"`
	Respawn     bool     `json:"respawn,omitempty"`
	Obfuscated  bool     `json:"obfuscated,omitempty"`
}

// ScanConfig is an additional scan point to seed into a room.
type ScanConfig struct {
	ScanText string     `json:"scanText"`
	Position [3]float32 `json:"position"`
}

// RoomData is one room's pickup/scan configuration.
type RoomData struct {
	Pickups    []PickupConfig `json:"pickups"`
	ExtraScans []ScanConfig   `json:"extraScans"`
}

// LevelData is one world's elevator retargeting and room configuration.
type LevelData struct {
	Transports map[string]string  `json:"transports"`
	Rooms      map[string]RoomData `json:"rooms"`
}
