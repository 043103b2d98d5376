// This file contains the pickup kind and pickup model enumerations.
//
// The roster and ordering are transcribed from the original engine's
// pickup kind table (PickupType / PickupModel) so that the numeric
// `kind` values written into Pickup property-data match retail save
// files and existing community tooling.

package core

// PickupKind identifies what a Pickup object grants on collection.
type PickupKind struct {
	Enum

	// ID is the kind value written into Pickup.Kind on disc.
	ID uint32

	// IsRefill tells if collecting more of this kind tops up a
	// consumable resource rather than raising a capacity. Health Refill
	// is the only kind in PickupKinds with IsRefill set.
	IsRefill bool
}

// Pickup kind ids, in on-disc order.
const (
	PickupIDPowerBeam uint32 = iota
	PickupIDIceBeam
	PickupIDWaveBeam
	PickupIDPlasmaBeam
	PickupIDMissile
	PickupIDScanVisor
	PickupIDMorphBallBomb
	PickupIDPowerBomb
	PickupIDFlamethrower
	PickupIDThermalVisor
	PickupIDChargeBeam
	PickupIDSuperMissile
	PickupIDGrappleBeam
	PickupIDXRayVisor
	PickupIDIceSpreader
	PickupIDSpaceJumpBoots
	PickupIDMorphBall
	PickupIDCombatVisor
	PickupIDBoostBall
	PickupIDSpiderBall
	PickupIDPowerSuit
	PickupIDGravitySuit
	PickupIDVariaSuit
	PickupIDPhazonSuit
	PickupIDEnergyTank
	PickupIDUnknownItem1
	PickupIDHealthRefill
	PickupIDUnknownItem2
	PickupIDWavebuster
	PickupIDArtifactOfTruth
	PickupIDArtifactOfStrength
	PickupIDArtifactOfElder
	PickupIDArtifactOfWild
	PickupIDArtifactOfLifegiver
	PickupIDArtifactOfWarrior
	PickupIDArtifactOfChozo
	PickupIDArtifactOfNature
	PickupIDArtifactOfSun
	PickupIDArtifactOfWorld
	PickupIDArtifactOfSpirit
	PickupIDArtifactOfNewborn
	PickupIDNothing
)

// PickupKinds is an enumeration of the possible pickup kinds, in on-disc
// kind-id order.
var PickupKinds = []*PickupKind{
	{e("Power Beam"), PickupIDPowerBeam, false},
	{e("Ice Beam"), PickupIDIceBeam, false},
	{e("Wave Beam"), PickupIDWaveBeam, false},
	{e("Plasma Beam"), PickupIDPlasmaBeam, false},
	{e("Missile"), PickupIDMissile, false},
	{e("Scan Visor"), PickupIDScanVisor, false},
	{e("Morph Ball Bomb"), PickupIDMorphBallBomb, false},
	{e("Power Bomb"), PickupIDPowerBomb, false},
	{e("Flamethrower"), PickupIDFlamethrower, false},
	{e("Thermal Visor"), PickupIDThermalVisor, false},
	{e("Charge Beam"), PickupIDChargeBeam, false},
	{e("Super Missile"), PickupIDSuperMissile, false},
	{e("Grapple Beam"), PickupIDGrappleBeam, false},
	{e("X-Ray Visor"), PickupIDXRayVisor, false},
	{e("Ice Spreader"), PickupIDIceSpreader, false},
	{e("Space Jump Boots"), PickupIDSpaceJumpBoots, false},
	{e("Morph Ball"), PickupIDMorphBall, false},
	{e("Combat Visor"), PickupIDCombatVisor, false},
	{e("Boost Ball"), PickupIDBoostBall, false},
	{e("Spider Ball"), PickupIDSpiderBall, false},
	{e("Power Suit"), PickupIDPowerSuit, false},
	{e("Gravity Suit"), PickupIDGravitySuit, false},
	{e("Varia Suit"), PickupIDVariaSuit, false},
	{e("Phazon Suit"), PickupIDPhazonSuit, false},
	{e("Energy Tank"), PickupIDEnergyTank, false},
	{e("Unknown Item 1"), PickupIDUnknownItem1, false},
	{e("Health Refill"), PickupIDHealthRefill, true},
	{e("Unknown Item 2"), PickupIDUnknownItem2, false},
	{e("Wavebuster"), PickupIDWavebuster, false},
	{e("Artifact Of Truth"), PickupIDArtifactOfTruth, false},
	{e("Artifact Of Strength"), PickupIDArtifactOfStrength, false},
	{e("Artifact Of Elder"), PickupIDArtifactOfElder, false},
	{e("Artifact Of Wild"), PickupIDArtifactOfWild, false},
	{e("Artifact Of Lifegiver"), PickupIDArtifactOfLifegiver, false},
	{e("Artifact Of Warrior"), PickupIDArtifactOfWarrior, false},
	{e("Artifact Of Chozo"), PickupIDArtifactOfChozo, false},
	{e("Artifact Of Nature"), PickupIDArtifactOfNature, false},
	{e("Artifact Of Sun"), PickupIDArtifactOfSun, false},
	{e("Artifact Of World"), PickupIDArtifactOfWorld, false},
	{e("Artifact Of Spirit"), PickupIDArtifactOfSpirit, false},
	{e("Artifact Of Newborn"), PickupIDArtifactOfNewborn, false},
	{e("Nothing"), PickupIDNothing, false},
}

// Health Refill is the only kind marked IsRefill above. Missile and
// Power Bomb pickups raise capacity as well as ammo, so currency handling
// gives them a max increase equal to their count.

func init() {
	pickupKindByID = make(map[uint32]*PickupKind, len(PickupKinds))
	for _, k := range PickupKinds {
		pickupKindByID[k.ID] = k
	}
}

var pickupKindByID map[uint32]*PickupKind

// PickupKindByID returns the PickupKind for a given on-disc kind id.
// A new PickupKind with an Unknown name is returned if one is not found
// (preserving the unknown id).
func PickupKindByID(id uint32) *PickupKind {
	if k := pickupKindByID[id]; k != nil {
		return k
	}
	return &PickupKind{UnknownEnum(id), id, false}
}

// PickupModel identifies which CMDL (plus matching ANCS/textures) a
// pickup renders as; several kinds share a model (the four visors all
// render as PickupModelVisor) and a kind can be rendered as a different
// model than its own under obfuscation mode.
type PickupModel struct {
	Enum
}

// The complete roster of pickup models available on disc (stock models
// plus the "Nothing" and refill-icon models synthesized by the custom
// asset pool).
var (
	PickupModelMissile            = &PickupModel{e("Missile")}
	PickupModelEnergyTank         = &PickupModel{e("Energy Tank")}
	PickupModelVisor              = &PickupModel{e("Visor")}
	PickupModelVariaSuit          = &PickupModel{e("Varia Suit")}
	PickupModelGravitySuit        = &PickupModel{e("Gravity Suit")}
	PickupModelPhazonSuit         = &PickupModel{e("Phazon Suit")}
	PickupModelMorphBall          = &PickupModel{e("Morph Ball")}
	PickupModelBoostBall          = &PickupModel{e("Boost Ball")}
	PickupModelSpiderBall         = &PickupModel{e("Spider Ball")}
	PickupModelMorphBallBomb      = &PickupModel{e("Morph Ball Bomb")}
	PickupModelPowerBombExpansion = &PickupModel{e("Power Bomb Expansion")}
	PickupModelPowerBomb          = &PickupModel{e("Power Bomb")}
	PickupModelChargeBeam         = &PickupModel{e("Charge Beam")}
	PickupModelSpaceJumpBoots     = &PickupModel{e("Space Jump Boots")}
	PickupModelGrappleBeam        = &PickupModel{e("Grapple Beam")}
	PickupModelSuperMissile       = &PickupModel{e("Super Missile")}
	PickupModelWavebuster         = &PickupModel{e("Wavebuster")}
	PickupModelIceSpreader        = &PickupModel{e("Ice Spreader")}
	PickupModelFlamethrower       = &PickupModel{e("Flamethrower")}
	PickupModelWaveBeam           = &PickupModel{e("Wave Beam")}
	PickupModelIceBeam            = &PickupModel{e("Ice Beam")}
	PickupModelPlasmaBeam         = &PickupModel{e("Plasma Beam")}
	PickupModelArtifactOfLifegiver = &PickupModel{e("Artifact of Lifegiver")}
	PickupModelArtifactOfWild      = &PickupModel{e("Artifact of Wild")}
	PickupModelArtifactOfWorld     = &PickupModel{e("Artifact of World")}
	PickupModelArtifactOfSun       = &PickupModel{e("Artifact of Sun")}
	PickupModelArtifactOfElder     = &PickupModel{e("Artifact of Elder")}
	PickupModelArtifactOfSpirit    = &PickupModel{e("Artifact of Spirit")}
	PickupModelArtifactOfTruth     = &PickupModel{e("Artifact of Truth")}
	PickupModelArtifactOfChozo     = &PickupModel{e("Artifact of Chozo")}
	PickupModelArtifactOfWarrior   = &PickupModel{e("Artifact of Warrior")}
	PickupModelArtifactOfNewborn   = &PickupModel{e("Artifact of Newborn")}
	PickupModelArtifactOfNature    = &PickupModel{e("Artifact of Nature")}
	PickupModelArtifactOfStrength  = &PickupModel{e("Artifact of Strength")}
	PickupModelNothing             = &PickupModel{e("Nothing")}
	PickupModelHealthRefill        = &PickupModel{e("Health Refill")}
	PickupModelMissileRefill       = &PickupModel{e("Missile Refill")}
	PickupModelPowerBombRefill     = &PickupModel{e("Power Bomb Refill")}
	PickupModelShinyMissile        = &PickupModel{e("Shiny Missile")}
)

// DefaultModelForKind returns the model a kind renders as when the
// patch configuration does not specify one explicitly, mirroring
// PickupModel::from_type in the original engine.
func DefaultModelForKind(kindID uint32) *PickupModel {
	switch kindID {
	case PickupIDIceBeam:
		return PickupModelIceBeam
	case PickupIDWaveBeam:
		return PickupModelWaveBeam
	case PickupIDPlasmaBeam:
		return PickupModelPlasmaBeam
	case PickupIDMissile:
		return PickupModelMissile
	case PickupIDScanVisor, PickupIDThermalVisor, PickupIDXRayVisor, PickupIDCombatVisor:
		return PickupModelVisor
	case PickupIDMorphBallBomb:
		return PickupModelMorphBallBomb
	case PickupIDPowerBomb:
		return PickupModelPowerBomb
	case PickupIDFlamethrower:
		return PickupModelFlamethrower
	case PickupIDChargeBeam:
		return PickupModelChargeBeam
	case PickupIDSuperMissile:
		return PickupModelSuperMissile
	case PickupIDGrappleBeam:
		return PickupModelGrappleBeam
	case PickupIDIceSpreader:
		return PickupModelIceSpreader
	case PickupIDSpaceJumpBoots:
		return PickupModelSpaceJumpBoots
	case PickupIDMorphBall:
		return PickupModelMorphBall
	case PickupIDBoostBall:
		return PickupModelBoostBall
	case PickupIDSpiderBall:
		return PickupModelSpiderBall
	case PickupIDGravitySuit:
		return PickupModelGravitySuit
	case PickupIDVariaSuit:
		return PickupModelVariaSuit
	case PickupIDPhazonSuit:
		return PickupModelPhazonSuit
	case PickupIDEnergyTank:
		return PickupModelEnergyTank
	case PickupIDHealthRefill:
		return PickupModelHealthRefill
	case PickupIDWavebuster:
		return PickupModelWavebuster
	case PickupIDArtifactOfTruth:
		return PickupModelArtifactOfTruth
	case PickupIDArtifactOfStrength:
		return PickupModelArtifactOfStrength
	case PickupIDArtifactOfElder:
		return PickupModelArtifactOfElder
	case PickupIDArtifactOfWild:
		return PickupModelArtifactOfWild
	case PickupIDArtifactOfLifegiver:
		return PickupModelArtifactOfLifegiver
	case PickupIDArtifactOfWarrior:
		return PickupModelArtifactOfWarrior
	case PickupIDArtifactOfChozo:
		return PickupModelArtifactOfChozo
	case PickupIDArtifactOfNature:
		return PickupModelArtifactOfNature
	case PickupIDArtifactOfSun:
		return PickupModelArtifactOfSun
	case PickupIDArtifactOfWorld:
		return PickupModelArtifactOfWorld
	case PickupIDArtifactOfSpirit:
		return PickupModelArtifactOfSpirit
	case PickupIDArtifactOfNewborn:
		return PickupModelArtifactOfNewborn
	default:
		// PowerBeam, PowerSuit, the two Unknown items, and Nothing
		// itself all render as Nothing absent an override.
		return PickupModelNothing
	}
}

// ArtifactKindIDs lists the 12 artifact kind ids, in Chozo-lore order,
// used to index the Artifact Temple's 12 specially-numbered layers.
var ArtifactKindIDs = []uint32{
	PickupIDArtifactOfTruth,
	PickupIDArtifactOfStrength,
	PickupIDArtifactOfElder,
	PickupIDArtifactOfWild,
	PickupIDArtifactOfLifegiver,
	PickupIDArtifactOfWarrior,
	PickupIDArtifactOfChozo,
	PickupIDArtifactOfNature,
	PickupIDArtifactOfSun,
	PickupIDArtifactOfWorld,
	PickupIDArtifactOfSpirit,
	PickupIDArtifactOfNewborn,
}

// IsArtifact tells if the kind id is one of the 12 artifacts.
func IsArtifact(kindID uint32) bool {
	for _, id := range ArtifactKindIDs {
		if id == kindID {
			return true
		}
	}
	return false
}

// ArtifactLayerIndex returns the index (0-11) of the artifact's
// dedicated Artifact Temple layer, or -1 if kindID is not an artifact.
func ArtifactLayerIndex(kindID uint32) int {
	for i, id := range ArtifactKindIDs {
		if id == kindID {
			return i
		}
	}
	return -1
}
