// This file contains the door/blast-shield taxonomy and the
// DamageVulnerability model, transcribed from the original engine's
// door_meta.rs so that vulnerability tables match retail damage
// resolution exactly.

package core

// WeaponVuln is a single weapon axis' vulnerability classification.
type WeaponVuln uint32

const (
	VulnNormal  WeaponVuln = 1
	VulnReflect WeaponVuln = 2
	VulnImmune  WeaponVuln = 3
)

// ChargedBeamVuln holds the charged-beam sub-axes of a vulnerability.
type ChargedBeamVuln struct {
	Power, Ice, Wave, Plasma, Phazon WeaponVuln
}

// BeamComboVuln holds the charge-combo (e.g. Ice Spreader via charged Ice)
// sub-axes of a vulnerability.
type BeamComboVuln struct {
	Power, Ice, Wave, Plasma, Phazon WeaponVuln
}

// DamageVulnerability is the full per-weapon-axis vulnerability vector
// carried by every door and damageable trigger, per spec §3.
type DamageVulnerability struct {
	Power, Ice, Wave, Plasma                     WeaponVuln
	Bomb, PowerBomb, Missile, BoostBall, Phazon   WeaponVuln
	EnemyWeapon0, EnemyWeapon1, EnemyWeapon2, EnemyWeapon3 WeaponVuln
	UnknownWeapon0, UnknownWeapon1, UnknownWeapon2         WeaponVuln
	ChargedBeams ChargedBeamVuln
	BeamCombos   BeamComboVuln
}

// allImmune returns a DamageVulnerability with every axis Immune; callers
// open specific axes to Normal/Reflect.
func allImmune() DamageVulnerability {
	return DamageVulnerability{
		Power: VulnImmune, Ice: VulnImmune, Wave: VulnImmune, Plasma: VulnImmune,
		Bomb: VulnImmune, PowerBomb: VulnImmune, Missile: VulnImmune, BoostBall: VulnImmune, Phazon: VulnImmune,
		EnemyWeapon0: VulnImmune, EnemyWeapon1: VulnImmune, EnemyWeapon2: VulnImmune, EnemyWeapon3: VulnImmune,
		UnknownWeapon0: VulnImmune, UnknownWeapon1: VulnImmune, UnknownWeapon2: VulnImmune,
		ChargedBeams: ChargedBeamVuln{VulnImmune, VulnImmune, VulnImmune, VulnImmune, VulnImmune},
		BeamCombos:   BeamComboVuln{VulnImmune, VulnImmune, VulnImmune, VulnImmune, VulnImmune},
	}
}

// DoorType enumerates the door/blast-shield kinds a door instance may be
// replaced with, including the vertical twins sharing the same damage
// contract but a different (rotated) model.
type DoorType struct {
	Enum

	// Beam is not set by any entry of DoorTypes, so it is zero for every
	// door type; each type's damage rule comes from Vulnerability.
	Beam WeaponVuln

	Vertical bool
}

var (
	DoorTypeBlue            = &DoorType{Enum: e("Blue")}
	DoorTypePurple          = &DoorType{Enum: e("Purple")}
	DoorTypeWhite           = &DoorType{Enum: e("White")}
	DoorTypeRed             = &DoorType{Enum: e("Red")}
	DoorTypePowerOnly       = &DoorType{Enum: e("PowerOnly")}
	DoorTypeBomb            = &DoorType{Enum: e("Bomb")}
	DoorTypePowerBomb       = &DoorType{Enum: e("PowerBomb")}
	DoorTypeMissile         = &DoorType{Enum: e("Missile")}
	DoorTypeSuper           = &DoorType{Enum: e("Super")}
	DoorTypeCharge          = &DoorType{Enum: e("Charge")}
	DoorTypeWavebuster      = &DoorType{Enum: e("Wavebuster")}
	DoorTypeIcespreader     = &DoorType{Enum: e("Icespreader")}
	DoorTypeFlamethrower    = &DoorType{Enum: e("Flamethrower")}
	DoorTypeAi              = &DoorType{Enum: e("Ai")}
	DoorTypeBoost           = &DoorType{Enum: e("Boost")}
	DoorTypeDisabled        = &DoorType{Enum: e("Disabled")}

	DoorTypeVerticalBlue         = &DoorType{Enum: e("VerticalBlue"), Vertical: true}
	DoorTypeVerticalPurple       = &DoorType{Enum: e("VerticalPurple"), Vertical: true}
	DoorTypeVerticalWhite        = &DoorType{Enum: e("VerticalWhite"), Vertical: true}
	DoorTypeVerticalRed          = &DoorType{Enum: e("VerticalRed"), Vertical: true}
	DoorTypeVerticalPowerOnly    = &DoorType{Enum: e("VerticalPowerOnly"), Vertical: true}
	DoorTypeVerticalBomb         = &DoorType{Enum: e("VerticalBomb"), Vertical: true}
	DoorTypeVerticalPowerBomb    = &DoorType{Enum: e("VerticalPowerBomb"), Vertical: true}
	DoorTypeVerticalMissile      = &DoorType{Enum: e("VerticalMissile"), Vertical: true}
	DoorTypeVerticalSuper        = &DoorType{Enum: e("VerticalSuper"), Vertical: true}
	DoorTypeVerticalCharge       = &DoorType{Enum: e("VerticalCharge"), Vertical: true}
	DoorTypeVerticalWavebuster   = &DoorType{Enum: e("VerticalWavebuster"), Vertical: true}
	DoorTypeVerticalIcespreader  = &DoorType{Enum: e("VerticalIcespreader"), Vertical: true}
	DoorTypeVerticalFlamethrower = &DoorType{Enum: e("VerticalFlamethrower"), Vertical: true}
	DoorTypeVerticalAi           = &DoorType{Enum: e("VerticalAi"), Vertical: true}
	DoorTypeVerticalDisabled     = &DoorType{Enum: e("VerticalDisabled"), Vertical: true}
)

// DoorTypes is the complete door taxonomy, horizontal entries first.
var DoorTypes = []*DoorType{
	DoorTypeBlue, DoorTypePurple, DoorTypeWhite, DoorTypeRed, DoorTypePowerOnly,
	DoorTypeBomb, DoorTypePowerBomb, DoorTypeMissile, DoorTypeSuper, DoorTypeCharge,
	DoorTypeWavebuster, DoorTypeIcespreader, DoorTypeFlamethrower, DoorTypeAi,
	DoorTypeBoost, DoorTypeDisabled,
	DoorTypeVerticalBlue, DoorTypeVerticalPurple, DoorTypeVerticalWhite, DoorTypeVerticalRed,
	DoorTypeVerticalPowerOnly, DoorTypeVerticalBomb, DoorTypeVerticalPowerBomb,
	DoorTypeVerticalMissile, DoorTypeVerticalSuper, DoorTypeVerticalCharge,
	DoorTypeVerticalWavebuster, DoorTypeVerticalIcespreader, DoorTypeVerticalFlamethrower,
	DoorTypeVerticalAi, DoorTypeVerticalDisabled,
}

// verticalOf maps each horizontal door type to its vertical twin, per
// DoorType::to_vertical in the original engine.
var verticalOf = map[*DoorType]*DoorType{
	DoorTypeBlue:         DoorTypeVerticalBlue,
	DoorTypePurple:       DoorTypeVerticalPurple,
	DoorTypeWhite:        DoorTypeVerticalWhite,
	DoorTypeRed:          DoorTypeVerticalRed,
	DoorTypePowerOnly:    DoorTypeVerticalPowerOnly,
	DoorTypeBomb:         DoorTypeVerticalBomb,
	DoorTypePowerBomb:    DoorTypeVerticalPowerBomb,
	DoorTypeMissile:      DoorTypeVerticalMissile,
	DoorTypeSuper:        DoorTypeVerticalSuper,
	DoorTypeCharge:       DoorTypeVerticalCharge,
	DoorTypeWavebuster:   DoorTypeVerticalWavebuster,
	DoorTypeIcespreader:  DoorTypeVerticalIcespreader,
	DoorTypeFlamethrower: DoorTypeVerticalFlamethrower,
	DoorTypeAi:           DoorTypeVerticalAi,
	DoorTypeDisabled:     DoorTypeVerticalDisabled,
}

// ToVertical returns dt's vertical twin, or dt itself if it has none
// (Boost has no vertical variant in the original roster).
func (dt *DoorType) ToVertical() *DoorType {
	if v, ok := verticalOf[dt]; ok {
		return v
	}
	return dt
}

// Vulnerability returns the DamageVulnerability for this door type,
// transcribed from DoorType::vulnerability. Blue admits every standard
// weapon and ordnance type (boost ball merely Reflects, as on the stock
// blast doors); each colored/ordnance door admits exactly its namesake
// weapon and Reflects boost ball; Ai and Disabled admit nothing.
func (dt *DoorType) Vulnerability() DamageVulnerability {
	switch dt {
	case DoorTypeBlue, DoorTypeVerticalBlue:
		v := allImmune()
		v.Power, v.Ice, v.Wave, v.Plasma = VulnNormal, VulnNormal, VulnNormal, VulnNormal
		v.Bomb, v.PowerBomb, v.Missile, v.Phazon = VulnNormal, VulnNormal, VulnNormal, VulnNormal
		v.BoostBall = VulnReflect
		v.ChargedBeams = ChargedBeamVuln{VulnNormal, VulnNormal, VulnNormal, VulnNormal, VulnNormal}
		v.BeamCombos = BeamComboVuln{VulnNormal, VulnNormal, VulnNormal, VulnNormal, VulnNormal}
		return v
	case DoorTypePowerOnly, DoorTypeVerticalPowerOnly:
		v := allImmune()
		v.Power = VulnNormal
		v.Ice, v.Wave, v.Plasma, v.Missile, v.Phazon = VulnReflect, VulnReflect, VulnReflect, VulnReflect, VulnReflect
		v.BoostBall = VulnReflect
		v.ChargedBeams = ChargedBeamVuln{VulnNormal, VulnReflect, VulnReflect, VulnReflect, VulnReflect}
		v.BeamCombos = BeamComboVuln(v.ChargedBeams)
		return v
	case DoorTypeAi, DoorTypeVerticalAi, DoorTypeDisabled, DoorTypeVerticalDisabled:
		return allImmune()
	default:
		v := allImmune()
		v.BoostBall = VulnReflect
		switch dt {
		case DoorTypePurple, DoorTypeVerticalPurple:
			v.Wave = VulnNormal
			v.ChargedBeams.Wave, v.BeamCombos.Wave = VulnNormal, VulnNormal
		case DoorTypeWhite, DoorTypeVerticalWhite:
			v.Ice = VulnNormal
			v.ChargedBeams.Ice, v.BeamCombos.Ice = VulnNormal, VulnNormal
		case DoorTypeRed, DoorTypeVerticalRed:
			v.Plasma = VulnNormal
			v.ChargedBeams.Plasma, v.BeamCombos.Plasma = VulnNormal, VulnNormal
		case DoorTypeBomb, DoorTypeVerticalBomb:
			v.Bomb = VulnNormal
		case DoorTypePowerBomb, DoorTypeVerticalPowerBomb:
			v.PowerBomb = VulnNormal
		case DoorTypeMissile, DoorTypeVerticalMissile:
			v.Missile = VulnNormal
		case DoorTypeSuper, DoorTypeVerticalSuper:
			v.Missile = VulnNormal
			v.BeamCombos.Power = VulnNormal
		case DoorTypeCharge, DoorTypeVerticalCharge:
			v.ChargedBeams = ChargedBeamVuln{VulnNormal, VulnNormal, VulnNormal, VulnNormal, VulnNormal}
		case DoorTypeWavebuster, DoorTypeVerticalWavebuster:
			v.Wave = VulnNormal
			v.ChargedBeams.Wave = VulnNormal
		case DoorTypeIcespreader, DoorTypeVerticalIcespreader:
			v.Ice = VulnNormal
			v.ChargedBeams.Ice = VulnNormal
		case DoorTypeFlamethrower, DoorTypeVerticalFlamethrower:
			v.Plasma = VulnNormal
			v.ChargedBeams.Plasma = VulnNormal
		case DoorTypeBoost:
			v.BoostBall = VulnNormal
		}
		return v
	}
}

// BlastShieldType enumerates the removable blast-shield overlay a door
// may additionally carry (a separate destructible actor in front of the
// door proper).
type BlastShieldType struct {
	Enum
}

var (
	BlastShieldNone        = &BlastShieldType{e("None")}
	BlastShieldMissile     = &BlastShieldType{e("Missile")}
	BlastShieldPowerBomb   = &BlastShieldType{e("PowerBomb")}
	BlastShieldSuper       = &BlastShieldType{e("Super")}
	BlastShieldWavebuster  = &BlastShieldType{e("Wavebuster")}
	BlastShieldIcespreader = &BlastShieldType{e("Icespreader")}
	BlastShieldFlamethrower = &BlastShieldType{e("Flamethrower")}
)

// BlastShieldTypes is the complete blast-shield taxonomy.
var BlastShieldTypes = []*BlastShieldType{
	BlastShieldNone, BlastShieldMissile, BlastShieldPowerBomb, BlastShieldSuper,
	BlastShieldWavebuster, BlastShieldIcespreader, BlastShieldFlamethrower,
}

// Vulnerability returns the blast shield's DamageVulnerability, which
// reuses the matching door type's vulnerability per the original
// engine's "just re-use the door vulnerabilities" comment.
func (bs *BlastShieldType) Vulnerability() DamageVulnerability {
	switch bs {
	case BlastShieldMissile:
		return DoorTypeMissile.Vulnerability()
	case BlastShieldPowerBomb:
		return DoorTypePowerBomb.Vulnerability()
	case BlastShieldSuper:
		return DoorTypeSuper.Vulnerability()
	case BlastShieldWavebuster:
		return DoorTypeWavebuster.Vulnerability()
	case BlastShieldIcespreader:
		return DoorTypeIcespreader.Vulnerability()
	case BlastShieldFlamethrower:
		return DoorTypeFlamethrower.Vulnerability()
	default:
		return allImmune()
	}
}
