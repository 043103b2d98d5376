package core

import "testing"

func TestDoorTypeVulnerabilityOpensOnlyItsNamesakeWeapon(t *testing.T) {
	v := DoorTypeMissile.Vulnerability()
	if v.Missile != VulnNormal {
		t.Errorf("Expected Missile door to admit Missile, got %v", v.Missile)
	}
	if v.Power != VulnImmune || v.Ice != VulnImmune || v.Wave != VulnImmune || v.Plasma != VulnImmune {
		t.Errorf("Expected every other beam axis to stay Immune on a Missile door, got %+v", v)
	}
	if v.BoostBall != VulnReflect {
		t.Errorf("Expected Boost Ball to Reflect off a colored/ordnance door, got %v", v.BoostBall)
	}
}

func TestDoorTypeBlueAdmitsEveryStandardWeapon(t *testing.T) {
	v := DoorTypeBlue.Vulnerability()
	for name, got := range map[string]WeaponVuln{
		"Power": v.Power, "Ice": v.Ice, "Wave": v.Wave, "Plasma": v.Plasma,
		"Bomb": v.Bomb, "PowerBomb": v.PowerBomb, "Missile": v.Missile, "Phazon": v.Phazon,
	} {
		if got != VulnNormal {
			t.Errorf("Expected Blue door to admit %s, got %v", name, got)
		}
	}
	if v.BoostBall != VulnReflect {
		t.Errorf("Expected Blue door's Boost Ball axis to Reflect (not admit), got %v", v.BoostBall)
	}
}

func TestDoorTypeAiAndDisabledAdmitNothing(t *testing.T) {
	for _, dt := range []*DoorType{DoorTypeAi, DoorTypeDisabled, DoorTypeVerticalAi, DoorTypeVerticalDisabled} {
		v := dt.Vulnerability()
		if v != allImmune() {
			t.Errorf("Expected %s to be fully immune, got %+v", dt.Name, v)
		}
	}
}

func TestDoorTypePowerOnlyReflectsEverythingElse(t *testing.T) {
	v := DoorTypePowerOnly.Vulnerability()
	if v.Power != VulnNormal {
		t.Errorf("Expected Power Beam to be admitted, got %v", v.Power)
	}
	for name, got := range map[string]WeaponVuln{
		"Ice": v.Ice, "Wave": v.Wave, "Plasma": v.Plasma, "Missile": v.Missile, "Phazon": v.Phazon,
	} {
		if got != VulnReflect {
			t.Errorf("Expected %s to Reflect off a Power-Only door, got %v", name, got)
		}
	}
}

func TestDoorTypeSuperAlsoOpensChargedPowerCombo(t *testing.T) {
	v := DoorTypeSuper.Vulnerability()
	if v.Missile != VulnNormal {
		t.Errorf("Expected Super Missile door to admit Missile, got %v", v.Missile)
	}
	if v.BeamCombos.Power != VulnNormal {
		t.Errorf("Expected Super Missile door to also admit the charged-Power combo, got %v", v.BeamCombos.Power)
	}
}

func TestToVerticalMapsHorizontalToItsTwin(t *testing.T) {
	if DoorTypeBlue.ToVertical() != DoorTypeVerticalBlue {
		t.Errorf("Expected Blue's vertical twin to be VerticalBlue, got %v", DoorTypeBlue.ToVertical().Name)
	}
}

func TestToVerticalIsIdentityWhenNoTwinExists(t *testing.T) {
	if DoorTypeBoost.ToVertical() != DoorTypeBoost {
		t.Errorf("Expected Boost (no vertical variant) to map to itself, got %v", DoorTypeBoost.ToVertical().Name)
	}
}

func TestBlastShieldVulnerabilityReusesMatchingDoorType(t *testing.T) {
	if BlastShieldMissile.Vulnerability() != DoorTypeMissile.Vulnerability() {
		t.Errorf("Expected BlastShieldMissile to reuse DoorTypeMissile's vulnerability")
	}
}

func TestBlastShieldNoneIsFullyImmune(t *testing.T) {
	if BlastShieldNone.Vulnerability() != allImmune() {
		t.Errorf("Expected BlastShieldNone to be fully immune")
	}
}

func TestDoorTypesRosterHasNoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool, len(DoorTypes))
	for _, dt := range DoorTypes {
		if seen[dt.Name] {
			t.Errorf("Duplicate door type name %q in DoorTypes", dt.Name)
		}
		seen[dt.Name] = true
	}
}
