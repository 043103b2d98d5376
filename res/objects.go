// This file implements the concrete scripting-object property-data
// variants named in §3: Pickup, HudMemo, StreamedAudio, SpecialFunction,
// WorldTransporter, Relay, Door, DamageableTrigger, plus the remaining
// generic-relay/trigger-shaped helpers. Each registers itself with the
// Scly property registry in an init(), the same table-of-named-codes
// style as repcmd.Types, generalized from "command opcode" to "scripting
// object type code".
//
// Mutable access goes through a capability-style accessor
// (AsPickup/AsPickupMut, ...) per the Polymorphic-property-data
// discipline: callers ask "is this a Pickup" rather than type-asserting
// against the concrete struct directly.

package res

import "github.com/tallonforge/primeforge/res/core"

// Scripting object type codes. These are internal to this codebase, not
// a wire-format contract with any other implementation.
const (
	TypePickup            uint32 = 0x11
	TypeActor             uint32 = 0x01
	TypeTrigger           uint32 = 0x06
	TypeTimer             uint32 = 0x05
	TypeRelay             uint32 = 0x08
	TypeHudMemo           uint32 = 0x17
	TypeStreamedAudio     uint32 = 0x22
	TypeCamera            uint32 = 0x04
	TypeSpecialFunction   uint32 = 0x3A
	TypeDoor              uint32 = 0x03
	TypeSpawnPoint        uint32 = 0x0F
	TypeDamageableTrigger uint32 = 0x29
	TypePointOfInterest   uint32 = 0x44
	TypePlayerHint        uint32 = 0x3B
	TypeWorldTransporter   uint32 = 0x62
	TypePlatform          uint32 = 0x09
	TypeCounter           uint32 = 0x57
	TypeSound             uint32 = 0x16
)

// Pickup is a collectible item instance.
type Pickup struct {
	Name                       string
	Position                   core.Point3
	Scale                      core.Point3
	KindID                     uint32
	CurrIncrease, MaxIncrease  int32
	Amount                     float32
	CollisionExtent            core.Point3
	CollisionOffset            core.Point3
	ModelCMDL                  core.AssetId
	ActorParams                []byte // ANCS/particle ties, opaque passthrough
	FadeInTime                 float32
	SpinnerTime                float32
}

func (p *Pickup) TypeCode() uint32 { return TypePickup }

// HudMemo shows a timed/triggered message box.
type HudMemo struct {
	Name       string
	MessageSTRG core.AssetId
	DisplayTime float32
	ClearOnDone bool
}

func (h *HudMemo) TypeCode() uint32 { return TypeHudMemo }

// StreamedAudio plays a named streamed-audio cue.
type StreamedAudio struct {
	Name     string
	AudioFile string
	Active   bool
}

func (s *StreamedAudio) TypeCode() uint32 { return TypeStreamedAudio }

// SpecialFunction is the generic scripted-behavior hook object, used
// among other things for the artifact-layer-change hook (§4.7).
type SpecialFunction struct {
	Name     string
	Function uint32 // e.g. "layer change", "play cutscene"
	Arg0     string
	Arg1     float32
	Arg2     float32
	Active   bool
}

func (s *SpecialFunction) TypeCode() uint32 { return TypeSpecialFunction }

// WorldTransporter is an elevator / area-transition object.
type WorldTransporter struct {
	Name   string
	MLVL   core.AssetId
	MREA   core.AssetId
	Active bool
}

func (w *WorldTransporter) TypeCode() uint32 { return TypeWorldTransporter }

// Relay forwards any incoming STATE on any MESSAGE to its own outgoing
// connections; the post-pickup relay (§4.7) is one of these.
type Relay struct {
	Name   string
	Active bool
}

func (r *Relay) TypeCode() uint32 { return TypeRelay }

// Door is a door instance carrying a DoorType/shield pair.
type Door struct {
	Name        string
	Position    core.Point3
	DoorType    *core.DoorType
	BlastShield *core.BlastShieldType
	Open        bool
}

func (d *Door) TypeCode() uint32 { return TypeDoor }

// DamageableTrigger is a trigger volume with its own vulnerability.
type DamageableTrigger struct {
	Name          string
	Position      core.Point3
	Extent        core.Point3
	HealthCapacity float32
	Vulnerability core.DamageVulnerability
}

func (d *DamageableTrigger) TypeCode() uint32 { return TypeDamageableTrigger }

// Actor, Trigger, Timer, Camera, SpawnPoint, PointOfInterest, PlayerHint,
// Platform, Counter, Sound are carried through in a shared GenericObject
// shape: §3 lists them by name but the spec attaches no kind-specific
// invariant to them, so one struct covers their common
// {name, transform, active} shape plus an opaque tail for fields this
// codebase never inspects.
type GenericObject struct {
	code     uint32
	Name     string
	Position core.Point3
	Active   bool
	Tail     []byte
}

func (g *GenericObject) TypeCode() uint32 { return g.code }

func genericParser(code uint32) propertyParser {
	return func(raw []byte) (PropertyData, error) {
		sr := newSliceReader(raw)
		n := sr.getUint32()
		name := sr.getString(n)
		pos := core.Point3{X: sr.getFloat32(), Y: sr.getFloat32(), Z: sr.getFloat32()}
		active := sr.getByte() != 0
		tail := append([]byte(nil), sr.remaining()...)
		return &GenericObject{code: code, Name: name, Position: pos, Active: active, Tail: tail}, nil
	}
}

func genericSerializer() propertySerializer {
	return func(p PropertyData) ([]byte, error) {
		g := p.(*GenericObject)
		var sw sliceWriter
		sw.putUint32(uint32(len(g.Name)))
		sw.b = append(sw.b, g.Name...)
		sw.putFloat32(g.Position.X)
		sw.putFloat32(g.Position.Y)
		sw.putFloat32(g.Position.Z)
		if g.Active {
			sw.putByte(1)
		} else {
			sw.putByte(0)
		}
		sw.putBytes(g.Tail)
		return sw.b, nil
	}
}

func init() {
	RegisterPropertyType(TypePickup, parsePickup, serializePickup)
	RegisterPropertyType(TypeHudMemo, parseHudMemo, serializeHudMemo)
	RegisterPropertyType(TypeStreamedAudio, parseStreamedAudio, serializeStreamedAudio)
	RegisterPropertyType(TypeSpecialFunction, parseSpecialFunction, serializeSpecialFunction)
	RegisterPropertyType(TypeWorldTransporter, parseWorldTransporter, serializeWorldTransporter)
	RegisterPropertyType(TypeRelay, parseRelay, serializeRelay)
	RegisterPropertyType(TypeDoor, parseDoor, serializeDoor)
	RegisterPropertyType(TypeDamageableTrigger, parseDamageableTrigger, serializeDamageableTrigger)

	for _, code := range []uint32{
		TypeActor, TypeTrigger, TypeTimer, TypeCamera, TypeSpawnPoint,
		TypePointOfInterest, TypePlayerHint, TypePlatform, TypeCounter, TypeSound,
	} {
		RegisterPropertyType(code, genericParser(code), genericSerializer())
	}
}

func parsePickup(raw []byte) (PropertyData, error) {
	sr := newSliceReader(raw)
	n := sr.getUint32()
	name := sr.getString(n)
	pos := core.Point3{X: sr.getFloat32(), Y: sr.getFloat32(), Z: sr.getFloat32()}
	scale := core.Point3{X: sr.getFloat32(), Y: sr.getFloat32(), Z: sr.getFloat32()}
	kindID := sr.getUint32()
	currInc := int32(sr.getUint32())
	maxInc := int32(sr.getUint32())
	amount := sr.getFloat32()
	cExtent := core.Point3{X: sr.getFloat32(), Y: sr.getFloat32(), Z: sr.getFloat32()}
	cOffset := core.Point3{X: sr.getFloat32(), Y: sr.getFloat32(), Z: sr.getFloat32()}
	model := core.AssetId(sr.getUint32())
	fadeIn := sr.getFloat32()
	spinner := sr.getFloat32()
	tail := append([]byte(nil), sr.remaining()...)
	return &Pickup{
		Name: name, Position: pos, Scale: scale, KindID: kindID,
		CurrIncrease: currInc, MaxIncrease: maxInc, Amount: amount,
		CollisionExtent: cExtent, CollisionOffset: cOffset, ModelCMDL: model,
		FadeInTime: fadeIn, SpinnerTime: spinner, ActorParams: tail,
	}, nil
}

func serializePickup(p PropertyData) ([]byte, error) {
	pk := p.(*Pickup)
	var sw sliceWriter
	sw.putUint32(uint32(len(pk.Name)))
	sw.b = append(sw.b, pk.Name...)
	for _, v := range []float32{pk.Position.X, pk.Position.Y, pk.Position.Z, pk.Scale.X, pk.Scale.Y, pk.Scale.Z} {
		sw.putFloat32(v)
	}
	sw.putUint32(pk.KindID)
	sw.putUint32(uint32(pk.CurrIncrease))
	sw.putUint32(uint32(pk.MaxIncrease))
	sw.putFloat32(pk.Amount)
	for _, v := range []float32{pk.CollisionExtent.X, pk.CollisionExtent.Y, pk.CollisionExtent.Z, pk.CollisionOffset.X, pk.CollisionOffset.Y, pk.CollisionOffset.Z} {
		sw.putFloat32(v)
	}
	sw.putUint32(uint32(pk.ModelCMDL))
	sw.putFloat32(pk.FadeInTime)
	sw.putFloat32(pk.SpinnerTime)
	sw.putBytes(pk.ActorParams)
	return sw.b, nil
}

func parseHudMemo(raw []byte) (PropertyData, error) {
	sr := newSliceReader(raw)
	n := sr.getUint32()
	name := sr.getString(n)
	strg := core.AssetId(sr.getUint32())
	dur := sr.getFloat32()
	clear := sr.getByte() != 0
	return &HudMemo{Name: name, MessageSTRG: strg, DisplayTime: dur, ClearOnDone: clear}, nil
}

func serializeHudMemo(p PropertyData) ([]byte, error) {
	h := p.(*HudMemo)
	var sw sliceWriter
	sw.putUint32(uint32(len(h.Name)))
	sw.b = append(sw.b, h.Name...)
	sw.putUint32(uint32(h.MessageSTRG))
	sw.putFloat32(h.DisplayTime)
	if h.ClearOnDone {
		sw.putByte(1)
	} else {
		sw.putByte(0)
	}
	return sw.b, nil
}

func parseStreamedAudio(raw []byte) (PropertyData, error) {
	sr := newSliceReader(raw)
	n := sr.getUint32()
	name := sr.getString(n)
	file := sr.getCString()
	active := sr.getByte() != 0
	return &StreamedAudio{Name: name, AudioFile: file, Active: active}, nil
}

func serializeStreamedAudio(p PropertyData) ([]byte, error) {
	s := p.(*StreamedAudio)
	var sw sliceWriter
	sw.putUint32(uint32(len(s.Name)))
	sw.b = append(sw.b, s.Name...)
	sw.putCString(s.AudioFile)
	if s.Active {
		sw.putByte(1)
	} else {
		sw.putByte(0)
	}
	return sw.b, nil
}

func parseSpecialFunction(raw []byte) (PropertyData, error) {
	sr := newSliceReader(raw)
	n := sr.getUint32()
	name := sr.getString(n)
	fn := sr.getUint32()
	arg0 := sr.getCString()
	arg1 := sr.getFloat32()
	arg2 := sr.getFloat32()
	active := sr.getByte() != 0
	return &SpecialFunction{Name: name, Function: fn, Arg0: arg0, Arg1: arg1, Arg2: arg2, Active: active}, nil
}

func serializeSpecialFunction(p PropertyData) ([]byte, error) {
	s := p.(*SpecialFunction)
	var sw sliceWriter
	sw.putUint32(uint32(len(s.Name)))
	sw.b = append(sw.b, s.Name...)
	sw.putUint32(s.Function)
	sw.putCString(s.Arg0)
	sw.putFloat32(s.Arg1)
	sw.putFloat32(s.Arg2)
	if s.Active {
		sw.putByte(1)
	} else {
		sw.putByte(0)
	}
	return sw.b, nil
}

func parseWorldTransporter(raw []byte) (PropertyData, error) {
	sr := newSliceReader(raw)
	n := sr.getUint32()
	name := sr.getString(n)
	mlvl := core.AssetId(sr.getUint32())
	mrea := core.AssetId(sr.getUint32())
	active := sr.getByte() != 0
	return &WorldTransporter{Name: name, MLVL: mlvl, MREA: mrea, Active: active}, nil
}

func serializeWorldTransporter(p PropertyData) ([]byte, error) {
	w := p.(*WorldTransporter)
	var sw sliceWriter
	sw.putUint32(uint32(len(w.Name)))
	sw.b = append(sw.b, w.Name...)
	sw.putUint32(uint32(w.MLVL))
	sw.putUint32(uint32(w.MREA))
	if w.Active {
		sw.putByte(1)
	} else {
		sw.putByte(0)
	}
	return sw.b, nil
}

func parseRelay(raw []byte) (PropertyData, error) {
	sr := newSliceReader(raw)
	n := sr.getUint32()
	name := sr.getString(n)
	active := sr.getByte() != 0
	return &Relay{Name: name, Active: active}, nil
}

func serializeRelay(p PropertyData) ([]byte, error) {
	r := p.(*Relay)
	var sw sliceWriter
	sw.putUint32(uint32(len(r.Name)))
	sw.b = append(sw.b, r.Name...)
	if r.Active {
		sw.putByte(1)
	} else {
		sw.putByte(0)
	}
	return sw.b, nil
}

func parseDoor(raw []byte) (PropertyData, error) {
	sr := newSliceReader(raw)
	n := sr.getUint32()
	name := sr.getString(n)
	pos := core.Point3{X: sr.getFloat32(), Y: sr.getFloat32(), Z: sr.getFloat32()}
	doorTypeID := sr.getUint32()
	shieldID := sr.getUint32()
	open := sr.getByte() != 0

	dt := doorTypeByIndex(doorTypeID)
	bs := blastShieldByIndex(shieldID)
	return &Door{Name: name, Position: pos, DoorType: dt, BlastShield: bs, Open: open}, nil
}

func serializeDoor(p PropertyData) ([]byte, error) {
	d := p.(*Door)
	var sw sliceWriter
	sw.putUint32(uint32(len(d.Name)))
	sw.b = append(sw.b, d.Name...)
	sw.putFloat32(d.Position.X)
	sw.putFloat32(d.Position.Y)
	sw.putFloat32(d.Position.Z)
	sw.putUint32(doorTypeIndex(d.DoorType))
	sw.putUint32(blastShieldIndex(d.BlastShield))
	if d.Open {
		sw.putByte(1)
	} else {
		sw.putByte(0)
	}
	return sw.b, nil
}

// doorTypeByIndex/doorTypeIndex round-trip a DoorType through its index
// in core.DoorTypes, the on-disk representation for a door's type field.
func doorTypeByIndex(idx uint32) *core.DoorType {
	if int(idx) < len(core.DoorTypes) {
		return core.DoorTypes[idx]
	}
	return core.DoorTypeDisabled
}

func doorTypeIndex(dt *core.DoorType) uint32 {
	for i, d := range core.DoorTypes {
		if d == dt {
			return uint32(i)
		}
	}
	return 0
}

func blastShieldByIndex(idx uint32) *core.BlastShieldType {
	if int(idx) < len(core.BlastShieldTypes) {
		return core.BlastShieldTypes[idx]
	}
	return core.BlastShieldNone
}

func blastShieldIndex(bs *core.BlastShieldType) uint32 {
	for i, b := range core.BlastShieldTypes {
		if b == bs {
			return uint32(i)
		}
	}
	return 0
}

func parseDamageableTrigger(raw []byte) (PropertyData, error) {
	sr := newSliceReader(raw)
	n := sr.getUint32()
	name := sr.getString(n)
	pos := core.Point3{X: sr.getFloat32(), Y: sr.getFloat32(), Z: sr.getFloat32()}
	ext := core.Point3{X: sr.getFloat32(), Y: sr.getFloat32(), Z: sr.getFloat32()}
	hp := sr.getFloat32()
	vuln := parseDamageVulnerability(sr)
	return &DamageableTrigger{Name: name, Position: pos, Extent: ext, HealthCapacity: hp, Vulnerability: vuln}, nil
}

func serializeDamageableTrigger(p PropertyData) ([]byte, error) {
	d := p.(*DamageableTrigger)
	var sw sliceWriter
	sw.putUint32(uint32(len(d.Name)))
	sw.b = append(sw.b, d.Name...)
	for _, v := range []float32{d.Position.X, d.Position.Y, d.Position.Z, d.Extent.X, d.Extent.Y, d.Extent.Z} {
		sw.putFloat32(v)
	}
	sw.putFloat32(d.HealthCapacity)
	serializeDamageVulnerability(&sw, d.Vulnerability)
	return sw.b, nil
}

func parseDamageVulnerability(sr *sliceReader) core.DamageVulnerability {
	axes := make([]uint32, 14)
	for i := range axes {
		axes[i] = sr.getUint32()
	}
	charged := make([]uint32, 5)
	for i := range charged {
		charged[i] = sr.getUint32()
	}
	combos := make([]uint32, 5)
	for i := range combos {
		combos[i] = sr.getUint32()
	}
	v := core.DamageVulnerability{
		Power: core.WeaponVuln(axes[0]), Ice: core.WeaponVuln(axes[1]),
		Wave: core.WeaponVuln(axes[2]), Plasma: core.WeaponVuln(axes[3]),
		Bomb: core.WeaponVuln(axes[4]), PowerBomb: core.WeaponVuln(axes[5]),
		Missile: core.WeaponVuln(axes[6]), BoostBall: core.WeaponVuln(axes[7]),
		Phazon: core.WeaponVuln(axes[8]),
		EnemyWeapon0: core.WeaponVuln(axes[9]), EnemyWeapon1: core.WeaponVuln(axes[10]),
		EnemyWeapon2: core.WeaponVuln(axes[11]), EnemyWeapon3: core.WeaponVuln(axes[12]),
		UnknownWeapon0: core.WeaponVuln(axes[13]),
	}
	v.ChargedBeams = core.ChargedBeamVuln{
		Power: core.WeaponVuln(charged[0]), Ice: core.WeaponVuln(charged[1]),
		Wave: core.WeaponVuln(charged[2]), Plasma: core.WeaponVuln(charged[3]),
		Phazon: core.WeaponVuln(charged[4]),
	}
	v.BeamCombos = core.BeamComboVuln{
		Power: core.WeaponVuln(combos[0]), Ice: core.WeaponVuln(combos[1]),
		Wave: core.WeaponVuln(combos[2]), Plasma: core.WeaponVuln(combos[3]),
		Phazon: core.WeaponVuln(combos[4]),
	}
	return v
}

func serializeDamageVulnerability(sw *sliceWriter, v core.DamageVulnerability) {
	axes := []core.WeaponVuln{
		v.Power, v.Ice, v.Wave, v.Plasma, v.Bomb, v.PowerBomb, v.Missile, v.BoostBall, v.Phazon,
		v.EnemyWeapon0, v.EnemyWeapon1, v.EnemyWeapon2, v.EnemyWeapon3, v.UnknownWeapon0,
	}
	for _, a := range axes {
		sw.putUint32(uint32(a))
	}
	for _, a := range []core.WeaponVuln{v.ChargedBeams.Power, v.ChargedBeams.Ice, v.ChargedBeams.Wave, v.ChargedBeams.Plasma, v.ChargedBeams.Phazon} {
		sw.putUint32(uint32(a))
	}
	for _, a := range []core.WeaponVuln{v.BeamCombos.Power, v.BeamCombos.Ice, v.BeamCombos.Wave, v.BeamCombos.Plasma, v.BeamCombos.Phazon} {
		sw.putUint32(uint32(a))
	}
}

// AsPickup is the capability accessor for read-only Pickup access.
func (o *SclyObject) AsPickup() (*Pickup, bool) {
	p, ok := o.Data.(*Pickup)
	return p, ok
}

// AsPickupMut returns a mutable Pickup view; since Data already holds a
// pointer, mutations through the returned value are visible immediately.
func (o *SclyObject) AsPickupMut() (*Pickup, bool) {
	return o.AsPickup()
}

// AsDoor is the capability accessor for Door access.
func (o *SclyObject) AsDoor() (*Door, bool) {
	d, ok := o.Data.(*Door)
	return d, ok
}

// AsWorldTransporter is the capability accessor for WorldTransporter access.
func (o *SclyObject) AsWorldTransporter() (*WorldTransporter, bool) {
	w, ok := o.Data.(*WorldTransporter)
	return w, ok
}

// AsHudMemo is the capability accessor for HudMemo access.
func (o *SclyObject) AsHudMemo() (*HudMemo, bool) {
	h, ok := o.Data.(*HudMemo)
	return h, ok
}

// AsSpecialFunction is the capability accessor for SpecialFunction access.
func (o *SclyObject) AsSpecialFunction() (*SpecialFunction, bool) {
	s, ok := o.Data.(*SpecialFunction)
	return s, ok
}
