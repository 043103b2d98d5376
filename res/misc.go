// This file implements the remaining small typed formats named in
// §4.1 that do not warrant their own file: EVNT, KSSM, SAVW, MAPA, BNR,
// and SCAN/FRME/ANCS, each parsed only as far as the patcher actually
// needs (a name/dependency surface), with an opaque tail preserved for
// round-trip.

package res

import "github.com/tallonforge/primeforge/res/core"

// Evnt is an effect-event resource: a list of named triggers and their
// frame number, everything else opaque.
type Evnt struct {
	Events []EvntEntry
	Tail   []byte
}

type EvntEntry struct {
	Frame uint32
	Name  string
}

func (e *Evnt) Kind() core.Kind { return core.KindEVNT }

func parseEvnt(raw []byte) (Payload, error) {
	sr := newSliceReader(raw)
	_version := sr.getUint32()
	n := sr.getUint32()
	events := make([]EvntEntry, n)
	for i := range events {
		events[i] = EvntEntry{Frame: sr.getUint32(), Name: sr.getCString()}
	}
	tail := append([]byte(nil), sr.remaining()...)
	_ = _version
	return &Evnt{Events: events, Tail: tail}, nil
}

func serializeEvnt(p Payload) ([]byte, error) {
	e := p.(*Evnt)
	var sw sliceWriter
	sw.putUint32(2)
	sw.putUint32(uint32(len(e.Events)))
	for _, ev := range e.Events {
		sw.putUint32(ev.Frame)
		sw.putCString(ev.Name)
	}
	sw.putBytes(e.Tail)
	return sw.b, nil
}

// Kssm is a keyframe-sound manager resource, kept fully opaque: the
// patcher only ever copies it verbatim alongside its owning ANCS.
type Kssm struct {
	Raw []byte
}

func (k *Kssm) Kind() core.Kind { return core.KindKSSM }

func parseKssm(raw []byte) (Payload, error) { return &Kssm{Raw: append([]byte(nil), raw...)}, nil }
func serializeKssm(p Payload) ([]byte, error) { return p.(*Kssm).Raw, nil }

// Savw is a save-world metadata resource: the per-area cinematic/scan
// state bitfields. Kept opaque beyond its area-id list, which the
// patcher needs when adding areas is ever in scope (it currently is
// not — areas are fixed per §3, rooms are only edited in place).
type Savw struct {
	AreaIDs []core.AssetId
	Tail    []byte
}

func (s *Savw) Kind() core.Kind { return core.KindSAVW }

func parseSavw(raw []byte) (Payload, error) {
	sr := newSliceReader(raw)
	_version := sr.getUint32()
	n := sr.getUint32()
	ids := make([]core.AssetId, n)
	for i := range ids {
		ids[i] = core.AssetId(sr.getUint32())
	}
	tail := append([]byte(nil), sr.remaining()...)
	_ = _version
	return &Savw{AreaIDs: ids, Tail: tail}, nil
}

func serializeSavw(p Payload) ([]byte, error) {
	s := p.(*Savw)
	var sw sliceWriter
	sw.putUint32(3)
	sw.putUint32(uint32(len(s.AreaIDs)))
	for _, id := range s.AreaIDs {
		sw.putUint32(uint32(id))
	}
	sw.putBytes(s.Tail)
	return sw.b, nil
}

// Mapa is a map-area resource (the automap room outline); kept opaque,
// addressed only by id from MlvlArea.
type Mapa struct {
	Raw []byte
}

func (m *Mapa) Kind() core.Kind { return core.KindMAPA }

func parseMapa(raw []byte) (Payload, error) { return &Mapa{Raw: append([]byte(nil), raw...)}, nil }
func serializeMapa(p Payload) ([]byte, error) { return p.(*Mapa).Raw, nil }

// Bnr is the disc banner resource: out of scope for generation per §1
// ("the banner (BNR) string encoder"), but still round-trips through
// the kernel when a patch run needs to copy it unmodified.
type Bnr struct {
	Raw []byte
}

func (b *Bnr) Kind() core.Kind { return core.KindBNR }

func parseBnr(raw []byte) (Payload, error) { return &Bnr{Raw: append([]byte(nil), raw...)}, nil }
func serializeBnr(p Payload) ([]byte, error) { return p.(*Bnr).Raw, nil }

// Scan is a scannable-object resource: the STRG ids for its scan text
// (title + body), everything else (category, icon timing) opaque. The
// human-readable scan-hint generator itself is out of scope per §1.
type Scan struct {
	ScanSTRG core.AssetId
	Tail     []byte
}

func (s *Scan) Kind() core.Kind { return core.KindSCAN }

func parseScan(raw []byte) (Payload, error) {
	sr := newSliceReader(raw)
	_version := sr.getUint32()
	strg := core.AssetId(sr.getUint32())
	tail := append([]byte(nil), sr.remaining()...)
	_ = _version
	return &Scan{ScanSTRG: strg, Tail: tail}, nil
}

func serializeScan(p Payload) ([]byte, error) {
	s := p.(*Scan)
	var sw sliceWriter
	sw.putUint32(5)
	sw.putUint32(uint32(s.ScanSTRG))
	sw.putBytes(s.Tail)
	return sw.b, nil
}

// Frme is a frame/UI resource (HUD layout), kept fully opaque as its raw
// bytes; no dependency list is parsed or tracked for it.
type Frme struct {
	Raw []byte
}

func (f *Frme) Kind() core.Kind { return core.KindFRME }

func parseFrme(raw []byte) (Payload, error) { return &Frme{Raw: append([]byte(nil), raw...)}, nil }
func serializeFrme(p Payload) ([]byte, error) { return p.(*Frme).Raw, nil }

// Ancs is an animation-character-set resource: kept opaque, addressed
// by id only (the patcher swaps whole ANCS ids rather than editing
// their internals).
type Ancs struct {
	Raw []byte
}

func (a *Ancs) Kind() core.Kind { return core.KindANCS }

func parseAncs(raw []byte) (Payload, error) { return &Ancs{Raw: append([]byte(nil), raw...)}, nil }
func serializeAncs(p Payload) ([]byte, error) { return p.(*Ancs).Raw, nil }

// opaquePayload is the shared shape for the THP/DSP/FONT passthrough
// formats (§4.1: "video (THP — opaque passthrough), audio (DSP — opaque
// passthrough), font (FONT — opaque)").
type opaquePayload struct {
	kind core.Kind
	Raw  []byte
}

func (o *opaquePayload) Kind() core.Kind { return o.kind }

func opaqueParser(kind core.Kind) ParseFunc {
	return func(raw []byte) (Payload, error) {
		return &opaquePayload{kind: kind, Raw: append([]byte(nil), raw...)}, nil
	}
}

func opaqueSerializer() SerializeFunc {
	return func(p Payload) ([]byte, error) { return p.(*opaquePayload).Raw, nil }
}

func init() {
	registerFormat(&format{Kind: core.KindEVNT, Parse: parseEvnt, Serialize: serializeEvnt})
	registerFormat(&format{Kind: core.KindKSSM, Parse: parseKssm, Serialize: serializeKssm})
	registerFormat(&format{Kind: core.KindSAVW, Parse: parseSavw, Serialize: serializeSavw})
	registerFormat(&format{Kind: core.KindMAPA, Parse: parseMapa, Serialize: serializeMapa})
	registerFormat(&format{Kind: core.KindBNR, Parse: parseBnr, Serialize: serializeBnr})
	registerFormat(&format{Kind: core.KindSCAN, Parse: parseScan, Serialize: serializeScan})
	registerFormat(&format{Kind: core.KindFRME, Parse: parseFrme, Serialize: serializeFrme})
	registerFormat(&format{Kind: core.KindANCS, Parse: parseAncs, Serialize: serializeAncs})

	for _, k := range []core.Kind{core.KindTHP, core.KindDSP, core.KindFONT} {
		registerFormat(&format{Kind: k, Parse: opaqueParser(k), Serialize: opaqueSerializer()})
	}
}
