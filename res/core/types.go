// This file contains general types shared by every resource format.

package core

import "fmt"

// AssetId is a 32-bit opaque id identifying a resource within an archive.
type AssetId uint32

// Kind is a 4-byte resource type tag, e.g. "MREA", "STRG", "CMDL".
type Kind [4]byte

// String returns the ASCII rendering of the tag.
func (k Kind) String() string {
	return string(k[:])
}

// KindOf builds a Kind from a (<=4 byte) ASCII tag.
func KindOf(tag string) (k Kind) {
	copy(k[:], tag)
	return
}

var (
	KindPAK  = KindOf("PACK")
	KindMLVL = KindOf("MLVL")
	KindMREA = KindOf("MREA")
	KindSTRG = KindOf("STRG")
	KindSCAN = KindOf("SCAN")
	KindFRME = KindOf("FRME")
	KindCMDL = KindOf("CMDL")
	KindANCS = KindOf("ANCS")
	KindPART = KindOf("PART")
	KindEVNT = KindOf("EVNT")
	KindKSSM = KindOf("KSSM")
	KindTXTR = KindOf("TXTR")
	KindBNR  = KindOf("BNR ")
	KindSAVW = KindOf("SAVW")
	KindMAPA = KindOf("MAPA")
	KindTHP  = KindOf("THP ")
	KindDSP  = KindOf("DSP ")
	KindFONT = KindOf("FONT")
)

// ResourceKey is the (AssetId, Kind) pair that identifies an asset,
// per spec: "Two resources with the same (AssetId, Kind) are considered
// the same asset."
type ResourceKey struct {
	ID   AssetId
	Kind Kind
}

// String returns a human-readable "KIND:0xID" representation.
func (rk ResourceKey) String() string {
	return fmt.Sprintf("%s:%#08x", rk.Kind, uint32(rk.ID))
}

// Point3 describes a position, scale, or rotation in 3D world space.
type Point3 struct {
	X, Y, Z float32
}

// String returns a string representation in the format "x=X, y=Y, z=Z".
func (p Point3) String() string {
	return fmt.Sprint("x=", p.X, ", y=", p.Y, ", z=", p.Z)
}

// Sub returns p - q componentwise.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Add returns p + q componentwise.
func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// AABB is an axis-aligned bounding box, min and max corners.
type AABB struct {
	Min, Max Point3
}

// Center returns the geometric center of the box.
func (b AABB) Center() Point3 {
	return Point3{
		(b.Min.X + b.Max.X) / 2,
		(b.Min.Y + b.Max.Y) / 2,
		(b.Min.Z + b.Max.Z) / 2,
	}
}
