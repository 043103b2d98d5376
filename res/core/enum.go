// This file contains the base Enum type, generalized from the teacher's
// repcore.Enum: a named, table-driven value with an Unknown fallback that
// preserves its numeric id.

package core

import "fmt"

// Enum is the base / common part of enum types.
type Enum struct {
	// Name of the entity
	Name string
}

// String returns the string representation of the enum (the name).
// Defined with value receiver so this gets called even if a non-pointer is used.
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unknown entity with a name:
//
//	"Unknown 0xID"
//
// ID must be an integer number.
func UnknownEnum(ID any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", ID)}
}

// e is a helper to build an Enum from a literal name.
func e(name string) Enum {
	return Enum{name}
}
