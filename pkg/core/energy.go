package core

import "strings"

// EnergyType represents the energy affinity of a slot or mod.
//
// The set of values is closed: predicates over energy types are written as
// exhaustive comparisons rather than runtime tag lookups, so adding a new
// energy type requires revisiting every switch over this type.
type EnergyType string

const (
	// EnergyAny is the wildcard affinity. A mod with EnergyAny fits a slot of
	// any energy type, and a slot with EnergyAny accepts mods of any type.
	EnergyAny EnergyType = "any"
	// EnergyArc is the arc affinity.
	EnergyArc EnergyType = "arc"
	// EnergySolar is the solar affinity.
	EnergySolar EnergyType = "solar"
	// EnergyVoid is the void affinity.
	EnergyVoid EnergyType = "void"
	// EnergyStasis is the stasis affinity.
	EnergyStasis EnergyType = "stasis"
)

// IsWildcard reports whether the energy type matches every other type.
func (e EnergyType) IsWildcard() bool {
	return e == EnergyAny || e == ""
}

// Matches reports whether a mod of type e may occupy a slot of type other.
// Either side being the wildcard satisfies the match.
func (e EnergyType) Matches(other EnergyType) bool {
	return e.IsWildcard() || other.IsWildcard() || e == other
}

// ParseEnergyType maps a string to an EnergyType. Unrecognized or empty
// values map to EnergyAny; ingestion defaults missing type tags to the
// wildcard rather than failing.
func ParseEnergyType(s string) EnergyType {
	switch EnergyType(strings.ToLower(strings.TrimSpace(s))) {
	case EnergyArc:
		return EnergyArc
	case EnergySolar:
		return EnergySolar
	case EnergyVoid:
		return EnergyVoid
	case EnergyStasis:
		return EnergyStasis
	default:
		return EnergyAny
	}
}
