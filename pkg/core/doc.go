// Package core provides the fundamental data structures for the mod
// assignment engine.
//
// This package contains the domain models that represent the entities and
// relationships in the loadout optimization system:
//
//   - Slot: an equipment piece with energy capacity and socket compatibility
//   - Mod: a pluggable unit consuming slot capacity
//   - EnergyType: the closed set of slot/mod energy affinities
//   - ModCategory: the closed set of assignment categories
//
// These types form the foundation for the assignment algorithms in
// internal/engines/assigner and are used throughout the CLI and API layers.
//
// Example usage:
//
//	// Define a slot with ten energy and two socket compatibility tags
//	slot := core.Slot{
//	    ID:               "helmet",
//	    OriginalCapacity: 10,
//	    OriginalType:     core.EnergySolar,
//	    SocketTags:       []string{"enhancements.season_outlaw"},
//	}
//
//	// Define a general mod
//	mod := core.Mod{
//	    Hash:       1484685884,
//	    Category:   core.CategoryGeneral,
//	    EnergyCost: 3,
//	    EnergyType: core.EnergyAny,
//	}
//
// The core package is designed to be:
//   - Immutable where possible (value types)
//   - Type-safe with closed enumerations instead of runtime tag lookups
//   - Independent of serialization and transport concerns (pure domain logic)
package core
