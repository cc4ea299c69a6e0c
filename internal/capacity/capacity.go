// Package capacity derives per-slot capacity snapshots consumed by the
// compatibility predicates and the permutation search.
package capacity

import (
	"github.com/loadoutkit/mod-assigner/internal/defs"
	"github.com/loadoutkit/mod-assigner/pkg/core"
)

// Snapshot is the per-slot capacity record built once before the search and
// read-only afterwards. All candidate placements validate and score against
// the same snapshot; consumption by candidate mods is tracked separately.
type Snapshot struct {
	// Consumed is the capacity already spent on mods locked into the slot
	// ahead of the search (the greedy pre-assignment output).
	Consumed int

	// OriginalCapacity is the slot's declared capacity.
	OriginalCapacity int

	// DerivedCapacity is the capacity after the tier override.
	DerivedCapacity int

	// OriginalType is the slot's declared energy type.
	OriginalType core.EnergyType

	// DerivedType is the energy type the search must respect.
	DerivedType core.EnergyType
}

// Remaining returns the capacity still available beyond what locked mods
// consume.
func (s Snapshot) Remaining() int {
	return s.DerivedCapacity - s.Consumed
}

// Derive computes the capacity snapshot for a slot given the mods already
// locked into it.
//
// Type resolution: when lockType is set the slot's declared type wins.
// Otherwise the first non-wildcard type among locked mods decides; wildcard
// mods defer resolution, and a slot with no concrete locked type stays on
// the wildcard, free to adopt whichever type the search settles on.
//
// Capacity resolution is delegated to the definitions provider as a pure
// function of slot and tier.
func Derive(slot core.Slot, locked []core.Mod, provider defs.Provider, tier int, lockType bool) Snapshot {
	derivedType := core.EnergyAny
	if lockType {
		derivedType = slot.OriginalType
	} else {
		for _, m := range locked {
			if !m.EnergyType.IsWildcard() {
				derivedType = m.EnergyType
				break
			}
		}
	}

	return Snapshot{
		Consumed:         core.SumEnergyCost(locked),
		OriginalCapacity: slot.OriginalCapacity,
		DerivedCapacity:  provider.CapacityForTier(slot, tier),
		OriginalType:     slot.OriginalType,
		DerivedType:      derivedType,
	}
}
