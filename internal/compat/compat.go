// Package compat holds the compatibility predicates shared by the greedy
// pre-assignment pass and the permutation search. All predicates are pure,
// total boolean functions; they never fail and never mutate their inputs.
package compat

import (
	"github.com/loadoutkit/mod-assigner/internal/capacity"
	"github.com/loadoutkit/mod-assigner/pkg/core"
)

// SlotSpecificValid reports whether a slot-specific mod may occupy the slot
// described by the snapshot: the mod's energy type must match the derived
// type (either side may be the wildcard) and the mod's cost must fit within
// the remaining capacity.
func SlotSpecificValid(mod core.Mod, snap capacity.Snapshot) bool {
	return mod.EnergyType.Matches(snap.DerivedType) &&
		snap.Consumed+mod.EnergyCost <= snap.DerivedCapacity
}

// GeneralValid reports whether a shared-pool mod may occupy the slot given
// the mods already assigned to it this round. The assigned mods' costs count
// against the remaining capacity on top of what locked mods consume.
func GeneralValid(mod core.Mod, snap capacity.Snapshot, assigned []core.Mod) bool {
	return mod.EnergyType.Matches(snap.DerivedType) &&
		snap.Consumed+core.SumEnergyCost(assigned)+mod.EnergyCost <= snap.DerivedCapacity
}

// SocketValid reports whether a combat or activity mod may occupy the slot.
// On top of the general capacity and type rule, the mod's compatibility tag
// must be one of the slot's socket tags. A mod with no resolvable tag is
// never socket-valid.
func SocketValid(mod core.Mod, slot core.Slot, snap capacity.Snapshot, assigned []core.Mod) bool {
	return slot.AcceptsTag(mod.CompatTag) && GeneralValid(mod, snap, assigned)
}
