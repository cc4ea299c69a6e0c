package assigner

import (
	"github.com/loadoutkit/mod-assigner/internal/capacity"
	"github.com/loadoutkit/mod-assigner/pkg/core"
)

// energyChange scores one slot's assigned mods for a candidate. The score is
// the energy cost the candidate would force the player to spend on this
// slot.
//
// The final energy type is the slot's derived type unless that is the
// wildcard, in which case the first concrete type among the assigned mods,
// in assignment order, decides. Staying on the original type (or remaining
// wildcard) only charges the capacity spent beyond the slot's original
// capacity; switching to a different type additionally forfeits the original
// investment, so it charges the full total plus the original capacity.
// Changing a slot's affinity is deliberately modeled as strictly more
// expensive than staying within it.
func energyChange(snap capacity.Snapshot, assigned []core.Mod) int {
	finalType := snap.DerivedType
	if finalType.IsWildcard() {
		for _, m := range assigned {
			if !m.EnergyType.IsWildcard() {
				finalType = m.EnergyType
				break
			}
		}
	}

	total := snap.Consumed + core.SumEnergyCost(assigned)
	if finalType.IsWildcard() || finalType == snap.OriginalType {
		if over := total - snap.OriginalCapacity; over > 0 {
			return over
		}
		return 0
	}
	return total + snap.OriginalCapacity
}
