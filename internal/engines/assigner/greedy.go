package assigner

import (
	"github.com/loadoutkit/mod-assigner/internal/capacity"
	"github.com/loadoutkit/mod-assigner/internal/compat"
	"github.com/loadoutkit/mod-assigner/internal/defs"
	"github.com/loadoutkit/mod-assigner/pkg/core"
)

// greedyPreAssign places slot-specific mods before the permutation search
// runs. Each mod is assigned immediately if it is valid against what has
// already been assigned to its target slot, in input order; otherwise it is
// marked unassigned. There is no backtracking: capacity consumption is
// monotonically accumulated first-come-first-served, and the pass's output
// is frozen input for the capacity snapshots used throughout the search.
func greedyPreAssign(slots []core.Slot, mods []core.Mod, provider defs.Provider, tier int, lockType bool) preAssignment {
	pre := preAssignment{assigned: make(map[string][]core.Mod)}

	byBucket := make(map[uint32]core.Slot, len(slots))
	for _, s := range slots {
		if _, dup := byBucket[s.BucketHash]; !dup {
			byBucket[s.BucketHash] = s
		}
	}

	for _, mod := range mods {
		slot, ok := byBucket[mod.BucketHash]
		if !ok {
			pre.unassigned = append(pre.unassigned, mod)
			continue
		}
		snap := capacity.Derive(slot, pre.assigned[slot.ID], provider, tier, lockType)
		if compat.SlotSpecificValid(mod, snap) {
			pre.assigned[slot.ID] = append(pre.assigned[slot.ID], mod)
		} else {
			pre.unassigned = append(pre.unassigned, mod)
		}
	}
	return pre
}
