package assigner

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/loadoutkit/mod-assigner/internal/capacity"
	"github.com/loadoutkit/mod-assigner/internal/compat"
	"github.com/loadoutkit/mod-assigner/internal/logging"
	"github.com/loadoutkit/mod-assigner/internal/permute"
	"github.com/loadoutkit/mod-assigner/pkg/core"
)

// ExhaustiveEngine enumerates every combination of shared-pool placements
// and keeps the candidate that is lexicographically best on
// (unassigned count, energy score).
type ExhaustiveEngine struct {
	config *EngineConfig
}

// NewExhaustiveEngine creates a new ExhaustiveEngine instance.
func NewExhaustiveEngine(config *EngineConfig) (*ExhaustiveEngine, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &ExhaustiveEngine{config: config}, nil
}

// Assign runs the greedy slot-specific pass, the permutation search over the
// general, combat and activity pools, and merges both into the final
// per-slot assignment.
func (e *ExhaustiveEngine) Assign(ctx context.Context, req Request) (Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()
	defer func() {
		e.config.Metrics.ObserveAssignDuration(time.Since(start).Seconds())
	}()

	result := Result{BySlot: make(map[string][]core.Mod, len(req.Slots))}
	for _, s := range req.Slots {
		result.BySlot[s.ID] = []core.Mod{}
	}

	// No definitions means capacity cannot be resolved. The contract is a
	// defined degraded result, not an error: empty assignment, empty
	// leftover list.
	if req.Definitions == nil {
		logger.Info("no definitions available, returning empty assignment",
			"slots", len(req.Slots), "mods", len(req.Mods))
		return result, nil
	}

	p := splitPools(req.Mods)
	pre := greedyPreAssign(req.Slots, p.slotSpecific, req.Definitions, req.Tier, req.LockEnergyType)

	// Snapshots are derived once, after the greedy pass freezes per-slot
	// consumption, and are read-only for the whole search.
	snaps := make([]capacity.Snapshot, len(req.Slots))
	for i, s := range req.Slots {
		snaps[i] = capacity.Derive(s, pre.assigned[s.ID], req.Definitions, req.Tier, req.LockEnergyType)
	}

	best, stats := e.search(req.Slots, snaps, p)

	// Merge: greedy placements first, search placements appended; one flat
	// unassigned list across the greedy pass, the unknown-category mods and
	// the winning candidate.
	assignedCount := 0
	for i, s := range req.Slots {
		merged := make([]core.Mod, 0, len(pre.assigned[s.ID])+len(best.assigned[i]))
		merged = append(merged, pre.assigned[s.ID]...)
		merged = append(merged, best.assigned[i]...)
		result.BySlot[s.ID] = merged
		assignedCount += len(merged)
	}
	unassigned := make([]core.Mod, 0, len(pre.unassigned)+len(p.unknown)+len(best.unassigned))
	unassigned = append(unassigned, pre.unassigned...)
	unassigned = append(unassigned, p.unknown...)
	unassigned = append(unassigned, best.unassigned...)
	result.Unassigned = unassigned
	result.Stats = stats

	logger.V(logging.DEBUG).Info("assignment complete",
		"slots", len(req.Slots),
		"assigned", assignedCount,
		"unassigned", len(unassigned),
		"triplesEvaluated", stats.TriplesEvaluated,
		"triplesPruned", stats.TriplesPruned,
		"bestReplacements", stats.BestReplacements,
		"duration", time.Since(start))
	return result, nil
}

// candidate is one evaluated triple's assignment. Candidates are discarded
// unless they become the new best.
type candidate struct {
	assigned        [][]core.Mod // indexed by slot position
	unassigned      []core.Mod
	unassignedCount int
	score           int
}

// search drives the triple nested enumeration: activity placements
// outermost, combat in the middle, general innermost. The best-so-far
// accumulator is the sole mutable state and is local to this invocation, so
// independent Assign calls may run concurrently.
func (e *ExhaustiveEngine) search(slots []core.Slot, snaps []capacity.Snapshot, p pools) (candidate, SearchStats) {
	n := len(slots)
	activityPlacements := permute.Placements(len(p.activity), n)
	combatPlacements := permute.Placements(len(p.combat), n)
	generalPlacements := permute.Placements(len(p.general), n)

	// Pool items beyond the slot count can never all be placed; every
	// placement leaves the same number of them out.
	baseCount := leftoverCount(len(p.activity), n) +
		leftoverCount(len(p.combat), n) +
		leftoverCount(len(p.general), n)

	var stats SearchStats
	best := candidate{
		assigned:        make([][]core.Mod, n),
		unassignedCount: math.MaxInt,
		score:           math.MaxInt,
	}

	for _, ap := range activityPlacements {
		for _, cp := range combatPlacements {
			for _, gp := range generalPlacements {
				cand, ok := e.evaluate(slots, snaps, p, ap, cp, gp, baseCount, best.unassignedCount)
				if !ok {
					stats.TriplesPruned++
					e.config.Metrics.TriplePruned()
					continue
				}
				stats.TriplesEvaluated++
				e.config.Metrics.TripleEvaluated()

				// Lexicographic strict improvement; equal-on-both-keys
				// candidates keep the first one found.
				if cand.unassignedCount < best.unassignedCount ||
					(cand.unassignedCount == best.unassignedCount && cand.score < best.score) {
					best = cand
					stats.BestReplacements++
					e.config.Metrics.BestReplaced()
				}
			}
		}
	}
	return best, stats
}

// evaluate validates one triple slot by slot. Within a slot the activity
// candidate is tried first, then combat, then general, each validated
// against what already landed this round. It returns ok=false when the
// running unassigned count exceeds bestCount, abandoning the remaining
// slots.
func (e *ExhaustiveEngine) evaluate(
	slots []core.Slot,
	snaps []capacity.Snapshot,
	p pools,
	ap, cp, gp permute.Placement,
	baseCount, bestCount int,
) (candidate, bool) {
	cand := candidate{
		assigned:        make([][]core.Mod, len(slots)),
		unassignedCount: baseCount,
	}

	for i := range slots {
		if idx := ap[i]; idx != permute.Absent {
			mod := p.activity[idx]
			if compat.SocketValid(mod, slots[i], snaps[i], cand.assigned[i]) {
				cand.assigned[i] = append(cand.assigned[i], mod)
			} else if !cand.miss(mod, bestCount) {
				return candidate{}, false
			}
		}
		if idx := cp[i]; idx != permute.Absent {
			mod := p.combat[idx]
			if compat.SocketValid(mod, slots[i], snaps[i], cand.assigned[i]) {
				cand.assigned[i] = append(cand.assigned[i], mod)
			} else if !cand.miss(mod, bestCount) {
				return candidate{}, false
			}
		}
		if idx := gp[i]; idx != permute.Absent {
			mod := p.general[idx]
			if compat.GeneralValid(mod, snaps[i], cand.assigned[i]) {
				cand.assigned[i] = append(cand.assigned[i], mod)
			} else if !cand.miss(mod, bestCount) {
				return candidate{}, false
			}
		}
	}

	appendLeftover(&cand.unassigned, p.activity, ap)
	appendLeftover(&cand.unassigned, p.combat, cp)
	appendLeftover(&cand.unassigned, p.general, gp)

	for i := range slots {
		cand.score += energyChange(snaps[i], cand.assigned[i])
	}
	return cand, true
}

// miss records a mod that failed validation. It reports false as soon as
// the running unassigned count can no longer beat the best-so-far.
func (c *candidate) miss(mod core.Mod, bestCount int) bool {
	c.unassigned = append(c.unassigned, mod)
	c.unassignedCount++
	return c.unassignedCount <= bestCount
}

// leftoverCount is how many of k pool items every placement over n
// positions leaves out.
func leftoverCount(k, n int) int {
	if k > n {
		return k - n
	}
	return 0
}

// appendLeftover adds the pool items the placement does not use.
func appendLeftover(dst *[]core.Mod, pool []core.Mod, placement permute.Placement) {
	if len(pool) <= len(placement) {
		return
	}
	for _, idx := range placement.Leftover(len(pool)) {
		*dst = append(*dst, pool[idx])
	}
}
