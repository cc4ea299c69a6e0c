package assigner

import (
	"github.com/loadoutkit/mod-assigner/internal/defs"
	"github.com/loadoutkit/mod-assigner/pkg/core"
)

// Request carries one assignment invocation's inputs. The engine treats
// everything here as immutable.
type Request struct {
	// Slots is the ordered slot set. Order is significant: it drives
	// per-slot iteration and therefore which of several equally-scored
	// candidates wins ties.
	Slots []core.Slot

	// Mods is the multiset of mods to place. Input order is significant for
	// the greedy slot-specific pass, which consumes capacity
	// first-come-first-served.
	Mods []core.Mod

	// Definitions resolves capacity tiers. A nil provider short-circuits to
	// the defined degraded result: empty assignment, empty leftover list,
	// no error.
	Definitions defs.Provider

	// Tier is the capacity upgrade tier threaded to the capacity model.
	Tier int

	// LockEnergyType pins every slot's derived energy type to its declared
	// type, forbidding the search from changing slot affinities.
	LockEnergyType bool
}

// Result is one assignment invocation's output.
type Result struct {
	// BySlot maps slot ID to the ordered assigned mods: greedily placed
	// slot-specific mods first, search-derived mods appended.
	BySlot map[string][]core.Mod

	// Unassigned is the flat list of every mod that could not be placed
	// anywhere.
	Unassigned []core.Mod

	// Stats summarizes the search that produced the result.
	Stats SearchStats
}

// SearchStats counts the work the permutation search performed.
type SearchStats struct {
	// TriplesEvaluated is the number of permutation triples scored in full.
	TriplesEvaluated int

	// TriplesPruned is the number of triples abandoned early because their
	// running unassigned count could no longer beat the best-so-far.
	TriplesPruned int

	// BestReplacements is the number of times the best-so-far candidate was
	// replaced. Monotonic improvement means each replacement strictly
	// improved the (unassigned count, energy score) pair lexicographically.
	BestReplacements int
}

// preAssignment is the frozen output of the greedy slot-specific pass.
type preAssignment struct {
	// assigned maps slot ID to the slot-specific mods locked into it.
	assigned map[string][]core.Mod

	// unassigned collects slot-specific mods that did not fit.
	unassigned []core.Mod
}

// pools is the category split of the request's mods.
type pools struct {
	general      []core.Mod
	combat       []core.Mod
	activity     []core.Mod
	slotSpecific []core.Mod
	unknown      []core.Mod
}

// splitPools buckets mods by category, preserving input order within each
// pool.
func splitPools(mods []core.Mod) pools {
	var p pools
	for _, m := range mods {
		switch m.Category {
		case core.CategoryGeneral:
			p.general = append(p.general, m)
		case core.CategoryCombat:
			p.combat = append(p.combat, m)
		case core.CategoryActivity:
			p.activity = append(p.activity, m)
		case core.CategorySlotSpecific:
			p.slotSpecific = append(p.slotSpecific, m)
		default:
			p.unknown = append(p.unknown, m)
		}
	}
	return p
}
