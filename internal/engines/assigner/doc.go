// Package assigner implements the mod assignment engine.
//
// The engine answers one question: given a fixed set of equipment slots and
// several pools of mods, which placement leaves the fewest mods unassigned,
// and among placements tying on that count, which spends the least energy?
//
// The engine follows a pipeline pattern:
//
//	Greedy Pre-Assignment → Capacity Snapshots → Permutation Search → Result Merge
//
// Slot-specific mods are handled by the first stage; the shared general,
// combat and activity pools are handled by the search.
//
//  1. Greedy Pre-Assignment
//     - Slot-specific mods are placed against their target slot in input
//     order, first-come-first-served, with no backtracking.
//     - The pass runs once; its placements are never revisited.
//
//  2. Capacity Snapshots
//     - Each slot's derived capacity, derived energy type and pre-consumed
//     energy are computed once and read-only thereafter.
//
//  3. Permutation Search
//     - Every combination of (activity, combat, general) pool placements is
//     enumerated as a triple and validated slot by slot.
//     - A triple is abandoned early as soon as its running unassigned count
//     exceeds the best-so-far count.
//     - The best candidate is replaced only on strict lexicographic
//     improvement of (unassigned count, energy score); ties keep the first
//     candidate found, which together with the pinned placement enumeration
//     order makes output deterministic.
//
//  4. Result Merge
//     - Per slot: greedy placements first, search placements appended.
//     - One flat list collects every mod that could not be placed anywhere.
//
// The whole computation is pure and single-threaded. Independent Assign
// invocations own their state exclusively and may run concurrently. The
// dominant cost driver is shared-pool size (factorial growth per pool);
// callers needing responsiveness must bound pool sizes upstream.
package assigner
