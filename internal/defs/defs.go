// Package defs resolves definition data consumed by the assignment engine:
// capacity-by-tier overrides for slots, the known category tables that map a
// mod's category hash to its assignment category, and the compatibility tags
// derived from those categories.
//
// The engine itself never reads definition files; it depends only on the
// Provider interface so that tests can substitute fixed tables and the CLI
// can load a JSON manifest.
package defs

import "github.com/loadoutkit/mod-assigner/pkg/core"

// Provider resolves capacity-affecting configuration and category tables.
type Provider interface {
	// CapacityForTier returns the derived energy capacity of the slot at the
	// given upgrade tier. Implementations must be pure: the result depends
	// only on the slot and the tier.
	CapacityForTier(slot core.Slot, tier int) int

	// Classify maps a mod's category hash to its assignment category and,
	// for combat and activity mods, the socket compatibility tag derived
	// from that category. The tag is empty when none is resolvable.
	Classify(categoryHash uint32) (core.ModCategory, string)
}

// CategoryEntry is one row of a category table.
type CategoryEntry struct {
	Category  core.ModCategory
	CompatTag string
}

// StaticProvider resolves definitions from in-memory tables. It backs tests
// and serves as the fallback when no manifest is supplied alongside explicit
// tables.
type StaticProvider struct {
	// Tiers maps an upgrade tier to the capacity ceiling at that tier. Tier
	// values beyond the table clamp to the last entry.
	Tiers []int

	// Categories maps a category hash to its table entry. Hashes absent
	// from the table classify as CategoryUnknown.
	Categories map[uint32]CategoryEntry
}

// NewStaticProvider returns a provider over the given tier table and
// category table.
func NewStaticProvider(tiers []int, categories map[uint32]CategoryEntry) *StaticProvider {
	return &StaticProvider{Tiers: tiers, Categories: categories}
}

// CapacityForTier returns the slot's capacity at the given tier: the larger
// of the declared capacity and the tier table's ceiling. A tier below zero
// or an empty table leaves the declared capacity untouched.
func (p *StaticProvider) CapacityForTier(slot core.Slot, tier int) int {
	if len(p.Tiers) == 0 || tier < 0 {
		return slot.OriginalCapacity
	}
	if tier >= len(p.Tiers) {
		tier = len(p.Tiers) - 1
	}
	if ceiling := p.Tiers[tier]; ceiling > slot.OriginalCapacity {
		return ceiling
	}
	return slot.OriginalCapacity
}

// Classify looks up the category hash in the category table.
func (p *StaticProvider) Classify(categoryHash uint32) (core.ModCategory, string) {
	if entry, ok := p.Categories[categoryHash]; ok {
		return entry.Category, entry.CompatTag
	}
	return core.CategoryUnknown, ""
}
