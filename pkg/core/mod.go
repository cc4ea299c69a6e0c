package core

import "github.com/google/uuid"

// ModCategory represents the assignment category of a mod. The category
// decides which placement path handles the mod: slot-specific mods are
// placed greedily against their target slot, while general, combat and
// activity mods are placed by the permutation search across all slots.
type ModCategory string

const (
	// CategoryGeneral mods may occupy any slot, subject to energy capacity.
	CategoryGeneral ModCategory = "general"
	// CategoryCombat mods additionally require a combat compatibility tag
	// accepted by the slot's sockets.
	CategoryCombat ModCategory = "combat"
	// CategoryActivity mods additionally require an activity compatibility
	// tag accepted by the slot's sockets.
	CategoryActivity ModCategory = "activity"
	// CategorySlotSpecific mods target exactly one slot bucket and bypass
	// the permutation search.
	CategorySlotSpecific ModCategory = "slot-specific"
	// CategoryUnknown marks mods whose category hash is not in the known
	// category tables. They are excluded from the shared-pool search.
	CategoryUnknown ModCategory = "unknown"
)

// Mod is one pluggable unit. Mods are immutable; the same value may appear
// in many candidate placements without copying.
type Mod struct {
	// InstanceID uniquely identifies this mod instance. Two copies of the
	// same mod hash carry distinct instance IDs.
	InstanceID string

	// Hash is the definition hash shared by all copies of the same mod.
	Hash uint32

	// Name is the display name, informational only.
	Name string

	// Category decides the placement path.
	Category ModCategory

	// CompatTag is the category-derived socket compatibility tag required by
	// combat and activity mods. Empty when no tag is resolvable; combat and
	// activity predicates reject mods with an empty tag.
	CompatTag string

	// BucketHash is the target slot bucket for slot-specific mods. Zero for
	// shared-pool mods.
	BucketHash uint32

	// EnergyCost is the capacity consumed when the mod is socketed.
	EnergyCost int

	// EnergyType is the mod's energy affinity.
	EnergyType EnergyType
}

// NormalizeMod applies the ingestion defaults so that predicates never have
// to null-coalesce: a missing instance ID gets a fresh UUID, a negative cost
// clamps to zero, and an empty energy type becomes the wildcard.
func NormalizeMod(m Mod) Mod {
	if m.InstanceID == "" {
		m.InstanceID = uuid.NewString()
	}
	if m.EnergyCost < 0 {
		m.EnergyCost = 0
	}
	if m.EnergyType == "" {
		m.EnergyType = EnergyAny
	}
	if m.Category == "" {
		m.Category = CategoryUnknown
	}
	return m
}

// SumEnergyCost returns the total capacity consumed by the given mods.
func SumEnergyCost(mods []Mod) int {
	total := 0
	for _, m := range mods {
		total += m.EnergyCost
	}
	return total
}
