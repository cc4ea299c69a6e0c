// Package v1alpha1 contains the externally-facing request and result types
// of the mod assigner. These are the serialization boundary: they carry
// JSON/YAML tags, validate themselves, and convert into the pure domain
// types in pkg/core. Ingestion defaults (missing costs, missing energy
// types, missing instance IDs) are applied here so the engine's predicates
// never null-coalesce.
package v1alpha1

import (
	"fmt"

	"github.com/loadoutkit/mod-assigner/internal/defs"
	"github.com/loadoutkit/mod-assigner/pkg/core"
)

// LoadoutRequest describes one assignment problem: the ordered slot set and
// the mods to place.
type LoadoutRequest struct {
	// Slots is the ordered slot set. Order is significant: it drives
	// iteration order and tie-break determinism, so callers must submit
	// slots in a stable order.
	Slots []SlotSpec `json:"slots" yaml:"slots"`

	// Mods is the multiset of mods to place.
	Mods []ModSpec `json:"mods" yaml:"mods"`

	// Tier optionally overrides the configured capacity upgrade tier.
	Tier *int `json:"tier,omitempty" yaml:"tier,omitempty"`

	// LockEnergyType optionally overrides the configured lock-type flag.
	LockEnergyType *bool `json:"lockEnergyType,omitempty" yaml:"lockEnergyType,omitempty"`
}

// SlotSpec describes one equipment slot.
type SlotSpec struct {
	// ID is the stable slot identifier. Required, unique within a request.
	ID string `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// BucketHash identifies the bucket targeted by slot-specific mods.
	BucketHash uint32 `json:"bucketHash,omitempty" yaml:"bucketHash,omitempty"`

	// Capacity is the declared energy capacity. Must not be negative.
	Capacity int `json:"capacity" yaml:"capacity"`

	// EnergyType is the declared affinity ("any", "arc", "solar", "void",
	// "stasis"). Empty or unrecognized values ingest as "any".
	EnergyType string `json:"energyType,omitempty" yaml:"energyType,omitempty"`

	// SocketTags are the compatibility tags the slot's sockets accept.
	SocketTags []string `json:"socketTags,omitempty" yaml:"socketTags,omitempty"`
}

// ModSpec describes one mod to place.
type ModSpec struct {
	// InstanceID uniquely identifies the mod instance. Generated at
	// ingestion when absent.
	InstanceID string `json:"instanceId,omitempty" yaml:"instanceId,omitempty"`

	// Hash is the mod definition hash.
	Hash uint32 `json:"hash" yaml:"hash"`

	// Name is the display name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// CategoryHash is resolved through the definitions category tables to
	// decide the mod's placement path.
	CategoryHash uint32 `json:"categoryHash" yaml:"categoryHash"`

	// BucketHash is the target slot bucket for slot-specific mods.
	BucketHash uint32 `json:"bucketHash,omitempty" yaml:"bucketHash,omitempty"`

	// EnergyCost is the capacity the mod consumes. Negative values ingest
	// as zero.
	EnergyCost int `json:"energyCost,omitempty" yaml:"energyCost,omitempty"`

	// EnergyType is the mod affinity. Empty or unrecognized values ingest
	// as "any".
	EnergyType string `json:"energyType,omitempty" yaml:"energyType,omitempty"`
}

// Validate checks the request for structural problems that ingestion cannot
// default away.
func (r *LoadoutRequest) Validate() error {
	seen := make(map[string]struct{}, len(r.Slots))
	for i, s := range r.Slots {
		if s.ID == "" {
			return fmt.Errorf("slot %d: id is required", i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("slot %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Capacity < 0 {
			return fmt.Errorf("slot %q: capacity must not be negative, got %d", s.ID, s.Capacity)
		}
	}
	return nil
}

// ToCore converts the request into domain types, resolving each mod's
// category and compatibility tag through the definitions provider and
// applying the ingestion defaults.
func (r *LoadoutRequest) ToCore(provider defs.Provider) ([]core.Slot, []core.Mod) {
	slots := make([]core.Slot, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, core.Slot{
			ID:               s.ID,
			Name:             s.Name,
			BucketHash:       s.BucketHash,
			OriginalCapacity: s.Capacity,
			OriginalType:     core.ParseEnergyType(s.EnergyType),
			SocketTags:       append([]string(nil), s.SocketTags...),
		})
	}

	mods := make([]core.Mod, 0, len(r.Mods))
	for _, m := range r.Mods {
		category := core.CategoryUnknown
		compatTag := ""
		if provider != nil {
			category, compatTag = provider.Classify(m.CategoryHash)
		}
		mods = append(mods, core.NormalizeMod(core.Mod{
			InstanceID: m.InstanceID,
			Hash:       m.Hash,
			Name:       m.Name,
			Category:   category,
			CompatTag:  compatTag,
			BucketHash: m.BucketHash,
			EnergyCost: m.EnergyCost,
			EnergyType: core.ParseEnergyType(m.EnergyType),
		}))
	}
	return slots, mods
}
