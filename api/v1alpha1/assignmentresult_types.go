package v1alpha1

import (
	"github.com/loadoutkit/mod-assigner/internal/engines/assigner"
	"github.com/loadoutkit/mod-assigner/pkg/core"
)

// AssignmentResult is the serializable form of an engine result, ordered by
// the request's slot order.
type AssignmentResult struct {
	// Assignments lists each slot with its assigned mods, in request slot
	// order. Greedily placed slot-specific mods come first, search-derived
	// mods are appended.
	Assignments []SlotAssignment `json:"assignments" yaml:"assignments"`

	// Unassigned is the flat list of mods that could not be placed anywhere.
	Unassigned []ModRef `json:"unassigned" yaml:"unassigned"`

	// Stats summarizes the search.
	Stats SearchStats `json:"stats" yaml:"stats"`
}

// SlotAssignment is one slot's share of the result.
type SlotAssignment struct {
	SlotID string   `json:"slotId" yaml:"slotId"`
	Mods   []ModRef `json:"mods" yaml:"mods"`
}

// ModRef identifies one mod in a result.
type ModRef struct {
	InstanceID string `json:"instanceId" yaml:"instanceId"`
	Hash       uint32 `json:"hash" yaml:"hash"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	EnergyCost int    `json:"energyCost" yaml:"energyCost"`
	EnergyType string `json:"energyType" yaml:"energyType"`
}

// SearchStats mirrors the engine's search statistics.
type SearchStats struct {
	TriplesEvaluated int `json:"triplesEvaluated" yaml:"triplesEvaluated"`
	TriplesPruned    int `json:"triplesPruned" yaml:"triplesPruned"`
	BestReplacements int `json:"bestReplacements" yaml:"bestReplacements"`
}

// NewAssignmentResult converts an engine result into its serializable form.
// slotOrder fixes the output ordering; the engine's BySlot map carries no
// order of its own.
func NewAssignmentResult(res assigner.Result, slotOrder []core.Slot) AssignmentResult {
	out := AssignmentResult{
		Assignments: make([]SlotAssignment, 0, len(slotOrder)),
		Unassigned:  make([]ModRef, 0, len(res.Unassigned)),
		Stats: SearchStats{
			TriplesEvaluated: res.Stats.TriplesEvaluated,
			TriplesPruned:    res.Stats.TriplesPruned,
			BestReplacements: res.Stats.BestReplacements,
		},
	}
	for _, slot := range slotOrder {
		sa := SlotAssignment{SlotID: slot.ID, Mods: make([]ModRef, 0, len(res.BySlot[slot.ID]))}
		for _, m := range res.BySlot[slot.ID] {
			sa.Mods = append(sa.Mods, newModRef(m))
		}
		out.Assignments = append(out.Assignments, sa)
	}
	for _, m := range res.Unassigned {
		out.Unassigned = append(out.Unassigned, newModRef(m))
	}
	return out
}

func newModRef(m core.Mod) ModRef {
	return ModRef{
		InstanceID: m.InstanceID,
		Hash:       m.Hash,
		Name:       m.Name,
		EnergyCost: m.EnergyCost,
		EnergyType: string(m.EnergyType),
	}
}
