package defs

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/loadoutkit/mod-assigner/pkg/core"
)

// Manifest document shape:
//
//	{
//	  "energy": {"tiers": [0, 1, ..., 10]},
//	  "categories": [
//	    {"hash": 4104513227, "category": "general"},
//	    {"hash": 1081029832, "category": "combat", "compatTag": "enhancements.season_maverick"},
//	    {"hash": 208760563, "category": "activity", "compatTag": "enhancements.raid_descent"},
//	    {"hash": 2912171003, "category": "slot-specific"}
//	  ]
//	}
//
// Unknown category strings are skipped with the rest of the entry; the
// resulting provider classifies their hashes as unknown.

// ParseManifest builds a StaticProvider from a JSON manifest document.
func ParseManifest(data []byte) (*StaticProvider, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("manifest is not valid JSON")
	}
	doc := gjson.ParseBytes(data)

	var tiers []int
	for _, t := range doc.Get("energy.tiers").Array() {
		tiers = append(tiers, int(t.Int()))
	}

	categories := make(map[uint32]CategoryEntry)
	for _, entry := range doc.Get("categories").Array() {
		hash := entry.Get("hash")
		if !hash.Exists() {
			continue
		}
		category, ok := parseCategory(entry.Get("category").String())
		if !ok {
			continue
		}
		categories[uint32(hash.Uint())] = CategoryEntry{
			Category:  category,
			CompatTag: entry.Get("compatTag").String(),
		}
	}

	return NewStaticProvider(tiers, categories), nil
}

// LoadManifest reads and parses a JSON manifest file.
func LoadManifest(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	provider, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return provider, nil
}

func parseCategory(s string) (core.ModCategory, bool) {
	switch core.ModCategory(s) {
	case core.CategoryGeneral:
		return core.CategoryGeneral, true
	case core.CategoryCombat:
		return core.CategoryCombat, true
	case core.CategoryActivity:
		return core.CategoryActivity, true
	case core.CategorySlotSpecific:
		return core.CategorySlotSpecific, true
	default:
		return core.CategoryUnknown, false
	}
}
