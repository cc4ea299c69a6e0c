package compat

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/loadoutkit/mod-assigner/internal/capacity"
	"github.com/loadoutkit/mod-assigner/pkg/core"
)

func makeMod(cost int, energy core.EnergyType, tag string) core.Mod {
	return core.Mod{EnergyCost: cost, EnergyType: energy, CompatTag: tag}
}

var _ = Describe("SlotSpecificValid", func() {
	var snap capacity.Snapshot

	BeforeEach(func() {
		snap = capacity.Snapshot{
			Consumed:         3,
			OriginalCapacity: 10,
			DerivedCapacity:  10,
			OriginalType:     core.EnergySolar,
			DerivedType:      core.EnergySolar,
		}
	})

	Context("energy type matching", func() {
		It("should accept a mod of the derived type", func() {
			Expect(SlotSpecificValid(makeMod(2, core.EnergySolar, ""), snap)).To(BeTrue())
		})

		It("should accept a wildcard mod on a typed slot", func() {
			Expect(SlotSpecificValid(makeMod(2, core.EnergyAny, ""), snap)).To(BeTrue())
		})

		It("should accept a typed mod on a wildcard slot", func() {
			snap.DerivedType = core.EnergyAny
			Expect(SlotSpecificValid(makeMod(2, core.EnergyVoid, ""), snap)).To(BeTrue())
		})

		It("should reject a mod of a different concrete type", func() {
			Expect(SlotSpecificValid(makeMod(2, core.EnergyArc, ""), snap)).To(BeFalse())
		})
	})

	Context("capacity accounting", func() {
		It("should accept a mod that exactly fills the slot", func() {
			Expect(SlotSpecificValid(makeMod(7, core.EnergySolar, ""), snap)).To(BeTrue())
		})

		It("should reject a mod exceeding the remaining capacity", func() {
			Expect(SlotSpecificValid(makeMod(8, core.EnergySolar, ""), snap)).To(BeFalse())
		})

		It("should accept a zero-cost mod on a full slot", func() {
			snap.Consumed = 10
			Expect(SlotSpecificValid(makeMod(0, core.EnergySolar, ""), snap)).To(BeTrue())
		})
	})
})

var _ = Describe("GeneralValid", func() {
	snap := capacity.Snapshot{
		Consumed:         2,
		OriginalCapacity: 10,
		DerivedCapacity:  10,
		OriginalType:     core.EnergySolar,
		DerivedType:      core.EnergySolar,
	}

	It("should count already-assigned mods against capacity", func() {
		assigned := []core.Mod{makeMod(4, core.EnergyAny, "")}
		Expect(GeneralValid(makeMod(4, core.EnergySolar, ""), snap, assigned)).To(BeTrue())
		Expect(GeneralValid(makeMod(5, core.EnergySolar, ""), snap, assigned)).To(BeFalse())
	})

	It("should accept with an empty assigned list", func() {
		Expect(GeneralValid(makeMod(8, core.EnergySolar, ""), snap, nil)).To(BeTrue())
	})

	It("should still enforce the type rule", func() {
		Expect(GeneralValid(makeMod(1, core.EnergyStasis, ""), snap, nil)).To(BeFalse())
	})
})

var _ = Describe("SocketValid", func() {
	slot := core.Slot{
		ID:         "chest",
		SocketTags: []string{"enhancements.season_outlaw", "enhancements.raid_garden"},
	}
	snap := capacity.Snapshot{
		DerivedCapacity: 10,
		OriginalType:    core.EnergyAny,
		DerivedType:     core.EnergyAny,
	}

	It("should accept a mod whose tag the sockets accept", func() {
		mod := makeMod(3, core.EnergyAny, "enhancements.raid_garden")
		Expect(SocketValid(mod, slot, snap, nil)).To(BeTrue())
	})

	It("should reject a mod whose tag the sockets do not accept", func() {
		mod := makeMod(3, core.EnergyAny, "enhancements.raid_descent")
		Expect(SocketValid(mod, slot, snap, nil)).To(BeFalse())
	})

	It("should reject a mod with no resolvable tag", func() {
		mod := makeMod(3, core.EnergyAny, "")
		Expect(SocketValid(mod, slot, snap, nil)).To(BeFalse())
	})

	It("should reject when the tag matches but capacity does not", func() {
		mod := makeMod(11, core.EnergyAny, "enhancements.season_outlaw")
		Expect(SocketValid(mod, slot, snap, nil)).To(BeFalse())
	})

	It("should reject any tag on a slot without socket tags", func() {
		bare := core.Slot{ID: "bond"}
		mod := makeMod(1, core.EnergyAny, "enhancements.season_outlaw")
		Expect(SocketValid(mod, bare, snap, nil)).To(BeFalse())
	})
})
