package core

// Slot is one equipment piece. Slots are constructed fresh per assignment
// invocation and never mutated during search; all candidate placements are
// value copies layered on top of the immutable slot.
type Slot struct {
	// ID is the stable identifier of the slot. Slot order in a request is
	// significant: it drives iteration order and tie-break determinism.
	ID string

	// Name is the display name, informational only.
	Name string

	// BucketHash identifies the slot bucket targeted by slot-specific mods.
	BucketHash uint32

	// OriginalCapacity is the declared energy capacity before any tier
	// override is applied.
	OriginalCapacity int

	// OriginalType is the declared energy affinity.
	OriginalType EnergyType

	// SocketTags are the compatibility tags accepted by the slot's physical
	// sockets. Combat and activity mods must carry one of these tags.
	SocketTags []string
}

// AcceptsTag reports whether the slot's sockets accept the given
// compatibility tag. An empty tag never matches.
func (s Slot) AcceptsTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, t := range s.SocketTags {
		if t == tag {
			return true
		}
	}
	return false
}
