package vars

import "sync/atomic"

// UpdateSlot identifies a variable in an [UpdateMask]. Slots come from a
// fixed pool of 256 assigned round-robin, so distinct variables can share
// a slot: a mask intersection can be a false positive but never a false
// negative, which is all the change pre-filter needs.
type UpdateSlot uint8

var slotCounter uint32

func nextUpdateSlot() UpdateSlot {
	return UpdateSlot(atomic.AddUint32(&slotCounter, 1) - 1)
}

// UpdateMask is a bit set of [UpdateSlot]s. The store unions the masks of
// all writes applied in a cycle; consumers intersect that with the mask
// of the variables they care about before polling IsNew.
type UpdateMask [4]uint64

// SlotMask returns a mask with only the given slot set.
func SlotMask(s UpdateSlot) UpdateMask {
	var m UpdateMask
	m.set(s)
	return m
}

func (m *UpdateMask) set(s UpdateSlot) {
	m[s/64] |= 1 << (s % 64)
}

func (m *UpdateMask) unionWith(o UpdateMask) {
	for i := range m {
		m[i] |= o[i]
	}
}

// Intersects reports whether the two masks share any slot.
func (m UpdateMask) Intersects(o UpdateMask) bool {
	for i := range m {
		if m[i]&o[i] != 0 {
			return true
		}
	}
	return false
}

// IsNone reports whether no slot is set.
func (m UpdateMask) IsNone() bool {
	return m == UpdateMask{}
}
