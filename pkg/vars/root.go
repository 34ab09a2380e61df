package vars

// varCell is the state every value-owning variable keeps: the value, its
// version, the cycle of the last applied write, and the origin of that
// write. RootVar embeds one; CowVar embeds one for its cloned state.
type varCell[T any] struct {
	value      T
	version    uint32
	lastUpdate uint32
	importance uint32
	animating  bool
	slot       UpdateSlot
}

func (c *varCell[T]) isNew(u *Updates) bool {
	return c.lastUpdate != 0 && c.lastUpdate == u.cycle
}

// apply runs a modify closure against the cell during the apply phase.
// Writes outranked by a newer importance are skipped; untouched modifies
// change nothing.
func (c *varCell[T]) apply(cycle, importance uint32, animating bool, modify func(*VarModify[T])) UpdateMask {
	if importance < c.importance {
		return UpdateMask{}
	}
	m := VarModify[T]{v: &c.value}
	modify(&m)
	if !m.touched {
		return UpdateMask{}
	}
	c.version++
	c.lastUpdate = cycle
	c.importance = importance
	c.animating = animating
	return SlotMask(c.slot)
}

// RootVar is a directly owned, shared, mutable variable: the leaf of the
// dependency graph. Copying the handle shares the same cell; the cell
// lives as long as any handle does.
type RootVar[T any] struct {
	c varCell[T]
}

// New returns a root variable with the given initial value, at version 0.
func New[T any](value T) *RootVar[T] {
	return &RootVar[T]{varCell[T]{value: value, slot: nextUpdateSlot()}}
}

// Get returns the current value.
func (v *RootVar[T]) Get(u *Updates) T { return v.c.value }

// GetNew returns the current value and true if it changed this cycle.
func (v *RootVar[T]) GetNew(u *Updates) (T, bool) {
	if v.c.isNew(u) {
		return v.c.value, true
	}
	var zero T
	return zero, false
}

func (v *RootVar[T]) IsNew(u *Updates) bool     { return v.c.isNew(u) }
func (v *RootVar[T]) Version(u *Updates) uint32 { return v.c.version }
func (v *RootVar[T]) IsReadOnly() bool          { return false }
func (v *RootVar[T]) AlwaysReadOnly() bool      { return false }
func (v *RootVar[T]) CanUpdate() bool           { return true }
func (v *RootVar[T]) IsContextual() bool        { return false }

func (v *RootVar[T]) IsAnimating(u *Updates) bool        { return v.c.animating }
func (v *RootVar[T]) ModifyImportance(u *Updates) uint32 { return v.c.importance }
func (v *RootVar[T]) UpdateMask(u *Updates) UpdateMask   { return SlotMask(v.c.slot) }

// Set schedules a whole-value replacement for the next Apply.
func (v *RootVar[T]) Set(u *Updates, value T) error {
	return v.Modify(u, func(m *VarModify[T]) { m.Set(value) })
}

// Modify schedules an in-place mutation for the next Apply.
func (v *RootVar[T]) Modify(u *Updates, modify func(*VarModify[T])) error {
	importance, animating := u.writeOrigin()
	u.Enqueue(func(cycle uint32) UpdateMask {
		return v.c.apply(cycle, importance, animating, modify)
	})
	return nil
}
