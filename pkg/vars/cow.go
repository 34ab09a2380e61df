package vars

// CowVar is a clone-on-write variable: it mirrors a source variable until
// it is first written, at which point it takes a snapshot of the source's
// value, detaches permanently, and behaves like a root variable from then
// on. Use it where a value is inherited from a source but can optionally
// be overridden locally.
//
// The pass-through mode ([PassThrough]) never clones: writes are always
// forwarded to the source. It exists so a caller can hand out one handle
// type that is either an override or a direct alias depending on
// configuration.
type CowVar[T any] struct {
	source      Var[T] // nil once cloned
	passThrough bool
	c           varCell[T]
	mask        UpdateMask
	hasMask     bool
}

// NewCow returns a cow variable reading from source.
func NewCow[T any](source Var[T]) *CowVar[T] {
	return &CowVar[T]{source: source}
}

// PassThrough returns a cow variable that always forwards writes to
// source and never enters the cloned state. Writes to a read-only source
// fail with the source's ReadOnlyError instead of silently no-op-ing.
func PassThrough[T any](source Var[T]) *CowVar[T] {
	return &CowVar[T]{source: source, passThrough: true}
}

// IsCloned reports whether the variable has detached from its source and
// owns its value. The transition is irreversible.
func (v *CowVar[T]) IsCloned() bool { return v.source == nil }

// IsPassThrough reports whether writes are forwarded to the source.
func (v *CowVar[T]) IsPassThrough() bool { return v.passThrough }

func (v *CowVar[T]) Get(u *Updates) T {
	if v.source != nil {
		return v.source.Get(u)
	}
	return v.c.value
}

func (v *CowVar[T]) GetNew(u *Updates) (T, bool) {
	if v.source != nil {
		return v.source.GetNew(u)
	}
	if v.c.isNew(u) {
		return v.c.value, true
	}
	var zero T
	return zero, false
}

func (v *CowVar[T]) IsNew(u *Updates) bool {
	if v.source != nil {
		return v.source.IsNew(u)
	}
	return v.c.isNew(u)
}

// Version returns the source's version while linked. The cloned version
// starts from the source's version at detach time plus one for the
// detaching write, then increments independently.
func (v *CowVar[T]) Version(u *Updates) uint32 {
	if v.source != nil {
		return v.source.Version(u)
	}
	return v.c.version
}

func (v *CowVar[T]) IsReadOnly() bool {
	if v.passThrough {
		return v.source.IsReadOnly()
	}
	return false
}

func (v *CowVar[T]) AlwaysReadOnly() bool {
	return v.passThrough && v.source.AlwaysReadOnly()
}

func (v *CowVar[T]) CanUpdate() bool {
	return !v.passThrough || v.source.CanUpdate()
}

func (v *CowVar[T]) IsContextual() bool {
	return v.source != nil && v.source.IsContextual()
}

func (v *CowVar[T]) IsAnimating(u *Updates) bool {
	if v.source != nil {
		return v.source.IsAnimating(u)
	}
	return v.c.animating
}

func (v *CowVar[T]) ModifyImportance(u *Updates) uint32 {
	if v.source != nil {
		return v.source.ModifyImportance(u)
	}
	return v.c.importance
}

// UpdateMask returns the variable's change mask, fixed at first use for
// the variable's whole life: a subscriber that captured the mask while
// the variable was linked must keep seeing the clone's writes in it.
func (v *CowVar[T]) UpdateMask(u *Updates) UpdateMask {
	if !v.hasMask {
		if v.source != nil {
			v.mask = v.source.UpdateMask(u)
		}
		if v.mask.IsNone() {
			v.mask = SlotMask(nextUpdateSlot())
		}
		v.hasMask = true
	}
	return v.mask
}

// Set schedules a whole-value replacement; while linked (and not
// pass-through) it also schedules the detach.
func (v *CowVar[T]) Set(u *Updates, value T) error {
	return v.Modify(u, func(m *VarModify[T]) { m.Set(value) })
}

// Modify schedules an in-place mutation. The first write while linked
// snapshots the source's current value and version; the detach itself is
// applied together with the write, so reads keep delegating to the
// source until the apply phase.
func (v *CowVar[T]) Modify(u *Updates, modify func(*VarModify[T])) error {
	if v.passThrough {
		return v.source.Modify(u, modify)
	}
	mask := v.UpdateMask(u)
	if v.source != nil {
		v.c.value = v.source.Get(u)
		v.c.version = v.source.Version(u)
	}
	importance, animating := u.writeOrigin()
	u.Enqueue(func(cycle uint32) UpdateMask {
		v.source = nil
		if v.c.apply(cycle, importance, animating, modify).IsNone() {
			return UpdateMask{}
		}
		return mask
	})
	return nil
}
