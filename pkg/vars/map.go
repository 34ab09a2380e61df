package vars

// mapVar is the read-only projection of another variable.
type mapVar[T, O any] struct {
	source   Var[T]
	f        func(T) O
	cached   O
	cachedAt uint32
	hasCache bool
}

// Map returns a read-only variable whose value is f applied to the value
// of source. The projection is recomputed lazily and cached per source
// version; version, is-new and the update mask pass through unchanged.
func Map[T, O any](source Var[T], f func(T) O) Var[O] {
	return &mapVar[T, O]{source: source, f: f}
}

func (v *mapVar[T, O]) Get(u *Updates) O {
	if v.source.IsContextual() {
		// A context rebind changes the value without a version change, so
		// the version cache cannot be trusted.
		return v.f(v.source.Get(u))
	}
	if version := v.source.Version(u); !v.hasCache || v.cachedAt != version {
		v.cached = v.f(v.source.Get(u))
		v.cachedAt = version
		v.hasCache = true
	}
	return v.cached
}

func (v *mapVar[T, O]) GetNew(u *Updates) (O, bool) {
	if v.source.IsNew(u) {
		return v.Get(u), true
	}
	var zero O
	return zero, false
}

func (v *mapVar[T, O]) IsNew(u *Updates) bool     { return v.source.IsNew(u) }
func (v *mapVar[T, O]) Version(u *Updates) uint32 { return v.source.Version(u) }
func (v *mapVar[T, O]) IsReadOnly() bool          { return true }
func (v *mapVar[T, O]) AlwaysReadOnly() bool      { return true }
func (v *mapVar[T, O]) CanUpdate() bool           { return v.source.CanUpdate() }
func (v *mapVar[T, O]) IsContextual() bool        { return v.source.IsContextual() }

func (v *mapVar[T, O]) IsAnimating(u *Updates) bool        { return v.source.IsAnimating(u) }
func (v *mapVar[T, O]) ModifyImportance(u *Updates) uint32 { return v.source.ModifyImportance(u) }
func (v *mapVar[T, O]) UpdateMask(u *Updates) UpdateMask   { return v.source.UpdateMask(u) }

func (v *mapVar[T, O]) Set(u *Updates, value O) error { return ReadOnlyError{} }

func (v *mapVar[T, O]) Modify(u *Updates, modify func(*VarModify[O])) error {
	return ReadOnlyError{}
}

// bidiVar is a read-write projection: reads go through get, writes
// translate back into a modify of the source through set.
type bidiVar[T, O any] struct {
	source   Var[T]
	get      func(T) O
	set      func(*T, O)
	cached   O
	cachedAt uint32
	hasCache bool
}

// MapBidi returns a read-write variable projecting source through get;
// writes run set against a mutable view of the source's value, so the
// version bump and is-new originate from the source's own modify and the
// two variables stay consistent. Read-only-ness mirrors the source's.
func MapBidi[T, O any](source Var[T], get func(T) O, set func(v *T, value O)) Var[O] {
	return &bidiVar[T, O]{source: source, get: get, set: set}
}

func (v *bidiVar[T, O]) Get(u *Updates) O {
	if v.source.IsContextual() {
		return v.get(v.source.Get(u))
	}
	if version := v.source.Version(u); !v.hasCache || v.cachedAt != version {
		v.cached = v.get(v.source.Get(u))
		v.cachedAt = version
		v.hasCache = true
	}
	return v.cached
}

func (v *bidiVar[T, O]) GetNew(u *Updates) (O, bool) {
	if v.source.IsNew(u) {
		return v.Get(u), true
	}
	var zero O
	return zero, false
}

func (v *bidiVar[T, O]) IsNew(u *Updates) bool     { return v.source.IsNew(u) }
func (v *bidiVar[T, O]) Version(u *Updates) uint32 { return v.source.Version(u) }
func (v *bidiVar[T, O]) IsReadOnly() bool          { return v.source.IsReadOnly() }
func (v *bidiVar[T, O]) AlwaysReadOnly() bool      { return v.source.AlwaysReadOnly() }
func (v *bidiVar[T, O]) CanUpdate() bool           { return v.source.CanUpdate() }
func (v *bidiVar[T, O]) IsContextual() bool        { return v.source.IsContextual() }

func (v *bidiVar[T, O]) IsAnimating(u *Updates) bool        { return v.source.IsAnimating(u) }
func (v *bidiVar[T, O]) ModifyImportance(u *Updates) uint32 { return v.source.ModifyImportance(u) }
func (v *bidiVar[T, O]) UpdateMask(u *Updates) UpdateMask   { return v.source.UpdateMask(u) }

func (v *bidiVar[T, O]) Set(u *Updates, value O) error {
	return v.source.Modify(u, func(m *VarModify[T]) {
		m.Update(func(p *T) { v.set(p, value) })
	})
}

func (v *bidiVar[T, O]) Modify(u *Updates, modify func(*VarModify[O])) error {
	return v.source.Modify(u, func(m *VarModify[T]) {
		projected := v.get(m.Get())
		om := VarModify[O]{v: &projected}
		modify(&om)
		if om.touched {
			m.Update(func(p *T) { v.set(p, projected) })
		}
	})
}

// refVar projects a sub-field of the source's value located by a pointer
// projection.
type refVar[T, O any] struct {
	source Var[T]
	ref    func(*T) *O
}

// MapRef returns a read-write variable for a sub-field of source's value.
// ref must return a pointer into the value it is given; reads copy the
// field out, writes assign through the pointer inside a modify of the
// source. Version and is-new pass through from the source.
func MapRef[T, O any](source Var[T], ref func(*T) *O) Var[O] {
	return &refVar[T, O]{source: source, ref: ref}
}

func (v *refVar[T, O]) Get(u *Updates) O {
	value := v.source.Get(u)
	return *v.ref(&value)
}

func (v *refVar[T, O]) GetNew(u *Updates) (O, bool) {
	if v.source.IsNew(u) {
		return v.Get(u), true
	}
	var zero O
	return zero, false
}

func (v *refVar[T, O]) IsNew(u *Updates) bool     { return v.source.IsNew(u) }
func (v *refVar[T, O]) Version(u *Updates) uint32 { return v.source.Version(u) }
func (v *refVar[T, O]) IsReadOnly() bool          { return v.source.IsReadOnly() }
func (v *refVar[T, O]) AlwaysReadOnly() bool      { return v.source.AlwaysReadOnly() }
func (v *refVar[T, O]) CanUpdate() bool           { return v.source.CanUpdate() }
func (v *refVar[T, O]) IsContextual() bool        { return v.source.IsContextual() }

func (v *refVar[T, O]) IsAnimating(u *Updates) bool        { return v.source.IsAnimating(u) }
func (v *refVar[T, O]) ModifyImportance(u *Updates) uint32 { return v.source.ModifyImportance(u) }
func (v *refVar[T, O]) UpdateMask(u *Updates) UpdateMask   { return v.source.UpdateMask(u) }

func (v *refVar[T, O]) Set(u *Updates, value O) error {
	return v.source.Modify(u, func(m *VarModify[T]) {
		m.Update(func(p *T) { *v.ref(p) = value })
	})
}

func (v *refVar[T, O]) Modify(u *Updates, modify func(*VarModify[O])) error {
	return v.source.Modify(u, func(m *VarModify[T]) {
		om := VarModify[O]{v: v.ref(m.v)}
		modify(&om)
		if om.touched {
			m.Touch()
		}
	})
}
