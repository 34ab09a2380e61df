package vars

type readOnlyVar[T any] struct {
	source Var[T]
}

// AsReadOnly wraps v so that it is permanently read-only. Reads, version
// and is-new delegate to v; Set and Modify always fail. Variables that
// are already structurally read-only are returned unchanged.
func AsReadOnly[T any](v Var[T]) Var[T] {
	if v.AlwaysReadOnly() {
		return v
	}
	return &readOnlyVar[T]{v}
}

func (v *readOnlyVar[T]) Get(u *Updates) T            { return v.source.Get(u) }
func (v *readOnlyVar[T]) GetNew(u *Updates) (T, bool) { return v.source.GetNew(u) }
func (v *readOnlyVar[T]) IsNew(u *Updates) bool       { return v.source.IsNew(u) }
func (v *readOnlyVar[T]) Version(u *Updates) uint32   { return v.source.Version(u) }
func (v *readOnlyVar[T]) IsReadOnly() bool            { return true }
func (v *readOnlyVar[T]) AlwaysReadOnly() bool        { return true }
func (v *readOnlyVar[T]) CanUpdate() bool             { return v.source.CanUpdate() }
func (v *readOnlyVar[T]) IsContextual() bool          { return v.source.IsContextual() }

func (v *readOnlyVar[T]) IsAnimating(u *Updates) bool        { return v.source.IsAnimating(u) }
func (v *readOnlyVar[T]) ModifyImportance(u *Updates) uint32 { return v.source.ModifyImportance(u) }
func (v *readOnlyVar[T]) UpdateMask(u *Updates) UpdateMask   { return v.source.UpdateMask(u) }

func (v *readOnlyVar[T]) Set(u *Updates, value T) error { return ReadOnlyError{} }

func (v *readOnlyVar[T]) Modify(u *Updates, modify func(*VarModify[T])) error {
	return ReadOnlyError{}
}
