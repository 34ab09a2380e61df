package vars

// ContextVar is a variable that owns no value: at read time it resolves
// to whatever is bound for it by the innermost active [WithContext] or
// [WithContextValue] call, falling back to a static default. It
// implements "inherited unless overridden" semantics, like a text color
// that cascades down a widget tree unless a descendant rebinds it.
//
// The *ContextVar pointer itself is the key into the context table, so
// two ContextVars of the same value type are distinct contexts.
//
// A ContextVar is always read-only through its own handle; its value is
// changed only by writing to whichever variable the current scope bound.
type ContextVar[T any] struct {
	def T
}

// NewContextVar returns a contextual variable with the given static
// default. The default is never versioned and never new.
func NewContextVar[T any](def T) *ContextVar[T] {
	return &ContextVar[T]{def}
}

// Default returns the static default value.
func (cv *ContextVar[T]) Default() T { return cv.def }

// valueBinding is a context binding of a plain value with explicit
// version metadata, as opposed to a binding of a whole variable.
type valueBinding[T any] struct {
	value   T
	isNew   bool
	version uint32
}

// WithContext binds v as the value of cv while body runs, shadowing any
// outer binding. The previous binding is restored when body returns,
// including by panic.
func WithContext[T any](u *Updates, cv *ContextVar[T], v Var[T], body func()) {
	u.withBinding(cv, v, body)
}

// WithContextValue binds a plain value with explicit is-new and version
// metadata while body runs. It is meant for callers that hold a value and
// its change state but no variable handle.
func WithContextValue[T any](u *Updates, cv *ContextVar[T], value T, isNew bool, version uint32, body func()) {
	u.withBinding(cv, valueBinding[T]{value, isNew, version}, body)
}

// Get returns the innermost bound value, or the static default.
func (cv *ContextVar[T]) Get(u *Updates) T {
	if b, ok := u.binding(cv); ok {
		switch b := b.(type) {
		case Var[T]:
			return b.Get(u)
		case valueBinding[T]:
			return b.value
		}
	}
	return cv.def
}

// GetNew returns the bound value and true if the binding is new this
// cycle. The default is never new.
func (cv *ContextVar[T]) GetNew(u *Updates) (T, bool) {
	if cv.IsNew(u) {
		return cv.Get(u), true
	}
	var zero T
	return zero, false
}

// IsNew reports the is-new state of the current binding; false for the
// default.
func (cv *ContextVar[T]) IsNew(u *Updates) bool {
	if b, ok := u.binding(cv); ok {
		switch b := b.(type) {
		case Var[T]:
			return b.IsNew(u)
		case valueBinding[T]:
			return b.isNew
		}
	}
	return false
}

// Version returns the version of the current binding; 0 for the default.
func (cv *ContextVar[T]) Version(u *Updates) uint32 {
	if b, ok := u.binding(cv); ok {
		switch b := b.(type) {
		case Var[T]:
			return b.Version(u)
		case valueBinding[T]:
			return b.version
		}
	}
	return 0
}

func (cv *ContextVar[T]) IsReadOnly() bool     { return true }
func (cv *ContextVar[T]) AlwaysReadOnly() bool { return true }
func (cv *ContextVar[T]) CanUpdate() bool      { return true }
func (cv *ContextVar[T]) IsContextual() bool   { return true }

func (cv *ContextVar[T]) IsAnimating(u *Updates) bool {
	if b, ok := u.binding(cv); ok {
		if v, ok := b.(Var[T]); ok {
			return v.IsAnimating(u)
		}
	}
	return false
}

func (cv *ContextVar[T]) ModifyImportance(u *Updates) uint32 {
	if b, ok := u.binding(cv); ok {
		if v, ok := b.(Var[T]); ok {
			return v.ModifyImportance(u)
		}
	}
	return 0
}

func (cv *ContextVar[T]) UpdateMask(u *Updates) UpdateMask {
	if b, ok := u.binding(cv); ok {
		if v, ok := b.(Var[T]); ok {
			return v.UpdateMask(u)
		}
	}
	return UpdateMask{}
}

func (cv *ContextVar[T]) Set(u *Updates, value T) error { return ReadOnlyError{} }

func (cv *ContextVar[T]) Modify(u *Updates, modify func(*VarModify[T])) error {
	return ReadOnlyError{}
}
