// Package vars implements the reactive variable engine at the heart of
// velt: every piece of observable UI state (a window position, a text
// color, an animation progress) is a variable, and everything that reads
// one can find out cheaply, once per cycle, whether it changed.
//
// # Cycles
//
// All state lives behind a single [Updates] store and advances in
// cycles. During the read phase any amount of code reads variables and
// schedules writes with Set and Modify; no value visibly changes.
// Calling [Updates.Apply] runs the apply phase: every scheduled write is
// invoked in the order it was scheduled, versions are bumped, and a new
// cycle id is assigned. After Apply, IsNew reports exactly the variables
// changed by that apply, for the whole duration of the new cycle.
//
// The engine is single-threaded by design: mutation is confined to the
// apply phase of whatever goroutine owns the Updates store, so variables
// need no locks. Cells are shared by copying handles; a handle is a
// pointer and all copies observe the same cell.
//
// # Variable kinds
//
//   - [New] makes a root variable that owns its value.
//   - [Const] holds a value that can never change; [IntoVar] converts
//     literals to Const and passes variables through.
//   - [NewContextVar] makes a contextual variable resolved against the
//     innermost [WithContext] binding.
//   - [Map], [MapBidi] and [MapRef] derive variables from other
//     variables.
//   - [NewCow] mirrors a source until first written, then owns an
//     independent value.
//
// Animations ([Ease], [EaseKeyed] and friends) are time-driven mutation
// sources built on Modify; they re-enqueue a write once per cycle until
// they complete or another write supersedes them.
package vars

// AnyVar is the type-erased half of the variable contract, implemented by
// every variable regardless of its value type. It is what heterogeneous
// consumers like [Subs] operate on.
type AnyVar interface {
	// IsNew reports whether the variable's value changed in the apply
	// that produced the current cycle.
	IsNew(u *Updates) bool
	// Version returns the variable's version, a counter incremented each
	// time a write to the variable is applied.
	Version(u *Updates) uint32
	// IsReadOnly reports whether writes are currently rejected. It can
	// change over time for variables that delegate to a source.
	IsReadOnly() bool
	// AlwaysReadOnly reports whether the variable is structurally
	// read-only, fixed at construction.
	AlwaysReadOnly() bool
	// CanUpdate reports whether the value can ever change. It is false
	// only for permanently-frozen values; consumers use it to decide
	// whether subscribing is worthwhile.
	CanUpdate() bool
	// IsContextual reports whether the value currently resolves through
	// the context table, in which case it can change without a version
	// change.
	IsContextual() bool
	// IsAnimating reports whether the last applied write came from an
	// animation. The flag persists until an ordinary write replaces it,
	// letting consumers distinguish "being animated" from "jumped".
	IsAnimating(u *Updates) bool
	// ModifyImportance returns the importance recorded by the last
	// applied write. Animations compare it against their own importance
	// to detect that a newer writer took over the variable.
	ModifyImportance(u *Updates) uint32
	// UpdateMask returns the variable's change mask, used by [Subs] to
	// pre-filter change polling.
	UpdateMask(u *Updates) UpdateMask
}

// Var is a variable holding a value of type T.
//
// Reads never block and never fail. Writes are deferred: Set and Modify
// only schedule the mutation, which the next [Updates.Apply] applies;
// they return [ReadOnlyError] immediately, without touching the store,
// when the variable rejects writes.
type Var[T any] interface {
	AnyVar
	// Get returns the current value.
	Get(u *Updates) T
	// GetNew returns the current value and true if IsNew.
	GetNew(u *Updates) (T, bool)
	// Set schedules a whole-value replacement.
	Set(u *Updates, value T) error
	// Modify schedules an in-place mutation. The closure runs during the
	// apply phase; unless it marks the value touched, no version bump
	// occurs and no new-value notification fires.
	Modify(u *Updates, modify func(*VarModify[T])) error
}

// Touch schedules a new-value notification for v without changing its
// value.
func Touch[T any](u *Updates, v Var[T]) error {
	return v.Modify(u, func(m *VarModify[T]) { m.Touch() })
}

// SetIfChanged schedules a write of value only if it differs from the
// value at apply time, so an equal value causes no version bump and no
// notification.
func SetIfChanged[T comparable](u *Updates, v Var[T], value T) error {
	return v.Modify(u, func(m *VarModify[T]) {
		if m.Get() != value {
			m.Set(value)
		}
	})
}
