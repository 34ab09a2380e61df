package vars

// VarModify is the mutable view of a variable's value passed to Modify
// closures. The value counts as changed only if the closure calls Set,
// Update or Touch; reading with Get leaves the touched flag unset, which
// supports conditional writes that don't force a cycle.
type VarModify[T any] struct {
	v       *T
	touched bool
}

// Get returns the value being modified.
func (m *VarModify[T]) Get() T { return *m.v }

// Set replaces the value and marks it touched.
func (m *VarModify[T]) Set(value T) {
	*m.v = value
	m.touched = true
}

// Update calls f with a pointer to the value and marks it touched.
func (m *VarModify[T]) Update(f func(*T)) {
	f(m.v)
	m.touched = true
}

// Touch marks the value as changed without replacing it.
func (m *VarModify[T]) Touch() { m.touched = true }
