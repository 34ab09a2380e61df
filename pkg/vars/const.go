package vars

import "fmt"

type constVar[T any] struct {
	value T
}

// Const returns a variable holding a value that can never change: version
// 0, never new, CanUpdate false. Literal property arguments become Const
// variables through [IntoVar].
func Const[T any](value T) Var[T] {
	return &constVar[T]{value}
}

func (v *constVar[T]) Get(u *Updates) T { return v.value }

func (v *constVar[T]) GetNew(u *Updates) (T, bool) {
	var zero T
	return zero, false
}

func (v *constVar[T]) IsNew(u *Updates) bool     { return false }
func (v *constVar[T]) Version(u *Updates) uint32 { return 0 }
func (v *constVar[T]) IsReadOnly() bool          { return true }
func (v *constVar[T]) AlwaysReadOnly() bool      { return true }
func (v *constVar[T]) CanUpdate() bool           { return false }
func (v *constVar[T]) IsContextual() bool        { return false }

func (v *constVar[T]) IsAnimating(u *Updates) bool        { return false }
func (v *constVar[T]) ModifyImportance(u *Updates) uint32 { return 0 }
func (v *constVar[T]) UpdateMask(u *Updates) UpdateMask   { return UpdateMask{} }

func (v *constVar[T]) Set(u *Updates, value T) error { return ReadOnlyError{} }

func (v *constVar[T]) Modify(u *Updates, modify func(*VarModify[T])) error {
	return ReadOnlyError{}
}

// IntoVar converts x into a Var[T]: an existing Var[T] passes through
// unchanged and a plain T becomes a permanently-frozen [Const]. It lets
// callers accept either a literal or a variable wherever a variable is
// expected. Any other type panics; the mismatch is a programming error.
func IntoVar[T any](x any) Var[T] {
	switch x := x.(type) {
	case Var[T]:
		return x
	case T:
		return Const(x)
	}
	var zero T
	panic(fmt.Sprintf("vars: cannot convert %T into a variable of %T", x, zero))
}
