package store

import "src.velt.dev/pkg/vars"

// SaveVar saves the current value of v under name. The value crosses the
// boundary through Get only; the store never holds a variable.
func SaveVar[T any](s Store, u *vars.Updates, name string, v vars.Var[T]) error {
	return s.Save(name, v.Get(u))
}

// LoadVar schedules the value saved under name as the next value of v.
// The write goes through Set and follows the ordinary cycle discipline:
// it becomes visible at the next apply. Returns ErrNoValue if nothing was
// saved under name, and the variable's error if it is read-only.
func LoadVar[T any](s Store, u *vars.Updates, name string, v vars.Var[T]) error {
	var value T
	if err := s.Load(name, &value); err != nil {
		return err
	}
	return v.Set(u, value)
}
