package vars

// ReadOnlyError is returned by Set and Modify when the target variable
// rejects writes. It is the only error kind in this package and is always
// locally recoverable; callers can check IsReadOnly proactively instead.
type ReadOnlyError struct{}

func (ReadOnlyError) Error() string {
	return "cannot set or modify read-only variable"
}
