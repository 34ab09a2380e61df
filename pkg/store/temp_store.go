package store

import (
	"path/filepath"
	"testing"
)

// MustTempStore returns a Store backed by a temporary file that is closed
// and removed when the test finishes.
func MustTempStore(t *testing.T) Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "velt.db"))
	if err != nil {
		t.Fatalf("create temp store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
