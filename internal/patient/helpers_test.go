package patient

import (
	"path/filepath"
	"testing"

	"github.com/clinicbox/patreg/internal/store"
)

// newTestRegistry creates a Registry over a fresh temp database.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	h := store.NewHandle(filepath.Join(t.TempDir(), "registry.db"))
	t.Cleanup(func() { h.Close() })
	return NewRegistry(h)
}

// newUnreachableHandle returns a handle whose database can never open.
func newUnreachableHandle(t *testing.T) *store.Handle {
	t.Helper()
	return store.NewHandle(filepath.Join(t.TempDir(), "missing", "registry.db"))
}

// testPatient returns a minimal valid patient.
func testPatient(first, last string) Patient {
	return Patient{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: "1990-01-15",
		Gender:      GenderOther,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
