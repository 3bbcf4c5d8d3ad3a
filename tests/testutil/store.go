package testutil

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/enesk/study-planner/internal/store"
)

// NewTestStore creates a file-backed SQLiteStore in a per-test temp
// directory with all migrations applied. A shared file keeps every
// pooled connection on the same database. The store is closed when the
// test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// Logger returns a silenced logger for tests.
func Logger() zerolog.Logger {
	return zerolog.Nop()
}
