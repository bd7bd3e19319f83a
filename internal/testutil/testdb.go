package testutil

import (
	"database/sql"
	"testing"

	"github.com/jmorland/bmadcoach/internal/db"
)

// NewTestDB opens a fully migrated in-memory SQLite store scoped to the
// test's lifetime.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}
