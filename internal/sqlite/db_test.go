package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"projects", "stages", "activity_log"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestMigrationsIdempotent verifies the bootstrap schema can be reapplied
func TestMigrationsIdempotent(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.RunMigrations())
}

// TestProjectNumberUniqueIndex verifies the storage backstop on project_no
func TestProjectNumberUniqueIndex(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(`INSERT INTO projects (id, project_no) VALUES ('a', 'P-1')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO projects (id, project_no) VALUES ('b', 'P-1')`)
	require.Error(t, err)
	require.True(t, isUniqueViolation(err))
}
