package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	st, err := NewSQLiteStorage(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = st.Close()
	})

	return st
}

func TestMigrations(t *testing.T) {
	t.Run("Fresh database has no version", func(t *testing.T) {
		// Given: an empty database
		st := newTestStorage(t)

		// When: reading the schema version
		version, dirty, err := CurrentVersion(st.Connection)

		// Then: nothing has been applied yet
		require.NoError(t, err)
		assert.Zero(t, version)
		assert.False(t, dirty)
	})

	t.Run("Init applies every migration and is idempotent", func(t *testing.T) {
		// Given: an empty database
		st := newTestStorage(t)

		// When: running Init twice
		require.NoError(t, st.Init())
		require.NoError(t, st.Init())

		// Then: the schema is at the latest version and both tables exist
		version, dirty, err := CurrentVersion(st.Connection)
		require.NoError(t, err)
		assert.Equal(t, uint(2), version)
		assert.False(t, dirty)

		for _, table := range []string{"users", "games"} {
			var name string
			err = st.Connection.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
			require.NoError(t, err)
			assert.Equal(t, table, name)
		}
	})

	t.Run("MigrateDown rolls back one step", func(t *testing.T) {
		// Given: a fully migrated database
		st := newTestStorage(t)
		require.NoError(t, st.Init())

		// When: rolling back once
		require.NoError(t, MigrateDown(st.Connection))

		// Then: the games table is gone and the version is 1
		version, _, err := CurrentVersion(st.Connection)
		require.NoError(t, err)
		assert.Equal(t, uint(1), version)

		var count int
		err = st.Connection.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'games'`).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage(context.Background(), " ")

	require.Error(t, err)
}
