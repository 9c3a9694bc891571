package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsUpAndDown(t *testing.T) {
	ctx := context.Background()
	conn := filepath.Join(t.TempDir(), "nested", "momentum.db")

	sqlxDB, err := Init(DriverSQLite, conn)
	require.NoError(t, err)
	t.Cleanup(func() { Close(sqlxDB) })

	require.NoError(t, RunMigrations(ctx, sqlxDB.DB, DriverSQLite))

	statuses, err := Status(ctx, sqlxDB.DB, DriverSQLite)
	require.NoError(t, err)
	require.NotEmpty(t, statuses)
	for _, s := range statuses {
		assert.True(t, s.Applied, s.Path)
	}

	var tables int
	require.NoError(t, sqlxDB.Get(&tables,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('goals', 'actions', 'posts', 'app_settings')`))
	assert.Equal(t, 4, tables)

	require.NoError(t, MigrateDown(ctx, sqlxDB.DB, DriverSQLite))
	require.NoError(t, sqlxDB.Get(&tables,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'goals'`))
	assert.Equal(t, 0, tables)
}

func TestUnknownDriverHasNoDialect(t *testing.T) {
	_, err := newProvider(nil, "mysql")
	assert.ErrorContains(t, err, "mysql")
}

func TestEnsureDataDirSkipsMemory(t *testing.T) {
	assert.NoError(t, ensureDataDir(":memory:"))
	assert.NoError(t, ensureDataDir("file::memory:?cache=shared"))
}
