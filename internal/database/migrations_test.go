package database

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestEmbeddedMigrationsApplyOnce(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	m := NewMigrationManager(conn, zaptest.NewLogger(t))
	require.NoError(t, m.RunMigrations())
	require.NoError(t, m.RunMigrations())

	applied, err := m.GetAppliedMigrations()
	require.NoError(t, err)
	assert.True(t, applied[1])

	for _, table := range []string{"solutions", "categories", "products"} {
		var n int
		require.NoError(t, conn.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&n))
		assert.Equal(t, 1, n, table)
	}
}

func TestLoadMigrationsOrdersAndSkips(t *testing.T) {
	source := fstest.MapFS{
		"010_later.sql": {Data: []byte("CREATE TABLE later (id INTEGER);")},
		"002_first.sql": {Data: []byte("CREATE TABLE first (id INTEGER);")},
		"notes.txt":     {Data: []byte("ignored")},
		"bad_name.sql":  {Data: []byte("SELECT 1;")},
	}

	m := NewMigrationManagerFS(nil, source, nil)
	migrations, err := m.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, 2, migrations[0].Version)
	assert.Equal(t, "002_first", migrations[0].Name)
	assert.Equal(t, 10, migrations[1].Version)
}

func TestFailedMigrationIsNotRecorded(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	source := fstest.MapFS{
		"001_broken.sql": {Data: []byte("CREATE TABLE broken (;")},
	}
	m := NewMigrationManagerFS(conn, source, nil)
	require.Error(t, m.RunMigrations())

	applied, err := m.GetAppliedMigrations()
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	conn, err := Open(path)
	require.NoError(t, err)
	defer conn.Close()

	var mode string
	require.NoError(t, conn.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}
