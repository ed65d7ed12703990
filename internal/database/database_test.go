package database

import (
	"path/filepath"
	"testing"

	"study-assistant/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	db, err := NewSQLXDB(config.DBConfig{Driver: "sqlite3", DSN: filepath.Join(t.TempDir(), "nested", "study.db")})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db.DB))
	// Second run finds nothing to do.
	require.NoError(t, RunMigrations(db.DB))

	var tables []string
	require.NoError(t, db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'schema_%' ORDER BY name`))
	assert.Equal(t, []string{"chunks", "quiz_records", "subject_files", "subjects"}, tables)

	require.NoError(t, RollbackMigrations(db.DB, 1))
	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE name = 'quiz_records'`))
	assert.Equal(t, 0, count)
}

func TestNewSQLXDB_UnsupportedDriver(t *testing.T) {
	_, err := NewSQLXDB(config.DBConfig{Driver: "oracle", DSN: "x"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSqlitePath(t *testing.T) {
	assert.Equal(t, "./data/study.db", sqlitePath("./data/study.db"))
	assert.Equal(t, "data/study.db", sqlitePath("file:data/study.db?cache=shared"))
	assert.Equal(t, "", sqlitePath(":memory:"))
	assert.Equal(t, "", sqlitePath("file:test?mode=memory"))
}
