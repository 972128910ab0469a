package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sellaris/chat-frontend-journey/internal/database"
)

func TestInitDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	db, err := database.InitDB(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// Parent directories are created and the schema is migrated.
	_, err = db.Exec("INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'v', CURRENT_TIMESTAMP)")
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow("SELECT value FROM kv_store WHERE key = 'k'").Scan(&value))
	assert.Equal(t, "v", value)

	// WAL journaling is enabled for concurrent readers.
	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestInitDB_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := database.InitDB(path)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'v', CURRENT_TIMESTAMP)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// A second open against an already-migrated database is a no-op, not
	// an error, and the data survives.
	db, err = database.InitDB(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM kv_store").Scan(&count))
	assert.Equal(t, 1, count)
}
