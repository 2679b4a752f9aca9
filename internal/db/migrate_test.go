package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"schedule_items", "dependencies", "settings"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}

	// The settings row is seeded with defaults.
	var bufferHours float64
	var granularity string
	err = database.QueryRow(`SELECT buffer_hours, granularity FROM settings WHERE id = 1`).
		Scan(&bufferHours, &granularity)
	require.NoError(t, err)
	assert.Equal(t, 4.0, bufferHours)
	assert.Equal(t, "week", granularity)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated; running again must not error or duplicate
	// the settings row.
	require.NoError(t, Migrate(database))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestOpenDB_EnforcesForeignKeys(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO dependencies (from_item_id, to_item_id, kind) VALUES ('ghost-a', 'ghost-b', 'FS')`)
	assert.Error(t, err, "dependency rows must reference existing items")
}
