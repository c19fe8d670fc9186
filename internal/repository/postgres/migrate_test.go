package postgres

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, r io.ReadCloser) string {
	t.Helper()
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(body)
}

func TestMigrationSource(t *testing.T) {
	src, err := migrationSource()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, _, err := src.ReadUp(first)
	require.NoError(t, err)
	assert.Contains(t, readMigration(t, up), "CREATE TABLE IF NOT EXISTS words")

	down, _, err := src.ReadDown(first)
	require.NoError(t, err)
	assert.Contains(t, readMigration(t, down), "DROP TABLE IF EXISTS words")

	// Only one migration so far
	_, err = src.Next(first)
	assert.Error(t, err)
}
