package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InMemory(t *testing.T) {
	st, err := Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	assert.NotNil(t, st.DB())
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// Reopening an existing database reapplies schema without error.
	st, err = Open(path)
	require.NoError(t, err)
	assert.NoError(t, st.Close())
}

func TestClose_Idempotent(t *testing.T) {
	st, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.Close())
	// Closing a closed sql.DB is a no-op.
	assert.NoError(t, st.Close())
}
