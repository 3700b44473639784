package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/app"
)

func TestEnsureDBDirCreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "tracker.db")
	require.NoError(t, app.EnsureDBDir(path))
	require.NoError(t, app.EnsureDBDir(path))

	st, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}

func TestDefaultDBPath(t *testing.T) {
	path, err := app.DefaultDBPath()
	if err != nil {
		t.Skipf("no user config dir on this host: %v", err)
	}
	assert.Equal(t, "tracker.db", filepath.Base(path))
	assert.Equal(t, "tracker", filepath.Base(filepath.Dir(path)))
}
