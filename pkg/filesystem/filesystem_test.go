package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	dir := filepath.Join(t.TempDir(), "snapshots", "Public")

	require.NoError(t, fs.MkdirAll(dir, 0755))

	isDir, err := afero.DirExists(fs, dir)
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestForRun(t *testing.T) {
	t.Run("real run is writable", func(t *testing.T) {
		base := afero.NewMemMapFs()
		fs := ForRun(base, false)

		assert.NoError(t, fs.MkdirAll("/srv/snapshots/Public", 0755))
	})

	t.Run("dry run rejects mutations", func(t *testing.T) {
		base := afero.NewMemMapFs()
		require.NoError(t, base.MkdirAll("/srv/snapshots/Public/@GMT-2024.01.01-00.00.00", 0755))
		fs := ForRun(base, true)

		assert.Error(t, fs.MkdirAll("/srv/snapshots/Other", 0755))
		assert.Error(t, fs.RemoveAll("/srv/snapshots/Public"))

		entries, err := afero.ReadDir(fs, "/srv/snapshots/Public")
		require.NoError(t, err)
		assert.Len(t, entries, 1, "reads still work")
	})

	t.Run("nil base defaults to the OS", func(t *testing.T) {
		fs := ForRun(nil, false)
		_, ok := fs.(*afero.OsFs)
		assert.True(t, ok)
	})
}
