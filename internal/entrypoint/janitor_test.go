package entrypoint

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepUploads(t *testing.T) {
	t.Run("removes only files older than the cutoff", func(t *testing.T) {
		dir := t.TempDir()

		stale := filepath.Join(dir, "stale.txt")
		require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
		old := time.Now().Add(-2 * time.Hour)
		require.NoError(t, os.Chtimes(stale, old, old))

		fresh := filepath.Join(dir, "fresh.txt")
		require.NoError(t, os.WriteFile(fresh, []byte("new"), 0o644))

		removed := sweepUploads(dir, time.Hour)
		assert.Equal(t, 1, removed)

		assert.NoFileExists(t, stale)
		assert.FileExists(t, fresh)
	})

	t.Run("skips directories", func(t *testing.T) {
		dir := t.TempDir()
		nested := filepath.Join(dir, "nested")
		require.NoError(t, os.Mkdir(nested, 0o755))
		old := time.Now().Add(-2 * time.Hour)
		require.NoError(t, os.Chtimes(nested, old, old))

		removed := sweepUploads(dir, time.Hour)
		assert.Zero(t, removed)
		assert.DirExists(t, nested)
	})

	t.Run("missing directory is not an error", func(t *testing.T) {
		removed := sweepUploads(filepath.Join(t.TempDir(), "missing"), time.Hour)
		assert.Zero(t, removed)
	})
}
