package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Run("walks directories recursively", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), nil, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.hcl"), nil, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), nil, 0o644))

		files, err := FindFilesByExtension(dir, ".hcl")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("accepts a single matching file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.hcl")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		files, err := FindFilesByExtension(path, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("single non-matching file yields nothing", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		files, err := FindFilesByExtension(path, ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing path is an error", func(t *testing.T) {
		_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".hcl")
		assert.Error(t, err)
	})

	t.Run("empty extension panics", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = FindFilesByExtension(t.TempDir(), "")
		})
	})
}

func TestExistingDirs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "src")
	require.NoError(t, os.Mkdir(sub, 0o755))
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	got := ExistingDirs([]string{
		sub,
		filepath.Join(dir, "missing"),
		file, // regular file, not a directory
	})
	assert.Equal(t, []string{sub}, got)

	assert.Nil(t, ExistingDirs(nil))
}
