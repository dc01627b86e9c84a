package fsutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/chainharness/internal/fsutil"
	"github.com/vk/chainharness/internal/testutil"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	b := testutil.WriteFile(t, dir, "b.hcl", "")
	a := testutil.WriteFile(t, dir, "nested/a.hcl", "")
	testutil.WriteFile(t, dir, "readme.md", "")

	files, err := fsutil.FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{b, a}, files, "results sorted lexically by full path")
}

func TestFindFilesByExtensionSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "session.hcl", "")

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{path}, files)
}

func TestFindFilesByExtensionMissingRoot(t *testing.T) {
	_, err := fsutil.FindFilesByExtension("/does/not/exist", ".hcl")
	require.Error(t, err)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "present.toml", "")

	require.True(t, fsutil.FileExists(path))
	require.False(t, fsutil.FileExists(path+".absent"))
	require.False(t, fsutil.FileExists(dir), "directories are not override files")
}
