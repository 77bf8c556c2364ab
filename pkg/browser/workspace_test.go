package browser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWorkDir(t *testing.T) {
	dir := DefaultWorkDir()

	assert.Equal(t, filepath.Join(os.TempDir(), "foxshot"), dir)
}

func TestEnsureWorkDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureWorkDir(dir))
	assert.DirExists(t, dir)

	// already existing is fine
	require.NoError(t, EnsureWorkDir(dir))
}

func TestIsolatedWorkDir(t *testing.T) {
	first, err := IsolatedWorkDir()
	require.NoError(t, err)
	second, err := IsolatedWorkDir()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.DirExists(t, first)
	assert.DirExists(t, second)
	assert.True(t, strings.HasPrefix(first, DefaultWorkDir()))
}

func TestStageHTML(t *testing.T) {
	dir := t.TempDir()

	path, err := StageHTML(dir, "<h1>Hello</h1>", "h1 { color: red; }")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, ".html"))
	assert.Contains(t, string(data), "<h1>Hello</h1>")
	assert.Contains(t, string(data), "<style>h1 { color: red; }</style>")
}

func TestMoveFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.png")

	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0o644))

	require.NoError(t, moveFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestMoveFileMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := moveFile(filepath.Join(dir, "missing.png"), filepath.Join(dir, "dst.png"))

	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
