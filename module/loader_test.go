package module_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlang/fern/module"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoaderLoadSamePathTwiceReturnsSamePointer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.fn", "let x = 1\n")

	l := module.NewLoader()

	m1, err := l.Load(path)
	require.NoError(t, err)

	m2, err := l.Load(path)
	require.NoError(t, err)

	assert.Same(t, m1, m2, "Load() called twice on the same path should return the same *Module")
}

func TestLoaderLoadMissingFile(t *testing.T) {
	t.Parallel()

	l := module.NewLoader()

	_, err := l.Load(filepath.Join(t.TempDir(), "missing.fn"))
	require.Error(t, err)
	assert.ErrorIs(t, err, module.ErrModuleNotFound)
}

func TestLoaderResolvesExtensionlessPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "user.fn", "let x = 1\n")

	l := module.NewLoader()

	m, err := l.Load(filepath.Join(dir, "user"))
	require.NoError(t, err)
	assert.Equal(t, "user.fn", filepath.Base(m.Path))
}

func TestLoaderDottedImportExpandsToDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	root := writeFile(t, dir, "root.fn", "import app.db.user\n")
	writeFile(t, dir, filepath.Join("app", "db", "user.fn"), "let connected = true\n")

	l := module.NewLoader()

	rootMod, err := l.Load(root)
	require.NoError(t, err)

	imported, err := l.LoadFrom("app.db.user", rootMod)
	require.NoError(t, err)
	assert.Equal(t, "user.fn", filepath.Base(imported.Path))
}

func TestLoaderGraphDetectsTwoFileImportCycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.fn", "import b\n")
	writeFile(t, dir, "b.fn", "import a\n")

	l := module.NewLoader()

	_, err := l.LoadGraph(filepath.Join(dir, "a.fn"))
	require.Error(t, err)
	assert.ErrorIs(t, err, module.ErrImportCycle)

	var loadErr *module.LoadError

	require.ErrorAs(t, err, &loadErr)
	assert.NotEmpty(t, loadErr.ImportedFrom, "LoadError.ImportedFrom should name the importing module")
}

func TestLoaderGraphDiamondImportIsNotACycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.fn", "import b\nimport c\n")
	writeFile(t, dir, "b.fn", "import d\n")
	writeFile(t, dir, "c.fn", "import d\n")
	writeFile(t, dir, "d.fn", "let shared = 1\n")

	l := module.NewLoader()

	_, err := l.LoadGraph(filepath.Join(dir, "a.fn"))
	require.NoError(t, err)
	assert.Len(t, l.Cached(), 4)
}

func TestLoaderClearResetsCacheAndResolvingState(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.fn", "let x = 1\n")

	l := module.NewLoader()

	_, err := l.Load(path)
	require.NoError(t, err)

	l.Clear()
	assert.Empty(t, l.Cached())
}
