package filer_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/hellogen/internal/hellogen/filer"
)

func write(t *testing.T, f filer.Filer, name, content string) error {
	t.Helper()

	w, err := f.Create(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	return w.Close()
}

func TestDirPath(t *testing.T) {
	d := filer.NewDir("out")

	path, err := d.Path("generated.GeneratedClass")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "generated", "hellogen_gen.go"), path)

	path, err = d.Path("a.b.C")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "a", "b", "hellogen_gen.go"), path)
}

func TestDirPathFileName(t *testing.T) {
	d := &filer.Dir{Root: "out", FileName: "zz_hello.go"}

	path, err := d.Path("generated.GeneratedClass")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "generated", "zz_hello.go"), path)
}

func TestDirPathInvalid(t *testing.T) {
	d := filer.NewDir("out")
	for _, name := range []string{"", "NoPackage", ".Type", "pkg."} {
		_, err := d.Path(name)
		assert.Error(t, err, name)
	}
}

func TestDirCreate(t *testing.T) {
	root := t.TempDir()
	d := filer.NewDir(root)

	require.NoError(t, write(t, d, "generated.GeneratedClass", "package generated\n"))

	content, err := os.ReadFile(filepath.Join(root, "generated", "hellogen_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package generated\n", string(content))
}

func TestDirCreateTwice(t *testing.T) {
	root := t.TempDir()
	d := filer.NewDir(root)

	require.NoError(t, write(t, d, "generated.GeneratedClass", "first"))

	err := write(t, d, "generated.GeneratedClass", "second")
	require.ErrorIs(t, err, filer.ErrExists)

	var writeErr *filer.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "generated.GeneratedClass", writeErr.Name)

	content, err := os.ReadFile(filepath.Join(root, "generated", "hellogen_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestDirOverwritePreviousBuild(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, write(t, filer.NewDir(root), "generated.GeneratedClass", "old"))
	require.NoError(t, write(t, filer.NewDir(root), "generated.GeneratedClass", "new"))

	content, err := os.ReadFile(filepath.Join(root, "generated", "hellogen_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestDirReplaceOnClose(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "generated", "hellogen_gen.go")

	require.NoError(t, write(t, filer.NewDir(root), "generated.GeneratedClass", "old"))

	w, err := filer.NewDir(root).Create("generated.GeneratedClass")
	require.NoError(t, err)
	_, err = io.WriteString(w, "new")
	require.NoError(t, err)

	// Until the writer is closed, the earlier artifact is intact.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))

	require.NoError(t, w.Close())

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	ents, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, ents, 1, "no temporary file must be left")
	assert.Equal(t, "hellogen_gen.go", ents[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestDirNoClobber(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, write(t, filer.NewDir(root), "generated.GeneratedClass", "old"))

	d := filer.NewDir(root)
	d.NoClobber = true
	err := write(t, d, "generated.GeneratedClass", "new")
	require.ErrorIs(t, err, filer.ErrExists)

	content, err := os.ReadFile(filepath.Join(root, "generated", "hellogen_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
}

func TestMem(t *testing.T) {
	var m filer.Mem

	require.NoError(t, write(t, &m, "generated.GeneratedClass", "hello"))
	err := write(t, &m, "generated.GeneratedClass", "again")
	require.ErrorIs(t, err, filer.ErrExists)

	content, ok := m.Get("generated.GeneratedClass")
	require.True(t, ok)
	assert.Equal(t, "hello", string(content))
	assert.Equal(t, 1, m.Len())

	_, ok = m.Get("other.Type")
	assert.False(t, ok)
}

func TestMemInvalidName(t *testing.T) {
	var m filer.Mem
	_, err := m.Create("NoPackage")

	var writeErr *filer.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, 0, m.Len())
}
