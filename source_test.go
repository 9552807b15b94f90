package gorosidl

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDirListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.msg", "int32 x\n")
	writeFile(t, dir, "a.msg", "int32 x\n")
	writeFile(t, dir, "ignore.srv", "---\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.msg"), 0o755))
	writeFile(t, filepath.Join(dir, "nested.msg"), "c.msg", "int32 x\n")

	src, err := Dir(dir)
	require.NoError(t, err)

	files, err := src.ListFiles(ExtMessage)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"a.msg", "b.msg"}, names,
		"lexicographic order, no recursion, directories excluded")
}

func TestDirRejectsNonDirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plain.msg", "")

	_, err := Dir(path)
	assert.Error(t, err)

	_, err = Dir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestDirSkipsSymlinkedDirectories(t *testing.T) {
	dir := t.TempDir()
	target := t.TempDir()
	writeFile(t, dir, "real.msg", "int32 x\n")
	if err := os.Symlink(target, filepath.Join(dir, "linked.msg")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	src, err := Dir(dir)
	require.NoError(t, err)

	files, err := src.ListFiles(ExtMessage)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "real.msg", filepath.Base(files[0]))
}

func TestDirKeepsSymlinkedFiles(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, t.TempDir(), "target.msg", "int32 x\n")
	if err := os.Symlink(target, filepath.Join(dir, "linked.msg")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	src, err := Dir(dir)
	require.NoError(t, err)

	files, err := src.ListFiles(ExtMessage)
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"Pose.msg":  {Data: []byte("int32 x\n")},
		"Other.srv": {Data: []byte("---\n")},
	}
	src := FS("memory", fsys)

	files, err := src.ListFiles(ExtMessage)
	require.NoError(t, err)
	require.Equal(t, []string{"Pose.msg"}, files)

	r, err := src.Open("Pose.msg")
	require.NoError(t, err)
	require.NoError(t, r.Close())

	_, err = src.Open("Missing.msg")
	assert.Error(t, err)
}

func TestMultiSource(t *testing.T) {
	a := FS("a", fstest.MapFS{"A.msg": {Data: []byte("int32 x\n")}})
	b := FS("b", fstest.MapFS{"B.msg": {Data: []byte("int32 y\n")}})

	src := Multi(a, b)
	files, err := src.ListFiles(ExtMessage)
	require.NoError(t, err)
	assert.Equal(t, []string{"A.msg", "B.msg"}, files)

	r, err := src.Open("B.msg")
	require.NoError(t, err)
	require.NoError(t, r.Close())
}

func TestStemFromPath(t *testing.T) {
	assert.Equal(t, "Pose", stemFromPath("/share/demo/msg/Pose.msg"))
	assert.Equal(t, "Add", stemFromPath("Add.srv"))
	assert.Equal(t, "a.b", stemFromPath("a.b.msg"))
}
