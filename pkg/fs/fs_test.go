//go:build unit

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()

	tmpFile := filepath.Join(t.TempDir(), "exists.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

	exists, err := fs.Exists(tmpFile)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(t.TempDir(), "missing.txt"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_ReadFile(t *testing.T) {
	fs := NewFS()

	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0644))

	data, err := fs.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	_, err = fs.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestFS_ReadDir(t *testing.T) {
	fs := NewFS()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.java"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	entries, err := fs.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()

	file := filepath.Join(t.TempDir(), "out.java")
	err := fs.WriteFileAtomic(file, []byte("class A {}\n"), 0644)
	require.NoError(t, err)

	data, err := os.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "class A {}\n", string(data))

	// Overwrite keeps only the new content
	err = fs.WriteFileAtomic(file, []byte("class B {}\n"), 0644)
	require.NoError(t, err)

	data, err = os.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "class B {}\n", string(data))
}

func TestFS_WriteFileAtomic_CreatesParentDirs(t *testing.T) {
	fs := NewFS()

	file := filepath.Join(t.TempDir(), "nested", "dir", "out.java")
	err := fs.WriteFileAtomic(file, []byte("x"), 0644)
	require.NoError(t, err)

	exists, err := fs.Exists(file)
	assert.NoError(t, err)
	assert.True(t, exists)
}
