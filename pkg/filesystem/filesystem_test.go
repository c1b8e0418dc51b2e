package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	err := fs.WriteFile(testFile, testContent, 0644)
	require.NoError(t, err)

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	err = fs.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755)
	require.NoError(t, err)

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // sub/ and test.txt

	renamed := filepath.Join(tmpDir, "renamed.txt")
	err = fs.Rename(testFile, renamed)
	require.NoError(t, err)
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	info, err = fs.Lstat(renamed)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestOSLstatDoesNotFollowLinks(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target.txt")
	link := filepath.Join(tmpDir, "link.txt")

	require.NoError(t, fs.WriteFile(target, []byte("x"), 0644))
	require.NoError(t, os.Symlink(target, link))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	for _, entry := range entries {
		if entry.Name() == "link.txt" {
			assert.False(t, entry.Type().IsRegular())
		}
	}
}

func TestAferoFS(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("dir", 0755))
	require.NoError(t, fs.WriteFile("dir/file-1.txt", []byte("1"), 0644))
	require.NoError(t, fs.WriteFile("dir/file-2.txt", []byte("2"), 0644))

	entries, err := fs.ReadDir("dir")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "file-1.txt", entries[0].Name())
	assert.True(t, entries[0].Type().IsRegular())

	require.NoError(t, fs.Rename("dir/file-1.txt", "dir/1-file.txt"))
	_, err = fs.Stat("dir/file-1.txt")
	assert.True(t, os.IsNotExist(err))

	info, err := fs.Lstat("dir/1-file.txt")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = fs.ReadDir("missing")
	assert.Error(t, err)
}
