package matcher

import (
	"os"
	"testing"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/testutil"
	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidSource(t *testing.T) {
	m, err := New(testutil.NewTestFS(), "/")
	assert.Nil(t, m)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSourcePath))
}

func TestFilesWithMatches(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.CreateFiles("photos", "file-2.txt", "file-1.txt", "file-1.txt.bak", "other.txt", "file-.txt")
	env.CreateDir("photos/file-dir.txt")

	m, err := New(env.FS, env.Path("photos")+"/file-*.txt")
	require.NoError(t, err)

	files, err := m.FilesWithMatches()
	require.NoError(t, err)

	assert.Equal(t, []types.FileWithMatches{
		{Path: env.Path("photos/file-.txt"), Captures: []string{}},
		{Path: env.Path("photos/file-1.txt"), Captures: []string{"1"}},
		{Path: env.Path("photos/file-2.txt"), Captures: []string{"2"}},
	}, files)
}

func TestFilesWithMatches_KeepsUserDirectorySpelling(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.CreateFiles("a", "x1.txt")

	m, err := New(env.FS, env.Root+"//a/./x*.txt")
	require.NoError(t, err)

	files, err := m.FilesWithMatches()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, env.Root+"//a/./x1.txt", files[0].Path)
}

func TestFilesWithMatches_NoFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.CreateFiles("dir", "readme.md")

	m, err := New(env.FS, env.Path("dir")+"/file-*.txt")
	require.NoError(t, err)

	files, err := m.FilesWithMatches()
	assert.Nil(t, files)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoFilesForPattern))
	assert.Equal(t, "Files for pattern 'file-*.txt' not found", errors.UserMessage(err))
}

func TestFilesWithMatches_MissingDirectory(t *testing.T) {
	fs := testutil.NewTestFS()

	m, err := New(fs, "missing/*.txt")
	require.NoError(t, err)

	_, err = m.FilesWithMatches()
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirectoryNotFound))
	assert.Equal(t, "Directory `missing` not found", errors.UserMessage(err))
}

func TestFilesWithMatches_CurrentDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.CreateFiles("", "a-1.log", "b-1.log")
	chdir(t, env.Root)

	m, err := New(env.FS, "a-*.log")
	require.NoError(t, err)

	files, err := m.FilesWithMatches()
	require.NoError(t, err)
	assert.Equal(t, []types.FileWithMatches{{Path: "a-1.log", Captures: []string{"1"}}}, files)
}

func TestFilesWithMatches_SkipsSymlinks(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	target := env.CreateFile("real-1.txt", "x")
	require.NoError(t, os.Symlink(target, env.Path("link-1.txt")))

	m, err := New(env.FS, env.Root+"/*-1.txt")
	require.NoError(t, err)

	files, err := m.FilesWithMatches()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, env.Path("real-1.txt"), files[0].Path)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
