// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Build isolated directory trees for rename tests

package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/mmv/pkg/filesystem"
	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a directory to rename files in
type TestEnvironment struct {
	// Root is the directory all helper paths are relative to.
	// It is "/work" in memory and a fresh temp directory otherwise.
	Root string
	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	default:
		env.Root = "/work"
		env.FS = NewTestFS()
		require.NoError(t, env.FS.MkdirAll(env.Root, 0755))
	}
	return env
}

// Path joins rel onto the environment root
func (e *TestEnvironment) Path(rel string) string {
	return filepath.Join(e.Root, rel)
}

// CreateDir creates rel and its parents
func (e *TestEnvironment) CreateDir(rel string) string {
	e.t.Helper()
	p := e.Path(rel)
	require.NoError(e.t, e.FS.MkdirAll(p, 0755))
	return p
}

// CreateFile writes content to rel, creating parent directories
func (e *TestEnvironment) CreateFile(rel, content string) string {
	e.t.Helper()
	p := e.Path(rel)
	require.NoError(e.t, e.FS.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, e.FS.WriteFile(p, []byte(content), 0644))
	return p
}

// CreateFiles creates every name in dir with its own name as content
func (e *TestEnvironment) CreateFiles(dir string, names ...string) {
	e.t.Helper()
	for _, name := range names {
		e.CreateFile(filepath.Join(dir, name), name)
	}
}

// Exists reports whether rel exists
func (e *TestEnvironment) Exists(rel string) bool {
	_, err := e.FS.Lstat(e.Path(rel))
	return err == nil
}

// ListFiles returns the sorted names of the entries in rel
func (e *TestEnvironment) ListFiles(rel string) []string {
	e.t.Helper()
	entries, err := e.FS.ReadDir(e.Path(rel))
	require.NoError(e.t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// AssertFiles fails the test unless rel holds exactly the given names
func (e *TestEnvironment) AssertFiles(rel string, expected ...string) {
	e.t.Helper()
	sorted := append(make([]string, 0, len(expected)), expected...)
	sort.Strings(sorted)
	require.Equal(e.t, sorted, e.ListFiles(rel))
}
