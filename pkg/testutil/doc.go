// Package testutil provides utilities for testing mmv components.
//
// Key components:
//   - NewTestFS: in-memory filesystem backed by afero
//   - TestEnvironment: a directory tree to rename in, either in memory or in
//     a real temp directory, with helpers to populate and inspect it
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Tests that depend on symlinks or permissions need EnvIsolated
//   - All test data should be defined inline, not in external files
package testutil
