// Package filesystem provides filesystem implementations for mmv.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used by the command, and an afero backed
// one used by tests.
package filesystem
