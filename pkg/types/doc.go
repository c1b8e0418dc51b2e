// Package types defines the core types and interfaces shared by the mmv
// packages: the FS abstraction used for every filesystem access, the scan
// result of a source pattern, and the pairs and results of a move batch.
package types
