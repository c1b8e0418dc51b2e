// Package operations turns scan results into moves and performs them.
//
// BuildPairs interpolates the target template once per matched file.
// The Executor then checks each target, renames, and reports every move
// as it happens. The first failure stops the batch and moves already made
// stay made; with Preflight set every target is checked before the first
// rename, which narrows that window without closing it.
package operations
