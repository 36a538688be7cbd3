// Package extstat tallies file counts and sizes per file extension.
//
// It walks a directory tree sequentially, subdirectories before files,
// optionally deletes files whose extension is in a remove set, and returns
// the per-extension records in the order they were first encountered.
package extstat
