// Package scaffold materializes a predefined file tree on disk.
//
// A run has two phases that execute in order:
//
//  1. Provision: every directory of the Layout is created with MkdirAll.
//     Creation is idempotent and recursive. The first error aborts the run.
//  2. Materialize: every file of the Layout is written concurrently,
//     byte-for-byte, replacing any existing file. Per-file outcomes are
//     collected into a Report.
//
// All filesystem access goes through an afero.Fs so tests can run against an
// in-memory filesystem.
package scaffold
