// Package fileset provides glob-addressed batch file operations for
// scripts and build tooling.
//
// A Set couples a glob pattern with the ordered list of paths it matched
// at construction time. Batch operations walk that list sequentially;
// single-target operations treat the pattern itself as a literal path.
//
// This package is organized into focused files:
//   - fileset: Set construction and batch operations (delete, move, copy, mkdir)
//   - resolve: destination resolution for move and copy
//   - content: whole-file text operations (read, write, append, alter)
//   - formats: structured formats (JSON, YAML, TOML)
//   - metadata: stat, sizing, type detection, checksums
//   - archive: ZIP and TAR packing with compression, extraction
//
// All batch operations:
//   - Run synchronously in list order
//   - Stop at the first failure and return the platform error unwrapped
//   - Leave already-completed entries in their new state
//
// Example Usage:
//
//	logs, err := fileset.Files("build/**/*.log")
//	if err != nil {
//		return err
//	}
//	n, err := logs.Delete()
package fileset
