// Package fsio implements the file I/O engine behind fileset's batch
// operations: recursive copy, move with cross-device fallback, recursive
// removal, and parent-creating writes.
//
// Every mutation that targets a path ensures the destination's parent
// chain exists first, so callers never need a separate mkdir step.
// Errors are returned exactly as the platform produced them.
package fsio

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	cp "github.com/otiai10/copy"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Exists reports whether any filesystem entry exists at path. Broken
// symlinks count as existing.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsFile reports whether path names a regular file.
func IsFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// IsDir reports whether path names a directory.
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// EnsureDir creates dir and any missing ancestors. Existing directories
// are left untouched.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, dirPerm)
}

// Remove deletes path recursively. Missing paths are not an error.
func Remove(path string) error {
	return os.RemoveAll(path)
}

// Copy clones src to dst, recursing into directories and creating any
// missing ancestors of dst. Symlinks are copied as links, not followed.
func Copy(src, dst string) error {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	return cp.Copy(src, dst, cp.Options{OnSymlink: func(string) cp.SymlinkAction { return cp.Shallow }})
}

// Move relocates src to dst, creating any missing ancestors of dst.
// Rename is attempted first; when src and dst sit on different devices
// the move degrades to a copy staged beside dst, a swap into place, and
// a removal of src.
func Move(src, dst string) error {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	err := os.Rename(src, dst)
	if err == nil || !isCrossDevice(err) {
		return err
	}

	stage := stagePath(dst)
	if err := Copy(src, stage); err != nil {
		os.RemoveAll(stage)
		return err
	}
	if err := os.Rename(stage, dst); err != nil {
		os.RemoveAll(stage)
		return err
	}
	return os.RemoveAll(src)
}

// WriteFile writes data to path, truncating any previous content and
// creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, filePerm)
}

// AppendFile appends data to path, creating the file and any missing
// parent directories when absent.
func AppendFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// isCrossDevice reports whether err is a rename rejected for crossing
// filesystem boundaries.
func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV)
}

// stagePath returns a unique hidden sibling of dst used to stage
// cross-device moves, so a partial copy never masquerades as the result.
func stagePath(dst string) string {
	return filepath.Join(filepath.Dir(dst), "."+filepath.Base(dst)+"."+uuid.NewString()+".tmp")
}
