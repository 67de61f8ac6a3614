package fsio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// TestExists tests entry detection for files, directories, and absences
func TestExists(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "f.txt"), "x")

	assert.True(t, Exists(filepath.Join(root, "f.txt")))
	assert.True(t, Exists(root))
	assert.False(t, Exists(filepath.Join(root, "missing")))
}

// TestIsFileIsDir tests kind predicates
func TestIsFileIsDir(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "f.txt"), "x")

	ok, err := IsFile(filepath.Join(root, "f.txt"))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsFile(root)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsDir(root)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = IsDir(filepath.Join(root, "missing"))
	assert.Error(t, err)
}

// TestEnsureDir tests nested directory creation and idempotence
func TestEnsureDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "a", "b", "c")

	assert.NoError(t, EnsureDir(dir))
	assert.True(t, Exists(dir))
	assert.NoError(t, EnsureDir(dir))
}

// TestRemove tests recursive removal and missing-path tolerance
func TestRemove(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "tree", "sub", "f.txt"), "x")

	assert.NoError(t, Remove(filepath.Join(root, "tree")))
	assert.False(t, Exists(filepath.Join(root, "tree")))
	assert.NoError(t, Remove(filepath.Join(root, "never-existed")))
}

// TestCopyFile tests copying a single file into a missing parent chain
func TestCopyFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src.txt")
	dst := filepath.Join(root, "deep", "nested", "dst.txt")
	writeFixture(t, src, "payload")

	assert.NoError(t, Copy(src, dst))

	data, err := os.ReadFile(dst)
	assert.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.True(t, Exists(src))
}

// TestCopyTree tests recursive directory copies
func TestCopyTree(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "tree", "a.txt"), "a")
	writeFixture(t, filepath.Join(root, "tree", "sub", "b.txt"), "b")

	assert.NoError(t, Copy(filepath.Join(root, "tree"), filepath.Join(root, "clone")))

	data, err := os.ReadFile(filepath.Join(root, "clone", "sub", "b.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

// TestMoveFile tests the rename fast path
func TestMoveFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src.txt")
	dst := filepath.Join(root, "moved", "dst.txt")
	writeFixture(t, src, "payload")

	assert.NoError(t, Move(src, dst))
	assert.False(t, Exists(src))

	data, err := os.ReadFile(dst)
	assert.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

// TestMoveTree tests moving a whole directory
func TestMoveTree(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "tree", "sub", "f.txt"), "x")

	assert.NoError(t, Move(filepath.Join(root, "tree"), filepath.Join(root, "relocated")))
	assert.False(t, Exists(filepath.Join(root, "tree")))
	assert.True(t, Exists(filepath.Join(root, "relocated", "sub", "f.txt")))
}

// TestMoveMissingSource tests that moving an absent path surfaces the error
func TestMoveMissingSource(t *testing.T) {
	root := t.TempDir()

	err := Move(filepath.Join(root, "missing"), filepath.Join(root, "dst"))
	assert.Error(t, err)
}

// TestWriteFile tests truncation and parent creation
func TestWriteFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "deep", "f.txt")

	assert.NoError(t, WriteFile(path, []byte("first")))
	assert.NoError(t, WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

// TestAppendFile tests append-or-create behavior
func TestAppendFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "log", "out.txt")

	assert.NoError(t, AppendFile(path, []byte("one")))
	assert.NoError(t, AppendFile(path, []byte("two")))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "onetwo", string(data))
}

// TestStagePath tests that staging names stay hidden and unique
func TestStagePath(t *testing.T) {
	dst := filepath.Join("some", "dir", "file.txt")

	a := stagePath(dst)
	b := stagePath(dst)

	assert.NotEqual(t, a, b)
	assert.Equal(t, filepath.Join("some", "dir"), filepath.Dir(a))
	assert.True(t, strings.HasPrefix(filepath.Base(a), "."))
	assert.True(t, strings.HasSuffix(a, ".tmp"))
}
