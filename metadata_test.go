package fileset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeglade/fileset"
)

// TestStat tests per-entry metadata reporting
func TestStat(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.txt"), []byte("12345"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))

	set, err := fileset.All(filepath.Join(root, "*"))
	require.NoError(t, err)

	infos, err := set.Stat()
	assert.NoError(t, err)
	require.Len(t, infos, 2)

	byName := map[string]fileset.Info{}
	for _, info := range infos {
		byName[info.Name] = info
	}

	file := byName["f.txt"]
	assert.Equal(t, int64(5), file.Size)
	assert.False(t, file.IsDir)
	assert.Equal(t, ".txt", file.Extension)
	assert.False(t, file.Modified.IsZero())

	dir := byName["sub"]
	assert.True(t, dir.IsDir)
	assert.Empty(t, dir.Extension)
	assert.True(t, strings.HasPrefix(dir.Mode, "d"))
}

// TestStatMissingEntry tests that a vanished path surfaces the stat error
func TestStatMissingEntry(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	set, err := fileset.Files(filepath.Join(root, "*.txt"))
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	_, err = set.Stat()
	assert.Error(t, err)
}

// TestTotalSizeFiles tests summing plain files
func TestTotalSizeFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.bin"), make([]byte, 100), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.bin"), make([]byte, 250), 0o644))

	set, err := fileset.Files(filepath.Join(root, "*.bin"))
	require.NoError(t, err)

	total, err := set.TotalSize()
	assert.NoError(t, err)
	assert.Equal(t, int64(350), total)
}

// TestTotalSizeRecursesDirectories tests that directory entries count their whole tree
func TestTotalSizeRecursesDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tree", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "tree", "a.bin"), make([]byte, 10), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "tree", "sub", "b.bin"), make([]byte, 20), 0o644))

	set, err := fileset.Dirs(filepath.Join(root, "tree"))
	require.NoError(t, err)

	total, err := set.TotalSize()
	assert.NoError(t, err)
	assert.Equal(t, int64(30), total)
}

// TestDetectTypes tests content sniffing for structured and plain text
func TestDetectTypes(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "doc.txt"), []byte("plain text content here\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "img.png"), []byte("\x89PNG\r\n\x1a\n"), 0o644))

	set, err := fileset.Files(filepath.Join(root, "*"))
	require.NoError(t, err)

	types, err := set.DetectTypes()
	assert.NoError(t, err)
	require.Len(t, types, 2)

	byBase := map[string]fileset.TypeInfo{}
	for _, ti := range types {
		byBase[filepath.Base(ti.Path)] = ti
	}

	assert.True(t, strings.HasPrefix(byBase["doc.txt"].MIME, "text/plain"))
	assert.NotEmpty(t, byBase["doc.txt"].Charset)
	assert.Equal(t, "image/png", byBase["img.png"].MIME)
	assert.Empty(t, byBase["img.png"].Charset)
}

// TestDetectTypesSkipsDirectories tests that only files are sniffed
func TestDetectTypesSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.txt"), []byte("text"), 0o644))

	set, err := fileset.All(filepath.Join(root, "*"))
	require.NoError(t, err)

	types, err := set.DetectTypes()
	assert.NoError(t, err)
	assert.Len(t, types, 1)
}

// TestChecksum tests digest stability and divergence
func TestChecksum(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("same"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("same"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "c.txt"), []byte("different"), 0o644))

	set, err := fileset.Files(filepath.Join(root, "*.txt"))
	require.NoError(t, err)

	sums, err := set.Checksum()
	assert.NoError(t, err)
	require.Len(t, sums, 3)

	a := sums[filepath.Join(root, "a.txt")]
	b := sums[filepath.Join(root, "b.txt")]
	c := sums[filepath.Join(root, "c.txt")]

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

// TestChecksumSkipsDirectories tests that directory entries get no digest
func TestChecksumSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.txt"), []byte("x"), 0o644))

	set, err := fileset.All(filepath.Join(root, "*"))
	require.NoError(t, err)

	sums, err := set.Checksum()
	assert.NoError(t, err)
	assert.Len(t, sums, 1)
}

// TestFormatBytes tests human-readable size formatting
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fileset.FormatBytes(tt.bytes))
	}
}
