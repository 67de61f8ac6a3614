package fileset

import (
	"archive/tar"
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/codeglade/fileset/internal/fsio"
)

// entry is one archive member; name is the path inside the archive.
type entry struct {
	path  string
	name  string
	isDir bool
}

// Zip packs every tracked path into a ZIP archive at dest, creating
// missing parent directories first. A file enters under its base name;
// a directory enters as a folder of the same name with its tree
// beneath it. It returns the number of files written.
func (s *Set) Zip(dest string) (int, error) {
	if err := fsio.EnsureDir(filepath.Dir(dest)); err != nil {
		return 0, err
	}
	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	count, err := writeZipEntries(zw, s.paths)
	if err != nil {
		zw.Close()
		return count, err
	}
	if err := zw.Close(); err != nil {
		return count, err
	}

	logger.Info("Created ZIP", zap.String("path", dest), zap.Int("files", count))
	return count, nil
}

// Tar packs every tracked path into a TAR archive at dest, compressed
// by extension: gzip for .gz and .tgz, zstd for .zst, plain otherwise.
// The member layout matches Zip. It returns the number of files
// written.
func (s *Set) Tar(dest string) (int, error) {
	if err := fsio.EnsureDir(filepath.Dir(dest)); err != nil {
		return 0, err
	}
	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	var tw *tar.Writer
	closeCompressor := func() error { return nil }

	switch {
	case strings.HasSuffix(dest, ".gz") || strings.HasSuffix(dest, ".tgz"):
		gz := gzip.NewWriter(out)
		closeCompressor = gz.Close
		tw = tar.NewWriter(gz)
	case strings.HasSuffix(dest, ".zst"):
		enc, err := zstd.NewWriter(out)
		if err != nil {
			return 0, err
		}
		closeCompressor = enc.Close
		tw = tar.NewWriter(enc)
	default:
		tw = tar.NewWriter(out)
	}

	count, err := writeTarEntries(tw, s.paths)
	if err != nil {
		tw.Close()
		closeCompressor()
		return count, err
	}
	if err := tw.Close(); err != nil {
		closeCompressor()
		return count, err
	}
	if err := closeCompressor(); err != nil {
		return count, err
	}

	logger.Info("Created TAR", zap.String("path", dest), zap.Int("files", count))
	return count, nil
}

// ExtractTo unpacks every tracked archive into dest, creating it
// first. The format is chosen by extension: .zip for ZIP; .tar, .tgz,
// .gz, and .zst for TAR with auto-detected compression. Anything else
// is an error. Entries that would escape dest are skipped. It returns
// the number of files extracted.
func (s *Set) ExtractTo(dest string) (int, error) {
	if err := fsio.EnsureDir(dest); err != nil {
		return 0, err
	}

	total := 0
	for _, p := range s.paths {
		var (
			n   int
			err error
		)
		switch ext := strings.ToLower(filepath.Ext(p)); ext {
		case ".zip":
			n, err = extractZip(p, dest)
		case ".tar", ".tgz", ".gz", ".zst":
			n, err = extractTar(p, dest)
		default:
			err = fmt.Errorf("unsupported archive format: %s", ext)
		}
		total += n
		if err != nil {
			return total, err
		}
		logger.Info("Extracted archive",
			zap.String("archive", p),
			zap.String("destination", dest),
			zap.Int("files", n))
	}
	return total, nil
}

// archiveEntries expands one tracked path into archive members. A file
// becomes a single member under its base name; a directory becomes one
// member per file and subdirectory beneath it, prefixed with the
// directory's base name. Members come back sorted so parents precede
// children and archives are reproducible regardless of walk order.
// Non-regular files such as sockets and symlinks are left out.
func archiveEntries(root string) ([]entry, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(root)
	if !fi.IsDir() {
		return []entry{{path: root, name: base}}, nil
	}

	var (
		mu      sync.Mutex
		entries []entry
	)
	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil || p == root {
			return nil
		}
		if !d.IsDir() && !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		name := filepath.ToSlash(filepath.Join(base, rel))
		mu.Lock()
		entries = append(entries, entry{path: p, name: name, isDir: d.IsDir()})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	return append([]entry{{path: root, name: base, isDir: true}}, entries...), nil
}

func writeZipEntries(zw *zip.Writer, paths []string) (int, error) {
	count := 0
	for _, p := range paths {
		entries, err := archiveEntries(p)
		if err != nil {
			return count, err
		}
		for _, e := range entries {
			if e.isDir {
				if _, err := zw.Create(e.name + "/"); err != nil {
					return count, err
				}
				continue
			}

			w, err := zw.Create(e.name)
			if err != nil {
				return count, err
			}
			f, err := os.Open(e.path)
			if err != nil {
				return count, err
			}
			if _, err := io.Copy(w, f); err != nil {
				f.Close()
				return count, err
			}
			f.Close()
			count++
		}
	}
	return count, nil
}

func writeTarEntries(tw *tar.Writer, paths []string) (int, error) {
	count := 0
	for _, p := range paths {
		entries, err := archiveEntries(p)
		if err != nil {
			return count, err
		}
		for _, e := range entries {
			fi, err := os.Stat(e.path)
			if err != nil {
				return count, err
			}
			header, err := tar.FileInfoHeader(fi, "")
			if err != nil {
				return count, err
			}
			header.Name = e.name
			if e.isDir {
				header.Name += "/"
			}
			if err := tw.WriteHeader(header); err != nil {
				return count, err
			}
			if e.isDir {
				continue
			}

			f, err := os.Open(e.path)
			if err != nil {
				return count, err
			}
			if _, err := io.Copy(tw, f); err != nil {
				f.Close()
				return count, err
			}
			f.Close()
			count++
		}
	}
	return count, nil
}

func extractZip(archive, dest string) (int, error) {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	count := 0
	for _, file := range reader.File {
		// Prevent zip-slip attacks
		destPath := filepath.Join(dest, file.Name)
		if !strings.HasPrefix(destPath, filepath.Clean(dest)+string(os.PathSeparator)) {
			continue
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return count, err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return count, err
		}

		src, err := file.Open()
		if err != nil {
			return count, err
		}
		dst, err := os.Create(destPath)
		if err != nil {
			src.Close()
			return count, err
		}
		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func extractTar(archive, dest string) (int, error) {
	f, err := os.Open(archive)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var tr *tar.Reader

	// Auto-detect compression
	switch {
	case strings.HasSuffix(archive, ".gz") || strings.HasSuffix(archive, ".tgz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return 0, err
		}
		defer gz.Close()
		tr = tar.NewReader(gz)
	case strings.HasSuffix(archive, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			return 0, err
		}
		defer dec.Close()
		tr = tar.NewReader(dec)
	default:
		tr = tar.NewReader(f)
	}

	count := 0
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}

		destPath := filepath.Join(dest, header.Name)
		if !strings.HasPrefix(destPath, filepath.Clean(dest)+string(os.PathSeparator)) {
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return count, err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
				return count, err
			}
			out, err := os.Create(destPath)
			if err != nil {
				return count, err
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return count, err
			}
			if err := out.Close(); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
