package fileset

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
	"golang.org/x/crypto/blake2b"
)

// charsetSampleSize caps how much of a text file the charset detector
// reads.
const charsetSampleSize = 8 << 10

// Info represents file metadata for one tracked path.
type Info struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	IsDir     bool      `json:"is_dir"`
	Mode      string    `json:"mode"`
	Modified  time.Time `json:"modified"`
	Extension string    `json:"extension,omitempty"`
}

// TypeInfo represents the detected content type of one tracked file.
type TypeInfo struct {
	Path    string `json:"path"`
	MIME    string `json:"mime"`
	Charset string `json:"charset,omitempty"`
}

// Stat returns metadata for every tracked path in match order.
func (s *Set) Stat() ([]Info, error) {
	infos := make([]Info, 0, len(s.paths))
	for _, p := range s.paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		info := Info{
			Name:     fi.Name(),
			Path:     p,
			Size:     fi.Size(),
			IsDir:    fi.IsDir(),
			Mode:     fi.Mode().String(),
			Modified: fi.ModTime(),
		}
		if !fi.IsDir() {
			info.Extension = filepath.Ext(p)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// TotalSize sums the sizes of every tracked path. Directories
// contribute the combined size of every regular file beneath them,
// without following symlinks.
func (s *Set) TotalSize() (int64, error) {
	var total int64
	for _, p := range s.paths {
		fi, err := os.Stat(p)
		if err != nil {
			return 0, err
		}
		if !fi.IsDir() {
			total += fi.Size()
			continue
		}

		size, err := dirSize(p)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}

// dirSize walks root with fastwalk. The callback runs on multiple
// goroutines, so the accumulator is atomic.
func dirSize(root string) (int64, error) {
	var total int64
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		atomic.AddInt64(&total, info.Size())
		return nil
	})
	if err != nil {
		return 0, err
	}
	return atomic.LoadInt64(&total), nil
}

// DetectTypes sniffs the MIME type of every tracked regular file from
// its content, not its extension. Text files additionally get a charset
// guess from a bounded sample. Directories are skipped.
func (s *Set) DetectTypes() ([]TypeInfo, error) {
	out := make([]TypeInfo, 0, len(s.paths))
	for _, p := range s.paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if fi.IsDir() {
			continue
		}

		mtype, err := mimetype.DetectFile(p)
		if err != nil {
			return nil, err
		}

		ti := TypeInfo{Path: p, MIME: mtype.String()}
		if strings.HasPrefix(mtype.String(), "text/") {
			ti.Charset = detectCharset(p)
		}
		out = append(out, ti)
	}
	return out, nil
}

// detectCharset guesses the encoding of a text file from its leading
// bytes. Detection is best effort; failures yield an empty charset.
func detectCharset(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	sample, err := io.ReadAll(io.LimitReader(f, charsetSampleSize))
	if err != nil || len(sample) == 0 {
		return ""
	}

	res, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return ""
	}
	return res.Charset
}

// Checksum returns the hex BLAKE2b-256 digest of every tracked regular
// file, keyed by path. Directories and other non-regular entries are
// skipped.
func (s *Set) Checksum() (map[string]string, error) {
	sums := make(map[string]string, len(s.paths))
	for _, p := range s.paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !fi.Mode().IsRegular() {
			continue
		}

		sum, err := hashFile(p)
		if err != nil {
			return nil, err
		}
		sums[p] = sum
	}
	return sums, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FormatBytes formats bytes to human-readable size.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), units[exp])
}
