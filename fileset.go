package fileset

import (
	"go.uber.org/zap"

	"github.com/codeglade/fileset/internal/config"
	"github.com/codeglade/fileset/internal/fsio"
	"github.com/codeglade/fileset/internal/glob"
	"github.com/codeglade/fileset/internal/logging"
)

// logger is the package-wide diagnostic sink, initialized from the
// FILESET_* environment and retargetable through Verbose and
// ColorOutput.
var logger = newLogger(config.LoadOrDefault())

func newLogger(cfg *config.Settings) *logging.Logger {
	l, err := logging.New(logging.Config{Level: cfg.LogLevel, Color: cfg.ColorEnabled()})
	if err != nil {
		return logging.NewNop()
	}
	l.SetVerbose(cfg.Verbose)
	return l
}

// Verbose toggles per-operation diagnostics for every Set in the
// process. The flag starts from FILESET_VERBOSE and defaults to on.
func Verbose(on bool) {
	logger.SetVerbose(on)
}

// ColorOutput rebuilds the diagnostic sink with coloring forced on or
// off, overriding the FILESET_COLOR mode. Call it once at startup,
// before operations begin.
func ColorOutput(on bool) {
	cfg := config.LoadOrDefault()
	l, err := logging.New(logging.Config{Level: cfg.LogLevel, Color: on})
	if err != nil {
		return
	}
	l.SetVerbose(logger.Verbose())
	logger = l
}

// A Set is a mutable working set of paths resolved from one glob
// pattern. The pattern is fixed for the lifetime of the Set; the path
// list changes as operations relocate or discard entries. Batch
// operations walk the list sequentially in match order.
//
// A Set is not safe for concurrent use.
type Set struct {
	pattern string
	paths   []string
}

// kind restricts which matches a factory keeps.
type kind int

const (
	kindAny kind = iota
	kindFile
	kindDir
)

// Files resolves pattern and keeps only matches that are regular files.
func Files(pattern string) (*Set, error) {
	return newSet(pattern, kindFile)
}

// Dirs resolves pattern and keeps only matches that are directories.
func Dirs(pattern string) (*Set, error) {
	return newSet(pattern, kindDir)
}

// All resolves pattern and keeps every match regardless of kind.
func All(pattern string) (*Set, error) {
	return newSet(pattern, kindAny)
}

// Target wraps pattern without touching the filesystem. The returned
// Set tracks no matches; it addresses a file that may not exist yet,
// such as a config about to be written.
func Target(pattern string) *Set {
	return &Set{pattern: pattern}
}

func newSet(pattern string, k kind) (*Set, error) {
	matches, err := glob.Match(pattern)
	if err != nil {
		return nil, err
	}

	s := &Set{pattern: pattern}
	for _, m := range matches {
		keep := true
		var err error
		switch k {
		case kindFile:
			keep, err = fsio.IsFile(m)
		case kindDir:
			keep, err = fsio.IsDir(m)
		}
		if err != nil {
			return nil, err
		}
		if keep {
			s.paths = append(s.paths, m)
		}
	}

	logger.Debug("Resolved pattern",
		zap.String("pattern", pattern),
		zap.Int("matches", len(s.paths)))
	return s, nil
}

// Pattern returns the glob pattern the Set was built from.
func (s *Set) Pattern() string {
	return s.pattern
}

// Paths returns a copy of the current working set in match order.
func (s *Set) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len returns the number of paths currently tracked.
func (s *Set) Len() int {
	return len(s.paths)
}

// Exists reports whether the working set tracks at least one path.
func (s *Set) Exists() bool {
	return len(s.paths) > 0
}

// Delete removes every tracked path from disk, recursing into
// directories. On success the working set is emptied and the count of
// removed paths returned. A failure stops the batch: entries already
// removed stay removed, the working set keeps its previous contents,
// and the platform error is returned alongside the number of completed
// removals.
func (s *Set) Delete() (int, error) {
	for i, p := range s.paths {
		if err := fsio.Remove(p); err != nil {
			return i, err
		}
		logger.Info("Deleted", zap.String("path", p))
	}

	n := len(s.paths)
	s.paths = nil
	return n, nil
}

// Remove is an alias for Delete.
func (s *Set) Remove() (int, error) {
	return s.Delete()
}

// MoveTo relocates every tracked path to the target resolved by
// ResolveDestination and replaces the working set with the new
// locations, so chained operations act on the moved entries. A failure
// stops the batch and leaves the working set unchanged even though
// earlier entries have already moved; there is no rollback.
func (s *Set) MoveTo(dest string) (int, error) {
	moved := make([]string, 0, len(s.paths))
	for _, p := range s.paths {
		dst := ResolveDestination(dest, p)
		if err := fsio.Move(p, dst); err != nil {
			return len(moved), err
		}
		logger.Info("Moved", zap.String("from", p), zap.String("to", dst))
		moved = append(moved, dst)
	}

	s.paths = moved
	return len(moved), nil
}

// CopyTo clones every tracked path to the target resolved by
// ResolveDestination, recursing into directories. The working set keeps
// pointing at the sources, so chained operations act on the originals,
// not the copies.
func (s *Set) CopyTo(dest string) (int, error) {
	for i, p := range s.paths {
		dst := ResolveDestination(dest, p)
		if err := fsio.Copy(p, dst); err != nil {
			return i, err
		}
		logger.Info("Copied", zap.String("from", p), zap.String("to", dst))
	}
	return len(s.paths), nil
}

// EnsureDirs creates directories along with any missing ancestors. With
// an empty working set the pattern itself is created, which covers the
// usual "mkdir -p a path that does not exist yet" case. Otherwise every
// tracked path is ensured in order.
func (s *Set) EnsureDirs() (int, error) {
	if len(s.paths) == 0 {
		if err := fsio.EnsureDir(s.pattern); err != nil {
			return 0, err
		}
		logger.Info("Ensured directory", zap.String("path", s.pattern))
		return 1, nil
	}

	for i, p := range s.paths {
		if err := fsio.EnsureDir(p); err != nil {
			return i, err
		}
		logger.Info("Ensured directory", zap.String("path", p))
	}
	return len(s.paths), nil
}

// CreateDirs is an alias for EnsureDirs.
func (s *Set) CreateDirs() (int, error) {
	return s.EnsureDirs()
}
