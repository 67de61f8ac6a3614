package fileset

import (
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/codeglade/fileset/internal/fsio"
)

// Read returns the content of the file named by the Set's pattern,
// treated as a literal path. The boolean reports whether the file
// existed; absence is not an error. Read serves single-target sets,
// typically built with Target.
func (s *Set) Read() (string, bool, error) {
	data, err := os.ReadFile(s.pattern)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Write replaces the content of the file named by the Set's pattern,
// creating it and any missing parent directories first.
func (s *Set) Write(content string) error {
	if err := fsio.WriteFile(s.pattern, []byte(content)); err != nil {
		return err
	}
	logger.Info("Wrote file", zap.String("path", s.pattern), zap.Int("bytes", len(content)))
	return nil
}

// Append adds content to the end of the file named by the Set's
// pattern, creating it and any missing parents when absent. With
// leadingNewline set, a single newline is inserted before content, but
// only when the file already exists; a fresh file receives content
// verbatim either way.
func (s *Set) Append(content string, leadingNewline bool) error {
	if leadingNewline && fsio.Exists(s.pattern) {
		content = "\n" + content
	}
	if err := fsio.AppendFile(s.pattern, []byte(content)); err != nil {
		return err
	}
	logger.Info("Appended", zap.String("path", s.pattern), zap.Int("bytes", len(content)))
	return nil
}

// Alter reads the target file, passes its content through fn, and
// writes the result back. An absent target reads as the empty string,
// so fn can build initial content. A failing read or fn aborts before
// anything is written.
func (s *Set) Alter(fn func(content string) (string, error)) error {
	content, _, err := s.Read()
	if err != nil {
		return err
	}
	out, err := fn(content)
	if err != nil {
		return err
	}
	return s.Write(out)
}
