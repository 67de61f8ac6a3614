// Package glob resolves glob patterns against the host filesystem.
//
// Matching is delegated to doublestar, which extends the standard
// filepath.Match syntax with '**' for recursive descent, brace
// expansion, and character classes. A pattern that matches nothing
// resolves to an empty list, not an error; only malformed patterns
// fail.
package glob

import (
	"github.com/bmatcuk/doublestar/v4"
)

// Match resolves pattern to the ordered list of existing paths.
// Results use the platform path separator and follow doublestar's
// lexical walk order. Files and directories are both returned; callers
// filter by kind when they need to.
func Match(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern)
}

// Valid reports whether pattern is well formed glob syntax. It does not
// touch the filesystem.
func Valid(pattern string) bool {
	return doublestar.ValidatePattern(pattern)
}
