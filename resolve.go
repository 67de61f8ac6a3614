package fileset

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveDestination computes the concrete target for one source entry
// of a move or copy.
//
// A destPattern ending in a path separator names a directory, and the
// source's base name is appended: "dst/" with source "a/b/file.txt"
// resolves to "dst/file.txt". Any other destPattern is returned
// verbatim. Note that the verbatim form makes every source of a batch
// resolve to the same target, so later entries silently overwrite
// earlier ones; pass a trailing separator when moving or copying more
// than one path.
func ResolveDestination(destPattern, srcPath string) string {
	if strings.HasSuffix(destPattern, "/") || strings.HasSuffix(destPattern, string(os.PathSeparator)) {
		return filepath.Join(destPattern, filepath.Base(srcPath))
	}
	return destPattern
}
