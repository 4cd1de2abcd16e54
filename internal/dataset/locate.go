package dataset

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Locate resolves a data file pattern relative to dir. The pattern may be a
// plain file name or a doublestar glob; when several files match, the
// lexically last one wins so dated exports pick the newest.
func Locate(dir, pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("data file pattern is empty")
	}
	full := pattern
	if !filepath.IsAbs(pattern) {
		full = filepath.Join(dir, pattern)
	}
	if !doublestar.ValidatePattern(filepath.ToSlash(full)) {
		return "", fmt.Errorf("invalid data file pattern %q", pattern)
	}

	matches, err := doublestar.FilepathGlob(full, doublestar.WithFilesOnly())
	if err != nil {
		return "", fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %q in %s", ErrNotFound, pattern, dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
