package selection

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/renum/pkg/errors"
	"github.com/arthur-debert/renum/pkg/logging"
)

// SortBy controls the ordering of glob matches.
type SortBy string

const (
	// SortDiscovered keeps matches in walk order.
	SortDiscovered SortBy = "discovered"
	// SortLexicographical sorts matches by path name.
	SortLexicographical SortBy = "lexicographical"
)

// ParseSortBy validates a sort mode coming from a flag or config value.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortDiscovered:
		return SortDiscovered, nil
	case SortLexicographical:
		return SortLexicographical, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"unknown sort mode %q (expected %s or %s)", s, SortDiscovered, SortLexicographical)
	}
}

// Files returns an explicitly listed selection, preserving argument order.
// Paths are not checked for existence here; a missing file surfaces when
// its rename runs.
func Files(paths []string) []string {
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}

// Glob selects files matching pattern, walking the OS filesystem from the
// pattern's fixed base directory. Relative patterns resolve against the
// current directory.
func Glob(pattern string, sortBy SortBy) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf(errors.ErrGlobInvalid, "invalid glob pattern %q", pattern)
	}

	base, rest := doublestar.SplitPattern(pattern)

	matches, err := GlobFS(os.DirFS(base), rest, sortBy)
	if err != nil {
		return nil, err
	}

	joined := make([]string, len(matches))
	for i, m := range matches {
		joined[i] = filepath.Join(base, m)
	}
	return joined, nil
}

// GlobFS walks fsys from its root and returns the paths matching pattern,
// relative to fsys. Directories are traversed but never selected. A
// filesystem error does not halt the walk; every failing entry is recorded
// and the batch is reported as a single selection error.
func GlobFS(fsys fs.FS, pattern string, sortBy SortBy) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf(errors.ErrGlobInvalid, "invalid glob pattern %q", pattern)
	}

	logger := logging.GetLogger("selection")

	var matches []string
	var walkErrs []error

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			walkErrs = append(walkErrs, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ok, matchErr := doublestar.Match(pattern, path)
		if matchErr != nil {
			return matchErr
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGlobInvalid, "invalid glob pattern %q", pattern)
	}

	if len(walkErrs) > 0 {
		return nil, errors.Wrap(stderrors.Join(walkErrs...), errors.ErrSelection,
			"encountered one or more file system errors").
			WithDetail("pattern", pattern)
	}

	switch sortBy {
	case SortLexicographical:
		sort.Strings(matches)
	case SortDiscovered:
		// keep walk order
	}

	logger.Debug().
		Str("pattern", pattern).
		Int("matches", len(matches)).
		Msg("Glob selection complete")

	return matches, nil
}
