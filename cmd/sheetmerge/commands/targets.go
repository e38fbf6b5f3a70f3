package commands

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// expandTargets turns the target arguments into paths. Literal paths are
// kept as given; glob patterns expand to the matching files whose base name
// matches one of allowed. Argument order is kept and duplicates are not
// removed.
func expandTargets(args []string, allowed []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !hasMeta(arg) {
			abs, err := filepath.Abs(arg)
			if err != nil {
				return nil, errors.Errorf("resolving %s: %w", arg, err)
			}
			out = append(out, abs)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding %s: %w", arg, err)
		}
		sort.Strings(matches)

		n := 0
		for _, m := range matches {
			if !allowedName(filepath.Base(m), allowed) {
				continue
			}
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, errors.Errorf("resolving %s: %w", m, err)
			}
			out = append(out, abs)
			n++
		}
		if n == 0 {
			return nil, errors.Errorf("pattern %s matched no workbooks", arg)
		}
	}
	return out, nil
}

func allowedName(name string, allowed []string) bool {
	for _, p := range allowed {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

func hasMeta(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// exists reports whether path names a regular file
func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
