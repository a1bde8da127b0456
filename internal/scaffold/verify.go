package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/salesdash/scaffolder/internal/layout"
)

// Report describes how the filesystem under a root compares to a layout.
type Report struct {
	Dir        string
	DirExists  bool
	Missing    []string // listed files that do not exist
	NotRegular []string // listed names that exist but are not regular files
	NonEmpty   []string // listed files with a size above zero
	Extra      []string // entries in Dir that the layout does not list
}

// OK reports whether the directory holds exactly the layout's files, all empty.
func (r *Report) OK() bool {
	return r.DirExists &&
		len(r.Missing) == 0 &&
		len(r.NotRegular) == 0 &&
		len(r.NonEmpty) == 0 &&
		len(r.Extra) == 0
}

// Verify inspects root and reports any difference from the layout. The error
// return is reserved for failures to read the filesystem; a missing directory
// is reported, not returned.
func Verify(root string, l *layout.Layout) (*Report, error) {
	dir := l.Dir(root)
	report := &Report{Dir: dir}

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		report.Missing = append(report.Missing, l.Files...)
		return report, nil
	case err != nil:
		return nil, fmt.Errorf("inspecting %s: %w", dir, err)
	case !info.IsDir():
		report.Missing = append(report.Missing, l.Files...)
		return report, nil
	}
	report.DirExists = true

	expected := make(map[string]bool, len(l.Files))
	for _, name := range l.Files {
		expected[name] = true

		fi, err := os.Lstat(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			report.Missing = append(report.Missing, name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("inspecting %s: %w", name, err)
		}
		if !fi.Mode().IsRegular() {
			report.NotRegular = append(report.NotRegular, name)
			continue
		}
		if fi.Size() > 0 {
			report.NonEmpty = append(report.NonEmpty, name)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, e := range entries {
		if !expected[e.Name()] {
			report.Extra = append(report.Extra, e.Name())
		}
	}
	sort.Strings(report.Extra)

	return report, nil
}
