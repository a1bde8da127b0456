package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/salesdash/scaffolder/internal/layout"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Result holds the outcome of a scaffold run.
type Result struct {
	OutputDir string
	Files     []string
}

// Scaffolder creates the directory and empty files described by a layout
// under a root directory.
type Scaffolder struct {
	Root   string
	Layout *layout.Layout

	// Progress receives one line per created entry. Nil disables it.
	Progress io.Writer
}

// New returns a Scaffolder for the given root and layout.
func New(root string, l *layout.Layout) *Scaffolder {
	return &Scaffolder{Root: root, Layout: l}
}

// EnsureDirectory creates path and any missing parents. An existing directory
// is not an error; an existing non-directory entry is.
func EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return &FilesystemError{Op: OpEnsureDirectory, Path: path, Err: unwrapPathError(err)}
	}
	return nil
}

// CreateEmptyFile creates path as a zero-length file, truncating any
// existing content.
func CreateEmptyFile(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return &FilesystemError{Op: OpCreateFile, Path: path, Err: unwrapPathError(err)}
	}
	if err := f.Close(); err != nil {
		return &FilesystemError{Op: OpCreateFile, Path: path, Err: err}
	}
	return nil
}

// Run ensures the layout directory exists, then creates every layout file in
// order. The first failure aborts the run; files created before it are left
// in place.
func (s *Scaffolder) Run() (*Result, error) {
	if s.Layout == nil {
		return nil, fmt.Errorf("scaffolder has no layout")
	}

	dir := s.Layout.Dir(s.Root)
	if err := EnsureDirectory(dir); err != nil {
		return nil, err
	}
	s.report("Ensured %s/", dir)

	result := &Result{
		OutputDir: dir,
		Files:     make([]string, 0, len(s.Layout.Files)),
	}

	for _, name := range s.Layout.Files {
		path := filepath.Join(dir, name)
		if err := CreateEmptyFile(path); err != nil {
			return result, err
		}
		result.Files = append(result.Files, name)
		s.report("Created %s", path)
	}

	return result, nil
}

func (s *Scaffolder) report(format string, args ...interface{}) {
	if s.Progress == nil {
		return
	}
	fmt.Fprintf(s.Progress, "  "+format+"\n", args...)
}

// unwrapPathError strips the *os.PathError layer so FilesystemError carries
// the path exactly once in its message.
func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return fmt.Errorf("%s: %w", pe.Op, pe.Err)
	}
	return err
}
