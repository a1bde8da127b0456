package scaffold

import "fmt"

// Operations reported in FilesystemError.Op.
const (
	OpEnsureDirectory = "ensure directory"
	OpCreateFile      = "create file"
)

// FilesystemError reports a directory or file creation failure at the OS
// boundary. The underlying error is available through errors.Is/As.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FilesystemError) Unwrap() error {
	return e.Err
}
