package scaffold

import (
	"errors"
	"fmt"

	oerrors "github.com/expresskit/cli/internal/errors"
)

// ErrNotDirectory is reported when a directory path is occupied by a file.
var ErrNotDirectory = errors.New("not a directory")

// Filesystem operations recorded in FilesystemError.Op.
const (
	OpMkdir = "mkdir"
	OpWrite = "write"
)

// FilesystemError is the single error kind raised by provisioning and
// materializing. It unwraps to the underlying OS error, so
// errors.Is(err, fs.ErrPermission) works, and matches oerrors.ErrFilesystem.
type FilesystemError struct {
	// Op is OpMkdir or OpWrite.
	Op string

	// Path is the layout-relative path.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Is reports whether target is oerrors.ErrFilesystem.
func (e *FilesystemError) Is(target error) bool {
	return target == oerrors.ErrFilesystem
}
