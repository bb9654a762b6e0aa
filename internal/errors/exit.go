package errors

import (
	"errors"
	"io/fs"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates an invalid layout, flag or config value.
	ExitValidationError = 2

	// ExitPermissionDenied indicates the filesystem refused access.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a template, asset or file was not found.
	ExitNotFound = 5

	// ExitFilesystemError indicates a directory or file could not be created.
	ExitFilesystemError = 7
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitNotFound:
		return "Not Found"
	case ExitFilesystemError:
		return "Filesystem Error"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the exit code for an error.
// Permission checks run before the generic filesystem check so a denied
// write reports ExitPermissionDenied.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrPermission), errors.Is(err, fs.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrFilesystem):
		return ExitFilesystemError
	default:
		return ExitGeneralError
	}
}
