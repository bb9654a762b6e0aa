// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/expresskit/cli/internal/config"
	oerrors "github.com/expresskit/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file merged with EXPRESSKIT_* env values.
	// Nil when loading failed.
	Config *config.Config

	// ConfigPath is the raw --config flag value.
	ConfigPath string

	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
	ExitFilesystemError  = oerrors.ExitFilesystemError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
