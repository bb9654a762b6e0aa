//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrValidation, ErrFilesystem)
	assert.NotEqual(t, ErrPermission, ErrFilesystem)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "path escapes project root",
		Location: "../outside",
		Context:  map[string]string{"Layout": "express"},
		Hint:     "Use a relative path inside the project",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: ../outside")
	assert.Contains(t, output, "Layout: express")
	assert.Contains(t, output, "path escapes project root")
	assert.Contains(t, output, "Hint: Use a relative path inside the project")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad policy", "--policy", "Valid policies: collect, fail-fast")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "bad policy", detail.Message)
	assert.Equal(t, "--policy", detail.Location)
	assert.Equal(t, "Valid policies: collect, fail-fast", detail.Hint)
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "layout check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "layout check failed")
}

func TestExitError(t *testing.T) {
	inner := fmt.Errorf("writing files: %w", ErrFilesystem)
	exitErr := &ExitError{Code: 7, Err: inner}

	assert.Equal(t, inner.Error(), exitErr.Error())
	assert.True(t, errors.Is(exitErr, ErrFilesystem))

	var target *ExitError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", exitErr), &target))
	assert.Equal(t, 7, target.Code)

	assert.Equal(t, "exit code 3", (&ExitError{Code: 3}).Error())
}
