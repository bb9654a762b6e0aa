package output

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title  string
	logger *log.Logger
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithLogger holds back the logger's output while the spinner is drawn and
// replays it to stderr once the action finishes. The logger must not be
// shared with other goroutines while the spinner runs.
func WithLogger(l *log.Logger) SpinnerOption {
	return func(c *spinnerConfig) {
		c.logger = l
	}
}

// RunWithSpinner executes an action with a spinner on a TTY.
// Off a TTY the action runs directly. Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}

	if cfg.logger != nil {
		var held bytes.Buffer
		cfg.logger.SetOutput(&held)
		defer func() {
			cfg.logger.SetOutput(os.Stderr)
			_, _ = os.Stderr.Write(held.Bytes())
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- action()
	}()

	var actionErr error
	spinnerErr := spinner.New().
		Title(cfg.title).
		Context(ctx).
		Action(func() {
			actionErr = <-errCh
		}).
		Run()

	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	return actionErr
}
