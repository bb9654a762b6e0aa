// Package main is the entry point for the expresskit CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/expresskit/cli/internal/cmd"
	oerrors "github.com/expresskit/cli/internal/errors"
	"github.com/expresskit/cli/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		// Check if the error contains an ExitError with a specific code
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		exit(oerrors.ExitCodeFromError(err))
	}
}

func exit(code int) {
	output.Debug("exiting", "code", code, "reason", oerrors.ExitCodeName(code))
	os.Exit(code)
}
