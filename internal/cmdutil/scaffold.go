package cmdutil

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/expresskit/cli/internal/config"
	oerrors "github.com/expresskit/cli/internal/errors"
	"github.com/expresskit/cli/internal/output"
	"github.com/expresskit/cli/internal/scaffold"
)

// RunScaffoldOpts holds the inputs for RunScaffold.
type RunScaffoldOpts struct {
	// Layout is the directory and file set to create.
	Layout scaffold.Layout

	// Resolved is the effective root, policy, jobs and atomic setting.
	Resolved *config.ResolvedConfig

	// Fs overrides the OS filesystem (tests).
	Fs afero.Fs

	// Logger receives the per-directory and per-file lines.
	// Nil uses a logger scoped to the project root.
	Logger *log.Logger

	// Spinner shows a spinner while the engine runs on a TTY.
	Spinner bool
}

// RunScaffold executes the shared provision-and-materialize preamble of the
// commands that write layouts (init, config init).
//
// On success it returns the Report. On failure it returns an *ExitError with
// the appropriate exit code and Printed set, plus the Report when one exists.
func RunScaffold(ctx context.Context, opts RunScaffoldOpts) (*scaffold.Report, error) {
	if opts.Resolved == nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("configuration not resolved")}
	}

	policy, err := scaffold.ParsePolicy(opts.Resolved.Policy)
	if err != nil {
		return nil, &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), "", "Use --policy collect or --policy fail-fast."),
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = output.ScopedLogger("root:" + opts.Resolved.Root)
	}

	engine := scaffold.New(scaffold.Options{
		Root:   opts.Resolved.Root,
		Fs:     opts.Fs,
		Logger: logger,
		Policy: policy,
		Jobs:   opts.Resolved.Jobs,
		Atomic: opts.Resolved.Atomic,
	})

	output.Debug("scaffolding",
		"root", opts.Resolved.Root,
		"policy", policy,
		"jobs", opts.Resolved.Jobs,
		"atomic", opts.Resolved.Atomic,
		"directories", len(opts.Layout.Directories),
		"files", len(opts.Layout.Files),
	)

	var report *scaffold.Report
	run := func() error {
		var runErr error
		report, runErr = engine.Run(ctx, opts.Layout)
		return runErr
	}

	if opts.Spinner {
		err = output.RunWithSpinner(ctx, run,
			output.WithTitle("Scaffolding project..."),
			output.WithLogger(logger),
		)
	} else {
		err = run()
	}

	if err != nil {
		output.Error("scaffold failed", "error", err)
		return report, &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}

	if !report.OK() {
		PrintReportFailures(report)
		reportErr := report.Err()
		return report, &oerrors.ExitError{Code: oerrors.ExitCodeFromError(reportErr), Err: reportErr, Printed: true}
	}

	return report, nil
}
