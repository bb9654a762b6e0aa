package scaffold

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Options configures an Engine.
type Options struct {
	// Root is the project root. Empty means the current directory.
	Root string

	// Fs is the filesystem to write to. Nil means the OS filesystem.
	Fs afero.Fs

	// Logger receives one line per created directory and file.
	// Nil discards output.
	Logger *log.Logger

	// Policy, Jobs and Atomic are passed to the Materializer.
	Policy Policy
	Jobs   int
	Atomic bool

	// DirPerm and FilePerm default to DefaultDirPerm and DefaultFilePerm.
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

// Engine runs the provision and materialize phases for a Layout.
type Engine struct {
	opts         Options
	provisioner  *Provisioner
	materializer *Materializer
}

// New creates an Engine, filling in defaults for unset options.
func New(opts Options) *Engine {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Policy == "" {
		opts.Policy = DefaultPolicy
	}
	if opts.DirPerm == 0 {
		opts.DirPerm = DefaultDirPerm
	}
	if opts.FilePerm == 0 {
		opts.FilePerm = DefaultFilePerm
	}

	return &Engine{
		opts:        opts,
		provisioner: NewProvisioner(opts.Fs, opts.Root, opts.DirPerm, opts.Logger),
		materializer: NewMaterializer(opts.Fs, opts.Root, MaterializerOptions{
			Policy: opts.Policy,
			Jobs:   opts.Jobs,
			Atomic: opts.Atomic,
			Perm:   opts.FilePerm,
		}, opts.Logger),
	}
}

// Run validates the layout, provisions its directories and then writes its
// files. A validation or directory error is returned directly and no file
// is written. File failures are recorded in the Report; use Report.Err to
// decide whether the run failed.
func (e *Engine) Run(ctx context.Context, layout Layout) (*Report, error) {
	layout = layout.Clone()

	if err := layout.Validate(); err != nil {
		return nil, err
	}

	report := &Report{Root: e.opts.Root}

	e.opts.Logger.Debug("provisioning directories", "root", e.opts.Root, "count", len(layout.Directories))
	dirs, err := e.provisioner.Provision(ctx, layout.Directories)
	report.Directories = dirs
	if err != nil {
		return report, err
	}

	e.opts.Logger.Debug("materializing files",
		"count", len(layout.Files),
		"policy", e.opts.Policy,
		"atomic", e.opts.Atomic)
	report.Files = e.materializer.Materialize(ctx, layout.Files)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}
