package scaffold

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Policy decides what happens to the rest of the batch when a write fails.
type Policy string

const (
	// PolicyCollect attempts every write and aggregates failures.
	PolicyCollect Policy = "collect"

	// PolicyFailFast stops issuing writes after the first failure.
	// Writes already in flight still complete, so the set of files left on
	// disk after a failure is not deterministic.
	PolicyFailFast Policy = "fail-fast"
)

// DefaultPolicy is used when no policy is configured.
const DefaultPolicy = PolicyCollect

// ValidPolicies returns all policy names.
func ValidPolicies() []string {
	return []string{string(PolicyCollect), string(PolicyFailFast)}
}

// ParsePolicy parses a policy name. Empty selects DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultPolicy, nil
	case PolicyCollect:
		return PolicyCollect, nil
	case PolicyFailFast, "failfast":
		return PolicyFailFast, nil
	default:
		return "", fmt.Errorf("unknown policy %q; valid policies: %s", s, strings.Join(ValidPolicies(), ", "))
	}
}

// FileStatus is the outcome of a single write.
type FileStatus string

const (
	FileWritten FileStatus = "written"
	FileFailed  FileStatus = "failed"
	FileSkipped FileStatus = "skipped"
)

// FileResult is the outcome of materializing a single FileSpec.
type FileResult struct {
	Path   string
	Status FileStatus

	// Err is a *FilesystemError for failed writes, or the cancellation
	// cause for skipped ones.
	Err error
}

// MaterializerOptions configures a Materializer.
type MaterializerOptions struct {
	// Policy selects collect or fail-fast behaviour.
	Policy Policy

	// Jobs bounds concurrent writes. Zero or less means one goroutine per file.
	Jobs int

	// Atomic writes through a temp file and rename.
	Atomic bool

	// Perm is the mode for new files.
	Perm os.FileMode
}

// Materializer writes the file set of a Layout.
type Materializer struct {
	fs     afero.Fs
	root   string
	opts   MaterializerOptions
	logger *log.Logger
}

// NewMaterializer creates a Materializer rooted at root.
func NewMaterializer(fsys afero.Fs, root string, opts MaterializerOptions, logger *log.Logger) *Materializer {
	if opts.Policy == "" {
		opts.Policy = DefaultPolicy
	}
	if opts.Perm == 0 {
		opts.Perm = DefaultFilePerm
	}
	return &Materializer{fs: fsys, root: root, opts: opts, logger: logger}
}

// Materialize writes all files concurrently and returns one result per
// input, in input order. Completion and log order are unspecified.
// Parent directories must already exist.
func (m *Materializer) Materialize(ctx context.Context, files []FileSpec) []FileResult {
	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := m.opts.Jobs
	if jobs <= 0 || jobs > len(files) {
		jobs = len(files)
	}
	g.SetLimit(jobs)

	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = FileResult{Path: f.Path, Status: FileSkipped, Err: context.Cause(gctx)}
				m.logger.Debug("skipped file", "path", f.Path)
				return nil
			}

			if err := m.write(f); err != nil {
				fsErr := &FilesystemError{Op: OpWrite, Path: f.Path, Err: err}
				results[i] = FileResult{Path: f.Path, Status: FileFailed, Err: fsErr}
				m.logger.Error("write failed", "path", f.Path, "error", err)
				if m.opts.Policy == PolicyFailFast {
					return fsErr
				}
				return nil
			}

			results[i] = FileResult{Path: f.Path, Status: FileWritten}
			m.logger.Info("created file", "path", f.Path)
			return nil
		})
	}

	// Failures are carried in results; the group error is only used to cancel gctx.
	_ = g.Wait()

	return results
}

func (m *Materializer) write(f FileSpec) error {
	target := resolve(m.root, f.Path)
	if m.opts.Atomic {
		return writeFileAtomic(m.fs, target, f.Content, m.opts.Perm)
	}
	return writeFile(m.fs, target, f.Content, m.opts.Perm)
}
