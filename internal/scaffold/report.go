package scaffold

import "errors"

// Report aggregates the outcome of a run.
type Report struct {
	// Root is the directory the layout was materialized under.
	Root string

	// Directories holds one entry per provisioned directory, in layout order.
	Directories []DirResult

	// Files holds one entry per FileSpec, in layout order.
	Files []FileResult
}

// Written returns the paths that were written successfully.
func (r *Report) Written() []string {
	return r.pathsWith(FileWritten)
}

// Skipped returns the paths that were never attempted.
func (r *Report) Skipped() []string {
	return r.pathsWith(FileSkipped)
}

// Failed returns the results of failed writes.
func (r *Report) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Status == FileFailed {
			failed = append(failed, f)
		}
	}
	return failed
}

// OK reports whether every file was written.
func (r *Report) OK() bool {
	for _, f := range r.Files {
		if f.Status != FileWritten {
			return false
		}
	}
	return true
}

// Err joins the errors of all failed writes, or returns nil.
// Skipped files are a consequence of a failure and are not reported again.
func (r *Report) Err() error {
	var errs []error
	for _, f := range r.Failed() {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

func (r *Report) pathsWith(status FileStatus) []string {
	var paths []string
	for _, f := range r.Files {
		if f.Status == status {
			paths = append(paths, f.Path)
		}
	}
	return paths
}
