package scaffold

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// DirResult is the outcome of provisioning a single directory.
type DirResult struct {
	// Path is the layout-relative directory path.
	Path string

	// Created is false when the directory already existed.
	Created bool
}

// Provisioner creates the directory set of a Layout.
type Provisioner struct {
	fs     afero.Fs
	root   string
	perm   os.FileMode
	logger *log.Logger
}

// NewProvisioner creates a Provisioner rooted at root.
func NewProvisioner(fsys afero.Fs, root string, perm os.FileMode, logger *log.Logger) *Provisioner {
	return &Provisioner{fs: fsys, root: root, perm: perm, logger: logger}
}

// Provision ensures every directory in dirs exists, creating missing
// ancestors. Existing directories are not an error. The first failure stops
// provisioning and is returned as a *FilesystemError.
func (p *Provisioner) Provision(ctx context.Context, dirs []string) ([]DirResult, error) {
	results := make([]DirResult, 0, len(dirs))

	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		target := resolve(p.root, dir)

		existed := false
		if info, err := p.fs.Stat(target); err == nil {
			if !info.IsDir() {
				return results, &FilesystemError{Op: OpMkdir, Path: dir, Err: ErrNotDirectory}
			}
			existed = true
		}

		if err := p.fs.MkdirAll(target, p.perm); err != nil {
			return results, &FilesystemError{Op: OpMkdir, Path: dir, Err: err}
		}

		// Some filesystems report success when a file occupies the path.
		info, err := p.fs.Stat(target)
		if err != nil {
			return results, &FilesystemError{Op: OpMkdir, Path: dir, Err: err}
		}
		if !info.IsDir() {
			return results, &FilesystemError{Op: OpMkdir, Path: dir, Err: ErrNotDirectory}
		}

		if existed {
			p.logger.Debug("directory exists", "path", dir)
		} else {
			p.logger.Info("created directory", "path", dir)
		}
		results = append(results, DirResult{Path: dir, Created: !existed})
	}

	return results, nil
}
