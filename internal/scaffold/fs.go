package scaffold

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Default permissions for created entries.
const (
	DefaultDirPerm  os.FileMode = 0o755
	DefaultFilePerm os.FileMode = 0o644
)

const tempPattern = ".expresskit-tmp-*"

// resolve joins a layout path onto root using the host separator.
func resolve(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// writeFile replaces path with data, truncating any previous content.
func writeFile(fsys afero.Fs, path string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(fsys, path, data, perm)
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path. On failure the previous file, if any, is untouched.
func writeFileAtomic(fsys afero.Fs, path string, data []byte, perm os.FileMode) error {
	tmp, err := afero.TempFile(fsys, filepath.Dir(path), tempPattern)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := fsys.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
