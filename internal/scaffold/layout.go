package scaffold

import (
	"fmt"
	"path"
	"strings"

	oerrors "github.com/expresskit/cli/internal/errors"
)

// FileSpec is a single file to materialize.
type FileSpec struct {
	// Path is slash-separated and relative to the project root.
	Path string

	// Content is written verbatim.
	Content []byte
}

// Layout is the declarative description of a project tree.
// Directories and Files are independent lists: a file may live in a
// directory that is not listed (for example at the project root).
type Layout struct {
	Directories []string
	Files       []FileSpec
}

// NewLayout returns a Layout holding copies of dirs and files.
func NewLayout(dirs []string, files []FileSpec) Layout {
	return Layout{
		Directories: append([]string(nil), dirs...),
		Files:       append([]FileSpec(nil), files...),
	}
}

// Clone returns a deep copy so the engine never observes caller mutations.
func (l Layout) Clone() Layout {
	files := make([]FileSpec, len(l.Files))
	for i, f := range l.Files {
		files[i] = FileSpec{Path: f.Path, Content: append([]byte(nil), f.Content...)}
	}
	return Layout{
		Directories: append([]string(nil), l.Directories...),
		Files:       files,
	}
}

// FilePaths returns the file paths in declaration order.
func (l Layout) FilePaths() []string {
	paths := make([]string, len(l.Files))
	for i, f := range l.Files {
		paths[i] = f.Path
	}
	return paths
}

// Validate checks that every path stays inside the project root.
// Characters and lengths are left to the filesystem.
func (l Layout) Validate() error {
	for _, d := range l.Directories {
		if err := validateRelPath(d); err != nil {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid directory path: %v", err), d,
				"Directory paths must be relative to the project root.")
		}
	}
	for _, f := range l.Files {
		if err := validateRelPath(f.Path); err != nil {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid file path: %v", err), f.Path,
				"File paths must be relative to the project root.")
		}
		if path.Clean(f.Path) == "." {
			return oerrors.NewValidationError("file path resolves to the project root", f.Path, "")
		}
	}
	return nil
}

func validateRelPath(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("path is empty")
	}
	if path.IsAbs(p) || strings.HasPrefix(p, `\`) || (len(p) > 1 && p[1] == ':') {
		return fmt.Errorf("path %q is absolute", p)
	}
	clean := path.Clean(strings.ReplaceAll(p, `\`, "/"))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path %q escapes the project root", p)
	}
	return nil
}
