package templates

import (
	"github.com/expresskit/cli/internal/scaffold"
)

// Layout builds the scaffold layout of a template. Asset bytes are
// loaded from the embedded filesystem and passed through unchanged.
func (t Template) Layout() (scaffold.Layout, error) {
	files := make([]scaffold.FileSpec, 0, len(t.Assets))
	for _, a := range t.Assets {
		content, err := Content(t.Name, a.ID)
		if err != nil {
			return scaffold.Layout{}, err
		}
		files = append(files, scaffold.FileSpec{Path: a.Target, Content: content})
	}
	return scaffold.NewLayout(t.DirectoryPaths(), files), nil
}

// ExpressLayout returns the layout of the default Express template.
func ExpressLayout() (scaffold.Layout, error) {
	return GetDefault().Layout()
}
