package templates

import (
	"context"
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expresskit/cli/internal/scaffold"
)

func TestExpressLayout(t *testing.T) {
	layout, err := ExpressLayout()
	require.NoError(t, err)
	require.NoError(t, layout.Validate())

	assert.Len(t, layout.Directories, 12)
	assert.Equal(t, []string{
		".env",
		"v1/src/app.js",
		"v1/src/config/server.js",
		"v1/src/config/index.js",
		"v1/src/loaders/dbExample.js",
		"v1/src/loaders/index.js",
		"v1/src/models/ExampleModel.js",
		"v1/src/routes/exampleRoute.js",
		"v1/src/services/exampleService.js",
		"v1/src/controllers/exampleController.js",
		"v1/src/scripts/utils/ExampleErrorResponse.js",
		"v1/src/middlewares/exampleError.js",
		"package.json",
	}, layout.FilePaths())
}

func TestExpressLayout_FilesLandInProvisionedDirectories(t *testing.T) {
	layout, err := ExpressLayout()
	require.NoError(t, err)

	// MkdirAll creates every ancestor, so a parent counts as provisioned
	// when it is listed or is an ancestor of a listed directory.
	provisioned := func(parent string) bool {
		for _, d := range layout.Directories {
			if d == parent || strings.HasPrefix(d, parent+"/") {
				return true
			}
		}
		return false
	}
	for _, f := range layout.Files {
		parent := path.Dir(f.Path)
		if parent == "." {
			continue
		}
		assert.True(t, provisioned(parent), "%s is written into an unprovisioned directory", f.Path)
	}
}

func TestExpressLayout_MaterializesVerbatim(t *testing.T) {
	layout, err := ExpressLayout()
	require.NoError(t, err)

	fsys := afero.NewMemMapFs()
	report, err := scaffold.New(scaffold.Options{Root: "/app", Fs: fsys}).Run(context.Background(), layout)
	require.NoError(t, err)
	require.NoError(t, report.Err())

	tmpl := GetDefault()
	for _, a := range tmpl.Assets {
		want, err := Content(tmpl.Name, a.ID)
		require.NoError(t, err)

		got, err := afero.ReadFile(fsys, path.Join("/app", a.Target))
		require.NoError(t, err)
		assert.Equal(t, want, got, a.Target)
	}

	for _, d := range layout.Directories {
		ok, err := afero.DirExists(fsys, path.Join("/app", d))
		require.NoError(t, err)
		assert.True(t, ok, d)
	}
}
