package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/expresskit/cli/internal/errors"
	"github.com/expresskit/cli/internal/templates"
	"github.com/expresskit/cli/internal/testutil"
)

func TestNewInitCmd(t *testing.T) {
	cmd := NewInitCmd(nil)

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"template", "dir", "policy", "jobs", "atomic"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestInit_WritesExpressSkeleton(t *testing.T) {
	testutil.IsolateConfig(t)
	out := testutil.CaptureStdout(t)
	dir := t.TempDir()

	require.NoError(t, executeRoot(t, "init", "--dir", dir))

	tmpl := templates.GetDefault()
	for _, d := range tmpl.DirectoryPaths() {
		assert.DirExists(t, filepath.Join(dir, filepath.FromSlash(d)))
	}
	for _, a := range tmpl.Assets {
		want, err := templates.Content(tmpl.Name, a.ID)
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(a.Target)))
		require.NoError(t, err, a.Target)
		assert.Equal(t, want, got, a.Target)
	}

	assert.Contains(t, out.String(), "Created express project")
	assert.Contains(t, out.String(), "package.json")
	assert.Contains(t, out.String(), "13 files written")
}

func TestInit_IsRepeatable(t *testing.T) {
	testutil.IsolateConfig(t)
	testutil.CaptureStdout(t)
	dir := t.TempDir()

	require.NoError(t, executeRoot(t, "init", "--dir", dir))

	// A stale file is overwritten on the second run.
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PORT=1\nSECRET=x\nmore stale content here\n"), 0o644))

	require.NoError(t, executeRoot(t, "init", "--dir", dir, "--atomic"))

	got, err := os.ReadFile(envPath)
	require.NoError(t, err)
	assert.Equal(t, "\nPORT=5100\nMONGO_URI=mongodb://.......\n\n", string(got))
}

func TestInit_RootFromEnv(t *testing.T) {
	testutil.IsolateConfig(t)
	testutil.CaptureStdout(t)
	dir := t.TempDir()
	t.Setenv("EXPRESSKIT_ROOT", dir)

	require.NoError(t, executeRoot(t, "init"))
	assert.FileExists(t, filepath.Join(dir, "package.json"))
}

func TestInit_InvalidTemplate(t *testing.T) {
	testutil.IsolateConfig(t)
	testutil.CaptureStdout(t)

	err := executeRoot(t, "init", "--dir", t.TempDir(), "--template", "rails")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "unknown template")
}

func TestInit_InvalidPolicy(t *testing.T) {
	testutil.IsolateConfig(t)
	testutil.CaptureStdout(t)

	err := executeRoot(t, "init", "--dir", t.TempDir(), "--policy", "yolo")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestInit_DirectoryCollision(t *testing.T) {
	testutil.IsolateConfig(t)
	testutil.CaptureStdout(t)
	dir := t.TempDir()

	// A file where the v1 directory belongs.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "v1"), []byte("x"), 0o644))

	err := executeRoot(t, "init", "--dir", dir)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitFilesystemError, oerrors.ExitCodeFromError(err))
	assert.NoFileExists(t, filepath.Join(dir, "package.json"))
}

func TestInit_RejectsArgs(t *testing.T) {
	testutil.IsolateConfig(t)
	testutil.CaptureStdout(t)

	err := executeRoot(t, "init", "my-app")
	assert.Error(t, err)
}
