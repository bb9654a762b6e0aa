package scaffold

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/expresskit/cli/internal/testutil"
)

func newFailingFs(base afero.Fs, names ...string) afero.Fs {
	return testutil.NewDenyFs(base, names...)
}

func newTestLogger() (*log.Logger, *testutil.SyncBuffer) {
	buf := &testutil.SyncBuffer{}
	logger := log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
	return logger, buf
}

func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}
