package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expresskit/cli/internal/testutil"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "expresskit", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	verbose := root.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	timestamps := root.PersistentFlags().Lookup("timestamps")
	require.NotNil(t, timestamps)
	assert.Equal(t, "true", timestamps.DefValue)

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "init")
	assert.Contains(t, names, "layout")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")
}

func TestRootCmd_MalformedConfigIsNotFatal(t *testing.T) {
	testutil.IsolateConfig(t)
	testutil.CaptureStdout(t)

	err := executeRoot(t, "--config", "testdata/broken.yaml", "version")
	assert.NoError(t, err)
}
