package cmd

import (
	"bytes"
	"testing"
)

// executeRoot runs the root command with args.
func executeRoot(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}
