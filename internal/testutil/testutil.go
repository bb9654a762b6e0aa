// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/expresskit/cli/internal/output"
)

// envKeys are the EXPRESSKIT_* variables the CLI reads.
var envKeys = []string{
	"EXPRESSKIT_ROOT",
	"EXPRESSKIT_POLICY",
	"EXPRESSKIT_JOBS",
	"EXPRESSKIT_ATOMIC",
	"EXPRESSKIT_LOG_TIMESTAMPS",
	"EXPRESSKIT_CONFIG",
}

// ClearEnv empties every EXPRESSKIT_* variable for the duration of the test.
func ClearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

// IsolateConfig clears the environment and points EXPRESSKIT_CONFIG at a
// file that does not exist, so the developer's own config is never read.
func IsolateConfig(t *testing.T) {
	t.Helper()
	ClearEnv(t)
	t.Setenv("EXPRESSKIT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
}

// CaptureStdout redirects output.Print and output.Println until the test ends.
func CaptureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := output.SetStdout(&buf)
	t.Cleanup(restore)
	return &buf
}

// SyncBuffer is a bytes.Buffer safe for concurrent writers.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// DenyFs fails every open of a file whose base name is listed with
// os.ErrPermission. Everything else goes to the wrapped filesystem.
type DenyFs struct {
	afero.Fs
	deny map[string]bool
}

// NewDenyFs wraps base, denying the given base names.
func NewDenyFs(base afero.Fs, names ...string) *DenyFs {
	f := &DenyFs{Fs: base, deny: make(map[string]bool, len(names))}
	for _, n := range names {
		f.deny[n] = true
	}
	return f
}

// OpenFile implements afero.Fs.
func (f *DenyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.deny[filepath.Base(name)] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.OpenFile(name, flag, perm)
}
