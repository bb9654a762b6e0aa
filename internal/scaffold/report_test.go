package scaffold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	errA := &FilesystemError{Op: OpWrite, Path: "a", Err: errors.New("disk full")}
	errC := &FilesystemError{Op: OpWrite, Path: "c", Err: errors.New("read-only")}

	r := &Report{Files: []FileResult{
		{Path: "a", Status: FileFailed, Err: errA},
		{Path: "b", Status: FileWritten},
		{Path: "c", Status: FileFailed, Err: errC},
		{Path: "d", Status: FileSkipped, Err: errA},
	}}

	assert.False(t, r.OK())
	assert.Equal(t, []string{"b"}, r.Written())
	assert.Equal(t, []string{"d"}, r.Skipped())
	assert.Len(t, r.Failed(), 2)

	err := r.Err()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)
	assert.Contains(t, err.Error(), "write a: disk full")
	assert.Contains(t, err.Error(), "write c: read-only")
}

func TestReport_AllWritten(t *testing.T) {
	r := &Report{Files: []FileResult{{Path: "a", Status: FileWritten}}}
	assert.True(t, r.OK())
	assert.NoError(t, r.Err())
	assert.Empty(t, r.Failed())
}

func TestReport_Empty(t *testing.T) {
	r := &Report{}
	assert.True(t, r.OK())
	assert.NoError(t, r.Err())
}
