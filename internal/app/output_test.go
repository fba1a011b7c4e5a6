package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutput_Stdout(t *testing.T) {
	for _, path := range []string{"", StdoutPath} {
		var buf bytes.Buffer
		require.NoError(t, WriteOutput(path, []byte(`{"name":"Alice"}`), &buf))
		assert.Equal(t, "{\"name\":\"Alice\"}\n", buf.String())
	}
}

func TestWriteOutput_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	var stdout bytes.Buffer
	require.NoError(t, WriteOutput(path, []byte(`{}`), &stdout))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))
	assert.Empty(t, stdout.String(), "file output never touches stdout")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestWriteOutput_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(path, []byte("old contents that are longer\n"), 0o644))

	require.NoError(t, WriteOutput(path, []byte(`{"x":"9"}`), &bytes.Buffer{}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"x\":\"9\"}\n", string(got))
}

func TestWriteOutput_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")

	err := WriteOutput(path, []byte(`{}`), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create temporary file")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWriteOutput_StdoutFailure(t *testing.T) {
	err := WriteOutput("", []byte(`{}`), failingWriter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestWithNewline_DoesNotAliasInput(t *testing.T) {
	data := make([]byte, 2, 8)
	copy(data, "{}")
	out := withNewline(data)
	out[0] = 'X'
	assert.Equal(t, "{}", string(data))
}
