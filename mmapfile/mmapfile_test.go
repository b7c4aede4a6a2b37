package mmapfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenReadsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kernel.bin")
	want := []byte("a fake SPK kernel payload, padded out a bit")
	require.NoError(t, os.WriteFile(path, want, 0o644))

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, want, src.Bytes())
}

func TestOpenMissingFileErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}

func TestCloseIsIdempotentFriendly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kernel.bin")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	src, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, src.Close())
}
