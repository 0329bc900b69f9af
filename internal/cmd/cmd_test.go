package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPackUnpackRoundTrip(t *testing.T) {
	srcDir := t.TempDir()
	workDir := t.TempDir()

	a := filepath.Join(srcDir, "a.txt")
	b := filepath.Join(srcDir, "b.bin")
	require.NoError(t, os.WriteFile(a, []byte("One two three\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte{0x00, 0xff, 0x42}, 0o600))

	archive := filepath.Join(workDir, "out.tar")
	out, err := execute(t, "pack", "-o", archive, a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "2 entries")

	info, err := os.Stat(archive)
	require.NoError(t, err)
	assert.Equal(t, int64(3072), info.Size(), "two header+content pairs plus terminator")

	destDir := t.TempDir()
	out, err = execute(t, "unpack", "-d", destDir, archive)
	require.NoError(t, err)
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.bin")

	gotA, err := os.ReadFile(filepath.Join(destDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("One two three\n"), gotA)

	gotB, err := os.ReadFile(filepath.Join(destDir, "b.bin"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x42}, gotB)
}

func TestListShowsEntries(t *testing.T) {
	srcDir := t.TempDir()
	a := filepath.Join(srcDir, "notes.txt")
	require.NoError(t, os.WriteFile(a, []byte("hello\n"), 0o644))

	archive := filepath.Join(t.TempDir(), "out.tar")
	_, err := execute(t, "pack", "-o", archive, a)
	require.NoError(t, err)

	out, err := execute(t, "list", archive)
	require.NoError(t, err)
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "1 entries, 6 content bytes")
	assert.Contains(t, out, "digest sha256:")
}

func TestPackRejectsDirectories(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(t.TempDir(), "out.tar")
	_, err := execute(t, "pack", "-o", archive, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestSafeJoin(t *testing.T) {
	t.Parallel()

	got, err := safeJoin("/tmp/out", "sub/file.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/out", "sub", "file.txt"), got)

	_, err = safeJoin("/tmp/out", "../escape.txt")
	require.Error(t, err)
}
