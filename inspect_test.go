package ustar_test

import (
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/ustar"
	"github.com/meigma/ustar/testutil"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	data := testutil.MustAssemble(t,
		testutil.TextEntry("a.txt", "One two three\n"),
		testutil.BinaryEntry("b.bin", make([]byte, 600)),
	)

	s := ustar.Inspect(data)
	assert.Equal(t, 2, s.EntryCount)
	assert.Equal(t, int64(614), s.ContentBytes)
	assert.True(t, s.Terminated)
	assert.Equal(t, digest.FromBytes(data), s.Digest)
	require.NoError(t, s.Digest.Validate())
}

func TestInspectEmptyArchive(t *testing.T) {
	t.Parallel()

	s := ustar.Inspect(testutil.MustAssemble(t))
	assert.Zero(t, s.EntryCount)
	assert.Zero(t, s.ContentBytes)
	assert.True(t, s.Terminated)
}

func TestInspectGarbage(t *testing.T) {
	t.Parallel()

	s := ustar.Inspect(testutil.GarbageBlock())
	assert.Zero(t, s.EntryCount)
	assert.False(t, s.Terminated)
}

func TestInspectTruncated(t *testing.T) {
	t.Parallel()

	data := testutil.MustAssemble(t, testutil.TextEntry("a.txt", "One two three\n"))
	s := ustar.Inspect(data[:600])
	assert.Equal(t, 1, s.EntryCount)
	assert.Equal(t, int64(14), s.ContentBytes)
	assert.False(t, s.Terminated)
}

func TestInspectDigestIsStableIdentity(t *testing.T) {
	t.Parallel()

	data := testutil.MustAssemble(t, testutil.TextEntry("a.txt", "same\n"))
	again := testutil.MustAssemble(t, testutil.TextEntry("a.txt", "same\n"))
	assert.Equal(t, ustar.Inspect(data).Digest, ustar.Inspect(again).Digest)

	other := testutil.MustAssemble(t, testutil.TextEntry("a.txt", "diff\n"))
	assert.NotEqual(t, ustar.Inspect(data).Digest, ustar.Inspect(other).Digest)
}
