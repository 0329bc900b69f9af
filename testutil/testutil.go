// Package testutil provides canned entries and archive fragments for
// tests of the ustar codec.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meigma/ustar"
)

// FixedModTime is an arbitrary stable timestamp so assembled test
// archives are reproducible.
var FixedModTime = time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)

// TextEntry builds a regular-file entry with text content.
func TextEntry(name, content string) ustar.Entry {
	return ustar.Entry{
		Header: ustar.Header{
			Name:    name,
			Mode:    0o644,
			ModTime: FixedModTime,
		},
		Content: ustar.Text(content),
	}
}

// BinaryEntry builds a regular-file entry with raw byte content.
func BinaryEntry(name string, content []byte) ustar.Entry {
	return ustar.Entry{
		Header: ustar.Header{
			Name:    name,
			Mode:    0o644,
			ModTime: FixedModTime,
		},
		Content: ustar.Binary(content),
	}
}

// MustAssemble assembles entries or fails the test.
func MustAssemble(t *testing.T, entries ...ustar.Entry) []byte {
	t.Helper()
	data, err := ustar.Assemble(entries)
	require.NoError(t, err)
	return data
}

// MustEncodeHeader encodes h or fails the test.
func MustEncodeHeader(t *testing.T, h ustar.Header) []byte {
	t.Helper()
	block, err := ustar.EncodeHeader(h)
	require.NoError(t, err)
	return block
}

// ZeroBlock returns one all-zero 512-byte block.
func ZeroBlock() []byte {
	return make([]byte, ustar.BlockSize)
}

// GarbageBlock returns a 512-byte block that is neither a valid header
// nor a terminator.
func GarbageBlock() []byte {
	b := make([]byte, ustar.BlockSize)
	for i := range b {
		b[i] = byte('A' + i%26)
	}
	return b
}
