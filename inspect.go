package ustar

import "github.com/opencontainers/go-digest"

// Summary describes an archive byte stream without materializing its
// content.
type Summary struct {
	// EntryCount is the number of entries the lenient reader finds.
	EntryCount int

	// ContentBytes is the sum of the declared content lengths.
	ContentBytes int64

	// Terminated reports whether the stream ends extraction at a full
	// two-block zero terminator.
	Terminated bool

	// Digest is the canonical digest of the entire stream, usable as a
	// stable identity for the archive bytes.
	Digest digest.Digest
}

// Inspect walks data with the lenient reader and summarizes it. Like
// lenient extraction it cannot fail; a buffer that starts with a
// non-header block is simply an empty, unterminated archive.
func Inspect(data []byte) Summary {
	s := Summary{Digest: digest.FromBytes(data)}

	off := int64(0)
	size := int64(len(data))
	for off+BlockSize <= size {
		block := data[off : off+BlockSize]
		if !IsHeader(block) {
			s.Terminated = off+terminatorLen <= size &&
				isZeroBlock(data[off:off+terminatorLen])
			return s
		}
		h := DecodeHeader(block)
		s.EntryCount++
		s.ContentBytes += h.Size

		padded := PaddedLength(h.Size)
		if off+BlockSize+padded > size {
			off = size
			break
		}
		off += BlockSize + padded
	}
	return s
}
