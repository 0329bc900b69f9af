package ustar

// BlockSize is the USTAR block granularity. Headers occupy one block
// and content is zero-padded to a block boundary.
const BlockSize = 512

// PaddedLength rounds n up to the next multiple of BlockSize. For all
// n >= 0: PaddedLength(n) >= n, PaddedLength(n)-n < BlockSize, and the
// result is block-aligned.
func PaddedLength(n int64) int64 {
	if rem := n % BlockSize; rem != 0 {
		return n + (BlockSize - rem)
	}
	return n
}

// Pad returns a fresh buffer holding content followed by the zero bytes
// needed to reach a block boundary.
func Pad(content []byte) []byte {
	b := make([]byte, PaddedLength(int64(len(content))))
	copy(b, content)
	return b
}

// Unpad returns the first n bytes of a block-aligned buffer as a fresh
// copy; the trailing padding is discardable filler. When the buffer
// holds fewer than n bytes, everything available is returned.
func Unpad(b []byte, n int64) []byte {
	if n > int64(len(b)) {
		n = int64(len(b))
	}
	out := make([]byte, n)
	copy(out, b[:n])
	return out
}

// isZeroBlock reports whether b is all zero bytes.
func isZeroBlock(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
