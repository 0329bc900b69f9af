package field

import "bytes"

// Normalize returns s as exactly width bytes: truncated if longer,
// right-padded with NULs if shorter.
func Normalize(width int, s string) []byte {
	b := make([]byte, width)
	copy(b, s)
	return b
}

// Denormalize strips every NUL byte, embedded ones included, and
// returns the remainder as a string.
func Denormalize(b []byte) string {
	return string(bytes.ReplaceAll(b, []byte{0}, nil))
}
