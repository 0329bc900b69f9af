package ustar

import (
	"errors"

	"github.com/meigma/ustar/internal/field"
)

// ErrFieldOverflow is returned when a numeric header value cannot be
// represented in its fixed-width octal field.
var ErrFieldOverflow = field.ErrFieldOverflow

// Sentinel errors reported by strict extraction. The default lenient
// mode never returns them; it absorbs the same conditions into
// best-effort defaults or silent termination.
var (
	// ErrMalformedHeader is returned when a non-zero block lacks the
	// USTAR magic where a header was expected.
	ErrMalformedHeader = errors.New("ustar: malformed header block")

	// ErrChecksumMismatch is returned when a header's recorded checksum
	// disagrees with the computed one.
	ErrChecksumMismatch = errors.New("ustar: header checksum mismatch")

	// ErrTruncatedArchive is returned when declared content runs past
	// the end of the input, or the input ends without a terminator.
	ErrTruncatedArchive = errors.New("ustar: truncated archive")

	// ErrShortBlock is returned when the input ends partway through a
	// 512-byte block.
	ErrShortBlock = errors.New("ustar: short block")
)
