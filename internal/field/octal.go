// Package field implements the fixed-width field codecs used by USTAR
// header blocks: zero-padded octal numerals and NUL-padded strings.
package field

import (
	"bytes"
	"errors"
	"strconv"
)

// ErrFieldOverflow is returned when a value needs more octal digits than
// its field provides.
var ErrFieldOverflow = errors.New("ustar: value overflows octal field")

// AppendOctal appends v to dst as exactly width ASCII octal digits,
// zero-padded on the left. Negative values and values needing more than
// width digits return ErrFieldOverflow.
func AppendOctal(dst []byte, width int, v int64) ([]byte, error) {
	if v < 0 || v >= 1<<(3*width) {
		return dst, ErrFieldOverflow
	}
	digits := strconv.FormatInt(v, 8)
	for range width - len(digits) {
		dst = append(dst, '0')
	}
	return append(dst, digits...), nil
}

// ParseOctal reads an octal numeral from a header field. One leading
// '0' pad byte is stripped, then surrounding spaces and NULs, and the
// remainder is parsed base 8. Any unparsable field reads as zero; that
// lenient default matches historical tar readers.
func ParseOctal(b []byte) int64 {
	b = bytes.TrimPrefix(b, []byte{'0'})
	s := string(bytes.Trim(b, " \x00"))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 8, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
