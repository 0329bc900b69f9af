package ustar

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/meigma/ustar/internal/field"
)

// TypeFlag is the single-byte link indicator of a header.
type TypeFlag byte

// Link indicators understood by this codec.
const (
	TypeRegular  TypeFlag = '0'
	TypeHardLink TypeFlag = '1'
	TypeSymlink  TypeFlag = '2'
)

// UnknownName is the placeholder substituted by lenient decoding when a
// header carries no usable file name.
const UnknownName = "unknownFileName"

const (
	headerMagic   = "ustar\x00"
	headerVersion = "00"
)

// Canonical byte offsets and widths of the header layout. The reserved
// device fields keep the reference layout: device-major is seven bytes,
// device-minor eight (its leading NUL doubling as the major field's
// terminator), which leaves 168 bytes for the name prefix.
const (
	offName     = 0
	lenName     = 100
	offMode     = 100
	offUID      = 108
	offGID      = 116
	offSize     = 124
	offModTime  = 136
	offChecksum = 148
	offTypeFlag = 156
	offLinkName = 157
	lenLinkName = 100
	offMagic    = 257
	offVersion  = 263
	offUName    = 265
	lenUName    = 32
	offGName    = 297
	lenGName    = 32
	offDevMajor = 329
	offDevMinor = 336
	offPrefix   = 344
	lenPrefix   = 168
)

// Header is the per-entry metadata record of a USTAR header block.
//
// String fields are truncated to their field widths on encode and
// NUL-stripped on decode. Numeric fields that cannot fit their octal
// widths make EncodeHeader fail with ErrFieldOverflow.
type Header struct {
	// Name is the file name, at most 100 bytes on the wire.
	Name string

	// Mode holds the permission bits; only the low nine bits are
	// encoded.
	Mode fs.FileMode

	// SetUID, SetGID, and Sticky are modeled but not encoded: the
	// header's reserved mode byte is emitted as a literal space for
	// byte compatibility with the reference stream.
	SetUID, SetGID, Sticky bool

	// UID and GID are numeric owner and group IDs, at most six octal
	// digits each.
	UID, GID int64

	// Size is the content byte length. Assemble overwrites it from the
	// actual content.
	Size int64

	// ModTime is the last-modification time, encoded as POSIX epoch
	// seconds. The zero time encodes as epoch zero.
	ModTime time.Time

	// TypeFlag is the link indicator; the zero value encodes as
	// TypeRegular.
	TypeFlag TypeFlag

	// LinkName is the target of a hard or symbolic link, at most 100
	// bytes on the wire.
	LinkName string

	// UName and GName are the owner user and group names, at most 32
	// bytes each.
	UName, GName string

	// Prefix is concatenated before Name by readers when Name alone is
	// too short; splitting a long name into Prefix and Name is the
	// caller's job. At most 168 bytes on the wire.
	Prefix string
}

// FullName returns Prefix concatenated with Name.
func (h Header) FullName() string {
	if h.Prefix == "" {
		return h.Name
	}
	return h.Prefix + h.Name
}

// EncodeHeader lays h out as a 512-byte USTAR header block. The block
// is freshly allocated and always exactly BlockSize long.
func EncodeHeader(h Header) ([]byte, error) {
	block := make([]byte, BlockSize)

	copy(block[offName:], field.Normalize(lenName, h.Name))

	// Mode: three literal zeros, one digit per permission triple, then
	// the reserved set-UID/set-GID/sticky byte (always a space) and a
	// NUL.
	perm := h.Mode & fs.ModePerm
	block[offMode+0] = '0'
	block[offMode+1] = '0'
	block[offMode+2] = '0'
	block[offMode+3] = '0' + byte(perm>>6&7)
	block[offMode+4] = '0' + byte(perm>>3&7)
	block[offMode+5] = '0' + byte(perm&7)
	block[offMode+6] = ' '
	block[offMode+7] = 0

	if err := putNumeric6(block[offUID:], h.UID); err != nil {
		return nil, fmt.Errorf("owner id %d: %w", h.UID, err)
	}
	if err := putNumeric6(block[offGID:], h.GID); err != nil {
		return nil, fmt.Errorf("group id %d: %w", h.GID, err)
	}
	if err := putNumeric11(block[offSize:], h.Size); err != nil {
		return nil, fmt.Errorf("size %d: %w", h.Size, err)
	}
	var epoch int64
	if !h.ModTime.IsZero() {
		epoch = h.ModTime.Unix()
	}
	if err := putNumeric11(block[offModTime:], epoch); err != nil {
		return nil, fmt.Errorf("mod time %d: %w", epoch, err)
	}

	flag := h.TypeFlag
	if flag == 0 {
		flag = TypeRegular
	}
	block[offTypeFlag] = byte(flag)

	copy(block[offLinkName:], field.Normalize(lenLinkName, h.LinkName))
	copy(block[offMagic:], headerMagic)
	copy(block[offVersion:], headerVersion)
	copy(block[offUName:], field.Normalize(lenUName, h.UName))
	copy(block[offGName:], field.Normalize(lenGName, h.GName))
	copy(block[offDevMajor:], "000000 ")
	copy(block[offDevMinor:], "\x00000000 ")
	copy(block[offPrefix:], field.Normalize(lenPrefix, h.Prefix))

	// Checksum goes in last, over the block with its own field blanked.
	sum, err := field.AppendOctal(nil, 6, Checksum(block))
	if err != nil {
		return nil, fmt.Errorf("checksum: %w", err)
	}
	copy(block[offChecksum:], sum)
	block[offChecksum+6] = 0
	block[offChecksum+7] = ' '

	return block, nil
}

// DecodeHeader extracts the metadata record from a header block. It is
// lenient by design: unparsable numeric fields read as zero and an
// empty name becomes UnknownName. The block must be at least BlockSize
// bytes; callers gate on IsHeader first.
func DecodeHeader(block []byte) Header {
	h := Header{
		Name:     field.Denormalize(block[offName : offName+lenName]),
		Mode:     fs.FileMode(field.ParseOctal(block[offMode:offUID])) & fs.ModePerm,
		UID:      field.ParseOctal(block[offUID:offGID]),
		GID:      field.ParseOctal(block[offGID:offSize]),
		Size:     field.ParseOctal(block[offSize:offModTime]),
		ModTime:  time.Unix(field.ParseOctal(block[offModTime:offChecksum]), 0).UTC(),
		TypeFlag: TypeFlag(block[offTypeFlag]),
		LinkName: field.Denormalize(block[offLinkName : offLinkName+lenLinkName]),
		UName:    field.Denormalize(block[offUName : offUName+lenUName]),
		GName:    field.Denormalize(block[offGName : offGName+lenGName]),
		Prefix:   field.Denormalize(block[offPrefix : offPrefix+lenPrefix]),
	}
	if h.Name == "" {
		h.Name = UnknownName
	}
	if h.TypeFlag == 0 {
		h.TypeFlag = TypeRegular
	}
	return h
}

// IsHeader reports whether block carries the USTAR magic. This is the
// sole discriminator between a file header and the zero-filled
// terminator; it does not validate the checksum.
func IsHeader(block []byte) bool {
	return len(block) >= offMagic+5 && string(block[offMagic:offMagic+5]) == "ustar"
}

// Checksum computes the header checksum: the sum of the unsigned byte
// values of the block, with the eight checksum bytes replaced by six
// spaces, a NUL, and a trailing space. Pure and deterministic.
func Checksum(block []byte) int64 {
	var sum int64
	for i, c := range block[:BlockSize] {
		if i >= offChecksum && i < offChecksum+8 {
			if i == offChecksum+6 {
				c = 0
			} else {
				c = ' '
			}
		}
		sum += int64(c)
	}
	return sum
}

// recordedChecksum reads the checksum stored in a header block.
func recordedChecksum(block []byte) int64 {
	return field.ParseOctal(block[offChecksum : offChecksum+8])
}

// putNumeric6 writes a six-digit octal numeral followed by a space and
// a NUL, the shape shared by the owner and group ID fields.
func putNumeric6(dst []byte, v int64) error {
	b, err := field.AppendOctal(nil, 6, v)
	if err != nil {
		return err
	}
	copy(dst, b)
	dst[6] = ' '
	dst[7] = 0
	return nil
}

// putNumeric11 writes an eleven-digit octal numeral followed by a
// space, the shape shared by the size and modification-time fields.
func putNumeric11(dst []byte, v int64) error {
	b, err := field.AppendOctal(nil, 11, v)
	if err != nil {
		return err
	}
	copy(dst, b)
	dst[11] = ' '
	return nil
}
