package ustar

import (
	"fmt"
	"log/slog"
)

// extractConfig holds configuration for archive extraction.
type extractConfig struct {
	logger *slog.Logger
	strict bool
}

// ExtractOption configures archive extraction.
type ExtractOption func(*extractConfig)

// ExtractWithLogger sets the logger used during extraction. By default
// nothing is logged.
func ExtractWithLogger(l *slog.Logger) ExtractOption {
	return func(cfg *extractConfig) {
		cfg.logger = l
	}
}

// ExtractStrict toggles strict extraction. The default lenient mode
// mirrors historical tar readers: any block without the USTAR magic
// ends extraction silently, whether it is the terminator or garbage,
// and truncated content yields whatever bytes are present.
//
// Strict mode tells the two apart and validates what it reads: an
// all-zero block is a clean terminator, any other non-header block is
// ErrMalformedHeader, a header whose stored checksum disagrees with the
// computed one is ErrChecksumMismatch, content running past the input
// is ErrTruncatedArchive, and an input that ends mid-block or without a
// terminator is ErrShortBlock or ErrTruncatedArchive respectively.
func ExtractStrict(strict bool) ExtractOption {
	return func(cfg *extractConfig) {
		cfg.strict = strict
	}
}

func (cfg *extractConfig) log() *slog.Logger {
	if cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.logger
}

// Extract parses an archive byte stream into its entries, in stream
// order. Content is always returned as Binary, freshly allocated and
// never padding-polluted. Entries already read are returned alongside
// any strict-mode error.
func Extract(data []byte, opts ...ExtractOption) ([]Entry, error) {
	cfg := extractConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.log().Info("extracting archive", "bytes", len(data), "strict", cfg.strict)

	entries := []Entry{}
	off := int64(0)
	size := int64(len(data))

	for off+BlockSize <= size {
		block := data[off : off+BlockSize]
		if !IsHeader(block) {
			if !cfg.strict {
				return entries, nil
			}
			if isZeroBlock(block) {
				return entries, nil
			}
			return entries, fmt.Errorf("offset %d: %w", off, ErrMalformedHeader)
		}
		if cfg.strict {
			if got, want := recordedChecksum(block), Checksum(block); got != want {
				return entries, fmt.Errorf("offset %d: recorded %#o, computed %#o: %w", off, got, want, ErrChecksumMismatch)
			}
		}

		h := DecodeHeader(block)
		off += BlockSize

		padded := PaddedLength(h.Size)
		if off+padded > size {
			if cfg.strict {
				return entries, fmt.Errorf("entry %q: need %d content bytes at offset %d: %w", h.Name, padded, off, ErrTruncatedArchive)
			}
			padded = size - off
		}
		content := Unpad(data[off:off+padded], h.Size)
		off += padded

		cfg.log().Debug("entry extracted", "name", h.Name, "size", h.Size)
		entries = append(entries, Entry{Header: h, Content: Binary(content)})
	}

	if cfg.strict {
		if off < size {
			return entries, fmt.Errorf("%d trailing bytes at offset %d: %w", size-off, off, ErrShortBlock)
		}
		return entries, fmt.Errorf("no terminator: %w", ErrTruncatedArchive)
	}
	return entries, nil
}
