package ustar

import (
	"fmt"
	"log/slog"
)

// terminatorLen is the size of the trailing end-of-archive marker: two
// zero-filled blocks.
const terminatorLen = 2 * BlockSize

// assembleConfig holds configuration for archive assembly.
type assembleConfig struct {
	logger *slog.Logger
}

// AssembleOption configures archive assembly.
type AssembleOption func(*assembleConfig)

// AssembleWithLogger sets the logger used during assembly. By default
// nothing is logged.
func AssembleWithLogger(l *slog.Logger) AssembleOption {
	return func(cfg *assembleConfig) {
		cfg.logger = l
	}
}

func (cfg *assembleConfig) log() *slog.Logger {
	if cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.logger
}

// Assemble serializes entries into a single archive byte stream: one
// header block per entry, its content zero-padded to a block boundary,
// then the two-block terminator.
//
// Assemble is authoritative over entry sizes: each header's Size field
// is recomputed from the actual content length before encoding, so a
// stale caller-declared size can never disagree with the stream.
// Entries appear in exactly the order given. The input is not mutated;
// the returned buffer is freshly allocated.
func Assemble(entries []Entry, opts ...AssembleOption) ([]byte, error) {
	cfg := assembleConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.log().Info("assembling archive", "entries", len(entries))

	total := int64(terminatorLen)
	for _, e := range entries {
		total += BlockSize + PaddedLength(int64(contentBytes(e.Content)))
	}
	out := make([]byte, 0, total)

	for i, e := range entries {
		var data []byte
		if e.Content != nil {
			data = e.Content.Bytes()
		}

		hdr := e.Header
		hdr.Size = int64(len(data))
		block, err := EncodeHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, hdr.Name, err)
		}

		out = append(out, block...)
		out = append(out, data...)
		out = out[:PaddedLength(int64(len(out)))]
		cfg.log().Debug("entry assembled", "name", hdr.Name, "size", hdr.Size)
	}

	out = append(out, make([]byte, terminatorLen)...)
	cfg.log().Info("archive assembled", "bytes", len(out))
	return out, nil
}

func contentBytes(c Content) int {
	if c == nil {
		return 0
	}
	return len(c.Bytes())
}
