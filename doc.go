// Package ustar encodes and decodes tape archives in the POSIX USTAR
// subset of the tar format.
//
// The package is a pure in-memory codec: it turns an ordered list of
// (header, content) entries into a single archive byte stream and parses
// such a stream back into entries. There is no file-system, network, or
// streaming surface; callers own all I/O.
//
// # Quick start
//
// Build an archive:
//
//	data, err := ustar.Assemble([]ustar.Entry{
//	    {Header: ustar.Header{Name: "a.txt", Mode: 0o644}, Content: ustar.Text("hello\n")},
//	    {Header: ustar.Header{Name: "b.bin", Mode: 0o600}, Content: ustar.Binary(raw)},
//	})
//
// Read it back:
//
//	entries, err := ustar.Extract(data)
//
// # Leniency
//
// Extraction is lenient by default, matching historical tar readers: a
// block without the "ustar" magic ends extraction silently, an
// unparsable size field reads as zero, and a header with an empty name
// yields [UnknownName]. Pass [ExtractStrict] to instead get
// [ErrMalformedHeader], [ErrChecksumMismatch], or [ErrTruncatedArchive]
// for the corresponding anomalies.
//
// # Format limits
//
// USTAR fixed-width fields bound every entry: names and link targets to
// 100 bytes, user and group names to 32, the name prefix to 168, and
// numeric fields to their octal widths. String fields are silently
// truncated; numeric overflow is reported as [ErrFieldOverflow].
// Compression, sparse files, and the GNU and PAX extensions are out of
// scope.
package ustar
