package ustar

// Content is the payload of an archive entry. It is a closed sum of
// Text and Binary; both collapse to a byte sequence only when the
// archive is laid out.
type Content interface {
	// Bytes returns the payload as a byte sequence. The result must not
	// be mutated by the codec.
	Bytes() []byte
}

// Text is character content, encoded as its UTF-8 bytes.
type Text string

// Bytes implements Content.
func (t Text) Bytes() []byte { return []byte(t) }

// Binary is opaque byte content.
type Binary []byte

// Bytes implements Content.
func (b Binary) Bytes() []byte { return b }

// Entry pairs a header with its content. Extraction always yields
// Binary content; the text/binary distinction exists only on the way in.
type Entry struct {
	Header  Header
	Content Content
}

var (
	_ Content = Text("")
	_ Content = Binary(nil)
)
