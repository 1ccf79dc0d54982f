package domain

// RawDocument is a local file before it is parsed into a Document.
type RawDocument struct {
	// Name is the file name or "stdin".
	Name string

	// MIMEType is the content type (e.g., "text/html").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
