package ingest

import (
	"errors"
	"io"
)

// Ingestion failure taxonomy. The HTTP layer maps these with errors.Is;
// inference-level "no match" is never an error.
var (
	// ErrNoFile: the caller invoked ingestion without supplying a file.
	ErrNoFile = errors.New("no file provided")
	// ErrUnsupportedFile: the extraction tool could not parse the given bytes.
	ErrUnsupportedFile = errors.New("unsupported or corrupt file")
	// ErrExtractionFailed: the extraction engine itself is unavailable or faulted.
	ErrExtractionFailed = errors.New("text extraction failed")
)

// Upload is one uploaded receipt: its content and the original filename,
// whose extension alone decides the extraction strategy.
type Upload struct {
	Filename string
	Content  io.Reader
}
