package extract

import (
	"context"
	"time"

	"github.com/pfa-labs/finance-tracker/constants"
)

// TextExtractor turns a receipt file into raw text. Absence of recognizable
// text is an empty string, not an error; errors mean the file or the engine
// could not be used at all.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType constants.FileFormat
	Method     string // "pdf-text" | "image-ocr"
	Language   string
	Duration   time.Duration
}
