package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/pfa-labs/finance-tracker/constants"
)

func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		e.logger.Error("pdftotext failed", "path", path, "stderr", truncate(string(errb), 8<<10), "error", err)
		return ExtractionResult{SourceType: constants.PDF}, fmt.Errorf("pdftotext: %w", err)
	}
	text := string(out)
	// form feeds separate pages in pdftotext output
	pages := 1 + strings.Count(text, "\f")
	return ExtractionResult{
		Text:       Normalize(text),
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-text",
	}, nil
}
