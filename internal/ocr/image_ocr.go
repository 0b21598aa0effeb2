package ocr

import (
	"context"
	"fmt"

	"github.com/pfa-labs/finance-tracker/constants"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	txt, err := e.tesseractOCR(ctx, path)
	if err != nil {
		return ExtractionResult{SourceType: constants.Image}, err
	}
	return ExtractionResult{
		Text:       Normalize(txt),
		Pages:      1,
		SourceType: constants.Image,
		Method:     "image-ocr",
		Language:   e.cfg.TesseractLang,
	}, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		e.logger.Error("tesseract failed", "path", path, "stderr", truncate(string(errb), 8<<10), "error", err)
		return "", fmt.Errorf("tesseract: %w", err)
	}

	// strip obvious box-drawing line noise
	return reBoxNoise.ReplaceAllString(string(out), ""), nil
}
