package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pfa-labs/finance-tracker/internal/extract"
	"github.com/pfa-labs/finance-tracker/internal/parse"
	"github.com/pfa-labs/finance-tracker/internal/suggest"
)

// Service runs one receipt through extraction and inference. It owns the
// transient artifact for the duration of the call and removes it on every
// exit path. Requests are independent; no state is shared between calls.
type Service struct {
	extractor extract.TextExtractor
	uploadDir string
	logger    *slog.Logger
}

func NewService(tx extract.TextExtractor, uploadDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &Service{extractor: tx, uploadDir: uploadDir, logger: logger}
}

// Ingest extracts text from the uploaded receipt, infers amount and date and
// assembles a suggestion. Extraction failures are terminal for the request;
// there are no retries and no partial-text recovery.
func (s *Service) Ingest(ctx context.Context, up *Upload) (suggest.Suggestion, error) {
	if up == nil || up.Content == nil {
		return suggest.Suggestion{}, ErrNoFile
	}

	path, err := s.writeArtifact(up)
	if err != nil {
		return suggest.Suggestion{}, fmt.Errorf("write upload artifact: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			s.logger.Error("failed to remove upload artifact", "path", path, "error", err)
		}
	}()

	res, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return suggest.Suggestion{}, classifyExtractionError(err)
	}

	fields := parse.InferFields(res.Text)
	sg := suggest.Assemble(fields, res.Text)

	s.logger.Info("receipt ingested",
		"filename", up.Filename,
		"method", res.Method,
		"pages", res.Pages,
		"text_bytes", len(res.Text),
		"amount_found", fields.Amount != nil,
		"date_found", fields.Date != nil,
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return sg, nil
}

// writeArtifact stores the upload under a collision-free random name, keeping
// the original extension so the extractor dispatches the same way the
// uploaded filename would.
func (s *Service) writeArtifact(up *Upload) (string, error) {
	name := uuid.New().String() + filepath.Ext(up.Filename)
	path := filepath.Join(s.uploadDir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, up.Content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

// classifyExtractionError separates "your file is unreadable" from "the
// engine is unavailable". A missing binary or a cancelled context is an
// engine fault; anything the tool rejected is blamed on the file.
func classifyExtractionError(err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
}
