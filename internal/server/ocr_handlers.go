package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/pfa-labs/finance-tracker/internal/ingest"
)

// handleReceiptUpload runs the receipt pipeline: multipart upload in,
// suggested transaction out. The boundary timeout lives here; once it
// elapses the whole ingestion is failed and the orchestrator's cleanup
// guarantee still applies.
func (s *Server) handleReceiptUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeDomainError(w, ingest.ErrNoFile)
		return
	}
	defer file.Close()

	ctx := r.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	sg, err := s.ingester.Ingest(ctx, &ingest.Upload{
		Filename: header.Filename,
		Content:  file,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"suggestion": sg,
	})
}
