package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pfa-labs/finance-tracker/internal/common"
	"github.com/pfa-labs/finance-tracker/internal/ingest"
	"github.com/pfa-labs/finance-tracker/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps internal error taxonomy to HTTP statuses. Messages
// stay actionable and free of internals.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ingest.ErrNoFile):
		writeError(w, http.StatusBadRequest, "No file uploaded")
	case errors.Is(err, ingest.ErrUnsupportedFile):
		writeError(w, http.StatusUnprocessableEntity, "Could not read file")
	case errors.Is(err, ingest.ErrExtractionFailed):
		writeError(w, http.StatusBadGateway, "Text extraction is unavailable")
	case errors.Is(err, repository.ErrEmailExists):
		writeError(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, common.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, appErrorMessage(err))
	case errors.Is(err, common.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		slog.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func appErrorMessage(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "invalid input"
}
