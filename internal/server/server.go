// Package server wires the HTTP surface of the tracker: auth, transactions,
// and the receipt ingestion endpoint.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/pfa-labs/finance-tracker/internal/auth"
	"github.com/pfa-labs/finance-tracker/internal/common"
	"github.com/pfa-labs/finance-tracker/internal/export"
	"github.com/pfa-labs/finance-tracker/internal/ingest"
	"github.com/pfa-labs/finance-tracker/internal/suggest"
	"github.com/pfa-labs/finance-tracker/internal/transactions"
)

// ReceiptIngester is the pipeline behavior the OCR endpoint depends on.
type ReceiptIngester interface {
	Ingest(ctx context.Context, up *ingest.Upload) (suggest.Suggestion, error)
}

type Server struct {
	cfg      common.ServerConfig
	auth     *auth.Service
	tx       *transactions.Service
	ingester ReceiptIngester
	exporter *export.Service
	logger   *slog.Logger
}

func New(cfg common.ServerConfig, authSvc *auth.Service, txSvc *transactions.Service, ing ReceiptIngester, exp *export.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:      cfg,
		auth:     authSvc,
		tx:       txSvc,
		ingester: ing,
		exporter: exp,
		logger:   logger,
	}
}

// Handler assembles routes and middleware. All transaction and OCR routes
// require a bearer token; register/login and health do not.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	authed := requireAuth(s.auth)
	mux.Handle("POST /api/ocr/receipt", authed(http.HandlerFunc(s.handleReceiptUpload)))
	mux.Handle("POST /api/transactions", authed(http.HandlerFunc(s.handleCreateTransaction)))
	mux.Handle("GET /api/transactions", authed(http.HandlerFunc(s.handleListTransactions)))
	mux.Handle("GET /api/transactions/export", authed(http.HandlerFunc(s.handleExportTransactions)))
	mux.Handle("GET /api/transactions/summary/by-category", authed(http.HandlerFunc(s.handleSummaryByCategory)))
	mux.Handle("GET /api/transactions/summary/by-date", authed(http.HandlerFunc(s.handleSummaryByDate)))
	mux.Handle("GET /api/transactions/{id}", authed(http.HandlerFunc(s.handleGetTransaction)))
	mux.Handle("PUT /api/transactions/{id}", authed(http.HandlerFunc(s.handleUpdateTransaction)))
	mux.Handle("DELETE /api/transactions/{id}", authed(http.HandlerFunc(s.handleDeleteTransaction)))

	var h http.Handler = mux
	h = recovery(s.logger)(h)
	h = logging(s.logger)(h)
	h = requestID(h)
	h = cors.AllowAll().Handler(h)
	return h
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
