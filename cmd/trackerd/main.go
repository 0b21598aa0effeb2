package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/pfa-labs/finance-tracker/internal/auth"
	"github.com/pfa-labs/finance-tracker/internal/common"
	"github.com/pfa-labs/finance-tracker/internal/export"
	"github.com/pfa-labs/finance-tracker/internal/extract"
	"github.com/pfa-labs/finance-tracker/internal/ingest"
	"github.com/pfa-labs/finance-tracker/internal/ocr"
	"github.com/pfa-labs/finance-tracker/internal/repository"
	"github.com/pfa-labs/finance-tracker/internal/server"
	"github.com/pfa-labs/finance-tracker/internal/transactions"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	usersRepo := repository.NewUserRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
	}, logger)

	srv := server.New(
		cfg.Server,
		auth.NewService(usersRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger),
		transactions.NewService(txRepo, logger),
		ingest.NewService(extract.NewOCRAdapter(extractor), cfg.OCR.UploadDir, logger),
		export.NewService(txRepo, logger),
		logger,
	)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
