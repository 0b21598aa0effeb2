package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "OCR_REQUEST_TIMEOUT", "MAX_UPLOAD_BYTES", "DB_DSN", "PDFTOTEXT_BIN", "TESSERACT_BIN", "TESSERACT_LANG"} {
		t.Setenv(key, "")
	}
	cfg := LoadConfig()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Server.RequestTimeout != 60*time.Second {
		t.Errorf("RequestTimeout = %v, want 60s", cfg.Server.RequestTimeout)
	}
	if cfg.Server.MaxUploadBytes != 5<<20 {
		t.Errorf("MaxUploadBytes = %d, want %d", cfg.Server.MaxUploadBytes, 5<<20)
	}
	if cfg.Database.DSN != "file:pfa.db" {
		t.Errorf("DSN = %q, want file:pfa.db", cfg.Database.DSN)
	}
	if cfg.OCR.Pdftotext != "pdftotext" || cfg.OCR.Tesseract != "tesseract" {
		t.Errorf("tool binaries = %q, %q", cfg.OCR.Pdftotext, cfg.OCR.Tesseract)
	}
	if cfg.OCR.TesseractLang != "eng" {
		t.Errorf("TesseractLang = %q, want eng", cfg.OCR.TesseractLang)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("OCR_REQUEST_TIMEOUT", "30s")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("DB_DSN", "postgres://localhost/pfa")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TESSERACT_LANG", "deu")

	cfg := LoadConfig()
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.Server.RequestTimeout)
	}
	if cfg.Server.MaxUploadBytes != 1024 {
		t.Errorf("MaxUploadBytes = %d", cfg.Server.MaxUploadBytes)
	}
	if cfg.Database.DSN != "postgres://localhost/pfa" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.OCR.TesseractLang != "deu" {
		t.Errorf("TesseractLang = %q", cfg.OCR.TesseractLang)
	}
}

func TestLoadConfigIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("OCR_REQUEST_TIMEOUT", "soon")
	t.Setenv("MAX_UPLOAD_BYTES", "lots")

	cfg := LoadConfig()
	if cfg.Server.RequestTimeout != 60*time.Second {
		t.Errorf("RequestTimeout = %v, want default", cfg.Server.RequestTimeout)
	}
	if cfg.Server.MaxUploadBytes != 5<<20 {
		t.Errorf("MaxUploadBytes = %d, want default", cfg.Server.MaxUploadBytes)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Addr: ":8080"},
			Database: DatabaseConfig{DSN: "file:pfa.db"},
			Auth:     AuthConfig{JWTSecret: "s"},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing JWT secret accepted")
	}

	cfg = base()
	cfg.Database.DSN = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing DSN accepted")
	}

	cfg = base()
	cfg.Server.Addr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing addr accepted")
	}
}
