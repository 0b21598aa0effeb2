package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	OCR      OCRConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr            string
	RequestTimeout  time.Duration // boundary timeout for receipt ingestion
	MaxUploadBytes  int64
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database configuration. The DSN decides the driver:
// postgres:// selects pgx, anything else is treated as a SQLite path.
type DatabaseConfig struct {
	DSN string
}

// AuthConfig holds token issuance configuration.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// OCRConfig holds text-extraction tool configuration.
type OCRConfig struct {
	Pdftotext     string
	Tesseract     string
	TesseractLang string
	UploadDir     string // transient upload artifacts; "" -> os.TempDir()
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("ADDR", ":8080"),
			RequestTimeout:  getEnvAsDuration("OCR_REQUEST_TIMEOUT", 60*time.Second),
			MaxUploadBytes:  getEnvAsInt64("MAX_UPLOAD_BYTES", 5<<20),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", "file:pfa.db"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 24*time.Hour),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			UploadDir:     getEnv("UPLOAD_DIR", ""),
		},
	}
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return NewAppError("CONFIG_ERROR", "JWT_SECRET is required", ErrInvalidInput)
	}
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_DSN is required", ErrInvalidInput)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "ADDR is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
