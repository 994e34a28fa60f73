// Package config loads environment-sourced settings with development
// defaults. A .env file in the working directory is honoured when present.
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// DefaultSecretKey is the development-only cookie signing secret.
// Startup refuses to run in production with this value.
const DefaultSecretKey = "change-this-secret-key"

// Config holds all runtime settings.
type Config struct {
	// SecretKey signs session, CSRF and flash cookies.
	SecretKey string
	// DBPath is the SQLite database file.
	DBPath string
	// AdminPassword is the single shared admin credential. The default is
	// for local development only and must be overridden in any real
	// deployment.
	AdminPassword string
	// AdminEmail receives contact-form notifications.
	AdminEmail string
	// ResendKey enables outbound mail when set; empty selects the noop sender.
	ResendKey string
	// ResendFrom is the From address for outbound mail.
	ResendFrom string
	// UploadDir is the flat directory holding uploaded media.
	UploadDir string
	// Addr is the listen address.
	Addr string
	// Env is "development" or "production".
	Env string
}

// Load reads configuration from the environment, applying defaults.
// PRE: none
// POST: Every field except ResendKey has a value
func Load() Config {
	if err := godotenv.Load(); err == nil {
		slog.Info("env_file_loaded", "file", ".env")
	}

	return Config{
		SecretKey:     envOrDefault("CLUBSITE_SECRET_KEY", DefaultSecretKey),
		DBPath:        envOrDefault("CLUBSITE_DB_PATH", "clubsite.db"),
		AdminPassword: envOrDefault("CLUBSITE_ADMIN_PASSWORD", "thendral123"),
		AdminEmail:    envOrDefault("CLUBSITE_ADMIN_EMAIL", "thendrafriendsclub@gmail.com"),
		ResendKey:     os.Getenv("CLUBSITE_RESEND_KEY"),
		ResendFrom:    envOrDefault("CLUBSITE_RESEND_FROM", "Thendral Friends Club <noreply@example.org>"),
		UploadDir:     envOrDefault("CLUBSITE_UPLOAD_DIR", "static/uploads"),
		Addr:          envOrDefault("CLUBSITE_ADDR", ":8080"),
		Env:           envOrDefault("CLUBSITE_ENV", "development"),
	}
}

// IsProduction reports whether the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
