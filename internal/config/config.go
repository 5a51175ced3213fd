package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is loaded from the environment at startup. Secrets have no
// defaults: a missing value is a startup error, never a silent fallback.
type Config struct {
	// Database
	DatabaseURL string

	// Tokens
	JWTSecretKey       string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	OTPValidity        time.Duration

	// Outbound mail
	SMTPServer   string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromEmail    string

	// Initial superadmin identity
	SuperadminEmail    string
	SuperadminUsername string
	SuperadminPassword string

	// Server
	Port        string
	CORSOrigins string
	SentryDSN   string
}

const minSecretLen = 32

// Load reads an optional .env file, then the environment, and validates the
// result. The returned error enumerates every missing or invalid required
// field, not just the first, so a broken deployment is diagnosable in one
// pass. Callers must treat any error as fatal.
func Load() (*Config, error) {
	// A missing .env is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load()

	var problems []error
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		AccessTokenExpiry:  time.Duration(getInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30, &problems)) * time.Minute,
		RefreshTokenExpiry: time.Duration(getInt("REFRESH_TOKEN_EXPIRE_DAYS", 7, &problems)) * 24 * time.Hour,
		OTPValidity:        time.Duration(getInt("OTP_VALIDITY_MINUTES", 10, &problems)) * time.Minute,

		SMTPServer:   os.Getenv("SMTP_SERVER"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		FromEmail:    os.Getenv("FROM_EMAIL"),

		SuperadminEmail:    os.Getenv("SUPERADMIN_EMAIL"),
		SuperadminUsername: os.Getenv("SUPERADMIN_USERNAME"),
		SuperadminPassword: os.Getenv("SUPERADMIN_PASSWORD"),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		SentryDSN:   os.Getenv("SENTRY_DSN"),
	}

	if err := cfg.validate(problems); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate(problems []error) error {
	required := []struct {
		name  string
		value string
	}{
		{"database_url", c.DatabaseURL},
		{"jwt_secret_key", c.JWTSecretKey},
		{"smtp_server", c.SMTPServer},
		{"smtp_username", c.SMTPUsername},
		{"smtp_password", c.SMTPPassword},
		{"from_email", c.FromEmail},
		{"superadmin_email", c.SuperadminEmail},
		{"superadmin_username", c.SuperadminUsername},
		{"superadmin_password", c.SuperadminPassword},
	}

	for _, f := range required {
		if f.value == "" {
			problems = append(problems, fmt.Errorf("%s: required but not set", f.name))
		}
	}
	if c.JWTSecretKey != "" && len(c.JWTSecretKey) < minSecretLen {
		problems = append(problems,
			fmt.Errorf("jwt_secret_key: must be at least %d characters", minSecretLen))
	}
	return errors.Join(problems...)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getInt reads a positive integer. A set-but-broken value is a validation
// error, never a silent fallback to the default.
func getInt(key string, fallback int, problems *[]error) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		*problems = append(*problems,
			fmt.Errorf("%s: must be a positive integer, got %q", strings.ToLower(key), val))
		return fallback
	}
	return n
}
