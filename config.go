package roofcms

import (
	"fmt"
	"os"
	"time"
)

// devTokenSecret is the signing secret used when ADMIN_TOKEN_SECRET is
// unset outside production. Verification still works, it is just not a
// secret anyone should deploy with.
const devTokenSecret = "dev-secret-change-me"

// Config holds all configuration for the CMS backend.
type Config struct {
	Addr string // Listen address (default ":3000")

	DataDir     string // JSON collection files (default "data")
	UploadsDir  string // Project images (default "public/uploads/projects")
	MessagesDir string // Localized UI copy, one JSON file per locale (default "messages")

	AdminPassword string        // Required in production: admin login password
	TokenSecret   string        // Required in production: HMAC key for session tokens
	SessionTTL    time.Duration // Session token lifetime (default 24h)

	Production   bool // Enables Secure cookies and strict secret checks
	CookieSecure bool // Set true for HTTPS; implied by Production
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.UploadsDir == "" {
		c.UploadsDir = "public/uploads/projects"
	}
	if c.MessagesDir == "" {
		c.MessagesDir = "messages"
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = 24 * time.Hour
	}
	if c.Production {
		c.CookieSecure = true
	}
}

// Validate reports deployment misconfiguration. A production deployment
// without an admin password or token secret must fail at startup rather
// than silently accept any login.
func (c *Config) Validate() error {
	if c.Production {
		if c.AdminPassword == "" {
			return fmt.Errorf("roofcms: ADMIN_PASSWORD is required in production")
		}
		if c.TokenSecret == "" {
			return fmt.Errorf("roofcms: ADMIN_TOKEN_SECRET is required in production")
		}
	}
	return nil
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() Config {
	return Config{
		Addr:          EnvOr("ADDR", ""),
		DataDir:       EnvOr("DATA_DIR", ""),
		UploadsDir:    EnvOr("UPLOADS_DIR", ""),
		MessagesDir:   EnvOr("MESSAGES_DIR", ""),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		TokenSecret:   os.Getenv("ADMIN_TOKEN_SECRET"),
		Production:    os.Getenv("APP_ENV") == "production",
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
