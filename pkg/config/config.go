// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/invoicepress/invoicepress/pkg/upi"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	LogFormat   string

	S3Region string
	S3Bucket string

	QR upi.Config
}

// Load reads configuration from environment variables and an optional
// .env file. The QR endpoint and image parameters default to the hosted
// qrserver.com renderer but are fully overridable, so tests and
// self-hosted deployments can substitute their own.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	qr := upi.DefaultConfig()
	if v := k.String("QR_ENDPOINT"); v != "" {
		qr.Endpoint = v
	}
	if v := k.String("QR_SIZE"); v != "" {
		qr.Size = v
	}
	if v := k.String("QR_FORMAT"); v != "" {
		qr.Format = v
	}
	if v := k.String("QR_MARGIN"); v != "" {
		margin, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("QR_MARGIN: %w", err)
		}
		qr.Margin = margin
	}
	if v := k.String("QR_COLOR"); v != "" {
		qr.Color = v
	}
	if v := k.String("QR_BGCOLOR"); v != "" {
		qr.Background = v
	}

	cfg := &Config{
		Port:        valueOrDefault(k.String("PORT"), "8080"),
		DatabaseURL: k.String("DATABASE_URL"),
		LogLevel:    valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:   valueOrDefault(k.String("LOG_FORMAT"), "json"),
		S3Region:    k.String("S3_REGION"),
		S3Bucket:    k.String("S3_BUCKET"),
		QR:          qr,
	}
	return cfg, nil
}

// Validate checks settings required for a full production serve. Demo
// mode (in-memory store, uploads disabled) skips this.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// UploadsEnabled reports whether a logo upload backend is configured.
func (c *Config) UploadsEnabled() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
