package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/", cfg.QR.Endpoint)
	assert.Equal(t, "200x200", cfg.QR.Size)
	assert.False(t, cfg.UploadsEnabled())
	assert.Error(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/invoices")
	t.Setenv("QR_ENDPOINT", "http://qr.internal/render")
	t.Setenv("QR_MARGIN", "4")
	t.Setenv("S3_REGION", "ap-south-1")
	t.Setenv("S3_BUCKET", "invoice-logos")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr())
	assert.Equal(t, "http://qr.internal/render", cfg.QR.Endpoint)
	assert.Equal(t, 4, cfg.QR.Margin)
	assert.True(t, cfg.UploadsEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoadBadMargin(t *testing.T) {
	t.Setenv("QR_MARGIN", "wide")
	_, err := Load()
	assert.Error(t, err)
}

func TestHTTPAddr(t *testing.T) {
	assert.Equal(t, ":8080", (&Config{}).HTTPAddr())
	assert.Equal(t, ":3000", (&Config{Port: "3000"}).HTTPAddr())
	assert.Equal(t, ":3000", (&Config{Port: ":3000"}).HTTPAddr())
}
