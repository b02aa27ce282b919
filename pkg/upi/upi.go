// Package upi builds UPI deep links and the QR image URLs that encode
// them. The QR rendering itself is delegated to an external image
// service; which service, and with what image parameters, is injected
// configuration so tests can substitute their own endpoint.
package upi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Config describes the QR image service request.
type Config struct {
	Endpoint   string
	Size       string
	Format     string
	Margin     int
	Color      string
	Background string
}

// DefaultConfig matches the hosted qrserver.com renderer.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.qrserver.com/v1/create-qr-code/",
		Size:       "200x200",
		Format:     "png",
		Margin:     10,
		Color:      "000000",
		Background: "FFFFFF",
	}
}

// PaymentURI builds the upi://pay deep link for the given payee and
// amount. The payee id is embedded verbatim; no format validation is
// performed, a malformed id simply produces a QR image encoding garbage.
func PaymentURI(payeeID string, total float64, payeeName, reference string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&tn=%s",
		payeeID,
		escape(payeeName),
		strconv.FormatFloat(total, 'f', -1, 64),
		escape("Payment for "+reference),
	)
}

// QRLink wraps the payment URI as a QR image request against the
// configured endpoint. It returns "" when no payee id is supplied.
func QRLink(cfg Config, payeeID string, total float64, payeeName, reference string) string {
	if payeeID == "" {
		return ""
	}
	uri := PaymentURI(payeeID, total, payeeName, reference)
	return fmt.Sprintf("%s?size=%s&format=%s&margin=%d&color=%s&bgcolor=%s&data=%s",
		cfg.Endpoint, cfg.Size, cfg.Format, cfg.Margin, cfg.Color, cfg.Background, escape(uri))
}

// escape percent-encodes like encodeURIComponent: spaces become %20,
// not '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
