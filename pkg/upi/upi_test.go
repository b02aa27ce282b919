package upi_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepress/invoicepress/pkg/upi"
)

func TestQRLinkEmptyPayee(t *testing.T) {
	assert.Equal(t, "", upi.QRLink(upi.DefaultConfig(), "", 100, "Acme", "INV-1"))
}

func TestQRLinkEncodesPaymentURI(t *testing.T) {
	link := upi.QRLink(upi.DefaultConfig(), "user@bank", 1062, "Acme Co", "INV-20240101-1234")
	require.NotEmpty(t, link)
	assert.True(t, strings.HasPrefix(link, "https://api.qrserver.com/v1/create-qr-code/?"))
	assert.Contains(t, link, "size=200x200")
	assert.Contains(t, link, "margin=10")
	assert.Contains(t, link, "color=000000")
	assert.Contains(t, link, "bgcolor=FFFFFF")

	// The data parameter decodes back to the UPI deep link.
	u, err := url.Parse(link)
	require.NoError(t, err)
	data := u.Query().Get("data")
	assert.Equal(t, "upi://pay?pa=user@bank&pn=Acme%20Co&am=1062&tn=Payment%20for%20INV-20240101-1234", data)
}

func TestPaymentURIFormatsAmounts(t *testing.T) {
	// Whole totals render without a decimal point, fractional ones keep it.
	assert.Contains(t, upi.PaymentURI("a@b", 1062, "X", "R"), "am=1062&")
	assert.Contains(t, upi.PaymentURI("a@b", 1062.5, "X", "R"), "am=1062.5&")
}

func TestQRLinkMalformedPayeePassesThrough(t *testing.T) {
	// No validation of payee ids: garbage is encoded as-is.
	link := upi.QRLink(upi.DefaultConfig(), "not a upi id", 10, "Acme", "INV-1")
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("data"), "pa=not a upi id")
}

func TestQRLinkUsesInjectedEndpoint(t *testing.T) {
	cfg := upi.Config{Endpoint: "http://qr.test/render", Size: "64x64", Format: "png", Margin: 1, Color: "111111", Background: "EEEEEE"}
	link := upi.QRLink(cfg, "user@bank", 5, "Acme", "INV-9")
	assert.True(t, strings.HasPrefix(link, "http://qr.test/render?size=64x64"))
}
