package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepress/invoicepress/pkg/invoice"
	"github.com/invoicepress/invoicepress/pkg/render"
)

func sampleInvoice() *invoice.Invoice {
	inv := &invoice.Invoice{
		InvoiceNumber: "INV-20240101-1234",
		CompanyName:   "Acme Co",
		ClientName:    "Globex",
		InvoiceDate:   "2024-01-01",
		DueDate:       "2024-01-31",
		Currency:      invoice.CurrencyINR,
		Theme:         invoice.ThemeClassic,
		Items: []invoice.Item{
			{Name: "Design", Description: "Landing page", Quantity: 1, Rate: 1000, Amount: 1000},
		},
		DiscountType:  invoice.DiscountPercentage,
		DiscountValue: 10,
	}
	inv.ApplyBreakdown(invoice.ComputeFor(inv))
	return inv
}

func TestWriteInvoiceRendersStoredBreakdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteInvoice(&buf, sampleInvoice(), false))

	html := buf.String()
	assert.Contains(t, html, "INV-20240101-1234")
	assert.Contains(t, html, "₹1000.00")
	assert.Contains(t, html, "₹81.00")
	assert.Contains(t, html, "₹1062.00")
	assert.Contains(t, html, "Discount (10%)")
	assert.NotContains(t, html, "window.print()")
}

func TestWriteInvoiceAutoPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteInvoice(&buf, sampleInvoice(), true))
	assert.Contains(t, buf.String(), "window.print()")
}

func TestMoneyUsesCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$12.50", render.Money(invoice.CurrencyUSD, 12.5))
	assert.Equal(t, "₹0.00", render.Money(invoice.CurrencyINR, 0))
	assert.Equal(t, "₹-60.00", render.Money("", -60))
}

func TestThemeFallback(t *testing.T) {
	assert.Equal(t, render.ThemeFor(invoice.ThemeClassic), render.ThemeFor("unknown"))
	assert.NotEqual(t, render.ThemeFor(invoice.ThemeModern), render.ThemeFor(invoice.ThemeBold))
}
