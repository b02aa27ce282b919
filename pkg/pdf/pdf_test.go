package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepress/invoicepress/pkg/invoice"
	"github.com/invoicepress/invoicepress/pkg/pdf"
)

func TestRenderProducesPDF(t *testing.T) {
	inv := &invoice.Invoice{
		InvoiceNumber: "INV-20240101-1234",
		CompanyName:   "Acme Co",
		ClientName:    "Globex",
		InvoiceDate:   "2024-01-01",
		DueDate:       "2024-01-31",
		Currency:      invoice.CurrencyINR,
		Items: []invoice.Item{
			{Name: "Design", Description: "Landing page", Quantity: 1, Rate: 1000, Amount: 1000},
		},
		DiscountType:  invoice.DiscountPercentage,
		DiscountValue: 10,
		BankName:      "Test Bank",
		UPIID:         "acme@bank",
		Notes:         "Thank you for your business.",
	}
	inv.ApplyBreakdown(invoice.ComputeFor(inv))

	out, err := pdf.Render(inv)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderEmptyInvoice(t *testing.T) {
	out, err := pdf.Render(&invoice.Invoice{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "invoice-INV-1.pdf", pdf.Filename(&invoice.Invoice{InvoiceNumber: "INV-1"}))
	assert.Equal(t, "invoice-draft.pdf", pdf.Filename(&invoice.Invoice{}))
}
