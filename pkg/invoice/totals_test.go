package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepress/invoicepress/pkg/invoice"
)

func ptr(v float64) *float64 { return &v }

func TestSubtotalSkipsBlankItems(t *testing.T) {
	items := []invoice.Item{
		{Name: "Design", Quantity: 2, Rate: 100, Amount: 200},
		{Description: "Hosting", Quantity: 1, Rate: 50, Amount: 50},
		{Quantity: 3, Rate: 10, Amount: 30}, // blank row, ignored
	}
	assert.Equal(t, 250.0, invoice.Subtotal(items))
}

func TestSubtotalTrustsStoredAmount(t *testing.T) {
	// Amount is taken as given even when it disagrees with qty*rate.
	items := []invoice.Item{{Name: "Consulting", Quantity: 2, Rate: 100, Amount: 999}}
	assert.Equal(t, 999.0, invoice.Subtotal(items))
}

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		typ      invoice.DiscountType
		value    float64
		want     float64
	}{
		{"zero value", 1000, invoice.DiscountPercentage, 0, 0},
		{"negative value", 1000, invoice.DiscountPercentage, -5, 0},
		{"ten percent", 1000, invoice.DiscountPercentage, 10, 100},
		{"hundred percent", 1000, invoice.DiscountPercentage, 100, 1000},
		{"fixed", 1000, invoice.DiscountFixed, 150, 150},
		{"fixed exceeding subtotal", 100, invoice.DiscountFixed, 150, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.DiscountAmount(tt.subtotal, tt.typ, tt.value))
		})
	}
}

func TestComputeTotalsOrdering(t *testing.T) {
	// Taxes apply to the discounted subtotal, not the raw subtotal.
	b := invoice.ComputeTotals(invoice.TotalsInput{
		Items:         []invoice.Item{{Name: "Work", Quantity: 1, Rate: 1000, Amount: 1000}},
		DiscountType:  invoice.DiscountPercentage,
		DiscountValue: 10,
		SGSTPercent:   ptr(9),
		CGSTPercent:   ptr(9),
	})
	assert.Equal(t, 1000.0, b.Subtotal)
	assert.Equal(t, 100.0, b.DiscountAmount)
	assert.Equal(t, 81.0, b.SGSTAmount)
	assert.Equal(t, 81.0, b.CGSTAmount)
	assert.Equal(t, 1062.0, b.Total)
}

func TestComputeTotalsDefaults(t *testing.T) {
	// Absent tax rates resolve to 9% each; absent discount type means
	// percentage with a zero value.
	b := invoice.ComputeTotals(invoice.TotalsInput{
		Items: []invoice.Item{{Name: "Work", Amount: 100}},
	})
	assert.Equal(t, 100.0, b.Subtotal)
	assert.Equal(t, 0.0, b.DiscountAmount)
	assert.Equal(t, 9.0, b.SGSTAmount)
	assert.Equal(t, 9.0, b.CGSTAmount)
	assert.Equal(t, 118.0, b.Total)
}

func TestComputeTotalsZeroTaxRates(t *testing.T) {
	// An explicit zero is not "absent" and must not fall back to 9%.
	b := invoice.ComputeTotals(invoice.TotalsInput{
		Items:       []invoice.Item{{Name: "Work", Amount: 100}},
		SGSTPercent: ptr(0),
		CGSTPercent: ptr(0),
	})
	assert.Equal(t, 0.0, b.SGSTAmount)
	assert.Equal(t, 0.0, b.CGSTAmount)
	assert.Equal(t, 100.0, b.Total)
}

func TestComputeTotalsFixedDiscountExceedingSubtotal(t *testing.T) {
	// Oversized fixed discounts are not clamped; the negative discounted
	// subtotal propagates into taxes and the total.
	b := invoice.ComputeTotals(invoice.TotalsInput{
		Items:         []invoice.Item{{Name: "Work", Amount: 100}},
		DiscountType:  invoice.DiscountFixed,
		DiscountValue: 150,
		SGSTPercent:   ptr(10),
		CGSTPercent:   ptr(10),
	})
	assert.Equal(t, 100.0, b.Subtotal)
	assert.Equal(t, 150.0, b.DiscountAmount)
	assert.Equal(t, -5.0, b.SGSTAmount)
	assert.Equal(t, -5.0, b.CGSTAmount)
	assert.Equal(t, -60.0, b.Total)
}

func TestComputeTotalsPure(t *testing.T) {
	in := invoice.TotalsInput{
		Items:         []invoice.Item{{Name: "A", Amount: 123.45}, {Description: "B", Amount: 67.89}},
		DiscountType:  invoice.DiscountPercentage,
		DiscountValue: 12.5,
		SGSTPercent:   ptr(9),
		CGSTPercent:   ptr(9),
	}
	first := invoice.ComputeTotals(in)
	second := invoice.ComputeTotals(in)
	assert.Equal(t, first, second)
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	b := invoice.ComputeTotals(invoice.TotalsInput{SGSTPercent: ptr(9), CGSTPercent: ptr(9)})
	assert.Equal(t, invoice.Breakdown{}, b)
}

func TestComputeForMatchesComputeTotals(t *testing.T) {
	inv := &invoice.Invoice{
		Items:         []invoice.Item{{Name: "Work", Amount: 1000}},
		DiscountType:  invoice.DiscountPercentage,
		DiscountValue: 10,
	}
	b := invoice.ComputeFor(inv)
	require.Equal(t, 1062.0, b.Total)

	inv.ApplyBreakdown(b)
	assert.Equal(t, b.Subtotal, inv.Subtotal)
	assert.Equal(t, b.DiscountAmount, inv.DiscountAmount)
	assert.Equal(t, b.SGSTAmount, inv.SGSTAmount)
	assert.Equal(t, b.CGSTAmount, inv.CGSTAmount)
	assert.Equal(t, b.Total, inv.Total)
}
