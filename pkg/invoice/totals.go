package invoice

// TotalsInput collects the raw inputs for one totals computation.
// A nil tax rate means "not supplied" and resolves to DefaultTaxPercent;
// an empty discount type resolves to percentage.
type TotalsInput struct {
	Items         []Item
	DiscountType  DiscountType
	DiscountValue float64
	SGSTPercent   *float64
	CGSTPercent   *float64
}

// Breakdown is the fully derived monetary result of one computation.
// Values can be negative: a fixed discount larger than the subtotal is
// not clamped and flows through taxes into the total.
type Breakdown struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	SGSTAmount     float64 `json:"sgstAmount"`
	CGSTAmount     float64 `json:"cgstAmount"`
	Total          float64 `json:"total"`
}

// Subtotal sums Amount over meaningful items. Amounts are trusted as
// stored, not recomputed from Quantity * Rate.
func Subtotal(items []Item) float64 {
	var sum float64
	for _, it := range items {
		if !it.Meaningful() {
			continue
		}
		sum += it.Amount
	}
	return sum
}

// DiscountAmount applies a discount spec to a subtotal. A non-positive
// value yields zero. Fixed discounts are taken verbatim, without capping
// at the subtotal.
func DiscountAmount(subtotal float64, typ DiscountType, value float64) float64 {
	if value <= 0 {
		return 0
	}
	if typ == DiscountFixed {
		return value
	}
	return subtotal * (value / 100)
}

// TaxAmount computes a single percentage tax on the given base. A
// negative base produces a negative tax amount.
func TaxAmount(base, percent float64) float64 {
	return base * (percent / 100)
}

// ComputeTotals is the single source of truth for invoice totals. It
// aggregates meaningful items, applies the discount, then applies SGST
// and CGST independently to the discounted subtotal, in that order.
// Every consumer (save, update, duplicate, PDF export, print view) must
// go through this function.
func ComputeTotals(in TotalsInput) Breakdown {
	typ := in.DiscountType
	if typ == "" {
		typ = DiscountPercentage
	}
	sgstPercent := DefaultTaxPercent
	if in.SGSTPercent != nil {
		sgstPercent = *in.SGSTPercent
	}
	cgstPercent := DefaultTaxPercent
	if in.CGSTPercent != nil {
		cgstPercent = *in.CGSTPercent
	}

	subtotal := Subtotal(in.Items)
	discountAmount := DiscountAmount(subtotal, typ, in.DiscountValue)
	discounted := subtotal - discountAmount
	sgstAmount := TaxAmount(discounted, sgstPercent)
	cgstAmount := TaxAmount(discounted, cgstPercent)

	return Breakdown{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		SGSTAmount:     sgstAmount,
		CGSTAmount:     cgstAmount,
		Total:          discounted + sgstAmount + cgstAmount,
	}
}

// ComputeFor runs ComputeTotals over an invoice document's own fields.
func ComputeFor(inv *Invoice) Breakdown {
	return ComputeTotals(TotalsInput{
		Items:         inv.Items,
		DiscountType:  inv.DiscountType,
		DiscountValue: inv.DiscountValue,
		SGSTPercent:   inv.SGSTPercent,
		CGSTPercent:   inv.CGSTPercent,
	})
}
