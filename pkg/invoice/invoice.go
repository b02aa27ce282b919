package invoice

import "time"

// DiscountType selects how a discount value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Supported display currencies. Currency never changes the arithmetic,
// only the symbol shown on rendered output.
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
)

// Invoice themes for rendered output.
const (
	ThemeClassic = "classic"
	ThemeModern  = "modern"
	ThemeBold    = "bold"
)

// DefaultTaxPercent is applied for SGST and CGST when no rate is supplied.
const DefaultTaxPercent = 9.0

// Item represents a line item on an invoice. Amount is stored as given;
// it is expected to equal Quantity * Rate but is never recomputed by the
// totals composer.
type Item struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Meaningful reports whether the item contributes to the subtotal.
// Rows left completely blank by the form are ignored.
func (it Item) Meaningful() bool {
	return it.Name != "" || it.Description != ""
}

// Invoice is the full invoice document as persisted. Derived fields
// (Subtotal through Total, and QRCodeURL) are always produced by
// ComputeTotals and upi.QRLink so that saved, previewed and exported
// numbers never diverge.
type Invoice struct {
	ID            string `json:"id,omitempty"`
	InvoiceNumber string `json:"invoiceNumber"`

	CompanyName    string `json:"companyName"`
	CompanyGST     string `json:"companyGST,omitempty"`
	CompanyAddress string `json:"companyAddress,omitempty"`
	LogoURL        string `json:"logoUrl,omitempty"`

	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail,omitempty"`
	ClientGST     string `json:"clientGST,omitempty"`
	ClientAddress string `json:"clientAddress,omitempty"`

	InvoiceDate string `json:"invoiceDate"`
	DueDate     string `json:"dueDate"`

	Items []Item `json:"items"`

	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
	SGSTPercent   *float64     `json:"sgstPercent,omitempty"`
	CGSTPercent   *float64     `json:"cgstPercent,omitempty"`

	Currency string `json:"currency"`
	Theme    string `json:"theme"`

	Notes              string `json:"notes,omitempty"`
	TermsAndConditions string `json:"termsAndConditions,omitempty"`

	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSCCode      string `json:"ifscCode,omitempty"`
	BranchName    string `json:"branchName,omitempty"`
	UPIID         string `json:"upiId,omitempty"`

	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	SGSTAmount     float64 `json:"sgstAmount"`
	CGSTAmount     float64 `json:"cgstAmount"`
	Total          float64 `json:"total"`
	QRCodeURL      string  `json:"qrCodeUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// ResolvedSGSTPercent returns the SGST rate, defaulting when absent.
func (inv *Invoice) ResolvedSGSTPercent() float64 {
	if inv.SGSTPercent == nil {
		return DefaultTaxPercent
	}
	return *inv.SGSTPercent
}

// ResolvedCGSTPercent returns the CGST rate, defaulting when absent.
func (inv *Invoice) ResolvedCGSTPercent() float64 {
	if inv.CGSTPercent == nil {
		return DefaultTaxPercent
	}
	return *inv.CGSTPercent
}

// ApplyBreakdown copies a computed breakdown onto the document.
func (inv *Invoice) ApplyBreakdown(b Breakdown) {
	inv.Subtotal = b.Subtotal
	inv.DiscountAmount = b.DiscountAmount
	inv.SGSTAmount = b.SGSTAmount
	inv.CGSTAmount = b.CGSTAmount
	inv.Total = b.Total
}
