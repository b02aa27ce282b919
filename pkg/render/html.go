// Package render produces the printable HTML view of an invoice. The
// same stored breakdown drives this view, the PDF export and the API
// responses; nothing is recomputed here.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/invoicepress/invoicepress/pkg/invoice"
)

// Theme holds the accent colors for a rendered invoice.
type Theme struct {
	Accent string
	Muted  string
}

// ThemeFor maps a theme name to its palette. Unknown names fall back to
// classic.
func ThemeFor(name string) Theme {
	switch name {
	case invoice.ThemeModern:
		return Theme{Accent: "#4338ca", Muted: "#6366f1"}
	case invoice.ThemeBold:
		return Theme{Accent: "#b91c1c", Muted: "#ef4444"}
	default:
		return Theme{Accent: "#1f2937", Muted: "#6b7280"}
	}
}

// Symbol returns the display symbol for a currency code. Currency never
// affects arithmetic, only rendering.
func Symbol(currency string) string {
	if currency == invoice.CurrencyUSD {
		return "$"
	}
	return "₹"
}

// Money formats an amount with the invoice's currency symbol and fixed
// two decimals.
func Money(currency string, amount float64) string {
	return Symbol(currency) + fmt.Sprintf("%.2f", amount)
}

type pageData struct {
	Inv       *invoice.Invoice
	Theme     Theme
	AutoPrint bool
}

var funcs = template.FuncMap{
	"money": Money,
	"pct": func(p *float64) float64 {
		if p == nil {
			return invoice.DefaultTaxPercent
		}
		return *p
	},
}

var page = template.Must(template.New("invoice").Funcs(funcs).Parse(pageTemplate))

// WriteInvoice renders the invoice document as a standalone HTML page.
// When autoPrint is set the page opens the browser print dialog once
// loaded, mirroring a print-window flow.
func WriteInvoice(w io.Writer, inv *invoice.Invoice, autoPrint bool) error {
	return page.Execute(w, pageData{Inv: inv, Theme: ThemeFor(inv.Theme), AutoPrint: autoPrint})
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.Inv.InvoiceNumber}}</title>
<style>
  body { margin: 0; font-family: 'Inter', sans-serif; color: #374151; background: #ffffff; font-size: 14px; line-height: 1.4; }
  .page { width: 800px; margin: 0 auto; padding: 32px; box-sizing: border-box; }
  .header { display: flex; justify-content: space-between; margin-bottom: 2rem; }
  h1 { font-size: 2rem; margin: 0; color: {{.Theme.Accent}}; }
  .muted { color: {{.Theme.Muted}}; font-size: 0.875rem; }
  .parties { display: grid; grid-template-columns: 1fr 1fr; gap: 2rem; margin-bottom: 2rem; }
  .pre { white-space: pre-line; }
  table { width: 100%; border-collapse: collapse; border: 2px solid {{.Theme.Accent}}; margin-bottom: 2rem; }
  thead th { background: {{.Theme.Accent}}; color: #ffffff; text-align: right; padding: 12px 16px; border: 1px solid {{.Theme.Accent}}; }
  thead th:first-child { text-align: left; }
  tbody td { padding: 10px 16px; border: 1px solid #e5e7eb; text-align: right; vertical-align: top; }
  tbody td:first-child { text-align: left; }
  .totals { width: 256px; margin-left: auto; margin-bottom: 2rem; }
  .totals .row { display: flex; justify-content: space-between; padding: 8px 0; }
  .totals .grand { border-top: 2px solid {{.Theme.Accent}}; font-weight: bold; font-size: 1.125rem; padding: 12px 0; color: {{.Theme.Accent}}; }
  .panel { border: 2px solid #e5e7eb; border-radius: 8px; background: #f9fafb; padding: 16px; margin-top: 2rem; page-break-inside: avoid; }
  @media print { @page { margin: 0.5in; size: A4; } }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <div>
      {{if .Inv.LogoURL}}<img src="{{.Inv.LogoURL}}" alt="Logo" style="height: 64px; margin-bottom: 16px; object-fit: contain;">{{end}}
      <h1>INVOICE</h1>
      <p class="muted">{{.Inv.InvoiceNumber}}</p>
    </div>
    <div style="text-align: right;">
      <div class="muted">Invoice Date:</div>
      <div><strong>{{.Inv.InvoiceDate}}</strong></div>
      <div class="muted" style="margin-top: 8px;">Due Date:</div>
      <div><strong>{{.Inv.DueDate}}</strong></div>
    </div>
  </div>

  <div class="parties">
    <div>
      <h3>From:</h3>
      <div><strong>{{.Inv.CompanyName}}</strong></div>
      {{if .Inv.CompanyGST}}<div class="muted">GST: {{.Inv.CompanyGST}}</div>{{end}}
      <div class="muted pre">{{.Inv.CompanyAddress}}</div>
    </div>
    <div>
      <h3>To:</h3>
      <div><strong>{{.Inv.ClientName}}</strong></div>
      {{if .Inv.ClientEmail}}<div class="muted">{{.Inv.ClientEmail}}</div>{{end}}
      {{if .Inv.ClientGST}}<div class="muted">GST: {{.Inv.ClientGST}}</div>{{end}}
      <div class="muted pre">{{.Inv.ClientAddress}}</div>
    </div>
  </div>

  <table>
    <thead>
      <tr><th>Description</th><th>Qty</th><th>Rate</th><th>Amount</th></tr>
    </thead>
    <tbody>
      {{range .Inv.Items}}
      <tr>
        <td><strong>{{.Name}}</strong><div class="muted pre">{{.Description}}</div></td>
        <td>{{.Quantity}}</td>
        <td>{{money $.Inv.Currency .Rate}}</td>
        <td><strong>{{money $.Inv.Currency .Amount}}</strong></td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div class="totals">
    <div class="row"><span>Subtotal:</span><span>{{money .Inv.Currency .Inv.Subtotal}}</span></div>
    {{if .Inv.DiscountAmount}}
    <div class="row"><span>Discount{{if eq .Inv.DiscountType "percentage"}} ({{.Inv.DiscountValue}}%){{end}}:</span><span>-{{money .Inv.Currency .Inv.DiscountAmount}}</span></div>
    {{end}}
    <div class="row"><span>SGST ({{pct .Inv.SGSTPercent}}%):</span><span>{{money .Inv.Currency .Inv.SGSTAmount}}</span></div>
    <div class="row"><span>CGST ({{pct .Inv.CGSTPercent}}%):</span><span>{{money .Inv.Currency .Inv.CGSTAmount}}</span></div>
    <div class="row grand"><span>Total:</span><span>{{money .Inv.Currency .Inv.Total}}</span></div>
  </div>

  {{if .Inv.TermsAndConditions}}
  <div class="panel">
    <h4>Terms and Conditions</h4>
    <div class="pre">{{.Inv.TermsAndConditions}}</div>
  </div>
  {{end}}

  {{if or .Inv.BankName .Inv.AccountNumber .Inv.IFSCCode .Inv.BranchName .Inv.UPIID}}
  <div class="panel">
    <h4>Bank Details:</h4>
    {{if .Inv.BankName}}<div><strong>Bank Name:</strong> {{.Inv.BankName}}</div>{{end}}
    {{if .Inv.AccountNumber}}<div><strong>Account Number:</strong> {{.Inv.AccountNumber}}</div>{{end}}
    {{if .Inv.IFSCCode}}<div><strong>IFSC Code:</strong> {{.Inv.IFSCCode}}</div>{{end}}
    {{if .Inv.BranchName}}<div><strong>Branch:</strong> {{.Inv.BranchName}}</div>{{end}}
    {{if .Inv.UPIID}}<div><strong>UPI ID:</strong> {{.Inv.UPIID}}</div>{{end}}
    {{if .Inv.QRCodeURL}}
    <div style="margin-top: 12px;">
      <strong>UPI QR Code:</strong><br>
      <img src="{{.Inv.QRCodeURL}}" alt="UPI QR Code" style="width: 100px; height: 100px; border: 1px solid #d1d5db; border-radius: 4px; margin-top: 8px;">
    </div>
    {{end}}
  </div>
  {{end}}

  {{if .Inv.Notes}}
  <div class="panel">
    <h4>Notes:</h4>
    <div class="pre">{{.Inv.Notes}}</div>
  </div>
  {{end}}
</div>
{{if .AutoPrint}}
<script>
  window.addEventListener('load', function () {
    window.print();
    setTimeout(function () { window.close(); }, 1000);
  });
</script>
{{end}}
</body>
</html>
`
