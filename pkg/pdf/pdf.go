// Package pdf renders an invoice document to PDF. The layout follows
// the printable HTML view; the numbers come straight from the stored
// breakdown.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/invoicepress/invoicepress/pkg/invoice"
)

// money formats an amount for PDF output. The core PDF fonts have no
// rupee glyph, so INR amounts use the "Rs." prefix here.
func money(currency string, amount float64) string {
	if currency == invoice.CurrencyUSD {
		return fmt.Sprintf("$%.2f", amount)
	}
	return fmt.Sprintf("Rs. %.2f", amount)
}

// Render draws the invoice onto an A4 page and returns the PDF bytes.
func Render(inv *invoice.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header: title and number on the left, dates on the right.
	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(120, 10, "INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 10, "Invoice Date: "+inv.InvoiceDate, "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 6, inv.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Due Date: "+inv.DueDate, "", 1, "R", false, 0, "")
	pdf.Ln(8)

	// From / To blocks.
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(95, 6, "From:", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	fromLines := partyLines(inv.CompanyName, inv.CompanyGST, "", inv.CompanyAddress)
	toLines := partyLines(inv.ClientName, inv.ClientGST, inv.ClientEmail, inv.ClientAddress)
	for len(fromLines) < len(toLines) {
		fromLines = append(fromLines, "")
	}
	for len(toLines) < len(fromLines) {
		toLines = append(toLines, "")
	}
	for i := range fromLines {
		pdf.CellFormat(95, 5, fromLines[i], "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, toLines[i], "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	// Items table.
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(31, 41, 55)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(31, 41, 55)
	for _, it := range inv.Items {
		label := it.Name
		if it.Description != "" {
			if label != "" {
				label += " - "
			}
			label += it.Description
		}
		pdf.CellFormat(90, 7, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%g", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, money(inv.Currency, it.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, money(inv.Currency, it.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Totals block, right aligned.
	totalsRow(pdf, "Subtotal:", money(inv.Currency, inv.Subtotal), false)
	if inv.DiscountAmount != 0 {
		label := "Discount:"
		if inv.DiscountType == invoice.DiscountPercentage {
			label = fmt.Sprintf("Discount (%g%%):", inv.DiscountValue)
		}
		totalsRow(pdf, label, "-"+money(inv.Currency, inv.DiscountAmount), false)
	}
	totalsRow(pdf, fmt.Sprintf("SGST (%g%%):", inv.ResolvedSGSTPercent()), money(inv.Currency, inv.SGSTAmount), false)
	totalsRow(pdf, fmt.Sprintf("CGST (%g%%):", inv.ResolvedCGSTPercent()), money(inv.Currency, inv.CGSTAmount), false)
	totalsRow(pdf, "Total:", money(inv.Currency, inv.Total), true)

	// Bank details.
	if inv.BankName != "" || inv.AccountNumber != "" || inv.IFSCCode != "" || inv.BranchName != "" || inv.UPIID != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, "Bank Details:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		bankRow(pdf, "Bank Name", inv.BankName)
		bankRow(pdf, "Account Number", inv.AccountNumber)
		bankRow(pdf, "IFSC Code", inv.IFSCCode)
		bankRow(pdf, "Branch", inv.BranchName)
		bankRow(pdf, "UPI ID", inv.UPIID)
	}

	if inv.TermsAndConditions != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, "Terms and Conditions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, inv.TermsAndConditions, "", "L", false)
	}
	if inv.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, "Notes:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, inv.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the download name for an exported invoice.
func Filename(inv *invoice.Invoice) string {
	number := inv.InvoiceNumber
	if number == "" {
		number = "draft"
	}
	return "invoice-" + number + ".pdf"
}

func partyLines(name, gst, email, address string) []string {
	lines := []string{name}
	if gst != "" {
		lines = append(lines, "GST: "+gst)
	}
	if email != "" {
		lines = append(lines, email)
	}
	if address != "" {
		lines = append(lines, address)
	}
	return lines
}

func totalsRow(pdf *gofpdf.Fpdf, label, value string, grand bool) {
	if grand {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(110, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, value, "", 1, "R", false, 0, "")
}

func bankRow(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.CellFormat(45, 6, label+":", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
