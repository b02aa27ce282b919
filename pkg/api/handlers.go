package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/invoicepress/invoicepress/pkg/invoice"
	"github.com/invoicepress/invoicepress/pkg/pdf"
	"github.com/invoicepress/invoicepress/pkg/render"
	"github.com/invoicepress/invoicepress/pkg/storage"
	"github.com/invoicepress/invoicepress/pkg/upi"
)

const maxLogoSize = 5 << 20 // 5MB limit for logo uploads

// InvoiceRequest is the payload accepted by create, update and preview.
// Derived fields are ignored on input; the server always recomputes
// them.
type InvoiceRequest struct {
	InvoiceNumber string `json:"invoiceNumber"`

	CompanyName    string `json:"companyName" validate:"required"`
	CompanyGST     string `json:"companyGST"`
	CompanyAddress string `json:"companyAddress"`
	LogoURL        string `json:"logoUrl"`

	ClientName    string `json:"clientName" validate:"required"`
	ClientEmail   string `json:"clientEmail" validate:"omitempty,email"`
	ClientGST     string `json:"clientGST"`
	ClientAddress string `json:"clientAddress"`

	InvoiceDate string `json:"invoiceDate" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`

	Items []invoice.Item `json:"items" validate:"required,min=1"`

	DiscountType  invoice.DiscountType `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue float64              `json:"discountValue"`
	SGSTPercent   *float64             `json:"sgstPercent" validate:"omitempty,gte=0,lte=100"`
	CGSTPercent   *float64             `json:"cgstPercent" validate:"omitempty,gte=0,lte=100"`

	Currency string `json:"currency" validate:"omitempty,oneof=INR USD"`
	Theme    string `json:"theme" validate:"omitempty,oneof=classic modern bold"`

	Notes              string `json:"notes"`
	TermsAndConditions string `json:"termsAndConditions"`

	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BranchName    string `json:"branchName"`
	UPIID         string `json:"upiId"`
}

func (r *InvoiceRequest) toInvoice() *invoice.Invoice {
	inv := &invoice.Invoice{
		InvoiceNumber:      strings.TrimSpace(r.InvoiceNumber),
		CompanyName:        r.CompanyName,
		CompanyGST:         r.CompanyGST,
		CompanyAddress:     r.CompanyAddress,
		LogoURL:            r.LogoURL,
		ClientName:         r.ClientName,
		ClientEmail:        r.ClientEmail,
		ClientGST:          r.ClientGST,
		ClientAddress:      r.ClientAddress,
		InvoiceDate:        r.InvoiceDate,
		DueDate:            r.DueDate,
		Items:              r.Items,
		DiscountType:       r.DiscountType,
		DiscountValue:      r.DiscountValue,
		SGSTPercent:        r.SGSTPercent,
		CGSTPercent:        r.CGSTPercent,
		Currency:           r.Currency,
		Theme:              r.Theme,
		Notes:              r.Notes,
		TermsAndConditions: r.TermsAndConditions,
		BankName:           r.BankName,
		AccountNumber:      r.AccountNumber,
		IFSCCode:           r.IFSCCode,
		BranchName:         r.BranchName,
		UPIID:              r.UPIID,
	}
	if inv.DiscountType == "" {
		inv.DiscountType = invoice.DiscountPercentage
	}
	if inv.Currency == "" {
		inv.Currency = invoice.CurrencyINR
	}
	if inv.Theme == "" {
		inv.Theme = invoice.ThemeClassic
	}
	return inv
}

// finalize fills every derived field on the document: a defaulted
// invoice number, the computed breakdown and the QR link. All write
// paths and the preview go through here so persisted, previewed and
// exported totals never diverge.
func (s *Server) finalize(inv *invoice.Invoice) {
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = invoice.NumberAt(s.now())
	}
	inv.ApplyBreakdown(invoice.ComputeFor(inv))
	inv.QRCodeURL = upi.QRLink(s.qr, inv.UPIID, inv.Total, inv.CompanyName, inv.InvoiceNumber)
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*InvoiceRequest, bool) {
	var req InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", nil)
		return nil, false
	}
	if err := s.validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]map[string]string, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, map[string]string{"field": fe.Field(), "rule": fe.Tag()})
			}
			writeError(w, http.StatusUnprocessableEntity, "validation_failed", "request failed validation", details)
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error(), nil)
		return nil, false
	}
	return &req, true
}

func (s *Server) loadInvoice(w http.ResponseWriter, r *http.Request) (*invoice.Invoice, bool) {
	id := mux.Vars(r)["id"]
	inv, err := s.store.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "invoice not found", nil)
		return nil, false
	}
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", id).Msg("get invoice")
		writeError(w, http.StatusInternalServerError, "storage_error", "could not load invoice", nil)
		return nil, false
	}
	return inv, true
}

// handleHealth godoc
// @Summary Service health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePreview godoc
// @Summary Compute totals for a draft without persisting it
// @Accept json
// @Produce json
// @Param invoice body InvoiceRequest true "Invoice draft"
// @Success 200 {object} invoice.Invoice
// @Router /api/invoices/preview [post]
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	inv := req.toInvoice()
	s.finalize(inv)
	writeJSON(w, http.StatusOK, inv)
}

// handleCreate godoc
// @Summary Create an invoice
// @Accept json
// @Produce json
// @Param invoice body InvoiceRequest true "Invoice"
// @Success 201 {object} invoice.Invoice
// @Failure 422 {object} ErrorBody
// @Router /api/invoices [post]
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	inv := req.toInvoice()
	s.finalize(inv)

	if _, err := s.store.Create(r.Context(), inv); err != nil {
		s.log.Error().Err(err).Msg("create invoice")
		writeError(w, http.StatusInternalServerError, "storage_error", "could not save invoice", nil)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

// handleList godoc
// @Summary List recent invoices
// @Produce json
// @Param limit query int false "Maximum number of invoices" default(5)
// @Success 200 {array} invoice.Invoice
// @Router /api/invoices [get]
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := storage.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	invoices, err := s.store.ListRecent(r.Context(), limit)
	if err != nil {
		s.log.Error().Err(err).Msg("list invoices")
		writeError(w, http.StatusInternalServerError, "storage_error", "could not list invoices", nil)
		return
	}
	if invoices == nil {
		invoices = []*invoice.Invoice{}
	}
	writeJSON(w, http.StatusOK, invoices)
}

// handleGet godoc
// @Summary Fetch one invoice
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {object} invoice.Invoice
// @Failure 404 {object} ErrorBody
// @Router /api/invoices/{id} [get]
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	inv, ok := s.loadInvoice(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// handleUpdate godoc
// @Summary Update an invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice id"
// @Param invoice body InvoiceRequest true "Invoice"
// @Success 200 {object} invoice.Invoice
// @Failure 404 {object} ErrorBody
// @Router /api/invoices/{id} [put]
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	inv := req.toInvoice()
	s.finalize(inv)

	err := s.store.Update(r.Context(), id, inv)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "invoice not found", nil)
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", id).Msg("update invoice")
		writeError(w, http.StatusInternalServerError, "storage_error", "could not update invoice", nil)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// handleDelete godoc
// @Summary Delete an invoice
// @Param id path string true "Invoice id"
// @Success 204
// @Failure 404 {object} ErrorBody
// @Router /api/invoices/{id} [delete]
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "invoice not found", nil)
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", id).Msg("delete invoice")
		writeError(w, http.StatusInternalServerError, "storage_error", "could not delete invoice", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDuplicate godoc
// @Summary Duplicate an invoice with a fresh number and dates
// @Produce json
// @Param id path string true "Invoice id"
// @Success 201 {object} invoice.Invoice
// @Failure 404 {object} ErrorBody
// @Router /api/invoices/{id}/duplicate [post]
func (s *Server) handleDuplicate(w http.ResponseWriter, r *http.Request) {
	original, ok := s.loadInvoice(w, r)
	if !ok {
		return
	}

	now := s.now()
	dup := *original
	dup.ID = ""
	dup.InvoiceNumber = invoice.NumberAt(now)
	dup.InvoiceDate = invoice.DateString(now)
	dup.DueDate = invoice.DueDateAfter(now)
	dup.Items = append([]invoice.Item(nil), original.Items...)
	s.finalize(&dup)

	if _, err := s.store.Create(r.Context(), &dup); err != nil {
		s.log.Error().Err(err).Msg("duplicate invoice")
		writeError(w, http.StatusInternalServerError, "storage_error", "could not duplicate invoice", nil)
		return
	}
	writeJSON(w, http.StatusCreated, &dup)
}

// handlePDF godoc
// @Summary Export an invoice as PDF
// @Produce application/pdf
// @Param id path string true "Invoice id"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorBody
// @Router /api/invoices/{id}/pdf [get]
func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	inv, ok := s.loadInvoice(w, r)
	if !ok {
		return
	}

	out, err := pdf.Render(inv)
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("render pdf")
		writeError(w, http.StatusInternalServerError, "render_error", "could not render PDF", nil)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+pdf.Filename(inv))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.Write(out)
}

// handlePrint godoc
// @Summary Printable invoice page
// @Produce html
// @Param id path string true "Invoice id"
// @Success 200 {string} string
// @Failure 404 {object} ErrorBody
// @Router /api/invoices/{id}/print [get]
func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	inv, ok := s.loadInvoice(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WriteInvoice(w, inv, true); err != nil {
		s.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("render print view")
	}
}

// handleLogoUpload godoc
// @Summary Upload a company logo
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo image"
// @Success 200 {object} map[string]string
// @Failure 503 {object} ErrorBody
// @Router /api/uploads/logo [post]
func (s *Server) handleLogoUpload(w http.ResponseWriter, r *http.Request) {
	if s.uploads == nil {
		writeError(w, http.StatusServiceUnavailable, "uploads_disabled", "logo uploads are not configured", nil)
		return
	}
	if err := r.ParseMultipartForm(maxLogoSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_upload", "could not parse multipart form", nil)
		return
	}
	file, header, err := r.FormFile("logo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_upload", "logo file is required", nil)
		return
	}
	defer file.Close()

	url, err := s.uploads.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		s.log.Error().Err(err).Str("filename", header.Filename).Msg("upload logo")
		writeError(w, http.StatusInternalServerError, "upload_error", "could not upload logo", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
