package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // postgres driver

	"github.com/invoicepress/invoicepress/pkg/invoice"
)

// schema mirrors the invoices document: raw form fields, the items list
// as JSONB, and the computed breakdown stored alongside. Resolved tax
// rates are persisted, so a document read back always carries concrete
// percentages.
const schema = `
CREATE TABLE IF NOT EXISTS invoices (
	id UUID PRIMARY KEY,
	invoice_number TEXT NOT NULL,
	company_name TEXT NOT NULL,
	company_gst TEXT NOT NULL DEFAULT '',
	company_address TEXT NOT NULL DEFAULT '',
	logo_url TEXT NOT NULL DEFAULT '',
	client_name TEXT NOT NULL,
	client_email TEXT NOT NULL DEFAULT '',
	client_gst TEXT NOT NULL DEFAULT '',
	client_address TEXT NOT NULL DEFAULT '',
	invoice_date TEXT NOT NULL,
	due_date TEXT NOT NULL,
	items JSONB NOT NULL,
	discount_type TEXT NOT NULL DEFAULT 'percentage',
	discount_value DOUBLE PRECISION NOT NULL DEFAULT 0,
	sgst_percent DOUBLE PRECISION NOT NULL DEFAULT 9,
	cgst_percent DOUBLE PRECISION NOT NULL DEFAULT 9,
	currency TEXT NOT NULL DEFAULT 'INR',
	theme TEXT NOT NULL DEFAULT 'classic',
	notes TEXT NOT NULL DEFAULT '',
	terms_and_conditions TEXT NOT NULL DEFAULT '',
	bank_name TEXT NOT NULL DEFAULT '',
	account_number TEXT NOT NULL DEFAULT '',
	ifsc_code TEXT NOT NULL DEFAULT '',
	branch_name TEXT NOT NULL DEFAULT '',
	upi_id TEXT NOT NULL DEFAULT '',
	subtotal DOUBLE PRECISION NOT NULL DEFAULT 0,
	discount_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
	sgst_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
	cgst_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
	total DOUBLE PRECISION NOT NULL DEFAULT 0,
	qr_code_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS invoices_created_at_idx ON invoices (created_at DESC);
`

const columns = `id, invoice_number, company_name, company_gst, company_address, logo_url,
	client_name, client_email, client_gst, client_address, invoice_date, due_date,
	items, discount_type, discount_value, sgst_percent, cgst_percent, currency, theme,
	notes, terms_and_conditions, bank_name, account_number, ifsc_code, branch_name, upi_id,
	subtotal, discount_amount, sgst_amount, cgst_amount, total, qr_code_url,
	created_at, updated_at`

// Postgres is a Store backed by postgres via database/sql and lib/pq.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects to the given database URL, verifies the
// connection and ensures the invoices schema exists.
func OpenPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure invoices schema: %w", err)
	}
	return &Postgres{db: db}, nil
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) Create(ctx context.Context, inv *invoice.Invoice) (string, error) {
	items, err := json.Marshal(inv.Items)
	if err != nil {
		return "", fmt.Errorf("marshal items: %w", err)
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	inv.ID = id
	inv.CreatedAt = now
	inv.UpdatedAt = now

	_, err = p.db.ExecContext(ctx, `INSERT INTO invoices (`+columns+`) VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		 $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34)`,
		id, inv.InvoiceNumber, inv.CompanyName, inv.CompanyGST, inv.CompanyAddress, inv.LogoURL,
		inv.ClientName, inv.ClientEmail, inv.ClientGST, inv.ClientAddress, inv.InvoiceDate, inv.DueDate,
		items, string(inv.DiscountType), inv.DiscountValue, inv.ResolvedSGSTPercent(), inv.ResolvedCGSTPercent(),
		inv.Currency, inv.Theme, inv.Notes, inv.TermsAndConditions, inv.BankName, inv.AccountNumber,
		inv.IFSCCode, inv.BranchName, inv.UPIID, inv.Subtotal, inv.DiscountAmount, inv.SGSTAmount,
		inv.CGSTAmount, inv.Total, inv.QRCodeURL, now, now)
	if err != nil {
		return "", fmt.Errorf("insert invoice: %w", err)
	}
	return id, nil
}

func (p *Postgres) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	row := p.db.QueryRowContext(ctx, `SELECT `+columns+` FROM invoices WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (p *Postgres) Update(ctx context.Context, id string, inv *invoice.Invoice) error {
	items, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	now := time.Now().UTC()
	res, err := p.db.ExecContext(ctx, `UPDATE invoices SET
		invoice_number = $2, company_name = $3, company_gst = $4, company_address = $5, logo_url = $6,
		client_name = $7, client_email = $8, client_gst = $9, client_address = $10,
		invoice_date = $11, due_date = $12, items = $13, discount_type = $14, discount_value = $15,
		sgst_percent = $16, cgst_percent = $17, currency = $18, theme = $19, notes = $20,
		terms_and_conditions = $21, bank_name = $22, account_number = $23, ifsc_code = $24,
		branch_name = $25, upi_id = $26, subtotal = $27, discount_amount = $28, sgst_amount = $29,
		cgst_amount = $30, total = $31, qr_code_url = $32, updated_at = $33
		WHERE id = $1`,
		id, inv.InvoiceNumber, inv.CompanyName, inv.CompanyGST, inv.CompanyAddress, inv.LogoURL,
		inv.ClientName, inv.ClientEmail, inv.ClientGST, inv.ClientAddress, inv.InvoiceDate, inv.DueDate,
		items, string(inv.DiscountType), inv.DiscountValue, inv.ResolvedSGSTPercent(), inv.ResolvedCGSTPercent(),
		inv.Currency, inv.Theme, inv.Notes, inv.TermsAndConditions, inv.BankName, inv.AccountNumber,
		inv.IFSCCode, inv.BranchName, inv.UPIID, inv.Subtotal, inv.DiscountAmount, inv.SGSTAmount,
		inv.CGSTAmount, inv.Total, inv.QRCodeURL, now)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	inv.ID = id
	inv.UpdatedAt = now
	return nil
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListRecent(ctx context.Context, limit int) ([]*invoice.Invoice, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	rows, err := p.db.QueryContext(ctx,
		`SELECT `+columns+` FROM invoices ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []*invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var (
		inv          invoice.Invoice
		items        []byte
		discountType string
		sgst, cgst   float64
	)
	err := s.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.CompanyName, &inv.CompanyGST, &inv.CompanyAddress, &inv.LogoURL,
		&inv.ClientName, &inv.ClientEmail, &inv.ClientGST, &inv.ClientAddress, &inv.InvoiceDate, &inv.DueDate,
		&items, &discountType, &inv.DiscountValue, &sgst, &cgst, &inv.Currency, &inv.Theme,
		&inv.Notes, &inv.TermsAndConditions, &inv.BankName, &inv.AccountNumber, &inv.IFSCCode,
		&inv.BranchName, &inv.UPIID, &inv.Subtotal, &inv.DiscountAmount, &inv.SGSTAmount,
		&inv.CGSTAmount, &inv.Total, &inv.QRCodeURL, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &inv.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	inv.DiscountType = invoice.DiscountType(discountType)
	inv.SGSTPercent = &sgst
	inv.CGSTPercent = &cgst
	return &inv, nil
}
