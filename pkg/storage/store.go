// Package storage persists invoice documents. The postgres store is the
// production backend; the memory store backs tests and demo mode.
package storage

import (
	"context"
	"errors"

	"github.com/invoicepress/invoicepress/pkg/invoice"
)

// ErrNotFound is returned when a requested invoice does not exist.
var ErrNotFound = errors.New("invoice not found")

// DefaultRecentLimit caps ListRecent when the caller asks for nothing
// specific.
const DefaultRecentLimit = 5

// Store is the document-store boundary for invoices. Implementations
// mint the document id on Create and maintain the created/updated
// timestamps.
type Store interface {
	Create(ctx context.Context, inv *invoice.Invoice) (string, error)
	Get(ctx context.Context, id string) (*invoice.Invoice, error)
	Update(ctx context.Context, id string, inv *invoice.Invoice) error
	Delete(ctx context.Context, id string) error
	ListRecent(ctx context.Context, limit int) ([]*invoice.Invoice, error)
}
