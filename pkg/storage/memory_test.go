package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepress/invoicepress/pkg/invoice"
	"github.com/invoicepress/invoicepress/pkg/storage"
)

func newInvoice(number string, total float64) *invoice.Invoice {
	return &invoice.Invoice{
		InvoiceNumber: number,
		CompanyName:   "Acme Co",
		ClientName:    "Globex",
		InvoiceDate:   "2024-01-01",
		DueDate:       "2024-01-31",
		Currency:      invoice.CurrencyINR,
		Items:         []invoice.Item{{Name: "Work", Amount: total}},
		Total:         total,
	}
}

func TestMemoryCreateGet(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	id, err := store.Create(ctx, newInvoice("INV-1", 100))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "INV-1", got.InvoiceNumber)
	assert.Equal(t, id, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMemoryGetNotFound(t *testing.T) {
	_, err := storage.NewMemory().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryUpdate(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	id, err := store.Create(ctx, newInvoice("INV-1", 100))
	require.NoError(t, err)

	updated := newInvoice("INV-1-rev", 250)
	require.NoError(t, store.Update(ctx, id, updated))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "INV-1-rev", got.InvoiceNumber)
	assert.Equal(t, 250.0, got.Total)

	assert.ErrorIs(t, store.Update(ctx, "missing", updated), storage.ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	id, err := store.Create(ctx, newInvoice("INV-1", 100))
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, id), storage.ErrNotFound)
}

func TestMemoryListRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	for i, number := range []string{"INV-a", "INV-b", "INV-c"} {
		_, err := store.Create(ctx, newInvoice(number, float64(i)))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	recent, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "INV-c", recent[0].InvoiceNumber)
	assert.Equal(t, "INV-b", recent[1].InvoiceNumber)

	// Zero limit falls back to the default.
	all, err := store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryCloneIsolation(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	inv := newInvoice("INV-1", 100)
	id, err := store.Create(ctx, inv)
	require.NoError(t, err)

	// Mutating the caller's copy must not leak into the store.
	inv.Items[0].Amount = 999
	inv.InvoiceNumber = "tampered"

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "INV-1", got.InvoiceNumber)
	assert.Equal(t, 100.0, got.Items[0].Amount)
}
