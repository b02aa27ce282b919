package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/invoicepress/invoicepress/pkg/invoice"
)

// Memory is an in-process Store used by tests and by `serve --demo`.
// Documents are deep-copied on the way in and out so callers can never
// mutate stored state.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]*invoice.Invoice
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]*invoice.Invoice)}
}

func (m *Memory) Create(_ context.Context, inv *invoice.Invoice) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now().UTC()
	inv.ID = id
	inv.CreatedAt = now
	inv.UpdatedAt = now
	m.docs[id] = clone(inv)
	return id, nil
}

func (m *Memory) Get(_ context.Context, id string) (*invoice.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(doc), nil
}

func (m *Memory) Update(_ context.Context, id string, inv *invoice.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.docs[id]
	if !ok {
		return ErrNotFound
	}
	inv.ID = id
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = time.Now().UTC()
	m.docs[id] = clone(inv)
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

func (m *Memory) ListRecent(_ context.Context, limit int) ([]*invoice.Invoice, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*invoice.Invoice, 0, len(m.docs))
	for _, doc := range m.docs {
		out = append(out, clone(doc))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func clone(inv *invoice.Invoice) *invoice.Invoice {
	cp := *inv
	cp.Items = append([]invoice.Item(nil), inv.Items...)
	if inv.SGSTPercent != nil {
		v := *inv.SGSTPercent
		cp.SGSTPercent = &v
	}
	if inv.CGSTPercent != nil {
		v := *inv.CGSTPercent
		cp.CGSTPercent = &v
	}
	return &cp
}
