package sale

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemRepo is a process-local store. It has no multi-statement transactions,
// so the service falls back to a compensating delete on top of it.
type MemRepo struct {
	mu    sync.RWMutex
	sales map[string]Sale
	items map[string][]Item
}

func NewMemRepo() *MemRepo {
	return &MemRepo{sales: map[string]Sale{}, items: map[string][]Item{}}
}

func (m *MemRepo) InsertSale(_ context.Context, s *Sale) error {
	if s.TotalAmount.IsNegative() {
		return fmt.Errorf("total_amount must be non-negative")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	h := *s
	h.Items = nil
	m.sales[s.ID] = h
	return nil
}

func (m *MemRepo) InsertItems(_ context.Context, saleID string, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sales[saleID]; !ok {
		return fmt.Errorf("sale %s does not exist", saleID)
	}
	for i, it := range items {
		if it.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i)
		}
	}
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].SaleID = saleID
	}
	m.items[saleID] = append(m.items[saleID], items...)
	return nil
}

func (m *MemRepo) DeleteSale(_ context.Context, businessID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sales[id]
	if !ok || s.BusinessID != businessID {
		return ErrNotFound
	}
	delete(m.sales, id)
	delete(m.items, id)
	return nil
}

func (m *MemRepo) GetByID(_ context.Context, businessID, id string) (*Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sales[id]
	if !ok || s.BusinessID != businessID {
		return nil, ErrNotFound
	}
	s.Items = append([]Item{}, m.items[id]...)
	return &s, nil
}

func (m *MemRepo) ListByBusiness(_ context.Context, businessID string, limit, offset int) ([]Sale, error) {
	limit, offset = page(limit, offset)
	m.mu.RLock()
	out := []Sale{}
	for _, s := range m.sales {
		if s.BusinessID == businessID {
			out = append(out, s)
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return []Sale{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len reports how many sale headers are stored.
func (m *MemRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sales)
}
