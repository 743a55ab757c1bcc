package product

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemRepo keeps the catalog in process memory.
type MemRepo struct {
	mu    sync.RWMutex
	items map[string]Product
}

func NewMemRepo() *MemRepo {
	return &MemRepo{items: map[string]Product{}}
}

// Put stores p, assigning an id and timestamps when missing.
func (m *MemRepo) Put(p Product) Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	m.items[p.ID] = p
	return p
}

func (m *MemRepo) GetByID(_ context.Context, businessID, id string) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.items[id]
	if !ok || p.BusinessID != businessID {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MemRepo) List(_ context.Context, businessID string, q Query) ([]Product, error) {
	q = q.Normalize()
	m.mu.RLock()
	out := []Product{}
	for _, p := range m.items {
		if p.BusinessID != businessID {
			continue
		}
		if q.LowStockOnly && !p.LowStock() {
			continue
		}
		if q.Q != "" && !containsFold(p.Name, q.Q) && !containsFold(p.Category, q.Q) {
			continue
		}
		out = append(out, p)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if q.Offset >= len(out) {
		return []Product{}, nil
	}
	out = out[q.Offset:]
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *MemRepo) SellingPrices(_ context.Context, businessID string, ids []string) (map[string]decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]decimal.Decimal, len(ids))
	for _, id := range ids {
		if p, ok := m.items[id]; ok && p.BusinessID == businessID {
			out[id] = p.SellingPrice
		}
	}
	return out, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
