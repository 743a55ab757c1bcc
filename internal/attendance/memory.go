package attendance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemRepo struct {
	mu        sync.RWMutex
	employees map[string]string // employee id -> business id
	records   map[string]Record // employee id + date
}

func NewMemRepo() *MemRepo {
	return &MemRepo{employees: map[string]string{}, records: map[string]Record{}}
}

func (m *MemRepo) AddEmployee(businessID, employeeID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees[employeeID] = businessID
}

func (m *MemRepo) EmployeeInBusiness(_ context.Context, businessID, employeeID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.employees[employeeID] == businessID, nil
}

func (m *MemRepo) Upsert(_ context.Context, rec *Record) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := rec.EmployeeID + "|" + rec.Date
	prev, updated := m.records[key]
	if updated {
		rec.ID, rec.CreatedAt = prev.ID, prev.CreatedAt
	} else {
		rec.ID, rec.CreatedAt = uuid.NewString(), time.Now().UTC()
	}
	m.records[key] = *rec
	return updated, nil
}

func (m *MemRepo) ListByDate(_ context.Context, businessID, date string) ([]Record, error) {
	m.mu.RLock()
	out := []Record{}
	for _, rec := range m.records {
		if rec.BusinessID == businessID && rec.Date == date {
			out = append(out, rec)
		}
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
