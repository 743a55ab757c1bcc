// Package tenant decides whether a caller may act on a business's rows.
package tenant

import (
	"context"
	"sync"
	"time"

	"github.com/MikeMC777/erp-lite/internal/db"
)

// Directory answers membership questions about businesses.
type Directory interface {
	IsMember(ctx context.Context, businessID, userID string) (bool, error)
}

// PGDirectory treats the owner, any profile attached to the business and any
// user_roles grant as members.
type PGDirectory struct{ db db.Pool }

func NewPGDirectory(pool db.Pool) *PGDirectory { return &PGDirectory{db: pool} }

func (d *PGDirectory) IsMember(ctx context.Context, businessID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// ids are compared as text so a malformed id is "not a member", not a query error
	var ok bool
	err := d.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM businesses WHERE id::text = $1 AND owner_id::text = $2
			UNION ALL
			SELECT 1 FROM profiles WHERE business_id::text = $1 AND id::text = $2
			UNION ALL
			SELECT 1 FROM user_roles WHERE business_id::text = $1 AND user_id::text = $2
		)
	`, businessID, userID).Scan(&ok)
	return ok, err
}

// MemDirectory is an in-process Directory for local runs and tests.
type MemDirectory struct {
	mu         sync.RWMutex
	members    map[string]map[string]struct{}
	businesses map[string]Business
}

func NewMemDirectory() *MemDirectory {
	return &MemDirectory{
		members:    map[string]map[string]struct{}{},
		businesses: map[string]Business{},
	}
}

func (d *MemDirectory) Grant(businessID string, userIDs ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.grant(businessID, userIDs...)
}

func (d *MemDirectory) grant(businessID string, userIDs ...string) {
	set, ok := d.members[businessID]
	if !ok {
		set = map[string]struct{}{}
		d.members[businessID] = set
	}
	for _, u := range userIDs {
		set[u] = struct{}{}
	}
}

func (d *MemDirectory) IsMember(_ context.Context, businessID, userID string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.members[businessID][userID]
	return ok, nil
}
