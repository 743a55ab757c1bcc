package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/MikeMC777/erp-lite/internal/apperr"
)

const StepCreateBusiness = "create_business"

// ErrAlreadySetUp is returned when the owner's profile is already attached to a business.
var ErrAlreadySetUp = errors.New("profile already belongs to a business")

// Business is a tenant.
// swagger:model Business
type Business struct {
	ID        string    `json:"id"         example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Name      string    `json:"name"       example:"Corner Cafe"`
	OwnerID   string    `json:"owner_id"   example:"9a0c6c2e-7f55-4f0e-9d8b-2f0e8b1b6d11"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the owner's row in profiles, attached to the new business.
type Profile struct {
	UserID   string
	FullName string
	Email    string
	Phone    *string
}

// Registry creates businesses together with their owner's profile.
type Registry interface {
	CreateBusiness(ctx context.Context, b *Business, owner Profile) error
}

// SetupRequest is the business setup payload.
// swagger:model SetupBusinessRequest
type SetupRequest struct {
	Name     string  `json:"name"      example:"Corner Cafe"`
	FullName string  `json:"full_name" example:"Ana Ruiz"`
	Phone    *string `json:"phone,omitempty" example:"+34 600 000 000"`
}

func (r *SetupRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.FullName = strings.TrimSpace(r.FullName)
	if r.Name == "" || r.FullName == "" {
		return apperr.Validation("name and full_name are required")
	}
	if r.Phone != nil {
		p := strings.TrimSpace(*r.Phone)
		if p == "" {
			r.Phone = nil
		} else {
			r.Phone = &p
		}
	}
	return nil
}

// SetupResponse is returned once the business exists.
// swagger:model SetupBusinessResponse
type SetupResponse struct {
	Success  bool     `json:"success"  example:"true"`
	Business Business `json:"business"`
	Message  string   `json:"message"  example:"Business created successfully"`
}

// Onboarding creates a caller's first business.
type Onboarding struct {
	gate     *Gate
	registry Registry
	log      *zap.Logger
}

func NewOnboarding(gate *Gate, registry Registry, log *zap.Logger) *Onboarding {
	if log == nil {
		log = zap.NewNop()
	}
	return &Onboarding{gate: gate, registry: registry, log: log}
}

// Setup creates a business owned by the caller and attaches the caller's
// profile to it. Either both rows are written or neither is.
func (o *Onboarding) Setup(ctx context.Context, credential string, req SetupRequest) (*SetupResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	caller, err := o.gate.Caller(ctx, credential)
	if err != nil {
		return nil, err
	}

	b := &Business{Name: req.Name, OwnerID: caller.UserID}
	owner := Profile{UserID: caller.UserID, FullName: req.FullName, Email: caller.Email, Phone: req.Phone}
	log := o.log.With(zap.String("user_id", caller.UserID))

	err = o.registry.CreateBusiness(context.WithoutCancel(ctx), b, owner)
	if errors.Is(err, ErrAlreadySetUp) {
		log.Warn("business setup repeated")
		return nil, apperr.Conflict("Business already set up")
	}
	if err != nil {
		log.Error("business setup failed", zap.Error(err))
		return nil, apperr.Persistence(StepCreateBusiness, "Failed to create business", err)
	}
	log.Info("business created", zap.String("business_id", b.ID))
	return &SetupResponse{Success: true, Business: *b, Message: "Business created successfully"}, nil
}

func (d *PGDirectory) CreateBusiness(ctx context.Context, b *Business, owner Profile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := d.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var taken bool
	if err := tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM profiles WHERE id::text = $1 AND business_id IS NOT NULL)
	`, owner.UserID).Scan(&taken); err != nil {
		return fmt.Errorf("profile lookup: %w", err)
	}
	if taken {
		return ErrAlreadySetUp
	}

	if err := tx.QueryRow(ctx, `
		INSERT INTO businesses (name, owner_id)
		VALUES ($1, $2)
		RETURNING id::text, created_at
	`, b.Name, b.OwnerID).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("business insert: %w", err)
	}

	// the auth provider may have created the profile already
	if _, err := tx.Exec(ctx, `
		INSERT INTO profiles (id, business_id, full_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			business_id = EXCLUDED.business_id,
			full_name   = EXCLUDED.full_name,
			email       = EXCLUDED.email,
			phone       = EXCLUDED.phone
	`, owner.UserID, b.ID, owner.FullName, owner.Email, owner.Phone); err != nil {
		return fmt.Errorf("profile upsert: %w", err)
	}
	return tx.Commit(ctx)
}

func (d *MemDirectory) CreateBusiness(_ context.Context, b *Business, owner Profile) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, set := range d.members {
		if _, ok := set[owner.UserID]; ok {
			return ErrAlreadySetUp
		}
	}
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()
	d.businesses[b.ID] = *b
	d.grant(b.ID, owner.UserID)
	return nil
}

// Business returns a business created through CreateBusiness.
func (d *MemDirectory) Business(id string) (Business, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	b, ok := d.businesses[id]
	return b, ok
}
