package product

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/MikeMC777/erp-lite/internal/apperr"
	"github.com/MikeMC777/erp-lite/internal/tenant"
)

type Service struct {
	repo Repository
	gate *tenant.Gate
	log  *zap.Logger
}

func NewService(repo Repository, gate *tenant.Gate, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, gate: gate, log: log}
}

// List returns one page of the caller's catalog.
func (s *Service) List(ctx context.Context, credential, businessID string, q Query) (*ListResponse, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return nil, apperr.Validation("business_id is required")
	}
	if _, err := s.gate.Enter(ctx, credential, businessID); err != nil {
		return nil, err
	}
	q = q.Normalize()
	items, err := s.repo.List(ctx, businessID, q)
	if err != nil {
		s.log.Error("list products", zap.String("business_id", businessID), zap.Error(err))
		return nil, apperr.Persistence("list_products", "Failed to fetch products", err)
	}
	return &ListResponse{Q: q.Q, Limit: q.Limit, Offset: q.Offset, Items: items}, nil
}

// Get returns one product of the caller's catalog.
func (s *Service) Get(ctx context.Context, credential, businessID, id string) (*Product, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return nil, apperr.Validation("business_id is required")
	}
	if _, err := s.gate.Enter(ctx, credential, businessID); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, businessID, strings.TrimSpace(id))
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("product not found")
	}
	if err != nil {
		s.log.Error("get product", zap.String("business_id", businessID), zap.String("product_id", id), zap.Error(err))
		return nil, apperr.Persistence("get_product", "Failed to fetch product", err)
	}
	return p, nil
}
