package sale

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/MikeMC777/erp-lite/internal/apperr"
	"github.com/MikeMC777/erp-lite/internal/tenant"
)

const (
	StepCreateSale  = "create_sale"
	StepCreateItems = "create_sale_items"
)

type Service struct {
	repo    Repository
	gate    *tenant.Gate
	pricer  Pricer
	metrics *Metrics
	log     *zap.Logger
}

type Option func(*Service)

func WithPricer(p Pricer) Option { return func(s *Service) { s.pricer = p } }

func WithMetrics(m *Metrics) Option { return func(s *Service) { s.metrics = m } }

func WithLogger(l *zap.Logger) Option { return func(s *Service) { s.log = l } }

func NewService(repo Repository, gate *tenant.Gate, opts ...Option) *Service {
	s := &Service{repo: repo, gate: gate, pricer: Pricer{Mode: PricingTrust}}
	for _, o := range opts {
		o(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Create records a sale and its items for the caller behind credential.
// Nothing is written unless the request is valid and the caller belongs to
// the business; once writing starts it runs to completion even if ctx is
// cancelled, and either both header and items remain or neither does.
func (s *Service) Create(ctx context.Context, credential string, req CreateRequest) (*Receipt, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	caller, err := s.gate.Enter(ctx, credential, req.BusinessID)
	if err != nil {
		return nil, err
	}
	lines, err := s.pricer.Apply(ctx, req.BusinessID, req.Items)
	if err != nil {
		return nil, err
	}

	header := &Sale{BusinessID: req.BusinessID, UserID: caller.UserID, TotalAmount: Total(lines)}
	log := s.log.With(zap.String("business_id", header.BusinessID), zap.String("user_id", header.UserID))

	ctx = context.WithoutCancel(ctx)
	if tx, ok := s.repo.(Transactor); ok {
		err = tx.InTx(ctx, func(r Repository) error { return s.persist(ctx, r, header, lines) })
		if err != nil && apperr.StepOf(err) == StepCreateItems {
			s.metrics.Rollbacks.WithLabelValues(rollbackTransaction).Inc()
		}
	} else {
		err = s.persist(ctx, s.repo, header, lines)
		if err != nil && apperr.StepOf(err) == StepCreateItems {
			s.compensate(ctx, log, header)
		}
	}
	if err != nil {
		var ae *apperr.Error
		if !errors.As(err, &ae) {
			err = apperr.Persistence(StepCreateSale, "Failed to create sale", err)
		}
		s.metrics.Failed.WithLabelValues(apperr.StepOf(err)).Inc()
		log.Error("sale creation failed", zap.String("step", apperr.StepOf(err)), zap.Error(err))
		return nil, err
	}

	s.metrics.Created.Inc()
	log.Info("sale created", zap.String("sale_id", header.ID),
		zap.String("total_amount", header.TotalAmount.StringFixed(2)), zap.Int("items", len(lines)))
	return &Receipt{SaleID: header.ID, TotalAmount: header.TotalAmount, Message: MsgCreated}, nil
}

func (s *Service) persist(ctx context.Context, r Repository, header *Sale, lines []CartLine) error {
	if err := r.InsertSale(ctx, header); err != nil {
		return apperr.Persistence(StepCreateSale, "Failed to create sale", err)
	}
	header.Items = itemsFor(header.ID, lines)
	if err := r.InsertItems(ctx, header.ID, header.Items); err != nil {
		return apperr.Persistence(StepCreateItems, "Failed to create sale items", err)
	}
	return nil
}

// compensate deletes a header whose items could not be written. Its failure
// is not retried; the orphan header is reported for manual reconciliation.
func (s *Service) compensate(ctx context.Context, log *zap.Logger, header *Sale) {
	if header.ID == "" {
		return
	}
	if err := s.repo.DeleteSale(ctx, header.BusinessID, header.ID); err != nil {
		s.metrics.RollbackFailures.Inc()
		log.Error("data integrity: sale header left without items",
			zap.String("sale_id", header.ID), zap.Error(err))
		return
	}
	s.metrics.Rollbacks.WithLabelValues(rollbackCompensation).Inc()
	log.Warn("sale header rolled back", zap.String("sale_id", header.ID))
}

// Get returns one sale of the business with its items.
func (s *Service) Get(ctx context.Context, credential, businessID, id string) (*Sale, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return nil, apperr.Validation("business_id is required")
	}
	if _, err := s.gate.Enter(ctx, credential, businessID); err != nil {
		return nil, err
	}
	out, err := s.repo.GetByID(ctx, businessID, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("sale not found")
	}
	if err != nil {
		return nil, apperr.Persistence("get_sale", "Failed to fetch sale", err)
	}
	return out, nil
}

// List returns the business's sales, newest first.
func (s *Service) List(ctx context.Context, credential, businessID string, limit, offset int) (*ListResponse, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return nil, apperr.Validation("business_id is required")
	}
	if _, err := s.gate.Enter(ctx, credential, businessID); err != nil {
		return nil, err
	}
	limit, offset = page(limit, offset)
	items, err := s.repo.ListByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, apperr.Persistence("list_sales", "Failed to fetch sales", err)
	}
	return &ListResponse{Limit: limit, Offset: offset, Items: items}, nil
}
