package attendance

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/MikeMC777/erp-lite/internal/apperr"
	"github.com/MikeMC777/erp-lite/internal/tenant"
)

type Service struct {
	repo Repository
	gate *tenant.Gate
	log  *zap.Logger
	now  func() time.Time
}

func NewService(repo Repository, gate *tenant.Gate, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, gate: gate, log: log, now: time.Now}
}

// Mark creates or replaces the employee's attendance for the day.
func (s *Service) Mark(ctx context.Context, credential string, req MarkRequest) (*MarkResponse, error) {
	if err := req.Validate(s.now()); err != nil {
		return nil, err
	}
	if _, err := s.gate.Enter(ctx, credential, req.BusinessID); err != nil {
		return nil, err
	}

	log := s.log.With(zap.String("business_id", req.BusinessID), zap.String("employee_id", req.EmployeeID))
	ok, err := s.repo.EmployeeInBusiness(ctx, req.BusinessID, req.EmployeeID)
	if err != nil {
		log.Error("employee lookup failed", zap.Error(err))
		return nil, apperr.Persistence("verify_employee", "Failed to check existing attendance", err)
	}
	if !ok {
		return nil, apperr.NotFound("employee not found")
	}

	rec := &Record{
		BusinessID: req.BusinessID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
		InTime:     req.InTime,
		OutTime:    req.OutTime,
	}
	updated, err := s.repo.Upsert(ctx, rec)
	if err != nil {
		log.Error("attendance upsert failed", zap.String("date", req.Date), zap.Error(err))
		return nil, apperr.Persistence("mark_attendance", "Failed to mark attendance", err)
	}

	msg := MsgMarked
	if updated {
		msg = MsgUpdated
	}
	log.Info("attendance saved", zap.String("attendance_id", rec.ID), zap.Bool("updated", updated))
	return &MarkResponse{Success: true, Attendance: rec, Message: msg}, nil
}

// List returns the business's attendance for date, today when empty.
func (s *Service) List(ctx context.Context, credential, businessID, date string) (*ListResponse, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return nil, apperr.Validation("business_id is required")
	}
	date = strings.TrimSpace(date)
	if date == "" {
		date = s.now().UTC().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, apperr.Validation("date must be formatted as YYYY-MM-DD")
	}
	if _, err := s.gate.Enter(ctx, credential, businessID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByDate(ctx, businessID, date)
	if err != nil {
		return nil, apperr.Persistence("list_attendance", "Failed to fetch attendance", err)
	}
	return &ListResponse{Date: date, Items: items}, nil
}
