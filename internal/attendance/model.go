package attendance

import (
	"strings"
	"time"

	"github.com/MikeMC777/erp-lite/internal/apperr"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

const DateLayout = "2006-01-02"

// Record is one employee's attendance for one day.
type Record struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date" example:"2024-05-01"`
	Status     Status    `json:"status" example:"present"`
	InTime     *string   `json:"in_time" example:"09:00:00"`
	OutTime    *string   `json:"out_time" example:"17:30:00"`
	CreatedAt  time.Time `json:"created_at"`
}

// MarkRequest is the mark-attendance payload.
// swagger:model MarkAttendanceRequest
type MarkRequest struct {
	EmployeeID string  `json:"employee_id" example:"6a1f0c8e-3c1d-4b7e-9a55-0e2d7f1b3c44"`
	BusinessID string  `json:"business_id" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Status     Status  `json:"status" example:"present"`
	InTime     *string `json:"in_time,omitempty" example:"09:00"`
	OutTime    *string `json:"out_time,omitempty" example:"17:30"`
	// defaults to today (UTC)
	Date string `json:"date,omitempty" example:"2024-05-01"`
}

// Validate normalizes the request in place. today fills a missing date.
func (r *MarkRequest) Validate(today time.Time) error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.BusinessID = strings.TrimSpace(r.BusinessID)
	if r.EmployeeID == "" || r.BusinessID == "" || r.Status == "" {
		return apperr.Validation("employee_id, business_id, and status are required")
	}
	if !r.Status.Valid() {
		return apperr.Validation("Invalid status. Must be present, absent, or late")
	}

	r.Date = strings.TrimSpace(r.Date)
	if r.Date == "" {
		r.Date = today.UTC().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return apperr.Validation("date must be formatted as YYYY-MM-DD")
	}

	var err error
	if r.InTime, err = clockTime("in_time", r.InTime); err != nil {
		return err
	}
	if r.OutTime, err = clockTime("out_time", r.OutTime); err != nil {
		return err
	}
	return nil
}

// clockTime treats an empty value as absent.
func clockTime(field string, v *string) (*string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if _, err := time.Parse(layout, s); err == nil {
			return &s, nil
		}
	}
	return nil, apperr.Validationf("%s must be formatted as HH:MM or HH:MM:SS", field)
}

const (
	MsgMarked  = "Attendance marked successfully"
	MsgUpdated = "Attendance updated successfully"
)

// MarkResponse is returned by a successful mark.
// swagger:model MarkAttendanceResponse
type MarkResponse struct {
	Success    bool    `json:"success" example:"true"`
	Attendance *Record `json:"attendance"`
	Message    string  `json:"message" example:"Attendance marked successfully"`
}

// ListResponse holds one day of attendance.
// swagger:model AttendanceListResponse
type ListResponse struct {
	Date  string   `json:"date"`
	Items []Record `json:"items"`
}
