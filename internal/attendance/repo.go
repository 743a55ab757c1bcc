// Package attendance records daily employee attendance, one row per employee
// and date.
package attendance

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	EmployeeInBusiness(ctx context.Context, businessID, employeeID string) (bool, error)
	// Upsert writes rec keyed by (employee, date) and reports whether a row
	// for that day already existed.
	Upsert(ctx context.Context, rec *Record) (updated bool, err error)
	ListByDate(ctx context.Context, businessID, date string) ([]Record, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) EmployeeInBusiness(ctx context.Context, businessID, employeeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ok bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM employees WHERE id::text = $1 AND business_id::text = $2
		)
	`, employeeID, businessID).Scan(&ok)
	return ok, err
}

func (r *PGRepo) Upsert(ctx context.Context, rec *Record) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// xmax is non-zero when ON CONFLICT took the update branch
	var updated bool
	err := r.db.QueryRow(ctx, `
		INSERT INTO attendance (business_id, employee_id, date, status, in_time, out_time)
		VALUES ($1, $2, $3::text::date, $4, $5::text::time, $6::text::time)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET status = EXCLUDED.status, in_time = EXCLUDED.in_time, out_time = EXCLUDED.out_time
		RETURNING id::text, date::text, in_time::text, out_time::text, created_at, (xmax <> 0)
	`, rec.BusinessID, rec.EmployeeID, rec.Date, string(rec.Status), rec.InTime, rec.OutTime).
		Scan(&rec.ID, &rec.Date, &rec.InTime, &rec.OutTime, &rec.CreatedAt, &updated)
	return updated, err
}

func (r *PGRepo) ListByDate(ctx context.Context, businessID, date string) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id::text, business_id::text, employee_id::text, date::text, status,
		       in_time::text, out_time::text, created_at
		FROM attendance
		WHERE business_id::text = $1 AND date = $2::text::date
		ORDER BY created_at
	`, businessID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var rec Record
		var status string
		if err := rows.Scan(&rec.ID, &rec.BusinessID, &rec.EmployeeID, &rec.Date, &status,
			&rec.InTime, &rec.OutTime, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Status = Status(status)
		out = append(out, rec)
	}
	return out, rows.Err()
}
