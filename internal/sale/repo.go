// Package sale records checkouts: one sale header plus its line items,
// persisted all-or-nothing.
package sale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/erp-lite/internal/db"
)

var (
	ErrNotFound = errors.New("sale not found")
)

type Repository interface {
	// InsertSale stores the header and fills in the generated ID and CreatedAt.
	InsertSale(ctx context.Context, s *Sale) error
	// InsertItems stores every item of saleID and fills in their IDs.
	InsertItems(ctx context.Context, saleID string, items []Item) error
	DeleteSale(ctx context.Context, businessID, id string) error
	GetByID(ctx context.Context, businessID, id string) (*Sale, error)
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]Sale, error)
}

// Transactor is implemented by stores that can run several writes as one unit.
// When fn returns an error nothing it wrote remains.
type Transactor interface {
	InTx(ctx context.Context, fn func(Repository) error) error
}

// PGRepo works on the pool, or on a transaction inside InTx.
type PGRepo struct {
	db   db.Querier
	pool db.Pool
}

func NewPGRepo(pool db.Pool) *PGRepo { return &PGRepo{db: pool, pool: pool} }

func (r *PGRepo) InTx(ctx context.Context, fn func(Repository) error) error {
	if r.pool == nil {
		return fn(r)
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&PGRepo{db: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) InsertSale(ctx context.Context, s *Sale) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO sales (business_id, user_id, total_amount)
		VALUES ($1, $2, $3)
		RETURNING id::text, created_at
	`, s.BusinessID, s.UserID, s.TotalAmount.String()).Scan(&s.ID, &s.CreatedAt)
}

func (r *PGRepo) InsertItems(ctx context.Context, saleID string, items []Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for i := range items {
		err := r.db.QueryRow(ctx, `
			INSERT INTO sale_items (sale_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id::text
		`, saleID, items[i].ProductID, items[i].Quantity, items[i].Price.String()).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("item %d (product %s): %w", i, items[i].ProductID, err)
		}
		items[i].SaleID = saleID
	}
	return nil
}

func (r *PGRepo) DeleteSale(ctx context.Context, businessID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM sales WHERE id::text = $1 AND business_id::text = $2
	`, id, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const saleColumns = `id::text, business_id::text, user_id::text, total_amount::text, created_at`

func scanSale(row pgx.Row) (*Sale, error) {
	var (
		s     Sale
		total string
	)
	if err := row.Scan(&s.ID, &s.BusinessID, &s.UserID, &total, &s.CreatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("total_amount: %w", err)
	}
	s.TotalAmount = d
	return &s, nil
}

func (r *PGRepo) GetByID(ctx context.Context, businessID, id string) (*Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s, err := scanSale(r.db.QueryRow(ctx, `
		SELECT `+saleColumns+`
		FROM sales WHERE id::text = $1 AND business_id::text = $2
	`, id, businessID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id::text, sale_id::text, product_id::text, quantity, price::text
		FROM sale_items WHERE sale_id::text = $1
		ORDER BY id
	`, s.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	s.Items = []Item{}
	for rows.Next() {
		var (
			it    Item
			price string
		)
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &price); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("price of item %s: %w", it.ID, err)
		}
		s.Items = append(s.Items, it)
	}
	return s, rows.Err()
}

func (r *PGRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit, offset = page(limit, offset)
	rows, err := r.db.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales WHERE business_id::text = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func page(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
