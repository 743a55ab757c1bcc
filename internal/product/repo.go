// Package product provides the tenant-scoped catalog used for listing and for
// server-side price checks at checkout.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Query struct {
	Q            string
	LowStockOnly bool
	Limit        int
	Offset       int
}

// Normalize clamps paging to the supported window.
func (q Query) Normalize() Query {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	q.Q = strings.TrimSpace(q.Q)
	return q
}

type Repository interface {
	GetByID(ctx context.Context, businessID, id string) (*Product, error)
	List(ctx context.Context, businessID string, q Query) ([]Product, error)
	// SellingPrices returns the catalog price of every id that belongs to the
	// business; ids of other businesses are simply absent from the map.
	SellingPrices(ctx context.Context, businessID string, ids []string) (map[string]decimal.Decimal, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const productColumns = `id::text, business_id::text, name, category, sku, description,
	selling_price::text, buying_price::text, quantity, low_stock_limit, created_at, updated_at`

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p               Product
		selling, buying string
	)
	if err := row.Scan(&p.ID, &p.BusinessID, &p.Name, &p.Category, &p.SKU, &p.Description,
		&selling, &buying, &p.Quantity, &p.LowStockLimit, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if p.SellingPrice, err = decimal.NewFromString(selling); err != nil {
		return nil, fmt.Errorf("selling_price: %w", err)
	}
	if p.BuyingPrice, err = decimal.NewFromString(buying); err != nil {
		return nil, fmt.Errorf("buying_price: %w", err)
	}
	return &p, nil
}

func (r *PGRepo) GetByID(ctx context.Context, businessID, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE business_id::text = $1 AND id::text = $2
	`, businessID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PGRepo) List(ctx context.Context, businessID string, q Query) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q = q.Normalize()
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE business_id::text = $1
		  AND ($2 = '' OR name ILIKE '%'||$2||'%' OR category ILIKE '%'||$2||'%' OR sku ILIKE '%'||$2||'%')
		  AND (NOT $3 OR quantity <= low_stock_limit)
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5
	`, businessID, q.Q, q.LowStockOnly, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PGRepo) SellingPrices(ctx context.Context, businessID string, ids []string) (map[string]decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out := make(map[string]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT id::text, selling_price::text
		FROM products
		WHERE business_id::text = $1 AND id::text = ANY($2::text[])
	`, businessID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, price string
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("selling_price of %s: %w", id, err)
		}
		out[id] = d
	}
	return out, rows.Err()
}
