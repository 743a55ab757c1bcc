package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string  `json:"id"`
	BusinessID  string  `json:"business_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	SKU         *string `json:"sku,omitempty"`
	Description *string `json:"description,omitempty"`
	// NUMERIC columns are read as text and parsed, never through float64
	SellingPrice  decimal.Decimal `json:"selling_price"`
	BuyingPrice   decimal.Decimal `json:"buying_price"`
	Quantity      int             `json:"quantity"`
	LowStockLimit int             `json:"low_stock_limit"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// LowStock reports whether the product is at or under its alert limit.
func (p Product) LowStock() bool { return p.Quantity <= p.LowStockLimit }

// ListResponse represents the paginated response of products.
// swagger:model
type ListResponse struct {
	// search query applied
	Q string `json:"q,omitempty"`
	// limit applied
	Limit int `json:"limit"`
	// offset applied
	Offset int `json:"offset"`
	// items found
	Items []Product `json:"items"`
}
