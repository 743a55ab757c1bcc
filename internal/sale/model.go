package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the header of one checkout.
type Sale struct {
	ID          string          `json:"id"`
	BusinessID  string          `json:"business_id"`
	UserID      string          `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"` // NUMERIC read as text
	CreatedAt   time.Time       `json:"created_at"`
	Items       []Item          `json:"items,omitempty"`
}

type Item struct {
	ID        string          `json:"id"`
	SaleID    string          `json:"sale_id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Total sums quantity × price over lines.
func Total(lines []CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

// Receipt is what a successful create hands back.
type Receipt struct {
	SaleID      string
	TotalAmount decimal.Decimal
	Message     string
}

const MsgCreated = "Sale created successfully"

func itemsFor(saleID string, lines []CartLine) []Item {
	items := make([]Item, len(lines))
	for i, l := range lines {
		items[i] = Item{SaleID: saleID, ProductID: l.ProductID, Quantity: l.Quantity, Price: l.Price}
	}
	return items
}
