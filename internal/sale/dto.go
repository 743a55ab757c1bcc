package sale

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/erp-lite/internal/apperr"
)

// CartLine is one item of the checkout payload.
// swagger:model CartLine
type CartLine struct {
	ProductID string          `json:"product_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity  int             `json:"quantity"   example:"2"`
	Price     decimal.Decimal `json:"price"      swaggertype:"number" example:"10.00"`
}

// CreateRequest is the checkout payload.
// swagger:model CreateSaleRequest
type CreateRequest struct {
	Items      []CartLine `json:"items"`
	BusinessID string     `json:"business_id" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
}

// Validate checks the request shape before anything is resolved or written.
func (r *CreateRequest) Validate() error {
	if len(r.Items) == 0 {
		return apperr.Validation("Invalid items array")
	}
	r.BusinessID = strings.TrimSpace(r.BusinessID)
	if r.BusinessID == "" {
		return apperr.Validation("business_id is required")
	}
	for i := range r.Items {
		it := &r.Items[i]
		it.ProductID = strings.TrimSpace(it.ProductID)
		if it.ProductID == "" {
			return apperr.Validationf("items[%d].product_id is required", i)
		}
		if it.Quantity <= 0 {
			return apperr.Validationf("items[%d].quantity must be greater than zero", i)
		}
		if it.Price.IsNegative() {
			return apperr.Validationf("items[%d].price must be non-negative", i)
		}
		if !it.Price.Equal(it.Price.Round(2)) {
			return apperr.Validationf("items[%d].price must have at most two decimal places", i)
		}
	}
	return nil
}

// CreateResponse is returned on a successful checkout.
// swagger:model CreateSaleResponse
type CreateResponse struct {
	Success     bool            `json:"success"      example:"true"`
	SaleID      string          `json:"sale_id"      example:"0b6f3c1e-4f0a-4c39-9d4e-2f1c5a7e8b90"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"number" example:"25.00"`
	Message     string          `json:"message"      example:"Sale created successfully"`
}

func NewCreateResponse(r *Receipt) CreateResponse {
	return CreateResponse{Success: true, SaleID: r.SaleID, TotalAmount: r.TotalAmount, Message: r.Message}
}

// ListResponse is one page of sales.
// swagger:model SaleListResponse
type ListResponse struct {
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	Items  []Sale `json:"items"`
}
