package sale

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/erp-lite/internal/apperr"
)

type PricingMode string

const (
	// PricingTrust uses the caller's unit prices as sent.
	PricingTrust PricingMode = "trust"
	// PricingVerify rejects lines whose price differs from the catalog.
	PricingVerify PricingMode = "verify"
	// PricingCatalog replaces caller prices with catalog prices.
	PricingCatalog PricingMode = "catalog"
)

const StepPriceLookup = "price_lookup"

func ParsePricingMode(s string) (PricingMode, error) {
	switch m := PricingMode(s); m {
	case "":
		return PricingTrust, nil
	case PricingTrust, PricingVerify, PricingCatalog:
		return m, nil
	default:
		return "", fmt.Errorf("unknown pricing mode %q", s)
	}
}

// PriceBook yields the selling price of products owned by a business.
// Products of other businesses are absent from the result.
type PriceBook interface {
	SellingPrices(ctx context.Context, businessID string, ids []string) (map[string]decimal.Decimal, error)
}

type Pricer struct {
	Mode PricingMode
	Book PriceBook
}

// Apply returns the lines to be charged. In trust mode they are returned untouched.
func (p Pricer) Apply(ctx context.Context, businessID string, lines []CartLine) ([]CartLine, error) {
	if p.Mode == "" || p.Mode == PricingTrust || p.Book == nil {
		return lines, nil
	}

	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; !ok {
			seen[l.ProductID] = struct{}{}
			ids = append(ids, l.ProductID)
		}
	}
	prices, err := p.Book.SellingPrices(ctx, businessID, ids)
	if err != nil {
		return nil, apperr.Persistence(StepPriceLookup, "Failed to load catalog prices", err)
	}

	out := make([]CartLine, len(lines))
	for i, l := range lines {
		price, ok := prices[l.ProductID]
		if !ok {
			return nil, apperr.Validationf("items[%d].product_id is not in the catalog", i)
		}
		if p.Mode == PricingVerify && !price.Equal(l.Price) {
			return nil, apperr.Validationf("items[%d].price does not match the catalog price %s", i, price.StringFixed(2))
		}
		l.Price = price
		out[i] = l
	}
	return out, nil
}
