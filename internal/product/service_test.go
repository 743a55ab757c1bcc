package product

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/MikeMC777/erp-lite/internal/apperr"
	"github.com/MikeMC777/erp-lite/internal/auth"
	"github.com/MikeMC777/erp-lite/internal/tenant"
)

func newService(t *testing.T) (*Service, *MemRepo) {
	t.Helper()
	repo := NewMemRepo()
	dir := tenant.NewMemDirectory()
	dir.Grant("b1", "u1")
	ids := auth.ResolverFunc(func(_ context.Context, token string) (auth.Identity, error) {
		if token == "t1" {
			return auth.Identity{UserID: "u1"}, nil
		}
		return auth.Identity{}, auth.ErrInvalidCredential
	})
	log := zaptest.NewLogger(t)
	return NewService(repo, tenant.NewGate(ids, dir, log), log), repo
}

func TestList_ScopedAndFiltered(t *testing.T) {
	svc, repo := newService(t)
	base := time.Now().Add(-time.Hour)
	repo.Put(Product{BusinessID: "b1", Name: "Espresso beans", Category: "Coffee", Quantity: 2, LowStockLimit: 5, CreatedAt: base})
	repo.Put(Product{BusinessID: "b1", Name: "Oat milk", Category: "Dairy", Quantity: 40, LowStockLimit: 10, CreatedAt: base.Add(time.Minute)})
	repo.Put(Product{BusinessID: "b2", Name: "Espresso cups", Category: "Coffee", Quantity: 1, LowStockLimit: 5})

	all, err := svc.List(context.Background(), "t1", "b1", Query{})
	require.NoError(t, err)
	require.Len(t, all.Items, 2)
	assert.Equal(t, "Oat milk", all.Items[0].Name, "newest first")
	assert.Equal(t, 20, all.Limit)

	coffee, err := svc.List(context.Background(), "t1", "b1", Query{Q: "coffee"})
	require.NoError(t, err)
	require.Len(t, coffee.Items, 1)
	assert.Equal(t, "Espresso beans", coffee.Items[0].Name)

	low, err := svc.List(context.Background(), "t1", "b1", Query{LowStockOnly: true})
	require.NoError(t, err)
	require.Len(t, low.Items, 1)
	assert.True(t, low.Items[0].LowStock())

	page, err := svc.List(context.Background(), "t1", "b1", Query{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Espresso beans", page.Items[0].Name)
}

func TestList_Rejections(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.List(context.Background(), "t1", "", Query{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.List(context.Background(), "bad", "b1", Query{})
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))

	_, err = svc.List(context.Background(), "t1", "b2", Query{})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestGet(t *testing.T) {
	svc, repo := newService(t)
	own := repo.Put(Product{BusinessID: "b1", Name: "Latte", SellingPrice: decimal.RequireFromString("4.50")})
	other := repo.Put(Product{BusinessID: "b2", Name: "Mocha"})

	got, err := svc.Get(context.Background(), "t1", "b1", own.ID)
	require.NoError(t, err)
	assert.Equal(t, "Latte", got.Name)

	_, err = svc.Get(context.Background(), "t1", "b1", other.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err), "another tenant's product is not visible")

	_, err = svc.Get(context.Background(), "t1", "b2", other.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.Get(context.Background(), "t1", " ", own.ID)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestMemRepo_SellingPrices(t *testing.T) {
	repo := NewMemRepo()
	own := repo.Put(Product{BusinessID: "b1", Name: "Latte", SellingPrice: decimal.RequireFromString("4.50")})
	other := repo.Put(Product{BusinessID: "b2", Name: "Mocha", SellingPrice: decimal.RequireFromString("5.00")})

	prices, err := repo.SellingPrices(context.Background(), "b1", []string{own.ID, other.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.True(t, prices[own.ID].Equal(decimal.RequireFromString("4.5")))

	_, err = repo.GetByID(context.Background(), "b1", other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuery_Normalize(t *testing.T) {
	q := Query{Q: "  milk ", Limit: 500, Offset: -3}.Normalize()
	assert.Equal(t, Query{Q: "milk", Limit: 20, Offset: 0}, q)
}
