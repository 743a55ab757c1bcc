package sale

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/erp-lite/internal/apperr"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func expectHeader(mock pgxmock.PgxPoolIface, id string) {
	mock.ExpectQuery("INSERT INTO sales").
		WithArgs("b1", "u1", "25").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, time.Now().UTC()))
}

func TestPGRepo_CreateCommits(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBeginTx(pgx.TxOptions{})
	expectHeader(mock, "sale-1")
	mock.ExpectQuery("INSERT INTO sale_items").
		WithArgs("sale-1", "p1", 2, "10").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("item-1"))
	mock.ExpectQuery("INSERT INTO sale_items").
		WithArgs("sale-1", "p2", 1, "5").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("item-2"))
	mock.ExpectCommit()

	svc, m := newSvc(t, NewPGRepo(mock))
	rc, err := svc.Create(context.Background(), "t1", scenarioA())
	require.NoError(t, err)
	assert.Equal(t, "sale-1", rc.SaleID)
	assert.True(t, rc.TotalAmount.Equal(d("25.00")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Created))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepo_SecondItemFailureRollsBack(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBeginTx(pgx.TxOptions{})
	expectHeader(mock, "sale-1")
	mock.ExpectQuery("INSERT INTO sale_items").
		WithArgs("sale-1", "p1", 2, "10").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("item-1"))
	mock.ExpectQuery("INSERT INTO sale_items").
		WithArgs("sale-1", "p2", 1, "5").
		WillReturnError(errors.New(`insert or update on table "sale_items" violates foreign key constraint`))
	mock.ExpectRollback()

	svc, m := newSvc(t, NewPGRepo(mock))
	rc, err := svc.Create(context.Background(), "t1", scenarioA())
	require.Error(t, err)
	assert.Nil(t, rc)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, StepCreateItems, ae.Step)
	assert.Contains(t, ae.Details(), "item 1 (product p2)")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rollbacks.WithLabelValues(rollbackTransaction)))
	assert.Zero(t, testutil.ToFloat64(m.Rollbacks.WithLabelValues(rollbackCompensation)))
	assert.NoError(t, mock.ExpectationsWereMet(), "no commit and no compensating delete")
}

func TestPGRepo_BeginFailure(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBeginTx(pgx.TxOptions{}).WillReturnError(errors.New("too many connections"))

	svc, m := newSvc(t, NewPGRepo(mock))
	_, err := svc.Create(context.Background(), "t1", scenarioA())
	require.Error(t, err)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindPersistence, ae.Kind)
	assert.Equal(t, StepCreateSale, ae.Step)
	assert.Equal(t, "Failed to create sale", ae.Message)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Failed.WithLabelValues(StepCreateSale)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepo_InTxRollsBackOnError(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := NewPGRepo(mock).InTx(context.Background(), func(Repository) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepo_DeleteSale(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec("DELETE FROM sales").
		WithArgs("s1", "b1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM sales").
		WithArgs("s2", "b1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewPGRepo(mock)
	assert.NoError(t, repo.DeleteSale(context.Background(), "b1", "s1"))
	assert.ErrorIs(t, repo.DeleteSale(context.Background(), "b1", "s2"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepo_GetByID(t *testing.T) {
	mock := newMockPool(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM sales WHERE id").
		WithArgs("s1", "b1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "business_id", "user_id", "total_amount", "created_at"}).
			AddRow("s1", "b1", "u1", "25.00", created))
	mock.ExpectQuery("FROM sale_items").
		WithArgs("s1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "sale_id", "product_id", "quantity", "price"}).
			AddRow("i1", "s1", "p1", 2, "10.00").
			AddRow("i2", "s1", "p2", 1, "5.00"))
	mock.ExpectQuery("FROM sales WHERE id").
		WithArgs("missing", "b1").
		WillReturnError(pgx.ErrNoRows)

	repo := NewPGRepo(mock)
	got, err := repo.GetByID(context.Background(), "b1", "s1")
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(d("25")))
	require.Len(t, got.Items, 2)
	assert.True(t, got.Items[1].Price.Equal(d("5")))

	_, err = repo.GetByID(context.Background(), "b1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
