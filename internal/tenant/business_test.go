package tenant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/MikeMC777/erp-lite/internal/apperr"
)

func TestOnboarding_Setup(t *testing.T) {
	dir := NewMemDirectory()
	log := zaptest.NewLogger(t)
	svc := NewOnboarding(NewGate(tokens, dir, log), dir, log)

	phone := "  "
	out, err := svc.Setup(context.Background(), "owner", SetupRequest{Name: " Corner Cafe ", FullName: "Ana Ruiz", Phone: &phone})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Corner Cafe", out.Business.Name)
	assert.Equal(t, "u1", out.Business.OwnerID)
	require.NotEmpty(t, out.Business.ID)

	stored, ok := dir.Business(out.Business.ID)
	require.True(t, ok)
	assert.Equal(t, out.Business.Name, stored.Name)

	id, err := NewGate(tokens, dir, log).Enter(context.Background(), "owner", out.Business.ID)
	require.NoError(t, err, "owner is a member of the new business")
	assert.Equal(t, "u1", id.UserID)

	_, err = svc.Setup(context.Background(), "owner", SetupRequest{Name: "Second", FullName: "Ana Ruiz"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestOnboarding_Rejections(t *testing.T) {
	dir := NewMemDirectory()
	log := zaptest.NewLogger(t)
	svc := NewOnboarding(NewGate(tokens, dir, log), dir, log)

	_, err := svc.Setup(context.Background(), "owner", SetupRequest{Name: "Cafe"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.EqualError(t, err, "validation: name and full_name are required")

	_, err = svc.Setup(context.Background(), "nope", SetupRequest{Name: "Cafe", FullName: "Ana"})
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
}

type failingRegistry struct{}

func (failingRegistry) CreateBusiness(context.Context, *Business, Profile) error {
	return errors.New("connection reset")
}

func TestOnboarding_StoreFailure(t *testing.T) {
	log := zaptest.NewLogger(t)
	svc := NewOnboarding(NewGate(tokens, NewMemDirectory(), log), failingRegistry{}, log)

	_, err := svc.Setup(context.Background(), "owner", SetupRequest{Name: "Cafe", FullName: "Ana"})
	assert.Equal(t, apperr.KindPersistence, apperr.KindOf(err))
	assert.Equal(t, StepCreateBusiness, apperr.StepOf(err))
}

func TestPGDirectory_CreateBusiness(t *testing.T) {
	owner := Profile{UserID: "u1", FullName: "Ana Ruiz", Email: "ana@example.com"}

	t.Run("commit", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		mock.ExpectBeginTx(pgx.TxOptions{})
		mock.ExpectQuery("SELECT EXISTS").WithArgs("u1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO businesses").WithArgs("Corner Cafe", "u1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("b9", created))
		mock.ExpectExec("INSERT INTO profiles").
			WithArgs("u1", "b9", "Ana Ruiz", "ana@example.com", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		b := &Business{Name: "Corner Cafe", OwnerID: "u1"}
		require.NoError(t, NewPGDirectory(mock).CreateBusiness(context.Background(), b, owner))
		assert.Equal(t, "b9", b.ID)
		assert.Equal(t, created, b.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already set up", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{})
		mock.ExpectQuery("SELECT EXISTS").WithArgs("u1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		err = NewPGDirectory(mock).CreateBusiness(context.Background(), &Business{Name: "Cafe", OwnerID: "u1"}, owner)
		assert.ErrorIs(t, err, ErrAlreadySetUp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("profile failure rolls back the business", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBeginTx(pgx.TxOptions{})
		mock.ExpectQuery("SELECT EXISTS").WithArgs("u1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO businesses").WithArgs("Cafe", "u1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("b9", time.Now()))
		mock.ExpectExec("INSERT INTO profiles").
			WillReturnError(errors.New("value too long for type character varying"))
		mock.ExpectRollback()

		err = NewPGDirectory(mock).CreateBusiness(context.Background(), &Business{Name: "Cafe", OwnerID: "u1"}, owner)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "profile upsert")
		assert.NoError(t, mock.ExpectationsWereMet(), "no commit")
	})
}
