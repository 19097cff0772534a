package depositrepo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/database"
)

func newMockRepo(t *testing.T) (IDepositRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(&database.DBManager{Db: db}, zerolog.Nop()), mock
}

func depositColumns() []string {
	return []string{"id", "user_id", "asset", "amount_crypto", "status", "hosted_url", "created_at", "updated_at"}
}

func TestCreateDeposit(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO deposits`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.Deposit{
		ID:           "fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10",
		Asset:        "BTC",
		AmountCrypto: decimal.RequireFromString("0.1"),
		Status:       domain.DepositStatusPending,
		HostedURL:    "https://demo.crypto2bank.local/pay/fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE id`).
		WillReturnRows(sqlmock.NewRows(depositColumns()))

	_, err := repo.GetByID(context.Background(), "fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10")
	assert.ErrorIs(t, err, domain.ErrDepositNotFound)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE id`).
		WillReturnRows(sqlmock.NewRows(depositColumns()).
			AddRow("fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10", nil, "BTC", "0.1", "pending",
				"https://demo.crypto2bank.local/pay/fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10", now, now))

	deposit, err := repo.GetByID(context.Background(), "fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10")
	require.NoError(t, err)
	assert.Equal(t, "BTC", deposit.Asset)
	assert.Equal(t, "0.1", deposit.AmountCrypto.String())
	assert.Equal(t, domain.DepositStatusPending, deposit.Status)
	assert.Empty(t, deposit.UserID)
}

func TestConfirm(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE deposits SET status`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Confirm(context.Background(), "fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10"))
}

func TestConfirmNotPending(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectExec(`UPDATE deposits SET status`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE id`).
		WillReturnRows(sqlmock.NewRows(depositColumns()).
			AddRow("fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10", nil, "BTC", "0.1", "converted", "", now, now))

	err := repo.Confirm(context.Background(), "fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10")
	assert.ErrorIs(t, err, domain.ErrDepositNotConfirmable)
}

func TestConfirmMissingDeposit(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE deposits SET status`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE id`).
		WillReturnRows(sqlmock.NewRows(depositColumns()))

	err := repo.Confirm(context.Background(), "fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10")
	assert.ErrorIs(t, err, domain.ErrDepositNotFound)
}

func TestMarkConvertedTxNotConfirmed(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE deposits SET status`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)

	err = repo.MarkConvertedTx(context.Background(), tx, "fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10")
	assert.ErrorIs(t, err, domain.ErrDepositNotConvertible)
}

func TestListRecent(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .+ FROM deposits ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(depositColumns()).
			AddRow("fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10", "3f2b0c9a-16dd-4f6e-8f68-1df2a1df0a11", "ETH", "2.5", "pending", "", now, now).
			AddRow("0d1b3f6e-8a2c-4a4e-bb0e-7a5b0c9d1e2f", nil, "BTC", "0.1", "converted", "", now, now))

	deposits, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, deposits, 2)
	assert.Equal(t, "ETH", deposits[0].Asset)
	assert.Equal(t, "3f2b0c9a-16dd-4f6e-8f68-1df2a1df0a11", deposits[0].UserID)
	assert.Equal(t, domain.DepositStatusConverted, deposits[1].Status)
}
