package conversionservice

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
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/conversionrepo"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/depositrepo"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/currency"
)

const depositID = "fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10"

type fakeRateClient struct {
	rate *domain.Rate
	err  error
}

func (f *fakeRateClient) GetUSDRate(context.Context, string) (*domain.Rate, error) {
	return f.rate, f.err
}

func newService(t *testing.T, rates *fakeRateClient) (IConversionService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dm := &database.DBManager{Db: db}
	svc := New(
		depositrepo.New(dm, zerolog.Nop()),
		conversionrepo.New(dm, zerolog.Nop()),
		rates,
		currency.Standard,
		zerolog.Nop(),
	)
	return svc, mock
}

func expectDepositRow(mock sqlmock.Sqlmock, status string) {
	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE id`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "asset", "amount_crypto", "status", "hosted_url", "created_at", "updated_at"}).
			AddRow(depositID, nil, "BTC", "0.1", status, "", now, now))
}

func TestConvert(t *testing.T) {
	rates := &fakeRateClient{rate: &domain.Rate{
		Asset:    "BTC",
		PriceUSD: decimal.NewFromInt(50000),
		Provider: "coingecko",
	}}
	svc, mock := newService(t, rates)

	expectDepositRow(mock, "confirmed")
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE deposits SET status`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO conversions`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	conversion, err := svc.Convert(context.Background(), depositID)
	require.NoError(t, err)

	// 0.1 BTC at $50,000: gross $5,000.00, fee $151.50, net $4,848.50
	assert.Equal(t, int64(500000), conversion.AmountFiatGrossCents)
	assert.Equal(t, int64(15150), conversion.FeeCents)
	assert.Equal(t, int64(484850), conversion.AmountFiatNetCents)
	assert.Equal(t, int64(3), conversion.FeePercent)
	assert.Equal(t, "USD", conversion.FiatCurrency)
	assert.Equal(t, "coingecko", conversion.Provider)
	assert.Equal(t, domain.ConversionStatusCompleted, conversion.Status)
	assert.Equal(t, depositID, conversion.DepositID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertDepositNotFound(t *testing.T) {
	svc, mock := newService(t, &fakeRateClient{})

	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE id`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "asset", "amount_crypto", "status", "hosted_url", "created_at", "updated_at"}))

	_, err := svc.Convert(context.Background(), depositID)
	assert.ErrorIs(t, err, domain.ErrDepositNotFound)
}

func TestConvertBadDepositID(t *testing.T) {
	svc, _ := newService(t, &fakeRateClient{})

	_, err := svc.Convert(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrDepositNotFound)
}

func TestConvertMissingDepositID(t *testing.T) {
	svc, _ := newService(t, &fakeRateClient{})

	_, err := svc.Convert(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestConvertUnconfirmedDeposit(t *testing.T) {
	rates := &fakeRateClient{rate: &domain.Rate{
		Asset:    "BTC",
		PriceUSD: decimal.NewFromInt(50000),
		Provider: "coingecko",
	}}
	svc, mock := newService(t, rates)

	expectDepositRow(mock, "pending")
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE deposits SET status`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Convert(context.Background(), depositID)
	assert.ErrorIs(t, err, domain.ErrDepositNotConvertible)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertRateUnavailable(t *testing.T) {
	svc, mock := newService(t, &fakeRateClient{err: domain.ErrRateUnavailable})

	expectDepositRow(mock, "confirmed")

	_, err := svc.Convert(context.Background(), depositID)
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}
