package depositservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/config"
)

type fakeDepositRepo struct {
	created   []*domain.Deposit
	confirmed []string
	byID      map[string]*domain.Deposit
}

func (f *fakeDepositRepo) Create(_ context.Context, d *domain.Deposit) error {
	f.created = append(f.created, d)
	return nil
}

func (f *fakeDepositRepo) GetByID(_ context.Context, id string) (*domain.Deposit, error) {
	if d, ok := f.byID[id]; ok {
		return d, nil
	}
	return nil, domain.ErrDepositNotFound
}

func (f *fakeDepositRepo) Confirm(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrDepositNotFound
	}
	f.confirmed = append(f.confirmed, id)
	return nil
}

func (f *fakeDepositRepo) BeginTx(context.Context) (*sql.Tx, error) { return nil, nil }

func (f *fakeDepositRepo) MarkConvertedTx(context.Context, *sql.Tx, string) error { return nil }

func (f *fakeDepositRepo) ListRecent(context.Context, int) ([]domain.Deposit, error) {
	return nil, nil
}

func newService(repo *fakeDepositRepo) IDepositService {
	return New(repo, config.PaymentsConfig{HostedBaseURL: "https://demo.crypto2bank.local/pay"}, zerolog.Nop())
}

func TestCreateDeposit(t *testing.T) {
	repo := &fakeDepositRepo{}
	svc := newService(repo)

	deposit, err := svc.Create(context.Background(), CreateDepositParams{
		Asset:        "btc",
		AmountCrypto: decimal.RequireFromString("0.1"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, deposit.ID)
	assert.Equal(t, "BTC", deposit.Asset)
	assert.Equal(t, domain.DepositStatusPending, deposit.Status)
	assert.Equal(t, "0.1", deposit.AmountCrypto.String())
	assert.Equal(t, "https://demo.crypto2bank.local/pay/"+deposit.ID, deposit.HostedURL)
	require.Len(t, repo.created, 1)
}

func TestCreateDepositMissingAsset(t *testing.T) {
	svc := newService(&fakeDepositRepo{})

	_, err := svc.Create(context.Background(), CreateDepositParams{
		AmountCrypto: decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCreateDepositUnsupportedAsset(t *testing.T) {
	svc := newService(&fakeDepositRepo{})

	_, err := svc.Create(context.Background(), CreateDepositParams{
		Asset:        "DOGE",
		AmountCrypto: decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedAsset)
}

func TestCreateDepositNonPositiveAmount(t *testing.T) {
	svc := newService(&fakeDepositRepo{})

	for _, amount := range []string{"0", "-0.5"} {
		_, err := svc.Create(context.Background(), CreateDepositParams{
			Asset:        "BTC",
			AmountCrypto: decimal.RequireFromString(amount),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "amount %s", amount)
	}
}

func TestConfirmDeposit(t *testing.T) {
	id := "fb3a7a47-9e9d-4f2d-95c7-05f71b6f0a10"
	repo := &fakeDepositRepo{byID: map[string]*domain.Deposit{
		id: {ID: id, Asset: "BTC", Status: domain.DepositStatusConfirmed},
	}}
	svc := newService(repo)

	deposit, err := svc.Confirm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, deposit.ID)
	assert.Equal(t, []string{id}, repo.confirmed)
}

func TestConfirmDepositBadID(t *testing.T) {
	svc := newService(&fakeDepositRepo{})

	_, err := svc.Confirm(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrDepositNotFound)
}
