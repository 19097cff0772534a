package ledgerservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/conversionrepo"
)

type fakeDepositRepo struct {
	recent    []domain.Deposit
	lastLimit int
}

func (f *fakeDepositRepo) Create(context.Context, *domain.Deposit) error { return nil }
func (f *fakeDepositRepo) GetByID(context.Context, string) (*domain.Deposit, error) {
	return nil, domain.ErrDepositNotFound
}
func (f *fakeDepositRepo) Confirm(context.Context, string) error          { return nil }
func (f *fakeDepositRepo) BeginTx(context.Context) (*sql.Tx, error)       { return nil, nil }
func (f *fakeDepositRepo) MarkConvertedTx(context.Context, *sql.Tx, string) error {
	return nil
}
func (f *fakeDepositRepo) ListRecent(_ context.Context, limit int) ([]domain.Deposit, error) {
	f.lastLimit = limit
	return f.recent, nil
}

type fakeConversionRepo struct {
	totals *conversionrepo.SummaryTotals
	recent []domain.Conversion
}

func (f *fakeConversionRepo) CreateTx(context.Context, *sql.Tx, *domain.Conversion) error { return nil }
func (f *fakeConversionRepo) GetByID(context.Context, string) (*domain.Conversion, error) {
	return nil, domain.ErrConversionNotFound
}
func (f *fakeConversionRepo) ListRecent(context.Context, int) ([]domain.Conversion, error) {
	return f.recent, nil
}
func (f *fakeConversionRepo) Totals(context.Context) (*conversionrepo.SummaryTotals, error) {
	return f.totals, nil
}

type fakePayoutRepo struct {
	recent []domain.Payout
	count  int64
}

func (f *fakePayoutRepo) Create(context.Context, *domain.Payout) error { return nil }
func (f *fakePayoutRepo) ListRecent(context.Context, int) ([]domain.Payout, error) {
	return f.recent, nil
}
func (f *fakePayoutRepo) Count(context.Context) (int64, error) { return f.count, nil }

func TestGetSummary(t *testing.T) {
	svc := New(
		&fakeDepositRepo{},
		&fakeConversionRepo{totals: &conversionrepo.SummaryTotals{
			GrossCents: 500000,
			FeeCents:   15150,
			NetCents:   484850,
			Count:      1,
		}},
		&fakePayoutRepo{count: 1},
		zerolog.Nop(),
	)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(500000), summary.TotalGrossCents)
	assert.Equal(t, int64(15150), summary.TotalFeeCents)
	assert.Equal(t, int64(484850), summary.TotalNetCents)
	assert.Equal(t, int64(1), summary.ConversionCount)
	assert.Equal(t, int64(1), summary.PayoutCount)
}

func TestGetActivityDefaultLimit(t *testing.T) {
	deposits := &fakeDepositRepo{recent: []domain.Deposit{{ID: "d1"}}}
	svc := New(
		deposits,
		&fakeConversionRepo{recent: []domain.Conversion{{ID: "c1"}}},
		&fakePayoutRepo{recent: []domain.Payout{{ID: "p1"}}},
		zerolog.Nop(),
	)

	feed, err := svc.GetActivity(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 10, deposits.lastLimit)
	assert.Len(t, feed.Deposits, 1)
	assert.Len(t, feed.Conversions, 1)
	assert.Len(t, feed.Payouts, 1)
}
