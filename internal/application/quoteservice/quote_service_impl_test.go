package quoteservice

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/currency"
)

type fakeRateClient struct {
	rate *domain.Rate
	err  error
}

func (f *fakeRateClient) GetUSDRate(context.Context, string) (*domain.Rate, error) {
	return f.rate, f.err
}

func TestQuote(t *testing.T) {
	svc := New(&fakeRateClient{rate: &domain.Rate{
		Asset:    "BTC",
		PriceUSD: decimal.NewFromInt(50000),
		Provider: "coingecko",
	}}, currency.Standard, zerolog.Nop())

	quote, err := svc.Quote(context.Background(), "btc", decimal.RequireFromString("0.1"))
	require.NoError(t, err)

	assert.Equal(t, "BTC", quote.Asset)
	assert.Equal(t, int64(500000), quote.GrossCents)
	assert.Equal(t, int64(15150), quote.FeeCents)
	assert.Equal(t, int64(484850), quote.NetCents)
	assert.Equal(t, "USD", quote.FiatCurrency)
}

func TestQuoteInvalidArguments(t *testing.T) {
	svc := New(&fakeRateClient{}, currency.Standard, zerolog.Nop())

	_, err := svc.Quote(context.Background(), "", decimal.RequireFromString("1"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Quote(context.Background(), "BTC", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestQuoteUnsupportedAsset(t *testing.T) {
	svc := New(&fakeRateClient{err: domain.ErrUnsupportedAsset}, currency.Standard, zerolog.Nop())

	_, err := svc.Quote(context.Background(), "DOGE", decimal.RequireFromString("1"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedAsset)
}
