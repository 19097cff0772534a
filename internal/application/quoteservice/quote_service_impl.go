package quoteservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/clients"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/currency"
)

type quoteService struct {
	rateClient clients.IRateClient
	fees       currency.FeeSchedule
	logger     zerolog.Logger
}

func New(rateClient clients.IRateClient, fees currency.FeeSchedule, logger zerolog.Logger) IQuoteService {
	return &quoteService{
		rateClient: rateClient,
		fees:       fees,
		logger:     logger.With().Str("component", "quote_service").Logger(),
	}
}

// Quote previews the conversion math at the current rate without writing
// anything. A quote is not a price lock.
func (s *quoteService) Quote(ctx context.Context, asset string, amountCrypto decimal.Decimal) (*domain.Quote, error) {
	symbol := strings.ToUpper(strings.TrimSpace(asset))
	if symbol == "" {
		return nil, fmt.Errorf("%w: asset is required", domain.ErrInvalidArgument)
	}
	if amountCrypto.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amountCrypto must be > 0", domain.ErrInvalidArgument)
	}

	rate, err := s.rateClient.GetUSDRate(ctx, symbol)
	if err != nil {
		return nil, err
	}

	grossCents := currency.CryptoToCents(amountCrypto, rate.PriceUSD)
	feeCents := s.fees.FeeCents(grossCents)

	return &domain.Quote{
		Asset:        symbol,
		AmountCrypto: amountCrypto,
		PriceUSD:     rate.PriceUSD,
		FiatCurrency: "USD",
		GrossCents:   grossCents,
		FeeCents:     feeCents,
		NetCents:     grossCents - feeCents,
		Provider:     rate.Provider,
	}, nil
}
