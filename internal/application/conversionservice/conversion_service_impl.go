package conversionservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/clients"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/conversionrepo"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/depositrepo"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/currency"
)

type conversionService struct {
	depositRepo    depositrepo.IDepositRepository
	conversionRepo conversionrepo.IConversionRepository
	rateClient     clients.IRateClient
	fees           currency.FeeSchedule
	logger         zerolog.Logger
}

func New(
	depositRepo depositrepo.IDepositRepository,
	conversionRepo conversionrepo.IConversionRepository,
	rateClient clients.IRateClient,
	fees currency.FeeSchedule,
	logger zerolog.Logger,
) IConversionService {
	return &conversionService{
		depositRepo:    depositRepo,
		conversionRepo: conversionRepo,
		rateClient:     rateClient,
		fees:           fees,
		logger:         logger.With().Str("component", "conversion_service").Logger(),
	}
}

// Convert values a confirmed deposit at the live oracle rate and persists the
// conversion. The deposit status flip and the conversion insert share one
// transaction, so a deposit converts at most once; the oracle lookup happens
// before the transaction opens to keep network time out of it.
func (s *conversionService) Convert(ctx context.Context, depositID string) (*domain.Conversion, error) {
	if depositID == "" {
		return nil, fmt.Errorf("%w: depositId is required", domain.ErrInvalidArgument)
	}
	if _, err := uuid.Parse(depositID); err != nil {
		return nil, domain.ErrDepositNotFound
	}

	deposit, err := s.depositRepo.GetByID(ctx, depositID)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateClient.GetUSDRate(ctx, deposit.Asset)
	if err != nil {
		return nil, err
	}

	grossCents := currency.CryptoToCents(deposit.AmountCrypto, rate.PriceUSD)
	feeCents := s.fees.FeeCents(grossCents)

	conversion := &domain.Conversion{
		ID:                   uuid.NewString(),
		DepositID:            deposit.ID,
		UserID:               deposit.UserID,
		AssetIn:              deposit.Asset,
		AmountInCrypto:       deposit.AmountCrypto,
		FiatCurrency:         "USD",
		AmountFiatGrossCents: grossCents,
		FeePercent:           s.fees.Percent,
		FeeCents:             feeCents,
		AmountFiatNetCents:   grossCents - feeCents,
		Provider:             rate.Provider,
		Status:               domain.ConversionStatusCompleted,
		CreatedAt:            time.Now().UTC(),
	}

	tx, err := s.depositRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin conversion: %w", err)
	}
	defer tx.Rollback()

	if err := s.depositRepo.MarkConvertedTx(ctx, tx, deposit.ID); err != nil {
		return nil, err
	}
	if err := s.conversionRepo.CreateTx(ctx, tx, conversion); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit conversion: %w", err)
	}

	s.logger.Info().
		Str("conversion_id", conversion.ID).
		Str("deposit_id", deposit.ID).
		Str("rate", rate.PriceUSD.String()).
		Int64("gross_cents", grossCents).
		Int64("fee_cents", feeCents).
		Int64("net_cents", conversion.AmountFiatNetCents).
		Msg("Conversion completed")
	return conversion, nil
}
