package depositservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/depositrepo"
	"github.com/clarkpowers2/crypto2bank-backend/pkg/config"
)

type depositService struct {
	repo          depositrepo.IDepositRepository
	hostedBaseURL string
	logger        zerolog.Logger
}

func New(repo depositrepo.IDepositRepository, cfg config.PaymentsConfig, logger zerolog.Logger) IDepositService {
	return &depositService{
		repo:          repo,
		hostedBaseURL: strings.TrimRight(cfg.HostedBaseURL, "/"),
		logger:        logger.With().Str("component", "deposit_service").Logger(),
	}
}

// Create records a pending deposit. The hosted payment link is informational
// only; there is no payment-processor integration behind it.
func (s *depositService) Create(ctx context.Context, params CreateDepositParams) (*domain.Deposit, error) {
	asset := strings.ToUpper(strings.TrimSpace(params.Asset))
	if asset == "" {
		return nil, fmt.Errorf("%w: asset is required", domain.ErrInvalidArgument)
	}
	if !domain.IsSupportedAsset(asset) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedAsset, asset)
	}
	if params.AmountCrypto.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amountCrypto must be > 0", domain.ErrInvalidArgument)
	}

	now := time.Now().UTC()
	deposit := &domain.Deposit{
		ID:           uuid.NewString(),
		UserID:       params.UserID,
		Asset:        asset,
		AmountCrypto: params.AmountCrypto,
		Status:       domain.DepositStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	deposit.HostedURL = fmt.Sprintf("%s/%s", s.hostedBaseURL, deposit.ID)

	if err := s.repo.Create(ctx, deposit); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("deposit_id", deposit.ID).
		Str("asset", deposit.Asset).
		Str("amount_crypto", deposit.AmountCrypto.String()).
		Msg("Deposit recorded")
	return deposit, nil
}

// Confirm transitions a pending deposit to confirmed, making it convertible.
func (s *depositService) Confirm(ctx context.Context, depositID string) (*domain.Deposit, error) {
	if _, err := uuid.Parse(depositID); err != nil {
		return nil, domain.ErrDepositNotFound
	}

	if err := s.repo.Confirm(ctx, depositID); err != nil {
		return nil, err
	}

	deposit, err := s.repo.GetByID(ctx, depositID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("deposit_id", depositID).Msg("Deposit confirmed")
	return deposit, nil
}
