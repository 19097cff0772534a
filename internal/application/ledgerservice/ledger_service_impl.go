package ledgerservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/conversionrepo"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/depositrepo"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/payoutrepo"
)

const defaultActivityLimit = 10

type ledgerService struct {
	depositRepo    depositrepo.IDepositRepository
	conversionRepo conversionrepo.IConversionRepository
	payoutRepo     payoutrepo.IPayoutRepository
	logger         zerolog.Logger
}

func New(
	depositRepo depositrepo.IDepositRepository,
	conversionRepo conversionrepo.IConversionRepository,
	payoutRepo payoutrepo.IPayoutRepository,
	logger zerolog.Logger,
) ILedgerService {
	return &ledgerService{
		depositRepo:    depositRepo,
		conversionRepo: conversionRepo,
		payoutRepo:     payoutRepo,
		logger:         logger.With().Str("component", "ledger_service").Logger(),
	}
}

// GetSummary totals every stored conversion and counts payouts. Read-only.
func (s *ledgerService) GetSummary(ctx context.Context) (*domain.LedgerSummary, error) {
	totals, err := s.conversionRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	payoutCount, err := s.payoutRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.LedgerSummary{
		TotalGrossCents: totals.GrossCents,
		TotalFeeCents:   totals.FeeCents,
		TotalNetCents:   totals.NetCents,
		ConversionCount: totals.Count,
		PayoutCount:     payoutCount,
	}, nil
}

// GetActivity lists the most recent rows of each pipeline table, newest first.
func (s *ledgerService) GetActivity(ctx context.Context, limit int) (*domain.ActivityFeed, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	deposits, err := s.depositRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	conversions, err := s.conversionRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	payouts, err := s.payoutRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &domain.ActivityFeed{
		Deposits:    deposits,
		Conversions: conversions,
		Payouts:     payouts,
	}, nil
}
