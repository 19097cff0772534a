package ledgerservice

import (
	"context"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

type ILedgerService interface {
	GetSummary(ctx context.Context) (*domain.LedgerSummary, error)
	GetActivity(ctx context.Context, limit int) (*domain.ActivityFeed, error)
}
