package payoutrepo

import (
	"context"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

type IPayoutRepository interface {
	Create(ctx context.Context, payout *domain.Payout) error
	ListRecent(ctx context.Context, limit int) ([]domain.Payout, error)
	Count(ctx context.Context) (int64, error)
}
