package payoutservice

import (
	"context"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

type IPayoutService interface {
	Create(ctx context.Context, conversionID, bankAccountID string) (*domain.Payout, error)
}
