package depositservice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

type CreateDepositParams struct {
	Asset        string
	AmountCrypto decimal.Decimal
	UserID       string
}

type IDepositService interface {
	Create(ctx context.Context, params CreateDepositParams) (*domain.Deposit, error)
	Confirm(ctx context.Context, depositID string) (*domain.Deposit, error)
}
