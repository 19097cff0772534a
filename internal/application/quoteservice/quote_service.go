package quoteservice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

type IQuoteService interface {
	Quote(ctx context.Context, asset string, amountCrypto decimal.Decimal) (*domain.Quote, error)
}
