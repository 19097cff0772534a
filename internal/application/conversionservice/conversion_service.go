package conversionservice

import (
	"context"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

type IConversionService interface {
	Convert(ctx context.Context, depositID string) (*domain.Conversion, error)
}
