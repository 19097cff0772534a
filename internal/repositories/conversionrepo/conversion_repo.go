package conversionrepo

import (
	"context"
	"database/sql"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

// SummaryTotals is a linear accumulation over every stored conversion.
type SummaryTotals struct {
	GrossCents int64
	FeeCents   int64
	NetCents   int64
	Count      int64
}

type IConversionRepository interface {
	CreateTx(ctx context.Context, tx *sql.Tx, conversion *domain.Conversion) error
	GetByID(ctx context.Context, id string) (*domain.Conversion, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Conversion, error)
	Totals(ctx context.Context) (*SummaryTotals, error)
}
