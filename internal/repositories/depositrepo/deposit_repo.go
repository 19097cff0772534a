package depositrepo

import (
	"context"
	"database/sql"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

type IDepositRepository interface {
	Create(ctx context.Context, deposit *domain.Deposit) error
	GetByID(ctx context.Context, id string) (*domain.Deposit, error)
	Confirm(ctx context.Context, id string) error
	BeginTx(ctx context.Context) (*sql.Tx, error)
	MarkConvertedTx(ctx context.Context, tx *sql.Tx, id string) error
	ListRecent(ctx context.Context, limit int) ([]domain.Deposit, error)
}
