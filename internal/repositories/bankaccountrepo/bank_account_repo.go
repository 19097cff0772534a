package bankaccountrepo

import (
	"context"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

type IBankAccountRepository interface {
	Create(ctx context.Context, account *domain.BankAccount) error
	GetByID(ctx context.Context, id string) (*domain.BankAccount, error)
	List(ctx context.Context, limit int) ([]domain.BankAccount, error)
}
