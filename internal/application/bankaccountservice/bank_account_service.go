package bankaccountservice

import (
	"context"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
)

type IBankAccountService interface {
	Add(ctx context.Context, userID, routingNumber, accountNumber string) (*domain.BankAccount, error)
	List(ctx context.Context) ([]domain.BankAccount, error)
}
