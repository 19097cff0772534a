package bankaccountservice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/repositories/bankaccountrepo"
)

const listLimit = 50

type bankAccountService struct {
	repo   bankaccountrepo.IBankAccountRepository
	logger zerolog.Logger
}

func New(repo bankaccountrepo.IBankAccountRepository, logger zerolog.Logger) IBankAccountService {
	return &bankAccountService{
		repo:   repo,
		logger: logger.With().Str("component", "bank_account_service").Logger(),
	}
}

// Add registers a bank account, keeping only a last-4 mask and SHA-256
// digests of the numbers. Accounts are created verified; real verification is
// the rails provider's job, not ours.
func (s *bankAccountService) Add(ctx context.Context, userID, routingNumber, accountNumber string) (*domain.BankAccount, error) {
	if routingNumber == "" || accountNumber == "" {
		return nil, fmt.Errorf("%w: routingNumber and accountNumber required", domain.ErrInvalidArgument)
	}
	if len(accountNumber) < 4 {
		return nil, fmt.Errorf("%w: accountNumber too short", domain.ErrInvalidArgument)
	}

	account := &domain.BankAccount{
		ID:            uuid.NewString(),
		UserID:        userID,
		MaskedAccount: "****" + accountNumber[len(accountNumber)-4:],
		RoutingHash:   sha256Hex(routingNumber),
		AccountHash:   sha256Hex(accountNumber),
		Status:        domain.BankAccountStatusVerified,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("bank_account_id", account.ID).
		Str("masked_account", account.MaskedAccount).
		Msg("Bank account registered")
	return account, nil
}

func (s *bankAccountService) List(ctx context.Context) ([]domain.BankAccount, error) {
	return s.repo.List(ctx, listLimit)
}

func sha256Hex(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
