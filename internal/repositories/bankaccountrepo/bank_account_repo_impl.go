package bankaccountrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/database"
)

type bankAccountRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IBankAccountRepository {
	return &bankAccountRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *bankAccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bank_accounts (id, user_id, masked_account, routing_hash, account_hash, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.ID,
		nullString(account.UserID),
		account.MaskedAccount,
		account.RoutingHash,
		account.AccountHash,
		string(account.Status),
		account.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("bank_account_id", account.ID).Msg("Failed to create bank account")
		return fmt.Errorf("failed to create bank account: %w", err)
	}
	return nil
}

func (r *bankAccountRepository) GetByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	var (
		account domain.BankAccount
		userID  sql.NullString
		status  string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, masked_account, routing_hash, account_hash, status, created_at
		 FROM bank_accounts WHERE id = $1`, id).
		Scan(&account.ID, &userID, &account.MaskedAccount, &account.RoutingHash,
			&account.AccountHash, &status, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBankAccountNotFound
		}
		r.logger.Error().Err(err).Str("bank_account_id", id).Msg("Failed to get bank account")
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}
	account.UserID = userID.String
	account.Status = domain.BankAccountStatus(status)
	return &account, nil
}

func (r *bankAccountRepository) List(ctx context.Context, limit int) ([]domain.BankAccount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, masked_account, routing_hash, account_hash, status, created_at
		 FROM bank_accounts ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to list bank accounts")
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.BankAccount, 0, limit)
	for rows.Next() {
		var (
			account domain.BankAccount
			userID  sql.NullString
			status  string
		)
		if err := rows.Scan(&account.ID, &userID, &account.MaskedAccount, &account.RoutingHash,
			&account.AccountHash, &status, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to list bank accounts: %w", err)
		}
		account.UserID = userID.String
		account.Status = domain.BankAccountStatus(status)
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return accounts, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
