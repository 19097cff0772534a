package depositrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/database"
)

type depositRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IDepositRepository {
	return &depositRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *depositRepository) Create(ctx context.Context, deposit *domain.Deposit) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO deposits (id, user_id, asset, amount_crypto, status, hosted_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		deposit.ID,
		nullString(deposit.UserID),
		deposit.Asset,
		deposit.AmountCrypto.String(),
		string(deposit.Status),
		deposit.HostedURL,
		deposit.CreatedAt,
		deposit.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("deposit_id", deposit.ID).Msg("Failed to create deposit")
		return fmt.Errorf("failed to create deposit: %w", err)
	}
	return nil
}

func (r *depositRepository) GetByID(ctx context.Context, id string) (*domain.Deposit, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, asset, amount_crypto, status, hosted_url, created_at, updated_at
		 FROM deposits WHERE id = $1`, id)

	deposit, err := scanDeposit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDepositNotFound
		}
		r.logger.Error().Err(err).Str("deposit_id", id).Msg("Failed to get deposit")
		return nil, fmt.Errorf("failed to get deposit: %w", err)
	}
	return deposit, nil
}

// Confirm moves a pending deposit to confirmed. The status condition makes the
// transition single-shot; a second confirm fails.
func (r *depositRepository) Confirm(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE deposits SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		string(domain.DepositStatusConfirmed), id, string(domain.DepositStatusPending))
	if err != nil {
		r.logger.Error().Err(err).Str("deposit_id", id).Msg("Failed to confirm deposit")
		return fmt.Errorf("failed to confirm deposit: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to confirm deposit: %w", err)
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrDepositNotConfirmable
	}
	return nil
}

func (r *depositRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// MarkConvertedTx moves a confirmed deposit to converted inside the caller's
// transaction. Zero rows means the deposit was not in confirmed state, which
// also rejects a second conversion of the same deposit.
func (r *depositRepository) MarkConvertedTx(ctx context.Context, tx *sql.Tx, id string) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE deposits SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		string(domain.DepositStatusConverted), id, string(domain.DepositStatusConfirmed))
	if err != nil {
		r.logger.Error().Err(err).Str("deposit_id", id).Msg("Failed to mark deposit converted")
		return fmt.Errorf("failed to mark deposit converted: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark deposit converted: %w", err)
	}
	if affected == 0 {
		return domain.ErrDepositNotConvertible
	}
	return nil
}

func (r *depositRepository) ListRecent(ctx context.Context, limit int) ([]domain.Deposit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, asset, amount_crypto, status, hosted_url, created_at, updated_at
		 FROM deposits ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to list deposits")
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer rows.Close()

	deposits := make([]domain.Deposit, 0, limit)
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list deposits: %w", err)
		}
		deposits = append(deposits, *deposit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	return deposits, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeposit(row rowScanner) (*domain.Deposit, error) {
	var (
		deposit domain.Deposit
		userID  sql.NullString
		amount  string
		status  string
	)
	if err := row.Scan(&deposit.ID, &userID, &deposit.Asset, &amount, &status,
		&deposit.HostedURL, &deposit.CreatedAt, &deposit.UpdatedAt); err != nil {
		return nil, err
	}

	amountCrypto, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	deposit.UserID = userID.String
	deposit.AmountCrypto = amountCrypto
	deposit.Status = domain.DepositStatus(status)
	return &deposit, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
