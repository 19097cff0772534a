package payoutrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sqlc-dev/pqtype"

	"github.com/clarkpowers2/crypto2bank-backend/internal/domain"
	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/database"
)

type payoutRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IPayoutRepository {
	return &payoutRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *payoutRepository) Create(ctx context.Context, payout *domain.Payout) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO payouts (id, conversion_id, bank_account_id, user_id, fiat_currency,
		   amount_fiat_cents, provider, external_id, status, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		payout.ID,
		payout.ConversionID,
		payout.BankAccountID,
		nullString(payout.UserID),
		payout.FiatCurrency,
		payout.AmountFiatCents,
		payout.Provider,
		payout.ExternalID,
		string(payout.Status),
		pqtype.NullRawMessage{RawMessage: payout.Metadata, Valid: payout.Metadata != nil},
		payout.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("conversion_id", payout.ConversionID).Msg("Failed to create payout")
		return fmt.Errorf("failed to create payout: %w", err)
	}
	return nil
}

func (r *payoutRepository) ListRecent(ctx context.Context, limit int) ([]domain.Payout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, conversion_id, bank_account_id, user_id, fiat_currency,
		   amount_fiat_cents, provider, external_id, status, metadata, created_at
		 FROM payouts ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to list payouts")
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	defer rows.Close()

	payouts := make([]domain.Payout, 0, limit)
	for rows.Next() {
		var (
			payout   domain.Payout
			userID   sql.NullString
			status   string
			metadata pqtype.NullRawMessage
		)
		if err := rows.Scan(&payout.ID, &payout.ConversionID, &payout.BankAccountID, &userID,
			&payout.FiatCurrency, &payout.AmountFiatCents, &payout.Provider, &payout.ExternalID,
			&status, &metadata, &payout.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to list payouts: %w", err)
		}
		payout.UserID = userID.String
		payout.Status = domain.PayoutStatus(status)
		if metadata.Valid {
			payout.Metadata = metadata.RawMessage
		}
		payouts = append(payouts, payout)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

func (r *payoutRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payouts`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("Failed to count payouts")
		return 0, fmt.Errorf("failed to count payouts: %w", err)
	}
	return count, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
