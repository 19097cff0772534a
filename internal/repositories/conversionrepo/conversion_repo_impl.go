package conversionrepo

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

type conversionRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IConversionRepository {
	return &conversionRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *conversionRepository) CreateTx(ctx context.Context, tx *sql.Tx, conversion *domain.Conversion) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO conversions (id, deposit_id, user_id, asset_in, amount_in_crypto, fiat_currency,
		   amount_fiat_gross_cents, fee_percent, fee_cents, amount_fiat_net_cents, provider, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		conversion.ID,
		conversion.DepositID,
		nullString(conversion.UserID),
		conversion.AssetIn,
		conversion.AmountInCrypto.String(),
		conversion.FiatCurrency,
		conversion.AmountFiatGrossCents,
		conversion.FeePercent,
		conversion.FeeCents,
		conversion.AmountFiatNetCents,
		conversion.Provider,
		string(conversion.Status),
		conversion.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("deposit_id", conversion.DepositID).Msg("Failed to create conversion")
		return fmt.Errorf("failed to create conversion: %w", err)
	}
	return nil
}

func (r *conversionRepository) GetByID(ctx context.Context, id string) (*domain.Conversion, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, deposit_id, user_id, asset_in, amount_in_crypto, fiat_currency,
		   amount_fiat_gross_cents, fee_percent, fee_cents, amount_fiat_net_cents, provider, status, created_at
		 FROM conversions WHERE id = $1`, id)

	conversion, err := scanConversion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConversionNotFound
		}
		r.logger.Error().Err(err).Str("conversion_id", id).Msg("Failed to get conversion")
		return nil, fmt.Errorf("failed to get conversion: %w", err)
	}
	return conversion, nil
}

func (r *conversionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Conversion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, deposit_id, user_id, asset_in, amount_in_crypto, fiat_currency,
		   amount_fiat_gross_cents, fee_percent, fee_cents, amount_fiat_net_cents, provider, status, created_at
		 FROM conversions ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to list conversions")
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	defer rows.Close()

	conversions := make([]domain.Conversion, 0, limit)
	for rows.Next() {
		conversion, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list conversions: %w", err)
		}
		conversions = append(conversions, *conversion)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	return conversions, nil
}

func (r *conversionRepository) Totals(ctx context.Context) (*SummaryTotals, error) {
	var totals SummaryTotals
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_fiat_gross_cents), 0),
		        COALESCE(SUM(fee_cents), 0),
		        COALESCE(SUM(amount_fiat_net_cents), 0),
		        COUNT(*)
		 FROM conversions`).
		Scan(&totals.GrossCents, &totals.FeeCents, &totals.NetCents, &totals.Count)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to aggregate conversions")
		return nil, fmt.Errorf("failed to aggregate conversions: %w", err)
	}
	return &totals, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversion(row rowScanner) (*domain.Conversion, error) {
	var (
		conversion domain.Conversion
		userID     sql.NullString
		amount     string
		status     string
	)
	if err := row.Scan(&conversion.ID, &conversion.DepositID, &userID, &conversion.AssetIn, &amount,
		&conversion.FiatCurrency, &conversion.AmountFiatGrossCents, &conversion.FeePercent,
		&conversion.FeeCents, &conversion.AmountFiatNetCents, &conversion.Provider, &status,
		&conversion.CreatedAt); err != nil {
		return nil, err
	}

	amountIn, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	conversion.UserID = userID.String
	conversion.AmountInCrypto = amountIn
	conversion.Status = domain.ConversionStatus(status)
	return &conversion, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
