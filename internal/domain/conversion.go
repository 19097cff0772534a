package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ConversionStatus string

const (
	ConversionStatusCompleted ConversionStatus = "completed"
)

// Conversion records a crypto-to-fiat valuation event. All fiat amounts are
// integer USD cents; fee_cents = gross * fee_percent/100 + flat surcharge and
// net_cents = gross_cents - fee_cents always hold.
type Conversion struct {
	ID                   string           `json:"id" db:"id"`
	DepositID            string           `json:"deposit_id" db:"deposit_id"`
	UserID               string           `json:"user_id,omitempty" db:"user_id"`
	AssetIn              string           `json:"asset_in" db:"asset_in"`
	AmountInCrypto       decimal.Decimal  `json:"amount_in_crypto" db:"amount_in_crypto"`
	FiatCurrency         string           `json:"fiat_currency" db:"fiat_currency"`
	AmountFiatGrossCents int64            `json:"amount_fiat_gross_cents" db:"amount_fiat_gross_cents"`
	FeePercent           int64            `json:"fee_percent" db:"fee_percent"`
	FeeCents             int64            `json:"fee_cents" db:"fee_cents"`
	AmountFiatNetCents   int64            `json:"amount_fiat_net_cents" db:"amount_fiat_net_cents"`
	Provider             string           `json:"provider" db:"provider"`
	Status               ConversionStatus `json:"status" db:"status"`
	CreatedAt            time.Time        `json:"created_at" db:"created_at"`
}
