package domain

import (
	"encoding/json"
	"time"
)

type PayoutStatus string

const (
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusFailed     PayoutStatus = "failed"
)

// Payout records an outbound fiat transfer request to a bank account. The
// amount is always the net cents of exactly one conversion; status never
// advances beyond processing here, settlement happens on the provider side.
type Payout struct {
	ID              string          `json:"id" db:"id"`
	ConversionID    string          `json:"conversion_id" db:"conversion_id"`
	BankAccountID   string          `json:"bank_account_id" db:"bank_account_id"`
	UserID          string          `json:"user_id,omitempty" db:"user_id"`
	FiatCurrency    string          `json:"fiat_currency" db:"fiat_currency"`
	AmountFiatCents int64           `json:"amount_fiat_cents" db:"amount_fiat_cents"`
	Provider        string          `json:"provider" db:"provider"`
	ExternalID      string          `json:"external_id" db:"external_id"`
	Status          PayoutStatus    `json:"status" db:"status"`
	Metadata        json.RawMessage `json:"metadata,omitempty" db:"metadata"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}
