package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "pending"
	DepositStatusConfirmed DepositStatus = "confirmed"
	DepositStatusConverted DepositStatus = "converted"
)

// SupportedAssets is the fixed set of asset symbols the pipeline accepts.
var SupportedAssets = []string{"BTC", "ETH", "USDT", "USDC"}

func IsSupportedAsset(symbol string) bool {
	for _, a := range SupportedAssets {
		if a == symbol {
			return true
		}
	}
	return false
}

type Deposit struct {
	ID           string          `json:"id" db:"id"`
	UserID       string          `json:"user_id,omitempty" db:"user_id"`
	Asset        string          `json:"asset" db:"asset"`
	AmountCrypto decimal.Decimal `json:"amount_crypto" db:"amount_crypto"`
	Status       DepositStatus   `json:"status" db:"status"`
	HostedURL    string          `json:"hosted_url" db:"hosted_url"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}
