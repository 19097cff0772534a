package domain

import "github.com/shopspring/decimal"

// Quote is a fee preview for selling an asset amount at the current rate.
// Nothing is persisted; the math is identical to the Conversion path.
type Quote struct {
	Asset        string          `json:"asset"`
	AmountCrypto decimal.Decimal `json:"amount_crypto"`
	PriceUSD     decimal.Decimal `json:"price_usd"`
	FiatCurrency string          `json:"fiat_currency"`
	GrossCents   int64           `json:"gross_cents"`
	FeeCents     int64           `json:"fee_cents"`
	NetCents     int64           `json:"net_cents"`
	Provider     string          `json:"provider"`
}
