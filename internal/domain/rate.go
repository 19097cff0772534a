package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is a point-in-time USD unit price for an asset. Every conversion and
// quote performs a fresh lookup; rates are never cached.
type Rate struct {
	Asset     string          `json:"asset"`
	PriceUSD  decimal.Decimal `json:"price_usd"`
	Provider  string          `json:"provider"`
	FetchedAt time.Time       `json:"fetched_at"`
}
