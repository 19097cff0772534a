package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FeeSchedule is a percentage fee plus a flat surcharge, both applied to a
// gross amount in USD cents. The pipeline uses 3% + 150 cents everywhere.
type FeeSchedule struct {
	Percent   int64
	FlatCents int64
}

var Standard = FeeSchedule{Percent: 3, FlatCents: 150}

// FeeCents computes the total fee for a gross amount. The percentage part is
// rounded half to even so repeated aggregation does not drift in one direction.
func (f FeeSchedule) FeeCents(grossCents int64) int64 {
	return roundHalfEvenDiv(grossCents*f.Percent, 100) + f.FlatCents
}

// NetCents is gross minus the full fee.
func (f FeeSchedule) NetCents(grossCents int64) int64 {
	return grossCents - f.FeeCents(grossCents)
}

// CryptoToCents values a crypto amount at a USD unit rate and rounds to whole
// cents with banker's rounding.
func CryptoToCents(amount, rate decimal.Decimal) int64 {
	return amount.Mul(rate).Shift(2).RoundBank(0).IntPart()
}

// CentsToDollars converts cents to dollars for API responses.
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100.0
}

// FormatUSD formats cents as a USD string.
func FormatUSD(cents int64) string {
	return fmt.Sprintf("$%.2f", CentsToDollars(cents))
}

// roundHalfEvenDiv divides n by d rounding half to even. Both arguments must
// be non-negative; gross amounts never go below zero.
func roundHalfEvenDiv(n, d int64) int64 {
	q := n / d
	r := n % d
	switch {
	case 2*r > d:
		return q + 1
	case 2*r < d:
		return q
	default:
		if q%2 != 0 {
			return q + 1
		}
		return q
	}
}
