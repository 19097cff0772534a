package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeScheduleStandard(t *testing.T) {
	// 0.1 BTC at $50,000 -> gross $5,000.00, fee $151.50, net $4,848.50
	gross := int64(500000)
	assert.Equal(t, int64(15150), Standard.FeeCents(gross))
	assert.Equal(t, int64(484850), Standard.NetCents(gross))
}

func TestFeeScheduleInvariant(t *testing.T) {
	for _, gross := range []int64{0, 1, 99, 100, 150, 12345, 500000, 99999999} {
		fee := Standard.FeeCents(gross)
		net := Standard.NetCents(gross)
		assert.Equal(t, gross, net+fee, "gross %d must split exactly into net+fee", gross)
	}
}

func TestFeeCentsZeroGross(t *testing.T) {
	// The flat surcharge applies even when the percentage part is zero.
	assert.Equal(t, int64(150), Standard.FeeCents(0))
}

func TestRoundHalfEvenDiv(t *testing.T) {
	cases := []struct {
		n, d, want int64
	}{
		{3, 100, 0},     // 0.03 -> 0
		{50, 100, 0},    // 0.5 -> 0 (even)
		{150, 100, 2},   // 1.5 -> 2 (even)
		{250, 100, 2},   // 2.5 -> 2 (even)
		{350, 100, 4},   // 3.5 -> 4 (even)
		{151, 100, 2},   // 1.51 -> 2
		{149, 100, 1},   // 1.49 -> 1
		{300, 100, 3},   // exact
		{15000, 100, 150},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, roundHalfEvenDiv(tc.n, tc.d), "%d/%d", tc.n, tc.d)
	}
}

func TestCryptoToCents(t *testing.T) {
	amount, err := decimal.NewFromString("0.1")
	require.NoError(t, err)
	rate := decimal.NewFromInt(50000)
	assert.Equal(t, int64(500000), CryptoToCents(amount, rate))

	// Sub-cent values round with banker's rounding.
	amount, err = decimal.NewFromString("0.000001")
	require.NoError(t, err)
	assert.Equal(t, int64(5), CryptoToCents(amount, rate)) // $0.05 exactly

	amount, err = decimal.NewFromString("0.0000001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), CryptoToCents(amount, rate)) // $0.005 -> 0 (even)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$151.50", FormatUSD(15150))
	assert.Equal(t, "$0.00", FormatUSD(0))
}
