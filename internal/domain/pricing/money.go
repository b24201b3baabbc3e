package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// IVARate is the fixed Mexican VAT rate applied to every subtotal.
const IVARate = 0.16

var (
	ivaRate = decimal.NewFromFloat(IVARate)
	hundred = decimal.NewFromInt(100)
)

// dec converts a stored money value into a decimal. NaN and infinities are
// treated as zero so a corrupt input can never poison the totals.
func dec(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func count(n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n))
}

func toMoney(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// clampPercent bounds a discount percentage to [0, 100].
func clampPercent(p float64) decimal.Decimal {
	d := dec(p)
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(hundred) {
		return hundred
	}
	return d
}

// Round2 rounds a money value half away from zero to cents for display.
func Round2(v float64) float64 {
	return dec(v).Round(2).InexactFloat64()
}
