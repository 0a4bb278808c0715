package analytics

import "github.com/shopspring/decimal"

// round1 rounds to one decimal place, half away from zero.
func round1(value float64) float64 {
	return decimal.NewFromFloat(value).Round(1).InexactFloat64()
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

// annualized 月薪 × 12，以 decimal 累加避免浮點誤差
func annualized(monthly float64) decimal.Decimal {
	return decimal.NewFromFloat(monthly).Mul(decimal.NewFromInt(12))
}
