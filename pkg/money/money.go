package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a real (inflation-adjusted) dollar amount
type Money struct {
	decimal.Decimal
}

// FromDecimal creates a new Money instance from a decimal.Decimal
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Format renders the amount as whole dollars with thousands separators, e.g. "$1,234,568".
func (m Money) Format() string {
	whole := m.Decimal.Round(0).IntPart()
	if whole < 0 {
		return "-$" + humanize.Comma(-whole)
	}
	return "$" + humanize.Comma(whole)
}

// FormatShort renders the amount compactly, e.g. "$1.2M" or "$850.0k".
func (m Money) FormatShort() string {
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.IsZero():
		return "$0"
	case abs.GreaterThanOrEqual(billion):
		return sign + "$" + abs.Div(billion).StringFixed(1) + "B"
	case abs.GreaterThanOrEqual(million):
		return sign + "$" + abs.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return sign + "$" + abs.Div(thousand).StringFixed(1) + "k"
	default:
		return sign + "$" + abs.Round(0).String()
	}
}

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
)

// Min returns the smaller of two decimals
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two decimals
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// NonNegative floors d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Clamp limits d to [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	return Min(Max(d, lo), hi)
}

// Sum adds all values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
