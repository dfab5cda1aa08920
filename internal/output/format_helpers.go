package output

import (
	"strconv"

	"github.com/hhplan/household-planner/pkg/money"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as whole US dollars with separators.
func FormatCurrency(amount decimal.Decimal) string { return money.FromDecimal(amount).Format() }

// FormatCurrencyShort formats a decimal compactly ("$1.2M").
func FormatCurrencyShort(amount decimal.Decimal) string { return money.FromDecimal(amount).FormatShort() }

// FormatPercentage formats a fraction (0.855) as a percentage with one decimal ("85.5%").
func FormatPercentage(rate decimal.Decimal) string { return rate.Mul(decimalHundred).StringFixed(1) + "%" }

// formatYear renders an optional calendar year, where zero means "never".
func formatYear(year int) string {
	if year == 0 {
		return "-"
	}
	return strconv.Itoa(year)
}

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }
