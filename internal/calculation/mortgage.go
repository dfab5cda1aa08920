package calculation

import (
	"github.com/hhplan/household-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// MortgageYear is one year of amortization.
type MortgageYear struct {
	Opening   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Payment   decimal.Decimal
	Closing   decimal.Decimal
}

// Amortize runs one year of a real-terms mortgage. Nothing is paid once the
// house is gone, the balance is cleared, or no payment is configured.
func Amortize(houseValue, opening, rate, payment decimal.Decimal) MortgageYear {
	my := MortgageYear{Opening: opening, Closing: opening}
	if !houseValue.IsPositive() || !opening.IsPositive() || !payment.IsPositive() {
		return my
	}
	my.Interest = opening.Mul(money.NonNegative(rate))
	my.Principal = money.Min(money.NonNegative(payment.Sub(my.Interest)), opening)
	my.Payment = my.Interest.Add(my.Principal)
	my.Closing = money.NonNegative(opening.Sub(my.Principal))
	return my
}
