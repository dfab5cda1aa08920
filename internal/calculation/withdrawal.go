package calculation

import (
	"github.com/hhplan/household-planner/pkg/money"
	"github.com/shopspring/decimal"
)

var grossUpFloor = decimal.NewFromFloat(1e-6)

// Accounts are the household's liquid sleeves.
type Accounts struct {
	K401Self   decimal.Decimal
	K401Spouse decimal.Decimal
	RothSelf   decimal.Decimal
	RothSpouse decimal.Decimal
	Broker     decimal.Decimal
	CDs        decimal.Decimal
}

// Total401k is the combined tax-deferred balance.
func (a *Accounts) Total401k() decimal.Decimal { return a.K401Self.Add(a.K401Spouse) }

// TotalRoth is the combined Roth balance.
func (a *Accounts) TotalRoth() decimal.Decimal { return a.RothSelf.Add(a.RothSpouse) }

// TotalLiquid is the sum of every sleeve.
func (a *Accounts) TotalLiquid() decimal.Decimal {
	return money.Sum(a.Total401k(), a.TotalRoth(), a.Broker, a.CDs)
}

// ClampNonNegative floors every sleeve at zero.
func (a *Accounts) ClampNonNegative() {
	a.K401Self = money.NonNegative(a.K401Self)
	a.K401Spouse = money.NonNegative(a.K401Spouse)
	a.RothSelf = money.NonNegative(a.RothSelf)
	a.RothSpouse = money.NonNegative(a.RothSpouse)
	a.Broker = money.NonNegative(a.Broker)
	a.CDs = money.NonNegative(a.CDs)
}

// Withdrawals records what the waterfall moved in one year.
type Withdrawals struct {
	Broker          decimal.Decimal
	CDs             decimal.Decimal
	K401SelfGross   decimal.Decimal
	K401SelfTax     decimal.Decimal
	K401SpouseGross decimal.Decimal
	K401SpouseTax   decimal.Decimal
	RothSelf        decimal.Decimal
	RothSpouse      decimal.Decimal
	Surplus         decimal.Decimal
	Unmet           decimal.Decimal
}

// Draws is the total taken from the portfolio, 401k counted gross.
func (w Withdrawals) Draws() decimal.Decimal {
	return money.Sum(w.Broker, w.CDs, w.K401SelfGross, w.K401SpouseGross, w.RothSelf, w.RothSpouse)
}

// K401Tax is the tax withheld on the waterfall's 401k draws.
func (w Withdrawals) K401Tax() decimal.Decimal { return w.K401SelfTax.Add(w.K401SpouseTax) }

// K401Net is the after-tax cash delivered by the 401k step.
func (w Withdrawals) K401Net() decimal.Decimal {
	return w.K401SelfGross.Add(w.K401SpouseGross).Sub(w.K401Tax())
}

// WithdrawalWaterfall covers a year's net outflow from the household accounts.
type WithdrawalWaterfall struct {
	TaxRate decimal.Decimal // withholding on 401k draws
}

// Run deposits a surplus (negative outflow) into brokerage, or draws a
// shortfall from brokerage, CDs, 401k (grossed up for tax) and Roth in that
// order. 401k and Roth draws are split pro-rata between the two owners. Any
// need left after the Roth step is reported as Unmet.
func (ww WithdrawalWaterfall) Run(acc *Accounts, netOutflow decimal.Decimal) Withdrawals {
	var w Withdrawals
	if netOutflow.IsNegative() {
		w.Surplus = netOutflow.Abs()
		acc.Broker = acc.Broker.Add(w.Surplus)
		return w
	}

	need := netOutflow

	if need.IsPositive() {
		w.Broker = money.NonNegative(money.Min(acc.Broker, need))
		acc.Broker = acc.Broker.Sub(w.Broker)
		need = need.Sub(w.Broker)
	}

	if need.IsPositive() {
		w.CDs = money.NonNegative(money.Min(acc.CDs, need))
		acc.CDs = acc.CDs.Sub(w.CDs)
		need = need.Sub(w.CDs)
	}

	if total := acc.Total401k(); need.IsPositive() && total.IsPositive() {
		keep := decimal.NewFromInt(1).Sub(ww.TaxRate)
		grossNeeded := need.Div(money.Max(grossUpFloor, keep))
		capped := grossNeeded.GreaterThan(total)
		gross := money.Min(total, grossNeeded)

		w.K401SelfGross = gross.Mul(acc.K401Self).Div(total)
		w.K401SpouseGross = gross.Sub(w.K401SelfGross)
		w.K401SelfTax = w.K401SelfGross.Sub(w.K401SelfGross.Mul(keep))
		w.K401SpouseTax = w.K401SpouseGross.Sub(w.K401SpouseGross.Mul(keep))
		acc.K401Self = acc.K401Self.Sub(w.K401SelfGross)
		acc.K401Spouse = acc.K401Spouse.Sub(w.K401SpouseGross)

		if !capped && keep.GreaterThan(grossUpFloor) {
			// the gross-up covers the need exactly
			need = decimal.Zero
		} else {
			need = need.Sub(w.K401Net())
		}
	}

	if total := acc.TotalRoth(); need.IsPositive() && total.IsPositive() {
		take := money.Min(total, need)
		w.RothSelf = take.Mul(acc.RothSelf).Div(total)
		w.RothSpouse = take.Sub(w.RothSelf)
		acc.RothSelf = acc.RothSelf.Sub(w.RothSelf)
		acc.RothSpouse = acc.RothSpouse.Sub(w.RothSpouse)
		need = need.Sub(take)
	}

	w.Unmet = money.NonNegative(need)
	return w
}
