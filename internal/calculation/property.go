package calculation

import (
	"github.com/hhplan/household-planner/internal/domain"
	"github.com/hhplan/household-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// Property is the path-owned state of the household home.
type Property struct {
	Value    decimal.Decimal
	Mortgage decimal.Decimal
	Cashflow decimal.Decimal
}

// NewProperty seeds the home state from the parameters, clamping negative
// value and mortgage to zero.
func NewProperty(re domain.RealEstate) Property {
	return Property{
		Value:    money.NonNegative(re.Value),
		Mortgage: money.NonNegative(re.Mortgage),
		Cashflow: re.NetCashflow,
	}
}

// Appreciate grows the home value while the household still owns it.
func (p *Property) Appreciate(rate decimal.Decimal) {
	if p.Value.IsPositive() {
		p.Value = p.Value.Mul(decimal.NewFromInt(1).Add(rate))
	}
}

// RentalCashflow is the net real-estate income for the year.
func (p *Property) RentalCashflow() decimal.Decimal {
	if p.Value.IsPositive() {
		return p.Cashflow
	}
	return decimal.Zero
}

// Equity is the home value net of the mortgage.
func (p *Property) Equity() decimal.Decimal {
	return money.NonNegative(p.Value.Sub(p.Mortgage))
}

// ShouldSell reports whether the home is sold this year: the household sells
// in the year the older member reaches the later of the two retirement ages.
func ShouldSell(hp *domain.HouseholdParameters, p *Property, ageSelf, ageSpouse int) bool {
	return hp.RealEstate.SellAtRetire &&
		max(ageSelf, ageSpouse) == hp.HouseholdRetireAge() &&
		p.Value.IsPositive()
}

// Sell realizes the home equity and clears the property for the rest of the path.
func (p *Property) Sell() decimal.Decimal {
	equity := p.Equity()
	p.Value = decimal.Zero
	p.Mortgage = decimal.Zero
	p.Cashflow = decimal.Zero
	return equity
}
