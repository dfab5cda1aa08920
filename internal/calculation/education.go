package calculation

import (
	"github.com/hhplan/household-planner/internal/domain"
	"github.com/hhplan/household-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// ChildAccount is a path-owned copy of a child together with its 529 balance.
type ChildAccount struct {
	domain.Child
	Balance529 decimal.Decimal
}

// NewChildAccounts copies children so that a path can age them and draw on
// their 529 plans without touching the input parameters.
func NewChildAccounts(children []domain.Child) []ChildAccount {
	kids := make([]ChildAccount, len(children))
	for i, c := range children {
		kids[i] = ChildAccount{Child: c, Balance529: money.NonNegative(c.Start529)}
	}
	return kids
}

// inK12 reports whether the child is inside the K-12 tuition window.
func (c *ChildAccount) inK12() bool {
	start := c.K12Start()
	return c.Age >= start && c.Age < start+c.K12Years
}

func (c *ChildAccount) inCollege() bool {
	start := c.CollegeStart()
	return c.Age >= start && c.Age < start+c.CollegeYears
}

// Contribute529 grows each 529 at the base return and adds the year's
// contribution while the child has not yet finished college. It returns the
// total contributed.
func Contribute529(kids []ChildAccount, baseReturn decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i := range kids {
		k := &kids[i]
		c := decimal.Zero
		if k.Age < k.CollegeStart()+k.CollegeYears {
			c = money.NonNegative(k.Contrib529)
		}
		k.Balance529 = Grow(k.Balance529, baseReturn, c)
		total = total.Add(c)
	}
	return total
}

// EducationFunding totals the year's tuition and the part the 529 plans covered.
type EducationFunding struct {
	HSTotal          decimal.Decimal
	HSPaidBy529      decimal.Decimal
	CollegeTotal     decimal.Decimal
	CollegePaidBy529 decimal.Decimal
}

// HSShortfall is the K-12 tuition left for the household to pay.
func (ef EducationFunding) HSShortfall() decimal.Decimal {
	return money.NonNegative(ef.HSTotal.Sub(ef.HSPaidBy529))
}

// CollegeShortfall is the college tuition left for the household to pay.
func (ef EducationFunding) CollegeShortfall() decimal.Decimal {
	return money.NonNegative(ef.CollegeTotal.Sub(ef.CollegePaidBy529))
}

// FundEducation draws this year's tuition from each child's 529. K-12 draws are
// limited to k12Cap per child; college draws are limited only by the balance.
func FundEducation(kids []ChildAccount, k12Cap decimal.Decimal) EducationFunding {
	var ef EducationFunding
	for i := range kids {
		k := &kids[i]
		if k.inK12() {
			allowed := money.Min(k12Cap, k.K12Annual)
			from529 := money.NonNegative(money.Min(k.Balance529, allowed))
			k.Balance529 = k.Balance529.Sub(from529)
			ef.HSPaidBy529 = ef.HSPaidBy529.Add(from529)
			ef.HSTotal = ef.HSTotal.Add(k.K12Annual)
		}
		if k.inCollege() {
			cost := money.NonNegative(k.CollegeAnnual)
			from529 := money.Min(k.Balance529, cost)
			k.Balance529 = k.Balance529.Sub(from529)
			ef.CollegePaidBy529 = ef.CollegePaidBy529.Add(from529)
			ef.CollegeTotal = ef.CollegeTotal.Add(cost)
		}
	}
	return ef
}

// EducationFromPortfolio attributes the year's waterfall draws to K-12 first
// and then college shortfalls.
func EducationFromPortfolio(ef EducationFunding, draws decimal.Decimal) (hs, college decimal.Decimal) {
	hs = money.Min(ef.HSShortfall(), draws)
	college = money.NonNegative(money.Min(ef.CollegeShortfall(), draws.Sub(hs)))
	return hs, college
}

// Total529 sums the children's 529 balances.
func Total529(kids []ChildAccount) decimal.Decimal {
	total := decimal.Zero
	for i := range kids {
		total = total.Add(kids[i].Balance529)
	}
	return total
}
