package calculation

import (
	"time"

	"github.com/hhplan/household-planner/internal/domain"
	"github.com/hhplan/household-planner/pkg/dateutil"
	"github.com/hhplan/household-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// ResolveAge returns the person's age at now, preferring birth month and year
// over the configured current age when both are present.
func ResolveAge(p domain.Person, now time.Time) int {
	return dateutil.AgeFromBirthMonth(p.BirthMonth, p.BirthYear, p.CurrentAge, now)
}

// pathState is the mutable state of a single simulated path. It is owned by
// one SimulatePath call and never shared.
type pathState struct {
	ageSelf   int
	ageSpouse int
	acc       Accounts
	kids      []ChildAccount
	home      Property
}

func newPathState(hp *domain.HouseholdParameters, now time.Time) *pathState {
	return &pathState{
		ageSelf:   ResolveAge(hp.Self, now),
		ageSpouse: ResolveAge(hp.Spouse, now),
		acc: Accounts{
			K401Self:   money.NonNegative(hp.Self.Start401k),
			K401Spouse: money.NonNegative(hp.Spouse.Start401k),
			RothSelf:   money.NonNegative(hp.Self.StartRoth),
			RothSpouse: money.NonNegative(hp.Spouse.StartRoth),
			Broker:     money.NonNegative(hp.StartBrokerage),
			CDs:        money.NonNegative(hp.StartCDs),
		},
		kids: NewChildAccounts(hp.Children),
		home: NewProperty(hp.RealEstate),
	}
}

func (ps *pathState) maxAge() int { return max(ps.ageSelf, ps.ageSpouse) }

func (ps *pathState) advance() {
	ps.ageSelf++
	ps.ageSpouse++
	for i := range ps.kids {
		ps.kids[i].Age++
	}
}

// SimulatePath projects the household year by year from now until the older
// member passes EndAge. The final qualifying year is included. src supplies
// the return draws; nil runs the mean path.
func SimulatePath(params domain.HouseholdParameters, src UniformSource, now time.Time) domain.SimulationPath {
	hp := params.Clone()
	ps := newPathState(&hp, now)

	returns := NewReturnGenerator(&hp, src)
	rmdCalc := NewRMDCalculator(hp.RMDEnabled, hp.Tax401kWithdraw)
	waterfall := WithdrawalWaterfall{TaxRate: hp.Tax401kWithdraw}
	taxes := NewTaxEstimator(&hp)

	var path domain.SimulationPath
	for y := 0; ps.maxAge() <= hp.EndAge; y++ {
		ys := domain.YearSnapshot{
			Year:              dateutil.CalendarYear(now, y),
			AgeSelf:           ps.ageSelf,
			AgeSpouse:         ps.ageSpouse,
			Opening401kSelf:   ps.acc.K401Self,
			Opening401kSpouse: ps.acc.K401Spouse,
			OpeningRothSelf:   ps.acc.RothSelf,
			OpeningRothSpouse: ps.acc.RothSpouse,
			OpeningBroker:     ps.acc.Broker,
			OpeningCDs:        ps.acc.CDs,
			Opening529Total:   Total529(ps.kids),
		}

		r := returns.Next()
		ys.BaseReturn, ys.BrokerReturn, ys.CDReturn = r.Base, r.Broker, r.CD

		ps.home.Appreciate(hp.RealEstate.AppreciationReal)

		// Contributions and growth
		contrib := PlanContributions(&hp, ps.ageSelf, ps.ageSpouse)
		c529 := Contribute529(ps.kids, r.Base)
		drag := taxes.BrokerageDrag(ps.acc.Broker)

		ps.acc.K401Self = Grow(ps.acc.K401Self, r.Base, contrib.K401Self)
		ps.acc.K401Spouse = Grow(ps.acc.K401Spouse, r.Base, contrib.K401Spouse)
		ps.acc.RothSelf = Grow(ps.acc.RothSelf, r.Base, contrib.RothSelf)
		ps.acc.RothSpouse = Grow(ps.acc.RothSpouse, r.Base, contrib.RothSpouse)
		ps.acc.Broker = GrowBrokerage(ps.acc.Broker, r.Broker, contrib.Broker)
		ps.acc.CDs = Grow(ps.acc.CDs, r.CD, contrib.CDs)

		income := YearIncome(&hp, ps.ageSelf, ps.ageSpouse, ps.home.RentalCashflow())

		spendMult := SpendingMultiplier(&hp, ps.ageSelf, ps.ageSpouse)
		retireSpend := money.NonNegative(hp.RetirementSpend).Mul(spendMult)

		edu := FundEducation(ps.kids, hp.K12CapPerChild)

		mort := Amortize(ps.home.Value, ps.home.Mortgage, hp.RealEstate.MortgageRateReal, hp.RealEstate.MortgageAnnualPayment)
		ps.home.Mortgage = mort.Closing

		rmdSelf := rmdCalc.Calculate(ps.acc.K401Self, ps.ageSelf, hp.Self.RMDAge)
		rmdSpouse := rmdCalc.Calculate(ps.acc.K401Spouse, ps.ageSpouse, hp.Spouse.RMDAge)
		ps.acc.K401Self = ps.acc.K401Self.Sub(rmdSelf.Gross)
		ps.acc.K401Spouse = ps.acc.K401Spouse.Sub(rmdSpouse.Gross)

		netOutflow := money.Sum(retireSpend, edu.HSShortfall(), edu.CollegeShortfall(), mort.Payment).
			Sub(income.Total()).
			Sub(rmdSelf.Net().Add(rmdSpouse.Net()))

		wd := waterfall.Run(&ps.acc, netOutflow)

		var equity decimal.Decimal
		if ShouldSell(&hp, &ps.home, ps.ageSelf, ps.ageSpouse) {
			equity = ps.home.Sell()
			ps.acc.Broker = ps.acc.Broker.Add(equity)
		}

		tax := taxes.Estimate(income, money.Sum(rmdSelf.Tax, rmdSpouse.Tax, wd.K401Tax()), drag)

		ps.acc.ClampNonNegative()
		for i := range ps.kids {
			ps.kids[i].Balance529 = money.NonNegative(ps.kids[i].Balance529)
		}

		// Real estate
		ys.HouseVal = ps.home.Value
		ys.MortgageOpening = mort.Opening
		ys.MortgageClosing = ps.home.Mortgage
		ys.HouseEquity = ps.home.Equity()
		ys.EquityRealized = equity
		ys.MortgagePayment = mort.Payment
		ys.MortgageInterest = mort.Interest
		ys.MortgagePrincipal = mort.Principal

		// Contributions
		ys.ContributionMultiplier = contrib.Multiplier
		ys.C401kSelf = contrib.K401Self
		ys.C401kSpouse = contrib.K401Spouse
		ys.CRothSelf = contrib.RothSelf
		ys.CRothSpouse = contrib.RothSpouse
		ys.CBroker = contrib.Broker
		ys.CCDs = contrib.CDs
		ys.C529Total = c529

		// RMDs and the waterfall
		ys.RMDSelfGross, ys.RMDSelfTax = rmdSelf.Gross, rmdSelf.Tax
		ys.RMDSpouseGross, ys.RMDSpouseTax = rmdSpouse.Gross, rmdSpouse.Tax
		ys.NetOutflow = netOutflow
		ys.WdBroker = wd.Broker
		ys.WdCDs = wd.CDs
		ys.Wd401kSelfGross, ys.Wd401kSelfTax = wd.K401SelfGross, wd.K401SelfTax
		ys.Wd401kSpouseGross, ys.Wd401kSpouseTax = wd.K401SpouseGross, wd.K401SpouseTax
		ys.WdRothSelf, ys.WdRothSpouse = wd.RothSelf, wd.RothSpouse
		ys.WdTotal = money.Sum(wd.Draws(), rmdSelf.Gross, rmdSpouse.Gross)
		ys.SurplusToBroker = wd.Surplus
		ys.UnmetNeed = wd.Unmet

		// Income and spending
		ys.SSIncome = income.SS
		ys.WageSelf = income.WageSelf
		ys.WageSpouse = income.WageSpouse
		ys.AnnuityIncome = income.Annuity
		ys.RealEstateCF = income.RealEstate
		ys.IncomeStreams = income.Total()
		ys.SpendMultiplier = spendMult
		ys.RetireSpend = retireSpend
		ys.TotalSpending = money.Sum(retireSpend, edu.HSTotal, edu.CollegeTotal, mort.Payment)

		// Education
		ys.HSTotal, ys.HSPaidBy529 = edu.HSTotal, edu.HSPaidBy529
		ys.CollegeTotal, ys.CollegePaidBy529 = edu.CollegeTotal, edu.CollegePaidBy529
		ys.HSFromPortfolio, ys.CollegeFromPortfolio = EducationFromPortfolio(edu, wd.Draws())

		// Taxes
		ys.TaxBrokerageDrag = tax.BrokerageDrag
		ys.TaxOtherIncome = tax.OtherIncome
		ys.Tax401kTotal = tax.K401
		ys.TaxTotal = tax.Total

		// Closing balances
		ys.Bal401kSelf = ps.acc.K401Self
		ys.Bal401kSpouse = ps.acc.K401Spouse
		ys.BalRothSelf = ps.acc.RothSelf
		ys.BalRothSpouse = ps.acc.RothSpouse
		ys.BalBroker = ps.acc.Broker
		ys.BalCDs = ps.acc.CDs
		ys.Bal529Total = Total529(ps.kids)
		ys.Bal401k = ps.acc.Total401k()
		ys.BalRoth = ps.acc.TotalRoth()
		ys.TotalLiquid = ps.acc.TotalLiquid()
		ys.NetWorth = money.Sum(ys.TotalLiquid, ys.Bal529Total, ys.HouseEquity)

		path = append(path, ys)
		ps.advance()
	}
	return path
}
