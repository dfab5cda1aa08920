package domain

import (
	"github.com/shopspring/decimal"
)

// YearSnapshot represents the complete household state and flows for a single simulated year
type YearSnapshot struct {
	Year      int `json:"year"`
	AgeSelf   int `json:"age_self"`
	AgeSpouse int `json:"age_spouse"`

	// Opening balances (before growth, contributions and withdrawals)
	Opening401kSelf   decimal.Decimal `json:"opening_401k_self"`
	Opening401kSpouse decimal.Decimal `json:"opening_401k_spouse"`
	OpeningRothSelf   decimal.Decimal `json:"opening_roth_self"`
	OpeningRothSpouse decimal.Decimal `json:"opening_roth_spouse"`
	OpeningBroker     decimal.Decimal `json:"opening_broker"`
	OpeningCDs        decimal.Decimal `json:"opening_cds"`
	Opening529Total   decimal.Decimal `json:"opening_529_total"`

	// Closing balances (end of year, clamped non-negative)
	Bal401kSelf   decimal.Decimal `json:"bal_401k_self"`
	Bal401kSpouse decimal.Decimal `json:"bal_401k_spouse"`
	BalRothSelf   decimal.Decimal `json:"bal_roth_self"`
	BalRothSpouse decimal.Decimal `json:"bal_roth_spouse"`
	BalBroker     decimal.Decimal `json:"bal_broker"`
	BalCDs        decimal.Decimal `json:"bal_cds"`
	Bal529Total   decimal.Decimal `json:"bal_529_total"`
	Bal401k       decimal.Decimal `json:"bal_401k"`
	BalRoth       decimal.Decimal `json:"bal_roth"`
	TotalLiquid   decimal.Decimal `json:"total_liquid"`

	// Returns applied this year
	BaseReturn   decimal.Decimal `json:"base_return"`
	BrokerReturn decimal.Decimal `json:"broker_return"`
	CDReturn     decimal.Decimal `json:"cd_return"`

	// Real estate
	HouseVal          decimal.Decimal `json:"house_val"`
	MortgageOpening   decimal.Decimal `json:"mortgage_opening"`
	MortgageClosing   decimal.Decimal `json:"mortgage_closing"`
	HouseEquity       decimal.Decimal `json:"house_equity"`
	EquityRealized    decimal.Decimal `json:"equity_realized"`
	MortgagePayment   decimal.Decimal `json:"mortgage_payment"`
	MortgageInterest  decimal.Decimal `json:"mortgage_interest"`
	MortgagePrincipal decimal.Decimal `json:"mortgage_principal"`

	// Contributions
	ContributionMultiplier decimal.Decimal `json:"contribution_multiplier"`
	C401kSelf              decimal.Decimal `json:"c_401k_self"`
	C401kSpouse            decimal.Decimal `json:"c_401k_spouse"`
	CRothSelf              decimal.Decimal `json:"c_roth_self"`
	CRothSpouse            decimal.Decimal `json:"c_roth_spouse"`
	CBroker                decimal.Decimal `json:"c_broker"`
	CCDs                   decimal.Decimal `json:"c_cds"`
	C529Total              decimal.Decimal `json:"c_529_total"`

	// Required minimum distributions
	RMDSelfGross   decimal.Decimal `json:"rmd_self_gross"`
	RMDSpouseGross decimal.Decimal `json:"rmd_spouse_gross"`
	RMDSelfTax     decimal.Decimal `json:"rmd_self_tax"`
	RMDSpouseTax   decimal.Decimal `json:"rmd_spouse_tax"`

	// Withdrawal waterfall
	NetOutflow        decimal.Decimal `json:"net_outflow"` // need after income and net RMD, before the waterfall
	WdBroker          decimal.Decimal `json:"wd_broker"`
	WdCDs             decimal.Decimal `json:"wd_cds"`
	Wd401kSelfGross   decimal.Decimal `json:"wd_401k_self_gross"`
	Wd401kSelfTax     decimal.Decimal `json:"wd_401k_self_tax"`
	Wd401kSpouseGross decimal.Decimal `json:"wd_401k_spouse_gross"`
	Wd401kSpouseTax   decimal.Decimal `json:"wd_401k_spouse_tax"`
	WdRothSelf        decimal.Decimal `json:"wd_roth_self"`
	WdRothSpouse      decimal.Decimal `json:"wd_roth_spouse"`
	WdTotal           decimal.Decimal `json:"wd_total"`
	SurplusToBroker   decimal.Decimal `json:"surplus_to_broker"`
	UnmetNeed         decimal.Decimal `json:"unmet_need"`

	// Income streams
	SSIncome      decimal.Decimal `json:"ss_income"`
	WageSelf      decimal.Decimal `json:"wage_self"`
	WageSpouse    decimal.Decimal `json:"wage_spouse"`
	AnnuityIncome decimal.Decimal `json:"annuity_income"`
	RealEstateCF  decimal.Decimal `json:"real_estate_cf"`
	IncomeStreams decimal.Decimal `json:"income_streams"`

	// Spending
	SpendMultiplier decimal.Decimal `json:"spend_multiplier"`
	RetireSpend     decimal.Decimal `json:"retire_spend"`
	TotalSpending   decimal.Decimal `json:"total_spending"`

	// Education
	HSTotal              decimal.Decimal `json:"hs_total"`
	HSPaidBy529          decimal.Decimal `json:"hs_paid_by_529"`
	HSFromPortfolio      decimal.Decimal `json:"hs_from_portfolio"`
	CollegeTotal         decimal.Decimal `json:"college_total"`
	CollegePaidBy529     decimal.Decimal `json:"college_paid_by_529"`
	CollegeFromPortfolio decimal.Decimal `json:"college_from_portfolio"`

	// Taxes (informational)
	TaxBrokerageDrag decimal.Decimal `json:"tax_brokerage_drag"`
	TaxOtherIncome   decimal.Decimal `json:"tax_other_income"`
	Tax401kTotal     decimal.Decimal `json:"tax_401k_total"`
	TaxTotal         decimal.Decimal `json:"tax_total"`

	NetWorth decimal.Decimal `json:"net_worth"`
}

// NeedFullyMet reports whether the withdrawal waterfall covered the year's net outflow.
func (ys *YearSnapshot) NeedFullyMet() bool {
	return !ys.UnmetNeed.IsPositive()
}

// WaterfallDraws returns the portfolio withdrawals made by the waterfall (RMDs excluded).
func (ys *YearSnapshot) WaterfallDraws() decimal.Decimal {
	return ys.WdBroker.Add(ys.WdCDs).
		Add(ys.Wd401kSelfGross).Add(ys.Wd401kSpouseGross).
		Add(ys.WdRothSelf).Add(ys.WdRothSpouse)
}

// RMDNet returns the after-tax RMD amount of both people.
func (ys *YearSnapshot) RMDNet() decimal.Decimal {
	return ys.RMDSelfGross.Sub(ys.RMDSelfTax).Add(ys.RMDSpouseGross).Sub(ys.RMDSpouseTax)
}

// SimulationPath is the ordered sequence of yearly snapshots of one run.
type SimulationPath []YearSnapshot

// Final returns the last snapshot, or nil for an empty path.
func (p SimulationPath) Final() *YearSnapshot {
	if len(p) == 0 {
		return nil
	}
	return &p[len(p)-1]
}

// At returns the snapshot for year index i, reusing the final snapshot once the
// path has ended.
func (p SimulationPath) At(i int) *YearSnapshot {
	if len(p) == 0 {
		return nil
	}
	if i >= len(p) {
		return &p[len(p)-1]
	}
	return &p[i]
}

// Succeeded reports whether the path ends with positive liquid assets.
func (p SimulationPath) Succeeded() bool {
	last := p.Final()
	return last != nil && last.TotalLiquid.IsPositive()
}

// DepletionYear returns the first calendar year whose liquid assets reached zero.
func (p SimulationPath) DepletionYear() (int, bool) {
	for _, y := range p {
		if !y.TotalLiquid.IsPositive() {
			return y.Year, true
		}
	}
	return 0, false
}

// FirstShortfallYear returns the first calendar year with an unmet spending need.
func (p SimulationPath) FirstShortfallYear() (int, bool) {
	for i := range p {
		if !p[i].NeedFullyMet() {
			return p[i].Year, true
		}
	}
	return 0, false
}

// PercentileBand holds liquid-asset percentiles across Monte Carlo paths for one year
type PercentileBand struct {
	Year int             `json:"year"`
	P10  decimal.Decimal `json:"p10"`
	P25  decimal.Decimal `json:"p25"`
	P50  decimal.Decimal `json:"p50"`
	P75  decimal.Decimal `json:"p75"`
	P90  decimal.Decimal `json:"p90"`
}

// SurvivalPoint is the share of paths with positive liquid assets in a year
type SurvivalPoint struct {
	Year      int             `json:"year"`
	AliveRate decimal.Decimal `json:"alive_rate"`
}

// MonteCarloResult represents the results of a Monte Carlo simulation
type MonteCarloResult struct {
	RunID          string           `json:"run_id"`
	Seed           int64            `json:"seed"`
	NumSimulations int              `json:"num_simulations"`
	Paths          []SimulationPath `json:"paths,omitempty"`
	PerYear        []PercentileBand `json:"per_year"`
	Survival       []SurvivalPoint  `json:"survival"`
	SuccessRate    decimal.Decimal  `json:"success_rate"`
}

// ScenarioSummary provides a summary of key metrics for a household scenario
type ScenarioSummary struct {
	Name            string          `json:"name"`
	SuccessPct      int             `json:"success_pct"`
	SuccessRate     decimal.Decimal `json:"success_rate"`
	FinalInvestable decimal.Decimal `json:"final_investable"`
	FinalNetWorth   decimal.Decimal `json:"final_net_worth"`
	DepletionYear   int             `json:"depletion_year,omitempty"`
	ShortfallYear   int             `json:"shortfall_year,omitempty"`
	MedianFinal     decimal.Decimal `json:"median_final"`
	Deterministic   SimulationPath  `json:"deterministic,omitempty"`
}

// ScenarioComparison provides a ranked comparison of all scenarios
type ScenarioComparison struct {
	Scenarios   []ScenarioSummary `json:"scenarios"`
	Recommended string            `json:"recommended"`
}
