package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ContributionPolicy decides how much of the planned contributions continue
// once the first person retires.
type ContributionPolicy int

const (
	// HalfAfterFirst halves all contributions while only one person works.
	HalfAfterFirst ContributionPolicy = iota
	// FullUntilBoth keeps full contributions until both have retired.
	FullUntilBoth
	// StopAfterFirst stops all contributions when the first person retires.
	StopAfterFirst
)

var contributionPolicyNames = map[ContributionPolicy]string{
	HalfAfterFirst: "half_after_first",
	FullUntilBoth:  "full_until_both",
	StopAfterFirst: "stop_after_first",
}

func (p ContributionPolicy) String() string {
	if name, ok := contributionPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("ContributionPolicy(%d)", int(p))
}

// ParseContributionPolicy converts the plan-file spelling to a ContributionPolicy.
// The empty string selects the default (half_after_first).
func ParseContributionPolicy(s string) (ContributionPolicy, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	if n == "" {
		return HalfAfterFirst, nil
	}
	for p, name := range contributionPolicyNames {
		if name == n {
			return p, nil
		}
	}
	return HalfAfterFirst, fmt.Errorf("unknown contribution policy %q", s)
}

func (p ContributionPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *ContributionPolicy) UnmarshalText(text []byte) error {
	v, err := ParseContributionPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for ContributionPolicy
func (p *ContributionPolicy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// SpendingStart selects which retirement starts the spending glide path.
type SpendingStart int

const (
	// SpendingStartBoth starts spending once both people are retired.
	SpendingStartBoth SpendingStart = iota
	// SpendingStartFirst starts spending once the first person retires.
	SpendingStartFirst
)

func (s SpendingStart) String() string {
	switch s {
	case SpendingStartBoth:
		return "both"
	case SpendingStartFirst:
		return "first"
	default:
		return fmt.Sprintf("SpendingStart(%d)", int(s))
	}
}

// ParseSpendingStart converts "both" or "first"; empty selects "both".
func ParseSpendingStart(s string) (SpendingStart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return SpendingStartBoth, nil
	case "first":
		return SpendingStartFirst, nil
	default:
		return SpendingStartBoth, fmt.Errorf("unknown spending start %q", s)
	}
}

func (s SpendingStart) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SpendingStart) UnmarshalText(text []byte) error {
	v, err := ParseSpendingStart(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for SpendingStart
func (s *SpendingStart) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(raw))
}

// Person holds one member of the household. Amounts are annual and real.
type Person struct {
	CurrentAge int `yaml:"current_age" json:"current_age"`
	// BirthMonth (1-12) and BirthYear override CurrentAge when both are set.
	BirthMonth int `yaml:"birth_month,omitempty" json:"birth_month,omitempty"`
	BirthYear  int `yaml:"birth_year,omitempty" json:"birth_year,omitempty"`
	RetireAge  int `yaml:"retire_age" json:"retire_age"`

	Start401k   decimal.Decimal `yaml:"start_401k" json:"start_401k"`
	Contrib401k decimal.Decimal `yaml:"contrib_401k" json:"contrib_401k"`
	StartRoth   decimal.Decimal `yaml:"start_roth" json:"start_roth"`
	ContribRoth decimal.Decimal `yaml:"contrib_roth" json:"contrib_roth"`

	WageAnnual decimal.Decimal `yaml:"wage_annual" json:"wage_annual"`

	SSStartAge      int             `yaml:"ss_start_age" json:"ss_start_age"`
	SSAnnual        decimal.Decimal `yaml:"ss_annual" json:"ss_annual"`
	AnnuityStartAge int             `yaml:"annuity_start_age" json:"annuity_start_age"`
	AnnuityAnnual   decimal.Decimal `yaml:"annuity_annual" json:"annuity_annual"`

	RMDAge int `yaml:"rmd_age" json:"rmd_age"`
}

// RealEstate describes the household's home and its mortgage, in real terms.
type RealEstate struct {
	Value                 decimal.Decimal `yaml:"value" json:"value"`
	Mortgage              decimal.Decimal `yaml:"mortgage" json:"mortgage"`
	AppreciationReal      decimal.Decimal `yaml:"appreciation_real" json:"appreciation_real"`
	NetCashflow           decimal.Decimal `yaml:"net_cashflow" json:"net_cashflow"`
	SellAtRetire          bool            `yaml:"sell_at_retire" json:"sell_at_retire"`
	MortgageRateReal      decimal.Decimal `yaml:"mortgage_rate_real" json:"mortgage_rate_real"`
	MortgageAnnualPayment decimal.Decimal `yaml:"mortgage_annual_payment" json:"mortgage_annual_payment"`
}

// Child is a dependent with a 529 plan. Zero start ages fall back to 14 (K-12)
// and 18 (college).
type Child struct {
	Name       string          `yaml:"name" json:"name"`
	Age        int             `yaml:"age" json:"age"`
	Start529   decimal.Decimal `yaml:"start_529" json:"start_529"`
	Contrib529 decimal.Decimal `yaml:"contrib_529" json:"contrib_529"`

	K12Annual   decimal.Decimal `yaml:"k12_annual" json:"k12_annual"`
	K12Years    int             `yaml:"k12_years" json:"k12_years"`
	K12StartAge int             `yaml:"k12_start_age" json:"k12_start_age"`

	CollegeAnnual   decimal.Decimal `yaml:"college_annual" json:"college_annual"`
	CollegeYears    int             `yaml:"college_years" json:"college_years"`
	CollegeStartAge int             `yaml:"college_start_age" json:"college_start_age"`
}

const (
	DefaultK12StartAge     = 14
	DefaultCollegeStartAge = 18
)

// K12Start returns the configured K-12 start age or the default.
func (c Child) K12Start() int {
	if c.K12StartAge == 0 {
		return DefaultK12StartAge
	}
	return c.K12StartAge
}

// CollegeStart returns the configured college start age or the default.
func (c Child) CollegeStart() int {
	if c.CollegeStartAge == 0 {
		return DefaultCollegeStartAge
	}
	return c.CollegeStartAge
}

// HouseholdParameters is the complete, immutable input of one simulation run.
type HouseholdParameters struct {
	Self   Person `yaml:"self" json:"self"`
	Spouse Person `yaml:"spouse" json:"spouse"`
	EndAge int    `yaml:"end_age" json:"end_age"`

	ContributionPolicy ContributionPolicy `yaml:"contribution_policy" json:"contribution_policy"`
	SpendingStart      SpendingStart      `yaml:"spending_start" json:"spending_start"`
	SpendingGlideYears int                `yaml:"spending_glide_years" json:"spending_glide_years"`

	MeanReturnReal  decimal.Decimal `yaml:"mean_return_real" json:"mean_return_real"`
	StdevReturnReal decimal.Decimal `yaml:"stdev_return_real" json:"stdev_return_real"`
	// ReturnBound clamps the annual base and brokerage returns to ±ReturnBound (0 selects 0.30).
	ReturnBound decimal.Decimal `yaml:"return_bound,omitempty" json:"return_bound,omitempty"`

	RetirementSpend decimal.Decimal `yaml:"retirement_spend" json:"retirement_spend"`

	StartBrokerage   decimal.Decimal `yaml:"start_brokerage" json:"start_brokerage"`
	ContribBrokerage decimal.Decimal `yaml:"contrib_brokerage" json:"contrib_brokerage"`
	StartCDs         decimal.Decimal `yaml:"start_cds" json:"start_cds"`
	ContribCDs       decimal.Decimal `yaml:"contrib_cds" json:"contrib_cds"`
	CDsRealReturn    decimal.Decimal `yaml:"cds_real_return" json:"cds_real_return"`

	Tax401kWithdraw       decimal.Decimal `yaml:"tax_401k_withdraw" json:"tax_401k_withdraw"`
	CapGainsDragBrokerage decimal.Decimal `yaml:"cap_gains_drag_brokerage" json:"cap_gains_drag_brokerage"`
	EffOrdinaryTaxRate    decimal.Decimal `yaml:"eff_ordinary_tax_rate" json:"eff_ordinary_tax_rate"`
	SSTaxablePercent      decimal.Decimal `yaml:"ss_taxable_percent" json:"ss_taxable_percent"`
	AnnuityTaxablePercent decimal.Decimal `yaml:"annuity_taxable_percent" json:"annuity_taxable_percent"`

	RealEstate RealEstate `yaml:"real_estate" json:"real_estate"`

	RMDEnabled bool `yaml:"rmd_enabled" json:"rmd_enabled"`

	Children       []Child         `yaml:"children,omitempty" json:"children,omitempty"`
	K12CapPerChild decimal.Decimal `yaml:"k12_cap_per_child" json:"k12_cap_per_child"`

	Simulations int `yaml:"simulations,omitempty" json:"simulations,omitempty"`
}

// Clone returns a copy that shares no mutable state with hp.
func (hp HouseholdParameters) Clone() HouseholdParameters {
	out := hp
	if hp.Children != nil {
		out.Children = make([]Child, len(hp.Children))
		copy(out.Children, hp.Children)
	}
	return out
}

// HouseholdRetireAge is the later of the two configured retirement ages.
func (hp HouseholdParameters) HouseholdRetireAge() int {
	if hp.Self.RetireAge > hp.Spouse.RetireAge {
		return hp.Self.RetireAge
	}
	return hp.Spouse.RetireAge
}

// Scenario is a named set of household parameters from a plan file.
type Scenario struct {
	Name      string              `yaml:"name" json:"name"`
	Household HouseholdParameters `yaml:"household" json:"household"`
}

// Configuration is the root of a plan file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// FindScenario returns the scenario with the given name (case-insensitive).
// An empty name selects the first scenario.
func (c *Configuration) FindScenario(name string) (*Scenario, bool) {
	if len(c.Scenarios) == 0 {
		return nil, false
	}
	if strings.TrimSpace(name) == "" {
		return &c.Scenarios[0], true
	}
	for i := range c.Scenarios {
		if strings.EqualFold(c.Scenarios[i].Name, name) {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}
