package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hhplan/household-planner/internal/domain"
	"github.com/hhplan/household-planner/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxEndAge bounds the plan-to age.
const MaxEndAge = 120

// InputParser handles parsing of plan files
type InputParser struct {
	now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{now: time.Now}
}

// LoadFromFile loads a plan from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates plan data.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded plan. Absent numbers are zero and
// accepted; only malformed values are rejected.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return domain.ErrNoScenarios
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if strings.TrimSpace(scenario.Name) == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		key := strings.ToLower(scenario.Name)
		if seen[key] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[key] = true

		if err := ip.ValidateHousehold(&scenario.Household); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
	}

	return nil
}

// ValidateHousehold validates one household's parameters
func (ip *InputParser) ValidateHousehold(hp *domain.HouseholdParameters) error {
	if err := validatePerson("self", &hp.Self); err != nil {
		return err
	}
	if err := validatePerson("spouse", &hp.Spouse); err != nil {
		return err
	}

	now := ip.now()
	ageSelf := dateutil.AgeFromBirthMonth(hp.Self.BirthMonth, hp.Self.BirthYear, hp.Self.CurrentAge, now)
	ageSpouse := dateutil.AgeFromBirthMonth(hp.Spouse.BirthMonth, hp.Spouse.BirthYear, hp.Spouse.CurrentAge, now)
	if hp.EndAge < ageSelf && hp.EndAge < ageSpouse {
		return fmt.Errorf("end age %d is below both current ages (%d, %d)", hp.EndAge, ageSelf, ageSpouse)
	}
	if hp.EndAge > MaxEndAge {
		return fmt.Errorf("end age %d exceeds %d", hp.EndAge, MaxEndAge)
	}
	if hp.SpendingGlideYears < 0 {
		return fmt.Errorf("spending glide years cannot be negative")
	}
	if hp.Simulations < 0 {
		return fmt.Errorf("simulations cannot be negative")
	}
	if hp.StdevReturnReal.IsNegative() {
		return fmt.Errorf("return standard deviation cannot be negative")
	}

	rates := []struct {
		name     string
		value    decimal.Decimal
		min, max float64
	}{
		{"mean_return_real", hp.MeanReturnReal, -1, 1},
		{"stdev_return_real", hp.StdevReturnReal, 0, 1},
		{"return_bound", hp.ReturnBound, 0, 1},
		{"cds_real_return", hp.CDsRealReturn, -1, 1},
		{"tax_401k_withdraw", hp.Tax401kWithdraw, 0, 1},
		{"cap_gains_drag_brokerage", hp.CapGainsDragBrokerage, -1, 1},
		{"eff_ordinary_tax_rate", hp.EffOrdinaryTaxRate, 0, 1},
		{"ss_taxable_percent", hp.SSTaxablePercent, 0, 1},
		{"annuity_taxable_percent", hp.AnnuityTaxablePercent, 0, 1},
		{"real_estate.appreciation_real", hp.RealEstate.AppreciationReal, -1, 1},
		{"real_estate.mortgage_rate_real", hp.RealEstate.MortgageRateReal, -1, 1},
	}
	for _, r := range rates {
		if r.value.LessThan(decimal.NewFromFloat(r.min)) || r.value.GreaterThan(decimal.NewFromFloat(r.max)) {
			return fmt.Errorf("%s must be between %v and %v, got %s", r.name, r.min, r.max, r.value)
		}
	}

	for i := range hp.Children {
		if err := validateChild(i, &hp.Children[i]); err != nil {
			return err
		}
	}

	return nil
}

func validatePerson(role string, p *domain.Person) error {
	ages := map[string]int{
		"current_age":       p.CurrentAge,
		"retire_age":        p.RetireAge,
		"ss_start_age":      p.SSStartAge,
		"annuity_start_age": p.AnnuityStartAge,
		"rmd_age":           p.RMDAge,
	}
	for name, age := range ages {
		if age < 0 {
			return fmt.Errorf("%s.%s cannot be negative", role, name)
		}
	}
	if p.BirthMonth < 0 || p.BirthMonth > 12 {
		return fmt.Errorf("%s.birth_month must be between 1 and 12", role)
	}
	if p.BirthYear < 0 {
		return fmt.Errorf("%s.birth_year cannot be negative", role)
	}
	return nil
}

func validateChild(i int, c *domain.Child) error {
	if c.Age < 0 || c.K12Years < 0 || c.K12StartAge < 0 || c.CollegeYears < 0 || c.CollegeStartAge < 0 {
		return fmt.Errorf("child %d (%s): ages and years cannot be negative", i, c.Name)
	}
	return nil
}

// SelectScenario returns the named scenario, or the first one when name is empty.
func SelectScenario(config *domain.Configuration, name string) (*domain.Scenario, error) {
	if len(config.Scenarios) == 0 {
		return nil, domain.ErrNoScenarios
	}
	scenario, ok := config.FindScenario(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrScenarioNotFound, name)
	}
	return scenario, nil
}

// CreateExampleConfiguration creates an example plan with a baseline and a
// later-retirement scenario
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	baseline := exampleHousehold()

	later := baseline.Clone()
	later.Self.RetireAge = 65
	later.Spouse.RetireAge = 67
	later.RetirementSpend = decimal.NewFromInt(130000)

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Baseline", Household: baseline},
			{Name: "Work Longer", Household: later},
		},
	}
}

func exampleHousehold() domain.HouseholdParameters {
	return domain.HouseholdParameters{
		Self: domain.Person{
			CurrentAge:      52,
			RetireAge:       62,
			Start401k:       decimal.NewFromInt(400000),
			Contrib401k:     decimal.NewFromInt(18000),
			StartRoth:       decimal.NewFromInt(100000),
			ContribRoth:     decimal.NewFromInt(6000),
			SSStartAge:      67,
			SSAnnual:        decimal.NewFromInt(36000),
			AnnuityStartAge: 65,
			RMDAge:          73,
		},
		Spouse: domain.Person{
			CurrentAge:      50,
			RetireAge:       64,
			Start401k:       decimal.NewFromInt(300000),
			Contrib401k:     decimal.NewFromInt(8000),
			StartRoth:       decimal.NewFromInt(50000),
			ContribRoth:     decimal.NewFromInt(1000),
			SSStartAge:      67,
			SSAnnual:        decimal.NewFromInt(30000),
			AnnuityStartAge: 65,
			RMDAge:          73,
		},
		EndAge:                95,
		ContributionPolicy:    domain.HalfAfterFirst,
		SpendingStart:         domain.SpendingStartBoth,
		SpendingGlideYears:    3,
		MeanReturnReal:        decimal.NewFromFloat(0.04),
		StdevReturnReal:       decimal.NewFromFloat(0.10),
		RetirementSpend:       decimal.NewFromInt(150000),
		StartBrokerage:        decimal.NewFromInt(350000),
		ContribBrokerage:      decimal.NewFromInt(27000),
		StartCDs:              decimal.NewFromInt(100000),
		ContribCDs:            decimal.NewFromInt(5000),
		CDsRealReturn:         decimal.NewFromFloat(0.01),
		Tax401kWithdraw:       decimal.NewFromFloat(0.22),
		CapGainsDragBrokerage: decimal.NewFromFloat(0.003),
		EffOrdinaryTaxRate:    decimal.NewFromFloat(0.20),
		SSTaxablePercent:      decimal.NewFromFloat(0.5),
		AnnuityTaxablePercent: decimal.NewFromInt(1),
		RealEstate: domain.RealEstate{
			Value:                 decimal.NewFromInt(1500000),
			Mortgage:              decimal.NewFromInt(700000),
			AppreciationReal:      decimal.NewFromFloat(0.01),
			SellAtRetire:          true,
			MortgageRateReal:      decimal.NewFromFloat(0.02),
			MortgageAnnualPayment: decimal.NewFromInt(60000),
		},
		RMDEnabled: true,
		Children: []domain.Child{
			{
				Name:            "Alex",
				Age:             14,
				Start529:        decimal.NewFromInt(25000),
				Contrib529:      decimal.NewFromInt(3000),
				K12Annual:       decimal.NewFromInt(20000),
				K12Years:        4,
				K12StartAge:     14,
				CollegeAnnual:   decimal.NewFromInt(30000),
				CollegeYears:    4,
				CollegeStartAge: 18,
			},
		},
		K12CapPerChild: decimal.NewFromInt(10000),
		Simulations:    600,
	}
}

// SaveToFile writes a plan as YAML
func (ip *InputParser) SaveToFile(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
