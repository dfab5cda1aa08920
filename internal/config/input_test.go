package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hhplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `scenarios:
  - name: Baseline
    household:
      self:
        current_age: 52
        retire_age: 62
        start_401k: 400000
        contrib_401k: 18000
        ss_start_age: 67
        ss_annual: 36000
        rmd_age: 73
      spouse:
        current_age: 50
        retire_age: 64
        start_401k: "300000.50"
        rmd_age: 73
      end_age: 95
      contribution_policy: full_until_both
      spending_start: first
      spending_glide_years: 3
      mean_return_real: 0.04
      stdev_return_real: 0.10
      retirement_spend: 150000
      start_brokerage: 350000
      tax_401k_withdraw: 0.22
      real_estate:
        value: 1500000
        mortgage: 700000
        sell_at_retire: true
      rmd_enabled: true
      children:
        - name: Alex
          age: 14
          start_529: 25000
          k12_annual: 20000
          k12_years: 4
          college_annual: 30000
          college_years: 4
      k12_cap_per_child: 10000
  - name: Minimal
    household:
      self:
        current_age: 60
      spouse:
        current_age: 58
      end_age: 90
`

func newTestParser() *InputParser {
	ip := NewInputParser()
	ip.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return ip
}

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	config, err := newTestParser().LoadFromFile(writePlan(t, samplePlan))
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)

	hp := config.Scenarios[0].Household
	assert.Equal(t, "Baseline", config.Scenarios[0].Name)
	assert.Equal(t, 52, hp.Self.CurrentAge)
	assert.True(t, hp.Self.Start401k.Equal(decimal.NewFromInt(400000)))
	assert.True(t, hp.Spouse.Start401k.Equal(decimal.RequireFromString("300000.50")), "quoted decimals decode")
	assert.Equal(t, domain.FullUntilBoth, hp.ContributionPolicy)
	assert.Equal(t, domain.SpendingStartFirst, hp.SpendingStart)
	assert.True(t, hp.RealEstate.SellAtRetire)
	require.Len(t, hp.Children, 1)
	assert.Equal(t, 18, hp.Children[0].CollegeStart())

	minimal := config.Scenarios[1].Household
	assert.Equal(t, domain.HalfAfterFirst, minimal.ContributionPolicy, "absent policy selects the default")
	assert.True(t, minimal.RetirementSpend.IsZero(), "absent numbers are zero")
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "unknown policy",
			content: "scenarios:\n  - name: A\n    household:\n      end_age: 90\n      contribution_policy: sometimes\n",
			errMsg:  "unknown contribution policy",
		},
		{
			name:    "unknown spending start",
			content: "scenarios:\n  - name: A\n    household:\n      end_age: 90\n      spending_start: never\n",
			errMsg:  "unknown spending start",
		},
		{
			name:    "no scenarios",
			content: "scenarios: []\n",
			errMsg:  "no scenarios provided",
		},
		{
			name:    "negative age",
			content: "scenarios:\n  - name: A\n    household:\n      self:\n        current_age: -1\n      end_age: 90\n",
			errMsg:  "self.current_age cannot be negative",
		},
		{
			name:    "end age below both ages",
			content: "scenarios:\n  - name: A\n    household:\n      self:\n        current_age: 70\n      spouse:\n        current_age: 68\n      end_age: 60\n",
			errMsg:  "below both current ages",
		},
		{
			name:    "rate out of range",
			content: "scenarios:\n  - name: A\n    household:\n      end_age: 90\n      mean_return_real: 1.5\n",
			errMsg:  "mean_return_real must be between",
		},
		{
			name:    "duplicate names",
			content: "scenarios:\n  - name: A\n    household:\n      end_age: 90\n  - name: a\n    household:\n      end_age: 90\n",
			errMsg:  "duplicate name",
		},
		{
			name:    "bad decimal",
			content: "scenarios:\n  - name: A\n    household:\n      end_age: 90\n      retirement_spend: lots\n",
			errMsg:  "failed to parse YAML",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestParser().LoadFromFile(writePlan(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateConfiguration_NoScenarios(t *testing.T) {
	err := newTestParser().ValidateConfiguration(&domain.Configuration{})
	assert.ErrorIs(t, err, domain.ErrNoScenarios)
}

func TestValidateHousehold_BirthMonthResolvesAge(t *testing.T) {
	hp := &domain.HouseholdParameters{
		Self:   domain.Person{CurrentAge: 40, BirthMonth: 6, BirthYear: 1950},
		Spouse: domain.Person{CurrentAge: 40, BirthMonth: 6, BirthYear: 1950},
		EndAge: 70,
	}
	err := newTestParser().ValidateHousehold(hp)
	require.Error(t, err, "birth year puts both members past the end age")
	assert.Contains(t, err.Error(), "(74, 74)")
}

func TestSelectScenario(t *testing.T) {
	config := &domain.Configuration{Scenarios: []domain.Scenario{{Name: "Baseline"}, {Name: "Work Longer"}}}

	s, err := SelectScenario(config, "")
	require.NoError(t, err)
	assert.Equal(t, "Baseline", s.Name)

	s, err = SelectScenario(config, "work longer")
	require.NoError(t, err)
	assert.Equal(t, "Work Longer", s.Name)

	_, err = SelectScenario(config, "nope")
	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)

	_, err = SelectScenario(&domain.Configuration{}, "")
	assert.ErrorIs(t, err, domain.ErrNoScenarios)
}

func TestExampleConfiguration_RoundTrip(t *testing.T) {
	ip := newTestParser()
	example := ip.CreateExampleConfiguration()
	require.NoError(t, ip.ValidateConfiguration(example))

	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, ip.SaveToFile(example, path))

	loaded, err := ip.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Scenarios, 2)
	assert.Equal(t, "Work Longer", loaded.Scenarios[1].Name)
	assert.Equal(t, 65, loaded.Scenarios[1].Household.Self.RetireAge)
	assert.True(t, loaded.Scenarios[0].Household.Tax401kWithdraw.Equal(decimal.NewFromFloat(0.22)))
	assert.Equal(t, domain.HalfAfterFirst, loaded.Scenarios[0].Household.ContributionPolicy)
}
