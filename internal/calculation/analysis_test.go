package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/hhplan/household-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	defer SetNowFunc(nowFunc)
	SetNowFunc(func() time.Time { return testNow })

	hp := retiredSingle(60, 65)
	hp.RetirementSpend = d(50000)
	hp.StartBrokerage = d(1000000)

	summary, err := NewCalculationEngine().Summarize(context.Background(),
		domain.Scenario{Name: "Brokerage only", Household: hp}, MonteCarloOptions{Seed: 5})
	require.NoError(t, err)

	assert.Equal(t, "Brokerage only", summary.Name)
	assert.Equal(t, 100, summary.SuccessPct)
	assert.True(t, summary.FinalInvestable.Equal(d(700000)), "final %s", summary.FinalInvestable)
	assert.True(t, summary.FinalNetWorth.Equal(d(700000)))
	assert.True(t, summary.MedianFinal.Equal(d(700000)))
	assert.Zero(t, summary.DepletionYear)
	assert.Zero(t, summary.ShortfallYear)
	assert.Len(t, summary.Deterministic, 6)
}

func TestSummarize_Depletion(t *testing.T) {
	defer SetNowFunc(nowFunc)
	SetNowFunc(func() time.Time { return testNow })

	hp := retiredSingle(60, 65)
	hp.RetirementSpend = d(50000)
	hp.StartBrokerage = d(120000)

	summary, err := NewCalculationEngine().Summarize(context.Background(),
		domain.Scenario{Name: "Short", Household: hp}, MonteCarloOptions{Seed: 5})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.SuccessPct)
	assert.Equal(t, 2027, summary.DepletionYear)
	assert.Equal(t, 2027, summary.ShortfallYear)
}

func TestCompare(t *testing.T) {
	rich := retiredSingle(60, 65)
	rich.RetirementSpend = d(50000)
	rich.StartBrokerage = d(2000000)

	modest := rich
	modest.StartBrokerage = d(1000000)

	broke := rich
	broke.StartBrokerage = d(100000)

	config := &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "Broke", Household: broke},
		{Name: "Modest", Household: modest},
		{Name: "Rich", Household: rich},
	}}

	cmp, err := NewCalculationEngine().Compare(context.Background(), config, MonteCarloOptions{Simulations: 50, Seed: 11})
	require.NoError(t, err)
	require.Len(t, cmp.Scenarios, 3)

	assert.Equal(t, "Rich", cmp.Recommended)
	assert.Equal(t, []string{"Rich", "Modest", "Broke"},
		[]string{cmp.Scenarios[0].Name, cmp.Scenarios[1].Name, cmp.Scenarios[2].Name})
}

func TestCompare_ZeroSeedIsReproducible(t *testing.T) {
	lean := sampleHousehold()
	lean.RetirementSpend = d(110000)
	config := &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "Baseline", Household: sampleHousehold()},
		{Name: "Lean", Household: lean},
	}}

	opts := MonteCarloOptions{Simulations: 50}
	first, err := NewCalculationEngine().Compare(context.Background(), config, opts)
	require.NoError(t, err)
	second, err := NewCalculationEngine().Compare(context.Background(), config, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Recommended, second.Recommended)
	for i := range first.Scenarios {
		assert.Equal(t, first.Scenarios[i].SuccessPct, second.Scenarios[i].SuccessPct)
		assert.True(t, first.Scenarios[i].MedianFinal.Equal(second.Scenarios[i].MedianFinal), first.Scenarios[i].Name)
	}
}

func TestCompare_NoScenarios(t *testing.T) {
	_, err := NewCalculationEngine().Compare(context.Background(), &domain.Configuration{}, MonteCarloOptions{})
	assert.ErrorIs(t, err, domain.ErrNoScenarios)
}

func TestCompare_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	config := &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "A", Household: retiredSingle(60, 65)},
		{Name: "B", Household: retiredSingle(60, 70)},
	}}
	_, err := NewCalculationEngine().Compare(ctx, config, MonteCarloOptions{Simulations: 50, Seed: 3})
	assert.ErrorIs(t, err, context.Canceled)
}
