package calculation

import (
	"context"
	"fmt"
	"sort"

	"github.com/hhplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// compareConcurrency bounds how many scenarios run at once. Each scenario
// already fans its paths out over the engine's workers.
const compareConcurrency = 2

// Summarize runs the mean-return path and a Monte Carlo run for one scenario.
// Final balances come from the mean-return path; the success figures come
// from the Monte Carlo run.
func (ce *CalculationEngine) Summarize(ctx context.Context, scenario domain.Scenario, opts MonteCarloOptions) (*domain.ScenarioSummary, error) {
	det := ce.SimulatePath(scenario.Household, nil)

	mc, err := ce.RunMonteCarlo(ctx, scenario.Household, opts)
	if err != nil {
		return nil, fmt.Errorf("monte carlo for scenario %q: %w", scenario.Name, err)
	}

	summary := &domain.ScenarioSummary{
		Name:          scenario.Name,
		SuccessRate:   mc.SuccessRate,
		SuccessPct:    int(mc.SuccessRate.Mul(decimal.NewFromInt(100)).Round(0).IntPart()),
		Deterministic: det,
	}
	if last := det.Final(); last != nil {
		summary.FinalInvestable = last.TotalLiquid
		summary.FinalNetWorth = last.NetWorth
	}
	if year, ok := det.DepletionYear(); ok {
		summary.DepletionYear = year
	}
	if year, ok := det.FirstShortfallYear(); ok {
		summary.ShortfallYear = year
	}
	if n := len(mc.PerYear); n > 0 {
		summary.MedianFinal = mc.PerYear[n-1].P50
	}
	return summary, nil
}

// Compare summarizes every scenario with the same seed and ranks them by
// success rate, then by final investable assets.
func (ce *CalculationEngine) Compare(ctx context.Context, config *domain.Configuration, opts MonteCarloOptions) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, domain.ErrNoScenarios
	}

	summaries := make([]domain.ScenarioSummary, len(config.Scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(compareConcurrency)
	for i, scenario := range config.Scenarios {
		g.Go(func() error {
			summary, err := ce.Summarize(gctx, scenario, opts)
			if err != nil {
				return err
			}
			summaries[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].SuccessPct != summaries[j].SuccessPct {
			return summaries[i].SuccessPct > summaries[j].SuccessPct
		}
		return summaries[i].FinalInvestable.GreaterThan(summaries[j].FinalInvestable)
	})

	ce.Logger.Infof("compared %d scenarios, best is %q", len(summaries), summaries[0].Name)
	return &domain.ScenarioComparison{
		Scenarios:   summaries,
		Recommended: summaries[0].Name,
	}, nil
}
