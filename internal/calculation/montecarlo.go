package calculation

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hhplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultSimulations = 600
	MinSimulations     = 50
	MaxSimulations     = 3000
)

// MonteCarloOptions controls a Monte Carlo run. A zero Simulations selects the
// household's own count (or 600). Seed is used as given, zero included.
type MonteCarloOptions struct {
	Simulations int
	Seed        int64
}

// NormalizeSimulations applies the default and bounds to a requested path count.
func NormalizeSimulations(n int) int {
	if n <= 0 {
		n = DefaultSimulations
	}
	return min(max(n, MinSimulations), MaxSimulations)
}

// RunMonteCarlo simulates independent randomized paths for the household and
// aggregates liquid-asset percentiles, survival and success. Path i draws from
// its own source seeded with seed+i, so a run is reproducible for a given seed
// no matter how the paths are scheduled. Cancellation is checked before each
// path starts.
func (ce *CalculationEngine) RunMonteCarlo(ctx context.Context, params domain.HouseholdParameters, opts MonteCarloOptions) (*domain.MonteCarloResult, error) {
	requested := opts.Simulations
	if requested <= 0 {
		requested = params.Simulations
	}
	n := NormalizeSimulations(requested)

	seed := opts.Seed

	workers := ce.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	runID := uuid.NewString()
	now := nowFunc()
	start := time.Now()
	ce.Logger.Infof("monte carlo run %s: %d paths, seed %d, %d workers", runID, n, seed, workers)

	paths := make([]domain.SimulationPath, n)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(simIndex int) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			if ctx.Err() != nil {
				return
			}
			src := NewSeededSource(seed + int64(simIndex))
			paths[simIndex] = SimulatePath(params, src, now)
			ce.Observer.PathCompleted(paths[simIndex])
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		ce.Logger.Warnf("monte carlo run %s cancelled: %v", runID, err)
		return nil, err
	}

	result := aggregatePaths(paths)
	result.RunID = runID
	result.Seed = seed

	elapsed := time.Since(start)
	ce.Observer.RunCompleted(result, elapsed)
	ce.Logger.Debugf("monte carlo run %s finished in %s, success rate %s", runID, elapsed, result.SuccessRate.StringFixed(4))
	return result, nil
}

// aggregatePaths builds per-year percentile bands, survival rates and the
// overall success rate. Paths that end early contribute their last snapshot
// to later years.
func aggregatePaths(paths []domain.SimulationPath) *domain.MonteCarloResult {
	result := &domain.MonteCarloResult{
		NumSimulations: len(paths),
		Paths:          paths,
		SuccessRate:    decimal.Zero,
	}
	if len(paths) == 0 {
		return result
	}

	longest := 0
	for i := range paths {
		if len(paths[i]) > len(paths[longest]) {
			longest = i
		}
	}
	years := len(paths[longest])
	total := decimal.NewFromInt(int64(len(paths)))

	result.PerYear = make([]domain.PercentileBand, 0, years)
	result.Survival = make([]domain.SurvivalPoint, 0, years)
	balances := make([]decimal.Decimal, len(paths))

	for y := 0; y < years; y++ {
		alive := 0
		n := 0
		for _, p := range paths {
			snap := p.At(y)
			if snap == nil {
				continue
			}
			balances[n] = snap.TotalLiquid
			n++
			if snap.TotalLiquid.IsPositive() {
				alive++
			}
		}
		year := paths[longest][y].Year
		sorted := sortedCopy(balances[:n])
		result.PerYear = append(result.PerYear, domain.PercentileBand{
			Year: year,
			P10:  Percentile(sorted, 10),
			P25:  Percentile(sorted, 25),
			P50:  Percentile(sorted, 50),
			P75:  Percentile(sorted, 75),
			P90:  Percentile(sorted, 90),
		})
		result.Survival = append(result.Survival, domain.SurvivalPoint{
			Year:      year,
			AliveRate: decimal.NewFromInt(int64(alive)).Div(total),
		})
	}

	success := 0
	for _, p := range paths {
		if p.Succeeded() {
			success++
		}
	}
	result.SuccessRate = decimal.NewFromInt(int64(success)).Div(total)
	return result
}

func sortedCopy(values []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	copy(out, values)
	sort.Slice(out, func(i, j int) bool { return out[i].LessThan(out[j]) })
	return out
}

// Percentile returns the p-th percentile of sorted values, interpolating
// linearly between the closest order statistics.
func Percentile(sorted []decimal.Decimal, p float64) decimal.Decimal {
	n := len(sorted)
	if n == 0 {
		return decimal.Zero
	}
	if n == 1 {
		return sorted[0]
	}
	idx := p / 100 * float64(n-1)
	lo := int(idx)
	if lo >= n-1 {
		return sorted[n-1]
	}
	if lo < 0 {
		return sorted[0]
	}
	frac := decimal.NewFromFloat(idx - float64(lo))
	return sorted[lo].Add(sorted[lo+1].Sub(sorted[lo]).Mul(frac))
}
