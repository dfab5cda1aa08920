package output

import (
	"github.com/hhplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func samplePath() domain.SimulationPath {
	return domain.SimulationPath{
		{
			Year: 2026, AgeSelf: 64, AgeSpouse: 62,
			BalBroker: d(1250000), TotalLiquid: d(1250000), NetWorth: d(1650000),
			IncomeStreams: d(40000), TotalSpending: d(90000), WdTotal: d(50000),
		},
		{
			Year: 2027, AgeSelf: 65, AgeSpouse: 63,
			TotalLiquid: decimal.Zero, NetWorth: d(400000),
			TotalSpending: d(90000), UnmetNeed: d(12500),
			RMDSelfGross: d(36470), RMDSelfTax: d(8023),
		},
	}
}

func sampleMonteCarlo() *domain.MonteCarloResult {
	return &domain.MonteCarloResult{
		RunID:          "2f1c7a0e-0000-4000-8000-000000000001",
		Seed:           42,
		NumSimulations: 600,
		SuccessRate:    decimal.RequireFromString("0.85"),
		PerYear: []domain.PercentileBand{
			{Year: 2026, P10: d(900000), P25: d(1000000), P50: d(1200000), P75: d(1400000), P90: d(1600000)},
			{Year: 2027, P10: d(0), P25: d(500000), P50: d(1100000), P75: d(1500000), P90: d(1900000)},
		},
		Survival: []domain.SurvivalPoint{
			{Year: 2026, AliveRate: decimal.NewFromInt(1)},
			{Year: 2027, AliveRate: decimal.RequireFromString("0.85")},
		},
	}
}

func sampleComparison() *domain.ScenarioComparison {
	return &domain.ScenarioComparison{
		Recommended: "Work Longer",
		Scenarios: []domain.ScenarioSummary{
			{Name: "Work Longer", SuccessPct: 92, SuccessRate: decimal.RequireFromString("0.92"), FinalInvestable: d(2100000), FinalNetWorth: d(2600000), MedianFinal: d(1900000)},
			{Name: "Baseline", SuccessPct: 81, SuccessRate: decimal.RequireFromString("0.81"), FinalInvestable: d(1500000), FinalNetWorth: d(2000000), MedianFinal: d(1300000), ShortfallYear: 2061},
		},
	}
}
