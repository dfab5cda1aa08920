package output

import (
	"github.com/hhplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario and
// its lead over the runner-up.
type Recommendation struct {
	ScenarioName     string
	SuccessPct       int
	FinalInvestable  decimal.Decimal
	RunnerUp         string
	SuccessLead      int
	InvestableChange decimal.Decimal
}

// AnalyzeScenarios reads the recommendation from an already ranked comparison.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	best := results.Scenarios[0]
	for _, sc := range results.Scenarios {
		if sc.Name == results.Recommended {
			best = sc
			break
		}
	}
	rec := Recommendation{
		ScenarioName:    best.Name,
		SuccessPct:      best.SuccessPct,
		FinalInvestable: best.FinalInvestable,
	}
	for _, sc := range results.Scenarios {
		if sc.Name == best.Name {
			continue
		}
		rec.RunnerUp = sc.Name
		rec.SuccessLead = best.SuccessPct - sc.SuccessPct
		rec.InvestableChange = best.FinalInvestable.Sub(sc.FinalInvestable)
		break
	}
	return rec
}
