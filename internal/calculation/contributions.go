package calculation

import (
	"github.com/hhplan/household-planner/internal/domain"
	"github.com/hhplan/household-planner/pkg/money"
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// WorkStatus classifies a year by how many household members are still working.
type WorkStatus int

const (
	NeitherWorking WorkStatus = iota
	OneWorking
	BothWorking
)

// ClassifyWork returns the work status for the given ages.
func ClassifyWork(hp *domain.HouseholdParameters, ageSelf, ageSpouse int) WorkStatus {
	selfWorking := ageSelf < hp.Self.RetireAge
	spouseWorking := ageSpouse < hp.Spouse.RetireAge
	switch {
	case selfWorking && spouseWorking:
		return BothWorking
	case selfWorking || spouseWorking:
		return OneWorking
	default:
		return NeitherWorking
	}
}

// ContributionMultiplier returns the share of planned contributions made this year.
func ContributionMultiplier(policy domain.ContributionPolicy, status WorkStatus) decimal.Decimal {
	switch status {
	case BothWorking:
		return decimal.NewFromInt(1)
	case OneWorking:
		switch policy {
		case domain.FullUntilBoth:
			return decimal.NewFromInt(1)
		case domain.HalfAfterFirst:
			return half
		case domain.StopAfterFirst:
			return decimal.Zero
		}
	}
	return decimal.Zero
}

// Contributions are the year's deposits into each sleeve.
type Contributions struct {
	Multiplier decimal.Decimal
	K401Self   decimal.Decimal
	K401Spouse decimal.Decimal
	RothSelf   decimal.Decimal
	RothSpouse decimal.Decimal
	Broker     decimal.Decimal
	CDs        decimal.Decimal
}

// PlanContributions applies the contribution policy to the household's planned
// deposits. Negative planned amounts contribute nothing.
func PlanContributions(hp *domain.HouseholdParameters, ageSelf, ageSpouse int) Contributions {
	mult := ContributionMultiplier(hp.ContributionPolicy, ClassifyWork(hp, ageSelf, ageSpouse))
	scale := func(d decimal.Decimal) decimal.Decimal {
		return money.NonNegative(d).Mul(mult)
	}
	return Contributions{
		Multiplier: mult,
		K401Self:   scale(hp.Self.Contrib401k),
		K401Spouse: scale(hp.Spouse.Contrib401k),
		RothSelf:   scale(hp.Self.ContribRoth),
		RothSpouse: scale(hp.Spouse.ContribRoth),
		Broker:     scale(hp.ContribBrokerage),
		CDs:        scale(hp.ContribCDs),
	}
}

// Grow compounds a sleeve for one year and adds the contribution at year end.
func Grow(balance, rate, contribution decimal.Decimal) decimal.Decimal {
	return balance.Mul(decimal.NewFromInt(1).Add(rate)).Add(contribution)
}

// GrowBrokerage compounds the brokerage sleeve with half the year's
// contribution invested for the full year.
func GrowBrokerage(balance, rate, contribution decimal.Decimal) decimal.Decimal {
	return balance.Add(contribution.Mul(half)).Mul(decimal.NewFromInt(1).Add(rate))
}
