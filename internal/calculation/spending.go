package calculation

import (
	"github.com/hhplan/household-planner/internal/domain"
	"github.com/hhplan/household-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// SpendingMultiplier returns the fraction of retirement spending in effect.
// Years are counted from the first retirement or from both, depending on the
// household's spending start; a positive glide ramps spending in linearly.
func SpendingMultiplier(hp *domain.HouseholdParameters, ageSelf, ageSpouse int) decimal.Decimal {
	selfYears := ageSelf - hp.Self.RetireAge
	spouseYears := ageSpouse - hp.Spouse.RetireAge

	var years int
	switch hp.SpendingStart {
	case domain.SpendingStartFirst:
		years = max(selfYears, spouseYears)
	default:
		years = min(selfYears, spouseYears)
	}

	if hp.SpendingGlideYears <= 0 {
		if years >= 0 {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	}
	ratio := decimal.NewFromInt(int64(years)).Div(decimal.NewFromInt(int64(hp.SpendingGlideYears)))
	return money.Clamp(ratio, decimal.Zero, decimal.NewFromInt(1))
}
