package output

import (
	"fmt"

	"github.com/hhplan/household-planner/internal/calculation"
	"github.com/hhplan/household-planner/internal/domain"
)

// DefaultAssumptions lists the modeling conventions that hold for every plan.
var DefaultAssumptions = []string{
	"All amounts are real (inflation-adjusted) dollars",
	"Withdrawal order: brokerage, CDs, 401(k) grossed up for tax, then Roth",
	"Taxes other than 401(k) withdrawals are informational and not deducted",
}

// GenerateAssumptions lists the plan-specific market and tax assumptions
// followed by DefaultAssumptions.
func GenerateAssumptions(hp *domain.HouseholdParameters) []string {
	if hp == nil {
		return DefaultAssumptions
	}
	bound := hp.ReturnBound.Abs()
	if bound.IsZero() {
		bound = calculation.DefaultReturnBound
	}
	out := []string{
		fmt.Sprintf("Real market return: %s mean, %s standard deviation, clamped to ±%s",
			FormatPercentage(hp.MeanReturnReal), FormatPercentage(hp.StdevReturnReal), FormatPercentage(bound)),
		fmt.Sprintf("CD real return: %s", FormatPercentage(hp.CDsRealReturn)),
		fmt.Sprintf("401(k) withdrawal tax: %s; brokerage drag: %s", FormatPercentage(hp.Tax401kWithdraw), FormatPercentage(hp.CapGainsDragBrokerage)),
		fmt.Sprintf("Contributions after first retirement: %s; spending starts: %s", hp.ContributionPolicy, hp.SpendingStart),
	}
	if hp.RMDEnabled {
		out = append(out, "Required minimum distributions: enabled")
	}
	return append(out, DefaultAssumptions...)
}
