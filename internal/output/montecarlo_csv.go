package output

import (
	"encoding/csv"

	"github.com/hhplan/household-planner/internal/domain"
)

func writeBandsCSV(w *csv.Writer, mc *domain.MonteCarloResult) error {
	header := []string{"year", "p10", "p25", "p50", "p75", "p90", "aliveRate"}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, band := range mc.PerYear {
		alive := ""
		if i < len(mc.Survival) {
			alive = mc.Survival[i].AliveRate.StringFixed(4)
		}
		row := appendFixed([]string{intToString(band.Year)}, band.P10, band.P25, band.P50, band.P75, band.P90)
		if err := w.Write(append(row, alive)); err != nil {
			return err
		}
	}
	return nil
}

func writeComparisonCSV(w *csv.Writer, cmp *domain.ScenarioComparison) error {
	header := []string{"scenario", "recommended", "successPct", "finalInvestable", "finalNetWorth", "medianFinal", "depletionYear", "shortfallYear"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, sc := range cmp.Scenarios {
		row := []string{sc.Name, boolToString(sc.Name == cmp.Recommended), intToString(sc.SuccessPct)}
		row = appendFixed(row, sc.FinalInvestable, sc.FinalNetWorth, sc.MedianFinal)
		row = append(row, intToString(sc.DepletionYear), intToString(sc.ShortfallYear))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
