package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hhplan/household-planner/internal/domain"
)

// ConsoleFormatter renders a human-readable report for a terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if err := report.validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	switch {
	case report.Comparison != nil:
		writeComparison(&buf, report.Comparison)
	case report.MonteCarlo != nil:
		writeHeading(&buf, "MONTE CARLO ANALYSIS", report.Scenario)
		writeAssumptions(&buf, report.Household)
		writeMonteCarlo(&buf, report.MonteCarlo)
	default:
		writeHeading(&buf, "HOUSEHOLD PROJECTION", report.Scenario)
		writeAssumptions(&buf, report.Household)
		writePath(&buf, report.Path)
	}
	return buf.Bytes(), nil
}

func writeHeading(w io.Writer, title, scenario string) {
	if scenario != "" {
		title += ": " + scenario
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)
}

func writeAssumptions(w io.Writer, hp *domain.HouseholdParameters) {
	fmt.Fprintln(w, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(hp) {
		fmt.Fprintf(w, "• %s\n", a)
	}
	fmt.Fprintln(w)
}

func writePath(w io.Writer, path domain.SimulationPath) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tAges\tIncome\tSpending\tWithdrawals\tRMD Net\tTaxes\tLiquid\tNet Worth\tUnmet\t")
	for i := range path {
		y := &path[i]
		fmt.Fprintf(tw, "%d\t%d/%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			y.Year, y.AgeSelf, y.AgeSpouse,
			FormatCurrency(y.IncomeStreams),
			FormatCurrency(y.TotalSpending),
			FormatCurrency(y.WdTotal),
			FormatCurrency(y.RMDNet()),
			FormatCurrency(y.TaxTotal),
			FormatCurrency(y.TotalLiquid),
			FormatCurrency(y.NetWorth),
			FormatCurrency(y.UnmetNeed),
		)
	}
	tw.Flush()

	last := path.Final()
	if last == nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "SUMMARY:")
	fmt.Fprintf(w, "  Final liquid assets:  %s\n", FormatCurrency(last.TotalLiquid))
	fmt.Fprintf(w, "  Final net worth:      %s\n", FormatCurrency(last.NetWorth))
	if year, ok := path.DepletionYear(); ok {
		fmt.Fprintf(w, "  Assets depleted in:   %d\n", year)
	}
	if year, ok := path.FirstShortfallYear(); ok {
		fmt.Fprintf(w, "  First shortfall in:   %d\n", year)
	}
	if path.Succeeded() {
		fmt.Fprintln(w, "  Outcome:              funded through end age")
	} else {
		fmt.Fprintln(w, "  Outcome:              liquid assets exhausted")
	}
}

func writeMonteCarlo(w io.Writer, mc *domain.MonteCarloResult) {
	fmt.Fprintf(w, "Run ID:       %s\n", mc.RunID)
	fmt.Fprintf(w, "Seed:         %d\n", mc.Seed)
	fmt.Fprintf(w, "Simulations:  %d\n", mc.NumSimulations)
	fmt.Fprintf(w, "Success rate: %s\n", FormatPercentage(mc.SuccessRate))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "LIQUID ASSET PERCENTILES:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tP10\tP25\tMedian\tP75\tP90\tAlive\t")
	for i, band := range mc.PerYear {
		alive := "-"
		if i < len(mc.Survival) {
			alive = FormatPercentage(mc.Survival[i].AliveRate)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			band.Year,
			FormatCurrencyShort(band.P10),
			FormatCurrencyShort(band.P25),
			FormatCurrencyShort(band.P50),
			FormatCurrencyShort(band.P75),
			FormatCurrencyShort(band.P90),
			alive,
		)
	}
	tw.Flush()
}

func writeComparison(w io.Writer, cmp *domain.ScenarioComparison) {
	writeHeading(w, "SCENARIO COMPARISON", "")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Rank\tScenario\tSuccess\tFinal Investable\tFinal Net Worth\tMedian (MC)\tDepleted\tShortfall\t")
	for i, sc := range cmp.Scenarios {
		fmt.Fprintf(tw, "%d\t%s\t%d%%\t%s\t%s\t%s\t%s\t%s\t\n",
			i+1, sc.Name, sc.SuccessPct,
			FormatCurrency(sc.FinalInvestable),
			FormatCurrency(sc.FinalNetWorth),
			FormatCurrency(sc.MedianFinal),
			formatYear(sc.DepletionYear),
			formatYear(sc.ShortfallYear),
		)
	}
	tw.Flush()

	rec := AnalyzeScenarios(cmp)
	if rec.ScenarioName == "" {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Recommended: %s (%d%% success, %s final investable)\n",
		rec.ScenarioName, rec.SuccessPct, FormatCurrency(rec.FinalInvestable))
	if rec.RunnerUp != "" {
		fmt.Fprintf(w, "  vs %s: %+d pts success, %s final investable\n",
			rec.RunnerUp, rec.SuccessLead, FormatCurrency(rec.InvestableChange))
	}
}
