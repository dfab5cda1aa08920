package output

import (
	"bytes"
	"encoding/csv"

	"github.com/hhplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter exports a path as one row per year, a Monte Carlo result as
// percentile bands and a comparison as one row per scenario.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	if err := report.validate(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var err error
	switch {
	case report.Comparison != nil:
		err = writeComparisonCSV(w, report.Comparison)
	case report.MonteCarlo != nil:
		err = writeBandsCSV(w, report.MonteCarlo)
	default:
		err = writeYearlyCSV(w, report.Path)
	}
	if err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// yearlyHeader matches the column names of the planner's yearly export.
var yearlyHeader = []string{
	"year", "ageSelf", "ageSpouse",
	"bal401kSelf", "bal401kSpouse", "balRothSelf", "balRothSpouse", "balBroker", "balCDs", "bal529Total", "totalLiquid",
	"houseVal", "mortgageOpening", "mortgageClosing", "houseEquity",
	"c401kSelf", "c401kSpouse", "cRothSelf", "cRothSpouse", "cBroker", "cCDs", "c529Total",
	"rmdSelfGross", "rmdSpouseGross", "rmdSelfTax", "rmdSpouseTax",
	"wdBroker", "wdCDs", "wd401kSelfGross", "wd401kSelfTax", "wd401kSpouseGross", "wd401kSpouseTax", "wdRothSelf", "wdRothSpouse", "wdTotal", "surplusToBroker", "unmetNeed",
	"ssIncome", "wageSelf", "wageSpouse", "annuityIncome", "realEstateCF", "retireSpend", "totalSpending",
	"hsTotal", "hsPaidBy529", "hsFromPortfolio", "collegeTotal", "collegePaidBy529", "collegeFromPortfolio",
	"taxBrokerageDrag", "taxOtherIncome", "tax401kTotal", "taxTotal",
	"equityRealized", "mortgagePayment", "mortgageInterest", "mortgagePrincipal",
	"netWorth",
}

func writeYearlyCSV(w *csv.Writer, path domain.SimulationPath) error {
	if err := w.Write(yearlyHeader); err != nil {
		return err
	}
	for i := range path {
		y := &path[i]
		row := []string{intToString(y.Year), intToString(y.AgeSelf), intToString(y.AgeSpouse)}
		row = appendFixed(row,
			y.Bal401kSelf, y.Bal401kSpouse, y.BalRothSelf, y.BalRothSpouse, y.BalBroker, y.BalCDs, y.Bal529Total, y.TotalLiquid,
			y.HouseVal, y.MortgageOpening, y.MortgageClosing, y.HouseEquity,
			y.C401kSelf, y.C401kSpouse, y.CRothSelf, y.CRothSpouse, y.CBroker, y.CCDs, y.C529Total,
			y.RMDSelfGross, y.RMDSpouseGross, y.RMDSelfTax, y.RMDSpouseTax,
			y.WdBroker, y.WdCDs, y.Wd401kSelfGross, y.Wd401kSelfTax, y.Wd401kSpouseGross, y.Wd401kSpouseTax, y.WdRothSelf, y.WdRothSpouse, y.WdTotal, y.SurplusToBroker, y.UnmetNeed,
			y.SSIncome, y.WageSelf, y.WageSpouse, y.AnnuityIncome, y.RealEstateCF, y.RetireSpend, y.TotalSpending,
			y.HSTotal, y.HSPaidBy529, y.HSFromPortfolio, y.CollegeTotal, y.CollegePaidBy529, y.CollegeFromPortfolio,
			y.TaxBrokerageDrag, y.TaxOtherIncome, y.Tax401kTotal, y.TaxTotal,
			y.EquityRealized, y.MortgagePayment, y.MortgageInterest, y.MortgagePrincipal,
			y.NetWorth,
		)
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func appendFixed(row []string, values ...decimal.Decimal) []string {
	for _, v := range values {
		row = append(row, v.StringFixed(2))
	}
	return row
}
