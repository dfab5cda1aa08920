package main

import (
	"fmt"
	"os"

	calc "github.com/hhplan/household-planner/internal/calculation"
	"github.com/hhplan/household-planner/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_waterfall <plan-file> [scenario]")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	name := ""
	if len(os.Args) > 2 {
		name = os.Args[2]
	}
	sc, err := config.SelectScenario(cfg, name)
	if err != nil {
		panic(err)
	}

	path := calc.NewCalculationEngine().SimulatePath(sc.Household, nil)
	fmt.Printf("%s: %d years\n", sc.Name, len(path))
	for _, y := range path {
		fmt.Printf("%d ages %d/%d need=%s broker=%s cds=%s 401k=%s+%s (tax %s+%s) roth=%s+%s rmd=%s+%s surplus=%s unmet=%s liquid=%s\n",
			y.Year, y.AgeSelf, y.AgeSpouse,
			y.NetOutflow.StringFixed(0),
			y.WdBroker.StringFixed(0), y.WdCDs.StringFixed(0),
			y.Wd401kSelfGross.StringFixed(0), y.Wd401kSpouseGross.StringFixed(0),
			y.Wd401kSelfTax.StringFixed(0), y.Wd401kSpouseTax.StringFixed(0),
			y.WdRothSelf.StringFixed(0), y.WdRothSpouse.StringFixed(0),
			y.RMDSelfGross.StringFixed(0), y.RMDSpouseGross.StringFixed(0),
			y.SurplusToBroker.StringFixed(0), y.UnmetNeed.StringFixed(0),
			y.TotalLiquid.StringFixed(0),
		)
	}
}
