package calculation

import (
	"time"

	"github.com/hhplan/household-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// sampleHousehold is a fully populated two-earner household with a child,
// a mortgaged home and every income stream switched on.
func sampleHousehold() domain.HouseholdParameters {
	return domain.HouseholdParameters{
		Self: domain.Person{
			CurrentAge: 52, RetireAge: 62,
			Start401k: d(400000), Contrib401k: d(18000),
			StartRoth: d(100000), ContribRoth: d(6000),
			SSStartAge: 67, SSAnnual: d(36000),
			AnnuityStartAge: 65,
			RMDAge:          73,
		},
		Spouse: domain.Person{
			CurrentAge: 50, RetireAge: 64,
			Start401k: d(300000), Contrib401k: d(8000),
			StartRoth: d(50000), ContribRoth: d(1000),
			SSStartAge: 67, SSAnnual: d(30000),
			AnnuityStartAge: 65,
			RMDAge:          73,
		},
		EndAge:                95,
		ContributionPolicy:    domain.HalfAfterFirst,
		SpendingStart:         domain.SpendingStartBoth,
		SpendingGlideYears:    3,
		MeanReturnReal:        d(0.04),
		StdevReturnReal:       d(0.10),
		RetirementSpend:       d(150000),
		StartBrokerage:        d(350000),
		ContribBrokerage:      d(27000),
		StartCDs:              d(100000),
		ContribCDs:            d(5000),
		CDsRealReturn:         d(0.01),
		Tax401kWithdraw:       d(0.22),
		CapGainsDragBrokerage: d(0.003),
		EffOrdinaryTaxRate:    d(0.20),
		SSTaxablePercent:      d(0.5),
		AnnuityTaxablePercent: d(1),
		RealEstate: domain.RealEstate{
			Value:                 d(1500000),
			Mortgage:              d(700000),
			AppreciationReal:      d(0.01),
			SellAtRetire:          true,
			MortgageRateReal:      d(0.02),
			MortgageAnnualPayment: d(60000),
		},
		RMDEnabled: true,
		Children: []domain.Child{{
			Name: "Alex", Age: 14,
			Start529: d(25000), Contrib529: d(3000),
			K12Annual: d(20000), K12Years: 4, K12StartAge: 14,
			CollegeAnnual: d(30000), CollegeYears: 4, CollegeStartAge: 18,
		}},
		K12CapPerChild: d(10000),
		Simulations:    100,
	}
}

// retiredSingle is a one-person household: the spouse slot mirrors the
// person's age, is already retired and holds nothing.
func retiredSingle(age, endAge int) domain.HouseholdParameters {
	return domain.HouseholdParameters{
		Self:   domain.Person{CurrentAge: age, RetireAge: age, RMDAge: 73},
		Spouse: domain.Person{CurrentAge: age, RetireAge: age, RMDAge: 73},
		EndAge: endAge,
	}
}
