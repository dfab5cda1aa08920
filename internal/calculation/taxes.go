package calculation

import (
	"github.com/hhplan/household-planner/internal/domain"
	"github.com/hhplan/household-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// TAX ESTIMATE ASSUMPTIONS:
//
// 1. A single effective ordinary rate applies to wages and to the taxable
//    share of Social Security and annuity income. No brackets.
//
// 2. 401k withholding is a flat rate on every gross draw, RMDs included.
//    Only this tax actually reduces balances.
//
// 3. Brokerage drag is reported on the prior year-end balance. It is already
//    taken out of the brokerage return, so it is never deducted twice.

// Income holds the household's non-portfolio income for one year.
type Income struct {
	WageSelf   decimal.Decimal
	WageSpouse decimal.Decimal
	SS         decimal.Decimal
	Annuity    decimal.Decimal
	RealEstate decimal.Decimal
}

// Total is the sum of every income stream.
func (in Income) Total() decimal.Decimal {
	return money.Sum(in.SS, in.Annuity, in.RealEstate, in.WageSelf, in.WageSpouse)
}

// YearIncome collects wages before retirement, Social Security and annuities
// from their start ages, and net rental cashflow while the home is owned.
func YearIncome(hp *domain.HouseholdParameters, ageSelf, ageSpouse int, rentalCashflow decimal.Decimal) Income {
	var in Income
	if ageSelf < hp.Self.RetireAge {
		in.WageSelf = hp.Self.WageAnnual
	}
	if ageSpouse < hp.Spouse.RetireAge {
		in.WageSpouse = hp.Spouse.WageAnnual
	}
	if ageSelf >= hp.Self.SSStartAge {
		in.SS = in.SS.Add(hp.Self.SSAnnual)
	}
	if ageSpouse >= hp.Spouse.SSStartAge {
		in.SS = in.SS.Add(hp.Spouse.SSAnnual)
	}
	if ageSelf >= hp.Self.AnnuityStartAge {
		in.Annuity = in.Annuity.Add(hp.Self.AnnuityAnnual)
	}
	if ageSpouse >= hp.Spouse.AnnuityStartAge {
		in.Annuity = in.Annuity.Add(hp.Spouse.AnnuityAnnual)
	}
	in.RealEstate = rentalCashflow
	return in
}

// TaxEstimate is the informational tax breakdown for one year.
type TaxEstimate struct {
	BrokerageDrag decimal.Decimal
	OtherIncome   decimal.Decimal
	K401          decimal.Decimal
	Total         decimal.Decimal
}

// TaxEstimator estimates the household's taxes with flat effective rates.
type TaxEstimator struct {
	OrdinaryRate          decimal.Decimal
	SSTaxablePercent      decimal.Decimal
	AnnuityTaxablePercent decimal.Decimal
	DragRate              decimal.Decimal
}

// NewTaxEstimator creates a new tax estimator from the household's rates.
func NewTaxEstimator(hp *domain.HouseholdParameters) *TaxEstimator {
	return &TaxEstimator{
		OrdinaryRate:          hp.EffOrdinaryTaxRate,
		SSTaxablePercent:      hp.SSTaxablePercent,
		AnnuityTaxablePercent: hp.AnnuityTaxablePercent,
		DragRate:              hp.CapGainsDragBrokerage,
	}
}

// BrokerageDrag is the drag reported on the prior year-end brokerage balance.
func (te *TaxEstimator) BrokerageDrag(prevBroker decimal.Decimal) decimal.Decimal {
	return money.NonNegative(prevBroker.Mul(money.NonNegative(te.DragRate)))
}

// Estimate combines ordinary income tax, 401k withholding and brokerage drag.
func (te *TaxEstimator) Estimate(in Income, k401Tax, brokerageDrag decimal.Decimal) TaxEstimate {
	taxable := money.Sum(
		in.SS.Mul(te.SSTaxablePercent),
		in.Annuity.Mul(te.AnnuityTaxablePercent),
		in.WageSelf,
		in.WageSpouse,
	)
	est := TaxEstimate{
		BrokerageDrag: brokerageDrag,
		OtherIncome:   te.OrdinaryRate.Mul(taxable),
		K401:          k401Tax,
	}
	est.Total = money.Sum(est.K401, est.OtherIncome, est.BrokerageDrag)
	return est
}
