package calculation

import (
	"math"

	"github.com/hhplan/household-planner/internal/domain"
	"github.com/hhplan/household-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// UniformSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type UniformSource interface {
	Float64() float64
}

var (
	// DefaultReturnBound clamps annual base and brokerage returns when no bound is configured.
	DefaultReturnBound = decimal.NewFromFloat(0.30)
	// CDReturnBound clamps the CD rate.
	CDReturnBound = decimal.NewFromFloat(0.20)
)

// YearReturns holds the real returns applied to each sleeve in one year.
type YearReturns struct {
	Base   decimal.Decimal // 401k, Roth and 529
	Broker decimal.Decimal
	CD     decimal.Decimal
}

// ReturnGenerator draws one set of clamped annual returns per simulated year.
type ReturnGenerator struct {
	Mean  decimal.Decimal
	Stdev decimal.Decimal
	Drag  decimal.Decimal
	CD    decimal.Decimal
	Bound decimal.Decimal

	src UniformSource
}

// NewReturnGenerator creates a generator for the household's return assumptions.
// A nil source yields the mean path (z = 0 every year).
func NewReturnGenerator(hp *domain.HouseholdParameters, src UniformSource) *ReturnGenerator {
	bound := hp.ReturnBound.Abs()
	if bound.IsZero() {
		bound = DefaultReturnBound
	}
	return &ReturnGenerator{
		Mean:  hp.MeanReturnReal,
		Stdev: hp.StdevReturnReal,
		Drag:  hp.CapGainsDragBrokerage,
		CD:    hp.CDsRealReturn,
		Bound: bound,
		src:   src,
	}
}

// Next draws the returns for the next year.
func (g *ReturnGenerator) Next() YearReturns {
	z := 0.0
	if g.src != nil {
		z = StandardNormal(g.src)
	}
	base := money.Clamp(g.Mean.Add(decimal.NewFromFloat(z).Mul(g.Stdev)), g.Bound.Neg(), g.Bound)
	broker := money.Clamp(base.Sub(g.Drag), g.Bound.Neg(), g.Bound)
	cd := money.Clamp(g.CD, CDReturnBound.Neg(), CDReturnBound)
	return YearReturns{Base: base, Broker: broker, CD: cd}
}

// StandardNormal draws a standard normal variate with the Box-Muller transform.
// Zero uniforms are redrawn so the logarithm stays finite.
func StandardNormal(src UniformSource) float64 {
	u1 := src.Float64()
	for u1 == 0 {
		u1 = src.Float64()
	}
	u2 := src.Float64()
	for u2 == 0 {
		u2 = src.Float64()
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
