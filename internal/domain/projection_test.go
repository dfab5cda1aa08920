package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestYearSnapshot_Helpers(t *testing.T) {
	ys := YearSnapshot{
		RMDSelfGross: amt(20000), RMDSelfTax: amt(4000),
		RMDSpouseGross: amt(10000), RMDSpouseTax: amt(2000),
		WdBroker: amt(1000), WdCDs: amt(2000),
		Wd401kSelfGross: amt(3000), Wd401kSpouseGross: amt(4000),
		WdRothSelf: amt(500), WdRothSpouse: amt(500),
	}
	assert.True(t, ys.RMDNet().Equal(amt(24000)))
	assert.True(t, ys.WaterfallDraws().Equal(amt(11000)))
	assert.True(t, ys.NeedFullyMet())

	ys.UnmetNeed = amt(1)
	assert.False(t, ys.NeedFullyMet())
}

func TestSimulationPath(t *testing.T) {
	path := SimulationPath{
		{Year: 2026, TotalLiquid: amt(500)},
		{Year: 2027, TotalLiquid: amt(100), UnmetNeed: amt(50)},
		{Year: 2028, TotalLiquid: decimal.Zero, UnmetNeed: amt(900)},
	}

	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"first", 0, 2026},
		{"last", 2, 2028},
		{"past the end reuses final", 7, 2028},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, path.At(tt.index).Year)
		})
	}

	assert.Equal(t, 2028, path.Final().Year)
	assert.False(t, path.Succeeded())

	year, ok := path.DepletionYear()
	assert.True(t, ok)
	assert.Equal(t, 2028, year)

	year, ok = path.FirstShortfallYear()
	assert.True(t, ok)
	assert.Equal(t, 2027, year)
}

func TestSimulationPath_Empty(t *testing.T) {
	var path SimulationPath
	assert.Nil(t, path.Final())
	assert.Nil(t, path.At(3))
	assert.False(t, path.Succeeded())

	_, ok := path.DepletionYear()
	assert.False(t, ok)
	_, ok = path.FirstShortfallYear()
	assert.False(t, ok)
}

func TestSimulationPath_Survives(t *testing.T) {
	path := SimulationPath{{Year: 2026, TotalLiquid: amt(10)}, {Year: 2027, TotalLiquid: amt(5)}}
	assert.True(t, path.Succeeded())
	_, ok := path.DepletionYear()
	assert.False(t, ok)
}
