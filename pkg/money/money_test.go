package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromDecimal(t *testing.T) {
	d := decimal.NewFromFloat(10.125)
	assert.True(t, FromDecimal(d).Decimal.Equal(d))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999.4, "$999"},
		{1234.5, "$1,235"},
		{1000000, "$1,000,000"},
		{-75000, "-$75,000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FromDecimal(decimal.NewFromFloat(tt.in)).Format())
		})
	}
}

func TestFormatShort(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{450, "$450"},
		{850000, "$850.0k"},
		{1234567, "$1.2M"},
		{-2500000000, "-$2.5B"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FromDecimal(decimal.NewFromFloat(tt.in)).FormatShort())
		})
	}
}

func TestDecimalHelpers(t *testing.T) {
	a := decimal.NewFromInt(10)
	b := decimal.NewFromInt(20)

	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
	assert.True(t, NonNegative(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, NonNegative(a).Equal(a))

	bound := decimal.NewFromFloat(0.3)
	assert.True(t, Clamp(decimal.NewFromFloat(0.5), bound.Neg(), bound).Equal(bound))
	assert.True(t, Clamp(decimal.NewFromFloat(-0.9), bound.Neg(), bound).Equal(bound.Neg()))
	assert.True(t, Clamp(decimal.NewFromFloat(0.1), bound.Neg(), bound).Equal(decimal.NewFromFloat(0.1)))

	assert.True(t, Sum(a, b, decimal.NewFromInt(-5)).Equal(decimal.NewFromInt(25)))
	assert.True(t, Sum().IsZero())
}
