package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		markup *Markup
		want   float64
	}{
		{"percentage", 100, &Markup{Type: MarkupPercentage, Value: 10}, 110},
		{"fixed", 100, &Markup{Type: MarkupFixed, Value: 10}, 110},
		{"nil markup", 100, nil, 100},
		{"zero value", 100, &Markup{Type: MarkupPercentage, Value: 0}, 100},
		{"negative fixed acts as discount", 100, &Markup{Type: MarkupFixed, Value: -20}, 80},
		{"unknown type falls back to fixed", 100, &Markup{Type: "flat", Value: 5}, 105},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.base, tt.markup))
		})
	}
}

func TestApplyNonFiniteBasePassesThrough(t *testing.T) {
	m := &Markup{Type: MarkupPercentage, Value: 10}
	assert.True(t, math.IsNaN(Apply(math.NaN(), m)))
	assert.True(t, math.IsInf(Apply(math.Inf(1), m), 1))
}

func TestSellPair(t *testing.T) {
	got := SellPair(inventory.PricePair{Adult: 100, Child: 50}, &Markup{Type: MarkupPercentage, Value: 20})
	assert.Equal(t, SellPrices{Adult: 120, Child: 60, Infant: 0}, got)
}
