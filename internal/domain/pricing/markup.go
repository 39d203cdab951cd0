package pricing

import (
	"math"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
)

// MarkupType selects how a markup transforms a base price.
type MarkupType string

const (
	MarkupPercentage MarkupType = "percentage"
	MarkupFixed      MarkupType = "fixed"
)

// Markup is the commission transformation attached at the offer level and
// applied uniformly to every priced component of that offer.
type Markup struct {
	Type  MarkupType
	Value float64
}

// Apply transforms a supplier base price into a sell price.
//
// The contract is fail-open: a nil markup, a zero value, or a non-finite base
// returns the base unchanged. Display-only corruption is preferable to
// blocking a read.
func Apply(base float64, m *Markup) float64 {
	if m == nil || m.Value == 0 {
		return base
	}
	if math.IsNaN(base) || math.IsInf(base, 0) {
		return base
	}
	if m.Type == MarkupPercentage {
		return base + base*m.Value/100
	}
	return base + m.Value
}

// SellPrices is a per-occupancy price pair with markup applied. Infants
// always travel free.
type SellPrices struct {
	Adult  float64
	Child  float64
	Infant float64
}

// SellPair applies the markup to both components of a supplier price pair.
func SellPair(p inventory.PricePair, m *Markup) SellPrices {
	return SellPrices{
		Adult:  Apply(p.Adult, m),
		Child:  Apply(p.Child, m),
		Infant: 0,
	}
}
