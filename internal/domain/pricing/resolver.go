package pricing

import (
	"math"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
)

const unknownOccupancyRank = 999

var occupancyRanks = map[inventory.OccupancyKey]int{
	inventory.OccupancySingle: 1,
	inventory.OccupancyDouble: 2,
	inventory.OccupancyTriple: 3,
	inventory.OccupancyQuad:   4,
}

// OccupancyRank returns the canonical display position for an occupancy key.
// Unknown keys sort last.
func OccupancyRank(key inventory.OccupancyKey) int {
	if rank, ok := occupancyRanks[key]; ok {
		return rank
	}
	return unknownOccupancyRank
}

// MinOccupancyAdultPrice selects the representative adult price from a
// capacity table. Double occupancy wins outright when it carries a positive
// price; otherwise the cheapest positive adult price is used, falling back to
// the minimum of whatever values exist.
func MinOccupancyAdultPrice(prices inventory.CapacityPrices) float64 {
	if len(prices) == 0 {
		return 0
	}
	if double, ok := prices[inventory.OccupancyDouble]; ok && finite(double.Adult) && double.Adult > 0 {
		return double.Adult
	}

	minPositive := 0.0
	minAny := 0.0
	seen := false
	for _, pair := range prices {
		if !finite(pair.Adult) {
			continue
		}
		if !seen || pair.Adult < minAny {
			minAny = pair.Adult
		}
		seen = true
		if pair.Adult > 0 && (minPositive == 0 || pair.Adult < minPositive) {
			minPositive = pair.Adult
		}
	}
	if minPositive > 0 {
		return minPositive
	}
	if seen {
		return minAny
	}
	return 0
}

// RoomAdultBasePrice resolves an adult base price from the heterogeneous
// shapes a room record can carry: capacity table first, then the flat
// Pricing pair, then the bare PriceAdult field. Each fallback counts only
// when it holds a finite, strictly positive value; zero means absent and a
// negative or non-finite value is treated the same way, so a record that
// carries nothing usable resolves to 0 rather than a nonsense price.
func RoomAdultBasePrice(room inventory.RoomStock) float64 {
	if v := MinOccupancyAdultPrice(room.CapacityPrices); v > 0 {
		return v
	}
	if finite(room.Pricing.Adult) && room.Pricing.Adult > 0 {
		return room.Pricing.Adult
	}
	if finite(room.PriceAdult) && room.PriceAdult > 0 {
		return room.PriceAdult
	}
	return 0
}

// CheapestRoomAdultBasePrice returns the minimum strictly-positive adult base
// price across rooms, preferring positive values over zeros. Empty input
// yields 0.
func CheapestRoomAdultBasePrice(rooms []inventory.RoomStock) float64 {
	if len(rooms) == 0 {
		return 0
	}
	minPositive := 0.0
	minAny := math.Inf(1)
	for _, room := range rooms {
		price := RoomAdultBasePrice(room)
		if price < minAny {
			minAny = price
		}
		if price > 0 && (minPositive == 0 || price < minPositive) {
			minPositive = price
		}
	}
	if minPositive > 0 {
		return minPositive
	}
	if math.IsInf(minAny, 1) {
		return 0
	}
	return minAny
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
