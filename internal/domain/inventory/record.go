package inventory

import (
	"time"
)

// OccupancyKey indexes a room's per-capacity base prices.
type OccupancyKey string

const (
	OccupancySingle OccupancyKey = "single"
	OccupancyDouble OccupancyKey = "double"
	OccupancyTriple OccupancyKey = "triple"
	OccupancyQuad   OccupancyKey = "quad"
)

// PricePair holds supplier base prices for one occupancy. Absent values are zero.
type PricePair struct {
	Adult float64
	Child float64
}

// CapacityPrices maps occupancy keys to supplier base prices.
type CapacityPrices map[OccupancyKey]PricePair

// RoomStock is one purchasable room unit inside an inventory record.
//
// Price fields are intentionally redundant: records created through different
// supplier flows carry either a capacity table, a Pricing pair, or a bare
// PriceAdult. Consumers resolve them in that order.
type RoomStock struct {
	RoomTypeID     string
	RoomName       string
	Stock          int
	CapacityPrices CapacityPrices
	Pricing        PricePair
	PriceAdult     float64
	ValidFrom      time.Time
	ValidTo        time.Time
}

// RecordID identifies an inventory record.
type RecordID string

// Record is a supplier-priced, stocked unit tied to exactly one catalog
// resource. It is read-only from the pricing engine's perspective.
type Record struct {
	ID             RecordID
	ResourceType   string
	ResourceID     string
	SupplierID     string
	Rooms          []RoomStock
	BasePrice      float64
	UnitsAvailable int
	ValidFrom      time.Time
	ValidTo        time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
