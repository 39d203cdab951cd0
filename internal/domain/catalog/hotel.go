package catalog

import "time"

// ResourceType tags the kind of catalog resource an offer item points at.
type ResourceType string

const (
	ResourceHotel     ResourceType = "hotel"
	ResourceFlight    ResourceType = "flight"
	ResourceTransport ResourceType = "transport"
)

// HotelID identifies a hotel catalog document.
type HotelID string

// Location is the descriptive placement of a resource.
type Location struct {
	City    string
	Country string
	Address string
	Lat     float64
	Lon     float64
}

// Policies are house rules shown on hotel cards. Offer-level overrides win
// over these defaults during enrichment.
type Policies struct {
	CheckIn      string
	CheckOut     string
	Cancellation string
	Children     string
}

// Merge fills empty fields of the override from the defaults.
func (p Policies) Merge(defaults Policies) Policies {
	merged := p
	if merged.CheckIn == "" {
		merged.CheckIn = defaults.CheckIn
	}
	if merged.CheckOut == "" {
		merged.CheckOut = defaults.CheckOut
	}
	if merged.Cancellation == "" {
		merged.Cancellation = defaults.Cancellation
	}
	if merged.Children == "" {
		merged.Children = defaults.Children
	}
	return merged
}

// RoomTypeDefinition describes one bookable room category of a hotel.
type RoomTypeDefinition struct {
	ID        string
	Name      string
	Category  string
	Occupancy []string
	ViewType  string
	Amenities []string
	Images    []string
}

// Hotel is descriptive catalog data owned by catalog administrators.
// Inventory records and offer items reference it, never own it.
type Hotel struct {
	ID          HotelID
	Name        string
	Stars       int
	Location    Location
	Description string
	Photos      []string
	Amenities   []string
	Policies    Policies
	RoomTypes   []RoomTypeDefinition
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RoomTypeByID looks up a room type definition, reporting whether it exists.
func (h *Hotel) RoomTypeByID(id string) (RoomTypeDefinition, bool) {
	for _, rt := range h.RoomTypes {
		if rt.ID == id {
			return rt, true
		}
	}
	return RoomTypeDefinition{}, false
}
