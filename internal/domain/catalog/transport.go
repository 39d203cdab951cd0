package catalog

import "time"

// Transport is a supplier ground-transport document (bus, shuttle, ferry).
type Transport struct {
	ID          string
	Name        string
	Mode        string
	Origin      string
	Destination string
	Capacity    int
	BasePrice   float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
