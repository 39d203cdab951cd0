package catalog

import (
	"context"
	"errors"
)

// ErrResourceNotFound is returned when a catalog document cannot be located.
var ErrResourceNotFound = errors.New("catalog: resource not found")

// Store is the read port over catalog resources. Batch lookups return only
// the documents that exist; a missing id is not an error.
type Store interface {
	HotelsByIDs(ctx context.Context, ids []HotelID) ([]Hotel, error)
	TransportsByIDs(ctx context.Context, ids []string) ([]Transport, error)
}

// FlightStore is the read port used by the flight search.
type FlightStore interface {
	Search(ctx context.Context, query FlightQuery) ([]Flight, error)
}
