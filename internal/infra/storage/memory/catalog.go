package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
)

// CatalogStore is an in-memory catalog used by memory mode and tests.
type CatalogStore struct {
	mu         sync.RWMutex
	hotels     map[catalog.HotelID]catalog.Hotel
	transports map[string]catalog.Transport
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		hotels:     make(map[catalog.HotelID]catalog.Hotel),
		transports: make(map[string]catalog.Transport),
	}
}

func (s *CatalogStore) PutHotel(hotel catalog.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels[hotel.ID] = hotel
}

func (s *CatalogStore) PutTransport(transport catalog.Transport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transports[transport.ID] = transport
}

// HotelsByIDs returns the hotels that exist; missing ids are silently
// omitted, matching the batch-read contract.
func (s *CatalogStore) HotelsByIDs(ctx context.Context, ids []catalog.HotelID) ([]catalog.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Hotel, 0, len(ids))
	for _, id := range ids {
		if hotel, ok := s.hotels[id]; ok {
			out = append(out, hotel)
		}
	}
	return out, nil
}

func (s *CatalogStore) TransportsByIDs(ctx context.Context, ids []string) ([]catalog.Transport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Transport, 0, len(ids))
	for _, id := range ids {
		if transport, ok := s.transports[id]; ok {
			out = append(out, transport)
		}
	}
	return out, nil
}

var _ catalog.Store = (*CatalogStore)(nil)

// FlightStore is an in-memory flight search backend.
type FlightStore struct {
	mu      sync.RWMutex
	flights []catalog.Flight
}

func NewFlightStore() *FlightStore {
	return &FlightStore{}
}

func (s *FlightStore) Put(flights ...catalog.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = append(s.flights, flights...)
}

// Search filters by route and inclusive departure window, ordered by
// departure time.
func (s *FlightStore) Search(ctx context.Context, query catalog.FlightQuery) ([]catalog.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []catalog.Flight
	for _, f := range s.flights {
		if query.Origin != "" && f.Origin != query.Origin {
			continue
		}
		if query.Destination != "" && f.Destination != query.Destination {
			continue
		}
		if !query.DepartFrom.IsZero() && f.DepartureAt.Before(query.DepartFrom) {
			continue
		}
		if !query.DepartTo.IsZero() && f.DepartureAt.After(query.DepartTo) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DepartureAt.Before(out[j].DepartureAt)
	})
	return out, nil
}

var _ catalog.FlightStore = (*FlightStore)(nil)
