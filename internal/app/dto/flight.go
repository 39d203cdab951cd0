package dto

import (
	"time"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
)

// FlightView is one searchable flight with per-class availability.
type FlightView struct {
	ID           string          `json:"id"`
	Airline      string          `json:"airline"`
	FlightNumber string          `json:"flight_number"`
	Origin       string          `json:"origin"`
	Destination  string          `json:"destination"`
	DepartureAt  time.Time       `json:"departure_at"`
	ArrivalAt    time.Time       `json:"arrival_at"`
	Stops        int             `json:"stops"`
	Price        float64         `json:"price"`
	SeatClasses  []SeatClassView `json:"seat_classes"`
}

// SeatClassView is one fare bucket.
type SeatClassView struct {
	Name           string  `json:"name"`
	AvailableSeats int     `json:"available_seats"`
	Price          float64 `json:"price"`
}

// AlternativeDate is one nearby day that has availability when the requested
// date does not. Entries keep the offset issue order (-3..-1, 1..3), not
// closest-date order.
type AlternativeDate struct {
	Date        string       `json:"date"`
	Offset      int          `json:"offset"`
	FlightCount int          `json:"flight_count"`
	Flights     []FlightView `json:"flights"`
}

// FlightSearchResult is the flight search response.
type FlightSearchResult struct {
	Flights          []FlightView      `json:"flights"`
	AlternativeDates []AlternativeDate `json:"alternative_dates,omitempty"`
}

// MapFlight copies a catalog flight for transport.
func MapFlight(f catalog.Flight) FlightView {
	view := FlightView{
		ID:           f.ID,
		Airline:      f.Airline,
		FlightNumber: f.FlightNumber,
		Origin:       f.Origin,
		Destination:  f.Destination,
		DepartureAt:  f.DepartureAt,
		ArrivalAt:    f.ArrivalAt,
		Stops:        f.Stops,
		Price:        f.BasePrice,
	}
	for _, class := range f.SeatClasses {
		view.SeatClasses = append(view.SeatClasses, SeatClassView{
			Name:           class.Name,
			AvailableSeats: class.AvailableSeats,
			Price:          class.BasePrice,
		})
	}
	return view
}

// MapFlights maps a slice preserving order.
func MapFlights(flights []catalog.Flight) []FlightView {
	out := make([]FlightView, 0, len(flights))
	for _, f := range flights {
		out = append(out, MapFlight(f))
	}
	return out
}
