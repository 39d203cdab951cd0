package catalog

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a search date is not a YYYY-MM-DD string.
var ErrInvalidDate = errors.New("catalog: invalid date")

// SeatClass is one fare bucket of a flight. Classes are not combinable: a
// request is satisfiable only if a single class covers every passenger.
type SeatClass struct {
	Name           string
	AvailableSeats int
	BasePrice      float64
}

// Flight is a supplier flight document.
type Flight struct {
	ID           string
	Airline      string
	FlightNumber string
	Origin       string
	Destination  string
	DepartureAt  time.Time
	ArrivalAt    time.Time
	Stops        int
	BasePrice    float64
	SeatClasses  []SeatClass
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanSeat reports whether at least one seat class can take the whole party.
func (f Flight) CanSeat(passengers int) bool {
	for _, class := range f.SeatClasses {
		if class.AvailableSeats >= passengers {
			return true
		}
	}
	return false
}

// FlightQuery filters a flight search. Departure bounds are inclusive UTC
// day boundaries.
type FlightQuery struct {
	Origin      string
	Destination string
	DepartFrom  time.Time
	DepartTo    time.Time
}

// DayWindowUTC computes the UTC [00:00:00.000, 23:59:59.999] boundaries for
// the given YYYY-MM-DD date shifted by offsetDays. All date arithmetic is
// UTC-based so client and server time zones cannot drift the window.
func DayWindowUTC(date string, offsetDays int) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	day = day.AddDate(0, 0, offsetDays)
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Millisecond)
	return from, to, nil
}
