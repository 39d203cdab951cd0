package flights

import (
	"context"
	"strings"

	"github.com/lndominguez/apexutravel-sub004/internal/app/dto"
	"github.com/lndominguez/apexutravel-sub004/internal/app/queries"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
)

const searchFlightsKey = "flights.search"

// SearchFlightsQuery mirrors the public search form. DepartureDate is a
// plain YYYY-MM-DD string; the day window is derived in UTC here, callers
// must not pre-localize it.
type SearchFlightsQuery struct {
	Origin             string
	Destination        string
	DepartureDate      string
	Adults             int
	Children           int
	Infants            int
	SearchAlternatives bool
}

func (q SearchFlightsQuery) Key() string { return searchFlightsKey }

// Passengers counts the seats the party needs. Infants travel on laps and
// do not occupy seats.
func (q SearchFlightsQuery) Passengers() int {
	n := q.Adults + q.Children
	if n < 1 {
		n = 1
	}
	return n
}

// SearchFlightsHandler runs the exact-date search and, only when that yields
// nothing and the caller opted in, the alternative-date probe.
type SearchFlightsHandler struct {
	Flights      catalog.FlightStore
	Alternatives *AlternativeDateFinder
}

func (h *SearchFlightsHandler) Handle(ctx context.Context, q SearchFlightsQuery) (dto.FlightSearchResult, error) {
	from, to, err := catalog.DayWindowUTC(q.DepartureDate, 0)
	if err != nil {
		return dto.FlightSearchResult{}, err
	}
	query := catalog.FlightQuery{
		Origin:      strings.ToUpper(strings.TrimSpace(q.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(q.Destination)),
		DepartFrom:  from,
		DepartTo:    to,
	}

	found, err := h.Flights.Search(ctx, query)
	if err != nil {
		return dto.FlightSearchResult{}, err
	}
	available := FilterAvailable(found, q.Passengers())

	result := dto.FlightSearchResult{Flights: dto.MapFlights(available)}
	if len(available) > 0 || !q.SearchAlternatives || h.Alternatives == nil {
		return result, nil
	}

	alternatives, err := h.Alternatives.Find(ctx, query, q.DepartureDate, q.Passengers())
	if err != nil {
		return dto.FlightSearchResult{}, err
	}
	result.AlternativeDates = alternatives
	return result, nil
}

var _ queries.Handler[SearchFlightsQuery, dto.FlightSearchResult] = (*SearchFlightsHandler)(nil)
