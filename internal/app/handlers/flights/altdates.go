package flights

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/lndominguez/apexutravel-sub004/internal/app/dto"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
)

// alternativeOffsets is the probe window around the requested date. Zero is
// excluded: the exact date was already searched. The response keeps this
// issue order, it is not re-sorted by closeness.
var alternativeOffsets = [...]int{-3, -2, -1, 1, 2, 3}

// AlternativeDateFinder fans out one sub-search per offset day when the
// exact-date search came back empty.
type AlternativeDateFinder struct {
	Flights catalog.FlightStore
	Log     *slog.Logger
	// Observe, when set, records each sub-search outcome ("ok" or "error").
	Observe func(offset int, outcome string)
}

// Find runs all offset sub-searches concurrently and returns the offsets
// with at least one available flight. A failed sub-search is isolated: it
// contributes zero flights for its offset and never aborts the batch.
func (f *AlternativeDateFinder) Find(ctx context.Context, base catalog.FlightQuery, date string, passengers int) ([]dto.AlternativeDate, error) {
	type slot struct {
		date    string
		flights []catalog.Flight
	}
	slots := make([]slot, len(alternativeOffsets))

	g, gctx := errgroup.WithContext(ctx)
	for i, offset := range alternativeOffsets {
		g.Go(func() error {
			from, to, err := catalog.DayWindowUTC(date, offset)
			if err != nil {
				return err // malformed base date fails every offset identically
			}
			slots[i].date = from.Format("2006-01-02")

			query := base
			query.DepartFrom = from
			query.DepartTo = to
			found, err := f.Flights.Search(gctx, query)
			if err != nil {
				if f.Log != nil {
					f.Log.Warn("alternative date sub-search failed", "offset", offset, "date", slots[i].date, "error", err)
				}
				f.observe(offset, "error")
				return nil // isolate: this offset just has no flights
			}
			slots[i].flights = FilterAvailable(found, passengers)
			f.observe(offset, "ok")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]dto.AlternativeDate, 0, len(alternativeOffsets))
	for i, offset := range alternativeOffsets {
		if len(slots[i].flights) == 0 {
			continue
		}
		out = append(out, dto.AlternativeDate{
			Date:        slots[i].date,
			Offset:      offset,
			FlightCount: len(slots[i].flights),
			Flights:     dto.MapFlights(slots[i].flights),
		})
	}
	return out, nil
}

func (f *AlternativeDateFinder) observe(offset int, outcome string) {
	if f.Observe != nil {
		f.Observe(offset, outcome)
	}
}
