package flights

import (
	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
)

// FilterAvailable retains flights that can seat the whole party in a single
// seat class. Classes are not combinable: a flight with two classes of one
// free seat each cannot take two passengers.
func FilterAvailable(flights []catalog.Flight, passengers int) []catalog.Flight {
	if passengers <= 0 {
		passengers = 1
	}
	out := make([]catalog.Flight, 0, len(flights))
	for _, f := range flights {
		if f.CanSeat(passengers) {
			out = append(out, f)
		}
	}
	return out
}
