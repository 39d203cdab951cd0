package ginserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"

	"github.com/lndominguez/apexutravel-sub004/internal/app/dto"
	flightapp "github.com/lndominguez/apexutravel-sub004/internal/app/handlers/flights"
	"github.com/lndominguez/apexutravel-sub004/internal/app/queries"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
)

// FlightHandler wires the flight search to HTTP. SearchTimeout bounds one
// request including the alternative-date fan-out.
type FlightHandler struct {
	Queries       queries.Bus
	SearchTimeout time.Duration
}

// Search runs the exact-date flight search, optionally probing nearby dates.
// departureDate is a plain YYYY-MM-DD; the UTC day window is derived
// server-side.
func (h FlightHandler) Search(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "flight handler unavailable"})
		return
	}
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	date := strings.TrimSpace(c.Query("departureDate"))
	if origin == "" || destination == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin, destination and departureDate are required"})
		return
	}

	query := flightapp.SearchFlightsQuery{
		Origin:             origin,
		Destination:        destination,
		DepartureDate:      date,
		Adults:             parseIntWithDefault(c.Query("adults"), 1),
		Children:           parseInt(c.Query("children")),
		Infants:            parseInt(c.Query("infants")),
		SearchAlternatives: parseBool(c.Query("searchAlternatives")),
	}
	ctx := c.Request.Context()
	if h.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.SearchTimeout)
		defer cancel()
	}
	result, err := queries.Ask[flightapp.SearchFlightsQuery, dto.FlightSearchResult](ctx, h.Queries, query)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ FlightHTTP = FlightHandler{}

func parseIntWithDefault(raw string, fallback int) int {
	value := parseInt(raw)
	if value == 0 {
		return fallback
	}
	return value
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "y":
		return true
	}
	return false
}
