package ginserver

import (
	"net/http"
	"strconv"
	"strings"

	gin "github.com/gin-gonic/gin"

	"github.com/lndominguez/apexutravel-sub004/internal/app/dto"
	offerapp "github.com/lndominguez/apexutravel-sub004/internal/app/handlers/offers"
	"github.com/lndominguez/apexutravel-sub004/internal/app/queries"
)

// OfferHandler wires offer queries to HTTP.
type OfferHandler struct {
	Queries queries.Bus
}

// List responds with a filtered page of offer cards.
func (h OfferHandler) List(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "offer handler unavailable"})
		return
	}
	query := offerapp.ListOffersQuery{
		Type:   c.Query("type"),
		Status: c.DefaultQuery("status", "published"),
		Page:   parseInt(c.Query("page")),
		Limit:  parseInt(c.Query("limit")),
	}
	result, err := queries.Ask[offerapp.ListOffersQuery, dto.OfferList](c.Request.Context(), h.Queries, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get responds with one enriched offer. Selected rooms are always rebuilt
// from inventory at read time, never served from a stored copy.
func (h OfferHandler) Get(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "offer handler unavailable"})
		return
	}
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offer slug or code is required"})
		return
	}
	result, err := queries.Ask[offerapp.GetOfferQuery, dto.OfferDetail](c.Request.Context(), h.Queries, offerapp.GetOfferQuery{SlugOrCode: slug})
	if err != nil {
		if offerapp.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ OfferHTTP = OfferHandler{}

func parseInt(raw string) int {
	value, _ := strconv.Atoi(strings.TrimSpace(raw))
	if value < 0 {
		return 0
	}
	return value
}
