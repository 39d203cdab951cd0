package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"github.com/lndominguez/apexutravel-sub004/internal/app/commands"
	"github.com/lndominguez/apexutravel-sub004/internal/app/dto"
	offerapp "github.com/lndominguez/apexutravel-sub004/internal/app/handlers/offers"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
)

// AdminOfferHandler wires offer administration commands to HTTP. Role checks
// happen upstream of this service.
type AdminOfferHandler struct {
	Commands commands.Bus
}

type createOfferRequest struct {
	Type   string               `json:"type" binding:"required"`
	Code   string               `json:"code" binding:"required"`
	Title  string               `json:"title" binding:"required"`
	Markup *markupRequest       `json:"markup"`
	Items  []createOfferItemReq `json:"items"`
}

type markupRequest struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type createOfferItemReq struct {
	ResourceType string `json:"resource_type"`
	InventoryID  string `json:"inventory_id"`
	HotelID      string `json:"hotel_id"`
}

// Create registers a draft offer with a freshly allocated slug.
func (h AdminOfferHandler) Create(c *gin.Context) {
	if h.Commands == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin offer handler unavailable"})
		return
	}
	var req createOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := offerapp.CreateOfferCommand{
		Type:  req.Type,
		Code:  req.Code,
		Title: req.Title,
	}
	if req.Markup != nil {
		cmd.MarkupType = req.Markup.Type
		cmd.MarkupValue = req.Markup.Value
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, offerapp.CreateOfferItem{
			ResourceType: item.ResourceType,
			InventoryID:  item.InventoryID,
			HotelID:      item.HotelID,
		})
	}

	result, err := commands.Dispatch[offerapp.CreateOfferCommand, dto.OfferDetail](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		switch {
		case errors.Is(err, domainoffer.ErrCodeRequired),
			errors.Is(err, domainoffer.ErrTitleRequired),
			errors.Is(err, domainoffer.ErrUnknownType),
			errors.Is(err, domainoffer.ErrPackageInventory),
			errors.Is(err, offerapp.ErrEmptySlug):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

var _ AdminOfferHTTP = AdminOfferHandler{}
