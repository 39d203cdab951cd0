package offers

import (
	"context"

	"github.com/lndominguez/apexutravel-sub004/internal/app/dto"
	"github.com/lndominguez/apexutravel-sub004/internal/app/queries"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/pricing"
)

const listOffersKey = "offers.list"

const (
	defaultListLimit = 20
	maxListLimit     = 60
)

// ListOffersQuery filters the public offer listing.
type ListOffersQuery struct {
	Type   string
	Status string
	Page   int
	Limit  int
}

func (q ListOffersQuery) Key() string { return listOffersKey }

// ListOffersHandler returns a page of offer cards with a representative
// "from" price per card. Enrichment failures on one offer degrade that card
// only; the page always renders.
type ListOffersHandler struct {
	Offers    domainoffer.Store
	Assembler *Assembler
}

func (h *ListOffersHandler) Handle(ctx context.Context, q ListOffersQuery) (dto.OfferList, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	filter := domainoffer.Filter{
		Type:   domainoffer.Type(q.Type),
		Status: domainoffer.Status(q.Status),
	}
	result, err := h.Offers.Find(ctx, filter, page, limit)
	if err != nil {
		return dto.OfferList{}, err
	}

	cards := make([]dto.OfferCard, 0, len(result.Items))
	for _, o := range result.Items {
		if err := h.Assembler.Enrich(ctx, o); err != nil {
			// degraded card, not a failed page
			cards = append(cards, dto.MapOfferCard(o, 0))
			continue
		}
		cards = append(cards, dto.MapOfferCard(o, cardPrice(o)))
	}

	return dto.OfferList{
		Items: cards,
		Meta: dto.ListMetadata{
			Total: result.Total,
			Count: len(cards),
			Page:  page,
			Limit: limit,
		},
	}, nil
}

// cardPrice picks the display price for a card: cheapest positive adult room
// sell price across hotel items, falling back to the cheapest flat item.
func cardPrice(o *domainoffer.Offer) float64 {
	best := 0.0
	for _, item := range o.Items {
		switch item.ResourceType {
		case catalog.ResourceHotel:
			for _, room := range item.SelectedRooms {
				price := pricing.MinOccupancyAdultPrice(sellToCapacity(room.CapacityPricesWithMarkup))
				if price > 0 && (best == 0 || price < best) {
					best = price
				}
			}
		default:
			if item.SellPrice > 0 && (best == 0 || item.SellPrice < best) {
				best = item.SellPrice
			}
		}
	}
	return best
}

func sellToCapacity(prices map[inventory.OccupancyKey]pricing.SellPrices) inventory.CapacityPrices {
	out := make(inventory.CapacityPrices, len(prices))
	for key, sell := range prices {
		out[key] = inventory.PricePair{Adult: sell.Adult, Child: sell.Child}
	}
	return out
}

var _ queries.Handler[ListOffersQuery, dto.OfferList] = (*ListOffersHandler)(nil)
