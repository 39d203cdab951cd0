package dto

import (
	"time"

	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
)

// OfferDetail is a fully enriched offer as served to the public site.
type OfferDetail struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Code        string      `json:"code"`
	Slug        string      `json:"slug"`
	Status      string      `json:"status"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Markup      *MarkupView `json:"markup,omitempty"`
	Items       []OfferItem `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// MarkupView mirrors the offer-level markup for admin screens.
type MarkupView struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// OfferItem is one priced component of an offer.
type OfferItem struct {
	ResourceType  string      `json:"resource_type"`
	InventoryID   string      `json:"inventory_id"`
	Hotel         *HotelCard  `json:"hotel_info,omitempty"`
	SellPrice     float64     `json:"sell_price,omitempty"`
	SelectedRooms []RoomOffer `json:"selected_rooms,omitempty"`
}

// HotelCard is the denormalized hotel header shown on an offer.
type HotelCard struct {
	ResourceID string       `json:"resource_id"`
	Name       string       `json:"name"`
	Stars      int          `json:"stars"`
	City       string       `json:"city"`
	Country    string       `json:"country"`
	Photos     []string     `json:"photos"`
	Amenities  []string     `json:"amenities"`
	Policies   PoliciesView `json:"policies"`
}

// PoliciesView carries merged hotel policies.
type PoliciesView struct {
	CheckIn      string `json:"check_in,omitempty"`
	CheckOut     string `json:"check_out,omitempty"`
	Cancellation string `json:"cancellation,omitempty"`
	Children     string `json:"children,omitempty"`
}

// SellPriceView is a per-occupancy sell price triple.
type SellPriceView struct {
	Adult  float64 `json:"adult"`
	Child  float64 `json:"child"`
	Infant float64 `json:"infant"`
}

// RoomOffer is a display-ready room rebuilt at read time.
type RoomOffer struct {
	RoomTypeID               string                   `json:"room_type_id"`
	Name                     string                   `json:"name"`
	Plan                     string                   `json:"plan"`
	CapacityPricesWithMarkup map[string]SellPriceView `json:"capacity_prices_with_markup"`
	Stock                    int                      `json:"stock"`
	Images                   []string                 `json:"images"`
	Category                 string                   `json:"category,omitempty"`
	Occupancy                []string                 `json:"occupancy,omitempty"`
	ViewType                 string                   `json:"view_type,omitempty"`
	Amenities                []string                 `json:"amenities,omitempty"`
	ValidFrom                *time.Time               `json:"valid_from,omitempty"`
	ValidTo                  *time.Time               `json:"valid_to,omitempty"`
}

// OfferList is a paginated collection of offer cards.
type OfferList struct {
	Items []OfferCard  `json:"items"`
	Meta  ListMetadata `json:"meta"`
}

// OfferCard is the lightweight listing representation.
type OfferCard struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Code      string  `json:"code"`
	Slug      string  `json:"slug"`
	Status    string  `json:"status"`
	Title     string  `json:"title"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	FromPrice float64 `json:"from_price"`
}

// ListMetadata describes pagination.
type ListMetadata struct {
	Total int `json:"total"`
	Count int `json:"count"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// MapOfferDetail copies an enriched offer into its transport shape.
func MapOfferDetail(o *domainoffer.Offer) OfferDetail {
	if o == nil {
		return OfferDetail{}
	}
	detail := OfferDetail{
		ID:          string(o.ID),
		Type:        string(o.Type),
		Code:        o.Code,
		Slug:        o.Slug,
		Status:      string(o.Status),
		Title:       o.Title,
		Description: o.Description,
		Items:       make([]OfferItem, 0, len(o.Items)),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.Markup != nil {
		detail.Markup = &MarkupView{Type: string(o.Markup.Type), Value: o.Markup.Value}
	}
	for _, item := range o.Items {
		detail.Items = append(detail.Items, mapOfferItem(item))
	}
	return detail
}

func mapOfferItem(item domainoffer.Item) OfferItem {
	out := OfferItem{
		ResourceType: string(item.ResourceType),
		InventoryID:  string(item.InventoryID),
		SellPrice:    item.SellPrice,
	}
	if item.HotelInfo != nil {
		out.Hotel = &HotelCard{
			ResourceID: item.HotelInfo.ResourceID,
			Name:       item.HotelInfo.Name,
			Stars:      item.HotelInfo.Stars,
			City:       item.HotelInfo.Location.City,
			Country:    item.HotelInfo.Location.Country,
			Photos:     append([]string(nil), item.HotelInfo.Photos...),
			Amenities:  append([]string(nil), item.HotelInfo.Amenities...),
			Policies: PoliciesView{
				CheckIn:      item.HotelInfo.Policies.CheckIn,
				CheckOut:     item.HotelInfo.Policies.CheckOut,
				Cancellation: item.HotelInfo.Policies.Cancellation,
				Children:     item.HotelInfo.Policies.Children,
			},
		}
	}
	for _, room := range item.SelectedRooms {
		out.SelectedRooms = append(out.SelectedRooms, mapRoomOffer(room))
	}
	return out
}

func mapRoomOffer(room domainoffer.ResolvedRoom) RoomOffer {
	out := RoomOffer{
		RoomTypeID:               room.RoomTypeID,
		Name:                     room.Name,
		Plan:                     room.Plan,
		CapacityPricesWithMarkup: make(map[string]SellPriceView, len(room.CapacityPricesWithMarkup)),
		Stock:                    room.Stock,
		Images:                   append([]string(nil), room.Images...),
		Category:                 room.Category,
		Occupancy:                append([]string(nil), room.Occupancy...),
		ViewType:                 room.ViewType,
		Amenities:                append([]string(nil), room.Amenities...),
	}
	for key, sell := range room.CapacityPricesWithMarkup {
		out.CapacityPricesWithMarkup[string(key)] = SellPriceView{Adult: sell.Adult, Child: sell.Child, Infant: sell.Infant}
	}
	if !room.ValidFrom.IsZero() {
		from := room.ValidFrom
		out.ValidFrom = &from
	}
	if !room.ValidTo.IsZero() {
		to := room.ValidTo
		out.ValidTo = &to
	}
	return out
}

// MapOfferCard builds the listing card, with the representative "from" price
// already computed by the caller.
func MapOfferCard(o *domainoffer.Offer, fromPrice float64) OfferCard {
	if o == nil {
		return OfferCard{}
	}
	card := OfferCard{
		ID:        string(o.ID),
		Type:      string(o.Type),
		Code:      o.Code,
		Slug:      o.Slug,
		Status:    string(o.Status),
		Title:     o.Title,
		FromPrice: fromPrice,
	}
	for _, item := range o.Items {
		if item.HotelInfo != nil && len(item.HotelInfo.Photos) > 0 {
			card.Thumbnail = item.HotelInfo.Photos[0]
			break
		}
	}
	return card
}
