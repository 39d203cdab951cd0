package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/pricing"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/storage/memory"
)

// loadFixtures seeds the in-memory stores from a JSON file so the service is
// browsable without Mongo. Missing file is not an error; a broken entry is
// logged and skipped.
func loadFixtures(ctx context.Context, path string, catalogStore *memory.CatalogStore, flightStore *memory.FlightStore, inventoryStore *memory.InventoryStore, offerStore *memory.OfferStore, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("fixtures file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read fixtures: %w", err)
	}
	if len(data) == 0 {
		logger.Warn("fixtures file empty", "path", path)
		return nil
	}

	var fx fixtureFile
	if err := json.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	now := time.Now().UTC()
	for _, h := range fx.Hotels {
		catalogStore.PutHotel(h.toDomain(now))
	}
	for _, t := range fx.Transports {
		catalogStore.PutTransport(t.toDomain())
	}
	for _, f := range fx.Flights {
		flight, err := f.toDomain()
		if err != nil {
			logger.Error("flight fixture invalid", "flight_number", f.FlightNumber, "error", err)
			continue
		}
		flightStore.Put(flight)
	}
	for _, r := range fx.Inventory {
		inventoryStore.Put(r.toDomain(now))
	}

	imported := 0
	for _, o := range fx.Offers {
		built, err := o.toDomain(now)
		if err != nil {
			logger.Error("offer fixture invalid", "code", o.Code, "error", err)
			continue
		}
		if err := offerStore.Insert(ctx, built); err != nil {
			logger.Error("cannot store fixture offer", "code", o.Code, "error", err)
			continue
		}
		imported++
	}

	logger.Info("fixtures imported",
		"hotels", len(fx.Hotels),
		"transports", len(fx.Transports),
		"flights", len(fx.Flights),
		"inventory", len(fx.Inventory),
		"offers", imported,
	)
	return nil
}

type fixtureFile struct {
	Hotels     []hotelFixture     `json:"hotels"`
	Transports []transportFixture `json:"transports"`
	Flights    []flightFixture    `json:"flights"`
	Inventory  []inventoryFixture `json:"inventory"`
	Offers     []offerFixture     `json:"offers"`
}

type hotelFixture struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Stars       int               `json:"stars"`
	Location    locationFixture   `json:"location"`
	Description string            `json:"description"`
	Photos      []string          `json:"photos"`
	Amenities   []string          `json:"amenities"`
	Policies    policiesFixture   `json:"policies"`
	RoomTypes   []roomTypeFixture `json:"room_types"`
}

type locationFixture struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type policiesFixture struct {
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	Cancellation string `json:"cancellation"`
	Children     string `json:"children"`
}

type roomTypeFixture struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Occupancy []string `json:"occupancy"`
	ViewType  string   `json:"view_type"`
	Amenities []string `json:"amenities"`
	Images    []string `json:"images"`
}

func (f hotelFixture) toDomain(now time.Time) catalog.Hotel {
	roomTypes := make([]catalog.RoomTypeDefinition, 0, len(f.RoomTypes))
	for _, rt := range f.RoomTypes {
		roomTypes = append(roomTypes, catalog.RoomTypeDefinition{
			ID:        rt.ID,
			Name:      rt.Name,
			Category:  rt.Category,
			Occupancy: append([]string(nil), rt.Occupancy...),
			ViewType:  rt.ViewType,
			Amenities: append([]string(nil), rt.Amenities...),
			Images:    append([]string(nil), rt.Images...),
		})
	}
	return catalog.Hotel{
		ID:          catalog.HotelID(f.ID),
		Name:        f.Name,
		Stars:       f.Stars,
		Location:    catalog.Location(f.Location),
		Description: f.Description,
		Photos:      append([]string(nil), f.Photos...),
		Amenities:   append([]string(nil), f.Amenities...),
		Policies:    catalog.Policies(f.Policies),
		RoomTypes:   roomTypes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type transportFixture struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Mode        string  `json:"mode"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Capacity    int     `json:"capacity"`
	BasePrice   float64 `json:"base_price"`
}

func (f transportFixture) toDomain() catalog.Transport {
	return catalog.Transport{
		ID:          f.ID,
		Name:        f.Name,
		Mode:        f.Mode,
		Origin:      f.Origin,
		Destination: f.Destination,
		Capacity:    f.Capacity,
		BasePrice:   f.BasePrice,
	}
}

type flightFixture struct {
	ID           string             `json:"id"`
	Airline      string             `json:"airline"`
	FlightNumber string             `json:"flight_number"`
	Origin       string             `json:"origin"`
	Destination  string             `json:"destination"`
	DepartureAt  string             `json:"departure_at"`
	ArrivalAt    string             `json:"arrival_at"`
	Stops        int                `json:"stops"`
	BasePrice    float64            `json:"base_price"`
	SeatClasses  []seatClassFixture `json:"seat_classes"`
}

type seatClassFixture struct {
	Name           string  `json:"name"`
	AvailableSeats int     `json:"available_seats"`
	BasePrice      float64 `json:"base_price"`
}

func (f flightFixture) toDomain() (catalog.Flight, error) {
	departure, err := time.Parse(time.RFC3339, f.DepartureAt)
	if err != nil {
		return catalog.Flight{}, fmt.Errorf("departure_at: %w", err)
	}
	arrival, err := time.Parse(time.RFC3339, f.ArrivalAt)
	if err != nil {
		return catalog.Flight{}, fmt.Errorf("arrival_at: %w", err)
	}
	classes := make([]catalog.SeatClass, 0, len(f.SeatClasses))
	for _, sc := range f.SeatClasses {
		classes = append(classes, catalog.SeatClass(sc))
	}
	return catalog.Flight{
		ID:           f.ID,
		Airline:      f.Airline,
		FlightNumber: f.FlightNumber,
		Origin:       f.Origin,
		Destination:  f.Destination,
		DepartureAt:  departure.UTC(),
		ArrivalAt:    arrival.UTC(),
		Stops:        f.Stops,
		BasePrice:    f.BasePrice,
		SeatClasses:  classes,
	}, nil
}

type inventoryFixture struct {
	ID             string             `json:"id"`
	ResourceType   string             `json:"resource_type"`
	ResourceID     string             `json:"resource_id"`
	SupplierID     string             `json:"supplier_id"`
	Rooms          []roomStockFixture `json:"rooms"`
	BasePrice      float64            `json:"base_price"`
	UnitsAvailable int                `json:"units_available"`
	ValidFrom      string             `json:"valid_from"`
	ValidTo        string             `json:"valid_to"`
}

type roomStockFixture struct {
	RoomTypeID     string                      `json:"room_type_id"`
	RoomName       string                      `json:"room_name"`
	Stock          int                         `json:"stock"`
	CapacityPrices map[string]pricePairFixture `json:"capacity_prices"`
	Pricing        pricePairFixture            `json:"pricing"`
	PriceAdult     float64                     `json:"price_adult"`
}

type pricePairFixture struct {
	Adult float64 `json:"adult"`
	Child float64 `json:"child"`
}

func (f inventoryFixture) toDomain(now time.Time) inventory.Record {
	rooms := make([]inventory.RoomStock, 0, len(f.Rooms))
	for _, r := range f.Rooms {
		var capacity inventory.CapacityPrices
		if len(r.CapacityPrices) > 0 {
			capacity = make(inventory.CapacityPrices, len(r.CapacityPrices))
			for key, pair := range r.CapacityPrices {
				capacity[inventory.OccupancyKey(key)] = inventory.PricePair(pair)
			}
		}
		rooms = append(rooms, inventory.RoomStock{
			RoomTypeID:     r.RoomTypeID,
			RoomName:       r.RoomName,
			Stock:          r.Stock,
			CapacityPrices: capacity,
			Pricing:        inventory.PricePair(r.Pricing),
			PriceAdult:     r.PriceAdult,
		})
	}
	return inventory.Record{
		ID:             inventory.RecordID(f.ID),
		ResourceType:   f.ResourceType,
		ResourceID:     f.ResourceID,
		SupplierID:     f.SupplierID,
		Rooms:          rooms,
		BasePrice:      f.BasePrice,
		UnitsAvailable: f.UnitsAvailable,
		ValidFrom:      parseFixtureTime(f.ValidFrom),
		ValidTo:        parseFixtureTime(f.ValidTo),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

type offerFixture struct {
	ID     string             `json:"id"`
	Type   string             `json:"type"`
	Code   string             `json:"code"`
	Slug   string             `json:"slug"`
	Title  string             `json:"title"`
	Markup *markupFixture     `json:"markup"`
	Items  []offerItemFixture `json:"items"`
}

type markupFixture struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type offerItemFixture struct {
	ResourceType string            `json:"resource_type"`
	InventoryID  string            `json:"inventory_id"`
	HotelInfo    *hotelInfoFixture `json:"hotel_info"`
}

type hotelInfoFixture struct {
	ResourceID string          `json:"resource_id"`
	Name       string          `json:"name"`
	Stars      int             `json:"stars"`
	Location   locationFixture `json:"location"`
	Photos     []string        `json:"photos"`
	Amenities  []string        `json:"amenities"`
	Policies   policiesFixture `json:"policies"`
}

func (f offerFixture) toDomain(now time.Time) (*domainoffer.Offer, error) {
	var markup *pricing.Markup
	if f.Markup != nil {
		markup = &pricing.Markup{Type: pricing.MarkupType(f.Markup.Type), Value: f.Markup.Value}
	}
	items := make([]domainoffer.Item, 0, len(f.Items))
	for _, it := range f.Items {
		item := domainoffer.Item{
			ResourceType: catalog.ResourceType(it.ResourceType),
			InventoryID:  inventory.RecordID(it.InventoryID),
		}
		if it.HotelInfo != nil {
			item.HotelInfo = &domainoffer.HotelInfo{
				ResourceID: it.HotelInfo.ResourceID,
				Name:       it.HotelInfo.Name,
				Stars:      it.HotelInfo.Stars,
				Location:   catalog.Location(it.HotelInfo.Location),
				Photos:     append([]string(nil), it.HotelInfo.Photos...),
				Amenities:  append([]string(nil), it.HotelInfo.Amenities...),
				Policies:   catalog.Policies(it.HotelInfo.Policies),
			}
		}
		items = append(items, item)
	}

	built, err := domainoffer.New(domainoffer.CreateParams{
		ID:     domainoffer.OfferID(f.ID),
		Type:   domainoffer.Type(f.Type),
		Code:   f.Code,
		Title:  f.Title,
		Markup: markup,
		Items:  items,
		Now:    now,
	})
	if err != nil {
		return nil, err
	}
	if f.Slug != "" {
		built.Slug = f.Slug
	} else {
		built.Slug = domainoffer.Slugify(f.Title)
	}
	if err := built.Publish(now); err != nil {
		return nil, err
	}
	return built, nil
}

func parseFixtureTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
