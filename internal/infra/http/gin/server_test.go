package ginserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lndominguez/apexutravel-sub004/internal/app/commands"
	flightapp "github.com/lndominguez/apexutravel-sub004/internal/app/handlers/flights"
	offerapp "github.com/lndominguez/apexutravel-sub004/internal/app/handlers/offers"
	"github.com/lndominguez/apexutravel-sub004/internal/app/queries"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/pricing"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/config"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/obs"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/storage/memory"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	catalogStore := memory.NewCatalogStore()
	flightStore := memory.NewFlightStore()
	inventoryStore := memory.NewInventoryStore()
	offerStore := memory.NewOfferStore()

	catalogStore.PutHotel(catalog.Hotel{
		ID:        "htl-1",
		Name:      "Cancún Palms Resort",
		Stars:     5,
		Photos:    []string{"main.jpg"},
		Amenities: []string{"pool"},
		RoomTypes: []catalog.RoomTypeDefinition{{ID: "rt-std", Name: "Standard"}},
	})
	inventoryStore.Put(inventory.Record{
		ID:         "inv-1",
		ResourceID: "htl-1",
		Rooms: []inventory.RoomStock{
			{
				RoomTypeID: "rt-std",
				RoomName:   "Standard",
				Stock:      5,
				CapacityPrices: inventory.CapacityPrices{
					inventory.OccupancyDouble: {Adult: 100, Child: 50},
				},
			},
		},
	})

	departure := time.Date(2026, 6, 13, 8, 30, 0, 0, time.UTC)
	flightStore.Put(catalog.Flight{
		ID:          "f1",
		Origin:      "HAV",
		Destination: "CUN",
		DepartureAt: departure,
		ArrivalAt:   departure.Add(time.Hour),
		SeatClasses: []catalog.SeatClass{{Name: "economy", AvailableSeats: 10, BasePrice: 200}},
	})

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	published, err := domainoffer.New(domainoffer.CreateParams{
		ID:     "ofr-1",
		Type:   domainoffer.TypeHotel,
		Code:   "CUN-1",
		Title:  "Cancún Palms",
		Markup: &pricing.Markup{Type: pricing.MarkupPercentage, Value: 20},
		Items: []domainoffer.Item{
			{ResourceType: catalog.ResourceHotel, InventoryID: "inv-1", HotelInfo: &domainoffer.HotelInfo{ResourceID: "htl-1"}},
		},
		Now: now,
	})
	require.NoError(t, err)
	published.Slug = "cancun-palms"
	require.NoError(t, published.Publish(now))
	require.NoError(t, offerStore.Insert(context.Background(), published))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assembler := &offerapp.Assembler{Inventory: inventoryStore, Catalog: catalogStore, Log: logger}

	queryBus := queries.NewInMemoryBus()
	queries.Register(queryBus, offerapp.GetOfferQuery{}.Key(), &offerapp.GetOfferHandler{Offers: offerStore, Assembler: assembler})
	queries.Register(queryBus, offerapp.ListOffersQuery{}.Key(), &offerapp.ListOffersHandler{Offers: offerStore, Assembler: assembler})
	queries.Register(queryBus, flightapp.SearchFlightsQuery{}.Key(), &flightapp.SearchFlightsHandler{
		Flights:      flightStore,
		Alternatives: &flightapp.AlternativeDateFinder{Flights: flightStore, Log: logger},
	})

	commandBus := commands.NewInMemoryBus()
	commands.Register(commandBus, offerapp.CreateOfferCommand{}.Key(), &offerapp.CreateOfferHandler{
		Offers: offerStore,
		Slugs:  &offerapp.SlugAllocator{Offers: offerStore},
		Log:    logger,
	})

	server := NewServer(
		config.Config{Env: "test", HTTPAddr: ":0"},
		obs.Middleware{Logger: logger},
		obs.HealthHandlers{Ready: func() error { return nil }},
		Handlers{
			Offer:      OfferHandler{Queries: queryBus},
			Flight:     FlightHandler{Queries: queryBus},
			AdminOffer: AdminOfferHandler{Commands: commandBus},
		},
	)
	return server.Handler
}

func doRequest(t *testing.T, handler http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthEndpoints(t *testing.T) {
	handler := newTestServer(t)
	assert.Equal(t, http.StatusOK, doRequest(t, handler, http.MethodGet, "/livez", nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(t, handler, http.MethodGet, "/readyz", nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(t, handler, http.MethodGet, "/metrics", nil).Code)
}

func TestGetOfferEndpoint(t *testing.T) {
	handler := newTestServer(t)

	resp := doRequest(t, handler, http.MethodGet, "/api/v1/offers/cancun-palms", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Header().Get("X-Request-ID"))

	var detail map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &detail))
	assert.Equal(t, "cancun-palms", detail["slug"])

	items, ok := detail["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	rooms, ok := item["selected_rooms"].([]any)
	require.True(t, ok)
	require.Len(t, rooms, 1)
	prices := rooms[0].(map[string]any)["capacity_prices_with_markup"].(map[string]any)
	double := prices["double"].(map[string]any)
	assert.Equal(t, 120.0, double["adult"])
	assert.Equal(t, 60.0, double["child"])
	assert.Equal(t, 0.0, double["infant"])
}

func TestGetOfferEndpointNotFound(t *testing.T) {
	handler := newTestServer(t)
	resp := doRequest(t, handler, http.MethodGet, "/api/v1/offers/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListOffersEndpoint(t *testing.T) {
	handler := newTestServer(t)

	resp := doRequest(t, handler, http.MethodGet, "/api/v1/offers", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var list map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	items := list["items"].([]any)
	require.Len(t, items, 1)
	card := items[0].(map[string]any)
	assert.Equal(t, "cancun-palms", card["slug"])
	assert.Equal(t, 120.0, card["from_price"])
}

func TestFlightSearchEndpoint(t *testing.T) {
	handler := newTestServer(t)

	resp := doRequest(t, handler, http.MethodGet, "/api/v1/flights/search?origin=hav&destination=cun&departureDate=2026-06-13", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	flights := result["flights"].([]any)
	assert.Len(t, flights, 1)
}

func TestFlightSearchEndpointAlternatives(t *testing.T) {
	handler := newTestServer(t)

	resp := doRequest(t, handler, http.MethodGet, "/api/v1/flights/search?origin=HAV&destination=CUN&departureDate=2026-06-12&searchAlternatives=true", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Empty(t, result["flights"])
	alternatives := result["alternative_dates"].([]any)
	require.Len(t, alternatives, 1)
	alt := alternatives[0].(map[string]any)
	assert.Equal(t, 1.0, alt["offset"])
	assert.Equal(t, "2026-06-13", alt["date"])
}

func TestFlightSearchEndpointValidation(t *testing.T) {
	handler := newTestServer(t)

	resp := doRequest(t, handler, http.MethodGet, "/api/v1/flights/search?origin=HAV", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(t, handler, http.MethodGet, "/api/v1/flights/search?origin=HAV&destination=CUN&departureDate=13-06-2026", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAdminCreateOfferEndpoint(t *testing.T) {
	handler := newTestServer(t)

	body := []byte(`{
		"type": "hotel",
		"code": "CUN-2",
		"title": "Playa Azul",
		"markup": {"type": "percentage", "value": 15},
		"items": [{"resource_type": "hotel", "inventory_id": "inv-1", "hotel_id": "htl-1"}]
	}`)
	resp := doRequest(t, handler, http.MethodPost, "/api/v1/admin/offers", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	var detail map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &detail))
	assert.Equal(t, "playa-azul", detail["slug"])
	assert.Equal(t, "draft", detail["status"])
}

func TestAdminCreateOfferEndpointRejectsBadPayloads(t *testing.T) {
	handler := newTestServer(t)

	resp := doRequest(t, handler, http.MethodPost, "/api/v1/admin/offers", []byte(`{"code": "X"}`))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(t, handler, http.MethodPost, "/api/v1/admin/offers", []byte(`{"type": "cruise", "code": "X", "title": "Y"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
