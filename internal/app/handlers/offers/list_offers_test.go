package offers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/pricing"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/storage/memory"
)

type failingInventory struct{}

func (failingInventory) ByIDs(ctx context.Context, ids []inventory.RecordID) ([]inventory.Record, error) {
	return nil, errors.New("inventory backend down")
}

func seedListFixtures(t *testing.T) (*ListOffersHandler, *memory.OfferStore) {
	t.Helper()
	offerStore := memory.NewOfferStore()
	inventoryStore := memory.NewInventoryStore()
	catalogStore := memory.NewCatalogStore()

	catalogStore.PutHotel(testHotel())
	inventoryStore.Put(inventory.Record{
		ID:         "inv-1",
		ResourceID: "htl-1",
		Rooms: []inventory.RoomStock{
			{
				RoomTypeID: "rt-std",
				RoomName:   "Standard",
				Stock:      3,
				CapacityPrices: inventory.CapacityPrices{
					inventory.OccupancyDouble: {Adult: 100, Child: 50},
					inventory.OccupancySingle: {Adult: 130},
				},
			},
		},
	})

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	published := hotelOffer(&pricing.Markup{Type: pricing.MarkupPercentage, Value: 20})
	published.Slug = "cancun-palms"
	published.CreatedAt = base
	require.NoError(t, published.Publish(base))
	require.NoError(t, offerStore.Insert(context.Background(), published))

	draft := hotelOffer(nil)
	draft.ID = "ofr-draft"
	draft.Code = "CUN-DRAFT"
	draft.Slug = "cancun-draft"
	draft.Status = domainoffer.StatusDraft
	draft.CreatedAt = base.Add(time.Hour)
	require.NoError(t, offerStore.Insert(context.Background(), draft))

	handler := &ListOffersHandler{
		Offers:    offerStore,
		Assembler: &Assembler{Inventory: inventoryStore, Catalog: catalogStore},
	}
	return handler, offerStore
}

func TestListOffersFiltersByStatusAndPricesCards(t *testing.T) {
	handler, _ := seedListFixtures(t)

	result, err := handler.Handle(context.Background(), ListOffersQuery{Status: "published"})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	card := result.Items[0]
	assert.Equal(t, "cancun-palms", card.Slug)
	// cheapest occupancy resolution prefers double: 100 * 1.20
	assert.Equal(t, 120.0, card.FromPrice)
	assert.Equal(t, 1, result.Meta.Total)
	assert.Equal(t, 1, result.Meta.Count)
	assert.Equal(t, 1, result.Meta.Page)
	assert.Equal(t, 20, result.Meta.Limit)
}

func TestListOffersClampsLimit(t *testing.T) {
	handler, _ := seedListFixtures(t)

	result, err := handler.Handle(context.Background(), ListOffersQuery{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 60, result.Meta.Limit)
}

func TestListOffersDegradesCardOnEnrichmentFailure(t *testing.T) {
	handler, _ := seedListFixtures(t)
	handler.Assembler = &Assembler{Inventory: failingInventory{}, Catalog: memory.NewCatalogStore()}

	result, err := handler.Handle(context.Background(), ListOffersQuery{Status: "published"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 0.0, result.Items[0].FromPrice)
}

func TestGetOfferBySlugAndCode(t *testing.T) {
	listHandler, offerStore := seedListFixtures(t)
	handler := &GetOfferHandler{Offers: offerStore, Assembler: listHandler.Assembler}

	bySlug, err := handler.Handle(context.Background(), GetOfferQuery{SlugOrCode: "cancun-palms"})
	require.NoError(t, err)
	byCode, err := handler.Handle(context.Background(), GetOfferQuery{SlugOrCode: "CUN-1"})
	require.NoError(t, err)
	assert.Equal(t, bySlug.ID, byCode.ID)

	require.Len(t, bySlug.Items, 1)
	rooms := bySlug.Items[0].SelectedRooms
	require.Len(t, rooms, 1)
	assert.Equal(t, 120.0, rooms[0].CapacityPricesWithMarkup["double"].Adult)
	assert.Equal(t, 60.0, rooms[0].CapacityPricesWithMarkup["double"].Child)
	assert.Equal(t, 0.0, rooms[0].CapacityPricesWithMarkup["double"].Infant)
}

func TestGetOfferNotFound(t *testing.T) {
	listHandler, offerStore := seedListFixtures(t)
	handler := &GetOfferHandler{Offers: offerStore, Assembler: listHandler.Assembler}

	_, err := handler.Handle(context.Background(), GetOfferQuery{SlugOrCode: "nope"})
	assert.True(t, IsNotFound(err))

	_, err = handler.Handle(context.Background(), GetOfferQuery{SlugOrCode: "  "})
	assert.True(t, IsNotFound(err))
}

func TestGetOfferRebuildsRoomsFromCurrentInventory(t *testing.T) {
	offerStore := memory.NewOfferStore()
	inventoryStore := memory.NewInventoryStore()
	catalogStore := memory.NewCatalogStore()
	catalogStore.PutHotel(testHotel())

	o := hotelOffer(&pricing.Markup{Type: pricing.MarkupPercentage, Value: 10})
	o.Slug = "cancun-palms"
	// stale derived rooms in storage must be ignored
	o.Items[0].SelectedRooms = []domainoffer.ResolvedRoom{{Name: "Stale", Stock: 99}}
	require.NoError(t, offerStore.Insert(context.Background(), o))

	inventoryStore.Put(inventory.Record{
		ID:         "inv-1",
		ResourceID: "htl-1",
		Rooms: []inventory.RoomStock{
			{RoomTypeID: "rt-std", RoomName: "Fresh", Stock: 2, CapacityPrices: inventory.CapacityPrices{inventory.OccupancyDouble: {Adult: 200}}},
		},
	})

	handler := &GetOfferHandler{
		Offers:    offerStore,
		Assembler: &Assembler{Inventory: inventoryStore, Catalog: catalogStore},
	}
	detail, err := handler.Handle(context.Background(), GetOfferQuery{SlugOrCode: "cancun-palms"})
	require.NoError(t, err)

	require.Len(t, detail.Items[0].SelectedRooms, 1)
	room := detail.Items[0].SelectedRooms[0]
	assert.Equal(t, "Fresh", room.Name)
	assert.Equal(t, 2, room.Stock)
	assert.Equal(t, 220.0, room.CapacityPricesWithMarkup["double"].Adult)
}
