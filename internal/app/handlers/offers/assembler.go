package offers

import (
	"context"
	"log/slog"
	"sort"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/pricing"
)

const fallbackRoomName = "Habitación"

// Assembler joins an offer's items to inventory and catalog records and
// rebuilds every derived, display-ready field at read time. Selected rooms
// are never trusted from storage: recomputing them here is what makes markup
// and inventory edits visible on the very next read.
type Assembler struct {
	Inventory inventory.Store
	Catalog   catalog.Store
	Log       *slog.Logger
}

// Enrich reconciles the offer in place. A missing inventory or catalog
// record degrades that one item (no rooms, no backfill) and is never an
// error: one bad item must not blank a whole listing.
func (a *Assembler) Enrich(ctx context.Context, o *domainoffer.Offer) error {
	if o == nil || len(o.Items) == 0 {
		return nil
	}

	records, err := a.fetchInventory(ctx, o)
	if err != nil {
		return err
	}
	hotels, err := a.fetchHotels(ctx, o, records)
	if err != nil {
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		record, haveRecord := records[item.InventoryID]

		switch item.ResourceType {
		case catalog.ResourceHotel:
			if !haveRecord {
				a.logSkip(o, item, "inventory record missing")
				item.SelectedRooms = nil
				continue
			}
			hotel := a.hotelFor(item, records, hotels)
			a.enrichHotelItem(item, record, hotel, o.Markup)
			if o.Description == "" && hotel != nil {
				o.Description = hotel.Description
			}
		default:
			// flights/transports inside a package carry a flat base price
			if haveRecord {
				item.SellPrice = pricing.Apply(record.BasePrice, o.Markup)
			} else if item.InventoryID != "" {
				a.logSkip(o, item, "inventory record missing")
			}
		}
	}
	return nil
}

// fetchInventory batch-loads every referenced inventory record, deduplicated.
func (a *Assembler) fetchInventory(ctx context.Context, o *domainoffer.Offer) (map[inventory.RecordID]inventory.Record, error) {
	seen := make(map[inventory.RecordID]struct{}, len(o.Items))
	ids := make([]inventory.RecordID, 0, len(o.Items))
	for _, item := range o.Items {
		if item.InventoryID == "" {
			continue
		}
		if _, ok := seen[item.InventoryID]; ok {
			continue
		}
		seen[item.InventoryID] = struct{}{}
		ids = append(ids, item.InventoryID)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	records, err := a.Inventory.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[inventory.RecordID]inventory.Record, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}
	return byID, nil
}

// fetchHotels resolves the backing hotel id of every hotel item (denormalized
// HotelInfo reference first, the inventory record's own reference as
// fallback) and batch-loads each distinct hotel once. A single hotel may back
// several inventory records within the same offer.
func (a *Assembler) fetchHotels(ctx context.Context, o *domainoffer.Offer, records map[inventory.RecordID]inventory.Record) (map[catalog.HotelID]*catalog.Hotel, error) {
	seen := make(map[catalog.HotelID]struct{})
	ids := make([]catalog.HotelID, 0, len(o.Items))
	for _, item := range o.Items {
		if item.ResourceType != catalog.ResourceHotel {
			continue
		}
		id := hotelIDFor(item, records)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	hotels, err := a.Catalog.HotelsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[catalog.HotelID]*catalog.Hotel, len(hotels))
	for i := range hotels {
		byID[hotels[i].ID] = &hotels[i]
	}
	return byID, nil
}

func hotelIDFor(item domainoffer.Item, records map[inventory.RecordID]inventory.Record) catalog.HotelID {
	if item.HotelInfo != nil && item.HotelInfo.ResourceID != "" {
		return catalog.HotelID(item.HotelInfo.ResourceID)
	}
	if record, ok := records[item.InventoryID]; ok && record.ResourceID != "" {
		return catalog.HotelID(record.ResourceID)
	}
	return ""
}

func (a *Assembler) hotelFor(item *domainoffer.Item, records map[inventory.RecordID]inventory.Record, hotels map[catalog.HotelID]*catalog.Hotel) *catalog.Hotel {
	id := hotelIDFor(*item, records)
	if id == "" {
		return nil
	}
	hotel, ok := hotels[id]
	if !ok {
		a.logSkip(nil, item, "catalog hotel missing")
		return nil
	}
	return hotel
}

// enrichHotelItem backfills descriptive metadata and rebuilds the room list
// from the inventory record.
func (a *Assembler) enrichHotelItem(item *domainoffer.Item, record inventory.Record, hotel *catalog.Hotel, markup *pricing.Markup) {
	if item.HotelInfo == nil {
		item.HotelInfo = &domainoffer.HotelInfo{ResourceID: record.ResourceID}
	}
	info := item.HotelInfo
	if hotel != nil {
		if info.ResourceID == "" {
			info.ResourceID = string(hotel.ID)
		}
		if len(info.Photos) == 0 {
			info.Photos = append([]string(nil), hotel.Photos...)
		}
		if info.Name == "" {
			info.Name = hotel.Name
		}
		if info.Stars == 0 {
			info.Stars = hotel.Stars
		}
		if info.Location == (catalog.Location{}) {
			info.Location = hotel.Location
		}
		// offer-level overrides win, catalog fills the gaps
		info.Policies = info.Policies.Merge(hotel.Policies)
		// amenities are not offer-overridable
		info.Amenities = append([]string(nil), hotel.Amenities...)
	}
	item.SelectedRooms = a.rebuildRooms(record, hotel, markup)
}

// rebuildRooms converts each room stock entry into a display-ready room with
// markup applied per occupancy, then orders them by the canonical occupancy
// rank. The sort must be stable so equally-ranked rooms keep their inventory
// order.
func (a *Assembler) rebuildRooms(record inventory.Record, hotel *catalog.Hotel, markup *pricing.Markup) []domainoffer.ResolvedRoom {
	rooms := make([]domainoffer.ResolvedRoom, 0, len(record.Rooms))
	for _, stock := range record.Rooms {
		var def catalog.RoomTypeDefinition
		if hotel != nil {
			def, _ = hotel.RoomTypeByID(stock.RoomTypeID)
		}

		name := stock.RoomName
		if name == "" {
			name = def.Name
		}
		if name == "" {
			name = fallbackRoomName
		}

		prices := make(map[inventory.OccupancyKey]pricing.SellPrices, len(stock.CapacityPrices))
		for key, pair := range stock.CapacityPrices {
			prices[key] = pricing.SellPair(pair, markup)
		}

		rooms = append(rooms, domainoffer.ResolvedRoom{
			RoomTypeID:               stock.RoomTypeID,
			Name:                     name,
			Plan:                     "Standard",
			CapacityPricesWithMarkup: prices,
			Stock:                    stock.Stock,
			Images:                   append([]string(nil), def.Images...),
			Category:                 def.Category,
			Occupancy:                append([]string(nil), def.Occupancy...),
			ViewType:                 def.ViewType,
			Amenities:                append([]string(nil), def.Amenities...),
			ValidFrom:                stock.ValidFrom,
			ValidTo:                  stock.ValidTo,
		})
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return roomRank(rooms[i]) < roomRank(rooms[j])
	})
	return rooms
}

// roomRank ranks a room by its cheapest-ranked priced occupancy.
func roomRank(room domainoffer.ResolvedRoom) int {
	best := 0
	for key := range room.CapacityPricesWithMarkup {
		rank := pricing.OccupancyRank(key)
		if best == 0 || rank < best {
			best = rank
		}
	}
	if best == 0 {
		return 999
	}
	return best
}

func (a *Assembler) logSkip(o *domainoffer.Offer, item *domainoffer.Item, reason string) {
	if a.Log == nil {
		return
	}
	args := []any{"inventory_id", string(item.InventoryID), "reason", reason}
	if o != nil {
		args = append(args, "offer", o.Code)
	}
	a.Log.Debug("offer enrichment degraded", args...)
}
