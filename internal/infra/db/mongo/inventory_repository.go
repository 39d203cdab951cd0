package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
)

// InventoryRepository reads supplier inventory records. The pricing engine
// never writes through this repository.
type InventoryRepository struct {
	col *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{col: db.Collection("inventory_records")}
}

func (r *InventoryRepository) ByIDs(ctx context.Context, ids []inventory.RecordID) ([]inventory.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, string(id))
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": raw}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []inventory.Record
	for cursor.Next(ctx) {
		var doc inventoryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

type inventoryDocument struct {
	ID             string              `bson:"_id"`
	ResourceType   string              `bson:"resource_type"`
	ResourceID     string              `bson:"resource_id"`
	SupplierID     string              `bson:"supplier_id"`
	Rooms          []roomStockDocument `bson:"rooms"`
	BasePrice      float64             `bson:"base_price"`
	UnitsAvailable int                 `bson:"units_available"`
	ValidFrom      int64               `bson:"valid_from"`
	ValidTo        int64               `bson:"valid_to"`
	CreatedAt      int64               `bson:"created_at"`
	UpdatedAt      int64               `bson:"updated_at"`
}

type roomStockDocument struct {
	RoomTypeID     string                       `bson:"room_type_id"`
	RoomName       string                       `bson:"room_name"`
	Stock          int                          `bson:"stock"`
	CapacityPrices map[string]pricePairDocument `bson:"capacity_prices"`
	Pricing        pricePairDocument            `bson:"pricing"`
	PriceAdult     float64                      `bson:"price_adult"`
	ValidFrom      int64                        `bson:"valid_from"`
	ValidTo        int64                        `bson:"valid_to"`
}

type pricePairDocument struct {
	Adult float64 `bson:"adult"`
	Child float64 `bson:"child"`
}

func (d inventoryDocument) toDomain() inventory.Record {
	record := inventory.Record{
		ID:             inventory.RecordID(d.ID),
		ResourceType:   d.ResourceType,
		ResourceID:     d.ResourceID,
		SupplierID:     d.SupplierID,
		BasePrice:      d.BasePrice,
		UnitsAvailable: d.UnitsAvailable,
		ValidFrom:      timestampToTime(d.ValidFrom),
		ValidTo:        timestampToTime(d.ValidTo),
		CreatedAt:      timestampToTime(d.CreatedAt),
		UpdatedAt:      timestampToTime(d.UpdatedAt),
	}
	for _, room := range d.Rooms {
		stock := inventory.RoomStock{
			RoomTypeID: room.RoomTypeID,
			RoomName:   room.RoomName,
			Stock:      room.Stock,
			Pricing:    inventory.PricePair(room.Pricing),
			PriceAdult: room.PriceAdult,
			ValidFrom:  timestampToTime(room.ValidFrom),
			ValidTo:    timestampToTime(room.ValidTo),
		}
		if len(room.CapacityPrices) > 0 {
			stock.CapacityPrices = make(inventory.CapacityPrices, len(room.CapacityPrices))
			for key, pair := range room.CapacityPrices {
				stock.CapacityPrices[inventory.OccupancyKey(key)] = inventory.PricePair(pair)
			}
		}
		record.Rooms = append(record.Rooms, stock)
	}
	return record
}
