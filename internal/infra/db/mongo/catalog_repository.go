package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
)

// CatalogRepository reads hotel and transport catalog documents.
type CatalogRepository struct {
	hotels     *mongo.Collection
	transports *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		hotels:     db.Collection("catalog_hotels"),
		transports: db.Collection("catalog_transports"),
	}
}

func (r *CatalogRepository) HotelsByIDs(ctx context.Context, ids []catalog.HotelID) ([]catalog.Hotel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, string(id))
	}
	cursor, err := r.hotels.Find(ctx, bson.M{"_id": bson.M{"$in": raw}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []catalog.Hotel
	for cursor.Next(ctx) {
		var doc hotelDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *CatalogRepository) TransportsByIDs(ctx context.Context, ids []string) ([]catalog.Transport, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.transports.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []catalog.Transport
	for cursor.Next(ctx) {
		var doc transportDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

type hotelDocument struct {
	ID          string             `bson:"_id"`
	Name        string             `bson:"name"`
	Stars       int                `bson:"stars"`
	Location    locationDocument   `bson:"location"`
	Description string             `bson:"description"`
	Photos      []string           `bson:"photos"`
	Amenities   []string           `bson:"amenities"`
	Policies    policiesDocument   `bson:"policies"`
	RoomTypes   []roomTypeDocument `bson:"room_types"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

type locationDocument struct {
	City    string  `bson:"city"`
	Country string  `bson:"country"`
	Address string  `bson:"address"`
	Lat     float64 `bson:"lat"`
	Lon     float64 `bson:"lon"`
}

type policiesDocument struct {
	CheckIn      string `bson:"check_in"`
	CheckOut     string `bson:"check_out"`
	Cancellation string `bson:"cancellation"`
	Children     string `bson:"children"`
}

type roomTypeDocument struct {
	ID        string   `bson:"_id"`
	Name      string   `bson:"name"`
	Category  string   `bson:"category"`
	Occupancy []string `bson:"occupancy"`
	ViewType  string   `bson:"view_type"`
	Amenities []string `bson:"amenities"`
	Images    []string `bson:"images"`
}

type transportDocument struct {
	ID          string  `bson:"_id"`
	Name        string  `bson:"name"`
	Mode        string  `bson:"mode"`
	Origin      string  `bson:"origin"`
	Destination string  `bson:"destination"`
	Capacity    int     `bson:"capacity"`
	BasePrice   float64 `bson:"base_price"`
	CreatedAt   int64   `bson:"created_at"`
	UpdatedAt   int64   `bson:"updated_at"`
}

func (d hotelDocument) toDomain() catalog.Hotel {
	hotel := catalog.Hotel{
		ID:          catalog.HotelID(d.ID),
		Name:        d.Name,
		Stars:       d.Stars,
		Location:    catalog.Location(d.Location),
		Description: d.Description,
		Photos:      d.Photos,
		Amenities:   d.Amenities,
		Policies:    catalog.Policies(d.Policies),
		CreatedAt:   timestampToTime(d.CreatedAt),
		UpdatedAt:   timestampToTime(d.UpdatedAt),
	}
	for _, rt := range d.RoomTypes {
		hotel.RoomTypes = append(hotel.RoomTypes, catalog.RoomTypeDefinition{
			ID:        rt.ID,
			Name:      rt.Name,
			Category:  rt.Category,
			Occupancy: rt.Occupancy,
			ViewType:  rt.ViewType,
			Amenities: rt.Amenities,
			Images:    rt.Images,
		})
	}
	return hotel
}

func (d transportDocument) toDomain() catalog.Transport {
	return catalog.Transport{
		ID:          d.ID,
		Name:        d.Name,
		Mode:        d.Mode,
		Origin:      d.Origin,
		Destination: d.Destination,
		Capacity:    d.Capacity,
		BasePrice:   d.BasePrice,
		CreatedAt:   timestampToTime(d.CreatedAt),
		UpdatedAt:   timestampToTime(d.UpdatedAt),
	}
}
