package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
)

// FlightRepository serves the flight search. Departure filters are the UTC
// day boundaries computed by the caller; no localization happens here.
type FlightRepository struct {
	col *mongo.Collection
}

func NewFlightRepository(db *mongo.Database) *FlightRepository {
	return &FlightRepository{col: db.Collection("catalog_flights")}
}

func (r *FlightRepository) Search(ctx context.Context, query catalog.FlightQuery) ([]catalog.Flight, error) {
	filter := bson.M{
		"origin":      query.Origin,
		"destination": query.Destination,
		"departure_at": bson.M{
			"$gte": timeToTimestamp(query.DepartFrom),
			"$lte": timeToTimestamp(query.DepartTo),
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "departure_at", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []catalog.Flight
	for cursor.Next(ctx) {
		var doc flightDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

type flightDocument struct {
	ID           string              `bson:"_id"`
	Airline      string              `bson:"airline"`
	FlightNumber string              `bson:"flight_number"`
	Origin       string              `bson:"origin"`
	Destination  string              `bson:"destination"`
	DepartureAt  int64               `bson:"departure_at"`
	ArrivalAt    int64               `bson:"arrival_at"`
	Stops        int                 `bson:"stops"`
	BasePrice    float64             `bson:"base_price"`
	SeatClasses  []seatClassDocument `bson:"seat_classes"`
	CreatedAt    int64               `bson:"created_at"`
	UpdatedAt    int64               `bson:"updated_at"`
}

type seatClassDocument struct {
	Name           string  `bson:"name"`
	AvailableSeats int     `bson:"available_seats"`
	BasePrice      float64 `bson:"base_price"`
}

func (d flightDocument) toDomain() catalog.Flight {
	flight := catalog.Flight{
		ID:           d.ID,
		Airline:      d.Airline,
		FlightNumber: d.FlightNumber,
		Origin:       d.Origin,
		Destination:  d.Destination,
		DepartureAt:  timestampToTime(d.DepartureAt),
		ArrivalAt:    timestampToTime(d.ArrivalAt),
		Stops:        d.Stops,
		BasePrice:    d.BasePrice,
		CreatedAt:    timestampToTime(d.CreatedAt),
		UpdatedAt:    timestampToTime(d.UpdatedAt),
	}
	for _, class := range d.SeatClasses {
		flight.SeatClasses = append(flight.SeatClasses, catalog.SeatClass{
			Name:           class.Name,
			AvailableSeats: class.AvailableSeats,
			BasePrice:      class.BasePrice,
		})
	}
	return flight
}
