package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/pricing"
)

// OfferRepository persists offers. Derived fields (selected rooms, sell
// prices) are never stored: documents carry references and the markup only.
type OfferRepository struct {
	col *mongo.Collection
}

func NewOfferRepository(db *mongo.Database) *OfferRepository {
	return &OfferRepository{col: db.Collection("offers")}
}

func (r *OfferRepository) BySlugOrCode(ctx context.Context, value string) (*domainoffer.Offer, error) {
	filter := bson.M{"$or": bson.A{bson.M{"slug": value}, bson.M{"code": value}}}
	var doc offerDocument
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainoffer.ErrOfferNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *OfferRepository) Find(ctx context.Context, filter domainoffer.Filter, page, limit int) (domainoffer.Page, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = string(filter.Type)
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return domainoffer.Page{}, err
	}

	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return domainoffer.Page{}, err
	}
	defer cursor.Close(ctx)

	result := domainoffer.Page{Total: int(total)}
	for cursor.Next(ctx) {
		var doc offerDocument
		if err := cursor.Decode(&doc); err != nil {
			return domainoffer.Page{}, err
		}
		result.Items = append(result.Items, doc.toDomain())
	}
	return result, cursor.Err()
}

func (r *OfferRepository) Insert(ctx context.Context, o *domainoffer.Offer) error {
	_, err := r.col.InsertOne(ctx, newOfferDocument(o))
	return err
}

func (r *OfferRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type offerDocument struct {
	ID          string              `bson:"_id"`
	Type        string              `bson:"type"`
	Code        string              `bson:"code"`
	Slug        string              `bson:"slug"`
	Status      string              `bson:"status"`
	Title       string              `bson:"title"`
	Description string              `bson:"description"`
	Markup      *markupDocument     `bson:"markup,omitempty"`
	Items       []offerItemDocument `bson:"items"`
	CreatedAt   int64               `bson:"created_at"`
	UpdatedAt   int64               `bson:"updated_at"`
}

type markupDocument struct {
	Type  string  `bson:"type"`
	Value float64 `bson:"value"`
}

type offerItemDocument struct {
	ResourceType string             `bson:"resource_type"`
	InventoryID  string             `bson:"inventory_id"`
	HotelInfo    *hotelInfoDocument `bson:"hotel_info,omitempty"`
}

type hotelInfoDocument struct {
	ResourceID string           `bson:"resource_id"`
	Name       string           `bson:"name"`
	Stars      int              `bson:"stars"`
	Location   locationDocument `bson:"location"`
	Photos     []string         `bson:"photos"`
	Policies   policiesDocument `bson:"policies"`
}

func newOfferDocument(o *domainoffer.Offer) offerDocument {
	doc := offerDocument{
		ID:          string(o.ID),
		Type:        string(o.Type),
		Code:        o.Code,
		Slug:        o.Slug,
		Status:      string(o.Status),
		Title:       o.Title,
		Description: o.Description,
		CreatedAt:   timeToTimestamp(o.CreatedAt),
		UpdatedAt:   timeToTimestamp(o.UpdatedAt),
	}
	if o.Markup != nil {
		doc.Markup = &markupDocument{Type: string(o.Markup.Type), Value: o.Markup.Value}
	}
	for _, item := range o.Items {
		itemDoc := offerItemDocument{
			ResourceType: string(item.ResourceType),
			InventoryID:  string(item.InventoryID),
		}
		if item.HotelInfo != nil {
			itemDoc.HotelInfo = &hotelInfoDocument{
				ResourceID: item.HotelInfo.ResourceID,
				Name:       item.HotelInfo.Name,
				Stars:      item.HotelInfo.Stars,
				Location:   locationDocument(item.HotelInfo.Location),
				Photos:     item.HotelInfo.Photos,
				Policies:   policiesDocument(item.HotelInfo.Policies),
			}
		}
		doc.Items = append(doc.Items, itemDoc)
	}
	return doc
}

func (d offerDocument) toDomain() *domainoffer.Offer {
	o := &domainoffer.Offer{
		ID:          domainoffer.OfferID(d.ID),
		Type:        domainoffer.Type(d.Type),
		Code:        d.Code,
		Slug:        d.Slug,
		Status:      domainoffer.Status(d.Status),
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   timestampToTime(d.CreatedAt),
		UpdatedAt:   timestampToTime(d.UpdatedAt),
	}
	if d.Markup != nil {
		o.Markup = &pricing.Markup{Type: pricing.MarkupType(d.Markup.Type), Value: d.Markup.Value}
	}
	for _, itemDoc := range d.Items {
		item := domainoffer.Item{
			ResourceType: catalog.ResourceType(itemDoc.ResourceType),
			InventoryID:  inventory.RecordID(itemDoc.InventoryID),
		}
		if itemDoc.HotelInfo != nil {
			item.HotelInfo = &domainoffer.HotelInfo{
				ResourceID: itemDoc.HotelInfo.ResourceID,
				Name:       itemDoc.HotelInfo.Name,
				Stars:      itemDoc.HotelInfo.Stars,
				Location:   catalog.Location(itemDoc.HotelInfo.Location),
				Photos:     itemDoc.HotelInfo.Photos,
				Policies:   catalog.Policies(itemDoc.HotelInfo.Policies),
			}
		}
		o.Items = append(o.Items, item)
	}
	return o
}
