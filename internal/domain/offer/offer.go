package offer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/pricing"
)

var (
	ErrCodeRequired     = errors.New("offer: code is required")
	ErrTitleRequired    = errors.New("offer: title is required")
	ErrUnknownType      = errors.New("offer: unknown offer type")
	ErrPackageInventory = errors.New("offer: package items must reference an inventory record")
	ErrInvalidState     = errors.New("offer: invalid status transition")
)

type OfferID string

type Type string

const (
	TypeHotel     Type = "hotel"
	TypeFlight    Type = "flight"
	TypePackage   Type = "package"
	TypeTransport Type = "transport"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// HotelInfo is the denormalized display copy an offer item carries. Missing
// fields are backfilled from the catalog at read time; amenities are always
// overwritten because they are not offer-overridable.
type HotelInfo struct {
	ResourceID string
	Name       string
	Stars      int
	Location   catalog.Location
	Photos     []string
	Amenities  []string
	Policies   catalog.Policies
}

// ResolvedRoom is derived at read time from the inventory record, the catalog
// room type and the offer markup. It is never persisted, which is what makes
// markup and inventory edits visible on the next read without invalidation.
type ResolvedRoom struct {
	RoomTypeID               string
	Name                     string
	Plan                     string
	CapacityPricesWithMarkup map[inventory.OccupancyKey]pricing.SellPrices
	Stock                    int
	Images                   []string
	Category                 string
	Occupancy                []string
	ViewType                 string
	Amenities                []string
	ValidFrom                time.Time
	ValidTo                  time.Time
}

// Item is one priced component of an offer.
type Item struct {
	ResourceType  catalog.ResourceType
	InventoryID   inventory.RecordID
	HotelInfo     *HotelInfo
	SellPrice     float64        // derived: flat components (flight/transport)
	SelectedRooms []ResolvedRoom // derived: hotel components
}

// Offer is the sellable unit: a single resource or a multi-resource package
// with one markup applied uniformly to every priced component.
type Offer struct {
	ID          OfferID
	Type        Type
	Code        string
	Slug        string
	Status      Status
	Title       string
	Description string
	Markup      *pricing.Markup
	Items       []Item
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateParams carries the fields accepted by New.
type CreateParams struct {
	ID     OfferID
	Type   Type
	Code   string
	Title  string
	Markup *pricing.Markup
	Items  []Item
	Now    time.Time
}

// New validates and builds a draft offer. The slug is allocated separately
// because uniqueness needs a store probe.
func New(params CreateParams) (*Offer, error) {
	switch params.Type {
	case TypeHotel, TypeFlight, TypePackage, TypeTransport:
	default:
		return nil, ErrUnknownType
	}
	if strings.TrimSpace(params.Code) == "" {
		return nil, ErrCodeRequired
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrTitleRequired
	}
	if params.Type == TypePackage {
		for _, item := range params.Items {
			if strings.TrimSpace(string(item.InventoryID)) == "" {
				return nil, ErrPackageInventory
			}
		}
	}
	now := params.Now.UTC()
	return &Offer{
		ID:        params.ID,
		Type:      params.Type,
		Code:      strings.TrimSpace(params.Code),
		Status:    StatusDraft,
		Title:     strings.TrimSpace(params.Title),
		Markup:    params.Markup,
		Items:     append([]Item(nil), params.Items...),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Publish moves a draft offer to published.
func (o *Offer) Publish(now time.Time) error {
	if o.Status == StatusPublished {
		return nil
	}
	if o.Status != StatusDraft {
		return ErrInvalidState
	}
	o.Status = StatusPublished
	o.UpdatedAt = now.UTC()
	return nil
}

// Archive retires an offer from sale.
func (o *Offer) Archive(now time.Time) error {
	if o.Status == StatusArchived {
		return nil
	}
	o.Status = StatusArchived
	o.UpdatedAt = now.UTC()
	return nil
}

var ErrOfferNotFound = errors.New("offer: not found")

// Filter narrows an offer listing.
type Filter struct {
	Type   Type
	Status Status
}

// Page is one page of a listing.
type Page struct {
	Items []*Offer
	Total int
}

// Store is the offer read/insert port. Reads never mutate persisted offers;
// derived fields are rebuilt by the caller.
type Store interface {
	BySlugOrCode(ctx context.Context, value string) (*Offer, error)
	Find(ctx context.Context, filter Filter, page, limit int) (Page, error)
	Insert(ctx context.Context, o *Offer) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}
