package offers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lndominguez/apexutravel-sub004/internal/app/commands"
	"github.com/lndominguez/apexutravel-sub004/internal/app/dto"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/pricing"
)

const createOfferKey = "offers.create"

// EventPublisher is the outbound port for offer lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

// CreateOfferItem is one raw item of the create request.
type CreateOfferItem struct {
	ResourceType string
	InventoryID  string
	HotelID      string
}

// CreateOfferCommand creates a draft offer with a freshly allocated slug.
type CreateOfferCommand struct {
	Type        string
	Code        string
	Title       string
	MarkupType  string
	MarkupValue float64
	Items       []CreateOfferItem
}

func (c CreateOfferCommand) Key() string { return createOfferKey }

// CreateOfferHandler validates the request, allocates a unique slug and
// persists the draft. Offer creation is admin-driven and low frequency; the
// slug probe is a plain linear scan against the store.
type CreateOfferHandler struct {
	Offers    domainoffer.Store
	Slugs     *SlugAllocator
	Publisher EventPublisher
	Topic     string
	Log       *slog.Logger
	Now       func() time.Time
}

func (h *CreateOfferHandler) Handle(ctx context.Context, cmd CreateOfferCommand) (dto.OfferDetail, error) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	items := make([]domainoffer.Item, 0, len(cmd.Items))
	for _, raw := range cmd.Items {
		item := domainoffer.Item{
			ResourceType: catalog.ResourceType(raw.ResourceType),
			InventoryID:  inventory.RecordID(raw.InventoryID),
		}
		if raw.HotelID != "" {
			item.HotelInfo = &domainoffer.HotelInfo{ResourceID: raw.HotelID}
		}
		items = append(items, item)
	}

	var markup *pricing.Markup
	if cmd.MarkupValue != 0 {
		markup = &pricing.Markup{Type: pricing.MarkupType(cmd.MarkupType), Value: cmd.MarkupValue}
	}

	o, err := domainoffer.New(domainoffer.CreateParams{
		ID:     domainoffer.OfferID(uuid.NewString()),
		Type:   domainoffer.Type(cmd.Type),
		Code:   cmd.Code,
		Title:  cmd.Title,
		Markup: markup,
		Items:  items,
		Now:    now(),
	})
	if err != nil {
		return dto.OfferDetail{}, err
	}

	slug, err := h.Slugs.Allocate(ctx, o.Title)
	if err != nil {
		return dto.OfferDetail{}, fmt.Errorf("allocate slug: %w", err)
	}
	o.Slug = slug

	if err := h.Offers.Insert(ctx, o); err != nil {
		return dto.OfferDetail{}, err
	}

	h.publishCreated(ctx, o)
	return dto.MapOfferDetail(o), nil
}

// publishCreated emits the lifecycle event on a best-effort basis: a broker
// outage must not fail an admin save.
func (h *CreateOfferHandler) publishCreated(ctx context.Context, o *domainoffer.Offer) {
	if h.Publisher == nil {
		return
	}
	payload, err := json.Marshal(offerCreatedEvent{
		OfferID:   string(o.ID),
		Code:      o.Code,
		Slug:      o.Slug,
		Type:      string(o.Type),
		CreatedAt: o.CreatedAt,
	})
	if err != nil {
		return
	}
	if err := h.Publisher.Publish(ctx, h.Topic, string(o.ID), payload); err != nil && h.Log != nil {
		h.Log.Warn("offer event publish failed", "offer", o.Code, "error", err)
	}
}

type offerCreatedEvent struct {
	OfferID   string    `json:"offer_id"`
	Code      string    `json:"code"`
	Slug      string    `json:"slug"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

var _ commands.Handler[CreateOfferCommand, dto.OfferDetail] = (*CreateOfferHandler)(nil)
