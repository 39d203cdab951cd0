package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
)

// ErrDuplicateOffer is returned when inserting an id, code or slug that is
// already taken.
var ErrDuplicateOffer = errors.New("memory: duplicate offer")

// OfferStore is an in-memory offer backend.
type OfferStore struct {
	mu    sync.RWMutex
	items map[domainoffer.OfferID]*domainoffer.Offer
}

func NewOfferStore() *OfferStore {
	return &OfferStore{items: make(map[domainoffer.OfferID]*domainoffer.Offer)}
}

func (s *OfferStore) BySlugOrCode(ctx context.Context, value string) (*domainoffer.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.items {
		if o.Slug == value || o.Code == value {
			return cloneOffer(o), nil
		}
	}
	return nil, domainoffer.ErrOfferNotFound
}

func (s *OfferStore) Find(ctx context.Context, filter domainoffer.Filter, page, limit int) (domainoffer.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]*domainoffer.Offer, 0, len(s.items))
	for _, o := range s.items {
		if filter.Type != "" && o.Type != filter.Type {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		matches = append(matches, o)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].Code < matches[j].Code
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	result := domainoffer.Page{Total: len(matches)}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = len(matches)
	}
	start := (page - 1) * limit
	if start >= len(matches) {
		return result, nil
	}
	end := start + limit
	if end > len(matches) {
		end = len(matches)
	}
	for _, o := range matches[start:end] {
		result.Items = append(result.Items, cloneOffer(o))
	}
	return result, nil
}

func (s *OfferStore) Insert(ctx context.Context, o *domainoffer.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[o.ID]; ok {
		return ErrDuplicateOffer
	}
	for _, existing := range s.items {
		if existing.Code == o.Code || (o.Slug != "" && existing.Slug == o.Slug) {
			return ErrDuplicateOffer
		}
	}
	s.items[o.ID] = cloneOffer(o)
	return nil
}

func (s *OfferStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.items {
		if o.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// cloneOffer hands out a private copy so read-time enrichment never mutates
// the stored document.
func cloneOffer(o *domainoffer.Offer) *domainoffer.Offer {
	clone := *o
	clone.Items = make([]domainoffer.Item, len(o.Items))
	for i, item := range o.Items {
		copied := item
		if item.HotelInfo != nil {
			info := *item.HotelInfo
			info.Photos = append([]string(nil), item.HotelInfo.Photos...)
			info.Amenities = append([]string(nil), item.HotelInfo.Amenities...)
			copied.HotelInfo = &info
		}
		copied.SelectedRooms = nil
		clone.Items[i] = copied
	}
	return &clone
}

var _ domainoffer.Store = (*OfferStore)(nil)
