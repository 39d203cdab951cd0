package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
)

func storedOffer(id, code, slug string, created time.Time) *domainoffer.Offer {
	return &domainoffer.Offer{
		ID:        domainoffer.OfferID(id),
		Type:      domainoffer.TypeHotel,
		Code:      code,
		Slug:      slug,
		Status:    domainoffer.StatusPublished,
		Title:     code,
		CreatedAt: created,
	}
}

func TestOfferStoreInsertRejectsDuplicates(t *testing.T) {
	store := NewOfferStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Insert(ctx, storedOffer("o1", "C-1", "playa", now)))
	assert.ErrorIs(t, store.Insert(ctx, storedOffer("o1", "C-2", "otra", now)), ErrDuplicateOffer)
	assert.ErrorIs(t, store.Insert(ctx, storedOffer("o2", "C-1", "otra", now)), ErrDuplicateOffer)
	assert.ErrorIs(t, store.Insert(ctx, storedOffer("o3", "C-3", "playa", now)), ErrDuplicateOffer)
}

func TestOfferStoreFindPaginatesNewestFirst(t *testing.T) {
	store := NewOfferStore()
	ctx := context.Background()
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	for i, code := range []string{"C-1", "C-2", "C-3"} {
		require.NoError(t, store.Insert(ctx, storedOffer(code, code, "slug-"+code, base.Add(time.Duration(i)*time.Hour))))
	}

	page, err := store.Find(ctx, domainoffer.Filter{Status: domainoffer.StatusPublished}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "C-3", page.Items[0].Code)
	assert.Equal(t, "C-2", page.Items[1].Code)

	page, err = store.Find(ctx, domainoffer.Filter{Status: domainoffer.StatusPublished}, 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "C-1", page.Items[0].Code)
}

func TestOfferStoreReadsReturnPrivateCopies(t *testing.T) {
	store := NewOfferStore()
	ctx := context.Background()

	o := storedOffer("o1", "C-1", "playa", time.Now())
	o.Items = []domainoffer.Item{{
		ResourceType:  catalog.ResourceHotel,
		InventoryID:   "inv-1",
		SelectedRooms: []domainoffer.ResolvedRoom{{Name: "Stale"}},
	}}
	require.NoError(t, store.Insert(ctx, o))

	got, err := store.BySlugOrCode(ctx, "playa")
	require.NoError(t, err)
	// derived rooms are never handed back from storage
	assert.Empty(t, got.Items[0].SelectedRooms)

	got.Title = "mutated"
	again, err := store.BySlugOrCode(ctx, "C-1")
	require.NoError(t, err)
	assert.Equal(t, "C-1", again.Title)
}

func TestOfferStoreSlugExists(t *testing.T) {
	store := NewOfferStore()
	ctx := context.Background()
	require.NoError(t, store.Insert(ctx, storedOffer("o1", "C-1", "playa", time.Now())))

	taken, err := store.SlugExists(ctx, "playa")
	require.NoError(t, err)
	assert.True(t, taken)

	free, err := store.SlugExists(ctx, "libre")
	require.NoError(t, err)
	assert.False(t, free)
}

func TestOfferStoreBySlugOrCodeNotFound(t *testing.T) {
	store := NewOfferStore()
	_, err := store.BySlugOrCode(context.Background(), "nope")
	assert.ErrorIs(t, err, domainoffer.ErrOfferNotFound)
}
