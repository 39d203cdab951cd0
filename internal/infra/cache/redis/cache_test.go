package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/storage/memory"
)

type countingStore struct {
	inner *memory.CatalogStore
	hits  int
}

func (s *countingStore) HotelsByIDs(ctx context.Context, ids []catalog.HotelID) ([]catalog.Hotel, error) {
	s.hits++
	return s.inner.HotelsByIDs(ctx, ids)
}

func (s *countingStore) TransportsByIDs(ctx context.Context, ids []string) ([]catalog.Transport, error) {
	return s.inner.TransportsByIDs(ctx, ids)
}

func newCacheFixture(t *testing.T) (*CatalogCache, *countingStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	source := &countingStore{inner: memory.NewCatalogStore()}
	source.inner.PutHotel(catalog.Hotel{ID: "htl-1", Name: "Cancún Palms Resort", Stars: 5})
	cache := NewCatalogCache(source, NewClient(server.Addr(), "", 0), time.Minute, nil)
	return cache, source, server
}

func TestHotelsByIDsReadThrough(t *testing.T) {
	cache, source, server := newCacheFixture(t)
	ctx := context.Background()

	first, err := cache.HotelsByIDs(ctx, []catalog.HotelID{"htl-1"})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, source.hits)
	assert.True(t, server.Exists("catalog:hotel:htl-1"))

	second, err := cache.HotelsByIDs(ctx, []catalog.HotelID{"htl-1"})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Cancún Palms Resort", second[0].Name)
	// served from cache, source untouched
	assert.Equal(t, 1, source.hits)
}

func TestHotelsByIDsExpiredEntryRefetches(t *testing.T) {
	cache, source, server := newCacheFixture(t)
	ctx := context.Background()

	_, err := cache.HotelsByIDs(ctx, []catalog.HotelID{"htl-1"})
	require.NoError(t, err)
	server.FastForward(2 * time.Minute)

	_, err = cache.HotelsByIDs(ctx, []catalog.HotelID{"htl-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, source.hits)
}

func TestHotelsByIDsOutageDegradesToSource(t *testing.T) {
	cache, source, server := newCacheFixture(t)
	server.Close()

	hotels, err := cache.HotelsByIDs(context.Background(), []catalog.HotelID{"htl-1"})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, 1, source.hits)
}

func TestHotelsByIDsMissingHotelOmitted(t *testing.T) {
	cache, _, _ := newCacheFixture(t)

	hotels, err := cache.HotelsByIDs(context.Background(), []catalog.HotelID{"htl-1", "htl-gone"})
	require.NoError(t, err)
	assert.Len(t, hotels, 1)
}

func TestTransportsByIDsPassesThrough(t *testing.T) {
	cache, source, _ := newCacheFixture(t)
	source.inner.PutTransport(catalog.Transport{ID: "trp-1", Name: "Shuttle"})

	transports, err := cache.TransportsByIDs(context.Background(), []string{"trp-1"})
	require.NoError(t, err)
	require.Len(t, transports, 1)
	assert.Equal(t, "Shuttle", transports[0].Name)
}
