package rediscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/obs"
)

// CatalogCache is a read-through layer over a catalog store. Only catalog
// documents are cached; derived pricing is always rebuilt from source, so a
// stale hotel description is the worst a TTL race can produce.
type CatalogCache struct {
	next   catalog.Store
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewCatalogCache(next catalog.Store, client *redis.Client, ttl time.Duration, log *slog.Logger) *CatalogCache {
	return &CatalogCache{next: next, client: client, ttl: ttl, log: log}
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func (c *CatalogCache) HotelsByIDs(ctx context.Context, ids []catalog.HotelID) ([]catalog.Hotel, error) {
	out := make([]catalog.Hotel, 0, len(ids))
	var missing []catalog.HotelID
	for _, id := range ids {
		hotel, ok := c.getHotel(ctx, id)
		if ok {
			out = append(out, hotel)
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := c.next.HotelsByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, hotel := range fetched {
		c.setHotel(ctx, hotel)
	}
	return append(out, fetched...), nil
}

// TransportsByIDs passes through: transport documents are tiny and rarely
// re-read within a TTL.
func (c *CatalogCache) TransportsByIDs(ctx context.Context, ids []string) ([]catalog.Transport, error) {
	return c.next.TransportsByIDs(ctx, ids)
}

func (c *CatalogCache) getHotel(ctx context.Context, id catalog.HotelID) (catalog.Hotel, bool) {
	raw, err := c.client.Get(ctx, hotelKey(id)).Bytes()
	if err == redis.Nil {
		obs.ObserveCache("redis", "miss")
		return catalog.Hotel{}, false
	}
	if err != nil {
		// cache outage degrades to source reads
		if c.log != nil {
			c.log.Warn("catalog cache read failed", "hotel", string(id), "error", err)
		}
		return catalog.Hotel{}, false
	}
	var hotel catalog.Hotel
	if err := json.Unmarshal(raw, &hotel); err != nil {
		return catalog.Hotel{}, false
	}
	obs.ObserveCache("redis", "hit")
	return hotel, true
}

func (c *CatalogCache) setHotel(ctx context.Context, hotel catalog.Hotel) {
	raw, err := json.Marshal(hotel)
	if err != nil {
		return
	}
	obs.ObserveCache("redis", "set")
	if err := c.client.Set(ctx, hotelKey(hotel.ID), raw, c.ttl).Err(); err != nil && c.log != nil {
		c.log.Warn("catalog cache write failed", "hotel", string(hotel.ID), "error", err)
	}
}

func hotelKey(id catalog.HotelID) string {
	return "catalog:hotel:" + string(id)
}

var _ catalog.Store = (*CatalogCache)(nil)
