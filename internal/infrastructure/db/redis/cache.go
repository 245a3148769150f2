package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teedesigner/design-api/internal/core/domain"
)

const (
	listingKey = "designs:public"
	listingTTL = time.Minute
)

// ListingCache caches the public design listing as a single JSON blob with a
// short TTL. Every design write invalidates it, so staleness is bounded by
// one TTL window even if an invalidation is missed.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get returns the cached listing, or (nil, nil) on a cache miss.
func (c *ListingCache) Get(ctx context.Context) ([]*domain.Design, error) {
	raw, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing cache get: %w", err)
	}

	var designs []*domain.Design
	if err := json.Unmarshal(raw, &designs); err != nil {
		return nil, fmt.Errorf("listing cache decode: %w", err)
	}
	return designs, nil
}

// Set stores the listing, replacing any previous value.
func (c *ListingCache) Set(ctx context.Context, designs []*domain.Design) error {
	raw, err := json.Marshal(designs)
	if err != nil {
		return fmt.Errorf("listing cache encode: %w", err)
	}
	return c.client.Set(ctx, listingKey, raw, listingTTL).Err()
}

// Invalidate drops the cached listing.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listingKey).Err()
}
