package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"cabdesk/pricing"
	"cabdesk/utils"
)

// Addresses repeat constantly (airport runs, office commutes), so a short
// TTL still absorbs most of the Distance Matrix spend.
const segmentTTL = 15 * time.Minute

// SegmentResolver is the upstream lookup the cache wraps, satisfied by
// utils.DistanceMatrixClient.
type SegmentResolver interface {
	ResolveDistance(ctx context.Context, origin, destination string) (utils.SegmentResult, error)
}

// RouteCache serves resolved segments from redis before hitting the maps
// API. A nil or unreachable redis degrades to pass-through.
type RouteCache struct {
	rdb      *redis.Client
	resolver SegmentResolver
}

func NewRouteCache(rdb *redis.Client, resolver SegmentResolver) *RouteCache {
	return &RouteCache{rdb: rdb, resolver: resolver}
}

func segmentKey(origin, destination string) string {
	return fmt.Sprintf("routes:segment:%s|%s",
		strings.ToLower(strings.TrimSpace(origin)),
		strings.ToLower(strings.TrimSpace(destination)))
}

// Segment implements pricing.RouteSource.
func (c *RouteCache) Segment(ctx context.Context, origin, destination string) (pricing.Leg, error) {
	key := segmentKey(origin, destination)

	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
			var leg pricing.Leg
			if err := json.Unmarshal([]byte(cached), &leg); err == nil {
				return leg, nil
			}
		}
	}

	res, err := c.resolver.ResolveDistance(ctx, origin, destination)
	if err != nil {
		return pricing.Leg{}, err
	}

	leg := pricing.Leg{
		Origin:       res.Origin,
		Destination:  res.Destination,
		DistanceKm:   res.DistanceKm,
		DurationSecs: res.DurationSecs,
		DurationText: res.DurationText,
	}

	if c.rdb != nil {
		if payload, err := json.Marshal(leg); err == nil {
			// Cache write failures are not worth failing the estimate over.
			c.rdb.Set(ctx, key, payload, segmentTTL)
		}
	}
	return leg, nil
}
