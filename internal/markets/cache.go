package markets

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	pkgredis "github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/redis"
)

// CachedClient wraps another client with a Redis TTL cache. Only success
// envelopes are cached; failures always pass through so retries reach the
// source. Redis errors degrade to an uncached call.
type CachedClient struct {
	inner Client
	rc    *pkgredis.Client
	ttl   time.Duration
}

// NewCachedClient wraps inner with the given cache TTL.
func NewCachedClient(inner Client, rc *pkgredis.Client, ttl time.Duration) *CachedClient {
	return &CachedClient{inner: inner, rc: rc, ttl: ttl}
}

func (c *CachedClient) MarketDataPoints(ctx context.Context) Envelope[[]models.MarketDataPoint] {
	return cached(ctx, c, "tesah:markets:points", c.inner.MarketDataPoints)
}

func (c *CachedClient) EconomicIndicators(ctx context.Context) Envelope[[]models.EconomicIndicator] {
	return cached(ctx, c, "tesah:markets:indicators", c.inner.EconomicIndicators)
}

func (c *CachedClient) MarketIndexHistory(ctx context.Context) Envelope[[]models.IndexPoint] {
	return cached(ctx, c, "tesah:markets:history", c.inner.MarketIndexHistory)
}

func cached[T any](ctx context.Context, c *CachedClient, key string, load func(context.Context) Envelope[T]) Envelope[T] {
	if raw, err := c.rc.Get(ctx, key); err == nil && raw != "" {
		var env Envelope[T]
		if json.Unmarshal([]byte(raw), &env) == nil && env.Success {
			return env
		}
	}

	env := load(ctx)
	if env.Success {
		if raw, err := json.Marshal(env); err == nil {
			_ = c.rc.Set(ctx, key, raw, c.ttl)
		}
	}
	return env
}

var _ Client = (*CachedClient)(nil)
