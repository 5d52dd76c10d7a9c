// AngelaMos | 2026
// tier.go

package subscription

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/middleware"
)

// TierCache keeps effective tiers in Redis so the rate limiter does not read
// the subscriptions table on every request. A nil cache is valid and misses.
type TierCache struct {
	rdb *core.Redis
	ttl time.Duration
}

func NewTierCache(rdb *core.Redis, ttl time.Duration) *TierCache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &TierCache{rdb: rdb, ttl: ttl}
}

func (c *TierCache) key(subject string) string {
	return c.rdb.Key("tier", subject)
}

func (c *TierCache) get(ctx context.Context, subject string) (string, bool) {
	if c == nil {
		return "", false
	}
	tier, err := c.rdb.Client.Get(ctx, c.key(subject)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			core.SetSpanError(ctx, err)
		}
		return "", false
	}
	return tier, true
}

func (c *TierCache) set(ctx context.Context, subject, tier string) {
	if c == nil {
		return
	}
	if err := c.rdb.Client.Set(ctx, c.key(subject), tier, c.ttl).Err(); err != nil {
		core.SetSpanError(ctx, err)
	}
}

func (c *TierCache) forget(ctx context.Context, subject string) {
	if c == nil {
		return
	}
	if err := c.rdb.Client.Del(ctx, c.key(subject)).Err(); err != nil {
		core.SetSpanError(ctx, err)
	}
}

// Tier returns the effective tier of subject.
func (s *Service) Tier(ctx context.Context, subject string) (string, error) {
	if tier, ok := s.tiers.get(ctx, subject); ok {
		return tier, nil
	}

	v, err := s.Get(ctx, subject)
	if err != nil {
		return "", err
	}

	tier := v.EffectiveTier()
	s.tiers.set(ctx, subject, tier)
	return tier, nil
}

// TierMiddleware stores the caller's effective tier for
// middleware.TieredRateLimiter. A failed lookup serves the caller as free.
func TierMiddleware(svc *Service, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tier := TierFree
			if subject := middleware.GetSubject(r.Context()); subject != "" {
				found, err := svc.Tier(r.Context(), subject)
				if err != nil {
					logger.WarnContext(r.Context(), "subscription tier lookup failed",
						"subject", subject,
						"error", err,
					)
				} else {
					tier = found
				}
			}

			ctx := middleware.WithUserTier(r.Context(), tier)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
