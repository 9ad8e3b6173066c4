package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/opty-search/internal/metrics"
	"github.com/donaldgifford/opty-search/pkg/normalize"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

const (
	keyPrefix  = "opty:norm:"
	defaultTTL = 24 * time.Hour
)

// kvStore is the consumer interface the decorator needs from a store.
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedNormalizer wraps a Normalizer with a read-through cache. Cache
// failures are logged and never fail a normalization.
type CachedNormalizer struct {
	inner      normalize.Normalizer
	store      kvStore
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	log        *slog.Logger
}

// CachedNormalizerOption configures the CachedNormalizer.
type CachedNormalizerOption func(*CachedNormalizer)

// WithTTL sets how long a normalized term stays cached.
func WithTTL(d time.Duration) CachedNormalizerOption {
	return func(c *CachedNormalizer) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithCacheCounter overrides the hit/miss counter (label "result").
func WithCacheCounter(cv *prometheus.CounterVec) CachedNormalizerOption {
	return func(c *CachedNormalizer) {
		c.cacheTotal = cv
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) CachedNormalizerOption {
	return func(c *CachedNormalizer) {
		c.log = l
	}
}

// NewCachedNormalizer creates the caching decorator.
func NewCachedNormalizer(
	inner normalize.Normalizer,
	s kvStore,
	opts ...CachedNormalizerOption,
) *CachedNormalizer {
	c := &CachedNormalizer{
		inner:      inner,
		store:      s,
		ttl:        defaultTTL,
		cacheTotal: metrics.NormalizationCacheTotal,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Normalize returns the cached term for q or asks the inner normalizer.
// Only successful normalizations are cached.
func (c *CachedNormalizer) Normalize(
	ctx context.Context,
	q domain.SearchQuery,
) (domain.NormalizedQuery, error) {
	if strings.TrimSpace(string(q)) == "" {
		return c.inner.Normalize(ctx, q)
	}

	key := Key(q)

	if term, ok := c.get(ctx, key); ok {
		c.inc("hit")
		return term, nil
	}
	c.inc("miss")

	term, err := c.inner.Normalize(ctx, q)
	if err != nil {
		return "", err
	}

	if err := c.store.SetWithTTL(ctx, key, []byte(term), c.ttl); err != nil {
		c.log.Warn("caching normalized query failed", "key", key, "error", err)
	}

	return term, nil
}

// Key returns the cache key for q. Queries differing only in case or
// surrounding whitespace share a key.
func Key(q domain.SearchQuery) string {
	h := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(string(q)))))
	return keyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedNormalizer) get(ctx context.Context, key string) (domain.NormalizedQuery, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			c.log.Warn("reading normalization cache failed", "key", key, "error", err)
		}
		return "", false
	}
	if len(data) == 0 {
		return "", false
	}
	return domain.NormalizedQuery(data), true
}

func (c *CachedNormalizer) inc(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}
