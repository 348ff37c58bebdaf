package provider

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/jumplink/internal/domain"
	"github.com/MrSnakeDoc/jumplink/internal/logger"
)

// ResultCache stores provider results keyed by long URL.
type ResultCache interface {
	GetShortURL(ctx context.Context, longURL string) (string, error)
	CacheShortURL(ctx context.Context, longURL, shortURL string, ttl time.Duration) error
	Invalidate(ctx context.Context, longURL string) error
}

// Cached serves repeated long URLs from a cache before calling the provider.
// Cache errors are logged and otherwise ignored. A cached value that is no
// longer a usable short URL is dropped and the provider is asked again.
type Cached struct {
	next   Shortener
	cache  ResultCache
	ttl    time.Duration
	logger logger.Logger
}

func NewCached(next Shortener, cache ResultCache, ttl time.Duration, log logger.Logger) *Cached {
	return &Cached{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: log,
	}
}

func (c *Cached) Shorten(ctx context.Context, longURL string) (string, error) {
	cached, err := c.cache.GetShortURL(ctx, longURL)
	if err != nil {
		c.logger.Debug("provider cache lookup failed", logger.Error(err))
	} else if cached != "" {
		if domain.ValidShortURL(cached) {
			c.logger.Debug("provider cache hit", logger.String("url", longURL))
			return cached, nil
		}
		c.logger.Warn("dropping unusable cached provider result",
			logger.String("url", longURL),
			logger.String("cached", cached))
		if err := c.cache.Invalidate(ctx, longURL); err != nil {
			c.logger.Debug("failed to invalidate provider result", logger.Error(err))
		}
	}

	short, err := c.next.Shorten(ctx, longURL)
	if err != nil {
		return "", err
	}

	if err := c.cache.CacheShortURL(ctx, longURL, short, c.ttl); err != nil {
		c.logger.Debug("failed to cache provider result", logger.Error(err))
	}
	return short, nil
}
