package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/jumplink/internal/domain"
	"github.com/MrSnakeDoc/jumplink/internal/logger"
)

var errMalformedShortURL = errors.New("provider returned a malformed short url")

type providerResult struct {
	shortURL string
	err      error
}

// shortenExternally makes one bounded attempt at the provider and returns
// the issued short URL, or "" when the fallback must be used.
func (r *Registry) shortenExternally(ctx context.Context, rawURL string) string {
	if r.provider == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, r.providerTimeout)
	defer cancel()

	// The call runs in its own goroutine so a provider that ignores ctx
	// still cannot hold the request past the timeout.
	done := make(chan providerResult, 1)
	go func() {
		short, err := r.provider.Shorten(ctx, rawURL)
		done <- providerResult{shortURL: short, err: err}
	}()

	var res providerResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res = providerResult{err: fmt.Errorf("provider call abandoned: %w", ctx.Err())}
	}

	if res.err == nil && !domain.ValidShortURL(res.shortURL) {
		res.err = fmt.Errorf("%w: %q", errMalformedShortURL, res.shortURL)
	}
	if res.err != nil {
		r.logger.Warn("shortening provider unavailable, using fallback short url",
			logger.String("url", rawURL),
			logger.Duration("timeout", r.providerTimeout),
			logger.Error(res.err))
		return ""
	}
	return res.shortURL
}
