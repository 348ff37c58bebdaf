// Package provider talks to the external URL-shortening service.
//
// Every implementation reports failures wrapped around ErrProviderFailure.
// Callers treat any error as "no result" and build their own short URL.
package provider

import (
	"context"
	"errors"
)

// ErrProviderFailure marks any failed, timed out or malformed provider call.
var ErrProviderFailure = errors.New("shortening provider failure")

// Shortener turns a long URL into a provider-issued short URL.
type Shortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}
