// Package registry owns the in-memory mapping from short code to link record.
//
// All mutations are serialized behind a single RWMutex. The only blocking
// work, the call to the external shortening provider, happens before the
// lock is taken so a slow provider never delays redirects.
package registry

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/jumplink/internal/domain"
	"github.com/MrSnakeDoc/jumplink/internal/logger"
)

// DefaultProviderTimeout bounds a single provider call when none is configured.
const DefaultProviderTimeout = 3 * time.Second

// Shortener is the external shortening provider as seen by the registry.
type Shortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

// Options configures a Registry.
type Options struct {
	BaseURL         string               // prefix of fallback short URLs, no trailing slash
	CodeLength      int                  // length of generated codes (default 6)
	Provider        Shortener            // nil => fallback for every link
	ProviderTimeout time.Duration        // bound on one provider call (default 3s)
	NewCode         domain.CodeGenerator // nil => random base-36 of CodeLength
	Now             func() time.Time     // nil => time.Now
	Logger          logger.Logger        // nil => no-op
}

// Registry stores link records keyed by code.
type Registry struct {
	mu    sync.RWMutex
	links map[string]*domain.LinkRecord // code -> record

	baseURL         string
	provider        Shortener
	providerTimeout time.Duration
	newCode         domain.CodeGenerator
	now             func() time.Time
	logger          logger.Logger
}

// New creates an empty registry.
func New(opts Options) *Registry {
	if opts.ProviderTimeout <= 0 {
		opts.ProviderTimeout = DefaultProviderTimeout
	}
	if opts.NewCode == nil {
		opts.NewCode = domain.NewCodeGenerator(opts.CodeLength)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}

	return &Registry{
		links:           make(map[string]*domain.LinkRecord),
		baseURL:         opts.BaseURL,
		provider:        opts.Provider,
		providerTimeout: opts.ProviderTimeout,
		newCode:         opts.NewCode,
		now:             opts.Now,
		logger:          opts.Logger,
	}
}

// CreateLink validates rawURL, allocates a unique code and stores a new record.
//
// A non-empty requestedCode is tried first. If it is already taken it is
// silently replaced by a generated code. Provider failures never fail the
// call; the short URL then falls back to BaseURL + "/" + code.
func (r *Registry) CreateLink(ctx context.Context, rawURL, requestedCode string) (domain.LinkRecord, error) {
	if !domain.ValidLinkURL(rawURL) {
		return domain.LinkRecord{}, domain.ErrInvalidInput
	}

	providerURL := r.shortenExternally(ctx, rawURL)
	return r.insert(rawURL, requestedCode, providerURL), nil
}

// CreateLocalLink is CreateLink without the provider call: the short URL is
// always the BaseURL fallback. Used for bulk imports at startup.
func (r *Registry) CreateLocalLink(rawURL, requestedCode string) (domain.LinkRecord, error) {
	if !domain.ValidLinkURL(rawURL) {
		return domain.LinkRecord{}, domain.ErrInvalidInput
	}
	return r.insert(rawURL, requestedCode, ""), nil
}

// insert allocates the final code and stores the record. An empty
// providerURL selects the fallback short URL.
func (r *Registry) insert(rawURL, requestedCode, providerURL string) domain.LinkRecord {
	r.mu.Lock()
	code := requestedCode
	if code == "" {
		code = r.newCode()
	}
	for r.exists(code) {
		code = r.newCode()
	}

	shortURL := providerURL
	if shortURL == "" {
		shortURL = r.fallbackShortURL(code)
	}

	record := &domain.LinkRecord{
		Code:      code,
		URL:       rawURL,
		ShortURL:  shortURL,
		CreatedAt: r.now(),
	}
	r.links[code] = record
	out := *record
	r.mu.Unlock()

	if requestedCode != "" && requestedCode != code {
		r.logger.Debug("requested code already taken, generated a new one",
			logger.String("requested", requestedCode),
			logger.String("code", code))
	}
	r.logger.Info("link created",
		logger.String("code", code),
		logger.String("url", rawURL),
		logger.Bool("provider", providerURL != ""))

	return out
}

// ListLinks returns a snapshot of every record keyed by code.
func (r *Registry) ListLinks() map[string]domain.LinkRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]domain.LinkRecord, len(r.links))
	for code, record := range r.links {
		snapshot[code] = *record
	}
	return snapshot
}

// GetLink returns a copy of the record for code.
func (r *Registry) GetLink(code string) (domain.LinkRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.links[code]
	if !ok {
		return domain.LinkRecord{}, domain.ErrNotFound
	}
	return *record, nil
}

// DeleteLink removes the record for code.
func (r *Registry) DeleteLink(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.exists(code) {
		return domain.ErrNotFound
	}
	delete(r.links, code)
	return nil
}

// ResolveAndRecordClick returns the destination for code and records the click.
func (r *Registry) ResolveAndRecordClick(code string) (string, error) {
	r.mu.Lock()
	record, ok := r.links[code]
	if !ok {
		r.mu.Unlock()
		return "", domain.ErrNotFound
	}
	record.RecordClick(r.now())
	target, clicks := record.URL, record.Clicks
	r.mu.Unlock()

	r.logger.Debug("click recorded",
		logger.String("code", code),
		logger.Int64("clicks", clicks))
	return target, nil
}

// Len returns the number of stored records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.links)
}

// exists must be called with r.mu held.
func (r *Registry) exists(code string) bool {
	_, ok := r.links[code]
	return ok
}

func (r *Registry) fallbackShortURL(code string) string {
	return r.baseURL + "/" + code
}
