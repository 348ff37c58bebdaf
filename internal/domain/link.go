package domain

import "time"

// LinkRecord represents one shortened link.
//
// The registry owns every LinkRecord. Values handed to callers are copies,
// so mutating them never affects the stored record.
type LinkRecord struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// Code is the short code and the unique registry key.
	// Example: k3x9qa
	Code string `json:"code"`

	// URL is the original destination.
	// Example: https://example.com/some/long/path
	URL string `json:"url"`

	// ShortURL is the externally visible short link, either issued by the
	// shortening provider or built as BASE_URL + "/" + Code.
	ShortURL string `json:"shortUrl"`

	// CreatedAt is the time the record was inserted.
	CreatedAt time.Time `json:"createdAt"`

	// ─────────────────────────────
	// Click tracking (only moves forward)
	// ─────────────────────────────

	// Clicks is the number of successful redirects.
	Clicks int64 `json:"clicks"`

	// LastClicked is the time of the most recent successful redirect.
	// Nil until the first redirect.
	LastClicked *time.Time `json:"lastClicked"`
}

// RecordClick increments the click counter and stamps the click time.
// A fresh pointer is assigned on every call so copies taken earlier keep
// their own timestamp.
func (l *LinkRecord) RecordClick(at time.Time) {
	l.Clicks++
	ts := at
	l.LastClicked = &ts
}
