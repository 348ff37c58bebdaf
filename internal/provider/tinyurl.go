package provider

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MrSnakeDoc/jumplink/internal/domain"
	"github.com/MrSnakeDoc/jumplink/internal/utils"
)

const (
	// DefaultTinyURLEndpoint returns the short URL as plain text.
	DefaultTinyURLEndpoint = "http://tinyurl.com/api-create.php"

	// maxBodyBytes caps how much of the response is read.
	maxBodyBytes = 2048
)

// TinyURL calls a TinyURL-compatible "api-create" endpoint.
type TinyURL struct {
	endpoint string
	client   *http.Client
}

// NewTinyURL builds a client whose every call is bounded by timeout.
// An empty endpoint selects DefaultTinyURLEndpoint.
func NewTinyURL(endpoint string, timeout time.Duration) *TinyURL {
	if endpoint == "" {
		endpoint = DefaultTinyURLEndpoint
	}

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: timeout,
			}).DialContext,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		},
	}

	return &TinyURL{
		endpoint: endpoint,
		client:   client,
	}
}

// Shorten makes a single GET to the endpoint and validates the plain-text body.
func (t *TinyURL) Shorten(ctx context.Context, longURL string) (string, error) {
	reqURL := t.endpoint + "?url=" + url.QueryEscape(longURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrProviderFailure, err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", ErrProviderFailure, err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrProviderFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read body: %v", ErrProviderFailure, err)
	}

	short := strings.TrimSpace(string(body))
	if !domain.ValidShortURL(short) {
		return "", fmt.Errorf("%w: invalid response %q", ErrProviderFailure, short)
	}

	return short, nil
}
