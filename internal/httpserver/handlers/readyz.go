package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/jumplink/internal/httpserver/deps"
)

const cachePingTimeout = 2 * time.Second

type componentStatus struct {
	OK    bool   `json:"ok"`
	Mode  string `json:"mode,omitempty"`
	Error string `json:"error,omitempty"`
}

type readyzResponse struct {
	Ready         bool                       `json:"ready"`
	Links         int                        `json:"links"`
	UptimeSeconds float64                    `json:"uptime_seconds"`
	Commit        string                     `json:"commit,omitempty"`
	BuildDate     string                     `json:"build_date,omitempty"`
	GoVersion     string                     `json:"go_version,omitempty"`
	Components    map[string]componentStatus `json:"components"`
}

// Readyz reports the registry size and how short URLs are being issued.
// The service is always ready: provider and cache failures only degrade
// short links to the base-URL fallback.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now
		if d.TimeNow != nil {
			now = d.TimeNow
		}

		writeJSON(w, http.StatusOK, readyzResponse{
			Ready:         true,
			Links:         d.Registry.Len(),
			UptimeSeconds: now().Sub(d.StartTime).Seconds(),
			Commit:        d.Commit,
			BuildDate:     d.BuildDate,
			GoVersion:     d.GoVersion,
			Components: map[string]componentStatus{
				"registry": {OK: true, Mode: "in-memory"},
				"provider": providerStatus(r.Context(), d),
			},
		})
	}
}

func providerStatus(ctx context.Context, d deps.Deps) componentStatus {
	if !d.ProviderEnabled {
		return componentStatus{OK: true, Mode: "fallback-only"}
	}
	if d.ProviderCache == nil {
		return componentStatus{OK: true, Mode: "direct"}
	}

	ctx, cancel := context.WithTimeout(ctx, cachePingTimeout)
	defer cancel()

	if err := d.ProviderCache.Ping(ctx); err != nil {
		return componentStatus{OK: false, Mode: "degraded", Error: err.Error()}
	}
	return componentStatus{OK: true, Mode: "cached"}
}
