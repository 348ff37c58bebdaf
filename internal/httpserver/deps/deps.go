package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/jumplink/internal/logger"
	"github.com/MrSnakeDoc/jumplink/internal/registry"
)

// Pinger is satisfied by the Redis-backed provider cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time   // for testing, defaults to time.Now
	TrustProxy      bool               // true if running behind a trusted reverse proxy
	Registry        *registry.Registry // link registry shared by every handler
	ProviderEnabled bool               // false => all short links use the base URL
	ProviderCache   Pinger             // nil when the Redis provider cache is disabled
}
