package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/jumplink/internal/config"
	"github.com/MrSnakeDoc/jumplink/internal/httpserver"
	"github.com/MrSnakeDoc/jumplink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/jumplink/internal/logger"
	"github.com/MrSnakeDoc/jumplink/internal/provider"
	"github.com/MrSnakeDoc/jumplink/internal/redis"
	"github.com/MrSnakeDoc/jumplink/internal/registry"
	"github.com/MrSnakeDoc/jumplink/internal/sources/seed"
	redisstore "github.com/MrSnakeDoc/jumplink/internal/store/redis"
	"github.com/MrSnakeDoc/jumplink/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	registry    *registry.Registry
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis is optional: without it provider results are simply not cached.
	var redisClient *goredis.Client
	if cfg.RedisEnabled() {
		client, err := redis.Connect(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Warn("provider cache disabled, continuing without redis", logger.Error(err))
		} else {
			redisClient = client
		}
	}

	// Initialize shortening provider
	var (
		shortener     registry.Shortener // nil => fallback short URL for every link
		providerCache deps.Pinger
	)
	if cfg.ProviderEnabled {
		tiny := provider.NewTinyURL(cfg.ProviderURL, cfg.ProviderTimeout)
		shortener = tiny
		if redisClient != nil {
			store := redisstore.NewStore(redisClient)
			shortener = provider.NewCached(tiny, store, cfg.ProviderCacheTTL, loggerClient)
			providerCache = store
		}
		loggerClient.Info("shortening provider enabled",
			logger.String("endpoint", cfg.ProviderURL),
			logger.Duration("timeout", cfg.ProviderTimeout),
			logger.Bool("cached", providerCache != nil))
	} else {
		loggerClient.Info("shortening provider disabled, short links use the base URL",
			logger.String("base_url", cfg.BaseURL))
	}

	reg := registry.New(registry.Options{
		BaseURL:         cfg.BaseURL,
		CodeLength:      cfg.CodeLength,
		Provider:        shortener,
		ProviderTimeout: cfg.ProviderTimeout,
		Logger:          loggerClient.With(logger.String("component", "registry")),
	})

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		TrustProxy:      cfg.TrustProxy,
		Registry:        reg,
		ProviderEnabled: cfg.ProviderEnabled,
		ProviderCache:   providerCache,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		registry:    reg,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting jumplink %s on %s", version.String(), a.cfg.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.cfg.SeedFile != "" {
		if err := a.seed(ctx); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ jumplink stopped cleanly",
		logger.Int("links", a.registry.Len()))
	_ = a.logger.Sync()
	return nil
}

// seed creates the links listed in the configured seed file. A file that
// cannot be read aborts startup; individual bad entries are only logged.
func (a *App) seed(ctx context.Context) error {
	file, err := seed.NewLoader(a.cfg.SeedFile).Load()
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	created := seed.Apply(ctx, file, a.registry, a.logger)
	a.logger.Info("seed file applied",
		logger.String("file", a.cfg.SeedFile),
		logger.Int("created", created),
		logger.Int("entries", len(file.Links)))
	return nil
}
