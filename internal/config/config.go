package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":3000"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request deadline applied by the router
	TrustProxy      bool          // true => access logs resolve client IP from proxy headers

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	BaseURL    string // prefix of fallback short links, no trailing slash
	CodeLength int    // length of generated codes
	SeedFile   string // optional YAML file of links created at startup

	// Shortening provider
	ProviderEnabled  bool          // false => every link uses the fallback short URL
	ProviderURL      string        // ex: http://tinyurl.com/api-create.php
	ProviderTimeout  time.Duration // bound on a single provider call
	ProviderCacheTTL time.Duration // TTL of cached provider results in Redis

	// Redis (optional, provider-result cache)
	RedisAddr           string        // empty => cache disabled
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 2s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 10s)
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
}

const (
	minCodeLength = 4
	maxCodeLength = 32
)

func Load() *Config {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("JUMPLINK_LISTEN_PORT", ":3000"),
		ShutdownTimeout: mustDuration("JUMPLINK_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("JUMPLINK_REQUEST_TIMEOUT", 10*time.Second),
		TrustProxy:      mustBool("JUMPLINK_TRUST_PROXY", false),

		// Logging
		LogLevel:  getenv("JUMPLINK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("JUMPLINK_PRETTY_LOG", true),

		// Links
		BaseURL:    normalizeBaseURL(getenv("JUMPLINK_BASE_URL", "https://saiaroma.netlify.app")),
		CodeLength: getenvInt("JUMPLINK_CODE_LENGTH", 6),
		SeedFile:   getenv("JUMPLINK_SEED_FILE", ""),

		// Provider
		ProviderEnabled:  mustBool("JUMPLINK_PROVIDER_ENABLED", true),
		ProviderURL:      getenv("JUMPLINK_PROVIDER_URL", "http://tinyurl.com/api-create.php"),
		ProviderTimeout:  mustDuration("JUMPLINK_PROVIDER_TIMEOUT", 3*time.Second),
		ProviderCacheTTL: mustDuration("JUMPLINK_PROVIDER_CACHE_TTL", 24*time.Hour),

		// Redis settings
		RedisAddr:           getenv("JUMPLINK_REDIS_ADDR", ""),
		RedisUser:           getenv("JUMPLINK_REDIS_USERNAME", ""),
		RedisPassword:       getenv("JUMPLINK_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("JUMPLINK_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 5*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 2*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 10*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 1*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// Validate checks values that would otherwise produce broken links.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("JUMPLINK_BASE_URL must start with http:// or https://, got %q", c.BaseURL)
	}
	if c.CodeLength < minCodeLength || c.CodeLength > maxCodeLength {
		return fmt.Errorf("JUMPLINK_CODE_LENGTH must be between %d and %d, got %d",
			minCodeLength, maxCodeLength, c.CodeLength)
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("JUMPLINK_PROVIDER_TIMEOUT must be > 0, got %v", c.ProviderTimeout)
	}
	// The router deadline would otherwise cut creation short before the fallback.
	if c.RequestTimeout <= c.ProviderTimeout {
		return fmt.Errorf("JUMPLINK_REQUEST_TIMEOUT (%v) must exceed JUMPLINK_PROVIDER_TIMEOUT (%v)",
			c.RequestTimeout, c.ProviderTimeout)
	}
	return nil
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// normalizeBaseURL trims whitespace, surrounding quotes and trailing slashes.
// Example: `"https://sho.rt/"` -> https://sho.rt
func normalizeBaseURL(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimRight(s, "/")
}
