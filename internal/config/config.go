package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SeedFile       string        // path to the records.yaml seed file
	ReloadInterval time.Duration // interval to reload the seed file (default: 24h)

	RequestTimeout time.Duration // per-request handler timeout

	// Rate limiting (per client IP)
	RateBurst         int  // bucket capacity
	RateRefillPerMin  int  // tokens refilled per minute
	TrustProxy        bool // true => resolve client IP from X-Forwarded-For
	RateLimitDisabled bool // true => no rate limiting (dev/local)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // redis DB number
	RedisDT               time.Duration // dial timeout (ex: 5s)
	RedisRT               time.Duration // read timeout (ex: 3s)
	RedisWT               time.Duration // write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between connect retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // connection pool size
	RedisConnectTimeout   time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // initial wait between retries (ex: 2s, grows exponentially)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SWIMREC_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SWIMREC_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("SWIMREC_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("SWIMREC_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SWIMREC_PRETTY_LOG", true),

		// Records seed
		SeedFile:       getenv("SWIMREC_SEED_FILE", "/app/records.yaml"),
		ReloadInterval: mustDuration("SWIMREC_RELOAD_INTERVAL", 24*time.Hour),

		// Rate limiting
		RateBurst:         getenvInt("SWIMREC_RATE_BURST", 20),
		RateRefillPerMin:  getenvInt("SWIMREC_RATE_REFILL_PER_MIN", 60),
		TrustProxy:        mustBool("SWIMREC_TRUST_PROXY", false),
		RateLimitDisabled: mustBool("SWIMREC_RATE_LIMIT_DISABLED", false),

		// Redis settings
		RedisAddr:             requireEnv("SWIMREC_REDIS_ADDR"),
		RedisUser:             getenv("SWIMREC_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("SWIMREC_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("SWIMREC_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("SWIMREC_REDIS_DB", 0),
		RedisDT:               mustDuration("SWIMREC_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("SWIMREC_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("SWIMREC_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("SWIMREC_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("SWIMREC_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("SWIMREC_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("SWIMREC_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("SWIMREC_REDIS_RETRY_INTERVAL", 2*time.Second),
	}

	// Validate redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("FATAL: SWIMREC_REDIS_PASSWORD is required when SWIMREC_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: Required environment variable %s is not set", key))
	}
	return v
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
