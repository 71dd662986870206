// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, retrieval, and scoring settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Retrieval contains job board fan-out configuration
	Retrieval RetrievalConfig

	// Glassdoor contains partner API credentials
	Glassdoor GlassdoorConfig

	// Scoring contains relevance scoring configuration
	Scoring ScoringConfig

	// Aggregation contains candidate filtering configuration
	Aggregation AggregationConfig

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per client per window.
	// Zero disables rate limiting.
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces cache keys so the instance can be shared
	KeyPrefix string
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file location
	Path string
}

// RetrievalConfig holds job board retrieval configuration
type RetrievalConfig struct {
	// Deadline is the overall retrieval budget across all platforms
	Deadline time.Duration

	// Concurrency is the maximum number of platforms retrieved in parallel
	Concurrency int64

	// MaxRetries is the number of attempts per tier for transient failures
	MaxRetries int
}

// GlassdoorConfig holds Glassdoor partner API credentials. Both fields empty
// means the partner API tier is skipped and only scraping tiers run.
type GlassdoorConfig struct {
	// PartnerID identifies the partner account
	PartnerID string

	// PartnerKey authenticates the partner account
	PartnerKey string
}

// HasPartnerCredentials reports whether the partner API tier can run.
func (g GlassdoorConfig) HasPartnerCredentials() bool {
	return g.PartnerID != "" && g.PartnerKey != ""
}

// ScoringConfig holds relevance scoring configuration
type ScoringConfig struct {
	// GeminiAPIKey authenticates against the scoring model. Empty means
	// rule-based scoring only.
	GeminiAPIKey string

	// GeminiModel is the model identifier
	GeminiModel string

	// BatchSize is how many jobs go to the provider per call
	BatchSize int

	// BatchTimeout bounds each provider call
	BatchTimeout time.Duration

	// CacheTTL is how long cached scores stay valid
	CacheTTL time.Duration
}

// AggregationConfig holds candidate filtering configuration
type AggregationConfig struct {
	// MinNatureMatches is the strict-filter floor below which nature
	// filtering broadens to the full candidate set
	MinNatureMatches int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 30),
			RateWindow: getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "jobfinder"),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "jobfinder-cache.db"),
			},
		},
		Retrieval: RetrievalConfig{
			Deadline:    getEnvAsDurationOrDefault("RETRIEVAL_DEADLINE", 30*time.Second),
			Concurrency: int64(getEnvAsIntOrDefault("RETRIEVAL_CONCURRENCY", 5)),
			MaxRetries:  getEnvAsIntOrDefault("RETRIEVAL_MAX_RETRIES", 3),
		},
		Glassdoor: GlassdoorConfig{
			PartnerID:  getEnvOrDefault("GLASSDOOR_PARTNER_ID", ""),
			PartnerKey: getEnvOrDefault("GLASSDOOR_PARTNER_KEY", ""),
		},
		Scoring: ScoringConfig{
			GeminiAPIKey: getEnvOrDefault("GEMINI_API_KEY", ""),
			GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
			BatchSize:    getEnvAsIntOrDefault("SCORING_BATCH_SIZE", 5),
			BatchTimeout: getEnvAsDurationOrDefault("SCORING_BATCH_TIMEOUT", 20*time.Second),
			CacheTTL:     getEnvAsDurationOrDefault("SCORING_CACHE_TTL", time.Hour),
		},
		Aggregation: AggregationConfig{
			MinNatureMatches: getEnvAsIntOrDefault("MIN_NATURE_MATCHES", 1),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable parsed as a
// Go duration string (e.g. "30s", "1m") or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Retrieval.Deadline <= 0 {
		return errors.New("retrieval deadline must be positive")
	}

	if c.Retrieval.Concurrency < 1 {
		return errors.New("retrieval concurrency must be at least 1")
	}

	if c.Scoring.BatchSize < 1 {
		return errors.New("scoring batch size must be at least 1")
	}

	return nil
}
