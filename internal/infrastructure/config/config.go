package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

// Store backends selectable through STORE_BACKEND.
const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
	StoreBackendMongo  = "mongo"
	StoreBackendSQLite = "sqlite"
)

// Config holds application configuration values.
type Config struct {
	Port               string
	AppBaseURL         string
	StoreBackend       string
	RedisURL           string
	MongoURI           string
	MongoDBName        string
	SQLitePath         string
	VoteKeyTTL         time.Duration
	Location           *time.Location
	WishesFile         string
	OGCacheMaxAge      time.Duration
	RateLimitPerSecond float64
	LogLevel           string
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		AppBaseURL:         strings.TrimRight(getEnv("APP_BASE_URL", ""), "/"),
		StoreBackend:       strings.ToLower(getEnv("STORE_BACKEND", StoreBackendMemory)),
		RedisURL:           getEnv("REDIS_URL", ""),
		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDBName:        getEnv("MONGODB_DB_NAME", "daily_wishes"),
		SQLitePath:         getEnv("SQLITE_PATH", "daily_wishes.db"),
		VoteKeyTTL:         time.Hour * time.Duration(getEnvAsInt("VOTE_KEY_TTL_HOURS", 48)),
		Location:           getEnvAsLocation("TIMEZONE", time.UTC),
		WishesFile:         getEnv("WISHES_FILE", ""),
		OGCacheMaxAge:      time.Second * time.Duration(getEnvAsInt("OG_CACHE_MAX_AGE_SECONDS", 60)),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}
}

// GetPort returns the HTTP listen port.
func (c *Config) GetPort() string {
	return c.Port
}

// GetAppBaseURL returns the public base URL, or "" to derive it from each request.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

func (c *Config) GetStoreBackend() string {
	return c.StoreBackend
}

func (c *Config) GetRedisURL() string {
	return c.RedisURL
}

func (c *Config) GetMongoURI() string {
	return c.MongoURI
}

func (c *Config) GetMongoDBName() string {
	return c.MongoDBName
}

func (c *Config) GetSQLitePath() string {
	return c.SQLitePath
}

// GetVoteKeyTTL returns how long vote keys are kept in the store.
func (c *Config) GetVoteKeyTTL() time.Duration {
	return c.VoteKeyTTL
}

// GetLocation returns the time zone that decides when a new wish day starts.
func (c *Config) GetLocation() *time.Location {
	return c.Location
}

func (c *Config) GetWishesFile() string {
	return c.WishesFile
}

// GetOGCacheMaxAge returns the Cache-Control max-age of rendered images.
func (c *Config) GetOGCacheMaxAge() time.Duration {
	return c.OGCacheMaxAge
}

func (c *Config) GetRateLimitPerSecond() float64 {
	return c.RateLimitPerSecond
}

func (c *Config) GetLogLevel() string {
	return c.LogLevel
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}

// Helper function to get an IANA time zone name as a location or return a default value.
func getEnvAsLocation(name string, fallback *time.Location) *time.Location {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return fallback
	}
	if loc, err := time.LoadLocation(valueStr); err == nil {
		return loc
	}
	return fallback
}
