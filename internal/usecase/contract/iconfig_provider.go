package usecasecontract

import "time"

// IConfigProvider exposes application configuration.
type IConfigProvider interface {
	GetPort() string
	GetAppBaseURL() string
	GetStoreBackend() string
	GetRedisURL() string
	GetMongoURI() string
	GetMongoDBName() string
	GetSQLitePath() string
	GetVoteKeyTTL() time.Duration
	GetLocation() *time.Location
	GetWishesFile() string
	GetOGCacheMaxAge() time.Duration
	GetRateLimitPerSecond() float64
	GetLogLevel() string
}
