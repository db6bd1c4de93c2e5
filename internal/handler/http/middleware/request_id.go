package middleware

import (
	"github.com/gin-gonic/gin"

	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

const (
	// RequestIDHeader carries the request ID in and out.
	RequestIDHeader = "X-Request-ID"
	loggerKey       = "logger"
)

// RequestIDGenerator creates and recognizes request IDs.
type RequestIDGenerator interface {
	NewUUID() string
	IsUUID(s string) bool
}

// RequestID tags each request with an ID, reusing a well-formed incoming one, and
// stores a logger carrying it in the context.
func RequestID(gen RequestIDGenerator, logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !gen.IsUUID(id) {
			id = gen.NewUUID()
		}
		c.Set(loggerKey, logger.WithField("request_id", id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger returns the request-scoped logger, or fallback outside RequestID.
func Logger(c *gin.Context, fallback usecasecontract.IAppLogger) usecasecontract.IAppLogger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(usecasecontract.IAppLogger); ok {
			return l
		}
	}
	return fallback
}
