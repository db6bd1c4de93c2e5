package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

// RequestLogger logs every request once it completes.
func RequestLogger(fallback usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		l := Logger(c, fallback)
		status := c.Writer.Status()
		format := "%s %s -> %d in %dms"
		args := []interface{}{c.Request.Method, c.Request.URL.Path, status, time.Since(start).Milliseconds()}
		switch {
		case status >= 500:
			l.Errorf(format, args...)
		case status >= 400:
			l.Warnf(format, args...)
		default:
			l.Infof(format, args...)
		}
	}
}
