package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/DailyWish/internal/handler/http/dto"
	"github.com/mikiasgoitom/DailyWish/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// UsecaseErrorStatus maps usecase errors to HTTP status codes. Input errors are the
// caller's fault; anything else is a store failure.
func UsecaseErrorStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrIndexOutOfRange),
		errors.Is(err, usecase.ErrInvalidChoice),
		errors.Is(err, usecase.ErrMissingVoter):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RequestBaseURL returns configured when set, otherwise the scheme and host the request
// arrived on.
func RequestBaseURL(c *gin.Context, configured string) string {
	if configured != "" {
		return configured
	}
	host := c.Request.Host
	if host == "" {
		host = "localhost"
	}
	scheme := "https"
	if strings.HasPrefix(host, "localhost") || strings.HasPrefix(host, "127.0.0.1") {
		scheme = "http"
	}
	return scheme + "://" + host
}
