// Package httpx holds the gin helpers shared by every controller: the
// authenticated user id, error-to-status mapping and pagination.
package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

const userIDKey = "clarity.user_id"

// DefaultTimeout bounds a request's database work.
const DefaultTimeout = 3 * time.Second

// SetUserID records the authenticated user on the request context.
func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}

// UserID returns the authenticated user, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// Timeout derives a bounded context from the request.
func Timeout(c *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultTimeout
	}
	return context.WithTimeout(c.Request.Context(), d)
}

// StatusFor maps an error kind to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, shared.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, shared.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, shared.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, shared.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, shared.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes {"error": ...}. Server-side failures are logged and
// replaced with a generic message.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable && status != http.StatusBadGateway {
		if logger != nil {
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		msg = "internal server error"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// ParamID reads a UUID path parameter. A malformed value cannot name any
// stored row, so it is answered with notFound and ok is false.
func ParamID(c *gin.Context, name string, notFound error) (string, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, nil, notFound)
		return "", false
	}
	return id.String(), true
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}

// Page reads limit/offset query parameters. Invalid values fall back to the
// defaults; limit is capped at 200.
func Page(c *gin.Context) (limit int, offset int) {
	limit, offset = 50, 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	if limit > 200 {
		limit = 200
	}
	return limit, offset
}

// Groups carries the router groups a bounded context mounts its routes on.
type Groups struct {
	Public  *gin.RouterGroup
	Private *gin.RouterGroup
}
