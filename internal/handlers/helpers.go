package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/logger"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	return userID.(uint), nil
}

// respondWithError writes a consistent JSON error response. Validation and
// authentication errors carry their message to the client verbatim; anything
// else is logged and replaced by the operation-specific fallback message so
// internals never reach the wire.
func respondWithError(c *gin.Context, err error, fallback string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.StatusCode != http.StatusServiceUnavailable {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{"message": appErr.Message})
		return
	}

	detail := err
	if appErr != nil && appErr.Internal != nil {
		detail = appErr.Internal
	}
	logger.Get().Errorw("operation failed",
		"error", detail.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(http.StatusServiceUnavailable, gin.H{"message": fallback})
}

// bindBody decodes the request body into a generic map. A missing or
// malformed body degrades to an empty map so the handler's own
// missing-attribute checks produce the user-facing message.
func bindBody(c *gin.Context) map[string]any {
	body := make(map[string]any)
	if err := c.ShouldBindJSON(&body); err != nil {
		return map[string]any{}
	}
	return body
}

// hasKeys reports whether every key is present in the body, regardless of
// value.
func hasKeys(body map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := body[key]; !ok {
			return false
		}
	}
	return true
}

// bodyString returns the value under key coerced to a string. Numbers keep
// their raw JSON form.
func bodyString(body map[string]any, key string) string {
	value, ok := body[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// bodyID returns the value under key as a uint ID. Values that are not a
// positive integer come back as 0, which no row can match.
func bodyID(body map[string]any, key string) uint {
	switch v := body[key].(type) {
	case float64:
		if v < 1 || v != float64(uint(v)) {
			return 0
		}
		return uint(v)
	case string:
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return 0
		}
		return uint(id)
	default:
		return 0
	}
}
