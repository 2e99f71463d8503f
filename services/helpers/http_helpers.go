package helpers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bluepenguin/internal/auth"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	return auctionerrors.Describe(err)
}

// RespondError writes the mapped error envelope and logs the failure.
// Server errors are logged at error level, client errors at warn level.
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// CurrentSession returns the session set by the auth middleware, or answers 401
func CurrentSession(c *gin.Context, handlerName string) (auth.Session, bool) {
	session, err := auth.RequireAuthenticated(c.Request.Context())
	if err != nil {
		RespondError(c, handlerName, err, nil)
		return auth.Session{}, false
	}
	return session, true
}

// QueryInt parses an optional integer query parameter; absent means fallback
func QueryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w - %s must be an integer", auctionerrors.ErrInvalidInput, key)
	}
	return n, nil
}

// QueryFloat parses an optional decimal query parameter; absent means nil
func QueryFloat(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w - %s must be a number", auctionerrors.ErrInvalidInput, key)
	}
	return &f, nil
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
