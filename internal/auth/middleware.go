package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/utils"
)

const (
	// HeaderName is the request header carrying a bearer session token
	HeaderName = "Authorization"
	// TokenHeader is the alternative header carrying the bare token
	TokenHeader = "X-Auth-Token"
	bearer      = "Bearer "
)

type sessionKey struct{}

// WithSession returns a context carrying session
func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// RequireAuthenticated returns the session of ctx or ErrUnauthenticated
func RequireAuthenticated(ctx context.Context) (Session, error) {
	session, ok := ctx.Value(sessionKey{}).(Session)
	if !ok || session.Token == "" {
		return Session{}, auctionerrors.ErrUnauthenticated
	}
	return session, nil
}

// TokenFromRequest extracts the session token, or "" when none is present
func TokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader(HeaderName); strings.HasPrefix(header, bearer) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearer))
	}
	return strings.TrimSpace(c.GetHeader(TokenHeader))
}

// RequireSession rejects requests without a live session and stores the session on the request context
func RequireSession(store *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			utils.AbortJSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthenticated, "sign in required")
			return
		}

		session, err := store.Lookup(token)
		if err != nil {
			message := "sign in required"
			if errors.Is(err, auctionerrors.ErrSessionExpired) {
				message = "session expired, sign in again"
			}
			utils.AbortJSONError(c, http.StatusUnauthorized, err, message)
			return
		}

		c.Request = c.Request.WithContext(WithSession(c.Request.Context(), session))
		c.Next()
	}
}
