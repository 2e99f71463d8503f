package helpers

import (
	"time"

	"bluepenguin/internal/auth"
	"bluepenguin/pkg/api"
)

// NewSessionResponse formats a session for the API
func NewSessionResponse(s auth.Session) api.SessionResponse {
	return api.SessionResponse{
		Token:     s.Token,
		AccountID: s.AccountID,
		ProfileID: s.ProfileID,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

