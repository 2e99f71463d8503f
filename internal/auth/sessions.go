package auth

import (
	"context"
	"sync"
	"time"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/utils"
)

// Session is an authenticated login bound to one account and its profile
type Session struct {
	Token     string    `json:"token"`
	AccountID string    `json:"account_id"`
	ProfileID string    `json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore keeps sessions in memory and expires them after a fixed TTL
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session // key: token
	ttl      time.Duration
	clock    utils.Clock
}

// NewSessionStore creates a store whose sessions live for ttl
func NewSessionStore(ttl time.Duration, clock utils.Clock) *SessionStore {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &SessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		clock:    clock,
	}
}

// TTL returns the lifetime of new sessions
func (s *SessionStore) TTL() time.Duration { return s.ttl }

// Create issues a new session token
func (s *SessionStore) Create(accountID, profileID string) Session {
	now := s.clock.Now()
	session := Session{
		Token:     utils.GenerateToken(),
		AccountID: accountID,
		ProfileID: profileID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()
	return session
}

// Lookup returns the session of a token. Expired sessions are removed and reported as ErrSessionExpired.
func (s *SessionStore) Lookup(token string) (Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return Session{}, auctionerrors.ErrUnauthenticated
	}
	if !s.clock.Now().Before(session.ExpiresAt) {
		s.Revoke(token)
		return Session{}, auctionerrors.ErrSessionExpired
	}
	return session, nil
}

// Revoke ends a session; unknown tokens are ignored
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// RevokeAccount ends every session of an account
func (s *SessionStore) RevokeAccount(accountID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for token, session := range s.sessions {
		if session.AccountID == accountID {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}

// Prune drops expired sessions and returns how many were removed
func (s *SessionStore) Prune() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for token, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}

// Run prunes expired sessions every interval until ctx is done
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Prune(); n > 0 {
				utils.Debug("pruned expired sessions", map[string]any{"count": n})
			}
		}
	}
}
