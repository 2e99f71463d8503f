package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/utils"
)

func TestSessionStore_Expiry(t *testing.T) {
	t.Parallel()

	clock := utils.NewManualClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	store := NewSessionStore(2*time.Hour, clock)

	session := store.Create("acc1", "prof1")
	require.NotEmpty(t, session.Token)
	require.Equal(t, clock.Now().Add(2*time.Hour), session.ExpiresAt)

	tests := []struct {
		name    string
		advance time.Duration
		wantErr error
	}{
		{name: "fresh", advance: 0},
		{name: "just_before_expiry", advance: 2*time.Hour - time.Second},
		{name: "at_expiry", advance: time.Second, wantErr: auctionerrors.ErrSessionExpired},
		{name: "removed_after_expiry", advance: 0, wantErr: auctionerrors.ErrUnauthenticated},
	}

	for _, tc := range tests {
		clock.Advance(tc.advance)
		got, err := store.Lookup(session.Token)
		if tc.wantErr != nil {
			require.ErrorIs(t, err, tc.wantErr, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
		require.Equal(t, session, got, tc.name)
	}
}

func TestSessionStore_Revoke(t *testing.T) {
	t.Parallel()

	store := NewSessionStore(time.Hour, nil)
	s1 := store.Create("acc1", "prof1")
	s2 := store.Create("acc1", "prof1")
	s3 := store.Create("acc2", "prof2")
	require.NotEqual(t, s1.Token, s2.Token)

	store.Revoke(s1.Token)
	_, err := store.Lookup(s1.Token)
	require.ErrorIs(t, err, auctionerrors.ErrUnauthenticated)

	require.Equal(t, 1, store.RevokeAccount("acc1"))
	_, err = store.Lookup(s2.Token)
	require.ErrorIs(t, err, auctionerrors.ErrUnauthenticated)

	_, err = store.Lookup(s3.Token)
	require.NoError(t, err)
}

func TestSessionStore_Prune(t *testing.T) {
	t.Parallel()

	clock := utils.NewManualClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	store := NewSessionStore(time.Hour, clock)
	store.Create("acc1", "prof1")
	clock.Advance(30 * time.Minute)
	fresh := store.Create("acc2", "prof2")
	clock.Advance(45 * time.Minute)

	require.Equal(t, 1, store.Prune())
	_, err := store.Lookup(fresh.Token)
	require.NoError(t, err)
}

func TestPasswords(t *testing.T) {
	t.Parallel()

	_, err := HashPassword("short")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)

	require.NoError(t, CheckPassword(hash, "correct horse"))
	require.ErrorIs(t, CheckPassword(hash, "wrong horse"), auctionerrors.ErrInvalidCredentials)
}
