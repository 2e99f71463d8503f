package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bluepenguin/internal/auth"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetOutput(io.Discard)
}

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestMapErrorToHTTP(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"expired session before generic 401", fmt.Errorf("svc: %w", auctionerrors.ErrSessionExpired), http.StatusUnauthorized, "session expired, sign in again"},
		{"unauthenticated", auctionerrors.ErrUnauthenticated, http.StatusUnauthorized, "sign in required"},
		{"self bid", auctionerrors.ErrSelfBid, http.StatusForbidden, "sellers cannot bid on their own items"},
		{"suspended", auctionerrors.ErrAccountSuspended, http.StatusForbidden, "account is suspended"},
		{"item not found is specific", fmt.Errorf("get i1: %w", auctionerrors.ErrItemNotFound), http.StatusNotFound, "item not found"},
		{"bare not found", auctionerrors.ErrNotFound, http.StatusNotFound, "not found"},
		{"bid too low before invalid bid", auctionerrors.ErrBidTooLow, http.StatusConflict, "bid amount too low"},
		{"outbid", auctionerrors.ErrOutBid, http.StatusConflict, "outbid by another bidder"},
		{"insufficient balance", auctionerrors.ErrInsufficientBalance, http.StatusPaymentRequired, "insufficient balance"},
		{"invalid bid", auctionerrors.ErrInvalidBid, http.StatusBadRequest, "invalid bid details"},
		{"invalid input", auctionerrors.ErrInvalidInput, http.StatusBadRequest, "invalid input"},
		{"conflict", auctionerrors.ErrConflict, http.StatusConflict, "resource already exists"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, msg := MapErrorToHTTP(tt.err)
			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestQueryInt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		target  string
		want    int
		wantErr bool
	}{
		{"absent uses fallback", "/items", 20, false},
		{"empty uses fallback", "/items?limit=", 20, false},
		{"parsed", "/items?limit=5", 5, false},
		{"negative parsed", "/items?limit=-3", -3, false},
		{"not a number", "/items?limit=five", 0, true},
		{"decimal rejected", "/items?limit=2.5", 0, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _ := testContext(tt.target)
			got, err := QueryInt(c, "limit", 20)
			if tt.wantErr {
				require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
				require.Contains(t, err.Error(), "limit must be an integer")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestQueryFloat(t *testing.T) {
	t.Parallel()
	price := 12.5
	tests := []struct {
		name    string
		target  string
		want    *float64
		wantErr bool
	}{
		{"absent is nil", "/items", nil, false},
		{"parsed", "/items?min_price=12.5", &price, false},
		{"garbage", "/items?min_price=cheap", nil, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _ := testContext(tt.target)
			got, err := QueryFloat(c, "min_price")
			if tt.wantErr {
				require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRespondError_WritesEnvelope(t *testing.T) {
	t.Parallel()
	c, w := testContext("/items/i1")
	RespondError(c, "GetItemHandler", fmt.Errorf("service: get: %w", auctionerrors.ErrItemNotFound), nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "item not found", body["message"])
	require.Contains(t, body["error"], "item not found")
}

func TestCurrentSession(t *testing.T) {
	t.Parallel()

	t.Run("missing session answers 401", func(t *testing.T) {
		t.Parallel()
		c, w := testContext("/api/accounts/me")
		_, ok := CurrentSession(c, "MeHandler")
		require.False(t, ok)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("session from context", func(t *testing.T) {
		t.Parallel()
		c, w := testContext("/api/accounts/me")
		want := auth.Session{Token: "tok", AccountID: "a1", ProfileID: "p1"}
		c.Request = c.Request.WithContext(auth.WithSession(c.Request.Context(), want))
		got, ok := CurrentSession(c, "MeHandler")
		require.True(t, ok)
		require.Equal(t, want, got)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleBindError(t *testing.T) {
	t.Parallel()
	c, w := testContext("/api/items")
	HandleBindError(c, "PostItemHandler", errors.New("Key: 'Title' failed on the 'required' tag"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid request payload")
}
