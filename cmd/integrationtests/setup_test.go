package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	accounts "bluepenguin/internal/accountService"
	auction "bluepenguin/internal/auctionService"
	"bluepenguin/internal/auth"
	market "bluepenguin/internal/marketService"
	"bluepenguin/internal/metrics"
	"bluepenguin/internal/repository"
	"bluepenguin/internal/server"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

var start = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

// testEnv is the full router on the memory backend with a controllable clock
type testEnv struct {
	router   *gin.Engine
	repo     *repository.MemoryRepo
	sessions *auth.SessionStore
	clock    *utils.ManualClock
}

// SetupTestRouter initializes the router with in-memory repository for integration testing.
func SetupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.SetOutput(io.Discard)

	repo := repository.NewMemoryRepo()
	clock := utils.NewManualClock(start)
	sessions := auth.NewSessionStore(2*time.Hour, clock)
	auctions := auction.NewAuctionService(repo, auction.WithClock(clock), auction.WithMetrics(metrics.New()))

	router := server.SetupRouter(server.Dependencies{
		Bidding:      auctions,
		Transactions: auctions,
		Market:       market.NewMarketService(repo, clock),
		Accounts:     accounts.NewAccountService(repo, sessions, clock, 50),
		Sessions:     sessions,
		Storage:      repo,
	})
	return &testEnv{router: router, repo: repo, sessions: sessions, clock: clock}
}

// SetupTestRouterWithItems initializes the router and seeds the repo with items owned by "seller".
func SetupTestRouterWithItems(t *testing.T, items ...models.Item) *testEnv {
	t.Helper()
	env := SetupTestRouter(t)
	env.Account(t, "seller", 0)
	for _, item := range items {
		require.NoError(t, env.repo.CreateItem(context.Background(), item))
	}
	return env
}

// Account creates a user account whose profile ID is profileID
func (e *testEnv) Account(t *testing.T, profileID string, balance float64) {
	t.Helper()
	ctx := context.Background()
	account := models.Account{
		AccountID: "acc-" + profileID,
		Email:     profileID + "@example.com",
		Username:  profileID,
		Status:    models.StatusUser,
		CreatedAt: start,
	}
	require.NoError(t, e.repo.CreateAccount(ctx, account, models.Profile{ProfileID: profileID, DisplayName: profileID}))
	if balance > 0 {
		_, err := e.repo.AdjustBalance(ctx, account.AccountID, balance)
		require.NoError(t, err)
	}
}

// Token opens a session for an account created with Account
func (e *testEnv) Token(profileID string) string {
	return e.sessions.Create("acc-"+profileID, profileID).Token
}

// Item builds an open item owned by "seller"
func Item(itemID string, minimumBid float64) models.Item {
	return models.Item{
		ItemID:       itemID,
		ProfileID:    "seller",
		Title:        fmt.Sprintf("title %s", itemID),
		Description:  fmt.Sprintf("description %s", itemID),
		Collection:   "Misc",
		SellingPrice: 100,
		MinimumBid:   minimumBid,
		MaximumBid:   1_000_000,
		HighestBid:   minimumBid,
		Deadline:     start.Add(time.Hour),
		DatePosted:   start.Add(-time.Hour),
		Availability: models.Available,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the envelope
func ExecuteRequestAndParse(t *testing.T, env *testEnv, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}
	env.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}
