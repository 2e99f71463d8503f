package integrationtests

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bluepenguin/pkg/api"
	"bluepenguin/pkg/models"
)

// PlaceBidHandler Tests
func TestPlaceBidHandler(t *testing.T) {
	tests := []struct {
		name       string
		bidder     string
		request    any
		advance    time.Duration
		wantStatus int
		wantMsg    string
	}{
		{name: "Valid_Bid", bidder: "alice", request: api.PlaceBidRequest{Amount: 100}, wantStatus: http.StatusCreated, wantMsg: "bid recorded successfully"},
		{name: "Below_Minimum", bidder: "alice", request: api.PlaceBidRequest{Amount: 10}, wantStatus: http.StatusBadRequest, wantMsg: "invalid bid details"},
		{name: "Above_Maximum", bidder: "alice", request: api.PlaceBidRequest{Amount: 2_000_000}, wantStatus: http.StatusBadRequest, wantMsg: "invalid bid details"},
		{name: "Own_Item", bidder: "seller", request: api.PlaceBidRequest{Amount: 100}, wantStatus: http.StatusForbidden, wantMsg: "sellers cannot bid on their own items"},
		{name: "After_Deadline", bidder: "alice", request: api.PlaceBidRequest{Amount: 100}, advance: 2 * time.Hour, wantStatus: http.StatusConflict, wantMsg: "auction is closed"},
		{name: "Invalid_JSON", bidder: "alice", request: []byte("{amount: 100}"), wantStatus: http.StatusBadRequest, wantMsg: "invalid request payload"},
		{name: "Anonymous", request: api.PlaceBidRequest{Amount: 100}, wantStatus: http.StatusUnauthorized, wantMsg: "sign in required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestRouterWithItems(t, Item("item1", 50))
			env.Account(t, "alice", 0)
			env.clock.Advance(tt.advance)
			token := ""
			if tt.bidder != "" {
				token = env.Token(tt.bidder)
			}

			resp, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/api/items/item1/perform-bid", token, tt.request)
			require.Equal(t, tt.wantStatus, w.Code)
			require.Equal(t, tt.wantMsg, resp["message"])

			if tt.wantStatus == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, "item1", data["item_id"])
				require.Equal(t, "alice", data["profile_id"])
				require.Equal(t, 100.0, data["amount"])
				require.Equal(t, "active", data["status"])
				require.NotEmpty(t, data["bid_id"])

				_, err := time.Parse(time.RFC3339, data["created_at"].(string))
				require.NoError(t, err)
			}
		})
	}
}

// GetBidsByItemHandler Tests
func TestGetBidsByItemHandler(t *testing.T) {
	tests := []struct {
		name       string
		items      []models.Item
		seedBids   []float64
		itemID     string
		wantCount  int
		wantStatus int
	}{
		{name: "With_Bids", items: []models.Item{Item("item1", 50)}, seedBids: []float64{60, 70}, itemID: "item1", wantCount: 2, wantStatus: http.StatusOK},
		{name: "No_Bids", items: []models.Item{Item("item2", 30)}, itemID: "item2", wantCount: 0, wantStatus: http.StatusOK},
		{name: "Item_Not_Found", itemID: "nonexistent", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestRouterWithItems(t, tt.items...)
			env.Account(t, "alice", 0)
			for _, amount := range tt.seedBids {
				_, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/api/items/"+tt.itemID+"/perform-bid", env.Token("alice"), api.PlaceBidRequest{Amount: amount})
				require.Equal(t, http.StatusCreated, w.Code)
			}

			resp, w := ExecuteRequestAndParse(t, env, http.MethodGet, "/api/items/"+tt.itemID+"/bids", "", nil)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.Len(t, resp["data"].([]any), tt.wantCount)
			}
		})
	}
}

// GetWinningBidHandler Tests
func TestGetWinningBidHandler(t *testing.T) {
	type seed struct {
		bidder string
		amount float64
	}
	tests := []struct {
		name       string
		items      []models.Item
		seedBids   []seed
		itemID     string
		wantUser   string
		wantAmount float64
		wantStatus int
	}{
		{
			name:       "With_Bids",
			items:      []models.Item{Item("item1", 50)},
			seedBids:   []seed{{"user1", 100}, {"user3", 120}, {"user2", 150}},
			itemID:     "item1",
			wantUser:   "user2",
			wantAmount: 150,
			wantStatus: http.StatusOK,
		},
		{name: "No_Bids", items: []models.Item{Item("item2", 30)}, itemID: "item2", wantStatus: http.StatusNotFound},
		{name: "Item_Not_Found", itemID: "nonexistent", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestRouterWithItems(t, tt.items...)
			for _, id := range []string{"user1", "user2", "user3"} {
				env.Account(t, id, 0)
			}
			for _, bid := range tt.seedBids {
				_, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/api/items/"+tt.itemID+"/perform-bid", env.Token(bid.bidder), api.PlaceBidRequest{Amount: bid.amount})
				require.Equal(t, http.StatusCreated, w.Code)
			}

			resp, w := ExecuteRequestAndParse(t, env, http.MethodGet, "/api/items/"+tt.itemID+"/winning-bid", "", nil)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, tt.itemID, data["item_id"])
				require.Equal(t, tt.wantUser, data["profile_id"])
				require.Equal(t, tt.wantAmount, data["amount"])
			}
		})
	}
}

// GetPendingBidsHandler Tests
func TestGetPendingBidsHandler(t *testing.T) {
	env := SetupTestRouterWithItems(t, Item("item1", 50), Item("item2", 30))
	env.Account(t, "user1", 0)
	env.Account(t, "user2", 0)

	bids := []struct {
		bidder, itemID string
		amount         float64
	}{
		{"user1", "item1", 100},
		{"user1", "item2", 200},
		{"user2", "item2", 250},
	}
	for _, bid := range bids {
		_, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/api/items/"+bid.itemID+"/perform-bid", env.Token(bid.bidder), api.PlaceBidRequest{Amount: bid.amount})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	tests := []struct {
		name       string
		profileID  string
		wantOutbid map[string]bool
	}{
		{name: "User_With_Bids", profileID: "user1", wantOutbid: map[string]bool{"item1": false, "item2": true}},
		{name: "User_Leading", profileID: "user2", wantOutbid: map[string]bool{"item2": false}},
		{name: "User_Without_Bids", profileID: "seller", wantOutbid: map[string]bool{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, env, http.MethodGet, "/api/accounts/me/pending-bids", env.Token(tt.profileID), nil)
			require.Equal(t, http.StatusOK, w.Code)

			pending := resp["data"].([]any)
			require.Len(t, pending, len(tt.wantOutbid))
			for _, p := range pending {
				entry := p.(map[string]any)
				itemID := entry["item"].(map[string]any)["item_id"].(string)
				want, ok := tt.wantOutbid[itemID]
				require.True(t, ok, itemID)
				require.Equal(t, want, entry["outbid"], itemID)
			}
		})
	}
}

// Concurrent bids of 10 and 12 on an item at 5: the higher bid ends up leading and winning
func TestConcurrentBidsAndClose(t *testing.T) {
	env := SetupTestRouterWithItems(t, Item("item1", 5))
	env.Account(t, "alice", 100)
	env.Account(t, "bob", 100)

	var wg sync.WaitGroup
	for bidder, amount := range map[string]float64{"alice": 10, "bob": 12} {
		wg.Add(1)
		go func(token string, amount float64) {
			defer wg.Done()
			ExecuteRequestAndParse(t, env, http.MethodPost, "/api/items/item1/perform-bid", token, api.PlaceBidRequest{Amount: amount})
		}(env.Token(bidder), amount)
	}
	wg.Wait()

	resp, w := ExecuteRequestAndParse(t, env, http.MethodGet, "/api/items/item1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 12.0, resp["data"].(map[string]any)["highest_bid"])

	env.clock.Advance(2 * time.Hour)
	resp, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/api/items/item1/close", env.Token("alice"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	closure := resp["data"].(map[string]any)
	require.Equal(t, "bob", closure["winner"].(map[string]any)["profile_id"])
	require.Equal(t, "sold", closure["item"].(map[string]any)["availability"])

	_, w = ExecuteRequestAndParse(t, env, http.MethodPost, "/api/items/item1/close", env.Token("alice"), nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

// Closing an auction nobody bid on leaves the item available and creates no sale
func TestCloseWithoutBids(t *testing.T) {
	env := SetupTestRouterWithItems(t, Item("item1", 5))
	env.clock.Advance(2 * time.Hour)

	resp, w := ExecuteRequestAndParse(t, env, http.MethodPost, "/api/items/item1/close", env.Token("seller"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	closure := resp["data"].(map[string]any)
	require.Nil(t, closure["winner"])
	require.Nil(t, closure["transaction"])
	require.Equal(t, "available", closure["item"].(map[string]any)["availability"])

	resp, w = ExecuteRequestAndParse(t, env, http.MethodGet, "/api/transactions/sales", env.Token("seller"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"])
}
