package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	accounts "bluepenguin/internal/accountService"
	auction "bluepenguin/internal/auctionService"
	"bluepenguin/internal/auth"
	market "bluepenguin/internal/marketService"
	"bluepenguin/internal/repository"
	"bluepenguin/internal/server"
	"bluepenguin/pkg/api"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

// newServer runs the full router on the memory backend; client and server share clock
func newServer(t *testing.T) (*httptest.Server, *utils.ManualClock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.SetOutput(io.Discard)

	repo := repository.NewMemoryRepo()
	clock := utils.NewManualClock(time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC))
	sessions := auth.NewSessionStore(DefaultSessionTTL, clock)
	auctions := auction.NewAuctionService(repo, auction.WithClock(clock))

	srv := httptest.NewServer(server.SetupRouter(server.Dependencies{
		Bidding:      auctions,
		Transactions: auctions,
		Market:       market.NewMarketService(repo, clock),
		Accounts:     accounts.NewAccountService(repo, sessions, clock, 50),
		Sessions:     sessions,
		Storage:      repo,
	}))
	t.Cleanup(srv.Close)
	return srv, clock
}

func signedIn(t *testing.T, srv *httptest.Server, clock utils.Clock, name string, balance float64) *Client {
	t.Helper()
	ctx := context.Background()
	c := New(srv.URL, WithClock(clock), WithHTTPClient(srv.Client()))

	_, err := c.Register(ctx, api.RegisterRequest{Email: name + "@example.com", Username: name, Password: "correct-horse"})
	require.NoError(t, err)
	session, err := c.SignIn(ctx, name+"@example.com", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, models.StatusVisitor, session.Status)

	account, err := c.ApplyToBeUser(ctx)
	require.NoError(t, err)
	require.Equal(t, models.StatusUser, account.Status)
	if balance > 0 {
		_, err = c.AddBalance(ctx, balance)
		require.NoError(t, err)
	}
	return c
}

func TestClient_SessionLifecycle(t *testing.T) {
	srv, clock := newServer(t)
	ctx := context.Background()
	c := signedIn(t, srv, clock, "alice", 0)

	session, ok := c.Session()
	require.True(t, ok)
	require.Equal(t, models.StatusUser, session.Status)
	require.Equal(t, clock.Now(), session.IssuedAt)

	clock.Advance(DefaultSessionTTL)
	_, err := c.Account(ctx)
	require.ErrorIs(t, err, auctionerrors.ErrSessionExpired)
	require.ErrorIs(t, err, auctionerrors.ErrUnauthenticated)
	_, ok = c.Session()
	require.False(t, ok)

	_, err = c.Account(ctx)
	require.ErrorIs(t, err, auctionerrors.ErrUnauthenticated)
	require.True(t, IsRedirectClass(err))
}

func TestClient_ServerRejectionClearsSession(t *testing.T) {
	srv, clock := newServer(t)
	ctx := context.Background()
	c := signedIn(t, srv, clock, "alice", 0)

	c.SetSession(Session{Token: "forged", IssuedAt: clock.Now()})
	_, err := c.Balance(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.ErrorIs(t, err, auctionerrors.ErrUnauthenticated)
	_, ok := c.Session()
	require.False(t, ok)
}

func TestClient_BadCredentials(t *testing.T) {
	srv, clock := newServer(t)
	c := signedIn(t, srv, clock, "alice", 0)
	require.NoError(t, c.SignOut(context.Background()))

	_, err := c.SignIn(context.Background(), "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidCredentials)
}

func TestClient_AuctionRoundTrip(t *testing.T) {
	srv, clock := newServer(t)
	ctx := context.Background()
	seller := signedIn(t, srv, clock, "seller", 0)
	alice := signedIn(t, srv, clock, "alice", 100)
	bob := signedIn(t, srv, clock, "bob", 100)

	item, err := seller.PostItem(ctx, api.PostItemRequest{
		Title:      "Penguin figurine",
		Collection: "Art",
		MinimumBid: 5,
		Deadline:   clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, 5.0, item.HighestBid)

	_, err = seller.PlaceBid(ctx, item.ItemID, 10)
	require.ErrorIs(t, err, auctionerrors.ErrSelfBid)
	_, err = alice.PlaceBid(ctx, item.ItemID, 4)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)

	_, err = alice.PlaceBid(ctx, item.ItemID, 7)
	require.NoError(t, err)
	_, err = bob.PlaceBid(ctx, item.ItemID, 7)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)
	_, err = bob.PlaceBid(ctx, item.ItemID, 12)
	require.NoError(t, err)

	pending, err := alice.PendingBids(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.True(t, pending[0].Outbid)

	_, err = alice.CloseAuction(ctx, item.ItemID)
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotEnded)

	clock.Advance(90 * time.Minute)
	_, err = alice.PlaceBid(ctx, item.ItemID, 50)
	require.ErrorIs(t, err, auctionerrors.ErrAuctionClosed)

	closure, err := alice.CloseAuction(ctx, item.ItemID)
	require.NoError(t, err)
	require.NotNil(t, closure.Transaction)
	require.Equal(t, 12.0, closure.Winner.Amount)

	_, err = alice.CloseAuction(ctx, item.ItemID)
	require.ErrorIs(t, err, auctionerrors.ErrAlreadyClosed)

	rejection, err := seller.RejectWin(ctx, closure.Transaction.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, rejection.Next)

	txn, err := seller.AcceptWin(ctx, rejection.Next.TransactionID)
	require.NoError(t, err)
	require.Equal(t, models.TxnConfirmed, txn.Status)

	balance, err := alice.Balance(ctx)
	require.NoError(t, err)
	require.Equal(t, 93.0, balance)

	txn, err = seller.ShipItem(ctx, txn.TransactionID, "PenguinPost", nil)
	require.NoError(t, err)
	require.Equal(t, models.TxnShipped, txn.Status)

	arrivals, err := alice.Arrivals(ctx)
	require.NoError(t, err)
	require.Len(t, arrivals, 1)

	txn, err = alice.MarkReceived(ctx, txn.TransactionID)
	require.NoError(t, err)
	require.Equal(t, models.TxnReceived, txn.Status)
}

func TestClient_MarketFeatures(t *testing.T) {
	srv, clock := newServer(t)
	ctx := context.Background()
	seller := signedIn(t, srv, clock, "seller", 0)
	alice := signedIn(t, srv, clock, "alice", 0)

	item, err := seller.PostItem(ctx, api.PostItemRequest{Title: "Brass lamp", Collection: "Home", SellingPrice: 40, Deadline: clock.Now().Add(time.Hour)})
	require.NoError(t, err)

	found, err := alice.SearchItems(ctx, models.ItemFilter{Query: "lamp", Availability: models.Available})
	require.NoError(t, err)
	require.Len(t, found, 1)

	trending, err := alice.TrendingCollections(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, []models.CollectionCount{{Collection: "Home", Items: 1}}, trending)

	comment, err := alice.PostComment(ctx, item.ItemID, "does it work?", "")
	require.NoError(t, err)
	_, err = seller.PostComment(ctx, item.ItemID, "yes", comment.CommentID)
	require.NoError(t, err)
	replies, err := alice.Replies(ctx, item.ItemID, comment.CommentID)
	require.NoError(t, err)
	require.Len(t, replies, 1)

	liked, err := seller.React(ctx, item.ItemID, comment.CommentID, models.ReactionLike)
	require.NoError(t, err)
	require.Equal(t, 1, liked.Likes)

	require.ErrorIs(t, seller.SaveItem(ctx, item.ItemID), auctionerrors.ErrForbidden)
	require.NoError(t, alice.SaveItem(ctx, item.ItemID))
	saved, err := alice.SavedItems(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)

	_, err = alice.Item(ctx, "missing")
	require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
	require.True(t, IsRedirectClass(err))
}

func TestClient_PaymentDetailsAndReports(t *testing.T) {
	srv, clock := newServer(t)
	ctx := context.Background()
	alice := signedIn(t, srv, clock, "alice", 0)
	bob := signedIn(t, srv, clock, "bob", 0)

	empty, err := alice.PaymentDetails(ctx)
	require.NoError(t, err)
	require.Nil(t, empty.Card)
	require.Nil(t, empty.PayPal)

	card, err := alice.UpdateCardDetails(ctx, api.CardDetailsRequest{CardNumber: "4111 1111 1111 1111", HolderName: "Alice", ExpireMonth: 4, ExpireYear: 2031})
	require.NoError(t, err)
	require.Equal(t, "************1111", card.CardNumber)

	_, err = bob.UpdateCardDetails(ctx, api.CardDetailsRequest{CardNumber: "4111111111111111", HolderName: "Bob", ExpireMonth: 4, ExpireYear: 2031})
	require.ErrorIs(t, err, auctionerrors.ErrConflict)

	paypal, err := alice.UpdatePayPalDetails(ctx, "alice@paypal.example.com")
	require.NoError(t, err)
	require.Equal(t, "alice@paypal.example.com", paypal.Email)

	details, err := alice.PaymentDetails(ctx)
	require.NoError(t, err)
	require.NotNil(t, details.Card)
	require.Equal(t, "************1111", details.Card.CardNumber)
	require.NotNil(t, details.PayPal)

	bobSession, ok := bob.Session()
	require.True(t, ok)
	report, err := alice.ReportProfile(ctx, bobSession.ProfileID, "never shipped the lamp")
	require.NoError(t, err)
	require.Equal(t, bobSession.ProfileID, report.ReporteeProfileID)
	require.Equal(t, models.ReportPending, report.Status)

	_, err = bob.ReportProfile(ctx, bobSession.ProfileID, "myself")
	require.ErrorIs(t, err, auctionerrors.ErrForbidden)
}
