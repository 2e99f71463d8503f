package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

func TestMemoryRepo_CreateAccount(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	seedAccount(t, repo, "alice", 0)
	ctx := context.Background()

	tests := []struct {
		name    string
		account models.Account
		wantErr error
	}{
		{name: "duplicate_email_any_case", account: models.Account{AccountID: "a2", Email: "ALICE@example.com", Username: "other"}, wantErr: auctionerrors.ErrConflict},
		{name: "duplicate_username_any_case", account: models.Account{AccountID: "a3", Email: "new@example.com", Username: "Alice"}, wantErr: auctionerrors.ErrConflict},
		{name: "unique", account: models.Account{AccountID: "a4", Email: "bob@example.com", Username: "bob"}},
	}

	for _, tc := range tests {
		err := repo.CreateAccount(ctx, tc.account, models.Profile{ProfileID: "p-" + tc.account.AccountID})
		if tc.wantErr != nil {
			require.ErrorIs(t, err, tc.wantErr, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)

		profile, err := repo.GetProfileByAccount(ctx, tc.account.AccountID)
		require.NoError(t, err)
		require.Equal(t, tc.account.AccountID, profile.AccountID)

		byEmail, err := repo.GetAccountByEmail(ctx, "BOB@example.com")
		require.NoError(t, err)
		require.Equal(t, tc.account.AccountID, byEmail.AccountID)
	}
}

func TestMemoryRepo_AdjustBalance(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	account := seedAccount(t, repo, "alice", 25)
	ctx := context.Background()

	got, err := repo.AdjustBalance(ctx, account.AccountID, -25)
	require.NoError(t, err)
	require.Zero(t, got.Balance)

	_, err = repo.AdjustBalance(ctx, account.AccountID, -0.01)
	require.ErrorIs(t, err, auctionerrors.ErrInsufficientBalance)

	_, err = repo.AdjustBalance(ctx, "missing", 10)
	require.ErrorIs(t, err, auctionerrors.ErrAccountNotFound)
}

func TestMemoryRepo_UpdateAccount(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	alice := seedAccount(t, repo, "alice", 40)
	seedAccount(t, repo, "bob", 0)
	ctx := context.Background()

	alice.Username = "bob"
	require.ErrorIs(t, repo.UpdateAccount(ctx, alice), auctionerrors.ErrConflict)

	alice.Username = "alice2"
	alice.IsSuspended = true
	alice.Balance = 9999
	require.NoError(t, repo.UpdateAccount(ctx, alice))

	got, err := repo.GetAccount(ctx, alice.AccountID)
	require.NoError(t, err)
	require.Equal(t, "alice2", got.Username)
	require.True(t, got.IsSuspended)
	require.Equal(t, 40.0, got.Balance)
}

func TestMemoryRepo_RateProfile(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	seedAccount(t, repo, "seller", 0)
	seedAccount(t, repo, "r1", 0)
	seedAccount(t, repo, "r2", 0)
	ctx := context.Background()

	profile, err := repo.RateProfile(ctx, models.Rating{RaterProfileID: "r1", RateeProfileID: "seller", Score: 5})
	require.NoError(t, err)
	require.Equal(t, 1, profile.RatingCount)
	require.Equal(t, 5.0, profile.AverageRating)

	profile, err = repo.RateProfile(ctx, models.Rating{RaterProfileID: "r2", RateeProfileID: "seller", Score: 2})
	require.NoError(t, err)
	require.Equal(t, 2, profile.RatingCount)
	require.Equal(t, 3.5, profile.AverageRating)

	// rating again replaces the earlier score
	profile, err = repo.RateProfile(ctx, models.Rating{RaterProfileID: "r1", RateeProfileID: "seller", Score: 1})
	require.NoError(t, err)
	require.Equal(t, 2, profile.RatingCount)
	require.Equal(t, 1.5, profile.AverageRating)

	_, err = repo.RateProfile(ctx, models.Rating{RaterProfileID: "r1", RateeProfileID: "ghost", Score: 3})
	require.ErrorIs(t, err, auctionerrors.ErrProfileNotFound)
}

func TestMemoryRepo_ShippingAddress(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	account := seedAccount(t, repo, "alice", 0)
	ctx := context.Background()

	_, err := repo.GetShippingAddress(ctx, account.AccountID)
	require.ErrorIs(t, err, auctionerrors.ErrAddressNotFound)

	address := models.ShippingAddress{AccountID: account.AccountID, StreetAddress: "1 Ice Way", City: "Hobart", Zip: "7000", Country: "AU"}
	require.NoError(t, repo.SetShippingAddress(ctx, address))

	got, err := repo.GetShippingAddress(ctx, account.AccountID)
	require.NoError(t, err)
	require.Equal(t, address, got)

	require.ErrorIs(t, repo.SetShippingAddress(ctx, models.ShippingAddress{AccountID: "missing"}), auctionerrors.ErrAccountNotFound)
}

func TestMemoryRepo_PayFine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		suspended   bool
		balance     float64
		fine        float64
		wantErr     error
		wantBalance float64
	}{
		{name: "charges_and_reinstates", suspended: true, balance: 80, fine: 50, wantBalance: 30},
		{name: "exact_balance", suspended: true, balance: 50, fine: 50, wantBalance: 0},
		{name: "not_suspended", balance: 80, fine: 50, wantErr: auctionerrors.ErrInvalidState, wantBalance: 80},
		{name: "cannot_afford", suspended: true, balance: 49, fine: 50, wantErr: auctionerrors.ErrInsufficientBalance, wantBalance: 49},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := NewMemoryRepo()
			ctx := context.Background()
			account := seedAccount(t, repo, "alice", tc.balance)
			account.IsSuspended = tc.suspended
			require.NoError(t, repo.UpdateAccount(ctx, account))

			got, err := repo.PayFine(ctx, account.AccountID, tc.fine)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				require.False(t, got.IsSuspended)
			}

			stored, err := repo.GetAccount(ctx, account.AccountID)
			require.NoError(t, err)
			require.Equal(t, tc.wantBalance, stored.Balance)
		})
	}

	_, err := NewMemoryRepo().PayFine(context.Background(), "missing", 10)
	require.ErrorIs(t, err, auctionerrors.ErrAccountNotFound)
}

func TestMemoryRepo_PayFineConcurrent(t *testing.T) {
	t.Parallel()

	for round := 0; round < 200; round++ {
		repo := NewMemoryRepo()
		ctx := context.Background()
		account := seedAccount(t, repo, "alice", 500)
		account.IsSuspended = true
		require.NoError(t, repo.UpdateAccount(ctx, account))

		var (
			wg   sync.WaitGroup
			errs = make([]error, 2)
		)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = repo.PayFine(ctx, account.AccountID, 50)
			}(i)
		}
		wg.Wait()

		paid := 0
		for _, err := range errs {
			if err == nil {
				paid++
				continue
			}
			require.ErrorIs(t, err, auctionerrors.ErrInvalidState)
		}
		require.Equal(t, 1, paid, "round %d", round)

		stored, err := repo.GetAccount(ctx, account.AccountID)
		require.NoError(t, err)
		require.Equal(t, 450.0, stored.Balance, "round %d", round)
		require.False(t, stored.IsSuspended)
	}
}

func TestMemoryRepo_ReviewVIPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       models.AccountStatus
		balance      float64
		transactions int
		rejected     int
		reports      int
		want         models.AccountStatus
	}{
		{name: "promoted", status: models.StatusUser, balance: 5001, transactions: 6, want: models.StatusVIP},
		{name: "five_transactions_not_enough", status: models.StatusUser, balance: 6000, transactions: 5, want: models.StatusUser},
		{name: "rejected_transactions_do_not_count", status: models.StatusUser, balance: 6000, transactions: 5, rejected: 3, want: models.StatusUser},
		{name: "balance_must_exceed_threshold", status: models.StatusUser, balance: 5000, transactions: 8, want: models.StatusUser},
		{name: "reported_user_stays_user", status: models.StatusUser, balance: 6000, transactions: 8, reports: 1, want: models.StatusUser},
		{name: "vip_demoted_on_report", status: models.StatusVIP, balance: 6000, transactions: 8, reports: 1, want: models.StatusUser},
		{name: "vip_demoted_on_low_balance", status: models.StatusVIP, balance: 10, transactions: 8, want: models.StatusUser},
		{name: "vip_kept", status: models.StatusVIP, balance: 6000, transactions: 8, want: models.StatusVIP},
		{name: "visitor_untouched", status: models.StatusVisitor, balance: 6000, transactions: 8, want: models.StatusVisitor},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := NewMemoryRepo()
			ctx := context.Background()
			account := seedAccount(t, repo, "alice", tc.balance)
			seedAccount(t, repo, "bob", 0)
			account.Status = tc.status
			require.NoError(t, repo.UpdateAccount(ctx, account))

			repo.mu.Lock()
			for i := 0; i < tc.transactions+tc.rejected; i++ {
				status := models.TxnConfirmed
				if i >= tc.transactions {
					status = models.TxnRejected
				}
				seller, buyer := "alice", "bob"
				if i%2 == 1 {
					seller, buyer = buyer, seller
				}
				id := fmt.Sprintf("t%d", i)
				repo.transactions[id] = models.Transaction{TransactionID: id, SellerProfileID: seller, BuyerProfileID: buyer, Status: status}
			}
			repo.mu.Unlock()
			for i := 0; i < tc.reports; i++ {
				require.NoError(t, repo.CreateReport(ctx, models.Report{
					ReportID: fmt.Sprintf("r%d", i), ReporterProfileID: "bob", ReporteeProfileID: "alice", Status: models.ReportPending,
				}))
			}

			got, err := repo.ReviewVIPStatus(ctx, account.AccountID)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Status)
			stored, err := repo.GetAccount(ctx, account.AccountID)
			require.NoError(t, err)
			require.Equal(t, tc.want, stored.Status)
		})
	}
}

func TestMemoryRepo_PaymentDetails(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	alice := seedAccount(t, repo, "alice", 0)
	bob := seedAccount(t, repo, "bob", 0)
	ctx := context.Background()

	details, err := repo.GetPaymentDetails(ctx, alice.AccountID)
	require.NoError(t, err)
	require.Nil(t, details.Card)
	require.Nil(t, details.PayPal)

	card := models.CardDetails{AccountID: alice.AccountID, CardNumber: "4111111111111111", HolderName: "Alice", ExpireMonth: 4, ExpireYear: 2030}
	require.NoError(t, repo.SetCardDetails(ctx, card))
	// the same account may resubmit its own card
	require.NoError(t, repo.SetCardDetails(ctx, card))

	taken := card
	taken.AccountID = bob.AccountID
	require.ErrorIs(t, repo.SetCardDetails(ctx, taken), auctionerrors.ErrConflict)

	// replacing the card frees the old number
	replaced := card
	replaced.CardNumber = "5500000000000004"
	require.NoError(t, repo.SetCardDetails(ctx, replaced))
	require.NoError(t, repo.SetCardDetails(ctx, taken))

	require.NoError(t, repo.SetPayPalDetails(ctx, models.PayPalDetails{AccountID: alice.AccountID, Email: "alice@paypal.example"}))
	require.ErrorIs(t, repo.SetPayPalDetails(ctx, models.PayPalDetails{AccountID: bob.AccountID, Email: "ALICE@paypal.example"}), auctionerrors.ErrConflict)

	details, err = repo.GetPaymentDetails(ctx, alice.AccountID)
	require.NoError(t, err)
	require.Equal(t, &replaced, details.Card)
	require.Equal(t, "alice@paypal.example", details.PayPal.Email)

	_, err = repo.GetPaymentDetails(ctx, "missing")
	require.ErrorIs(t, err, auctionerrors.ErrAccountNotFound)
	require.ErrorIs(t, repo.SetCardDetails(ctx, models.CardDetails{AccountID: "missing"}), auctionerrors.ErrAccountNotFound)
}

func TestMemoryRepo_CreateReport(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	seedAccount(t, repo, "alice", 0)
	seedAccount(t, repo, "bob", 0)
	ctx := context.Background()

	report := models.Report{ReportID: "r1", ReporterProfileID: "alice", ReporteeProfileID: "bob", Text: "spam", Status: models.ReportPending}
	require.NoError(t, repo.CreateReport(ctx, report))
	require.ErrorIs(t, repo.CreateReport(ctx, report), auctionerrors.ErrConflict)

	report.ReportID = "r2"
	report.ReporteeProfileID = "ghost"
	require.ErrorIs(t, repo.CreateReport(ctx, report), auctionerrors.ErrProfileNotFound)
}

func TestMemoryRepo_WithdrawListings(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	seedAccount(t, repo, "seller", 0)
	seedAccount(t, repo, "alice", 100)
	ctx := context.Background()

	open := newItem("open", "seller", 1, base.Add(time.Hour))
	bidOn := newItem("bid-on", "seller", 1, base.Add(time.Hour))
	closed := newItem("closed", "seller", 1, base.Add(-time.Hour))
	other := newItem("other", "alice", 1, base.Add(time.Hour))
	for _, item := range []models.Item{open, bidOn, closed, other} {
		require.NoError(t, repo.CreateItem(ctx, item))
	}
	_, err := repo.RecordBid(ctx, newBid("b1", "bid-on", "alice", 5, base))
	require.NoError(t, err)
	_, err = repo.CloseAuction(ctx, models.CloseRequest{ItemID: "closed", Now: base, TransactionID: "t1"})
	require.NoError(t, err)
	require.NoError(t, repo.CreateComment(ctx, models.Comment{CommentID: "c1", ItemID: "open", ProfileID: "alice", CreatedAt: base}))
	require.NoError(t, repo.SaveItem(ctx, models.SavedItem{ProfileID: "alice", ItemID: "bid-on", SavedAt: base}))

	n, err := repo.WithdrawListings(ctx, "seller")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	for _, id := range []string{"open", "bid-on"} {
		_, err := repo.GetItem(ctx, id)
		require.ErrorIs(t, err, auctionerrors.ErrItemNotFound, id)
	}
	for _, id := range []string{"closed", "other"} {
		_, err := repo.GetItem(ctx, id)
		require.NoError(t, err, id)
	}
	_, err = repo.GetBid(ctx, "b1")
	require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)
	bids, err := repo.GetBidsByProfile(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, bids)
	_, err = repo.GetComment(ctx, "c1")
	require.ErrorIs(t, err, auctionerrors.ErrCommentNotFound)
	saved, err := repo.ListSavedItems(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, saved)

	profile, err := repo.GetProfile(ctx, "seller")
	require.NoError(t, err)
	require.Equal(t, 1, profile.ItemCount)

	_, err = repo.WithdrawListings(ctx, "ghost")
	require.True(t, errors.Is(err, auctionerrors.ErrProfileNotFound))
}
