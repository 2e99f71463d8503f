package accounts

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bluepenguin/internal/auth"
	"bluepenguin/internal/repository"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

var now = time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)

type env struct {
	service  *AccountService
	repo     *repository.MemoryRepo
	sessions *auth.SessionStore
	clock    *utils.ManualClock
}

func newEnv(t *testing.T) *env {
	t.Helper()
	clock := utils.NewManualClock(now)
	repo := repository.NewMemoryRepo()
	sessions := auth.NewSessionStore(2*time.Hour, clock)
	return &env{
		service:  NewAccountService(repo, sessions, clock, 50),
		repo:     repo,
		sessions: sessions,
		clock:    clock,
	}
}

func (e *env) register(t *testing.T, username string) Registration {
	t.Helper()
	reg, err := e.service.Register(context.Background(), RegisterInput{
		Email:    username + "@example.com",
		Username: username,
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return reg
}

func TestAccountService_Register(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	first := e.register(t, "alice")
	require.Equal(t, models.StatusVisitor, first.Account.Status)
	require.Equal(t, first.Account.AccountID, first.Profile.AccountID)
	require.Contains(t, DefaultIcons, first.Profile.DisplayIcon)
	require.NotEqual(t, "correct-horse", first.Account.PasswordHash)

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{name: "duplicate_email", input: RegisterInput{Email: "ALICE@example.com", Username: "other", Password: "correct-horse"}, wantErr: auctionerrors.ErrConflict},
		{name: "duplicate_username", input: RegisterInput{Email: "new@example.com", Username: "alice", Password: "correct-horse"}, wantErr: auctionerrors.ErrConflict},
		{name: "short_password", input: RegisterInput{Email: "bob@example.com", Username: "bob", Password: "short"}, wantErr: auctionerrors.ErrInvalidInput},
		{name: "bad_email", input: RegisterInput{Email: "not-an-email", Username: "bob", Password: "correct-horse"}, wantErr: auctionerrors.ErrInvalidInput},
		{name: "empty_username", input: RegisterInput{Email: "bob@example.com", Username: " ", Password: "correct-horse"}, wantErr: auctionerrors.ErrInvalidInput},
	}
	for _, tc := range tests {
		_, err := e.service.Register(context.Background(), tc.input)
		require.ErrorIs(t, err, tc.wantErr, tc.name)
	}
}

func TestAccountService_SignIn(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	reg := e.register(t, "alice")
	ctx := context.Background()

	_, err := e.service.SignIn(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidCredentials)
	_, err = e.service.SignIn(ctx, "nobody@example.com", "correct-horse")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidCredentials)

	session, err := e.service.SignIn(ctx, " Alice@Example.com ", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, reg.Account.AccountID, session.AccountID)
	require.Equal(t, reg.Profile.ProfileID, session.ProfileID)

	_, err = e.sessions.Lookup(session.Token)
	require.NoError(t, err)
	e.service.SignOut(session.Token)
	_, err = e.sessions.Lookup(session.Token)
	require.ErrorIs(t, err, auctionerrors.ErrUnauthenticated)
}

func TestAccountService_Settings(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	alice := e.register(t, "alice")
	e.register(t, "bob")
	ctx := context.Background()

	taken := "bob"
	_, err := e.service.UpdateSettings(ctx, alice.Account.AccountID, SettingsInput{Username: &taken})
	require.ErrorIs(t, err, auctionerrors.ErrConflict)

	name, first, password := "alice_w", "Alice", "new-password-1"
	account, err := e.service.UpdateSettings(ctx, alice.Account.AccountID, SettingsInput{Username: &name, FirstName: &first, Password: &password})
	require.NoError(t, err)
	require.Equal(t, "alice_w", account.Username)
	require.Equal(t, "Alice", account.FirstName)

	_, err = e.service.SignIn(ctx, "alice@example.com", "new-password-1")
	require.NoError(t, err)

	// changing a name keeps the password
	last := "W"
	_, err = e.service.UpdateSettings(ctx, alice.Account.AccountID, SettingsInput{LastName: &last})
	require.NoError(t, err)
	_, err = e.service.SignIn(ctx, "alice@example.com", "new-password-1")
	require.NoError(t, err)
}

func TestAccountService_BalanceAndFine(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	alice := e.register(t, "alice")
	id := alice.Account.AccountID
	ctx := context.Background()

	_, err := e.service.AddBalance(ctx, id, 0)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	_, err = e.service.AddBalance(ctx, id, 30)
	require.NoError(t, err)
	balance, err := e.service.Balance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 30.0, balance)

	_, err = e.service.PaySuspensionFine(ctx, id)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidState)

	account, err := e.repo.GetAccount(ctx, id)
	require.NoError(t, err)
	account.IsSuspended = true
	require.NoError(t, e.repo.UpdateAccount(ctx, account))

	_, err = e.service.ApplyToBeUser(ctx, id)
	require.ErrorIs(t, err, auctionerrors.ErrAccountSuspended)
	_, err = e.service.PaySuspensionFine(ctx, id)
	require.ErrorIs(t, err, auctionerrors.ErrInsufficientBalance)

	_, err = e.service.AddBalance(ctx, id, 25)
	require.NoError(t, err)
	account, err = e.service.PaySuspensionFine(ctx, id)
	require.NoError(t, err)
	require.False(t, account.IsSuspended)
	require.Equal(t, 5.0, account.Balance)

	account, err = e.service.ApplyToBeUser(ctx, id)
	require.NoError(t, err)
	require.Equal(t, models.StatusUser, account.Status)
	_, err = e.service.ApplyToBeUser(ctx, id)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidState)
}

func TestAccountService_ShippingAddress(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	id := e.register(t, "alice").Account.AccountID
	ctx := context.Background()

	_, err := e.service.SetShippingAddress(ctx, id, models.ShippingAddress{City: "Hobart"})
	require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)

	saved, err := e.service.SetShippingAddress(ctx, id, models.ShippingAddress{StreetAddress: "1 Ice Way", City: "Hobart", Country: "AU"})
	require.NoError(t, err)
	require.Equal(t, id, saved.AccountID)

	got, err := e.service.GetShippingAddress(ctx, id)
	require.NoError(t, err)
	require.Equal(t, saved, got)
}

func TestAccountService_RequestQuit(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.register(t, "alice")
	ctx := context.Background()

	session, err := e.service.SignIn(ctx, "alice@example.com", "correct-horse")
	require.NoError(t, err)

	account, err := e.service.RequestQuit(ctx, session.AccountID)
	require.NoError(t, err)
	require.True(t, account.QuitRequested)

	_, err = e.sessions.Lookup(session.Token)
	require.ErrorIs(t, err, auctionerrors.ErrUnauthenticated)
	_, err = e.service.SignIn(ctx, "alice@example.com", "correct-horse")
	require.ErrorIs(t, err, auctionerrors.ErrForbidden)
}

func TestAccountService_PaySuspensionFineConcurrent(t *testing.T) {
	t.Parallel()

	for round := 0; round < 100; round++ {
		e := newEnv(t)
		ctx := context.Background()
		id := e.register(t, "alice").Account.AccountID
		_, err := e.service.AddBalance(ctx, id, 500)
		require.NoError(t, err)
		account, err := e.repo.GetAccount(ctx, id)
		require.NoError(t, err)
		account.IsSuspended = true
		require.NoError(t, e.repo.UpdateAccount(ctx, account))

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = e.service.PaySuspensionFine(ctx, id)
			}(i)
		}
		wg.Wait()

		failures := 0
		for _, err := range errs {
			if err != nil {
				require.ErrorIs(t, err, auctionerrors.ErrInvalidState)
				failures++
			}
		}
		require.Equal(t, 1, failures, "round %d", round)

		balance, err := e.service.Balance(ctx, id)
		require.NoError(t, err)
		require.Equal(t, 450.0, balance, "round %d", round)
	}
}

// completeSales gives seller n closed auctions won by buyer
func (e *env) completeSales(t *testing.T, seller, buyer Registration, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-item%d", seller.Profile.ProfileID, i)
		require.NoError(t, e.repo.CreateItem(ctx, models.Item{
			ItemID: id, ProfileID: seller.Profile.ProfileID, Title: id,
			MinimumBid: 1, MaximumBid: 1000, HighestBid: 1,
			Deadline: now.Add(time.Hour), DatePosted: now, Availability: models.Available,
		}))
		_, err := e.repo.RecordBid(ctx, models.Bid{
			BidID: id + "-bid", ItemID: id, ProfileID: buyer.Profile.ProfileID, Amount: 2, CreatedAt: now,
			Status: models.BidActive, WinnerStatus: models.WinnerIneligible,
		})
		require.NoError(t, err)
		_, err = e.repo.CloseAuction(ctx, models.CloseRequest{ItemID: id, Now: now.Add(2 * time.Hour), TransactionID: id + "-txn"})
		require.NoError(t, err)
	}
}

func (e *env) promote(t *testing.T, reg Registration, status models.AccountStatus) {
	t.Helper()
	account, err := e.repo.GetAccount(context.Background(), reg.Account.AccountID)
	require.NoError(t, err)
	account.Status = status
	require.NoError(t, e.repo.UpdateAccount(context.Background(), account))
}

func TestAccountService_AddBalanceGrantsVIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sales   int
		deposit float64
		want    models.AccountStatus
	}{
		{name: "eligible", sales: 6, deposit: 5000.01, want: models.StatusVIP},
		{name: "too_few_transactions", sales: 5, deposit: 9000, want: models.StatusUser},
		{name: "balance_at_threshold", sales: 6, deposit: 5000, want: models.StatusUser},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e := newEnv(t)
			ctx := context.Background()
			seller := e.register(t, "seller")
			buyer := e.register(t, "buyer")
			e.promote(t, seller, models.StatusUser)
			e.promote(t, buyer, models.StatusUser)
			e.completeSales(t, seller, buyer, tc.sales)

			account, err := e.service.AddBalance(ctx, seller.Account.AccountID, tc.deposit)
			require.NoError(t, err)
			require.Equal(t, tc.want, account.Status)
		})
	}
}

func TestAccountService_PaymentDetails(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	alice := e.register(t, "alice").Account.AccountID
	bob := e.register(t, "bob").Account.AccountID

	tests := []struct {
		name    string
		card    models.CardDetails
		wantErr error
	}{
		{name: "short_number", card: models.CardDetails{CardNumber: "1234", HolderName: "A", ExpireMonth: 1, ExpireYear: 2030}, wantErr: auctionerrors.ErrInvalidInput},
		{name: "letters", card: models.CardDetails{CardNumber: "4111abcd11111111", HolderName: "A", ExpireMonth: 1, ExpireYear: 2030}, wantErr: auctionerrors.ErrInvalidInput},
		{name: "bad_month", card: models.CardDetails{CardNumber: "4111111111111111", HolderName: "A", ExpireMonth: 13, ExpireYear: 2030}, wantErr: auctionerrors.ErrInvalidInput},
		{name: "year_out_of_range", card: models.CardDetails{CardNumber: "4111111111111111", HolderName: "A", ExpireMonth: 1, ExpireYear: 2051}, wantErr: auctionerrors.ErrInvalidInput},
		{name: "missing_holder", card: models.CardDetails{CardNumber: "4111111111111111", ExpireMonth: 1, ExpireYear: 2030}, wantErr: auctionerrors.ErrInvalidInput},
		{name: "valid_with_spaces", card: models.CardDetails{CardNumber: "4111 1111 1111 1111", HolderName: " Alice ", ExpireMonth: 12, ExpireYear: 2024}},
	}
	for _, tc := range tests {
		card, err := e.service.SetCardDetails(ctx, alice, tc.card)
		if tc.wantErr != nil {
			require.ErrorIs(t, err, tc.wantErr, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
		require.Equal(t, "4111111111111111", card.CardNumber)
		require.Equal(t, "Alice", card.HolderName)
		require.Equal(t, "************1111", card.MaskedNumber())
	}

	_, err := e.service.SetCardDetails(ctx, bob, models.CardDetails{CardNumber: "4111111111111111", HolderName: "Bob", ExpireMonth: 1, ExpireYear: 2030})
	require.ErrorIs(t, err, auctionerrors.ErrConflict)

	_, err = e.service.SetPayPalDetails(ctx, alice, "nope")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	_, err = e.service.SetPayPalDetails(ctx, alice, "alice@paypal.example")
	require.NoError(t, err)

	details, err := e.service.GetPaymentDetails(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, details.Card)
	require.Equal(t, "alice@paypal.example", details.PayPal.Email)

	details, err = e.service.GetPaymentDetails(ctx, bob)
	require.NoError(t, err)
	require.Nil(t, details.Card)
	require.Nil(t, details.PayPal)
}
