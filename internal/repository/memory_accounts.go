package repository

import (
	"context"
	"fmt"
	"strings"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

// CreateAccount stores an account with its profile. Email and username are unique, case-insensitively.
func (r *MemoryRepo) CreateAccount(ctx context.Context, account models.Account, profile models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(account.Email)
	username := strings.ToLower(account.Username)
	if _, taken := r.emails[email]; taken {
		return fmt.Errorf("create account: email %s: %w", account.Email, auctionerrors.ErrConflict)
	}
	if _, taken := r.usernames[username]; taken {
		return fmt.Errorf("create account: username %s: %w", account.Username, auctionerrors.ErrConflict)
	}
	if _, taken := r.accounts[account.AccountID]; taken {
		return fmt.Errorf("create account %s: %w", account.AccountID, auctionerrors.ErrConflict)
	}

	profile.AccountID = account.AccountID
	r.accounts[account.AccountID] = account
	r.emails[email] = account.AccountID
	r.usernames[username] = account.AccountID
	r.profiles[profile.ProfileID] = profile
	r.accountProfiles[account.AccountID] = profile.ProfileID
	return nil
}

// GetAccount returns an account by ID
func (r *MemoryRepo) GetAccount(ctx context.Context, accountID string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return models.Account{}, fmt.Errorf("get account %s: %w", accountID, auctionerrors.ErrAccountNotFound)
	}
	return account, nil
}

// GetAccountByEmail looks an account up by its login email
func (r *MemoryRepo) GetAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[strings.ToLower(email)]
	if !ok {
		return models.Account{}, fmt.Errorf("get account by email: %w", auctionerrors.ErrAccountNotFound)
	}
	return r.accounts[id], nil
}

// UpdateAccount persists mutable account fields. Balance and points only change through
// AdjustBalance, PayFine and AcceptWinner.
func (r *MemoryRepo) UpdateAccount(ctx context.Context, account models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.accounts[account.AccountID]
	if !ok {
		return fmt.Errorf("update account %s: %w", account.AccountID, auctionerrors.ErrAccountNotFound)
	}

	oldName := strings.ToLower(stored.Username)
	newName := strings.ToLower(account.Username)
	if newName != oldName {
		if _, taken := r.usernames[newName]; taken {
			return fmt.Errorf("update account: username %s: %w", account.Username, auctionerrors.ErrConflict)
		}
		delete(r.usernames, oldName)
		r.usernames[newName] = account.AccountID
	}

	stored.Username = account.Username
	stored.FirstName = account.FirstName
	stored.LastName = account.LastName
	stored.Status = account.Status
	stored.IsSuspended = account.IsSuspended
	stored.SuspensionStrikes = account.SuspensionStrikes
	stored.QuitRequested = account.QuitRequested
	stored.IsRemoved = account.IsRemoved
	if account.PasswordHash != "" {
		stored.PasswordHash = account.PasswordHash
	}
	r.accounts[account.AccountID] = stored
	return nil
}

// AdjustBalance adds delta to the balance; a negative result is rejected
func (r *MemoryRepo) AdjustBalance(ctx context.Context, accountID string, delta float64) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return models.Account{}, fmt.Errorf("adjust balance %s: %w", accountID, auctionerrors.ErrAccountNotFound)
	}
	if account.Balance+delta < 0 {
		return models.Account{}, fmt.Errorf("adjust balance %s by %.2f: %w", accountID, delta, auctionerrors.ErrInsufficientBalance)
	}
	account.Balance += delta
	r.accounts[accountID] = account
	return account, nil
}

// PayFine charges the fine and lifts the suspension in one step
func (r *MemoryRepo) PayFine(ctx context.Context, accountID string, fine float64) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return models.Account{}, fmt.Errorf("pay fine %s: %w", accountID, auctionerrors.ErrAccountNotFound)
	}
	if !account.IsSuspended {
		return models.Account{}, fmt.Errorf("pay fine %s: account is not suspended: %w", accountID, auctionerrors.ErrInvalidState)
	}
	if account.Balance < fine {
		return models.Account{}, fmt.Errorf("pay fine %s of %.2f: %w", accountID, fine, auctionerrors.ErrInsufficientBalance)
	}
	account.Balance -= fine
	account.IsSuspended = false
	r.accounts[accountID] = account
	return account, nil
}

// ReviewVIPStatus promotes or demotes the account from its transactions, reports and balance
func (r *MemoryRepo) ReviewVIPStatus(ctx context.Context, accountID string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return models.Account{}, fmt.Errorf("review vip status %s: %w", accountID, auctionerrors.ErrAccountNotFound)
	}
	profileID := r.accountProfiles[accountID]

	transactions := 0
	for _, txn := range r.transactions {
		if txn.Status == models.TxnRejected {
			continue
		}
		if txn.SellerProfileID == profileID || txn.BuyerProfileID == profileID {
			transactions++
		}
	}
	reports := 0
	for _, report := range r.reports {
		if report.ReporteeProfileID == profileID {
			reports++
		}
	}

	account.Status = account.VIPReview(transactions, reports)
	r.accounts[accountID] = account
	return account, nil
}

// GetProfile returns a profile by ID
func (r *MemoryRepo) GetProfile(ctx context.Context, profileID string) (models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[profileID]
	if !ok {
		return models.Profile{}, fmt.Errorf("get profile %s: %w", profileID, auctionerrors.ErrProfileNotFound)
	}
	return profile, nil
}

// GetProfileByAccount returns the profile owned by an account
func (r *MemoryRepo) GetProfileByAccount(ctx context.Context, accountID string) (models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.accountProfiles[accountID]
	if !ok {
		return models.Profile{}, fmt.Errorf("get profile of account %s: %w", accountID, auctionerrors.ErrProfileNotFound)
	}
	return r.profiles[id], nil
}

// UpdateProfile persists display fields of a profile
func (r *MemoryRepo) UpdateProfile(ctx context.Context, profile models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.profiles[profile.ProfileID]
	if !ok {
		return fmt.Errorf("update profile %s: %w", profile.ProfileID, auctionerrors.ErrProfileNotFound)
	}
	stored.DisplayName = profile.DisplayName
	stored.DisplayIcon = profile.DisplayIcon
	stored.Description = profile.Description
	r.profiles[profile.ProfileID] = stored
	return nil
}

// RateProfile records or replaces a rating and recomputes the ratee's average
func (r *MemoryRepo) RateProfile(ctx context.Context, rating models.Rating) (models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ratee, ok := r.profiles[rating.RateeProfileID]
	if !ok {
		return models.Profile{}, fmt.Errorf("rate profile %s: %w", rating.RateeProfileID, auctionerrors.ErrProfileNotFound)
	}
	if _, ok := r.profiles[rating.RaterProfileID]; !ok {
		return models.Profile{}, fmt.Errorf("rate by profile %s: %w", rating.RaterProfileID, auctionerrors.ErrProfileNotFound)
	}

	received, ok := r.ratings[ratee.ProfileID]
	if !ok {
		received = make(map[string]models.Rating)
		r.ratings[ratee.ProfileID] = received
	}
	received[rating.RaterProfileID] = rating

	total := 0
	for _, rt := range received {
		total += rt.Score
	}
	ratee.RatingCount = len(received)
	ratee.AverageRating = float64(total) / float64(len(received))
	r.profiles[ratee.ProfileID] = ratee
	return ratee, nil
}

// SetShippingAddress creates or replaces the address of an account
func (r *MemoryRepo) SetShippingAddress(ctx context.Context, address models.ShippingAddress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[address.AccountID]; !ok {
		return fmt.Errorf("set shipping address %s: %w", address.AccountID, auctionerrors.ErrAccountNotFound)
	}
	r.addresses[address.AccountID] = address
	return nil
}

// GetShippingAddress returns the address of an account
func (r *MemoryRepo) GetShippingAddress(ctx context.Context, accountID string) (models.ShippingAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	address, ok := r.addresses[accountID]
	if !ok {
		return models.ShippingAddress{}, fmt.Errorf("get shipping address %s: %w", accountID, auctionerrors.ErrAddressNotFound)
	}
	return address, nil
}

// SetCardDetails creates or replaces the card of an account
func (r *MemoryRepo) SetCardDetails(ctx context.Context, card models.CardDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[card.AccountID]; !ok {
		return fmt.Errorf("set card details %s: %w", card.AccountID, auctionerrors.ErrAccountNotFound)
	}
	if owner, taken := r.cardNumbers[card.CardNumber]; taken && owner != card.AccountID {
		return fmt.Errorf("set card details %s: card number: %w", card.AccountID, auctionerrors.ErrConflict)
	}
	if old, ok := r.cards[card.AccountID]; ok {
		delete(r.cardNumbers, old.CardNumber)
	}
	r.cards[card.AccountID] = card
	r.cardNumbers[card.CardNumber] = card.AccountID
	return nil
}

// SetPayPalDetails creates or replaces the PayPal login of an account
func (r *MemoryRepo) SetPayPalDetails(ctx context.Context, paypal models.PayPalDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[paypal.AccountID]; !ok {
		return fmt.Errorf("set paypal details %s: %w", paypal.AccountID, auctionerrors.ErrAccountNotFound)
	}
	email := strings.ToLower(paypal.Email)
	if owner, taken := r.paypalEmails[email]; taken && owner != paypal.AccountID {
		return fmt.Errorf("set paypal details %s: paypal email: %w", paypal.AccountID, auctionerrors.ErrConflict)
	}
	if old, ok := r.paypal[paypal.AccountID]; ok {
		delete(r.paypalEmails, strings.ToLower(old.Email))
	}
	r.paypal[paypal.AccountID] = paypal
	r.paypalEmails[email] = paypal.AccountID
	return nil
}

// GetPaymentDetails returns whichever payment methods the account has on file
func (r *MemoryRepo) GetPaymentDetails(ctx context.Context, accountID string) (models.PaymentDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.accounts[accountID]; !ok {
		return models.PaymentDetails{}, fmt.Errorf("get payment details %s: %w", accountID, auctionerrors.ErrAccountNotFound)
	}
	var details models.PaymentDetails
	if card, ok := r.cards[accountID]; ok {
		details.Card = &card
	}
	if paypal, ok := r.paypal[accountID]; ok {
		details.PayPal = &paypal
	}
	return details, nil
}

// CreateReport stores a report between two existing profiles
func (r *MemoryRepo) CreateReport(ctx context.Context, report models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range []string{report.ReporterProfileID, report.ReporteeProfileID} {
		if _, ok := r.profiles[id]; !ok {
			return fmt.Errorf("create report: profile %s: %w", id, auctionerrors.ErrProfileNotFound)
		}
	}
	if _, taken := r.reports[report.ReportID]; taken {
		return fmt.Errorf("create report %s: %w", report.ReportID, auctionerrors.ErrConflict)
	}
	r.reports[report.ReportID] = report
	return nil
}

// WithdrawListings deletes every unclosed item of a profile along with its bids,
// comments and saves. Closed items stay because transactions refer to them.
func (r *MemoryRepo) WithdrawListings(ctx context.Context, profileID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[profileID]
	if !ok {
		return 0, fmt.Errorf("withdraw listings of %s: %w", profileID, auctionerrors.ErrProfileNotFound)
	}

	withdrawn := make(map[string]struct{})
	for id, item := range r.items {
		if item.ProfileID != profileID || item.IsClosed() {
			continue
		}
		withdrawn[id] = struct{}{}
		for _, b := range r.bids[id] {
			delete(r.bidItems, b.BidID)
		}
		delete(r.bids, id)
		delete(r.items, id)
	}
	if len(withdrawn) == 0 {
		return 0, nil
	}

	for bidder, itemIDs := range r.profileItems {
		kept := itemIDs[:0]
		for _, id := range itemIDs {
			if _, gone := withdrawn[id]; !gone {
				kept = append(kept, id)
			}
		}
		r.profileItems[bidder] = kept
	}
	for id, c := range r.comments {
		if _, gone := withdrawn[c.ItemID]; gone {
			delete(r.comments, id)
			delete(r.reactions, id)
		}
	}
	for _, saved := range r.saves {
		for id := range withdrawn {
			delete(saved, id)
		}
	}

	profile.ItemCount -= len(withdrawn)
	if profile.ItemCount < 0 {
		profile.ItemCount = 0
	}
	r.profiles[profileID] = profile
	return len(withdrawn), nil
}
