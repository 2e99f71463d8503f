package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

//go:generate mockgen -destination=mock_repository.go -package=repository bluepenguin/internal/repository AuctionDB

// AuctionDB defines the storage contract of bidding and auction closing.
// RecordBid, CloseAuction, AcceptWinner and RejectWinner are atomic per item.
type AuctionDB interface {
	GetItem(ctx context.Context, itemID string) (models.Item, error)
	GetProfile(ctx context.Context, profileID string) (models.Profile, error)
	GetAccount(ctx context.Context, accountID string) (models.Account, error)

	RecordBid(ctx context.Context, bid models.Bid) (models.Item, error)
	GetBid(ctx context.Context, bidID string) (models.Bid, error)
	GetBidsByItem(ctx context.Context, itemID string) ([]models.Bid, error)
	GetBidsByProfile(ctx context.Context, profileID string) ([]models.Bid, error)

	ListExpiredItems(ctx context.Context, now time.Time) ([]models.Item, error)
	ListItemsClosingBetween(ctx context.Context, from, to time.Time) ([]models.Item, error)
	CloseAuction(ctx context.Context, req models.CloseRequest) (models.Closure, error)

	GetTransaction(ctx context.Context, txnID string) (models.Transaction, error)
	AcceptWinner(ctx context.Context, txnID string, now time.Time) (models.Transaction, error)
	RejectWinner(ctx context.Context, req models.RejectRequest) (models.Rejection, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	UpdateShipping(ctx context.Context, txnID string, update models.ShippingUpdate) (models.Transaction, error)

	ReviewVIPStatus(ctx context.Context, accountID string) (models.Account, error)
}

// ItemStore covers listing, browsing and explore queries
type ItemStore interface {
	CreateItem(ctx context.Context, item models.Item) error
	GetItem(ctx context.Context, itemID string) (models.Item, error)
	UpdateItemDetails(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
	SearchItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	CountCollections(ctx context.Context) ([]models.CollectionCount, error)
	RecentBids(ctx context.Context, limit int) ([]models.Bid, error)
}

// AccountStore covers accounts, profiles, ratings, addresses, payment details and reports.
// PayFine and ReviewVIPStatus read and write an account atomically.
type AccountStore interface {
	CreateAccount(ctx context.Context, account models.Account, profile models.Profile) error
	GetAccount(ctx context.Context, accountID string) (models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (models.Account, error)
	UpdateAccount(ctx context.Context, account models.Account) error
	AdjustBalance(ctx context.Context, accountID string, delta float64) (models.Account, error)
	PayFine(ctx context.Context, accountID string, fine float64) (models.Account, error)
	ReviewVIPStatus(ctx context.Context, accountID string) (models.Account, error)

	GetProfile(ctx context.Context, profileID string) (models.Profile, error)
	GetProfileByAccount(ctx context.Context, accountID string) (models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) error
	RateProfile(ctx context.Context, rating models.Rating) (models.Profile, error)

	SetShippingAddress(ctx context.Context, address models.ShippingAddress) error
	GetShippingAddress(ctx context.Context, accountID string) (models.ShippingAddress, error)
	SetCardDetails(ctx context.Context, card models.CardDetails) error
	SetPayPalDetails(ctx context.Context, paypal models.PayPalDetails) error
	GetPaymentDetails(ctx context.Context, accountID string) (models.PaymentDetails, error)

	CreateReport(ctx context.Context, report models.Report) error
	WithdrawListings(ctx context.Context, profileID string) (int, error)
}

// SocialStore covers comments, reactions and saved items
type SocialStore interface {
	CreateComment(ctx context.Context, comment models.Comment) error
	GetComment(ctx context.Context, commentID string) (models.Comment, error)
	ListComments(ctx context.Context, itemID string) ([]models.Comment, error)
	ListReplies(ctx context.Context, parentID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	React(ctx context.Context, commentID, profileID string, kind models.ReactionKind) (models.Comment, error)

	SaveItem(ctx context.Context, save models.SavedItem) error
	ListSavedItems(ctx context.Context, profileID string) ([]models.SavedItem, error)
	DeleteSavedItem(ctx context.Context, profileID, itemID string) error
}

// Store is the full persistence boundary, implemented by MemoryRepo and PostgresRepo
type Store interface {
	AuctionDB
	ItemStore
	AccountStore
	SocialStore
	Ping(ctx context.Context) error
	Close() error
}

var _ Store = (*MemoryRepo)(nil)

// MemoryRepo is a concurrency-safe in-memory implementation of Store
type MemoryRepo struct {
	mu           sync.RWMutex
	items        map[string]models.Item
	bids         map[string][]models.Bid // key: itemID -> value: bids in arrival order
	bidItems     map[string]string       // key: bidID -> value: itemID
	profileItems map[string][]string     // key: profileID -> value: itemIDs the profile has bid on
	transactions map[string]models.Transaction

	accounts        map[string]models.Account
	emails          map[string]string // key: lowercased email -> value: accountID
	usernames       map[string]string // key: lowercased username -> value: accountID
	profiles        map[string]models.Profile
	accountProfiles map[string]string // key: accountID -> value: profileID
	addresses       map[string]models.ShippingAddress
	ratings         map[string]map[string]models.Rating // key: ratee -> rater -> rating
	reports         map[string]models.Report
	cards           map[string]models.CardDetails   // key: accountID
	cardNumbers     map[string]string               // key: card number -> value: accountID
	paypal          map[string]models.PayPalDetails // key: accountID
	paypalEmails    map[string]string               // key: lowercased email -> value: accountID

	comments  map[string]models.Comment
	reactions map[string]map[string]models.ReactionKind // key: commentID -> profileID -> kind
	saves     map[string]map[string]models.SavedItem    // key: profileID -> itemID -> save
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:           make(map[string]models.Item),
		bids:            make(map[string][]models.Bid),
		bidItems:        make(map[string]string),
		profileItems:    make(map[string][]string),
		transactions:    make(map[string]models.Transaction),
		accounts:        make(map[string]models.Account),
		emails:          make(map[string]string),
		usernames:       make(map[string]string),
		profiles:        make(map[string]models.Profile),
		accountProfiles: make(map[string]string),
		addresses:       make(map[string]models.ShippingAddress),
		ratings:         make(map[string]map[string]models.Rating),
		reports:         make(map[string]models.Report),
		cards:           make(map[string]models.CardDetails),
		cardNumbers:     make(map[string]string),
		paypal:          make(map[string]models.PayPalDetails),
		paypalEmails:    make(map[string]string),
		comments:        make(map[string]models.Comment),
		reactions:       make(map[string]map[string]models.ReactionKind),
		saves:           make(map[string]map[string]models.SavedItem),
	}
}

// Ping always succeeds for the in-memory store
func (r *MemoryRepo) Ping(ctx context.Context) error { return ctx.Err() }

// Close is a no-op for the in-memory store
func (r *MemoryRepo) Close() error { return nil }

// AddItem adds an item without owner checks. This method is intended for tests and demo seeding.
func (r *MemoryRepo) AddItem(item models.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ItemID] = cloneItem(item)
}

// GetItem returns a copy of an item
func (r *MemoryRepo) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return models.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return cloneItem(item), nil
}

// RecordBid re-validates the bid against the stored item and applies it in one critical section
func (r *MemoryRepo) RecordBid(ctx context.Context, bid models.Bid) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[bid.ItemID]
	if !ok {
		return models.Item{}, fmt.Errorf("record bid for item %s: %w", bid.ItemID, auctionerrors.ErrItemNotFound)
	}
	if err := item.CheckBid(bid.ProfileID, bid.Amount, bid.CreatedAt); err != nil {
		if errors.Is(err, auctionerrors.ErrBidTooLow) {
			return models.Item{}, fmt.Errorf("record bid for item %s: %w (%v)", bid.ItemID, auctionerrors.ErrOutBid, err)
		}
		return models.Item{}, fmt.Errorf("record bid for item %s: %w", bid.ItemID, err)
	}

	item.HighestBid = bid.Amount
	item.TotalBids++
	r.items[item.ItemID] = item

	r.bids[bid.ItemID] = append(r.bids[bid.ItemID], bid)
	r.bidItems[bid.BidID] = bid.ItemID

	for _, id := range r.profileItems[bid.ProfileID] {
		if id == bid.ItemID {
			return cloneItem(item), nil
		}
	}
	r.profileItems[bid.ProfileID] = append(r.profileItems[bid.ProfileID], bid.ItemID)

	return cloneItem(item), nil
}

// GetBid returns a single bid
func (r *MemoryRepo) GetBid(ctx context.Context, bidID string) (models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemID, ok := r.bidItems[bidID]
	if !ok {
		return models.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	for _, b := range r.bids[itemID] {
		if b.BidID == bidID {
			return b, nil
		}
	}
	return models.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
}

// GetBidsByItem returns all bids for an item in arrival order
func (r *MemoryRepo) GetBidsByItem(ctx context.Context, itemID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.items[itemID]; !ok {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return append([]models.Bid{}, r.bids[itemID]...), nil
}

// GetBidsByProfile returns every bid a profile has placed, newest first
func (r *MemoryRepo) GetBidsByProfile(ctx context.Context, profileID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Bid
	for _, itemID := range r.profileItems[profileID] {
		for _, b := range r.bids[itemID] {
			if b.ProfileID == profileID {
				out = append(out, b)
			}
		}
	}
	sortBidsNewestFirst(out)
	return out, nil
}

// RecentBids returns the latest bids across all items
func (r *MemoryRepo) RecentBids(ctx context.Context, limit int) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Bid
	for _, bids := range r.bids {
		out = append(out, bids...)
	}
	sortBidsNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ListExpiredItems returns unclosed available items whose deadline is at or before now
func (r *MemoryRepo) ListExpiredItems(ctx context.Context, now time.Time) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Item
	for _, item := range r.items {
		if item.Availability == models.Available && !item.IsClosed() && item.IsExpired(now) {
			out = append(out, cloneItem(item))
		}
	}
	models.SortItems(out, "deadline")
	return out, nil
}

// ListItemsClosingBetween returns open items with a deadline in (from, to]
func (r *MemoryRepo) ListItemsClosingBetween(ctx context.Context, from, to time.Time) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Item
	for _, item := range r.items {
		if item.Availability != models.Available || item.IsClosed() {
			continue
		}
		if item.Deadline.After(from) && !item.Deadline.After(to) {
			out = append(out, cloneItem(item))
		}
	}
	models.SortItems(out, "deadline")
	return out, nil
}

// CloseAuction resolves an expired auction to at most one winner
func (r *MemoryRepo) CloseAuction(ctx context.Context, req models.CloseRequest) (models.Closure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[req.ItemID]
	if !ok {
		return models.Closure{}, fmt.Errorf("close auction %s: %w", req.ItemID, auctionerrors.ErrItemNotFound)
	}
	if item.IsClosed() {
		return models.Closure{}, fmt.Errorf("close auction %s: %w", req.ItemID, auctionerrors.ErrAlreadyClosed)
	}
	if !item.IsExpired(req.Now) {
		return models.Closure{}, fmt.Errorf("close auction %s: %w", req.ItemID, auctionerrors.ErrAuctionNotEnded)
	}

	bids := r.bids[req.ItemID]
	winner, found := models.SelectWinner(bids, models.IsActive)

	closure := models.Closure{}
	for i := range bids {
		if bids[i].Status != models.BidActive {
			continue
		}
		bids[i].Status = models.BidClosed
		if found && bids[i].BidID == winner.BidID {
			bids[i].WinnerStatus = models.WinnerAccepted
			continue
		}
		bids[i].WinnerStatus = models.WinnerRejected
		closure.Rejected++
	}

	closedAt := req.Now
	item.ClosedAt = &closedAt
	if found {
		winner.Status = models.BidClosed
		winner.WinnerStatus = models.WinnerAccepted
		winningID := winner.BidID
		item.WinningBidID = &winningID
		item.Availability = models.Sold

		txn := models.Transaction{
			TransactionID:   req.TransactionID,
			ItemID:          item.ItemID,
			BidID:           winner.BidID,
			SellerProfileID: item.ProfileID,
			BuyerProfileID:  winner.ProfileID,
			Amount:          winner.Amount,
			Status:          models.TxnAwaitingConfirmation,
			CreatedAt:       req.Now,
			UpdatedAt:       req.Now,
		}
		r.transactions[txn.TransactionID] = txn
		closure.Winner = &winner
		closure.Transaction = &txn
	}
	r.items[item.ItemID] = item
	closure.Item = cloneItem(item)

	return closure, nil
}

// GetTransaction returns a single transaction
func (r *MemoryRepo) GetTransaction(ctx context.Context, txnID string) (models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txn, ok := r.transactions[txnID]
	if !ok {
		return models.Transaction{}, fmt.Errorf("get transaction %s: %w", txnID, auctionerrors.ErrTransactionNotFound)
	}
	return txn, nil
}

// AcceptWinner confirms a transaction and moves the bid amount from buyer to seller.
// A VIP buyer gets the discount credited back; the buyer earns points for the amount paid.
func (r *MemoryRepo) AcceptWinner(ctx context.Context, txnID string, now time.Time) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn, ok := r.transactions[txnID]
	if !ok {
		return models.Transaction{}, fmt.Errorf("accept winner %s: %w", txnID, auctionerrors.ErrTransactionNotFound)
	}
	if !models.CanTransition(txn.Status, models.TxnConfirmed) {
		return models.Transaction{}, fmt.Errorf("accept winner %s from %s: %w", txnID, txn.Status, auctionerrors.ErrInvalidState)
	}

	buyer, err := r.accountForProfileLocked(txn.BuyerProfileID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("accept winner %s: %w", txnID, err)
	}
	seller, err := r.accountForProfileLocked(txn.SellerProfileID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("accept winner %s: %w", txnID, err)
	}
	if buyer.Balance < txn.Amount {
		return models.Transaction{}, fmt.Errorf("accept winner %s: buyer balance %.2f: %w", txnID, buyer.Balance, auctionerrors.ErrInsufficientBalance)
	}

	buyer.Balance -= txn.Amount
	buyer.Balance += models.VIPDiscount(buyer.Status, txn.Amount)
	buyer.Points += models.PointsFor(txn.Amount)
	r.accounts[buyer.AccountID] = buyer
	seller = r.accounts[seller.AccountID]
	seller.Balance += txn.Amount
	r.accounts[seller.AccountID] = seller

	txn.Status = models.TxnConfirmed
	txn.UpdatedAt = now
	r.transactions[txnID] = txn
	return txn, nil
}

// RejectWinner declines the winning bid and, when asked, promotes the next eligible bidder
func (r *MemoryRepo) RejectWinner(ctx context.Context, req models.RejectRequest) (models.Rejection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn, ok := r.transactions[req.TransactionID]
	if !ok {
		return models.Rejection{}, fmt.Errorf("reject winner %s: %w", req.TransactionID, auctionerrors.ErrTransactionNotFound)
	}
	if !models.CanTransition(txn.Status, models.TxnRejected) {
		return models.Rejection{}, fmt.Errorf("reject winner %s from %s: %w", req.TransactionID, txn.Status, auctionerrors.ErrInvalidState)
	}
	item, ok := r.items[txn.ItemID]
	if !ok {
		return models.Rejection{}, fmt.Errorf("reject winner %s: %w", req.TransactionID, auctionerrors.ErrItemNotFound)
	}

	txn.Status = models.TxnRejected
	txn.UpdatedAt = req.Now
	r.transactions[txn.TransactionID] = txn

	bids := r.bids[txn.ItemID]
	for i := range bids {
		if bids[i].BidID == txn.BidID {
			bids[i].Status = models.BidDeclined
			bids[i].WinnerStatus = models.WinnerRejected
		}
	}

	rejection := models.Rejection{Rejected: txn}
	var candidate models.Bid
	found := false
	if req.Cascade {
		candidate, found = models.CascadeCandidate(bids)
	}

	if found {
		for i := range bids {
			if bids[i].BidID == candidate.BidID {
				bids[i].WinnerStatus = models.WinnerAccepted
			}
		}
		winningID := candidate.BidID
		item.WinningBidID = &winningID
		item.Availability = models.Sold

		next := models.Transaction{
			TransactionID:   req.NextTransactionID,
			ItemID:          item.ItemID,
			BidID:           candidate.BidID,
			SellerProfileID: item.ProfileID,
			BuyerProfileID:  candidate.ProfileID,
			Amount:          candidate.Amount,
			Status:          models.TxnAwaitingConfirmation,
			CreatedAt:       req.Now,
			UpdatedAt:       req.Now,
		}
		r.transactions[next.TransactionID] = next
		rejection.Next = &next
	} else {
		item.WinningBidID = nil
		item.Availability = models.Available
	}
	r.items[item.ItemID] = item
	rejection.Item = cloneItem(item)

	return rejection, nil
}

// ListTransactions returns matching transactions, newest first
func (r *MemoryRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Transaction{}
	for _, txn := range r.transactions {
		if filter.Matches(txn) {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].TransactionID < out[j].TransactionID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateShipping moves a transaction to a shipping state
func (r *MemoryRepo) UpdateShipping(ctx context.Context, txnID string, update models.ShippingUpdate) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn, ok := r.transactions[txnID]
	if !ok {
		return models.Transaction{}, fmt.Errorf("update shipping %s: %w", txnID, auctionerrors.ErrTransactionNotFound)
	}
	if !models.CanTransition(txn.Status, update.Status) {
		return models.Transaction{}, fmt.Errorf("update shipping %s from %s to %s: %w", txnID, txn.Status, update.Status, auctionerrors.ErrInvalidState)
	}

	txn.Status = update.Status
	if update.Carrier != "" {
		txn.Carrier = update.Carrier
	}
	if update.EstimatedDelivery != nil {
		eta := *update.EstimatedDelivery
		txn.EstimatedDelivery = &eta
	}
	txn.UpdatedAt = update.Now
	r.transactions[txnID] = txn
	return txn, nil
}

func (r *MemoryRepo) accountForProfileLocked(profileID string) (models.Account, error) {
	profile, ok := r.profiles[profileID]
	if !ok {
		return models.Account{}, fmt.Errorf("profile %s: %w", profileID, auctionerrors.ErrProfileNotFound)
	}
	account, ok := r.accounts[profile.AccountID]
	if !ok {
		return models.Account{}, fmt.Errorf("account %s: %w", profile.AccountID, auctionerrors.ErrAccountNotFound)
	}
	return account, nil
}

func cloneItem(item models.Item) models.Item {
	item.ImageURLs = append([]string(nil), item.ImageURLs...)
	if item.WinningBidID != nil {
		id := *item.WinningBidID
		item.WinningBidID = &id
	}
	if item.ClosedAt != nil {
		at := *item.ClosedAt
		item.ClosedAt = &at
	}
	return item
}

func sortBidsNewestFirst(bids []models.Bid) {
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].CreatedAt.After(bids[j].CreatedAt)
	})
}
