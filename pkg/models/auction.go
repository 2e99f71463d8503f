package models

import (
	"fmt"
	"time"

	"bluepenguin/pkg/auctionerrors"
)

// IsExpired reports whether the deadline has passed at now
func (i Item) IsExpired(now time.Time) bool {
	return !now.Before(i.Deadline)
}

// IsClosed reports whether the auction has been resolved
func (i Item) IsClosed() bool {
	return i.ClosedAt != nil
}

// IsOpen reports whether the item still accepts bids at now
func (i Item) IsOpen(now time.Time) bool {
	return i.Availability == Available && !i.IsClosed() && !i.IsExpired(now)
}

// CheckBid validates a bid amount against the item's current bounds.
// The same check runs on the caller's snapshot and again inside the repository's atomic update.
func (i Item) CheckBid(bidderProfileID string, amount float64, now time.Time) error {
	if !i.IsOpen(now) {
		return fmt.Errorf("item %s: %w", i.ItemID, auctionerrors.ErrAuctionClosed)
	}
	if bidderProfileID == i.ProfileID {
		return fmt.Errorf("item %s: %w", i.ItemID, auctionerrors.ErrSelfBid)
	}
	if amount <= 0 {
		return fmt.Errorf("%w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	if amount > i.MaximumBid {
		return fmt.Errorf("%w - maximum bid is %.2f", auctionerrors.ErrInvalidBid, i.MaximumBid)
	}
	if i.TotalBids == 0 {
		if amount < i.MinimumBid {
			return fmt.Errorf("%w - minimum bid is %.2f", auctionerrors.ErrInvalidBid, i.MinimumBid)
		}
		return nil
	}
	if amount <= i.HighestBid {
		return fmt.Errorf("%w - current highest bid is %.2f", auctionerrors.ErrBidTooLow, i.HighestBid)
	}
	return nil
}

// SelectWinner returns the highest eligible bid; ties go to the earliest bid
func SelectWinner(bids []Bid, eligible func(Bid) bool) (Bid, bool) {
	var (
		winning Bid
		found   bool
	)
	for _, b := range bids {
		if eligible != nil && !eligible(b) {
			continue
		}
		if !found || b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
			found = true
		}
	}
	return winning, found
}

// IsActive is the eligibility rule used when an auction closes
func IsActive(b Bid) bool {
	return b.Status == BidActive
}

// CascadeCandidate picks the replacement winner after a seller declines one.
// Bidders who already had a bid declined on the item are skipped.
func CascadeCandidate(bids []Bid) (Bid, bool) {
	declined := make(map[string]struct{})
	for _, b := range bids {
		if b.Status == BidDeclined {
			declined[b.ProfileID] = struct{}{}
		}
	}
	return SelectWinner(bids, func(b Bid) bool {
		if b.Status != BidClosed || b.WinnerStatus != WinnerRejected {
			return false
		}
		_, skip := declined[b.ProfileID]
		return !skip
	})
}

// CloseRequest carries the inputs of an atomic auction close
type CloseRequest struct {
	ItemID        string
	Now           time.Time
	TransactionID string
}

// Closure is the outcome of closing an auction
type Closure struct {
	Item        Item         `json:"item"`
	Winner      *Bid         `json:"winner,omitempty"`
	Transaction *Transaction `json:"transaction,omitempty"`
	Rejected    int          `json:"rejected"`
}

// RejectRequest carries the inputs of a seller declining the winner
type RejectRequest struct {
	TransactionID     string
	Now               time.Time
	Cascade           bool
	NextTransactionID string
}

// Rejection is the outcome of a seller declining the winner
type Rejection struct {
	Rejected Transaction  `json:"rejected"`
	Next     *Transaction `json:"next,omitempty"`
	Item     Item         `json:"item"`
}

// PendingBid is a profile's best active bid on an item still running
type PendingBid struct {
	Bid    Bid  `json:"bid"`
	Item   Item `json:"item"`
	Outbid bool `json:"outbid"`
}

// ShippingUpdate moves a transaction along its delivery states
type ShippingUpdate struct {
	Status            TransactionStatus
	Carrier           string
	EstimatedDelivery *time.Time
	Now               time.Time
}

// TransactionFilter selects transactions by party and status
type TransactionFilter struct {
	SellerProfileID string
	BuyerProfileID  string
	Statuses        []TransactionStatus
}

// Matches reports whether t satisfies the filter
func (f TransactionFilter) Matches(t Transaction) bool {
	if f.SellerProfileID != "" && t.SellerProfileID != f.SellerProfileID {
		return false
	}
	if f.BuyerProfileID != "" && t.BuyerProfileID != f.BuyerProfileID {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if t.Status == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether a transaction may move from one status to another
func CanTransition(from, to TransactionStatus) bool {
	switch from {
	case TxnAwaitingConfirmation:
		return to == TxnConfirmed || to == TxnRejected
	case TxnConfirmed:
		return to == TxnShipped
	case TxnShipped:
		return to == TxnReceived
	default:
		return false
	}
}
