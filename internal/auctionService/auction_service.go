package auction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"bluepenguin/internal/events"
	"bluepenguin/internal/metrics"
	"bluepenguin/internal/repository"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

// AuctionService implements bid placement, auction closing and the winner workflow
type AuctionService struct {
	repo     repository.AuctionDB
	notifier events.Notifier
	clock    utils.Clock
	metrics  *metrics.Metrics
	cascade  bool

	mu       sync.Mutex
	reminded map[string]time.Time // key: itemID|deadline, value: deadline
}

// Option configures an AuctionService
type Option func(*AuctionService)

// WithNotifier sets where auction events are published
func WithNotifier(n events.Notifier) Option {
	return func(s *AuctionService) { s.notifier = n }
}

// WithClock sets the time source used for deadlines
func WithClock(c utils.Clock) Option {
	return func(s *AuctionService) { s.clock = c }
}

// WithMetrics sets the Prometheus collectors
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *AuctionService) { s.metrics = m }
}

// WithRejectCascade controls whether a declined winner passes the item to the next bidder
func WithRejectCascade(on bool) Option {
	return func(s *AuctionService) { s.cascade = on }
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, opts ...Option) *AuctionService {
	s := &AuctionService{
		repo:     repo,
		notifier: events.LogNotifier{},
		clock:    utils.SystemClock{},
		cascade:  true,
		reminded: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid validates and records a bid for an item
func (s *AuctionService) PlaceBid(ctx context.Context, itemID, bidderProfileID string, amount float64) (models.Bid, error) {
	bid, err := s.placeBid(ctx, itemID, bidderProfileID, amount)
	if err != nil {
		s.metrics.BidRejected(rejectReason(err))
		return models.Bid{}, err
	}
	s.metrics.BidPlaced()
	return bid, nil
}

func (s *AuctionService) placeBid(ctx context.Context, itemID, bidderProfileID string, amount float64) (models.Bid, error) {
	if itemID == "" || bidderProfileID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing itemID or profileID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	if err := s.checkBidder(ctx, bidderProfileID); err != nil {
		return models.Bid{}, err
	}

	now := s.clock.Now()
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if err := item.CheckBid(bidderProfileID, amount, now); err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}

	bid := models.Bid{
		BidID:        utils.GenerateID(),
		ItemID:       itemID,
		ProfileID:    bidderProfileID,
		Amount:       amount,
		CreatedAt:    now,
		Status:       models.BidActive,
		WinnerStatus: models.WinnerIneligible,
	}
	if _, err := s.repo.RecordBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for item %s by profile %s: %w", itemID, bidderProfileID, err)
	}

	s.publish(ctx, events.Event{
		Kind:       events.BidPlaced,
		ItemID:     itemID,
		BidID:      bid.BidID,
		ProfileID:  bidderProfileID,
		Amount:     amount,
		OccurredAt: now,
	})
	return bid, nil
}

// checkBidder rejects visitors and suspended accounts
func (s *AuctionService) checkBidder(ctx context.Context, profileID string) error {
	profile, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		return fmt.Errorf("service: failed to load bidder profile %s: %w", profileID, err)
	}
	account, err := s.repo.GetAccount(ctx, profile.AccountID)
	if err != nil {
		return fmt.Errorf("service: failed to load bidder account: %w", err)
	}
	if account.Removed() {
		return fmt.Errorf("service: %w - account was removed", auctionerrors.ErrForbidden)
	}
	if account.IsSuspended {
		return fmt.Errorf("service: %w - pay the suspension fine to bid again", auctionerrors.ErrAccountSuspended)
	}
	if account.Status == models.StatusVisitor {
		return fmt.Errorf("service: %w - visitors must apply to become users before bidding", auctionerrors.ErrForbidden)
	}
	return nil
}

// GetBidsForItem returns all bids for a specific item
func (s *AuctionService) GetBidsForItem(ctx context.Context, itemID string) ([]models.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}
	return bids, nil
}

// GetWinningBid returns the accepted winner of a closed auction, or the current leader of an open one
func (s *AuctionService) GetWinningBid(ctx context.Context, itemID string) (models.Bid, error) {
	if itemID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if item.WinningBidID != nil {
		bid, err := s.repo.GetBid(ctx, *item.WinningBidID)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to get winning bid for item %s: %w", itemID, err)
		}
		return bid, nil
	}

	bids, err := s.repo.GetBidsByItem(ctx, itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}
	leader, ok := models.SelectWinner(bids, models.IsActive)
	if !ok {
		return models.Bid{}, fmt.Errorf("service: item %s: %w", itemID, auctionerrors.ErrNoBids)
	}
	return leader, nil
}

// GetPendingBids returns the profile's best bid on every auction that has not closed yet
func (s *AuctionService) GetPendingBids(ctx context.Context, profileID string) ([]models.PendingBid, error) {
	if profileID == "" {
		return nil, fmt.Errorf("service: %w - empty profile ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids of profile %s: %w", profileID, err)
	}

	best := make(map[string]models.Bid)
	for _, b := range bids {
		if b.Status != models.BidActive {
			continue
		}
		if cur, ok := best[b.ItemID]; !ok || b.Amount > cur.Amount {
			best[b.ItemID] = b
		}
	}

	pending := make([]models.PendingBid, 0, len(best))
	for itemID, b := range best {
		item, err := s.repo.GetItem(ctx, itemID)
		if errors.Is(err, auctionerrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
		}
		if item.IsClosed() {
			continue
		}
		pending = append(pending, models.PendingBid{Bid: b, Item: item, Outbid: item.HighestBid > b.Amount})
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Item.Deadline.Before(pending[j].Item.Deadline)
	})
	return pending, nil
}

// publish delivers an event; failures are logged and never reach the caller
func (s *AuctionService) publish(ctx context.Context, event events.Event) {
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.metrics.NotificationFailed()
		utils.Warn("failed to publish auction event", map[string]any{
			"kind":    event.Kind,
			"item_id": event.ItemID,
			"error":   err.Error(),
		})
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, auctionerrors.ErrOutBid):
		return "outbid"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return "self_bid"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return "closed"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return "invalid"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return "forbidden"
	case errors.Is(err, auctionerrors.ErrAccountSuspended):
		return "suspended"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
