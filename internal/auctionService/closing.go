package auction

import (
	"context"
	"fmt"
	"time"

	"bluepenguin/internal/events"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

// CloseAuction resolves an auction whose deadline has passed
func (s *AuctionService) CloseAuction(ctx context.Context, itemID string) (models.Closure, error) {
	if itemID == "" {
		return models.Closure{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}

	now := s.clock.Now()
	closure, err := s.repo.CloseAuction(ctx, models.CloseRequest{
		ItemID:        itemID,
		Now:           now,
		TransactionID: utils.GenerateID(),
	})
	if err != nil {
		return models.Closure{}, fmt.Errorf("service: failed to close auction %s: %w", itemID, err)
	}
	s.metrics.AuctionClosed(closure.Winner != nil)

	event := events.Event{Kind: events.AuctionClosed, ItemID: itemID, OccurredAt: now}
	fields := map[string]any{"item_id": itemID, "rejected": closure.Rejected}
	if closure.Winner != nil {
		event.BidID = closure.Winner.BidID
		event.ProfileID = closure.Winner.ProfileID
		event.Amount = closure.Winner.Amount
		if closure.Transaction != nil {
			event.TransactionID = closure.Transaction.TransactionID
		}
		fields["winning_bid_id"] = closure.Winner.BidID
		fields["amount"] = closure.Winner.Amount
	}
	s.publish(ctx, event)
	utils.Info("auction closed", fields)

	return closure, nil
}

// ListExpired returns auctions past their deadline that still need closing
func (s *AuctionService) ListExpired(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.ListExpiredItems(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("service: failed to list expired items: %w", err)
	}
	return items, nil
}

// AcceptWin lets the seller confirm the winner; the bid amount moves from buyer to seller
func (s *AuctionService) AcceptWin(ctx context.Context, transactionID, sellerProfileID string) (models.Transaction, error) {
	if _, err := s.sellerTransaction(ctx, transactionID, sellerProfileID); err != nil {
		return models.Transaction{}, err
	}

	now := s.clock.Now()
	txn, err := s.repo.AcceptWinner(ctx, transactionID, now)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("service: failed to accept winner of transaction %s: %w", transactionID, err)
	}

	s.publish(ctx, events.Event{
		Kind:          events.WinnerAccepted,
		ItemID:        txn.ItemID,
		BidID:         txn.BidID,
		ProfileID:     txn.BuyerProfileID,
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		OccurredAt:    now,
	})

	for _, profileID := range []string{txn.BuyerProfileID, txn.SellerProfileID} {
		s.reviewVIP(ctx, profileID)
	}
	return txn, nil
}

// reviewVIP re-evaluates the VIP status of a profile's account after a completed sale.
// Failures are logged; the sale itself already succeeded.
func (s *AuctionService) reviewVIP(ctx context.Context, profileID string) {
	profile, err := s.repo.GetProfile(ctx, profileID)
	if err == nil {
		_, err = s.repo.ReviewVIPStatus(ctx, profile.AccountID)
	}
	if err != nil {
		utils.Error("vip review failed", map[string]any{"profile_id": profileID, "error": err.Error()})
	}
}

// RejectWin lets the seller decline the winner. With cascading on, the next eligible bidder wins instead.
func (s *AuctionService) RejectWin(ctx context.Context, transactionID, sellerProfileID string) (models.Rejection, error) {
	if _, err := s.sellerTransaction(ctx, transactionID, sellerProfileID); err != nil {
		return models.Rejection{}, err
	}

	now := s.clock.Now()
	rejection, err := s.repo.RejectWinner(ctx, models.RejectRequest{
		TransactionID:     transactionID,
		Now:               now,
		Cascade:           s.cascade,
		NextTransactionID: utils.GenerateID(),
	})
	if err != nil {
		return models.Rejection{}, fmt.Errorf("service: failed to reject winner of transaction %s: %w", transactionID, err)
	}

	rejected := rejection.Rejected
	s.publish(ctx, events.Event{
		Kind:          events.WinnerRejected,
		ItemID:        rejected.ItemID,
		BidID:         rejected.BidID,
		ProfileID:     rejected.BuyerProfileID,
		TransactionID: rejected.TransactionID,
		Amount:        rejected.Amount,
		OccurredAt:    now,
	})
	if next := rejection.Next; next != nil {
		s.publish(ctx, events.Event{
			Kind:          events.AuctionClosed,
			ItemID:        next.ItemID,
			BidID:         next.BidID,
			ProfileID:     next.BuyerProfileID,
			TransactionID: next.TransactionID,
			Amount:        next.Amount,
			OccurredAt:    now,
		})
	}
	return rejection, nil
}

// NotifyClosingSoon publishes one reminder per open auction ending within window.
// An item is reminded again only if its deadline changes. Reminders for
// deadlines already past are forgotten.
func (s *AuctionService) NotifyClosingSoon(ctx context.Context, window time.Duration) (int, error) {
	now := s.clock.Now()
	items, err := s.repo.ListItemsClosingBetween(ctx, now, now.Add(window))
	if err != nil {
		return 0, fmt.Errorf("service: failed to list items closing soon: %w", err)
	}

	s.mu.Lock()
	for key, deadline := range s.reminded {
		if deadline.Before(now) {
			delete(s.reminded, key)
		}
	}
	s.mu.Unlock()

	sent := 0
	for _, item := range items {
		key := item.ItemID + "|" + item.Deadline.Format(time.RFC3339Nano)
		s.mu.Lock()
		_, done := s.reminded[key]
		if !done {
			s.reminded[key] = item.Deadline
		}
		s.mu.Unlock()
		if done {
			continue
		}

		deadline := item.Deadline
		s.publish(ctx, events.Event{
			Kind:       events.DeadlineApproaching,
			ItemID:     item.ItemID,
			ProfileID:  item.ProfileID,
			Amount:     item.HighestBid,
			Deadline:   &deadline,
			OccurredAt: now,
		})
		sent++
	}
	return sent, nil
}

// sellerTransaction loads a transaction and checks that profileID sold the item
func (s *AuctionService) sellerTransaction(ctx context.Context, transactionID, profileID string) (models.Transaction, error) {
	if transactionID == "" || profileID == "" {
		return models.Transaction{}, fmt.Errorf("service: %w - missing transaction or profile ID", auctionerrors.ErrInvalidInput)
	}
	txn, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("service: failed to load transaction %s: %w", transactionID, err)
	}
	if txn.SellerProfileID != profileID {
		return models.Transaction{}, fmt.Errorf("service: %w - only the seller can decide on the winner", auctionerrors.ErrForbidden)
	}
	return txn, nil
}
