package auction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

// ShipItem marks a confirmed sale as shipped
func (s *AuctionService) ShipItem(ctx context.Context, transactionID, sellerProfileID, carrier string, eta *time.Time) (models.Transaction, error) {
	carrier = strings.TrimSpace(carrier)
	if carrier == "" {
		return models.Transaction{}, fmt.Errorf("service: %w - carrier is required", auctionerrors.ErrInvalidInput)
	}
	if _, err := s.sellerTransaction(ctx, transactionID, sellerProfileID); err != nil {
		return models.Transaction{}, err
	}

	now := s.clock.Now()
	if eta != nil && eta.Before(now) {
		return models.Transaction{}, fmt.Errorf("service: %w - estimated delivery is in the past", auctionerrors.ErrInvalidInput)
	}
	txn, err := s.repo.UpdateShipping(ctx, transactionID, models.ShippingUpdate{
		Status:            models.TxnShipped,
		Carrier:           carrier,
		EstimatedDelivery: eta,
		Now:               now,
	})
	if err != nil {
		return models.Transaction{}, fmt.Errorf("service: failed to ship transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// MarkReceived lets the buyer confirm delivery
func (s *AuctionService) MarkReceived(ctx context.Context, transactionID, buyerProfileID string) (models.Transaction, error) {
	if transactionID == "" || buyerProfileID == "" {
		return models.Transaction{}, fmt.Errorf("service: %w - missing transaction or profile ID", auctionerrors.ErrInvalidInput)
	}
	txn, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("service: failed to load transaction %s: %w", transactionID, err)
	}
	if txn.BuyerProfileID != buyerProfileID {
		return models.Transaction{}, fmt.Errorf("service: %w - only the buyer can confirm delivery", auctionerrors.ErrForbidden)
	}

	txn, err = s.repo.UpdateShipping(ctx, transactionID, models.ShippingUpdate{Status: models.TxnReceived, Now: s.clock.Now()})
	if err != nil {
		return models.Transaction{}, fmt.Errorf("service: failed to mark transaction %s received: %w", transactionID, err)
	}
	return txn, nil
}

// ListSellerTransactions returns every sale of a profile
func (s *AuctionService) ListSellerTransactions(ctx context.Context, sellerProfileID string) ([]models.Transaction, error) {
	return s.listTransactions(ctx, models.TransactionFilter{SellerProfileID: sellerProfileID})
}

// ListAwaitingArrivals returns purchases that are on their way to the buyer
func (s *AuctionService) ListAwaitingArrivals(ctx context.Context, buyerProfileID string) ([]models.Transaction, error) {
	return s.listTransactions(ctx, models.TransactionFilter{
		BuyerProfileID: buyerProfileID,
		Statuses:       []models.TransactionStatus{models.TxnShipped},
	})
}

// NextActions returns sales that wait on the seller: a winner to decide on or an item to ship
func (s *AuctionService) NextActions(ctx context.Context, sellerProfileID string) ([]models.Transaction, error) {
	return s.listTransactions(ctx, models.TransactionFilter{
		SellerProfileID: sellerProfileID,
		Statuses:        []models.TransactionStatus{models.TxnAwaitingConfirmation, models.TxnConfirmed},
	})
}

func (s *AuctionService) listTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	if filter.SellerProfileID == "" && filter.BuyerProfileID == "" {
		return nil, fmt.Errorf("service: %w - empty profile ID", auctionerrors.ErrInvalidInput)
	}
	txns, err := s.repo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list transactions: %w", err)
	}
	return txns, nil
}
