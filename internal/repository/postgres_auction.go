package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

const bidColumns = `bid_id, item_id, profile_id, amount, created_at, status, winner_status`

const transactionColumns = `transaction_id, item_id, bid_id, seller_profile_id, buyer_profile_id, amount,
	status, carrier, estimated_delivery, created_at, updated_at`

// GetItem returns an item by ID
func (r *PostgresRepo) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	var row itemRow
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1`
	if err := r.db.GetContext(ctx, &row, query, itemID); err != nil {
		return models.Item{}, fmt.Errorf("get item %s: %w", itemID, mapErr(err, auctionerrors.ErrItemNotFound))
	}
	return row.toModel(), nil
}

// RecordBid locks the item row, re-validates the bid and applies it
func (r *PostgresRepo) RecordBid(ctx context.Context, bid models.Bid) (models.Item, error) {
	var updated models.Item
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		item, err := lockItem(ctx, tx, bid.ItemID)
		if err != nil {
			return err
		}
		if err := item.CheckBid(bid.ProfileID, bid.Amount, bid.CreatedAt); err != nil {
			if errors.Is(err, auctionerrors.ErrBidTooLow) {
				return fmt.Errorf("%w (%v)", auctionerrors.ErrOutBid, err)
			}
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET highest_bid = $2, total_bids = total_bids + 1 WHERE item_id = $1`,
			bid.ItemID, bid.Amount); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO bids (`+bidColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			bid.BidID, bid.ItemID, bid.ProfileID, bid.Amount, bid.CreatedAt, bid.Status, bid.WinnerStatus); err != nil {
			return mapErr(err, auctionerrors.ErrItemNotFound)
		}

		item.HighestBid = bid.Amount
		item.TotalBids++
		updated = item
		return nil
	})
	if err != nil {
		return models.Item{}, fmt.Errorf("record bid for item %s: %w", bid.ItemID, err)
	}
	return updated, nil
}

// GetBid returns a single bid
func (r *PostgresRepo) GetBid(ctx context.Context, bidID string) (models.Bid, error) {
	var bid models.Bid
	if err := r.db.GetContext(ctx, &bid, `SELECT `+bidColumns+` FROM bids WHERE bid_id = $1`, bidID); err != nil {
		return models.Bid{}, fmt.Errorf("get bid %s: %w", bidID, mapErr(err, auctionerrors.ErrBidNotFound))
	}
	return bid, nil
}

// GetBidsByItem returns all bids for an item in arrival order
func (r *PostgresRepo) GetBidsByItem(ctx context.Context, itemID string) ([]models.Bid, error) {
	if _, err := r.GetItem(ctx, itemID); err != nil {
		return nil, err
	}
	bids := []models.Bid{}
	query := `SELECT ` + bidColumns + ` FROM bids WHERE item_id = $1 ORDER BY created_at, bid_id`
	if err := r.db.SelectContext(ctx, &bids, query, itemID); err != nil {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, err)
	}
	return bids, nil
}

// GetBidsByProfile returns every bid a profile has placed, newest first
func (r *PostgresRepo) GetBidsByProfile(ctx context.Context, profileID string) ([]models.Bid, error) {
	bids := []models.Bid{}
	query := `SELECT ` + bidColumns + ` FROM bids WHERE profile_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &bids, query, profileID); err != nil {
		return nil, fmt.Errorf("get bids of profile %s: %w", profileID, err)
	}
	return bids, nil
}

// ListExpiredItems returns unclosed available items whose deadline is at or before now
func (r *PostgresRepo) ListExpiredItems(ctx context.Context, now time.Time) ([]models.Item, error) {
	rows := []itemRow{}
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE closed_at IS NULL AND availability = $1 AND deadline <= $2
		ORDER BY deadline`
	if err := r.db.SelectContext(ctx, &rows, query, models.Available, now); err != nil {
		return nil, fmt.Errorf("list expired items: %w", err)
	}
	return itemsFromRows(rows), nil
}

// ListItemsClosingBetween returns open items with a deadline in (from, to]
func (r *PostgresRepo) ListItemsClosingBetween(ctx context.Context, from, to time.Time) ([]models.Item, error) {
	rows := []itemRow{}
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE closed_at IS NULL AND availability = $1 AND deadline > $2 AND deadline <= $3
		ORDER BY deadline`
	if err := r.db.SelectContext(ctx, &rows, query, models.Available, from, to); err != nil {
		return nil, fmt.Errorf("list items closing soon: %w", err)
	}
	return itemsFromRows(rows), nil
}

// CloseAuction resolves an expired auction to at most one winner
func (r *PostgresRepo) CloseAuction(ctx context.Context, req models.CloseRequest) (models.Closure, error) {
	var closure models.Closure
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		item, err := lockItem(ctx, tx, req.ItemID)
		if err != nil {
			return err
		}
		if item.IsClosed() {
			return auctionerrors.ErrAlreadyClosed
		}
		if !item.IsExpired(req.Now) {
			return auctionerrors.ErrAuctionNotEnded
		}

		bids := []models.Bid{}
		if err := tx.SelectContext(ctx, &bids,
			`SELECT `+bidColumns+` FROM bids WHERE item_id = $1 ORDER BY created_at, bid_id`, req.ItemID); err != nil {
			return err
		}
		winner, found := models.SelectWinner(bids, models.IsActive)

		var rejected []string
		for _, b := range bids {
			if b.Status == models.BidActive && (!found || b.BidID != winner.BidID) {
				rejected = append(rejected, b.BidID)
			}
		}
		if len(rejected) > 0 {
			if _, err := tx.ExecContext(ctx,
				`UPDATE bids SET status = $1, winner_status = $2 WHERE bid_id = ANY($3)`,
				models.BidClosed, models.WinnerRejected, pq.Array(rejected)); err != nil {
				return err
			}
		}
		closure.Rejected = len(rejected)

		closedAt := req.Now
		item.ClosedAt = &closedAt
		if found {
			if _, err := tx.ExecContext(ctx,
				`UPDATE bids SET status = $1, winner_status = $2 WHERE bid_id = $3`,
				models.BidClosed, models.WinnerAccepted, winner.BidID); err != nil {
				return err
			}
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
			if err := insertTransaction(ctx, tx, txn); err != nil {
				return err
			}
			closure.Winner = &winner
			closure.Transaction = &txn
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET closed_at = $2, availability = $3, winning_bid_id = $4 WHERE item_id = $1`,
			item.ItemID, item.ClosedAt, item.Availability, item.WinningBidID); err != nil {
			return err
		}
		closure.Item = item
		return nil
	})
	if err != nil {
		return models.Closure{}, fmt.Errorf("close auction %s: %w", req.ItemID, err)
	}
	return closure, nil
}

// GetTransaction returns a single transaction
func (r *PostgresRepo) GetTransaction(ctx context.Context, txnID string) (models.Transaction, error) {
	var txn models.Transaction
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`
	if err := r.db.GetContext(ctx, &txn, query, txnID); err != nil {
		return models.Transaction{}, fmt.Errorf("get transaction %s: %w", txnID, mapErr(err, auctionerrors.ErrTransactionNotFound))
	}
	return txn, nil
}

// AcceptWinner confirms a transaction and moves the bid amount from buyer to seller.
// A VIP buyer gets the discount credited back; the buyer earns points for the amount paid.
func (r *PostgresRepo) AcceptWinner(ctx context.Context, txnID string, now time.Time) (models.Transaction, error) {
	var txn models.Transaction
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		txn, err = lockTransaction(ctx, tx, txnID)
		if err != nil {
			return err
		}
		if !models.CanTransition(txn.Status, models.TxnConfirmed) {
			return fmt.Errorf("from %s: %w", txn.Status, auctionerrors.ErrInvalidState)
		}

		res, err := tx.ExecContext(ctx, `UPDATE accounts
			SET balance = balance - $2 + CASE WHEN status = $3 THEN $4::DOUBLE PRECISION ELSE 0 END, points = points + $5
			WHERE account_id = (SELECT account_id FROM profiles WHERE profile_id = $1) AND balance >= $2`,
			txn.BuyerProfileID, txn.Amount, models.StatusVIP, models.VIPDiscount(models.StatusVIP, txn.Amount), models.PointsFor(txn.Amount))
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return auctionerrors.ErrInsufficientBalance
		}
		if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance + $2
			WHERE account_id = (SELECT account_id FROM profiles WHERE profile_id = $1)`,
			txn.SellerProfileID, txn.Amount); err != nil {
			return err
		}

		txn.Status = models.TxnConfirmed
		txn.UpdatedAt = now
		_, err = tx.ExecContext(ctx, `UPDATE transactions SET status = $2, updated_at = $3 WHERE transaction_id = $1`,
			txnID, txn.Status, now)
		return err
	})
	if err != nil {
		return models.Transaction{}, fmt.Errorf("accept winner %s: %w", txnID, err)
	}
	return txn, nil
}

// RejectWinner declines the winning bid and, when asked, promotes the next eligible bidder
func (r *PostgresRepo) RejectWinner(ctx context.Context, req models.RejectRequest) (models.Rejection, error) {
	var rejection models.Rejection
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		txn, err := lockTransaction(ctx, tx, req.TransactionID)
		if err != nil {
			return err
		}
		if !models.CanTransition(txn.Status, models.TxnRejected) {
			return fmt.Errorf("from %s: %w", txn.Status, auctionerrors.ErrInvalidState)
		}
		item, err := lockItem(ctx, tx, txn.ItemID)
		if err != nil {
			return err
		}

		txn.Status = models.TxnRejected
		txn.UpdatedAt = req.Now
		if _, err := tx.ExecContext(ctx, `UPDATE transactions SET status = $2, updated_at = $3 WHERE transaction_id = $1`,
			txn.TransactionID, txn.Status, req.Now); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE bids SET status = $2, winner_status = $3 WHERE bid_id = $1`,
			txn.BidID, models.BidDeclined, models.WinnerRejected); err != nil {
			return err
		}
		rejection.Rejected = txn

		var (
			candidate models.Bid
			found     bool
		)
		if req.Cascade {
			bids := []models.Bid{}
			if err := tx.SelectContext(ctx, &bids,
				`SELECT `+bidColumns+` FROM bids WHERE item_id = $1 ORDER BY created_at, bid_id`, item.ItemID); err != nil {
				return err
			}
			candidate, found = models.CascadeCandidate(bids)
		}

		if found {
			if _, err := tx.ExecContext(ctx, `UPDATE bids SET winner_status = $2 WHERE bid_id = $1`,
				candidate.BidID, models.WinnerAccepted); err != nil {
				return err
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
			if err := insertTransaction(ctx, tx, next); err != nil {
				return err
			}
			rejection.Next = &next
		} else {
			item.WinningBidID = nil
			item.Availability = models.Available
		}

		if _, err := tx.ExecContext(ctx, `UPDATE items SET availability = $2, winning_bid_id = $3 WHERE item_id = $1`,
			item.ItemID, item.Availability, item.WinningBidID); err != nil {
			return err
		}
		rejection.Item = item
		return nil
	})
	if err != nil {
		return models.Rejection{}, fmt.Errorf("reject winner %s: %w", req.TransactionID, err)
	}
	return rejection, nil
}

// ListTransactions returns matching transactions, newest first
func (r *PostgresRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.SellerProfileID != "" {
		args = append(args, filter.SellerProfileID)
		conds = append(conds, fmt.Sprintf("seller_profile_id = $%d", len(args)))
	}
	if filter.BuyerProfileID != "" {
		args = append(args, filter.BuyerProfileID)
		conds = append(conds, fmt.Sprintf("buyer_profile_id = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		args = append(args, pq.Array(statuses))
		conds = append(conds, fmt.Sprintf("status = ANY($%d)", len(args)))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, transaction_id"

	txns := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, query, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

// UpdateShipping moves a transaction to a shipping state
func (r *PostgresRepo) UpdateShipping(ctx context.Context, txnID string, update models.ShippingUpdate) (models.Transaction, error) {
	var txn models.Transaction
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		txn, err = lockTransaction(ctx, tx, txnID)
		if err != nil {
			return err
		}
		if !models.CanTransition(txn.Status, update.Status) {
			return fmt.Errorf("from %s to %s: %w", txn.Status, update.Status, auctionerrors.ErrInvalidState)
		}
		txn.Status = update.Status
		if update.Carrier != "" {
			txn.Carrier = update.Carrier
		}
		if update.EstimatedDelivery != nil {
			txn.EstimatedDelivery = update.EstimatedDelivery
		}
		txn.UpdatedAt = update.Now
		_, err = tx.ExecContext(ctx, `UPDATE transactions
			SET status = $2, carrier = $3, estimated_delivery = $4, updated_at = $5
			WHERE transaction_id = $1`,
			txnID, txn.Status, txn.Carrier, txn.EstimatedDelivery, txn.UpdatedAt)
		return err
	})
	if err != nil {
		return models.Transaction{}, fmt.Errorf("update shipping %s: %w", txnID, err)
	}
	return txn, nil
}

func lockTransaction(ctx context.Context, tx *sqlx.Tx, txnID string) (models.Transaction, error) {
	var txn models.Transaction
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &txn, query, txnID); err != nil {
		return models.Transaction{}, mapErr(err, auctionerrors.ErrTransactionNotFound)
	}
	return txn, nil
}

func insertTransaction(ctx context.Context, tx *sqlx.Tx, txn models.Transaction) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO transactions (`+transactionColumns+`) VALUES
		(:transaction_id, :item_id, :bid_id, :seller_profile_id, :buyer_profile_id, :amount,
		 :status, :carrier, :estimated_delivery, :created_at, :updated_at)`, txn)
	return mapErr(err, auctionerrors.ErrTransactionNotFound)
}
