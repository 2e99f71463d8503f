package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

var itemOrderColumns = map[string]string{
	"total_bids":  "total_bids",
	"date_posted": "date_posted",
	"deadline":    "deadline",
	"highest_bid": "highest_bid",
}

// CreateItem stores a new listing and bumps the owner's item count
func (r *PostgresRepo) CreateItem(ctx context.Context, item models.Item) error {
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE profiles SET item_count = item_count + 1 WHERE profile_id = $1`, item.ProfileID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return auctionerrors.ErrProfileNotFound
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO items (`+itemColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			item.ItemID, item.ProfileID, item.Title, item.Description, pq.Array(item.ImageURLs), item.Collection,
			item.SellingPrice, item.MinimumBid, item.MaximumBid, item.HighestBid, item.TotalBids,
			item.Deadline, item.DatePosted, item.Availability, item.WinningBidID, item.ClosedAt)
		return mapErr(err, auctionerrors.ErrItemNotFound)
	})
	if err != nil {
		return fmt.Errorf("create item %s: %w", item.ItemID, err)
	}
	return nil
}

// UpdateItemDetails replaces the descriptive fields and deadline of an item
func (r *PostgresRepo) UpdateItemDetails(ctx context.Context, item models.Item) (models.Item, error) {
	var row itemRow
	query := `UPDATE items
		SET title = $2, description = $3, image_urls = $4, collection = $5, selling_price = $6, deadline = $7
		WHERE item_id = $1
		RETURNING ` + itemColumns
	err := r.db.GetContext(ctx, &row, query, item.ItemID, item.Title, item.Description,
		pq.Array(item.ImageURLs), item.Collection, item.SellingPrice, item.Deadline)
	if err != nil {
		return models.Item{}, fmt.Errorf("update item %s: %w", item.ItemID, mapErr(err, auctionerrors.ErrItemNotFound))
	}
	return row.toModel(), nil
}

// DeleteItem removes a listing that has not received any bids
func (r *PostgresRepo) DeleteItem(ctx context.Context, itemID string) error {
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		item, err := lockItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if item.TotalBids > 0 {
			return fmt.Errorf("item has %d bids: %w", item.TotalBids, auctionerrors.ErrInvalidState)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE item_id = $1`, itemID); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE profiles SET item_count = GREATEST(item_count - 1, 0) WHERE profile_id = $1`, item.ProfileID)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete item %s: %w", itemID, err)
	}
	return nil
}

// SearchItems filters, orders and paginates listings in SQL
func (r *PostgresRepo) SearchItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.Collection != "" {
		add("LOWER(collection) = LOWER($%d)", filter.Collection)
	}
	if filter.Availability != "" {
		add("availability = $%d", filter.Availability)
	}
	if filter.ProfileID != "" {
		add("profile_id = $%d", filter.ProfileID)
	}
	if filter.MinHighestBid != nil {
		add("highest_bid > $%d", *filter.MinHighestBid)
	}
	if filter.MaxHighestBid != nil {
		add("highest_bid < $%d", *filter.MaxHighestBid)
	}

	query := `SELECT ` + itemColumns + ` FROM items`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + orderClause(filter.OrderBy)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows := []itemRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return itemsFromRows(rows), nil
}

// CountCollections returns available item counts per collection, largest first
func (r *PostgresRepo) CountCollections(ctx context.Context) ([]models.CollectionCount, error) {
	counts := []models.CollectionCount{}
	query := `SELECT collection, COUNT(*) AS items FROM items
		WHERE availability = $1 AND collection <> ''
		GROUP BY collection
		ORDER BY items DESC, collection`
	if err := r.db.SelectContext(ctx, &counts, query, models.Available); err != nil {
		return nil, fmt.Errorf("count collections: %w", err)
	}
	return counts, nil
}

// RecentBids returns the latest bids across all items
func (r *PostgresRepo) RecentBids(ctx context.Context, limit int) ([]models.Bid, error) {
	bids := []models.Bid{}
	query := `SELECT ` + bidColumns + ` FROM bids ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	if err := r.db.SelectContext(ctx, &bids, query); err != nil {
		return nil, fmt.Errorf("recent bids: %w", err)
	}
	return bids, nil
}

func orderClause(orderBy string) string {
	if !models.ItemOrderings[orderBy] {
		return "date_posted DESC"
	}
	column := itemOrderColumns[strings.TrimPrefix(orderBy, "-")]
	if strings.HasPrefix(orderBy, "-") {
		return column + " DESC"
	}
	return column + " ASC"
}
