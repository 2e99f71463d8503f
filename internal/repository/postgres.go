package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
	"go.uber.org/multierr"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

//go:embed migrations/*.sql
var migrations embed.FS

const uniqueViolation = "23505"

var _ Store = (*PostgresRepo)(nil)

// PostgresRepo implements Store on top of PostgreSQL
type PostgresRepo struct {
	db *sqlx.DB
}

// NewPostgresRepo connects to PostgreSQL, retrying while the server comes up, and applies migrations
func NewPostgresRepo(ctx context.Context, dsn string) (*PostgresRepo, error) {
	var db *sqlx.DB
	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		conn, err := sqlx.ConnectContext(ctx, "postgres", dsn)
		if err != nil {
			return retry.RetryableError(err)
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := Migrate(db.DB); err != nil {
		return nil, multierr.Append(err, db.Close())
	}
	return &PostgresRepo{db: db}, nil
}

// Migrate applies the embedded goose migrations
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Ping checks the database connection
func (r *PostgresRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close releases the connection pool
func (r *PostgresRepo) Close() error {
	return r.db.Close()
}

// withTx runs fn inside a transaction, rolling back on error
func (r *PostgresRepo) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = multierr.Append(err, rbErr)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// mapErr translates driver errors into repository sentinels
func mapErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", pqErr.Constraint, auctionerrors.ErrConflict)
	}
	return err
}

// itemRow is the database shape of models.Item
type itemRow struct {
	ItemID       string         `db:"item_id"`
	ProfileID    string         `db:"profile_id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	ImageURLs    pq.StringArray `db:"image_urls"`
	Collection   string         `db:"collection"`
	SellingPrice float64        `db:"selling_price"`
	MinimumBid   float64        `db:"minimum_bid"`
	MaximumBid   float64        `db:"maximum_bid"`
	HighestBid   float64        `db:"highest_bid"`
	TotalBids    int            `db:"total_bids"`
	Deadline     time.Time      `db:"deadline"`
	DatePosted   time.Time      `db:"date_posted"`
	Availability string         `db:"availability"`
	WinningBidID *string        `db:"winning_bid_id"`
	ClosedAt     *time.Time     `db:"closed_at"`
}

const itemColumns = `item_id, profile_id, title, description, image_urls, collection, selling_price,
	minimum_bid, maximum_bid, highest_bid, total_bids, deadline, date_posted, availability,
	winning_bid_id, closed_at`

func (row itemRow) toModel() models.Item {
	return models.Item{
		ItemID:       row.ItemID,
		ProfileID:    row.ProfileID,
		Title:        row.Title,
		Description:  row.Description,
		ImageURLs:    []string(row.ImageURLs),
		Collection:   row.Collection,
		SellingPrice: row.SellingPrice,
		MinimumBid:   row.MinimumBid,
		MaximumBid:   row.MaximumBid,
		HighestBid:   row.HighestBid,
		TotalBids:    row.TotalBids,
		Deadline:     row.Deadline,
		DatePosted:   row.DatePosted,
		Availability: models.Availability(row.Availability),
		WinningBidID: row.WinningBidID,
		ClosedAt:     row.ClosedAt,
	}
}

func itemsFromRows(rows []itemRow) []models.Item {
	out := make([]models.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out
}

// lockItem loads an item row under FOR UPDATE
func lockItem(ctx context.Context, tx *sqlx.Tx, itemID string) (models.Item, error) {
	var row itemRow
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &row, query, itemID); err != nil {
		return models.Item{}, mapErr(err, auctionerrors.ErrItemNotFound)
	}
	return row.toModel(), nil
}
