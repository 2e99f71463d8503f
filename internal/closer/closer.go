package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"bluepenguin/internal/metrics"
	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

// Auctions is the part of the auction service the closer drives
type Auctions interface {
	ListExpired(ctx context.Context) ([]models.Item, error)
	CloseAuction(ctx context.Context, itemID string) (models.Closure, error)
	NotifyClosingSoon(ctx context.Context, window time.Duration) (int, error)
}

// Config tunes a Closer
type Config struct {
	Interval       time.Duration
	Concurrency    int
	ReminderWindow time.Duration
	MaxRetries     uint64
	RetryBase      time.Duration
}

// Closer periodically resolves auctions whose deadline has passed
type Closer struct {
	auctions Auctions
	cfg      Config
	metrics  *metrics.Metrics

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New creates a Closer; zero config fields fall back to defaults
func New(auctions Auctions, cfg Config, m *metrics.Metrics) *Closer {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 100 * time.Millisecond
	}
	return &Closer{
		auctions: auctions,
		cfg:      cfg,
		metrics:  m,
		inFlight: make(map[string]struct{}),
	}
}

// Run sweeps once immediately and then on every interval until ctx is done
func (c *Closer) Run(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	utils.Info("auction closer started", map[string]any{
		"interval":    c.cfg.Interval.String(),
		"concurrency": c.cfg.Concurrency,
	})
	for {
		if err := c.Tick(ctx); err != nil && ctx.Err() == nil {
			utils.Error("auction closer sweep failed", map[string]any{"error": err.Error()})
		}
		select {
		case <-ctx.Done():
			utils.Info("auction closer stopped", nil)
			return
		case <-ticker.C:
		}
	}
}

// Tick closes every expired auction and sends deadline reminders.
// Errors of individual items are combined; one failing item does not stop the others.
func (c *Closer) Tick(ctx context.Context) (err error) {
	defer func() { c.metrics.CloserRun(err) }()

	items, err := c.auctions.ListExpired(ctx)
	if err != nil {
		return fmt.Errorf("closer: failed to list expired auctions: %w", err)
	}

	var (
		g      errgroup.Group
		errMu  sync.Mutex
		result error
		closed int
	)
	g.SetLimit(c.cfg.Concurrency)
	for _, item := range items {
		itemID := item.ItemID
		g.Go(func() error {
			ok, err := c.closeOne(ctx, itemID)
			errMu.Lock()
			defer errMu.Unlock()
			if err != nil {
				result = multierr.Append(result, err)
			} else if ok {
				closed++
			}
			return nil
		})
	}
	_ = g.Wait()

	if c.cfg.ReminderWindow > 0 {
		if _, err := c.auctions.NotifyClosingSoon(ctx, c.cfg.ReminderWindow); err != nil {
			result = multierr.Append(result, fmt.Errorf("closer: failed to send reminders: %w", err))
		}
	}

	if len(items) > 0 {
		utils.Debug("auction closer sweep done", map[string]any{"expired": len(items), "closed": closed})
	}
	return result
}

// closeOne closes a single auction unless another worker already holds it.
// It reports whether this call performed the close.
func (c *Closer) closeOne(ctx context.Context, itemID string) (bool, error) {
	if !c.acquire(itemID) {
		return false, nil
	}
	defer c.release(itemID)

	backoff := retry.WithMaxRetries(c.cfg.MaxRetries, retry.NewExponential(c.cfg.RetryBase))
	closed := false
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		_, err := c.auctions.CloseAuction(ctx, itemID)
		switch {
		case err == nil:
			closed = true
			return nil
		case settled(err):
			return nil
		case permanent(err):
			return err
		default:
			return retry.RetryableError(err)
		}
	})
	if err != nil {
		return false, fmt.Errorf("closer: item %s: %w", itemID, err)
	}
	return closed, nil
}

func (c *Closer) acquire(itemID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[itemID]; busy {
		return false
	}
	c.inFlight[itemID] = struct{}{}
	return true
}

func (c *Closer) release(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, itemID)
}

// settled errors mean someone else already resolved the auction
func settled(err error) bool {
	return errors.Is(err, auctionerrors.ErrAlreadyClosed) || errors.Is(err, auctionerrors.ErrNotFound)
}

func permanent(err error) bool {
	return errors.Is(err, auctionerrors.ErrAuctionNotEnded) ||
		errors.Is(err, auctionerrors.ErrInvalidInput) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
