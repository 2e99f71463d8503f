package events

import (
	"context"
	"time"

	"go.uber.org/multierr"

	"bluepenguin/utils"
)

// Kind names an auction event; it doubles as the AMQP routing key
type Kind string

const (
	BidPlaced           Kind = "bid.placed"
	AuctionClosed       Kind = "auction.closed"
	WinnerAccepted      Kind = "winner.accepted"
	WinnerRejected      Kind = "winner.rejected"
	DeadlineApproaching Kind = "deadline.approaching"
)

// Event is the payload published for every auction state change
type Event struct {
	Kind          Kind       `json:"kind"`
	ItemID        string     `json:"item_id"`
	BidID         string     `json:"bid_id,omitempty"`
	ProfileID     string     `json:"profile_id,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
	Amount        float64    `json:"amount,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

// Notifier delivers auction events to interested parties
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

// LogNotifier writes events to the structured log
type LogNotifier struct{}

// Publish logs the event at info level
func (LogNotifier) Publish(ctx context.Context, event Event) error {
	utils.Info("auction event", map[string]any{
		"kind":           event.Kind,
		"item_id":        event.ItemID,
		"bid_id":         event.BidID,
		"profile_id":     event.ProfileID,
		"transaction_id": event.TransactionID,
		"amount":         event.Amount,
	})
	return nil
}

// Fanout delivers to every notifier and combines their errors
type Fanout []Notifier

// Publish sends the event to all notifiers, even when some fail
func (f Fanout) Publish(ctx context.Context, event Event) error {
	var err error
	for _, n := range f {
		err = multierr.Append(err, n.Publish(ctx, event))
	}
	return err
}
