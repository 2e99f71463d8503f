package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/multierr"
)

// Publisher is the part of *amqp.Channel the notifier needs
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitNotifier publishes events to a topic exchange keyed by event kind
type RabbitNotifier struct {
	conn     *amqp.Connection
	channel  Publisher
	exchange string
}

// NewRabbitNotifier dials the broker and declares a durable topic exchange
func NewRabbitNotifier(url, exchange string) (*RabbitNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("open channel: %w", err), conn.Close())
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, multierr.Combine(fmt.Errorf("declare exchange %s: %w", exchange, err), ch.Close(), conn.Close())
	}

	return &RabbitNotifier{conn: conn, channel: ch, exchange: exchange}, nil
}

// NewRabbitNotifierWithPublisher wraps an already open channel
func NewRabbitNotifierWithPublisher(pub Publisher, exchange string) *RabbitNotifier {
	return &RabbitNotifier{channel: pub, exchange: exchange}
}

// Publish publishes the event as persistent JSON
func (r *RabbitNotifier) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = r.channel.PublishWithContext(ctx,
		r.exchange,
		string(event.Kind),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Kind, err)
	}
	return nil
}

// Close closes the channel and, when owned, the connection
func (r *RabbitNotifier) Close() error {
	err := r.channel.Close()
	if r.conn != nil {
		err = multierr.Append(err, r.conn.Close())
	}
	return err
}
