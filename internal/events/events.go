// Package events publishes checkout and payment outcomes to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-gateway/internal/logger"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	CheckoutCompleted  = "checkout.completed"
	CheckoutRedirected = "checkout.redirected"
	CheckoutFailed     = "checkout.failed"
	PaymentSucceeded   = "payment.succeeded"
	PaymentFailed      = "payment.failed"
	PaymentCancelled   = "payment.cancelled"
)

type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	OrderNumber string    `json:"order_number,omitempty"`
	Message     string    `json:"message,omitempty"`
	Code        string    `json:"code,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func New(eventType, orderNumber string) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		OrderNumber: orderNumber,
		OccurredAt:  time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends events to a durable topic exchange keyed by event type.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.OccurredAt,
		ContentType:  "application/json",
		MessageId:    e.ID,
		Type:         e.Type,
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, e.Type, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			return err
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops every event. Used when RabbitMQ is not configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }

// Connect returns an AMQP publisher, or a NoopPublisher when url is empty or
// the broker is unreachable.
func Connect(url, exchange string) Publisher {
	if url == "" {
		return NoopPublisher{}
	}
	p, err := NewAMQPPublisher(url, exchange)
	if err != nil {
		logger.L().Warn("rabbitmq unavailable, events disabled", zap.Error(err))
		return NoopPublisher{}
	}
	logger.L().Info("rabbitmq publisher ready", zap.String("exchange", exchange))
	return p
}

// Emit publishes e and logs instead of failing; outcome delivery never
// depends on the broker.
func Emit(ctx context.Context, pub Publisher, e Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, e); err != nil {
		logger.FromCtx(ctx).Warn("event publish failed",
			zap.String("event_type", e.Type),
			zap.String("order_number", e.OrderNumber),
			zap.Error(err),
		)
	}
}
