package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"storefront-gateway/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "storefront.events"}

	e := New(CheckoutRedirected, "ORD-0001")
	require.NoError(t, p.Publish(context.Background(), e))

	assert.Equal(t, "storefront.events", ch.exchange)
	assert.Equal(t, CheckoutRedirected, ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, e.ID, ch.msg.MessageId)

	var got Event
	require.NoError(t, json.Unmarshal(ch.msg.Body, &got))
	assert.Equal(t, "ORD-0001", got.OrderNumber)
	assert.Equal(t, CheckoutRedirected, got.Type)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	p := &AMQPPublisher{ch: &fakeChannel{err: errors.New("channel closed")}, exchange: "x"}

	err := p.Publish(context.Background(), New(PaymentFailed, ""))
	assert.ErrorContains(t, err, "channel closed")
}

func TestConnect_EmptyURL(t *testing.T) {
	assert.IsType(t, NoopPublisher{}, Connect("", "x"))
}

func TestEmit_LogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	pub := &AMQPPublisher{ch: &fakeChannel{err: errors.New("down")}, exchange: "x"}
	Emit(context.Background(), pub, New(CheckoutFailed, "ORD-9"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "event publish failed", entry.Message)
	assert.Equal(t, "ORD-9", entry.ContextMap()["order_number"])

	Emit(context.Background(), NoopPublisher{}, New(CheckoutFailed, "ORD-9"))
	Emit(context.Background(), nil, New(CheckoutFailed, "ORD-9"))
	assert.Equal(t, 1, logs.Len())
}
