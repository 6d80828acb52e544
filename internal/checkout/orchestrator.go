package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cache"
	"storefront-gateway/internal/events"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgOrderFailed   = "주문 처리 중 오류가 발생했습니다."
	msgPrepareFailed = "결제 준비 중 오류가 발생했습니다."
	msgCartFailed    = "장바구니를 불러오지 못했습니다."
)

// ErrSubmitInProgress rejects a second submit for a session whose first
// submit has not finished.
var ErrSubmitInProgress = errors.New("checkout already in progress")

type Backend interface {
	CreateOrder(ctx context.Context, cred backend.Credentials, req backend.CreateOrderRequest) (*backend.Order, error)
	GetPaymentStatus(ctx context.Context) (*backend.PaymentStatus, error)
	TossPaymentReady(ctx context.Context, cred backend.Credentials, req backend.TossReadyRequest) (*backend.PaymentReady, error)
}

// Carts is the cart facet the orchestrator reads and invalidates.
type Carts interface {
	Get(ctx context.Context, cred backend.Credentials) (*backend.Cart, error)
	Invalidate(cred backend.Credentials)
}

type Orchestrator struct {
	backend    Backend
	carts      Carts
	events     events.Publisher
	status     *cache.Cache[string, *backend.PaymentStatus]
	successURL string
	failURL    string

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewOrchestrator(b Backend, carts Carts, pub events.Publisher, successURL, failURL string) *Orchestrator {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return &Orchestrator{
		backend:    b,
		carts:      carts,
		events:     pub,
		status:     cache.New[string, *backend.PaymentStatus](1, cache.PaymentStatusTTL),
		successURL: successURL,
		failURL:    failURL,
		inflight:   make(map[string]struct{}),
	}
}

// attempt carries one submit through its states.
type attempt struct {
	id    string
	state State
	log   *zap.Logger
	start time.Time
}

func (a *attempt) to(s State) {
	a.log.Debug("checkout transition",
		zap.String("from", string(a.state)),
		zap.String("to", string(s)),
	)
	a.state = s
}

// Submit runs one checkout attempt: validate, create the order, then either
// finish (no gateway) or prepare the payment widget. Only concurrency is
// reported through the error; every business result is an Outcome.
func (o *Orchestrator) Submit(ctx context.Context, cred backend.Credentials, form Form) (Outcome, error) {
	a := &attempt{
		id:    uuid.NewString(),
		state: StateIdle,
		start: time.Now(),
	}
	a.log = logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("attempt_id", a.id),
	)

	form = form.Normalize()
	if invalid := form.Validate(); invalid != nil {
		return o.finish(ctx, a, *invalid), nil
	}

	key := sessionKey(cred)
	if !o.acquire(key) {
		a.log.Warn("checkout rejected: submit already in progress")
		return nil, ErrSubmitInProgress
	}
	defer o.release(key)

	a.to(StateSubmitting)

	c, err := o.carts.Get(ctx, cred)
	if err != nil {
		a.log.Error("failed to load cart", zap.Error(err))
		return o.finish(ctx, a, Failed{Message: backend.Message(err, msgCartFailed)}), nil
	}
	if c == nil || len(c.Items) == 0 {
		a.to(StateIdle)
		return o.finish(ctx, a, Invalid{
			Message: msgEmptyCart,
			Fields:  map[string]string{"cart": msgEmptyCart},
		}), nil
	}

	order, err := o.backend.CreateOrder(ctx, cred, form.request())
	if err != nil {
		a.log.Error("order create failed", zap.Error(err))
		return o.finish(ctx, a, Failed{Message: backend.Message(err, msgOrderFailed)}), nil
	}
	a.to(StateOrderCreated)
	a.log = a.log.With(zap.String("order_number", order.OrderNumber))
	o.carts.Invalidate(cred)

	status, err := o.paymentStatus(ctx)
	if err != nil {
		// a failed status lookup counts as no gateway
		a.log.Warn("payment status unavailable", zap.Error(err))
	}
	if status == nil || !status.Toss.Available {
		return o.finish(ctx, a, Succeeded{
			OrderNumber:    order.OrderNumber,
			Location:       OrderLocation(order.OrderNumber),
			PaymentSkipped: true,
		}), nil
	}

	a.to(StatePaymentPreparing)
	ready, err := o.backend.TossPaymentReady(ctx, cred, backend.TossReadyRequest{
		OrderNumber: order.OrderNumber,
		SuccessURL:  o.successURL,
		FailURL:     o.failURL,
	})
	if err != nil {
		a.log.Error("payment prepare failed", zap.Error(err))
		return o.finish(ctx, a, Failed{
			Message:     backend.Message(err, msgPrepareFailed),
			OrderNumber: order.OrderNumber,
		}), nil
	}

	clientKey := ready.ClientKey
	if clientKey == "" {
		clientKey = status.Toss.ClientKey
	}
	return o.finish(ctx, a, Redirected{
		OrderNumber: order.OrderNumber,
		Widget: Widget{
			ClientKey:     clientKey,
			Amount:        ready.Amount,
			OrderID:       ready.OrderID,
			OrderName:     ready.OrderName,
			CustomerName:  ready.CustomerName,
			CustomerEmail: ready.CustomerEmail,
			SuccessURL:    firstNonEmpty(ready.SuccessURL, o.successURL),
			FailURL:       firstNonEmpty(ready.FailURL, o.failURL),
		},
	}), nil
}

func (o *Orchestrator) paymentStatus(ctx context.Context) (*backend.PaymentStatus, error) {
	s, _, err := o.status.GetOrLoad("status", func() (*backend.PaymentStatus, error) {
		return o.backend.GetPaymentStatus(ctx)
	})
	return s, err
}

func (o *Orchestrator) finish(ctx context.Context, a *attempt, out Outcome) Outcome {
	if a.state != out.State() {
		a.to(out.State())
	}

	metrics.RecordCheckoutOutcome(string(out.State()))

	fields := []zap.Field{
		zap.String("state", string(out.State())),
		zap.Duration("duration", time.Since(a.start)),
	}
	switch v := out.(type) {
	case Invalid:
		a.log.Info("checkout blocked by validation", append(fields, zap.Any("fields", v.Fields))...)
		return out
	case Failed:
		a.log.Warn("checkout failed", append(fields, zap.String("message", v.Message))...)
		e := events.New(events.CheckoutFailed, v.OrderNumber)
		e.Message = v.Message
		events.Emit(ctx, o.events, e)
	case Succeeded:
		a.log.Info("checkout completed without payment", fields...)
		events.Emit(ctx, o.events, events.New(events.CheckoutCompleted, v.OrderNumber))
	case Redirected:
		a.log.Info("checkout handed to payment widget", fields...)
		events.Emit(ctx, o.events, events.New(events.CheckoutRedirected, v.OrderNumber))
	}
	return out
}

func (o *Orchestrator) acquire(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, busy := o.inflight[key]; busy {
		return false
	}
	o.inflight[key] = struct{}{}
	return true
}

func (o *Orchestrator) release(key string) {
	o.mu.Lock()
	delete(o.inflight, key)
	o.mu.Unlock()
}

func sessionKey(cred backend.Credentials) string {
	if cred.SessionID != "" {
		return cred.SessionID
	}
	return cred.Token
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
