// Package payment finishes a checkout when the payment provider redirects
// the browser back to the storefront.
package payment

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/checkout"
	"storefront-gateway/internal/events"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/metrics"

	"go.uber.org/zap"
)

const (
	msgInvalidPayment = "결제 정보가 올바르지 않습니다."
	msgConfirmFailed  = "결제 확인에 실패했습니다."
	msgCancelled      = "결제가 취소되었습니다."
	msgPaymentFailed  = "결제에 실패했습니다."
)

// Provider codes that mean the customer backed out.
var cancelCodes = map[string]bool{
	"USER_CANCEL":          true,
	"PAY_PROCESS_CANCELED": true,
}

type Backend interface {
	TossPaymentConfirm(ctx context.Context, cred backend.Credentials, req backend.TossConfirmRequest) (*backend.PaymentConfirmation, error)
}

// completeAttempts bounds the ledger writes after a confirm call.
const completeAttempts = 3

type Handler struct {
	backend   Backend
	ledger    Ledger
	events    events.Publisher
	retryWait time.Duration
}

func NewHandler(b Backend, ledger Ledger, pub events.Publisher) *Handler {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return &Handler{backend: b, ledger: ledger, events: pub, retryWait: 200 * time.Millisecond}
}

// Confirm handles the success redirect. The same paymentKey is confirmed
// against the backend at most once; repeats get the recorded result.
func (h *Handler) Confirm(ctx context.Context, cred backend.Credentials, params url.Values) checkout.Outcome {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ConfirmPayment"),
	)

	paymentKey := strings.TrimSpace(params.Get("paymentKey"))
	orderID := strings.TrimSpace(params.Get("orderId"))
	rawAmount := strings.TrimSpace(params.Get("amount"))

	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if paymentKey == "" || orderID == "" || rawAmount == "" || err != nil || amount <= 0 {
		log.Warn("payment redirect missing parameters",
			zap.Bool("has_payment_key", paymentKey != ""),
			zap.Bool("has_order_id", orderID != ""),
			zap.String("amount", rawAmount),
		)
		return h.record(ctx, checkout.Failed{Message: msgInvalidPayment})
	}

	log = log.With(zap.String("order_id", orderID))

	claimed, existing, err := h.ledger.Claim(ctx, paymentKey, orderID, amount)
	if err != nil {
		log.Error("failed to claim payment confirmation", zap.Error(err))
		return h.record(ctx, checkout.Failed{Message: msgConfirmFailed})
	}
	if !claimed {
		if existing.OrderID != orderID || existing.Amount != amount {
			log.Warn("payment redirect does not match recorded confirmation",
				zap.String("recorded_order_id", existing.OrderID),
				zap.Int64("recorded_amount", existing.Amount),
				zap.Int64("amount", amount),
			)
			return h.record(ctx, checkout.Failed{Message: msgInvalidPayment})
		}
		log.Info("payment redirect already handled", zap.String("status", existing.Status))
		return replay(existing)
	}

	// Once marked, the claim is never taken over, so the confirm call below
	// happens at most once per payment key.
	if err := h.ledger.MarkSent(ctx, paymentKey); err != nil {
		log.Error("failed to mark payment confirmation as sent", zap.Error(err))
		return h.record(ctx, checkout.Failed{Message: msgConfirmFailed})
	}

	res, err := h.backend.TossPaymentConfirm(ctx, cred, backend.TossConfirmRequest{
		PaymentKey: paymentKey,
		OrderID:    orderID,
		Amount:     amount,
	})
	if err != nil {
		msg := backend.Message(err, msgConfirmFailed)
		log.Error("payment confirm failed", zap.Error(err))
		h.complete(ctx, log, paymentKey, StatusFailed, "", msg)
		return h.record(ctx, checkout.Failed{Message: msg})
	}

	h.complete(ctx, log, paymentKey, StatusSucceeded, res.OrderNumber, "")
	log.Info("payment confirmed", zap.String("order_number", res.OrderNumber))

	return h.record(ctx, checkout.Succeeded{
		OrderNumber: res.OrderNumber,
		Location:    checkout.OrderLocation(res.OrderNumber),
	})
}

// Fail handles the failure redirect. Customer cancellation is reported as
// Cancelled, never as a failure.
func (h *Handler) Fail(ctx context.Context, params url.Values) checkout.Outcome {
	code := params.Get("code")
	orderID := params.Get("orderId")

	logger.FromCtx(ctx).Info("payment redirect failed",
		zap.String("layer", "service"),
		zap.String("code", code),
		zap.String("order_id", orderID),
	)

	if cancelCodes[code] {
		return h.record(ctx, checkout.Cancelled{Message: msgCancelled, OrderNumber: orderID})
	}

	msg := params.Get("message")
	if msg == "" {
		msg = msgPaymentFailed
	}
	if code == "" {
		code = "UNKNOWN"
	}
	return h.record(ctx, checkout.Failed{Message: msg, Code: code, OrderNumber: orderID})
}

// complete records the confirm result. The write must survive the visitor
// closing the tab, so it runs detached from request cancellation. When every
// attempt fails the row stays pending and repeats are answered with Pending.
func (h *Handler) complete(ctx context.Context, log *zap.Logger, key, status, orderNumber, msg string) {
	ctx = context.WithoutCancel(ctx)

	for attempt := 1; ; attempt++ {
		err := h.ledger.Complete(ctx, key, status, orderNumber, msg)
		if err == nil {
			return
		}
		if attempt == completeAttempts {
			log.Error("failed to record payment confirmation",
				zap.String("status", status),
				zap.Int("attempts", attempt),
				zap.Error(err),
			)
			return
		}
		log.Warn("retrying payment confirmation record", zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(time.Duration(attempt) * h.retryWait)
	}
}

func (h *Handler) record(ctx context.Context, out checkout.Outcome) checkout.Outcome {
	metrics.RecordPaymentOutcome(string(out.State()))

	var e events.Event
	switch v := out.(type) {
	case checkout.Succeeded:
		e = events.New(events.PaymentSucceeded, v.OrderNumber)
	case checkout.Failed:
		e = events.New(events.PaymentFailed, v.OrderNumber)
		e.Message, e.Code = v.Message, v.Code
	case checkout.Cancelled:
		e = events.New(events.PaymentCancelled, v.OrderNumber)
	default:
		return out
	}
	events.Emit(ctx, h.events, e)
	return out
}

func replay(rec *Record) checkout.Outcome {
	switch rec.Status {
	case StatusSucceeded:
		return checkout.Succeeded{
			OrderNumber: rec.OrderNumber,
			Location:    checkout.OrderLocation(rec.OrderNumber),
		}
	case StatusFailed:
		msg := rec.Message
		if msg == "" {
			msg = msgConfirmFailed
		}
		return checkout.Failed{Message: msg}
	default:
		return checkout.Pending{}
	}
}
