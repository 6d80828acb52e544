// Package order serves the buyer's order history from the backend.
package order

import (
	"context"
	"strconv"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/logger"

	"go.uber.org/zap"
)

type Backend interface {
	ListOrders(ctx context.Context, cred backend.Credentials, params backend.OrderListParams) (*backend.OrderList, error)
	GetOrder(ctx context.Context, cred backend.Credentials, idOrNumber string) (*backend.Order, error)
	CancelOrder(ctx context.Context, cred backend.Credentials, orderID int64) (*backend.Order, error)
}

type Service interface {
	List(ctx context.Context, cred backend.Credentials, params backend.OrderListParams) (*ListResult, error)
	Get(ctx context.Context, cred backend.Credentials, ref string) (*View, error)
	Cancel(ctx context.Context, cred backend.Credentials, orderID int64) (*View, error)
}

type service struct {
	backend Backend
}

func NewService(b Backend) Service {
	return &service{backend: b}
}

func (s *service) List(ctx context.Context, cred backend.Credentials, params backend.OrderListParams) (*ListResult, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PerPage <= 0 || params.PerPage > 50 {
		params.PerPage = 10
	}

	list, err := s.backend.ListOrders(ctx, cred, params)
	if err != nil {
		return nil, err
	}

	res := &ListResult{Orders: make([]View, 0, len(list.Orders)), Meta: list.Meta}
	for i := range list.Orders {
		res.Orders = append(res.Orders, *newView(&list.Orders[i]))
	}
	return res, nil
}

// Get accepts an order id or an order number.
func (s *service) Get(ctx context.Context, cred backend.Credentials, ref string) (*View, error) {
	o, err := s.backend.GetOrder(ctx, cred, ref)
	if err != nil {
		return nil, err
	}
	return newView(o), nil
}

// Cancel re-reads the order and only asks the backend to cancel orders that
// are still pending or paid.
func (s *service) Cancel(ctx context.Context, cred backend.Credentials, orderID int64) (*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CancelOrder"),
		zap.Int64("order_id", orderID),
	)

	current, err := s.backend.GetOrder(ctx, cred, strconv.FormatInt(orderID, 10))
	if err != nil {
		return nil, err
	}
	if !current.Status.Cancellable() {
		log.Info("cancel refused", zap.String("status", string(current.Status)))
		return nil, ErrNotCancellable
	}

	o, err := s.backend.CancelOrder(ctx, cred, orderID)
	if err != nil {
		log.Warn("cancel order failed", zap.Error(err))
		return nil, err
	}

	log.Info("order cancelled", zap.String("order_number", o.OrderNumber))
	return newView(o), nil
}
