package order

import (
	"context"
	"testing"

	"storefront-gateway/internal/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListOrders(ctx context.Context, cred backend.Credentials, params backend.OrderListParams) (*backend.OrderList, error) {
	args := m.Called(ctx, cred, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.OrderList), args.Error(1)
}

func (m *MockBackend) GetOrder(ctx context.Context, cred backend.Credentials, ref string) (*backend.Order, error) {
	args := m.Called(ctx, cred, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Order), args.Error(1)
}

func (m *MockBackend) CancelOrder(ctx context.Context, cred backend.Credentials, id int64) (*backend.Order, error) {
	args := m.Called(ctx, cred, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Order), args.Error(1)
}

var cred = backend.Credentials{Token: "tok", SessionID: "sid"}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "결제 대기", StatusLabel(backend.OrderStatusPending))
	assert.Equal(t, "상품 준비중", StatusLabel(backend.OrderStatusPreparing))
	assert.Equal(t, "환불 완료", StatusLabel(backend.OrderStatusRefunded))
	assert.Equal(t, "on_hold", StatusLabel("on_hold"))
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	mb := new(MockBackend)
	s := NewService(mb)

	mb.On("ListOrders", ctx, cred, backend.OrderListParams{Page: 1, PerPage: 10}).Return(&backend.OrderList{
		Orders: []backend.Order{
			{ID: 1, OrderNumber: "ORD-1", Status: backend.OrderStatusPaid},
			{ID: 2, OrderNumber: "ORD-2", Status: backend.OrderStatusShipping},
		},
		Meta: &backend.PageMeta{CurrentPage: 1},
	}, nil)

	res, err := s.List(ctx, cred, backend.OrderListParams{PerPage: 500})
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)

	assert.Equal(t, "결제 완료", res.Orders[0].StatusLabel)
	assert.True(t, res.Orders[0].Cancellable)
	assert.Equal(t, "/orders/ORD-1", res.Orders[0].Location)
	assert.False(t, res.Orders[1].Cancellable)
	assert.Equal(t, 1, res.Meta.CurrentPage)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	mb := new(MockBackend)
	s := NewService(mb)

	mb.On("GetOrder", ctx, cred, "ORD-1").Return(&backend.Order{ID: 1, OrderNumber: "ORD-1", Status: backend.OrderStatusDelivered}, nil)
	mb.On("GetOrder", ctx, cred, "ORD-X").Return(nil, backend.ErrNotFound)

	v, err := s.Get(ctx, cred, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "배송 완료", v.StatusLabel)

	_, err = s.Get(ctx, cred, "ORD-X")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending order", func(t *testing.T) {
		mb := new(MockBackend)
		s := NewService(mb)
		mb.On("GetOrder", ctx, cred, "7").Return(&backend.Order{ID: 7, Status: backend.OrderStatusPending}, nil)
		mb.On("CancelOrder", ctx, cred, int64(7)).Return(&backend.Order{ID: 7, OrderNumber: "ORD-7", Status: backend.OrderStatusCancelled}, nil)

		v, err := s.Cancel(ctx, cred, 7)
		require.NoError(t, err)
		assert.Equal(t, "주문 취소", v.StatusLabel)
		assert.False(t, v.Cancellable)
	})

	t.Run("Shipped order never reaches cancel", func(t *testing.T) {
		mb := new(MockBackend)
		s := NewService(mb)
		mb.On("GetOrder", ctx, cred, "8").Return(&backend.Order{ID: 8, Status: backend.OrderStatusShipping}, nil)

		_, err := s.Cancel(ctx, cred, 8)
		assert.ErrorIs(t, err, ErrNotCancellable)
		mb.AssertNotCalled(t, "CancelOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}
