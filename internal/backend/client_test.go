package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"storefront-gateway/internal/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper allows us to mock the HTTP response
type MockRoundTripper func(req *http.Request) *http.Response

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

type MockRoundTripperWithError func(req *http.Request) (*http.Response, error)

func (f MockRoundTripperWithError) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt http.RoundTripper) *Client {
	c := NewClient("https://api.example.com/api/demo/", "pky_test", time.Second)
	c.httpClient.Transport = rt
	return c
}

func TestClient_GetCart(t *testing.T) {
	cred := Credentials{Token: "tok-1", SessionID: "sess-1"}

	t.Run("Success", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "https://api.example.com/api/demo/shop/cart", req.URL.String())
			assert.Equal(t, "pky_test", req.Header.Get("X-API-Key"))
			assert.Equal(t, "Bearer tok-1", req.Header.Get("Authorization"))
			assert.Equal(t, "sess-1", req.Header.Get("X-Session-ID"))

			return jsonResponse(http.StatusOK, `{
				"success": true,
				"data": {
					"items": [
						{"id": 1, "product_id": 10, "product_name": "Tee", "quantity": 2, "unit_price": "12500.00", "subtotal": 25000},
						{"id": 2, "product_id": 11, "variant_id": 7, "product_name": "Cap", "quantity": 1, "unit_price": 10000, "subtotal": 10000}
					],
					"item_count": 3,
					"subtotal": 35000,
					"shipping_fee": 3000,
					"total": 35000,
					"shipping_info": {"is_free": true, "free_shipping_applied": true}
				}
			}`)
		}))

		cart, err := c.GetCart(context.Background(), cred)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 2)
		assert.Equal(t, money.Amount(12500), cart.Items[0].UnitPrice)
		assert.Equal(t, int64(7), *cart.Items[1].VariantID)
		assert.Equal(t, money.Amount(35000), cart.Subtotal)
		assert.True(t, cart.ShippingInfo.IsFree)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			return jsonResponse(http.StatusUnauthorized, `{"success": false, "message": "로그인이 필요합니다."}`)
		}))

		_, err := c.GetCart(context.Background(), cred)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnauthorized))
		assert.Equal(t, "로그인이 필요합니다.", Message(err, "fallback"))
	})

	t.Run("NetworkError", func(t *testing.T) {
		c := newTestClient(MockRoundTripperWithError(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}))

		_, err := c.GetCart(context.Background(), cred)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Equal(t, "fallback", Message(err, "fallback"))
	})

	t.Run("InvalidJSONResponse", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			return jsonResponse(http.StatusOK, `{invalid-json`)
		}))

		_, err := c.GetCart(context.Background(), cred)
		assert.Error(t, err)
	})

	t.Run("ServerErrorWithoutBody", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			return jsonResponse(http.StatusBadGateway, `<html>bad gateway</html>`)
		}))

		_, err := c.GetCart(context.Background(), cred)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)
		assert.Equal(t, "잠시 후 다시 시도해주세요.", Message(err, "잠시 후 다시 시도해주세요."))
	})
}

func TestClient_AddToCart(t *testing.T) {
	variantID := int64(42)

	t.Run("SendsBody", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/api/demo/shop/cart/items", req.URL.Path)
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.EqualValues(t, 5, body["product_id"])
			assert.EqualValues(t, 42, body["variant_id"])
			assert.EqualValues(t, 2, body["quantity"])

			return jsonResponse(http.StatusCreated, `{"success": true, "data": {"items": []}}`)
		}))

		err := c.AddToCart(context.Background(), Credentials{SessionID: "s"}, AddToCartRequest{ProductID: 5, VariantID: &variantID, Quantity: 2})
		assert.NoError(t, err)
	})

	t.Run("SuccessFalse", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			return jsonResponse(http.StatusOK, `{"success": false, "message": "재고가 부족합니다."}`)
		}))

		err := c.AddToCart(context.Background(), Credentials{}, AddToCartRequest{ProductID: 5, Quantity: 1})
		require.Error(t, err)
		assert.Equal(t, "재고가 부족합니다.", Message(err, ""))
	})
}

func TestClient_ListProducts(t *testing.T) {
	c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
		assert.Equal(t, "2", req.URL.Query().Get("page"))
		assert.Equal(t, "12", req.URL.Query().Get("per_page"))
		assert.Equal(t, "tee", req.URL.Query().Get("search"))
		assert.Empty(t, req.Header.Get("Authorization"))

		return jsonResponse(http.StatusOK, `{
			"success": true,
			"data": [{"id": 1, "slug": "a"}, {"id": 2, "slug": "b"}],
			"meta": {"current_page": 2, "last_page": 3, "per_page": 12, "total": 30}
		}`)
	}))

	raws, meta, err := c.ListProducts(context.Background(), ProductListParams{Page: 2, PerPage: 12, Search: "tee"})
	require.NoError(t, err)
	assert.Len(t, raws, 2)
	require.NotNil(t, meta)
	assert.Equal(t, 30, meta.Total)
	assert.Equal(t, 3, meta.LastPage)
}

func TestClient_GetProduct(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, "/api/demo/shop/products/basic-tee", req.URL.Path)
			return jsonResponse(http.StatusNotFound, `{"success": false, "message": "상품을 찾을 수 없습니다."}`)
		}))

		_, err := c.GetProduct(context.Background(), "basic-tee")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestClient_OrdersAndPayments(t *testing.T) {
	cred := Credentials{Token: "tok"}

	t.Run("CreateOrder", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, "/api/demo/shop/orders", req.URL.Path)
			return jsonResponse(http.StatusCreated, `{"success": true, "data": {"id": 9, "order_number": "ORD-0001", "status": "pending", "total": 35000}}`)
		}))

		order, err := c.CreateOrder(context.Background(), cred, CreateOrderRequest{OrdererName: "홍길동"})
		require.NoError(t, err)
		assert.Equal(t, "ORD-0001", order.OrderNumber)
		assert.Equal(t, OrderStatusPending, order.Status)
	})

	t.Run("ListOrders", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, "paid", req.URL.Query().Get("status"))
			return jsonResponse(http.StatusOK, `{"success": true, "data": [{"id": 1, "order_number": "ORD-1", "status": "paid"}], "meta": {"total": 1}}`)
		}))

		list, err := c.ListOrders(context.Background(), cred, OrderListParams{Status: "paid"})
		require.NoError(t, err)
		assert.Len(t, list.Orders, 1)
		assert.Equal(t, 1, list.Meta.Total)
	})

	t.Run("CancelOrder", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, "/api/demo/shop/orders/9/cancel", req.URL.Path)
			return jsonResponse(http.StatusOK, `{"success": true, "data": {"id": 9, "order_number": "ORD-0001", "status": "cancelled"}}`)
		}))

		order, err := c.CancelOrder(context.Background(), cred, 9)
		require.NoError(t, err)
		assert.Equal(t, OrderStatusCancelled, order.Status)
	})

	t.Run("PaymentStatus", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			return jsonResponse(http.StatusOK, `{"success": true, "data": {"toss": {"available": true, "client_key": "ck_test"}, "stripe": {"available": false}}}`)
		}))

		status, err := c.GetPaymentStatus(context.Background())
		require.NoError(t, err)
		assert.True(t, status.Toss.Available)
		assert.False(t, status.Stripe.Available)
	})

	t.Run("TossConfirm", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			var body TossConfirmRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, TossConfirmRequest{PaymentKey: "abc", OrderID: "ord_1", Amount: 10000}, body)
			return jsonResponse(http.StatusOK, `{"success": true, "data": {"order_number": "ORD-0001", "status": "paid"}}`)
		}))

		res, err := c.TossPaymentConfirm(context.Background(), cred, TossConfirmRequest{PaymentKey: "abc", OrderID: "ord_1", Amount: 10000})
		require.NoError(t, err)
		assert.Equal(t, "ORD-0001", res.OrderNumber)
	})
}

func TestClient_Reservations(t *testing.T) {
	staffID := int64(3)

	t.Run("AvailableSlots", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			q := req.URL.Query()
			assert.Equal(t, "1", q.Get("service_id"))
			assert.Equal(t, "3", q.Get("staff_id"))
			assert.Equal(t, "2026-10-20", q.Get("date"))
			return jsonResponse(http.StatusOK, `{"success": true, "data": [{"time": "10:00", "available": true}, {"time": "10:30", "available": false}]}`)
		}))

		slots, err := c.AvailableSlots(context.Background(), AvailabilityParams{ServiceID: 1, StaffID: &staffID, Date: "2026-10-20"})
		require.NoError(t, err)
		assert.Len(t, slots, 2)
		assert.False(t, slots[1].Available)
	})

	t.Run("CancelWithoutReason", func(t *testing.T) {
		c := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Empty(t, req.Header.Get("Content-Type"))
			return jsonResponse(http.StatusOK, `{"success": true, "data": {"id": 1, "reservation_number": "R-1", "status": "cancelled"}}`)
		}))

		res, err := c.CancelReservation(context.Background(), Credentials{Token: "t"}, "R-1", "")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", res.Status)
	})
}

func TestAPIError(t *testing.T) {
	err := &APIError{Operation: "order.get", Status: http.StatusNotFound, Message: "없음"}
	assert.Contains(t, err.Error(), "order.get")
	assert.Contains(t, err.Error(), "없음")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrUnauthorized))

	plain := &APIError{Operation: "cart.get", Status: http.StatusInternalServerError}
	assert.Nil(t, plain.Unwrap())
	assert.NotContains(t, plain.Error(), ": :")
}
