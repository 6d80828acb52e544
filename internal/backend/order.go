package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) CreateOrder(ctx context.Context, cred Credentials, req CreateOrderRequest) (*Order, error) {
	var order Order
	if _, err := c.do(ctx, "order.create", http.MethodPost, "/shop/orders", cred, nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, cred Credentials, params OrderListParams) (*OrderList, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}

	var orders []Order
	env, err := c.do(ctx, "order.list", http.MethodGet, "/shop/orders", cred, q, nil, &orders)
	if err != nil {
		return nil, err
	}
	return &OrderList{Orders: orders, Meta: env.Meta}, nil
}

// GetOrder accepts either the numeric id or the order number.
func (c *Client) GetOrder(ctx context.Context, cred Credentials, idOrNumber string) (*Order, error) {
	var order Order
	if _, err := c.do(ctx, "order.get", http.MethodGet, "/shop/orders/"+url.PathEscape(idOrNumber), cred, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, cred Credentials, orderID int64) (*Order, error) {
	var order Order
	path := "/shop/orders/" + strconv.FormatInt(orderID, 10) + "/cancel"
	if _, err := c.do(ctx, "order.cancel", http.MethodPost, path, cred, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
