package backend

import (
	"context"
	"net/http"
	"strconv"
)

func (c *Client) GetCart(ctx context.Context, cred Credentials) (*Cart, error) {
	var cart Cart
	if _, err := c.do(ctx, "cart.get", http.MethodGet, "/shop/cart", cred, nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddToCart(ctx context.Context, cred Credentials, req AddToCartRequest) error {
	_, err := c.do(ctx, "cart.add", http.MethodPost, "/shop/cart/items", cred, nil, req, nil)
	return err
}

func (c *Client) UpdateCartItem(ctx context.Context, cred Credentials, itemID int64, req UpdateCartItemRequest) error {
	_, err := c.do(ctx, "cart.update", http.MethodPut, "/shop/cart/items/"+strconv.FormatInt(itemID, 10), cred, nil, req, nil)
	return err
}

func (c *Client) RemoveCartItem(ctx context.Context, cred Credentials, itemID int64) error {
	_, err := c.do(ctx, "cart.remove", http.MethodDelete, "/shop/cart/items/"+strconv.FormatInt(itemID, 10), cred, nil, nil, nil)
	return err
}

func (c *Client) ClearCart(ctx context.Context, cred Credentials) error {
	_, err := c.do(ctx, "cart.clear", http.MethodDelete, "/shop/cart", cred, nil, nil, nil)
	return err
}
