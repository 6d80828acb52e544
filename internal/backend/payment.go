package backend

import (
	"context"
	"net/http"
)

// GetPaymentStatus reports which payment gateways the shop has configured.
func (c *Client) GetPaymentStatus(ctx context.Context) (*PaymentStatus, error) {
	var status PaymentStatus
	if _, err := c.do(ctx, "payment.status", http.MethodGet, "/shop/payments/status", Credentials{}, nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) TossPaymentReady(ctx context.Context, cred Credentials, req TossReadyRequest) (*PaymentReady, error) {
	var ready PaymentReady
	if _, err := c.do(ctx, "payment.toss_ready", http.MethodPost, "/shop/payments/toss/ready", cred, nil, req, &ready); err != nil {
		return nil, err
	}
	return &ready, nil
}

func (c *Client) TossPaymentConfirm(ctx context.Context, cred Credentials, req TossConfirmRequest) (*PaymentConfirmation, error) {
	var res PaymentConfirmation
	if _, err := c.do(ctx, "payment.toss_confirm", http.MethodPost, "/shop/payments/toss/confirm", cred, nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
