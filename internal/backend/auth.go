package backend

import (
	"context"
	"net/http"
)

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	var res AuthResult
	if _, err := c.do(ctx, "auth.login", http.MethodPost, "/auth/login", Credentials{}, nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var res AuthResult
	if _, err := c.do(ctx, "auth.register", http.MethodPost, "/auth/register", Credentials{}, nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SocialCallback exchanges a provider authorization code for a member token.
func (c *Client) SocialCallback(ctx context.Context, provider, code string) (*AuthResult, error) {
	var res AuthResult
	body := map[string]string{"code": code}
	if _, err := c.do(ctx, "auth.social_callback", http.MethodPost, "/auth/social/"+provider+"/callback", Credentials{}, nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Logout(ctx context.Context, cred Credentials) error {
	_, err := c.do(ctx, "auth.logout", http.MethodPost, "/auth/logout", cred, nil, nil, nil)
	return err
}
