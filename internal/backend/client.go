package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/metrics"

	"go.uber.org/zap"
)

// Credentials identify the caller towards the backend. Token is the member's
// bearer token; SessionID keys the guest cart when there is no token.
type Credentials struct {
	Token     string
	SessionID string
}

// Client is the typed REST client for the remote commerce backend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if apiKey == "" {
		logger.L().Warn("backend API key is empty")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// envelope is the response wrapper every backend endpoint uses.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
	Meta    *PageMeta       `json:"meta"`
}

type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

func (c *Client) do(
	ctx context.Context,
	op string,
	method string,
	path string,
	cred Credentials,
	query url.Values,
	body any,
	out any,
) (*envelope, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "backend"),
		zap.String("operation", op),
	)
	timer := metrics.StartTimer()

	env, err := c.send(ctx, log, op, method, path, cred, query, body)
	if err == nil && out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if uerr := json.Unmarshal(env.Data, out); uerr != nil {
			log.Error("failed decoding backend data", zap.Error(uerr))
			err = fmt.Errorf("%s: decode data: %w", op, uerr)
		}
	}

	timer.ObserveBackend(op, err)
	if err != nil {
		return nil, err
	}

	log.Debug("backend call completed", zap.Duration("duration", timer.Duration()))
	return env, nil
}

func (c *Client) send(
	ctx context.Context,
	log *zap.Logger,
	op, method, path string,
	cred Credentials,
	query url.Values,
	body any,
) (*envelope, error) {

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			log.Error("failed to marshal backend request", zap.Error(err))
			return nil, fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	if cred.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}
	if cred.SessionID != "" {
		req.Header.Set("X-Session-ID", cred.SessionID)
	}
	if reqID := logger.RequestIDFrom(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("backend request failed", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(bodyBytes, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("backend returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", truncate(bodyBytes, 512)),
		)
		apiErr := &APIError{Operation: op, Status: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = env.Message
			apiErr.Code = env.Code
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		log.Error("failed decoding backend response", zap.Error(decodeErr))
		return nil, fmt.Errorf("%s: decode response: %w", op, decodeErr)
	}

	if env.Success != nil && !*env.Success {
		log.Warn("backend reported failure", zap.String("message", env.Message))
		return nil, &APIError{Operation: op, Status: resp.StatusCode, Code: env.Code, Message: env.Message}
	}

	return &env, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
