// Package api is the REST client for the warehouse backend. One method
// per endpoint, no retries, no caching: every call hits the server and
// the caller decides what to cache.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"sklad-cli/internal/model"
)

// Client talks to the warehouse API.
type Client struct {
	http *resty.Client
	log  *zap.Logger
}

// New builds a client for baseURL. Requests time out after timeout and
// are never retried.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: http, log: logger}
}

// BaseURL reports the configured server address, for display.
func (c *Client) BaseURL() string { return c.http.BaseURL }

// envelope is the backend's common response wrapper. Some endpoints
// return the payload bare instead, so decode falls back to the whole
// body when the wrapper fields are absent.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Error("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		apiErr := &Error{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
		apiErr.Message = extractMessage(resp.Body())
		c.log.Warn("server error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return decode(resp.Body(), out)
}

// decode unwraps the {status, data, message} envelope when present and
// unmarshals the payload into out. Bare payloads decode directly.
func decode(body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Status != "" {
		if env.Status == "error" {
			return fmt.Errorf("server reported error: %s", env.Message)
		}
		if len(env.Data) > 0 && string(env.Data) != "null" {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return fmt.Errorf("decode response data: %w", err)
			}
			return nil
		}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, resty.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, resty.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, resty.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, resty.MethodDelete, path, body, out)
}

// Health pings the server. A nil error means the backend is reachable.
func (c *Client) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.get(ctx, "/api/health", &out)
}

// Statistics returns the warehouse-wide counters for the header.
func (c *Client) Statistics(ctx context.Context) (model.Statistics, error) {
	var out model.Statistics
	err := c.get(ctx, "/api/statistics", &out)
	return out, err
}

// StorageConfig returns server-side limits such as the maximum box number.
func (c *Client) StorageConfig(ctx context.Context) (model.StorageConfig, error) {
	var out model.StorageConfig
	err := c.get(ctx, "/api/config/storage", &out)
	return out, err
}
