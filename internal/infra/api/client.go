// Package api implements the authenticated REST client every usecase
// talks to the backend through.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"vendorhub/config"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// HeaderXRequestID is attached to every outbound call so backend logs can
// be correlated with a single client action.
const HeaderXRequestID = "X-Request-Id"

// TokenSource yields the current bearer token, or "" when signed out.
type TokenSource func() string

// UnauthorizedHook runs when the backend answers 401, before the error is
// returned to the caller. The session wires its logout here.
type UnauthorizedHook func(ctx context.Context)

// Client is the resty-backed implementation of service.APIClient.
type Client struct {
	rest           *resty.Client
	logger         *slog.Logger
	token          TokenSource
	onUnauthorized UnauthorizedHook
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource sets where the bearer token is read from.
func WithTokenSource(source TokenSource) Option {
	return func(c *Client) {
		c.token = source
	}
}

// WithUnauthorizedHook sets the callback invoked on HTTP 401.
func WithUnauthorizedHook(hook UnauthorizedHook) Option {
	return func(c *Client) {
		c.onUnauthorized = hook
	}
}

// New creates a Client from config. Base URL, timeout and retry count come
// from the api section; decoding of error envelopes is handled here so
// callers only ever see *domainerrors.APIError for non-2xx responses.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Client {
	rest := resty.New().
		SetBaseURL(cfg.API.BaseURL).
		SetTimeout(cfg.API.Timeout).
		SetRetryCount(cfg.API.RetryCount).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	client := &Client{
		rest:   rest,
		logger: logger,
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

var _ service.APIClient = (*Client)(nil)

// Do issues one request against the backend. A non-2xx response becomes a
// *domainerrors.APIError; HTTP 401 additionally fires the unauthorized
// hook so the session resets before the caller sees the error.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	requestID := uuid.New().String()

	req := c.rest.R().
		SetContext(ctx).
		SetHeader(HeaderXRequestID, requestID)

	if c.token != nil {
		if token := c.token(); token != "" {
			req.SetAuthToken(token)
		}
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Warn("Request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("error", err))

		return errors.Wrapf(err, "%s %s", method, path)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		c.logger.Info("Session rejected by backend",
			slog.String("path", path),
			slog.String("request_id", requestID))
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}

		return domainerrors.NewAPIError(resp.StatusCode(), resp.Body())
	}

	if resp.IsError() {
		c.logger.Warn("Request rejected",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode()),
			slog.String("request_id", requestID))

		return domainerrors.NewAPIError(resp.StatusCode(), resp.Body())
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return errors.Wrapf(err, "decode %s %s response", method, path)
		}
	}

	return nil
}
