package binance

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	httpClient "binrest/internal/http"
	"binrest/pkg/core"
)

// Client issues operations against one market and namespace.
// It holds only immutable configuration and is safe for concurrent use.
type Client struct {
	baseURL   string
	apiKey    string
	secretKey string
	market    core.Market
	transport core.Transport
	logger    zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Transport core.Transport
	Logger    zerolog.Logger
	BaseURL   string
}

// WithTransport returns an option that replaces the default resty transport.
func WithTransport(t core.Transport) Option {
	return func(o *Options) {
		o.Transport = t
	}
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithBaseURL returns an option that overrides the base URL derived from the
// market and namespace. The namespace prefix must be included.
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

// New creates a Client for config.Market and config.Namespace.
// Credentials are optional for public operations; when present they must be
// issued for config.Market, otherwise core.ErrMarketMismatch is returned.
// No request is sent.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is required", core.ErrConfiguration)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	var apiKey, secretKey string
	if creds := config.Credentials; creds != nil {
		if !creds.Matches(config.Market) {
			return nil, fmt.Errorf("%w: keys for %s, client for %s",
				core.ErrMarketMismatch, creds.Normalized().Market, config.Market)
		}
		apiKey, secretKey = creds.APIKey, creds.SecretKey
	}

	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = config.BaseURL()
	}

	transport := options.Transport
	if transport == nil {
		t, err := httpClient.NewClient(&httpClient.Config{Timeout: config.Timeout}, options.Logger)
		if err != nil {
			return nil, fmt.Errorf("create http client: %w", err)
		}
		transport = t
	}

	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		secretKey: secretKey,
		market:    config.Market,
		transport: transport,
		logger:    options.Logger.With().Str("exchange", Name).Str("market", config.Market.String()).Logger(),
	}, nil
}

// Market returns the market the client was configured for.
func (c *Client) Market() core.Market {
	return c.market
}

// BaseURL returns the resolved base URL, namespace prefix included.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the transport's connections when the transport is an io.Closer.
// This includes the default resty transport. Calls made after Close fail.
func (c *Client) Close() error {
	if closer, ok := c.transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// URL returns the full request URL for op, signature included.
func (c *Client) URL(op core.Operation) (string, error) {
	query, err := Build(op, c.secretKey)
	if err != nil {
		return "", fmt.Errorf("build %s %s: %w", op.Method(), op.Path(), err)
	}
	u := c.baseURL + op.Path()
	if query != "" {
		u += "?" + query
	}
	return u, nil
}

// Call sends op and returns the response when the status is 2xx.
// Any other status yields an *core.ExchangeError carrying the status, the
// exchange code and message, and the raw body.
func (c *Client) Call(ctx context.Context, op core.Operation) (*core.Response, error) {
	u, err := c.URL(op)
	if err != nil {
		return nil, err
	}

	req := core.NewRequest(op.Method(), u)
	if c.apiKey != "" {
		req.SetHeader(core.APIKeyHeader, c.apiKey)
	}

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", op.Method()).
			Str("path", op.Path()).
			Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", op.Method(), op.Path(), err)
	}

	c.logger.Debug().
		Str("method", op.Method()).
		Str("path", op.Path()).
		Bool("signed", op.Signed()).
		Int("status", resp.StatusCode).
		Msg("call")

	if !resp.IsSuccess() {
		apiErr := parseError(resp)
		c.logger.Warn().
			Str("path", op.Path()).
			Int("status", apiErr.StatusCode).
			Str("code", apiErr.Code).
			Str("msg", apiErr.Message).
			Msg("request rejected")
		return nil, apiErr
	}

	return resp, nil
}

// Do calls op and decodes the 2xx body into T.
func Do[T any](ctx context.Context, c *Client, op core.Operation) (T, error) {
	var out T
	resp, err := c.Call(ctx, op)
	if err != nil {
		return out, err
	}
	if err := resp.Unmarshal(&out); err != nil {
		return out, fmt.Errorf("decode %s: %w", op.Path(), err)
	}
	return out, nil
}

// Timestamp returns a millisecond timestamp for signed operations, read from
// the local clock or from the exchange.
func (c *Client) Timestamp(ctx context.Context, kind core.TimestampKind) (string, error) {
	switch kind {
	case core.TimestampLocal:
		return strconv.FormatInt(time.Now().UnixMilli(), 10), nil
	case core.TimestampExchange:
		st, err := Do[ServerTimeResponse](ctx, c, ServerTime{})
		if err != nil {
			return "", fmt.Errorf("server time: %w", err)
		}
		return strconv.FormatInt(int64(st.ServerTime), 10), nil
	default:
		return "", fmt.Errorf("%w: got %d", core.ErrInvalidTimestampKind, int(kind))
	}
}
