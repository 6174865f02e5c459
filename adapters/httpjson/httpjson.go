package httpjson

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/feitianbubu/veogo/adapters"
)

// maxErrorBody caps how much of a failed response is kept on the error
const maxErrorBody = 4096

// Transport implements adapters.Transport over JSON and HTTP
type Transport struct {
	config *adapters.TransportConfig
	client *http.Client
	logger zerolog.Logger
}

// Option configures a Transport
type Option func(*Transport)

// WithHTTPClient replaces the underlying *http.Client.
// The client's own Timeout is left as is.
func WithHTTPClient(client *http.Client) Option {
	return func(t *Transport) {
		if client != nil {
			t.client = client
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Transport) {
		t.logger = logger
	}
}

// New creates a new JSON transport. A nil config is treated as the zero config.
func New(config *adapters.TransportConfig, opts ...Option) *Transport {
	if config == nil {
		config = &adapters.TransportConfig{}
	}

	t := &Transport{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Post implements adapters.Transport
func (t *Transport) Post(ctx context.Context, url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	requestID := uuid.NewString()
	t.setHeaders(req, requestID)

	t.logger.Debug().
		Str("url", url).
		Str("request_id", requestID).
		Int("body_bytes", len(payload)).
		Msg("sending request")

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to make request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		t.logger.Debug().
			Str("url", url).
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Msg("request failed")
		return &adapters.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(respBody),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	t.logger.Debug().
		Str("url", url).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("request succeeded")
	return nil
}

func (t *Transport) setHeaders(req *http.Request, requestID string) {
	for k, v := range t.config.Headers {
		req.Header.Set(k, v)
	}

	userAgent := t.config.UserAgent
	if userAgent == "" {
		userAgent = adapters.DefaultUserAgent
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", requestID)
}

var _ adapters.Transport = (*Transport)(nil)
