package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Type definitions shared by the transport implementations to avoid circular imports

// Transport performs a single JSON POST exchange
type Transport interface {
	// Post serializes body as the request payload, sends it to url and
	// decodes a successful response into out
	Post(ctx context.Context, url string, body, out interface{}) error
}

// TransportConfig holds configuration for a transport
type TransportConfig struct {
	Timeout   time.Duration     `json:"timeout"`
	UserAgent string            `json:"user_agent,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
}

// DefaultUserAgent is sent when TransportConfig.UserAgent is empty
const DefaultUserAgent = "veogo-sdk/1.0"

// HTTPError represents a non-2xx response from the backend
type HTTPError struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status,omitempty"`
	Body       string `json:"body,omitempty"`
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// IsHTTPError reports whether err is, or wraps, an *HTTPError
func IsHTTPError(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr)
}

// StatusCode returns the HTTP status carried by err, or 0 if there is none
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
