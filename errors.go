package veogo

import (
	"errors"

	"github.com/feitianbubu/veogo/adapters"
)

// Common errors
var (
	ErrUnsupportedTransport = errors.New("unsupported transport")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// HTTPError is returned by the HTTP transport for non-2xx responses.
// The client passes it through untouched.
type HTTPError = adapters.HTTPError

// IsHTTPError reports whether err is, or wraps, an *HTTPError
func IsHTTPError(err error) bool {
	return adapters.IsHTTPError(err)
}
