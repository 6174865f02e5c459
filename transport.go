package veogo

import (
	"context"

	"github.com/feitianbubu/veogo/adapters"
)

// Transport is the HTTP capability the client delegates to
type Transport = adapters.Transport

// TransportType selects a built-in transport
type TransportType string

const (
	TransportHTTP TransportType = "http"
	TransportMock TransportType = "mock"
)

// post issues one POST through t and decodes the reply as Resp
func post[Req, Resp any](ctx context.Context, t Transport, url string, req Req) (*Resp, error) {
	var resp Resp
	if err := t.Post(ctx, url, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
