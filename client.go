package veogo

import (
	"context"

	"github.com/rs/zerolog"
)

const (
	generateVideoPath      = "/veo/generate"
	getOperationStatusPath = "/veo/operation/status"
)

// Client is the client for the Veo video generation backend
type Client struct {
	baseURL   string
	transport Transport
	logger    zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithLogger sets the logger used for per-call debug output
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new client. baseURL is used as given; paths are
// appended to it verbatim.
func NewClient(baseURL string, transport Transport, opts ...Option) *Client {
	c := &Client{
		baseURL:   baseURL,
		transport: transport,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root address
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GenerateVideo starts a video generation operation.
// Errors from the transport are returned unchanged.
func (c *Client) GenerateVideo(ctx context.Context, req *GenerateVideoRequest) (*GenerateVideoResponse, error) {
	url := c.baseURL + generateVideoPath
	c.logger.Debug().Str("op", "generate_video").Str("url", url).Msg("veo request")
	return post[*GenerateVideoRequest, GenerateVideoResponse](ctx, c.transport, url, req)
}

// GetOperationStatus fetches the status of a generation operation.
// Errors from the transport are returned unchanged.
func (c *Client) GetOperationStatus(ctx context.Context, req *GetOperationStatusRequest) (*GetOperationStatusResponse, error) {
	url := c.baseURL + getOperationStatusPath
	c.logger.Debug().Str("op", "get_operation_status").Str("url", url).Msg("veo request")
	return post[*GetOperationStatusRequest, GetOperationStatusResponse](ctx, c.transport, url, req)
}

// GenerateVideoAsync runs GenerateVideo in the background.
// Cancel ctx to abort the underlying request.
func (c *Client) GenerateVideoAsync(ctx context.Context, req *GenerateVideoRequest) *Future[GenerateVideoResponse] {
	return goFuture(func() (*GenerateVideoResponse, error) {
		return c.GenerateVideo(ctx, req)
	})
}

// GetOperationStatusAsync runs GetOperationStatus in the background.
// Cancel ctx to abort the underlying request.
func (c *Client) GetOperationStatusAsync(ctx context.Context, req *GetOperationStatusRequest) *Future[GetOperationStatusResponse] {
	return goFuture(func() (*GetOperationStatusResponse, error) {
		return c.GetOperationStatus(ctx, req)
	})
}
