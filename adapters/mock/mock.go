package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/feitianbubu/veogo/adapters"
)

// MockOperationName is the operation name returned for every generate call
const MockOperationName = "projects/PROJECT_ID/operations/OPERATION_ID"

const (
	defaultBucket     = "mock-storage-bucket-name"
	defaultVideoCount = 4
)

// Call is a request observed by the mock transport
type Call struct {
	URL  string
	Body []byte
}

// Transport implements adapters.Transport with canned backend responses
type Transport struct {
	bucket     string
	videoCount int

	mu    sync.Mutex
	calls []Call
}

// Option configures a Transport
type Option func(*Transport)

// WithBucket sets the storage bucket used in generated video URIs
func WithBucket(name string) Option {
	return func(t *Transport) {
		t.bucket = name
	}
}

// WithVideoCount sets how many videos a finished operation reports
func WithVideoCount(n int) Option {
	return func(t *Transport) {
		if n >= 0 {
			t.videoCount = n
		}
	}
}

// New creates a new mock transport
func New(opts ...Option) *Transport {
	t := &Transport{
		bucket:     defaultBucket,
		videoCount: defaultVideoCount,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Post implements adapters.Transport
func (t *Transport) Post(ctx context.Context, url string, body, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request body")
	}

	t.mu.Lock()
	t.calls = append(t.calls, Call{URL: url, Body: payload})
	t.mu.Unlock()

	var resp interface{}
	switch {
	case strings.HasSuffix(url, "/veo/generate"):
		resp = map[string]interface{}{"operationName": MockOperationName}
	case strings.HasSuffix(url, "/veo/operation/status"):
		var req struct {
			OperationName string `json:"operationName"`
		}
		if err := json.Unmarshal(payload, &req); err != nil {
			return errors.Wrap(err, "failed to read operation name")
		}
		resp = t.operationStatus(req.OperationName)
	default:
		return &adapters.HTTPError{
			StatusCode: http.StatusNotFound,
			Status:     "404 Not Found",
			Body:       `{"detail":"Not Found"}`,
		}
	}

	if out == nil {
		return nil
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "failed to encode mock response")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

// Calls returns a copy of the requests seen so far
func (t *Transport) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Call(nil), t.calls...)
}

func (t *Transport) operationStatus(name string) map[string]interface{} {
	videos := make([]map[string]string, 0, t.videoCount)
	for i := 0; i < t.videoCount; i++ {
		videos = append(videos, map[string]string{
			"uri":      fmt.Sprintf("gs://%s/veo/generated/sample_%d.mp4", t.bucket, i),
			"encoding": "video/mp4",
		})
	}

	return map[string]interface{}{
		"name":   name,
		"done":   true,
		"videos": videos,
	}
}

var _ adapters.Transport = (*Transport)(nil)
