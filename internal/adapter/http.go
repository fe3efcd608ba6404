package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/logger"
)

// Request describes an outgoing HTTP request. The body is kept as bytes so
// it can be replayed on every retry attempt.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is a fully read HTTP response
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the response has a 2xx status code
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// Do performs the request, retrying network errors, 429 and 5xx responses with
	// exponential backoff. Any other status is returned to the caller without error.
	Do(ctx context.Context, req Request) (*Response, error)
}

// RetryPolicy configures the exponential backoff of RealHTTPClient
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryPolicy is used by NewHTTPClient
var DefaultRetryPolicy = RetryPolicy{
	InitialInterval: 2 * time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  1 * time.Minute,
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
	policy RetryPolicy
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return NewHTTPClientWithPolicy(timeout, DefaultRetryPolicy)
}

// NewHTTPClientWithPolicy creates a new real HTTP client with a custom retry policy
func NewHTTPClientWithPolicy(timeout time.Duration, policy RetryPolicy) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		policy: policy,
	}
}

// retryableStatus reports whether a response status should be retried
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// Do executes the request with exponential backoff retry for rate limiting and server errors
func (c *RealHTTPClient) Do(ctx context.Context, req Request) (*Response, error) {
	var result *Response

	operation := func() error {
		var body io.Reader
		if req.Body != nil {
			body = bytes.NewReader(req.Body)
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		for key, values := range req.Header {
			for _, v := range values {
				httpReq.Header.Add(key, v)
			}
		}

		resp, err := c.client.Do(httpReq)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", req.URL))
			}
		}()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		result = &Response{
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       respBody,
		}

		if retryableStatus(resp.StatusCode) {
			logger.WarnCtx(ctx, "retryable response status, retrying with backoff",
				zap.String("method", req.Method),
				zap.String("url", req.URL),
				zap.Int("status", resp.StatusCode),
			)
			return fmt.Errorf("unexpected status code %d", resp.StatusCode)
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.policy.InitialInterval
	b.MaxInterval = c.policy.MaxInterval
	b.MaxElapsedTime = c.policy.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return result, nil
}
