package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// RetryPolicy configures resty's built-in retry loop.
type RetryPolicy struct {
	// Count is the number of retries after the first attempt. Zero disables
	// retrying.
	Count int
	// WaitTime is the initial backoff between attempts.
	WaitTime time.Duration
	// MaxWaitTime caps the exponential backoff.
	MaxWaitTime time.Duration
}

// NewHTTPClient creates and returns a new HTTPClient instance with a
// default-configured underlying resty.Client.
//
// Each call returns an independent client with its own configuration,
// connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewRetryingHTTPClient returns a client that retries idempotent requests
// on transport errors and 5xx responses according to policy.
func NewRetryingHTTPClient(policy RetryPolicy) *HTTPClient {
	client := NewHTTPClient()
	if policy.Count <= 0 {
		return client
	}
	if policy.WaitTime <= 0 {
		policy.WaitTime = 100 * time.Millisecond
	}
	if policy.MaxWaitTime < policy.WaitTime {
		policy.MaxWaitTime = 20 * policy.WaitTime
	}

	client.
		SetRetryCount(policy.Count).
		SetRetryWaitTime(policy.WaitTime).
		SetRetryMaxWaitTime(policy.MaxWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if resp == nil || resp.Request == nil {
				return err != nil
			}
			if !isIdempotent(resp.Request.Method) {
				return false
			}
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	return client
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodHead:
		return true
	default:
		return false
	}
}
