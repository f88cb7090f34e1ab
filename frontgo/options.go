package frontgo

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxRetries   = 2
	defaultRetryWaitMin = 50 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	defaultUserAgent    = "frontgo-go"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	demo         bool
	baseURL      string
	timeout      time.Duration
	httpClient   *http.Client
	maxRetries   int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	userAgent    string
	registerer   prometheus.Registerer
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		timeout:      defaultTimeout,
		maxRetries:   defaultMaxRetries,
		retryWaitMin: defaultRetryWaitMin,
		retryWaitMax: defaultRetryWaitMax,
		userAgent:    defaultUserAgent,
	}
}

// WithDemo targets the demo environment instead of production.
// It has no effect when WithBaseURL is also given.
func WithDemo(demo bool) Option {
	return func(o *clientOptions) {
		o.demo = demo
	}
}

// WithBaseURL overrides the API base URL, e.g. for a local mock server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
// Ignored when a custom client is supplied with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithMaxRetries sets how many times a request failing with a server error
// is retried. Zero disables retries.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.maxRetries = retries
		}
	}
}

// WithRetryWait sets the minimum and maximum wait between retry attempts.
func WithRetryWait(min, max time.Duration) Option {
	return func(o *clientOptions) {
		if min > 0 {
			o.retryWaitMin = min
		}
		o.retryWaitMax = max
		if o.retryWaitMax < o.retryWaitMin {
			o.retryWaitMax = o.retryWaitMin
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithMetrics registers request metrics with the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *clientOptions) {
		o.registerer = reg
	}
}
