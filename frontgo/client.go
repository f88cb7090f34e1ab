package frontgo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production API.
	DefaultBaseURL = "https://apigo.frontpayment.no/api/v1/"
	// DemoBaseURL is the demo (sandbox) API.
	DemoBaseURL = "https://demo-api.frontpayment.no/api/v1/"

	requestIDHeader = "X-Request-Id"
)

// Client represents a FrontGo Connect API client
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *retryablehttp.Client
	metrics    *metrics
	logger     zerolog.Logger
}

// NewClient creates a new FrontGo client authenticating with apiKey
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	baseURL := o.baseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
		if o.demo {
			baseURL = DemoBaseURL
		}
	}
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", ErrInvalidConfig, baseURL)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		apiKey:     apiKey,
		userAgent:  o.userAgent,
		httpClient: newRetryableClient(httpClient, o, logger),
		logger:     logger,
	}

	if o.registerer != nil {
		m, err := newMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		client.metrics = m
	}

	return client, nil
}

// BaseURL returns the base URL all endpoint paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, operation, endpoint string, params url.Values) (*Response, error) {
	return c.doRequest(ctx, operation, http.MethodGet, endpoint, params, nil)
}

func (c *Client) post(ctx context.Context, operation, endpoint string, body any) (*Response, error) {
	return c.doRequest(ctx, operation, http.MethodPost, endpoint, nil, body)
}

func (c *Client) put(ctx context.Context, operation, endpoint string, body any) (*Response, error) {
	return c.doRequest(ctx, operation, http.MethodPut, endpoint, nil, body)
}

// doRequest performs an authenticated request and classifies the response
func (c *Client) doRequest(ctx context.Context, operation, method, endpoint string, params url.Values, body any) (*Response, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var payload interface{}
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = encoded
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, requestURL, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := c.logger.With().
		Str("operation", operation).
		Str("method", method).
		Str("url", requestURL).
		Str("request_id", requestID).
		Logger()
	logger.Debug().Msg("Making FrontGo API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(operation, method, "error", time.Since(start))
		logger.Debug().Err(err).Msg("FrontGo API request failed")
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.observe(operation, method, strconv.Itoa(resp.StatusCode), elapsed)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("FrontGo API response")

	if apiErr := newError(resp.StatusCode, respBody); apiErr != nil {
		return nil, apiErr
	}

	return parseResponse(resp.StatusCode, respBody)
}

// parseResponse decodes a successful body. Bodies that are valid JSON but not
// an object are kept as Data.
func parseResponse(statusCode int, body []byte) (*Response, error) {
	r := &Response{HTTPStatus: statusCode, Raw: body}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return r, nil
	}

	if trimmed[0] != '{' {
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
		r.Data = json.RawMessage(trimmed)
		return r, nil
	}

	if err := json.Unmarshal(trimmed, r); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return r, nil
}

// pathSegment escapes a caller-supplied path parameter. Blanks and dot
// segments are rejected; PathEscape leaves "." and ".." as they are.
func pathSegment(name, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}
	if value == "." || value == ".." {
		return "", fmt.Errorf("%w: %s must not be %q", ErrInvalidParameter, name, value)
	}
	return url.PathEscape(value), nil
}
