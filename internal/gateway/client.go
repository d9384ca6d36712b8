// Package gateway wraps outbound calls to the remote question/analysis
// generation service. It owns timeout, retry, and rate-limit handling; on a
// persistent rate limit it synthesizes a deterministic fallback response
// instead of failing, so callers always get an answer.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/zochlan/interview-coach/internal/config"
)

// Logical endpoints tracked by the rate limiter. Exact paths are a
// deployment detail of the generation service.
const (
	EndpointQuestion = "/generate-question"
	EndpointAnalysis = "/analyze-response"
	EndpointModels   = "/models"
)

const maxAttempts = 2

// APIError is a non-2xx response from the generation service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("generator api error: status %d: %s", e.StatusCode, e.Message)
}

// Transient reports whether the error is worth a retry.
func (e *APIError) Transient() bool {
	return e.StatusCode >= 500
}

// errRateLimited routes a call to the synthesis path. It never escapes the
// package: exported methods convert it into a synthesized success.
var errRateLimited = errors.New("generator endpoint rate limited")

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	retryDelay time.Duration
	cooldown   time.Duration

	http    *http.Client
	log     *zap.Logger
	limiter *rateLimitTracker
	events  *rateLimitNotifier

	// Injection points for tests.
	sleep func(time.Duration)
	now   func() time.Time
}

func NewClient(cfg config.GeneratorConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		retryDelay: cfg.RetryDelay,
		cooldown:   cfg.RateLimitCooldown,
		http:       &http.Client{Timeout: cfg.Timeout},
		log:        log,
		limiter:    newRateLimitTracker(),
		events:     &rateLimitNotifier{},
		sleep:      time.Sleep,
		now:        time.Now,
	}
}

// DefaultModel returns the configured generation model.
func (c *Client) DefaultModel() string {
	return c.model
}

// OnRateLimit registers a listener for rate-limit events. Listeners are
// invoked synchronously from the calling goroutine.
func (c *Client) OnRateLimit(l RateLimitListener) {
	c.events.register(l)
}

// RateLimitedEndpoints returns the endpoints currently marked rate-limited
// with their expiry times.
func (c *Client) RateLimitedEndpoints() map[string]time.Time {
	return c.limiter.snapshot(c.now())
}

// post runs one logical call against an endpoint with the retry policy:
// network errors and 5xx are retried once after a fixed delay, 4xx other
// than 429 fail immediately, and a second consecutive 429 marks the
// endpoint rate-limited and returns errRateLimited. No request is attempted
// more than twice.
func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	if c.limiter.limited(endpoint, c.now()) {
		c.log.Debug("generator endpoint rate limited, short-circuiting", zap.String("endpoint", endpoint))
		return errRateLimited
	}

	sawRateLimit := false
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := c.exchange(ctx, http.MethodPost, endpoint, payload, out)
		if err == nil {
			return nil
		}

		var apiErr *APIError
		isAPI := errors.As(err, &apiErr)

		switch {
		case isAPI && apiErr.StatusCode == http.StatusTooManyRequests:
			if sawRateLimit || attempt == maxAttempts {
				c.markRateLimited(endpoint)
				return errRateLimited
			}
			sawRateLimit = true
			backoff := c.retryDelay + time.Duration(rand.Intn(1500))*time.Millisecond
			c.log.Warn("generator rate limited, backing off",
				zap.String("endpoint", endpoint),
				zap.Duration("backoff", backoff))
			c.sleep(backoff)

		case isAPI && !apiErr.Transient():
			return err

		default:
			// Network-level failure or 5xx.
			if attempt == maxAttempts {
				return err
			}
			c.log.Warn("generator call failed, retrying",
				zap.String("endpoint", endpoint),
				zap.Error(err))
			c.sleep(c.retryDelay)
		}
	}
	return fmt.Errorf("generator call to %s exhausted retries", endpoint)
}

// get runs a single idempotent GET with the transient retry policy.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := c.exchange(ctx, http.MethodGet, endpoint, nil, out)
		if err == nil {
			return nil
		}
		lastErr = err

		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.Transient() {
			return err
		}
		if attempt < maxAttempts {
			c.sleep(c.retryDelay)
		}
	}
	return lastErr
}

// exchange performs a single HTTP request/response cycle.
func (c *Client) exchange(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("generator request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: string(bodyBytes)}
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("decode response: %w, body: %s", err, string(bodyBytes))
		}
	}
	return nil
}

func (c *Client) markRateLimited(endpoint string) {
	until := c.now().Add(c.cooldown)
	c.limiter.mark(endpoint, until)
	c.log.Warn("generator endpoint marked rate limited",
		zap.String("endpoint", endpoint),
		zap.Time("until", until))
	c.events.notify(RateLimitEvent{Endpoint: endpoint, Until: until})
}
