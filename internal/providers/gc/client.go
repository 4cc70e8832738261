package gc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Undocumented JSON API backing the weather.gc.ca web app.
// Sample request: https://weather.gc.ca/api/app/en/Location/45.4215,-75.6972?type=city
const (
	BaseURL           = "https://weather.gc.ca"
	DefaultUserAgent  = "weather-app/1.0"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2
	DefaultRetryDelay = time.Second

	acceptHeader = "application/geo+json"
)

// Logger is the logging capability the client reports attempts and failures to.
// *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
	retryDelay time.Duration
	newTimer   func() backoff.Timer
	logger     Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (useful for testing)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds every single attempt, not the whole Execute call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetryDelay sets the delay before the first retry. Later retries double it.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		if delay >= 0 {
			c.retryDelay = delay
		}
	}
}

// WithTimer sets the factory for the timer used to wait between attempts.
func WithTimer(newTimer func() backoff.Timer) Option {
	return func(c *Client) {
		c.newTimer = newTimer
	}
}

func NewClient(logger Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		userAgent:  DefaultUserAgent,
		timeout:    DefaultTimeout,
		retryDelay: DefaultRetryDelay,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute GETs target and returns the decoded JSON body. Transport errors and
// every non-2xx status except a 4xx other than 429 are retried up to maxRetries
// times with exponential backoff; every failure is reported as a *RequestError.
func (c *Client) Execute(ctx context.Context, target string, maxRetries int) (any, error) {
	if maxRetries < 0 {
		maxRetries = 0
	}
	attempts := maxRetries + 1
	attempt := 0

	operation := func() (any, error) {
		attempt++
		c.logger.Info("making request",
			"url", target,
			"attempt", attempt,
			"attempts", attempts,
		)

		data, err := c.get(ctx, target)
		if err != nil {
			return nil, c.classify(err, attempt)
		}
		return data, nil
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Info("retrying request",
			"url", target,
			"wait", wait,
			"next_attempt", attempt+1,
		)
	}

	var timer backoff.Timer
	if c.newTimer != nil {
		timer = c.newTimer()
	}

	data, err := backoff.RetryNotifyWithTimerAndData[any](operation, c.policy(ctx, maxRetries), notify, timer)
	if err == nil {
		return data, nil
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return nil, reqErr
	}
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil, &RequestError{Kind: KindUnexpected, Attempts: attempt, Err: err}
	}

	exhausted := &RequestError{Kind: KindExhaustedRetries, Attempts: attempt, Err: err}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		exhausted.StatusCode = statusErr.StatusCode
	}
	c.logger.Error("request failed after all attempts",
		"url", target,
		"attempts", attempt,
		"error", err,
	)
	return nil, exhausted
}

// policy yields delays of retryDelay, 2*retryDelay, 4*retryDelay... and stops after maxRetries.
func (c *Client) policy(ctx context.Context, maxRetries int) backoff.BackOff {
	if maxRetries == 0 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.retryDelay
	exp.RandomizationFactor = 0
	exp.Multiplier = 2
	exp.MaxInterval = time.Duration(math.MaxInt64)
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(maxRetries)), ctx)
}

// get performs a single attempt. The attempt's context and response body are
// released before it returns, whatever the outcome.
func (c *Client) get(ctx context.Context, target string) (any, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Info("request completed",
		"url", target,
		"status_code", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        target,
		}
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return data, nil
}

// classify logs a failed attempt and marks it permanent unless a retry may help.
func (c *Client) classify(err error, attempt int) error {
	var statusErr *StatusError
	var transportErr *transportError

	switch {
	case errors.As(err, &statusErr) && statusErr.fatalClient():
		c.logger.Error("HTTP error", "status_code", statusErr.StatusCode, "error", err)
		return backoff.Permanent(&RequestError{
			Kind:       KindClientError,
			StatusCode: statusErr.StatusCode,
			Attempts:   attempt,
			Err:        err,
		})
	case errors.As(err, &statusErr) && statusErr.retryable():
		c.logger.Error("HTTP error", "status_code", statusErr.StatusCode, "error", err)
		return err
	case errors.As(err, &transportErr):
		c.logger.Error("request error", "error", err)
		return err
	default:
		c.logger.Error("unexpected error", "error", err)
		return backoff.Permanent(&RequestError{Kind: KindUnexpected, Attempts: attempt, Err: err})
	}
}

// transportError marks connection, timeout and body read failures.
type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return e.err.Error()
}

func (e *transportError) Unwrap() error {
	return e.err
}
