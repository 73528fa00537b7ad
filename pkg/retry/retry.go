package retry

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
)

// Fn is an operation that may be attempted more than once.
type Fn[T any] func(ctx context.Context) (T, error)

// Do runs fn until it succeeds, fails with a non-retryable error, or exhausts MaxRetries.
// The error returned after exhaustion is the error of the last attempt, unwrapped.
// If ctx is done while waiting between attempts, ctx.Err() is returned.
func Do[T any](ctx context.Context, fn Fn[T], opts ...Option) (T, error) {
	var zero T

	c := newConfig(opts)
	p := c.policy
	if err := p.Validate(); err != nil {
		return zero, err
	}

	l := ctxlogger.GetLogger(ctx)

	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}

		lastErr = err

		// a done context cannot run another attempt; report what the last one saw
		if !p.Retryable(err) || ctx.Err() != nil {
			return zero, err
		}

		if attempt == p.MaxRetries {
			break
		}

		delay := p.Delay(attempt, c.jitter())
		l.Warn("operation failed, retrying",
			"attempt", attempt+1,
			"max_retries", p.MaxRetries,
			"delay", delay,
			"error", err,
		)

		if c.onRetry != nil {
			c.onRetry(attempt+1, delay, err)
		}

		if err := c.sleep(ctx, delay); err != nil {
			return zero, err
		}
	}

	return zero, lastErr
}

// RequestFn builds a fresh request per attempt so bodies can be replayed.
type RequestFn func(ctx context.Context) (*http.Request, error)

// DoHTTP sends the request built by newReq through Do. A 5xx response is drained, closed and
// turned into a retryable *StatusError; any other response is returned as is.
func DoHTTP(ctx context.Context, client *http.Client, newReq RequestFn, opts ...Option) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	return Do(ctx, func(ctx context.Context) (*http.Response, error) {
		req, err := newReq(ctx)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= 500 && resp.StatusCode < 600 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
			resp.Body.Close()

			return nil, &StatusError{
				StatusCode: resp.StatusCode,
				Status:     resp.Status,
				Body:       string(body),
			}
		}

		return resp, nil
	}, opts...)
}
