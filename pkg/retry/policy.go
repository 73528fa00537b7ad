package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net"
	"net/url"
	"syscall"
	"time"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = time.Second
	DefaultMaxDelay     = 10 * time.Second
	DefaultFactor       = 2.0

	// MaxJitter is the upper bound (exclusive) of the random fraction added to each delay.
	MaxJitter = 0.3
)

var ErrInvalidPolicy = errors.New("invalid retry policy")

// Policy describes how an operation is re-attempted. A Policy is read-only once Do starts.
type Policy struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Factor       float64
	Retryable    func(error) bool
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:   DefaultMaxRetries,
		InitialDelay: DefaultInitialDelay,
		MaxDelay:     DefaultMaxDelay,
		Factor:       DefaultFactor,
		Retryable:    IsRetryable,
	}
}

func (p Policy) Validate() error {
	if p.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries must be >= 0, got %d", ErrInvalidPolicy, p.MaxRetries)
	}

	if p.InitialDelay <= 0 {
		return fmt.Errorf("%w: initial delay must be > 0, got %s", ErrInvalidPolicy, p.InitialDelay)
	}

	if p.MaxDelay < p.InitialDelay {
		return fmt.Errorf("%w: max delay %s is below initial delay %s", ErrInvalidPolicy, p.MaxDelay, p.InitialDelay)
	}

	if p.Factor <= 1 {
		return fmt.Errorf("%w: factor must be > 1, got %v", ErrInvalidPolicy, p.Factor)
	}

	return nil
}

// Delay returns min(InitialDelay * Factor^attempt * (1+jitter), MaxDelay).
// attempt is the 0-based index of the attempt that just failed.
func (p Policy) Delay(attempt int, jitter float64) time.Duration {
	d := float64(p.InitialDelay) * math.Pow(p.Factor, float64(attempt)) * (1 + jitter)
	if d >= float64(p.MaxDelay) || math.IsInf(d, 1) || math.IsNaN(d) {
		return p.MaxDelay
	}

	return time.Duration(d)
}

// StatusError is a synthetic error for an upstream HTTP status the caller should see as a failure.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}

	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether the status is a 5xx.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsRetryable is the default predicate: transport failures and 5xx statuses.
// Cancellation and expired deadlines are never retried.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE)
}

type config struct {
	policy  Policy
	sleep   func(ctx context.Context, d time.Duration) error
	jitter  func() float64
	onRetry func(attempt int, delay time.Duration, err error)
}

// Option overrides one aspect of the default policy or executor.
type Option func(*config)

func WithPolicy(p Policy) Option {
	return func(c *config) {
		if p.Retryable == nil {
			p.Retryable = IsRetryable
		}
		c.policy = p
	}
}

func WithMaxRetries(n int) Option {
	return func(c *config) {
		c.policy.MaxRetries = n
	}
}

func WithInitialDelay(d time.Duration) Option {
	return func(c *config) {
		c.policy.InitialDelay = d
	}
}

func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.policy.MaxDelay = d
	}
}

func WithFactor(f float64) Option {
	return func(c *config) {
		c.policy.Factor = f
	}
}

func WithRetryable(fn func(error) bool) Option {
	return func(c *config) {
		if fn != nil {
			c.policy.Retryable = fn
		}
	}
}

// WithOnRetry registers a hook called before each wait.
func WithOnRetry(fn func(attempt int, delay time.Duration, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// WithSleep replaces the wait between attempts.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *config) {
		c.sleep = fn
	}
}

// WithJitter replaces the jitter source; fn must return a value in [0, MaxJitter).
func WithJitter(fn func() float64) Option {
	return func(c *config) {
		c.jitter = fn
	}
}

func newConfig(opts []Option) config {
	c := config{
		policy: DefaultPolicy(),
		sleep:  sleepCtx,
		jitter: func() float64 { return rand.Float64() * MaxJitter },
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
