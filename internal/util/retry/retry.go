// Package retry provides an exponential-backoff wrapper for remote
// operations.
//
// The wrapper retries only errors its Classifier recognizes as transient.
// Everything else, including the final error once the attempt budget is
// spent, propagates unchanged: callers always see the original error value,
// never a wrapped copy.
package retry

import (
	"context"
	"time"
)

// Classifier decides whether an error is transient and worth retrying.
type Classifier func(error) bool

// Config holds retry configuration.
type Config struct {
	// MaxAttempts is the total attempt budget for a failing call. When the
	// MaxAttempts-th attempt fails, its error propagates and no further
	// attempt is made.
	MaxAttempts int

	// InitialDelay is the wait before the first retry. The delay doubles on
	// every subsequent retry of the same call.
	InitialDelay time.Duration

	// Classify decides retryability. When nil, nothing is retried.
	Classify Classifier

	// OnRetry, when set, is invoked before each backoff wait with the
	// transient error, the number of the attempt that just failed, and the
	// upcoming delay.
	OnRetry func(err error, attempt int, delay time.Duration)
}

// Option is a functional option for retry configuration.
type Option func(*Config)

// sleep waits for d or until ctx is done. Package-level so tests can
// substitute a recording implementation.
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// WithExponentialBackoff executes operation, retrying transient failures
// with exponentially increasing delays. The wait respects context
// cancellation; a cancelled wait returns the context error.
func WithExponentialBackoff(ctx context.Context, operation func() error, opts ...Option) error {
	cfg := &Config{
		MaxAttempts:  10,
		InitialDelay: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	delay := cfg.InitialDelay
	for attempt := 1; ; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		if cfg.Classify == nil || !cfg.Classify(err) {
			return err
		}
		if attempt >= cfg.MaxAttempts {
			return err
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(err, attempt, delay)
		}
		if werr := sleep(ctx, delay); werr != nil {
			return werr
		}
		delay *= 2
	}
}

// WithMaxAttempts sets the total attempt budget.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Config) {
		c.InitialDelay = d
	}
}

// WithClassifier sets the transient-error classifier.
func WithClassifier(fn Classifier) Option {
	return func(c *Config) {
		c.Classify = fn
	}
}

// WithOnRetry sets the pre-backoff callback.
func WithOnRetry(fn func(err error, attempt int, delay time.Duration)) Option {
	return func(c *Config) {
		c.OnRetry = fn
	}
}
