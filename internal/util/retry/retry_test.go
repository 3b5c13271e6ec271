package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordSleeps replaces the package sleep func with one that records the
// requested delays without waiting. Restored via t.Cleanup.
func recordSleeps(t *testing.T) *[]time.Duration {
	t.Helper()
	var delays []time.Duration
	orig := sleep
	sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	t.Cleanup(func() { sleep = orig })
	return &delays
}

func retryAll(error) bool { return true }

func TestWithExponentialBackoff_Success(t *testing.T) {
	attempts := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return nil
	}, WithClassifier(retryAll))

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_RetryTiming(t *testing.T) {
	delays := recordSleeps(t)

	attempts := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		if attempts < 4 {
			return errors.New("transient")
		}
		return nil
	}, WithClassifier(retryAll))

	require.NoError(t, err)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
	}, *delays)
}

func TestWithExponentialBackoff_Ceiling(t *testing.T) {
	recordSleeps(t)

	sentinel := errors.New("always transient")
	attempts := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return sentinel
	}, WithClassifier(retryAll))

	// The tenth failure propagates; there is no eleventh attempt.
	assert.Equal(t, 10, attempts)
	// The error is the original value, not a wrapped copy.
	assert.Same(t, sentinel, err)
}

func TestWithExponentialBackoff_NonRetryable(t *testing.T) {
	delays := recordSleeps(t)

	sentinel := errors.New("permanent")
	attempts := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return sentinel
	}, WithClassifier(func(error) bool { return false }))

	assert.Equal(t, 1, attempts)
	assert.Same(t, sentinel, err)
	assert.Empty(t, *delays, "non-retryable errors must propagate without delay")
}

func TestWithExponentialBackoff_NilClassifier(t *testing.T) {
	delays := recordSleeps(t)

	sentinel := errors.New("whatever")
	err := WithExponentialBackoff(context.Background(), func() error { return sentinel })

	assert.Same(t, sentinel, err)
	assert.Empty(t, *delays)
}

func TestWithExponentialBackoff_OnRetry(t *testing.T) {
	recordSleeps(t)

	var seen []int
	var seenDelays []time.Duration
	attempts := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	},
		WithClassifier(retryAll),
		WithOnRetry(func(_ error, attempt int, delay time.Duration) {
			seen = append(seen, attempt)
			seenDelays = append(seenDelays, delay)
		}))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, seenDelays)
}

func TestWithExponentialBackoff_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := WithExponentialBackoff(ctx, func() error {
		attempts++
		return errors.New("transient")
	},
		WithClassifier(retryAll),
		WithInitialDelay(10*time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_Options(t *testing.T) {
	delays := recordSleeps(t)

	attempts := 0
	_ = WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return errors.New("transient")
	},
		WithClassifier(retryAll),
		WithMaxAttempts(3),
		WithInitialDelay(5*time.Millisecond))

	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{5 * time.Millisecond, 10 * time.Millisecond}, *delays)
}
