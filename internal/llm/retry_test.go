package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusError struct {
	code int
}

func (e *statusError) Error() string       { return fmt.Sprintf("http status %d", e.code) }
func (e *statusError) HTTPStatusCode() int { return e.code }

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ErrorTypeNonRetryable},
		{"context canceled", context.Canceled, ErrorTypeNonRetryable},
		{"deadline exceeded", context.DeadlineExceeded, ErrorTypeRetryable},
		{"rate limited", &statusError{code: 429}, ErrorTypeRetryable},
		{"service unavailable", &statusError{code: 503}, ErrorTypeRetryable},
		{"unauthorized", &statusError{code: 401}, ErrorTypeNonRetryable},
		{"bad request", &statusError{code: 400}, ErrorTypeNonRetryable},
		{"server error", &statusError{code: 599}, ErrorTypeRetryable},
		{"dns failure", &net.DNSError{Err: "no such host"}, ErrorTypeRetryable},
		{"context length exceeded", errors.New("maximum context length is 8192 tokens"), ErrorTypeNonRetryable},
		{"timeout in message", errors.New("request timeout"), ErrorTypeRetryable},
		{"unknown", errors.New("something odd"), ErrorTypeUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyError(tc.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	assert.Equal(t, 1*time.Second, CalculateBackoff(1, 1.0, 8.0))
	assert.Equal(t, 2*time.Second, CalculateBackoff(2, 1.0, 8.0))
	assert.Equal(t, 4*time.Second, CalculateBackoff(3, 1.0, 8.0))
	assert.Equal(t, 8*time.Second, CalculateBackoff(4, 1.0, 8.0))
	// Capped at max
	assert.Equal(t, 8*time.Second, CalculateBackoff(10, 1.0, 8.0))
	// Attempts below 1 are treated as the first attempt
	assert.Equal(t, 1*time.Second, CalculateBackoff(0, 1.0, 8.0))
}

func TestRetryConfig_Validate(t *testing.T) {
	cfg := DefaultRetryConfig()
	assert.NoError(t, cfg.Validate())

	bad := RetryConfig{MaxAttempts: -1}
	assert.Error(t, bad.Validate())

	bad = RetryConfig{BackoffBase: 4.0, BackoffMax: 2.0}
	assert.Error(t, bad.Validate())
}

func TestWithRetryResult(t *testing.T) {
	ctx := context.Background()
	fastRetry := RetryConfig{Enabled: true, MaxAttempts: 3, BackoffBase: 0.001, BackoffMax: 0.002}

	t.Run("success on first attempt", func(t *testing.T) {
		calls := 0
		result, err := WithRetryResult(ctx, fastRetry, func() (string, error) {
			calls++
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 1, calls)
	})

	t.Run("retryable error then success", func(t *testing.T) {
		calls := 0
		result, err := WithRetryResult(ctx, fastRetry, func() (string, error) {
			calls++
			if calls < 3 {
				return "", &statusError{code: 503}
			}
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable error fails immediately", func(t *testing.T) {
		calls := 0
		_, err := WithRetryResult(ctx, fastRetry, func() (string, error) {
			calls++
			return "", &statusError{code: 401}
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("exhausted attempts return the last error", func(t *testing.T) {
		calls := 0
		_, err := WithRetryResult(ctx, fastRetry, func() (string, error) {
			calls++
			return "", &statusError{code: 429}
		})
		require.Error(t, err)
		assert.Equal(t, fastRetry.MaxAttempts+1, calls)
	})

	t.Run("disabled retry executes once", func(t *testing.T) {
		calls := 0
		_, err := WithRetryResult(ctx, RetryConfig{Enabled: false}, func() (string, error) {
			calls++
			return "", &statusError{code: 503}
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := WithRetryResult(cancelCtx, fastRetry, func() (string, error) {
			return "", &statusError{code: 503}
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
