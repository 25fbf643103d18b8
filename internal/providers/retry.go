package providers

import (
	"context"
	"log/slog"
	"time"

	"mlb-storyteller-service/internal/logging"
	"mlb-storyteller-service/internal/metrics"
)

const (
	defaultRetryAttempts = 4
	defaultBackoff       = 500 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// RetryPolicy bounds the retry loop around upstream calls.
type RetryPolicy struct {
	MaxAttempts int
	BaseBackoff time.Duration

	backoffFn backoffFunc
}

// NewRetryPolicy builds a policy with exponential backoff (base doubling per
// attempt). If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryPolicy(maxAttempts int, backoff time.Duration) RetryPolicy {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		BaseBackoff: backoff,
		backoffFn: func(attempt int) time.Duration {
			return backoff << (attempt - 1)
		},
	}
}

// Retry runs fn with bounded retries under the policy. Only failures the
// taxonomy marks retryable are attempted again; everything else surfaces
// immediately. A cancelled context aborts the loop between attempts.
func Retry(ctx context.Context, policy RetryPolicy, logger *slog.Logger, rec *metrics.Recorder, operation string, fn func(context.Context) error) error {
	if policy.MaxAttempts <= 0 {
		policy = NewRetryPolicy(policy.MaxAttempts, policy.BaseBackoff)
	}
	if policy.backoffFn == nil {
		policy.backoffFn = NewRetryPolicy(policy.MaxAttempts, policy.BaseBackoff).backoffFn
	}

	var lastErr error

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		start := time.Now()
		err := fn(ctx)
		rec.RecordFetchAttempt(operation, time.Since(start), err)
		if err == nil {
			return nil
		}
		lastErr = err

		pErr, ok := AsError(err)
		if !ok || !pErr.Retryable() {
			return err
		}
		if attempt == policy.MaxAttempts {
			break
		}

		rec.RecordFetchRetry(operation)
		logWarn(ctx, logger, "upstream fetch retry",
			slog.String(logging.FieldOperation, operation),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", policy.MaxAttempts),
			slog.Any("error", err),
		)

		// backoff with context awareness
		delay := policy.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	logWarn(ctx, logger, "upstream fetch failed",
		slog.String(logging.FieldOperation, operation),
		slog.Int("attempts", policy.MaxAttempts),
		slog.Any("error", lastErr),
	)
	return lastErr
}

func logWarn(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
