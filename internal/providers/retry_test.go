package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"mlb-storyteller-service/internal/metrics"
)

func immediateBackoff(policy RetryPolicy) RetryPolicy {
	policy.backoffFn = func(int) time.Duration { return 0 }
	return policy
}

func TestRetryRetriesTransientFailuresAndSucceeds(t *testing.T) {
	rec := metrics.NewRecorder()
	policy := immediateBackoff(NewRetryPolicy(4, time.Millisecond))

	calls := 0
	err := Retry(context.Background(), policy, nil, rec, "game_feed", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &Error{Class: FailureServerError, Operation: "game_feed", StatusCode: 503}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}

	snap := rec.FetchStats("game_feed")
	if snap.Calls != 3 || snap.Errors != 2 || snap.Retries != 2 {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}

func TestRetryStopsAfterMaxAttempts(t *testing.T) {
	policy := immediateBackoff(NewRetryPolicy(4, time.Millisecond))

	calls := 0
	wantErr := &Error{Class: FailureTimeout, Operation: "game_feed"}
	err := Retry(context.Background(), policy, nil, nil, "game_feed", func(ctx context.Context) error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected terminal error passthrough, got %v", err)
	}
	if calls != 4 {
		t.Fatalf("expected 4 attempts, got %d", calls)
	}
}

func TestRetryDoesNotRetryNonRetryableFailures(t *testing.T) {
	policy := immediateBackoff(NewRetryPolicy(4, time.Millisecond))

	calls := 0
	err := Retry(context.Background(), policy, nil, nil, "game_feed", func(ctx context.Context) error {
		calls++
		return &Error{Class: FailureNotFound, Operation: "game_feed", StatusCode: 404}
	})
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestRetryDoesNotRetryPlainErrors(t *testing.T) {
	policy := immediateBackoff(NewRetryPolicy(4, time.Millisecond))

	calls := 0
	boom := errors.New("boom")
	err := Retry(context.Background(), policy, nil, nil, "game_feed", func(ctx context.Context) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected passthrough, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	policy := NewRetryPolicy(4, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		// cancel once the first attempt has failed and the loop is sleeping
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := Retry(ctx, policy, nil, nil, "game_feed", func(ctx context.Context) error {
		calls++
		return &Error{Class: FailureConnection, Operation: "game_feed"}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one attempt before cancellation, got %d", calls)
	}
}

func TestRetryUsesExponentialBackoff(t *testing.T) {
	policy := NewRetryPolicy(4, 500*time.Millisecond)

	var delays []time.Duration
	for attempt := 1; attempt <= 3; attempt++ {
		delays = append(delays, policy.backoffFn(attempt))
	}
	want := []time.Duration{500 * time.Millisecond, time.Second, 2 * time.Second}
	for i := range want {
		if delays[i] != want[i] {
			t.Fatalf("attempt %d: expected %v, got %v", i+1, want[i], delays[i])
		}
	}
}

func TestNewRetryPolicyDefaults(t *testing.T) {
	policy := NewRetryPolicy(0, 0)
	if policy.MaxAttempts != 4 {
		t.Fatalf("expected 4 attempts, got %d", policy.MaxAttempts)
	}
	if policy.BaseBackoff != 500*time.Millisecond {
		t.Fatalf("expected 500ms base backoff, got %v", policy.BaseBackoff)
	}
}
