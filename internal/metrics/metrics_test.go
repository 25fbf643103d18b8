package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordFetchAttempt(t *testing.T) {
	rec := NewRecorder()

	rec.RecordFetchAttempt("game_feed", 120*time.Millisecond, nil)
	rec.RecordFetchAttempt("game_feed", 340*time.Millisecond, errors.New("boom"))
	rec.RecordFetchRetry("game_feed")

	snap := rec.FetchStats("game_feed")
	if snap.Calls != 2 {
		t.Fatalf("expected 2 calls, got %d", snap.Calls)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", snap.Errors)
	}
	if snap.Retries != 1 {
		t.Fatalf("expected 1 retry, got %d", snap.Retries)
	}
	if snap.LastCallLatency != 340*time.Millisecond {
		t.Fatalf("expected last latency stored, got %v", snap.LastCallLatency)
	}
}

func TestFetchStatsIsolatedPerOperation(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFetchAttempt("game_feed", time.Millisecond, nil)
	rec.RecordFetchAttempt("schedule", time.Millisecond, nil)
	rec.RecordFetchAttempt("schedule", time.Millisecond, nil)

	if got := rec.FetchStats("game_feed").Calls; got != 1 {
		t.Fatalf("expected 1 game_feed call, got %d", got)
	}
	if got := rec.FetchStats("schedule").Calls; got != 2 {
		t.Fatalf("expected 2 schedule calls, got %d", got)
	}
}

func TestRecordCacheEvents(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCacheHit("game")
	rec.RecordCacheHit("game")
	rec.RecordCacheMiss("game")
	rec.RecordCacheMiss("schedule")

	game := rec.CacheStats("game")
	if game.Hits != 2 || game.Misses != 1 {
		t.Fatalf("unexpected game stats %+v", game)
	}
	schedule := rec.CacheStats("schedule")
	if schedule.Hits != 0 || schedule.Misses != 1 {
		t.Fatalf("unexpected schedule stats %+v", schedule)
	}
}

func TestUnknownKeysReturnZeroSnapshots(t *testing.T) {
	rec := NewRecorder()
	if snap := rec.FetchStats("never_called"); snap != (FetchSnapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
	if snap := rec.CacheStats("never_seen"); snap != (CacheSnapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordFetchAttempt("op", time.Second, nil)
	rec.RecordFetchRetry("op")
	rec.RecordCacheHit("cat")
	rec.RecordCacheMiss("cat")
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if snap := rec.FetchStats("op"); snap != (FetchSnapshot{}) {
		t.Fatalf("expected zero snapshot from nil recorder, got %+v", snap)
	}
	if snap := rec.CacheStats("cat"); snap != (CacheSnapshot{}) {
		t.Fatalf("expected zero snapshot from nil recorder, got %+v", snap)
	}
}
