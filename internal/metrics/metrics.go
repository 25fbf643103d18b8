package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	calls           int
	errors          int
	retries         int
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about upstream fetches and
// cache traffic. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	fetch map[string]*fetchStats
	cache map[string]*cacheStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		fetch: make(map[string]*fetchStats),
		cache: make(map[string]*cacheStats),
		otel:  otel,
	}
}

// RecordFetchAttempt increments counters for an upstream call and stores the
// last observed latency.
func (r *Recorder) RecordFetchAttempt(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureFetch(operation)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(operation, duration, err)
	}
}

// RecordFetchRetry tracks that an upstream call is being retried.
func (r *Recorder) RecordFetchRetry(operation string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureFetch(operation).retries++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchRetry(operation)
	}
}

// RecordCacheHit tracks a cache hit for a key category.
func (r *Recorder) RecordCacheHit(category string) {
	r.recordCache(category, true)
}

// RecordCacheMiss tracks a cache miss for a key category.
func (r *Recorder) RecordCacheMiss(category string) {
	r.recordCache(category, false)
}

func (r *Recorder) recordCache(category string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureCache(category)
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheEvent(category, hit)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// FetchSnapshot is a copy of the current stats for one upstream operation.
type FetchSnapshot struct {
	Calls           int
	Errors          int
	Retries         int
	LastCallLatency time.Duration
}

func (r *Recorder) FetchStats(operation string) FetchSnapshot {
	if r == nil {
		return FetchSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureFetch(operation)
	return FetchSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Retries:         stats.retries,
		LastCallLatency: stats.lastCallLatency,
	}
}

// CacheSnapshot is a copy of the current stats for one cache key category.
type CacheSnapshot struct {
	Hits   int
	Misses int
}

func (r *Recorder) CacheStats(category string) CacheSnapshot {
	if r == nil {
		return CacheSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureCache(category)
	return CacheSnapshot{Hits: stats.hits, Misses: stats.misses}
}

func (r *Recorder) ensureFetch(operation string) *fetchStats {
	stats, ok := r.fetch[operation]
	if !ok {
		stats = &fetchStats{}
		r.fetch[operation] = stats
	}
	return stats
}

func (r *Recorder) ensureCache(category string) *cacheStats {
	stats, ok := r.cache[category]
	if !ok {
		stats = &cacheStats{}
		r.cache[category] = stats
	}
	return stats
}
