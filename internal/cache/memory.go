package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is a thread-safe in-process TTL cache. With Enabled false every Get
// reports absent and every mutation is a no-op, so a deployment without a
// cache backend runs the same caller code untouched.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]entry
	enabled    bool
	defaultTTL time.Duration
	now        func() time.Time
}

// Config controls Memory construction.
type Config struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// NewMemory constructs an empty in-memory cache.
func NewMemory(cfg Config) *Memory {
	return &Memory{
		entries:    make(map[string]entry),
		enabled:    cfg.Enabled,
		defaultTTL: cfg.DefaultTTL,
		now:        time.Now,
	}
}

// Get retrieves and unmarshals the entry for key. Expired entries are pruned
// lazily on access.
func (m *Memory) Get(ctx context.Context, key string, dest any) (bool, error) {
	_ = ctx
	if m == nil || !m.enabled {
		return false, nil
	}

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if e.expired(m.now()) {
		m.mu.Lock()
		if cur, still := m.entries[key]; still && cur.expired(m.now()) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(e.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value under key, serialized as JSON. The marshal happens before
// the lock is taken, so a failed Set leaves the previous entry intact.
func (m *Memory) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	_ = ctx
	if m == nil || !m.enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if ttl <= 0 {
		ttl = m.defaultTTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry{data: data, expiresAt: expiresAt}
	m.mu.Unlock()
	return nil
}

// Delete removes the entry for key if present.
func (m *Memory) Delete(ctx context.Context, key string) error {
	_ = ctx
	if m == nil || !m.enabled {
		return nil
	}

	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// DeletePrefix removes every entry whose key starts with prefix.
func (m *Memory) DeletePrefix(ctx context.Context, prefix string) error {
	_ = ctx
	if m == nil || !m.enabled {
		return nil
	}

	m.mu.Lock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
	return nil
}

// Health reports whether the store is reachable. The in-memory store is
// healthy exactly when enabled.
func (m *Memory) Health(ctx context.Context) bool {
	_ = ctx
	return m != nil && m.enabled
}

// Len reports the number of live entries, counting expired ones not yet
// pruned.
func (m *Memory) Len() int {
	if m == nil {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
