package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8000" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.Provider != "statsapi" {
		t.Fatalf("unexpected provider %q", cfg.Provider)
	}
	if cfg.StatsAPI.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.StatsAPI.Timeout)
	}
	if cfg.StatsAPI.RetryAttempts != 4 {
		t.Fatalf("unexpected retry attempts %d", cfg.StatsAPI.RetryAttempts)
	}
	if cfg.StatsAPI.RetryBackoff != 500*time.Millisecond {
		t.Fatalf("unexpected retry backoff %v", cfg.StatsAPI.RetryBackoff)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("expected cache enabled by default")
	}
	if cfg.Cache.DefaultTTL != time.Hour {
		t.Fatalf("unexpected cache ttl %v", cfg.Cache.DefaultTTL)
	}
	if cfg.Story.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected story model %q", cfg.Story.Model)
	}
	if cfg.Story.Timeout != 30*time.Second {
		t.Fatalf("unexpected story timeout %v", cfg.Story.Timeout)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("MLB_STATS_API_TIMEOUT", "3s")
	t.Setenv("FETCH_RETRY_ATTEMPTS", "2")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("STORY_API_KEY", "secret")
	t.Setenv("STORY_MODEL", "gpt-4o")
	t.Setenv("METRICS_ENABLED", "no")

	cfg := Load()

	if cfg.Port != "9001" || cfg.Provider != "fixture" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.StatsAPI.Timeout != 3*time.Second || cfg.StatsAPI.RetryAttempts != 2 {
		t.Fatalf("unexpected statsapi config %+v", cfg.StatsAPI)
	}
	if cfg.Cache.Enabled {
		t.Fatal("expected cache disabled")
	}
	if cfg.Cache.DefaultTTL != 15*time.Minute {
		t.Fatalf("unexpected cache ttl %v", cfg.Cache.DefaultTTL)
	}
	if cfg.Story.APIKey != "secret" || cfg.Story.Model != "gpt-4o" {
		t.Fatalf("unexpected story config %+v", cfg.Story)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("MLB_STATS_API_TIMEOUT", "soon")
	t.Setenv("FETCH_RETRY_ATTEMPTS", "-3")
	t.Setenv("CACHE_TTL", "0s")
	t.Setenv("CACHE_ENABLED", "perhaps")

	cfg := Load()

	if cfg.StatsAPI.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.StatsAPI.Timeout)
	}
	if cfg.StatsAPI.RetryAttempts != 4 {
		t.Fatalf("unexpected retry attempts %d", cfg.StatsAPI.RetryAttempts)
	}
	if cfg.Cache.DefaultTTL != time.Hour {
		t.Fatalf("unexpected cache ttl %v", cfg.Cache.DefaultTTL)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("unparseable boolean must keep the default")
	}
}

func TestBoolEnvAcceptedSpellings(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"0", false},
		{"False", false},
		{"no", false},
	}
	for _, tc := range cases {
		t.Setenv("CACHE_ENABLED", tc.raw)
		if got := Load().Cache.Enabled; got != tc.want {
			t.Fatalf("CACHE_ENABLED=%q parsed as %v, want %v", tc.raw, got, tc.want)
		}
	}
}
