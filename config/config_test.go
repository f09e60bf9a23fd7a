package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port == "" {
		t.Error("Expected a default port")
	}
	if cfg.AuditWorkers <= 0 {
		t.Errorf("Expected positive default worker count, got %d", cfg.AuditWorkers)
	}
	if cfg.RateLimit <= 0 || cfg.RateLimitSize <= 0 {
		t.Errorf("Expected positive rate limit defaults, got %v/%v", cfg.RateLimit, cfg.RateLimitSize)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("AUDIT_WORKERS", "3")
	t.Setenv("RATE_LIMIT", "0.5")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Errorf("Expected port override, got %q", cfg.Port)
	}
	if cfg.AuditWorkers != 3 {
		t.Errorf("Expected 3 workers, got %d", cfg.AuditWorkers)
	}
	if cfg.RateLimit != 0.5 {
		t.Errorf("Expected rate limit 0.5, got %v", cfg.RateLimit)
	}
}

func TestEnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv("AUDIT_WORKERS", "not-a-number")

	cfg := Load()
	if cfg.AuditWorkers != 8 {
		t.Errorf("Expected fallback worker count 8, got %d", cfg.AuditWorkers)
	}
}
