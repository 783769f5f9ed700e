package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	gateway := cfg.GetGateway()
	if gateway.BaseURL != "http://localhost:5000" {
		t.Errorf("unexpected default base URL: %s", gateway.BaseURL)
	}
	if gateway.Timeout != 15*time.Second {
		t.Errorf("unexpected default gateway timeout: %s", gateway.Timeout)
	}

	store := cfg.GetStore()
	if store.Type != "sqlite" {
		t.Errorf("unexpected default store type: %s", store.Type)
	}

	server := cfg.GetServer()
	if server.SpamThreshold != 0.5 {
		t.Errorf("unexpected default spam threshold: %f", server.SpamThreshold)
	}
	if len(server.TrustedDomains) != 0 {
		t.Errorf("expected no trusted domains by default, got %v", server.TrustedDomains)
	}

	if cfg.GetAssistant().Provider != "rules" {
		t.Errorf("unexpected default assistant provider: %s", cfg.GetAssistant().Provider)
	}
}

func TestOverrides(t *testing.T) {
	v := NewEmptyViper()
	v.Set("gateway.base_url", "http://example.com:8080")
	v.Set("classifier.timeout", "3s")
	v.Set("store.type", "memory")

	cfg := NewFromViper(v)

	if got := cfg.GetGateway().BaseURL; got != "http://example.com:8080" {
		t.Errorf("override not applied: %s", got)
	}
	if got := cfg.GetClassifier().Timeout; got != 3*time.Second {
		t.Errorf("override not applied: %s", got)
	}
	if got := cfg.GetStore().Type; got != "memory" {
		t.Errorf("override not applied: %s", got)
	}
}

func TestMalformedDurationFallsBack(t *testing.T) {
	v := NewEmptyViper()
	v.Set("gateway.timeout", "not-a-duration")

	cfg := NewFromViper(v)
	if got := cfg.GetGateway().Timeout; got != 15*time.Second {
		t.Errorf("expected fallback timeout, got %s", got)
	}
}
