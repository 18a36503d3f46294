package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OBJECT_STORE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AGENT_INVOKE_TIMEOUT_SECONDS", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected default store local, got %q", cfg.ObjectStoreType)
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Fatalf("expected default region us-east-1, got %q", cfg.AWSRegion)
	}
	if cfg.AgentInvokeTimeout != 120*time.Second {
		t.Fatalf("expected default agent timeout 120s, got %v", cfg.AgentInvokeTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("ENV", "Prod")
	t.Setenv("AGENT_INVOKE_TIMEOUT_SECONDS", "300")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()

	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("expected store s3, got %q", cfg.ObjectStoreType)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env production, got %q", cfg.Env)
	}
	if cfg.AgentInvokeTimeout != 300*time.Second {
		t.Fatalf("expected agent timeout 300s, got %v", cfg.AgentInvokeTimeout)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
}

func TestDurationSecondsRejectsGarbage(t *testing.T) {
	t.Setenv("AGENT_INVOKE_TIMEOUT_SECONDS", "not-a-number")
	if got := durationSeconds("AGENT_INVOKE_TIMEOUT_SECONDS", 42*time.Second); got != 42*time.Second {
		t.Fatalf("expected fallback 42s, got %v", got)
	}
	t.Setenv("AGENT_INVOKE_TIMEOUT_SECONDS", "-5")
	if got := durationSeconds("AGENT_INVOKE_TIMEOUT_SECONDS", 42*time.Second); got != 42*time.Second {
		t.Fatalf("expected fallback 42s for negative value, got %v", got)
	}
}
