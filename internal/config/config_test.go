package config

import (
	"strings"
	"testing"
	"time"

	"github.com/ekalbevoldog/contested/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv=%q want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr=%q want :8080", cfg.HTTPAddr)
	}
	if cfg.StorageBackend != BackendMemory {
		t.Fatalf("StorageBackend=%q want %q", cfg.StorageBackend, BackendMemory)
	}
	if cfg.SessionSecret == "" {
		t.Fatal("expected dev session secret fallback")
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("SessionTTL=%v want 24h", cfg.SessionTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins=%v want [*]", cfg.CORSAllowedOrigins)
	}
	if !cfg.CacheEnabled {
		t.Fatal("expected cache enabled by default")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("LogLevel=%v want info", cfg.LogLevel)
	}
}

func TestLoadPortOverridesHTTPAddr(t *testing.T) {
	t.Setenv("APP_HTTP_ADDR", ":9999")
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HTTPAddr != ":3000" {
		t.Fatalf("HTTPAddr=%q want :3000", cfg.HTTPAddr)
	}
}

func TestLoadPostgresBackendRequiresDBURL(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected DATABASE_URL error, got %v", err)
	}

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/contested?sslmode=disable")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.StorageBackend != BackendPostgres {
		t.Fatalf("StorageBackend=%q", cfg.StorageBackend)
	}
}

func TestLoadSupabaseBackendRequiresCredentials(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "supabase")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SUPABASE_URL") {
		t.Fatalf("expected SUPABASE_URL error, got %v", err)
	}

	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SUPABASE_SERVICE_ROLE_KEY") {
		t.Fatalf("expected SUPABASE_SERVICE_ROLE_KEY error, got %v", err)
	}

	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-role-key")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.SupabaseURL != "https://example.supabase.co" {
		t.Fatalf("SupabaseURL=%q", cfg.SupabaseURL)
	}
}

func TestLoadSessionSecretRequiredOutsideDev(t *testing.T) {
	t.Setenv("APP_ENV", "prod")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SESSION_SECRET") {
		t.Fatalf("expected SESSION_SECRET error, got %v", err)
	}

	t.Setenv("SESSION_SECRET", "prod-secret")
	if _, err := Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
}

func TestLoadInvalidStorageBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "dynamo")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "STORAGE_BACKEND") {
		t.Fatalf("expected STORAGE_BACKEND error, got %v", err)
	}
}

func TestLoadWebhookRequiresEndpoints(t *testing.T) {
	t.Setenv("WEBHOOK_ENABLED", "true")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "WEBHOOK_ENDPOINTS") {
		t.Fatalf("expected WEBHOOK_ENDPOINTS error, got %v", err)
	}

	t.Setenv("WEBHOOK_ENDPOINTS", "https://hooks.example.com/a, https://hooks.example.com/b")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.WebhookEndpoints) != 2 {
		t.Fatalf("WebhookEndpoints=%v", cfg.WebhookEndpoints)
	}
}

func TestLoadUptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=https://token@api.uptrace.dev/123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/123" {
		t.Fatalf("UptraceDSN=%q", cfg.UptraceDSN)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logging.Level
	}{
		{in: "debug", want: logging.LevelDebug},
		{in: "INFO", want: logging.LevelInfo},
		{in: "warning", want: logging.LevelWarn},
		{in: "error", want: logging.LevelError},
		{in: "nonsense", want: logging.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Fatalf("parseLogLevel(%q)=%v want=%v", tt.in, got, tt.want)
		}
	}
}
