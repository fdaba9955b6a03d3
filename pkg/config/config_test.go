package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "environment: test\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Server.Port)
	}
	if len(cfg.Engine.Windows) != 2 || cfg.Engine.Windows[0] != 20 || cfg.Engine.Windows[1] != 50 {
		t.Fatalf("unexpected default windows %v", cfg.Engine.Windows)
	}
	if cfg.Engine.RSIPeriod != 14 || cfg.Engine.PeriodsPerYear != 252 {
		t.Fatalf("unexpected engine defaults %+v", cfg.Engine)
	}
	if cfg.Cache.Backend != "memory" || cfg.Cache.TTL != 5*time.Minute {
		t.Fatalf("unexpected cache defaults %+v", cfg.Cache)
	}
}

func TestLoadMissingEnvironment(t *testing.T) {
	if _, err := Load(writeConfig(t, "server:\n  port: 9000\n")); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadRejectsBadWindow(t *testing.T) {
	body := "environment: test\nengine:\n  windows: [20, -5]\n"
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadRejectsUnknownCacheBackend(t *testing.T) {
	body := "environment: test\ncache:\n  backend: memcached\n"
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadKafkaRequiresBrokers(t *testing.T) {
	body := "environment: test\nkafka:\n  enabled: true\n  topic: snapshots\n"
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	cfg, err := LoadWithEnv(writeConfig(t, "environment: test\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Fatalf("PORT override not applied, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("LOG_LEVEL override not applied, got %s", cfg.Log.Level)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.Redis.Addr != "localhost:6379" {
		t.Fatalf("REDIS_ADDR override not applied: %+v", cfg.Cache)
	}
}
