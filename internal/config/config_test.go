package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.DatabaseURI != "" {
		t.Errorf("expected empty database uri, got %q", cfg.DatabaseURI)
	}
	if cfg.StoreTimeout != defaultStoreTimeout {
		t.Errorf("expected default store timeout %v, got %v", defaultStoreTimeout, cfg.StoreTimeout)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
}

func TestLoadEnvAndFlagOverrides(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":   ":9000",
		"DATABASE_URI":  "postgres://env",
		"STORE_TIMEOUT": "3s",
	}

	args := []string{
		"-a", ":9090",
		"-d", "postgres://override",
		"--store-timeout", "7s",
		"--shutdown-timeout", "20s",
	}

	cfg, err := load(args, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected run address :9090, got %q", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://override" {
		t.Errorf("expected database uri override, got %q", cfg.DatabaseURI)
	}
	if cfg.StoreTimeout != 7*time.Second {
		t.Errorf("expected store timeout 7s, got %v", cfg.StoreTimeout)
	}
	if cfg.ShutdownTimeout != 20*time.Second {
		t.Errorf("expected shutdown timeout 20s, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	_, err := load([]string{"--store-timeout", "bad"}, func(string) (string, bool) { return "", false })
	if err == nil || !strings.Contains(err.Error(), "invalid store timeout") {
		t.Fatalf("expected store timeout error, got %v", err)
	}

	_, err = load([]string{"--shutdown-timeout", "bad"}, func(string) (string, bool) { return "", false })
	if err == nil || !strings.Contains(err.Error(), "invalid shutdown timeout") {
		t.Fatalf("expected shutdown timeout error, got %v", err)
	}
}

func TestLoadNormalizesNonPositiveValues(t *testing.T) {
	env := map[string]string{
		"STORE_TIMEOUT":    "0",
		"SHUTDOWN_TIMEOUT": "0",
	}

	cfg, err := load(nil, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.StoreTimeout != defaultStoreTimeout {
		t.Errorf("expected default store timeout %v, got %v", defaultStoreTimeout, cfg.StoreTimeout)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
}
