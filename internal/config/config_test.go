package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultBindsAllInterfacesOnPort8000(t *testing.T) {
	cfg := Default()
	if got := cfg.Addr(); got != "0.0.0.0:8000" {
		t.Fatalf("expected 0.0.0.0:8000, got %q", got)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantAddr string
		wantStop time.Duration
	}{
		{"defaults when empty", nil, "0.0.0.0:8000", 10 * time.Second},
		{"custom port", map[string]string{"PORT": "3000"}, "0.0.0.0:3000", 10 * time.Second},
		{"custom host", map[string]string{"HOST": "127.0.0.1"}, "127.0.0.1:8000", 10 * time.Second},
		{"ipv6 host", map[string]string{"HOST": "::1", "PORT": "9090"}, "[::1]:9090", 10 * time.Second},
		{"shutdown timeout", map[string]string{"SHUTDOWN_TIMEOUT": "3s"}, "0.0.0.0:8000", 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"HOST", "PORT", "SHUTDOWN_TIMEOUT"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := FromEnv()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := cfg.Addr(); got != tt.wantAddr {
				t.Errorf("got addr %q, want %q", got, tt.wantAddr)
			}
			if cfg.ShutdownTimeout != tt.wantStop {
				t.Errorf("got shutdown timeout %v, want %v", cfg.ShutdownTimeout, tt.wantStop)
			}
		})
	}
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{"non-numeric port", "PORT", "http", "invalid PORT"},
		{"zero port", "PORT", "0", "invalid PORT"},
		{"port out of range", "PORT", "70000", "invalid PORT"},
		{"bad duration", "SHUTDOWN_TIMEOUT", "soon", "invalid SHUTDOWN_TIMEOUT"},
		{"negative duration", "SHUTDOWN_TIMEOUT", "-1s", "invalid SHUTDOWN_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			if err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("expected error to mention %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "SHUTDOWN_TIMEOUT", EnvFileVar} {
		t.Setenv(k, "")
	}
}

func TestLoadIgnoresDotEnvInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=3000\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	clearEnv(t)
	if err := os.Unsetenv("PORT"); err != nil {
		t.Fatalf("unset PORT: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Addr(); got != "0.0.0.0:8000" {
		t.Fatalf("expected stray .env to be ignored, got %q", got)
	}
}

func TestLoadReadsEnvFileWhenNamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anima.env")
	if err := os.WriteFile(path, []byte("PORT=8123\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	clearEnv(t)
	t.Setenv(EnvFileVar, path)
	// godotenv does not override variables that already exist, so unset PORT entirely.
	if err := os.Unsetenv("PORT"); err != nil {
		t.Fatalf("unset PORT: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8123" {
		t.Fatalf("expected port from env file, got %q", cfg.Port)
	}
}

func TestLoadEnvironmentWinsOverEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anima.env")
	if err := os.WriteFile(path, []byte("PORT=8123\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	clearEnv(t)
	t.Setenv(EnvFileVar, path)
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("expected process environment to win, got %q", cfg.Port)
	}
}

func TestLoadFailsOnMissingNamedEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFileVar, filepath.Join(t.TempDir(), "missing.env"))

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "load env file") {
		t.Fatalf("expected load env file error, got %v", err)
	}
}
