package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
auth:
  bearer_token: "test-token-123"
garmin:
  base_url: "https://connect.example.com"
  state_dir: "/var/lib/freestride"
tailscale:
  enabled: true
  hostname: "stride"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.BearerToken != "test-token-123" {
		t.Errorf("auth.bearer_token = %q, want %q", cfg.Auth.BearerToken, "test-token-123")
	}
	if cfg.Garmin.BaseURL != "https://connect.example.com" {
		t.Errorf("garmin.base_url = %q", cfg.Garmin.BaseURL)
	}
	if cfg.Garmin.StateDir != "/var/lib/freestride" {
		t.Errorf("garmin.state_dir = %q", cfg.Garmin.StateDir)
	}
	if !cfg.Tailscale.Enabled || cfg.Tailscale.Hostname != "stride" {
		t.Errorf("tailscale = %+v", cfg.Tailscale)
	}
}

// TestEnvOverride verifies that FREESTRIDE_ env vars take precedence over YAML values.
// This ensures production deployments can override config via environment.
func TestEnvOverride(t *testing.T) {
	t.Setenv("FREESTRIDE_SERVER_PORT", "9999")
	t.Setenv("FREESTRIDE_AUTH_BEARER_TOKEN", "env-token")
	t.Setenv("FREESTRIDE_GARMIN_STATE_DIR", "/tmp/override")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Auth.BearerToken != "env-token" {
		t.Errorf("auth.bearer_token = %q, want %q", cfg.Auth.BearerToken, "env-token")
	}
	if cfg.Garmin.StateDir != "/tmp/override" {
		t.Errorf("garmin.state_dir = %q, want %q", cfg.Garmin.StateDir, "/tmp/override")
	}
	// Unchanged fields should keep YAML values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
}

// TestDefaults verifies the fallback state dir and tailnet hostname.
func TestDefaults(t *testing.T) {
	yaml := `
server:
  port: 8080
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Garmin.StateDir != "./state" {
		t.Errorf("garmin.state_dir = %q, want ./state", cfg.Garmin.StateDir)
	}
	if cfg.Tailscale.Hostname != "freestride" {
		t.Errorf("tailscale.hostname = %q, want freestride", cfg.Tailscale.Hostname)
	}
	// An empty bearer token is allowed: main warns instead of refusing to
	// start, so local stdio use needs no auth setup.
	if cfg.Auth.BearerToken != "" {
		t.Errorf("auth.bearer_token = %q, want empty", cfg.Auth.BearerToken)
	}
}

// TestValidationMissingPort verifies that missing required fields produce a clear error.
// Prevents starting the server with incomplete configuration.
func TestValidationMissingPort(t *testing.T) {
	yaml := `
server:
  host: "0.0.0.0"
auth:
  bearer_token: "token"
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for missing port")
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
