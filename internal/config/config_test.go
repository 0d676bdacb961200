package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TZ", "UTC")
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	if c.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", c.Server.Port)
	}
	if c.Server.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", c.Server.Timezone)
	}
	if c.Database.Path != "data/renalog.db" {
		t.Errorf("db path = %q", c.Database.Path)
	}
	if c.Log.Level != "info" || !c.Log.Console {
		t.Errorf("log config = %+v", c.Log)
	}
	if c.Maintenance.Enabled {
		t.Error("maintenance enabled by default")
	}
	if c.Addr() != ":8080" {
		t.Errorf("addr = %q", c.Addr())
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
server:
  port: 9001
  timezone: America/Mexico_City
  cookie_secure: true
database:
  path: /var/lib/renalog/app.db
auth:
  secret: file-secret
maintenance:
  enabled: true
  message: Planned upgrade
  pages:
    community:
      enabled: true
      mode: coming-soon
      progress: 75
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c := Load(path)

	if c.Server.Port != 9001 || !c.Server.CookieSecure {
		t.Errorf("server = %+v", c.Server)
	}
	if c.Auth.Secret != "file-secret" {
		t.Errorf("secret = %q", c.Auth.Secret)
	}
	if !c.Maintenance.Enabled || c.Maintenance.Message != "Planned upgrade" {
		t.Errorf("maintenance = %+v", c.Maintenance)
	}
	page, ok := c.Maintenance.Pages["community"]
	if !ok || !page.Enabled || page.Progress != 75 {
		t.Errorf("community page = %+v", page)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	t.Setenv("TZ", "UTC")
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not: a mapping"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c := Load(path)

	// A broken file is reported and skipped; defaults stay intact.
	if c.Server.Port != 8080 || c.Server.Timezone != "UTC" {
		t.Errorf("server = %+v, want defaults", c.Server)
	}
	if c.Auth.Secret != "change_me_in_production" {
		t.Errorf("secret = %q, want default", c.Auth.Secret)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("DB_PATH", "/tmp/override.db")
	t.Setenv("PORT", "7070")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("MAINTENANCE_MODE", "on")
	t.Setenv("MAINTENANCE_MESSAGE", "Back soon")
	t.Setenv("LOG_LEVEL", "debug")

	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	if c.Auth.Secret != "env-secret" {
		t.Errorf("secret = %q", c.Auth.Secret)
	}
	if c.Database.Path != "/tmp/override.db" {
		t.Errorf("db path = %q", c.Database.Path)
	}
	if c.Server.Port != 7070 || !c.Server.CookieSecure {
		t.Errorf("server = %+v", c.Server)
	}
	if !c.Maintenance.Enabled || c.Maintenance.Message != "Back soon" {
		t.Errorf("maintenance = %+v", c.Maintenance)
	}
	if c.Log.Level != "debug" {
		t.Errorf("log level = %q", c.Log.Level)
	}
}

func TestEnvOverrideBadValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("MAINTENANCE_MODE", "maybe")

	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	if c.Server.Port != 8080 {
		t.Errorf("port = %d, want default kept", c.Server.Port)
	}
	if c.Maintenance.Enabled {
		t.Error("unparseable bool flipped maintenance on")
	}
}
