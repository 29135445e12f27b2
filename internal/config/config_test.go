package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	v.Set("auth.jwt_secret", testSecret)

	c, err := Decode(v)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", c.Server.Addr())
	}
	if c.Auth.AccessTokenTTL != 15*time.Minute {
		t.Errorf("AccessTokenTTL = %s, want 15m", c.Auth.AccessTokenTTL)
	}
	if !c.Theme.ResolveOnStart {
		t.Error("ResolveOnStart default should be true")
	}
	if c.Format.Currency != "USD" || c.Format.Locale != "en-US" {
		t.Errorf("Format = %+v", c.Format)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "salesdesk.yaml")
	yaml := strings.Join([]string{
		"server:",
		"  port: 9000",
		"  dev_mode: true",
		"database:",
		"  path: /tmp/sd.db",
		"auth:",
		"  access_token_ttl: 1h",
	}, "\n")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SD_SERVER_PORT", "9100")
	t.Setenv("SD_FORMAT_CURRENCY", "EUR")

	v, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c, err := Decode(v)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Server.Port != 9100 {
		t.Errorf("Port = %d, want env override 9100", c.Server.Port)
	}
	if !c.Server.DevMode {
		t.Error("DevMode not read from file")
	}
	if c.Database.Path != "/tmp/sd.db" {
		t.Errorf("Database.Path = %q", c.Database.Path)
	}
	if c.Auth.AccessTokenTTL != time.Hour {
		t.Errorf("AccessTokenTTL = %s, want 1h", c.Auth.AccessTokenTTL)
	}
	if c.Format.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", c.Format.Currency)
	}
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:    ServerConfig{Host: "127.0.0.1", Port: 8080},
			Database:  DatabaseConfig{Path: "x.db"},
			Auth:      AuthConfig{JWTSecret: testSecret, AccessTokenTTL: time.Minute},
			RateLimit: RateLimitConfig{RPS: 1, Burst: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, true},
		{"short secret in dev mode", func(c *Config) { c.Auth.JWTSecret = ""; c.Server.DevMode = true }, false},
		{"zero ttl", func(c *Config) { c.Auth.AccessTokenTTL = 0 }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, true},
		{"no db path", func(c *Config) { c.Database.Path = "" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
