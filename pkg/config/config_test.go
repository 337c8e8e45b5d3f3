package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLOUDIAM_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Region != "us-east-1" {
		t.Errorf("Region = %q, want us-east-1", cfg.Region)
	}
	if cfg.Port != 8090 {
		t.Errorf("Port = %d, want 8090", cfg.Port)
	}
	if got := cfg.Source("region"); got != "default" {
		t.Errorf("Source(region) = %q, want default", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "region: eu-west-1\nport: 9000\njwt_secret: sekrit\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLOUDIAM_CONFIG_PATH", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Region != "eu-west-1" {
		t.Errorf("Region = %q, want eu-west-1", cfg.Region)
	}
	if got := cfg.Source("region"); got != "file" {
		t.Errorf("Source(region) = %q, want file", got)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("region: eu-west-1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLOUDIAM_CONFIG_PATH", dir)
	t.Setenv("CLOUDIAM_REGION", "ap-southeast-2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Region != "ap-southeast-2" {
		t.Errorf("Region = %q, want ap-southeast-2", cfg.Region)
	}
	if got := cfg.Source("region"); got != "environment" {
		t.Errorf("Source(region) = %q, want environment", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"valid endpoint", func(c *Config) { c.Endpoint = "https://iam.example.test/" }, false},
		{"endpoint missing scheme", func(c *Config) { c.Endpoint = "iam.example.test" }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAttributesRedactSecrets(t *testing.T) {
	cfg := newDefault()
	cfg.SecretAccessKey = "super-secret"
	cfg.JWTSecret = "also-secret"

	for _, attr := range cfg.Attributes() {
		if strings.Contains(attr.Value, "secret") && attr.Value != "(redacted)" {
			t.Errorf("attribute %s leaks its value: %q", attr.Name, attr.Value)
		}
	}

	text := cfg.FormatText()
	if strings.Contains(text, "super-secret") || strings.Contains(text, "also-secret") {
		t.Errorf("FormatText leaks secrets:\n%s", text)
	}
}
