package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	kiterrors "github.com/kbukum/streamkit/errors"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := Config{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
	})

	t.Run("stream defaults", func(t *testing.T) {
		cfg := Config{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Stream.DefaultDebounce != 250*time.Millisecond {
			t.Errorf("unexpected default debounce: %v", cfg.Stream.DefaultDebounce)
		}
	})

	t.Run("metrics defaults", func(t *testing.T) {
		cfg := Config{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Metrics.Endpoint != "localhost:4318" {
			t.Errorf("unexpected endpoint: %q", cfg.Metrics.Endpoint)
		}
		if cfg.Metrics.Interval != 15*time.Second {
			t.Errorf("unexpected interval: %v", cfg.Metrics.Interval)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Config{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing name", func(c *Config) { c.Name = "" }, true},
		{"bad environment", func(c *Config) { c.Environment = "qa" }, true},
		{"negative debounce", func(c *Config) { c.Stream.DefaultDebounce = -time.Second }, true},
		{"negative interval", func(c *Config) { c.Metrics.Interval = -time.Second }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !kiterrors.HasCode(err, kiterrors.ErrCodeConfigInvalid) {
					t.Errorf("expected CONFIG_INVALID, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: test-service
environment: staging
stream:
  default_debounce: 100ms
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("test-service", LoaderConfig{ConfigFile: configPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected staging, got %q", cfg.Environment)
	}
	if cfg.Stream.DefaultDebounce != 100*time.Millisecond {
		t.Errorf("expected 100ms debounce, got %v", cfg.Stream.DefaultDebounce)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	cfg, err := Load("bare-service", LoaderConfig{FileSystem: &fakeFS{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "bare-service" {
		t.Errorf("expected service name fallback, got %q", cfg.Name)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected development default, got %q", cfg.Environment)
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("::notyaml::"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load("svc", LoaderConfig{ConfigFile: configPath})
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("STREAMKIT_ENVIRONMENT=production\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STREAMKIT_ENVIRONMENT", "")
	os.Unsetenv("STREAMKIT_ENVIRONMENT")

	cfg, err := Load("svc", LoaderConfig{EnvFile: envPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected production from env file, got %q", cfg.Environment)
	}
}

// fakeFS finds no files, forcing the pure-defaults path.
type fakeFS struct{}

func (f *fakeFS) Exists(string) bool   { return false }
func (f *fakeFS) LoadEnv(string) error { return nil }
