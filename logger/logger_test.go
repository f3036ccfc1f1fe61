package logger

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "debug", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "warn", Format: "console", Output: "stderr"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	cfg := &Config{Level: "error", Format: "json", Output: "stdout"}
	l := New(cfg, "test")
	if l.GetLogger().GetLevel() != zerolog.ErrorLevel {
		t.Errorf("expected error level, got %v", l.GetLogger().GetLevel())
	}
}

func TestWithComponent(t *testing.T) {
	var sb strings.Builder
	base := &Logger{logger: zerolog.New(&sb)}
	base.WithComponent("debounce").Info("hello")
	out := sb.String()
	if !strings.Contains(out, `"component":"debounce"`) {
		t.Errorf("expected component field, got %s", out)
	}
}

func TestFieldsHelper(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected map: %v", m)
	}
	// Odd trailing key is dropped.
	m = Fields("a", 1, "dangling")
	if _, ok := m["dangling"]; ok {
		t.Error("dangling key should be dropped")
	}
}

func TestGlobalLogger(t *testing.T) {
	l := NewDefault("test")
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("global logger not returned")
	}
	SetGlobalLogger(nil)
	if GetGlobalLogger() == nil {
		t.Error("expected lazily created default logger")
	}
}
