package logger

import (
	"fmt"
	"testing"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "identity")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "identity" {
		t.Errorf("expected service 'identity', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("test")
	cl := l.WithComponent("handler")
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
	if cl.service != "test" {
		t.Errorf("service should be preserved, got %q", cl.service)
	}
}

func TestWithFields(t *testing.T) {
	l := NewDefault("test")
	fl := l.WithFields(map[string]interface{}{"key": "value"})
	if fl == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithError(t *testing.T) {
	l := NewDefault("test")
	el := l.WithError(fmt.Errorf("boom"))
	if el == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestGetGlobalLogger(t *testing.T) {
	globalLogger = nil
	l := GetGlobalLogger()
	if l == nil {
		t.Fatal("expected default global logger")
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %s", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config should pass: %v", err)
	}

	cfg = &Config{Level: "loud", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("invalid level should fail validation")
	}

	cfg = &Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("invalid format should fail validation")
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "register", "count", 2)
	if m["op"] != "register" {
		t.Errorf("expected op=register, got %v", m["op"])
	}
	if m["count"] != 2 {
		t.Errorf("expected count=2, got %v", m["count"])
	}
}

func TestFields_OddArgs(t *testing.T) {
	m := Fields("op", "login", "dangling")
	if len(m) != 1 {
		t.Errorf("dangling key should be dropped, got %v", m)
	}
}
