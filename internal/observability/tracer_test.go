package observability

import (
	"context"
	"testing"

	"github.com/skillsenselab/identity/internal/logger"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected default sample rate 1.0, got %f", cfg.SampleRate)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Enabled: true, Endpoint: "localhost:4318", SampleRate: 1.5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for sample rate above 1")
	}

	cfg = Config{Enabled: true, SampleRate: 0.5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing endpoint")
	}

	// Disabled config is never validated against.
	cfg = Config{Enabled: false, SampleRate: 99}
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled config should validate: %v", err)
	}
}

func TestInitDisabled(t *testing.T) {
	log := logger.NewDefault("test")
	shutdown, err := Init(context.Background(), Config{Enabled: false}, "identity", "test", "test", log)
	if err != nil {
		t.Fatalf("disabled init should succeed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("noop shutdown should succeed: %v", err)
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test.operation")
	if span == nil {
		t.Fatal("expected a span")
	}
	span.End()
	if ctx == nil {
		t.Fatal("expected a context")
	}
}
