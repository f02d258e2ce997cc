package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.User != "John Doe" || cfg.Server.Addr != "127.0.0.1:8420" {
		t.Fatalf("defaults=%+v", cfg)
	}
	if cfg.Latency() != engine.DefaultLatency() {
		t.Fatalf("unset scale should keep default latency")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aa.toml")
	body := "user = \"Jane Smith\"\nlatency_scale = 0.5\n\n[server]\naddr = \"0.0.0.0:9000\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.User != "Jane Smith" || cfg.Server.Addr != "0.0.0.0:9000" {
		t.Fatalf("cfg=%+v", cfg)
	}
	lat := cfg.Latency()
	if lat.Fetch != 300*time.Millisecond || lat.Comment != 150*time.Millisecond {
		t.Fatalf("scaled latency=%+v, want half of defaults", lat)
	}
}

func TestZeroScaleDisablesLatency(t *testing.T) {
	zero := 0.0
	cfg := Config{LatencyScale: &zero}
	if cfg.Latency() != engine.NoLatency() {
		t.Fatalf("scale 0 latency=%+v, want none", cfg.Latency())
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("user = [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
