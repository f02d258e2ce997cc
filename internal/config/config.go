package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
)

type Config struct {
	// User is the acting user recorded on comments and activity entries.
	User string `toml:"user"`
	// LatencyScale multiplies the simulated round-trip delays. Unset means
	// 1.0; 0 settles every command immediately.
	LatencyScale *float64 `toml:"latency_scale"`
	Server       Server   `toml:"server"`
}

type Server struct {
	Addr string `toml:"addr"`
}

const DefaultConfigToml = `# Assign-Alert configuration

user = "John Doe"
latency_scale = 1.0

[server]
addr = "127.0.0.1:8420"
`

func Default() Config {
	return Config{
		User:   "John Doe",
		Server: Server{Addr: "127.0.0.1:8420"},
	}
}

// DefaultPath returns the per-user config location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".assignalert.toml"), nil
}

// Load reads the config at path; a missing file yields the defaults.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Latency derives the engine latency profile from the configured scale.
func (c Config) Latency() engine.Latency {
	scale := 1.0
	if c.LatencyScale != nil {
		scale = *c.LatencyScale
	}
	if scale <= 0 {
		return engine.NoLatency()
	}
	base := engine.DefaultLatency()
	return engine.Latency{
		Fetch:   time.Duration(float64(base.Fetch) * scale),
		Create:  time.Duration(float64(base.Create) * scale),
		Update:  time.Duration(float64(base.Update) * scale),
		Link:    time.Duration(float64(base.Link) * scale),
		Comment: time.Duration(float64(base.Comment) * scale),
	}
}
