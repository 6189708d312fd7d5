package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Network.BindAddress != "127.0.0.1:7777" {
		t.Errorf("unexpected default bind address: %s", cfg.Network.BindAddress)
	}
	if cfg.Network.TickRate != 50*time.Millisecond {
		t.Errorf("unexpected default tick rate: %s", cfg.Network.TickRate)
	}
	if cfg.Profiler.MaxSnaps != 100 {
		t.Errorf("unexpected default max snaps: %d", cfg.Profiler.MaxSnaps)
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry should be disabled by default")
	}
	if cfg.Network.AuthHash != "" {
		t.Error("auth hash should default to open access")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	raw := `
[server]
name = "soak-1"
build = "abc123"

[network]
bind_address = "0.0.0.0:9999"
tick_rate = 16000000 # nanoseconds
packets_per_second = 0

[profiler]
max_snaps = 500

[telemetry]
enabled = true
flush_interval = 2000000000 # nanoseconds

[logging]
level = "debug"
format = "json"
`
	path := filepath.Join(t.TempDir(), "corvid.toml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Name != "soak-1" {
		t.Errorf("server name = %q", cfg.Server.Name)
	}
	if cfg.Network.BindAddress != "0.0.0.0:9999" {
		t.Errorf("bind address = %q", cfg.Network.BindAddress)
	}
	if cfg.Network.TickRate != 16*time.Millisecond {
		t.Errorf("tick rate = %s", cfg.Network.TickRate)
	}
	if cfg.Network.PacketsPerSecond != 0 {
		t.Errorf("packets per second = %d", cfg.Network.PacketsPerSecond)
	}
	if cfg.Profiler.MaxSnaps != 500 {
		t.Errorf("max snaps = %d", cfg.Profiler.MaxSnaps)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("telemetry should be enabled")
	}
	if cfg.Telemetry.FlushInterval != 2*time.Second {
		t.Errorf("flush interval = %s", cfg.Telemetry.FlushInterval)
	}
	// Untouched sections keep their defaults.
	if cfg.Network.OutQueueSize != 256 {
		t.Errorf("out queue size = %d", cfg.Network.OutQueueSize)
	}
	if cfg.Server.StartTime.IsZero() {
		t.Error("start time should be set at load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
