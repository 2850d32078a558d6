package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"ledmanager/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("LED_CONFIG_PATH", "")
	t.Setenv("LED_MOCK_MODE", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantSocket := filepath.Join(tempHome, ".local", "run", "led-manager", "coordinator.sock")
	if cfg.Server.SocketPath != wantSocket {
		t.Fatalf("unexpected socket path: got %q want %q", cfg.Server.SocketPath, wantSocket)
	}
	if cfg.Panel.MatrixRows != 64 || cfg.Panel.MatrixCols != 64 {
		t.Fatalf("unexpected matrix dims: %dx%d", cfg.Panel.MatrixRows, cfg.Panel.MatrixCols)
	}
	if cfg.Panel.HardwareMapping != "regular" {
		t.Fatalf("unexpected hardware mapping: %q", cfg.Panel.HardwareMapping)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging format: %q", cfg.Logging.Format)
	}
	if cfg.Server.QueueCapacity != 32 {
		t.Fatalf("unexpected queue capacity: %d", cfg.Server.QueueCapacity)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.LogDir)
	if err != nil {
		t.Fatalf("expected log dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be a directory", cfg.LogDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "led-manager.toml")

	type payload struct {
		Panel struct {
			Brightness int `toml:"brightness"`
		} `toml:"panel"`
		Server struct {
			QueueCapacity int `toml:"queue_capacity"`
		} `toml:"server"`
	}
	custom := payload{}
	custom.Panel.Brightness = 45
	custom.Server.QueueCapacity = 64
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Panel.Brightness != 45 {
		t.Fatalf("expected brightness 45, got %d", cfg.Panel.Brightness)
	}
	if cfg.Server.QueueCapacity != 64 {
		t.Fatalf("expected queue capacity 64, got %d", cfg.Server.QueueCapacity)
	}
}

func TestMockModeFromEnv(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("LED_MOCK_MODE", "true")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.MockMode {
		t.Fatal("expected MockMode to be true from LED_MOCK_MODE")
	}
}

func TestSocketPathEnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	override := filepath.Join(tempDir, "override.sock")
	t.Setenv("LED_SOCKET_PATH", override)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SocketPath() != override {
		t.Fatalf("expected socket path override %q, got %q", override, cfg.SocketPath())
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "led-manager") {
		t.Fatalf("sample config missing expected content: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Panel.MatrixRows != 64 {
		t.Fatalf("expected sample matrix_rows 64, got %d", cfg.Panel.MatrixRows)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Panel.GPIOSlowdown = 5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range gpio_slowdown")
	}

	cfg = config.Default()
	cfg.Panel.PWMBits = 12
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range pwm_bits")
	}

	cfg = config.Default()
	cfg.Panel.Brightness = 150
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range brightness")
	}

	cfg = config.Default()
	cfg.Panel.HardwareMapping = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid hardware_mapping")
	}

	cfg = config.Default()
	cfg.Server.QueueCapacity = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive queue_capacity")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid logging format")
	}

	cfg = config.Default()
	cfg.Diagnostics.TestAnimationDurationSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive diagnostics duration")
	}
}
