// Package config loads and validates runtime configuration for the LED
// display coordinator: panel hardware knobs, the IPC socket, and logging.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Panel contains the physical (or mocked) HUB75E matrix configuration.
type Panel struct {
	MatrixRows      int    `toml:"matrix_rows"`
	MatrixCols      int    `toml:"matrix_cols"`
	HardwareMapping string `toml:"hardware_mapping"`
	GPIOSlowdown    int    `toml:"gpio_slowdown"`
	PWMBits         int    `toml:"pwm_bits"`
	Brightness      int    `toml:"brightness"`
	ParallelChains  int    `toml:"parallel_chains"`
	ChainLength     int    `toml:"chain_length"`
}

// Server contains IPC transport configuration.
type Server struct {
	SocketPath     string `toml:"socket_path"`
	SocketPerm     int    `toml:"socket_perm"`
	QueueCapacity  int    `toml:"queue_capacity"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	RetentionDays int    `toml:"retention_days"`
}

// Diagnostics contains configuration for the built-in self-test sequence.
type Diagnostics struct {
	TestSymbolDurationSeconds    float64 `toml:"test_symbol_duration_seconds"`
	TestAnimationDurationSeconds float64 `toml:"test_animation_duration_seconds"`
}

// Config encapsulates all configuration values for the coordinator.
//
// Configuration sections by subsystem:
//   - Panel: matrix geometry and hardware mapping knobs
//   - Server: IPC socket path/permissions and queue bound
//   - Logging: log format, level, and retention
//   - Diagnostics: built-in self-test timing
type Config struct {
	Panel       Panel       `toml:"panel"`
	Server      Server      `toml:"server"`
	Logging     Logging     `toml:"logging"`
	Diagnostics Diagnostics `toml:"diagnostics"`

	// LogDir is where the daemon writes its log file and lock file. It may
	// be set by the top-level log_dir key; normalize fills in a default when
	// it is empty and expands it to an absolute path.
	LogDir string `toml:"log_dir"`

	// MockMode forces the mock hardware driver regardless of Panel settings.
	// Populated from LED_MOCK_MODE at load time.
	MockMode bool `toml:"-"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/led-manager/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized, and the LED_MOCK_MODE
// and LED_CONFIG_PATH environment overrides applied. LED_SOCKET_PATH is not
// written into the returned config; SocketPath applies it on lookup.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := warnUnknownKeys(file, resolvedPath); err != nil {
			return nil, "", false, err
		}
		if _, err := file.Seek(0, 0); err != nil {
			return nil, "", false, fmt.Errorf("rewind config: %w", err)
		}

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// warnUnknownKeys decodes the config file into a generic map and logs a
// warning (to stderr, since the logger is not constructed yet at this
// point in startup) for any top-level key not recognized by Config.
func warnUnknownKeys(file *os.File, path string) error {
	raw := map[string]any{}
	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	known := map[string]struct{}{
		"panel": {}, "server": {}, "logging": {}, "diagnostics": {}, "log_dir": {},
	}
	for key := range raw {
		if _, ok := known[key]; !ok {
			fmt.Fprintf(os.Stderr, "warn: %s: unknown config key %q ignored\n", path, key)
		}
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	if envPath := strings.TrimSpace(os.Getenv("LED_CONFIG_PATH")); envPath != "" {
		return resolveConfigPath(envPath)
	}

	defaultPath, err := expandPath("~/.config/led-manager/config.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates required directories for daemon operation.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.LogDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.LogDir, 0o755); err != nil {
		return fmt.Errorf("create log directory %q: %w", c.LogDir, err)
	}
	return nil
}

// SocketPath returns the effective Unix socket path, honoring LED_SOCKET_PATH.
func (c *Config) SocketPath() string {
	if envPath := strings.TrimSpace(os.Getenv("LED_SOCKET_PATH")); envPath != "" {
		return envPath
	}
	return c.Server.SocketPath
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
