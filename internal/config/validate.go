package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePanel(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateDiagnostics(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePanel() error {
	p := c.Panel
	if err := ensurePositiveMap(map[string]int{
		"panel.matrix_rows":     p.MatrixRows,
		"panel.matrix_cols":     p.MatrixCols,
		"panel.parallel_chains": p.ParallelChains,
		"panel.chain_length":    p.ChainLength,
	}); err != nil {
		return err
	}
	if p.GPIOSlowdown < 0 || p.GPIOSlowdown > 4 {
		return errors.New("panel.gpio_slowdown must be between 0 and 4")
	}
	if p.PWMBits < 1 || p.PWMBits > 11 {
		return errors.New("panel.pwm_bits must be between 1 and 11")
	}
	if p.Brightness < 0 || p.Brightness > 100 {
		return errors.New("panel.brightness must be between 0 and 100")
	}
	switch p.HardwareMapping {
	case "regular", "adafruit-hat":
	default:
		return fmt.Errorf("panel.hardware_mapping must be %q or %q, got %q", "regular", "adafruit-hat", p.HardwareMapping)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.SocketPath == "" {
		return errors.New("server.socket_path must be set")
	}
	if c.Server.SocketPerm <= 0 || c.Server.SocketPerm > 0o777 {
		return errors.New("server.socket_perm must be a valid unix permission mode")
	}
	if c.Server.QueueCapacity <= 0 {
		return errors.New("server.queue_capacity must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q", "console", "json", c.Logging.Format)
	}
	if c.Logging.RetentionDays < 0 {
		return errors.New("logging.retention_days must be >= 0")
	}
	return nil
}

func (c *Config) validateDiagnostics() error {
	if c.Diagnostics.TestSymbolDurationSeconds <= 0 {
		return errors.New("diagnostics.test_symbol_duration_seconds must be positive")
	}
	if c.Diagnostics.TestAnimationDurationSeconds <= 0 {
		return errors.New("diagnostics.test_animation_duration_seconds must be positive")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
