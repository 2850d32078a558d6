package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePanel(); err != nil {
		return err
	}
	if err := c.normalizeServer(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeDiagnostics()
	if err := c.normalizeLogDir(); err != nil {
		return err
	}
	c.MockMode = truthyEnv("LED_MOCK_MODE")
	return nil
}

func (c *Config) normalizePanel() error {
	p := &c.Panel
	if p.MatrixRows <= 0 {
		p.MatrixRows = defaultMatrixRows
	}
	if p.MatrixCols <= 0 {
		p.MatrixCols = defaultMatrixCols
	}
	if p.ParallelChains <= 0 {
		p.ParallelChains = defaultParallelChains
	}
	if p.ChainLength <= 0 {
		p.ChainLength = defaultChainLength
	}
	p.HardwareMapping = strings.ToLower(strings.TrimSpace(p.HardwareMapping))
	if p.HardwareMapping == "" {
		p.HardwareMapping = defaultHardwareMapping
	}
	if p.PWMBits == 0 {
		p.PWMBits = defaultPWMBits
	}
	return nil
}

func (c *Config) normalizeServer() error {
	var err error
	if strings.TrimSpace(c.Server.SocketPath) == "" {
		c.Server.SocketPath = defaultSocketPath
	}
	if c.Server.SocketPath, err = expandPath(c.Server.SocketPath); err != nil {
		return fmt.Errorf("server.socket_path: %w", err)
	}
	if c.Server.SocketPerm == 0 {
		c.Server.SocketPerm = defaultSocketPerm
	}
	if c.Server.QueueCapacity <= 0 {
		c.Server.QueueCapacity = defaultQueueCapacity
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}

func (c *Config) normalizeDiagnostics() {
	if c.Diagnostics.TestSymbolDurationSeconds <= 0 {
		c.Diagnostics.TestSymbolDurationSeconds = defaultTestSymbolDurationSeconds
	}
	if c.Diagnostics.TestAnimationDurationSeconds <= 0 {
		c.Diagnostics.TestAnimationDurationSeconds = defaultTestAnimationDurationSeconds
	}
}

func (c *Config) normalizeLogDir() error {
	var err error
	if strings.TrimSpace(c.LogDir) == "" {
		c.LogDir = defaultLogDir
	}
	if c.LogDir, err = expandPath(c.LogDir); err != nil {
		return fmt.Errorf("log_dir: %w", err)
	}
	return nil
}

func truthyEnv(name string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
