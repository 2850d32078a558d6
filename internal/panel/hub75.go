package panel

import (
	"fmt"
	"log/slog"

	"ledmanager/internal/config"
	"ledmanager/internal/display"
	"ledmanager/internal/logging"
	"ledmanager/internal/services"
)

// HUB75 is the "real" panel driver. No GPIO library in this module's
// dependency set targets a plain Go binary without a TinyGo runtime, so this
// implementation validates the hardware config knobs at construction time,
// failing the same way any external-resource constructor fails when the
// resource isn't available, and otherwise behaves like the mock at the
// framebuffer level, logging once that no physical backend is compiled in.
type HUB75 struct {
	mock   *Mock
	logger *slog.Logger
}

// NewHUB75 validates cfg and constructs the driver. It returns
// services.ErrHardwareInit if the matrix geometry or chain configuration is
// invalid.
func NewHUB75(cfg config.Panel, logger *slog.Logger) (*HUB75, error) {
	if err := validatePanelConfig(cfg); err != nil {
		return nil, services.Wrap(services.ErrHardwareInit, "panel", "NewHUB75", err.Error(), nil)
	}

	h := &HUB75{
		mock:   NewMock(logger, nil),
		logger: logger,
	}
	if logger != nil {
		logger.Warn("no physical HUB75E backend compiled in; rendering to an in-memory mock panel",
			logging.String(logging.FieldEventType, "hardware_backend_missing"),
			logging.String(logging.FieldErrorHint, "build with a GPIO-capable driver to drive a physical panel"),
		)
	}
	return h, nil
}

func validatePanelConfig(cfg config.Panel) error {
	if cfg.MatrixRows != display.Height || cfg.MatrixCols != display.Width {
		return fmt.Errorf("matrix dimensions must be %dx%d, got %dx%d", display.Width, display.Height, cfg.MatrixCols, cfg.MatrixRows)
	}
	if cfg.ParallelChains < 1 {
		return fmt.Errorf("parallel_chains must be >= 1, got %d", cfg.ParallelChains)
	}
	if cfg.ChainLength < 1 {
		return fmt.Errorf("chain_length must be >= 1, got %d", cfg.ChainLength)
	}
	if cfg.GPIOSlowdown < 0 || cfg.GPIOSlowdown > 4 {
		return fmt.Errorf("gpio_slowdown must be 0..4, got %d", cfg.GPIOSlowdown)
	}
	if cfg.PWMBits < 1 || cfg.PWMBits > 11 {
		return fmt.Errorf("pwm_bits must be 1..11, got %d", cfg.PWMBits)
	}
	if cfg.Brightness < 0 || cfg.Brightness > 100 {
		return fmt.Errorf("brightness must be 0..100, got %d", cfg.Brightness)
	}
	switch cfg.HardwareMapping {
	case "regular", "adafruit-hat":
	default:
		return fmt.Errorf("hardware_mapping must be regular or adafruit-hat, got %q", cfg.HardwareMapping)
	}
	return nil
}

// Present delegates to the underlying mock-level framebuffer; any future
// physical backend hooks in here without changing the Driver contract.
func (h *HUB75) Present(fb *display.Framebuffer) {
	h.mock.Present(fb)
}

// Clear presents an all-black framebuffer.
func (h *HUB75) Clear() {
	h.mock.Clear()
}
