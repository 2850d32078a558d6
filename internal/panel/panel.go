package panel

import (
	"io"
	"log/slog"

	"ledmanager/internal/config"
)

// New constructs the Driver the coordinator should use: a Mock when
// mockMode is set (from LED_MOCK_MODE via config.Config.MockMode), otherwise
// a HUB75.
// verboseWriter, when non-nil, drives the mock's textual preview; it has no
// effect in HUB75 mode.
func New(cfg config.Panel, mockMode bool, logger *slog.Logger, verboseWriter io.Writer) (Driver, error) {
	if mockMode {
		return NewMock(logger, verboseWriter), nil
	}
	driver, err := NewHUB75(cfg, logger)
	if err != nil {
		return nil, err
	}
	return driver, nil
}
