// Package config loads, normalizes, and validates coordinator configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// LED_SOCKET_PATH and LED_MOCK_MODE. The Config type centralizes every knob
// the daemon, renderer, and CLI need: panel geometry, the IPC socket, log
// output, and diagnostic timing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
