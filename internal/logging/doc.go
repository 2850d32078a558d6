// Package logging assembles structured slog loggers and formatting helpers
// used across the coordinator daemon and its CLI.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and exposes context-aware helpers so IPC and coordinator
// code automatically tag log lines with client connection IDs, dispatched
// command kinds, and correlation IDs. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup to ensure new
// components emit data with the same shape and routing guarantees as the
// rest of the daemon.
package logging
