// Package services defines shared utilities consumed by the coordinator,
// IPC server, and hardware driver.
//
// Key responsibilities:
//   - Context helpers that stamp client connection IDs, dispatched command
//     kinds, and correlation identifiers for logging and tracing.
//   - Structured error markers plus the Wrap helper that translate failures
//     into the wire-protocol error codes the IPC server returns.
//
// Use these helpers when wiring new coordinator logic so operational
// behaviour (error handling, observability) stays uniform across the daemon.
package services
