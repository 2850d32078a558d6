// Package daemon owns the LED coordinator process lifecycle: single-instance
// locking, starting and stopping the coordinator worker and the IPC server
// together, and reporting a runtime status snapshot.
//
// Keep orchestration logic here: the worker loop lives in internal/coordinator,
// the wire protocol lives in internal/ipc; the daemon focuses on startup,
// shutdown, and tying the two together under one lock.
package daemon
