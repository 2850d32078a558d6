// Package coordinator owns the command queue, the animation engine, and the
// single worker loop that serializes all access to the panel. Nothing
// outside this package ever writes to a panel.Driver directly.
package coordinator
