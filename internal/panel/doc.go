// Package panel drives the physical HUB75E matrix or a mock stand-in behind
// a single small interface: present a framebuffer, or clear it. Runtime
// faults never propagate past this package; they are logged and absorbed so
// the coordinator worker never stalls on a flaky panel.
package panel
