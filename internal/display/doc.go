// Package display renders the coordinator's scenes into a 64x64 framebuffer.
//
// Every exported function here is pure: given the same inputs, it produces
// the same pixels every time, with no shared state and no I/O. The
// coordinator core calls these functions and then hands the resulting
// framebuffer to a panel driver's Present. A browser-side preview is expected
// to reimplement this same glyph table, color palette, and scene geometry so
// that its output matches this package pixel-for-pixel given the same
// LayoutPayload.
package display
