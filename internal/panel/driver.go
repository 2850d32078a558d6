package panel

import "ledmanager/internal/display"

// Driver is the contract the Coordinator Core renders through. Present
// atomically replaces the panel's visible contents; Clear is equivalent to
// presenting an all-black framebuffer. Runtime faults are absorbed inside
// the implementation and never returned to the caller.
type Driver interface {
	Present(fb *display.Framebuffer)
	Clear()
}

// FastPathDrawer is an optional extension a Driver may implement to draw
// primitives directly rather than through a renderer-built framebuffer. No
// driver in this module implements it; the renderer always builds a
// complete framebuffer in memory and calls Present.
type FastPathDrawer interface {
	DrawText(text string, x, y int, color display.Color)
	DrawLine(x0, y0, x1, y1 int, color display.Color)
	DrawCircle(cx, cy, radius int, color display.Color)
	DrawRectangleOutline(x0, y0, x1, y1 int, color display.Color)
}
