package display

import "math"

// Symbol names a closed set of static scenes, each rendered by a fixed
// function with its own color and geometry.
type Symbol string

const (
	SymbolWiFi        Symbol = "wifi"
	SymbolWiFiError   Symbol = "wifi_error"
	SymbolTunnel      Symbol = "tunnel"
	SymbolDiscord     Symbol = "discord"
	SymbolCheck       Symbol = "check"
	SymbolError       Symbol = "error"
	SymbolHourglass   Symbol = "hourglass"
	SymbolDot         Symbol = "dot"
	SymbolAllOn       Symbol = "all_on"
	SymbolConnected   Symbol = "connected"
)

// Symbols lists every recognized symbol name, for validation in the client
// library, the CLI and the coordinator.
func Symbols() []Symbol {
	return []Symbol{
		SymbolWiFi, SymbolWiFiError, SymbolTunnel, SymbolDiscord,
		SymbolCheck, SymbolError, SymbolHourglass, SymbolDot,
		SymbolAllOn, SymbolConnected,
	}
}

// ValidSymbol reports whether name is one of the enumerated symbols.
func ValidSymbol(name string) bool {
	for _, s := range Symbols() {
		if string(s) == name {
			return true
		}
	}
	return false
}

// RenderSymbol dispatches to the renderer for the named symbol, optionally
// overriding its default color. Unknown symbols render a blank frame; callers
// are expected to have validated the name before reaching this point.
func RenderSymbol(symbol Symbol, override *Color) *Framebuffer {
	f := NewFramebuffer()
	center := Width / 2

	switch symbol {
	case SymbolWiFi:
		drawWiFiArcs(f, center, 3, color(override, Color{R: 0, G: 255, B: 0}))
		f.Set(center, 44, color(override, Color{R: 0, G: 255, B: 0}))
	case SymbolWiFiError:
		drawWiFiArcs(f, center, 3, color(override, ColorRed))
		drawDiagonalSlash(f, color(override, ColorRed))
	case SymbolTunnel:
		drawTunnelLines(f, color(override, ColorProjectBlue))
	case SymbolDiscord:
		drawDiscordGlyph(f, color(override, ColorPurple))
	case SymbolCheck:
		DrawCheckmark(f, center-checkmarkSize/2, Height/2-checkmarkSize/2)
	case SymbolError:
		drawErrorX(f, color(override, ColorRed))
	case SymbolHourglass:
		drawHourglass(f, color(override, ColorYellow))
	case SymbolDot:
		drawFilledCircle(f, center, Height/2, 4, color(override, ColorWhite))
	case SymbolAllOn:
		f.Fill(color(override, ColorWhite))
	case SymbolConnected:
		DrawTextCentered(f, "CONNECTED", center, 20, color(override, ColorText))
		DrawCheckmark(f, center-checkmarkSize/2, 36)
	}
	return f
}

func color(override *Color, fallback Color) Color {
	if override != nil {
		return *override
	}
	return fallback
}

// drawWiFiArcs draws up to three concentric arcs centered above (cx, baseY),
// used both by the wifi symbol and by the wifi_searching animation frames.
func drawWiFiArcs(f *Framebuffer, cx, arcCount int, c Color) {
	baseY := Height/2 + 10
	for i := 0; i < arcCount && i < 3; i++ {
		radius := 6 + i*8
		drawArc(f, cx, baseY, radius, c)
	}
}

func drawArc(f *Framebuffer, cx, cy, radius int, c Color) {
	for angleDeg := 200; angleDeg <= 340; angleDeg += 4 {
		x, y := pointOnCircle(cx, cy, radius, angleDeg)
		f.Set(x, y, c)
	}
}

func pointOnCircle(cx, cy, radius, angleDeg int) (int, int) {
	radians := float64(angleDeg) * math.Pi / 180
	x := cx + int(float64(radius)*math.Cos(radians))
	y := cy + int(float64(radius)*math.Sin(radians))
	return x, y
}

func drawDiagonalSlash(f *Framebuffer, c Color) {
	for i := 0; i < Width; i++ {
		f.Set(i, i, c)
	}
}

func drawTunnelLines(f *Framebuffer, c Color) {
	vanishX, vanishY := Width/2, Height/2
	corners := [4][2]int{{8, 8}, {Width - 8, 8}, {8, Height - 8}, {Width - 8, Height - 8}}
	for _, corner := range corners {
		drawLine(f, corner[0], corner[1], vanishX, vanishY, c)
	}
	DrawOutlineRect(f, Range{Start: 24, End: 40}, Range{Start: 24, End: 40}, c)
}

func drawLine(f *Framebuffer, x0, y0, x1, y1 int, c Color) {
	dx, dy := x1-x0, y1-y0
	steps := absInt(dx)
	if absInt(dy) > steps {
		steps = absInt(dy)
	}
	if steps == 0 {
		f.Set(x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(float64(dx)*t)
		y := y0 + int(float64(dy)*t)
		f.Set(x, y, c)
	}
}

func drawDiscordGlyph(f *Framebuffer, c Color) {
	body := Range{Start: 16, End: 48}
	bodyY := Range{Start: 24, End: 40}
	DrawOutlineRect(f, body, bodyY, c)
	drawFilledCircle(f, 24, 32, 3, c)
	drawFilledCircle(f, 40, 32, 3, c)
}

func drawErrorX(f *Framebuffer, c Color) {
	inset := 20
	drawLine(f, inset, inset, Width-inset, Height-inset, c)
	drawLine(f, Width-inset, inset, inset, Height-inset, c)
}

func drawHourglass(f *Framebuffer, c Color) {
	top := Range{Start: 20, End: 44}
	drawTriangle(f, top.Start, 16, top.End, 16, (top.Start+top.End)/2, 32, c)
	drawTriangle(f, top.Start, 48, top.End, 48, (top.Start+top.End)/2, 32, c)
}

func drawTriangle(f *Framebuffer, x0, y0, x1, y1, x2, y2 int, c Color) {
	drawLine(f, x0, y0, x1, y1, c)
	drawLine(f, x1, y1, x2, y2, c)
	drawLine(f, x2, y2, x0, y0, c)
}

func drawFilledCircle(f *Framebuffer, cx, cy, radius int, c Color) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				f.Set(x, y, c)
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
