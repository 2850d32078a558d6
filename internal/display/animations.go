package display

import "github.com/lucasb-eyer/go-colorful"

// AnimationName is a closed set of named finite or looping scenes. Frame
// geometry lives here; timing (frame_delay, looping vs finite) is the
// Animation Engine's concern.
type AnimationName string

const (
	AnimationBoot          AnimationName = "boot"
	AnimationWiFiSearching AnimationName = "wifi_searching"
	AnimationActivity      AnimationName = "activity"
	AnimationIdle          AnimationName = "idle"
)

// Animations lists every recognized animation name.
func Animations() []AnimationName {
	return []AnimationName{AnimationBoot, AnimationWiFiSearching, AnimationActivity, AnimationIdle}
}

// ValidAnimation reports whether name is one of the enumerated animations.
func ValidAnimation(name string) bool {
	for _, a := range Animations() {
		if string(a) == name {
			return true
		}
	}
	return false
}

// BootFrameCount is the number of frames in the finite boot animation.
const BootFrameCount = 40

// RenderBootFrame draws the boot animation's horizontal progress bar
// advancing from 0 to 100 across BootFrameCount frames, with "BOOTING..."
// above it.
func RenderBootFrame(frame int) *Framebuffer {
	f := NewFramebuffer()
	DrawTextCentered(f, "BOOTING...", Width/2, 20, ColorText)

	percentage := float64(frame) / float64(BootFrameCount-1) * 100
	barX := Range{Start: 8, End: Width - 8}
	barY := Range{Start: 34, End: 42}
	DrawOutlineRect(f, barX, barY, ColorGaugeOutline)
	FillHorizontalBar(f, Range{Start: barX.Start + 1, End: barX.End - 1}, Range{Start: barY.Start + 1, End: barY.End - 1}, percentage, ColorProjectBlue)

	return f
}

// WiFiSearchingFrameCount is the number of frames in the looping
// wifi_searching animation.
const WiFiSearchingFrameCount = 3

// RenderWiFiSearchingFrame draws 1, 2, or 3 WiFi arcs depending on frame.
func RenderWiFiSearchingFrame(frame int) *Framebuffer {
	f := NewFramebuffer()
	arcCount := (frame % WiFiSearchingFrameCount) + 1
	drawWiFiArcs(f, Width/2, arcCount, ColorProjectBlue)
	return f
}

// ActivityFrameCount is the number of frames in the looping activity
// animation.
const ActivityFrameCount = 2

// RenderActivityFrame draws a corner dot that toggles on and off.
func RenderActivityFrame(frame int) *Framebuffer {
	f := NewFramebuffer()
	if frame%ActivityFrameCount == 0 {
		drawFilledCircle(f, Width-6, 6, 3, ColorWhite)
	}
	return f
}

// IdleFrameCount is the number of frames in the looping idle animation.
const IdleFrameCount = 8

// idlePerimeter is the fixed sequence of points the single lit pixel
// rotates through.
var idlePerimeter = [IdleFrameCount][2]int{
	{32, 8}, {48, 16}, {56, 32}, {48, 48},
	{32, 56}, {16, 48}, {8, 32}, {16, 16},
}

// idleIntensity is a triangle-shaped brightness curve the rotating pixel
// breathes through once per revolution, so the idle animation doesn't read
// as a flat rotating dot.
var idleIntensity = [IdleFrameCount]float64{0.3, 0.55, 0.8, 1.0, 0.8, 0.55, 0.3, 0.15}

// RenderIdleFrame draws a single pixel rotating around a central perimeter,
// breathing in brightness as it goes.
func RenderIdleFrame(frame int) *Framebuffer {
	f := NewFramebuffer()
	step := ((frame % IdleFrameCount) + IdleFrameCount) % IdleFrameCount
	point := idlePerimeter[step]
	f.Set(point[0], point[1], breatheColor(ColorWhite, idleIntensity[step]))
	return f
}

// breatheColor blends base toward black in perceptually uniform Lab space,
// so the idle pixel's brightness dims smoothly instead of via a naive
// per-channel scale that would shift its hue as it darkens.
func breatheColor(base Color, intensity float64) Color {
	lit := colorful.Color{R: float64(base.R) / 255, G: float64(base.G) / 255, B: float64(base.B) / 255}
	dim := colorful.Color{}
	blended := dim.BlendLab(lit, intensity)
	r, g, b := blended.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
