package display

import "strconv"

// FillVerticalBar fills xRange x yRange from the bottom of yRange upward.
// The number of filled rows is floor(percentage/100 * height).
func FillVerticalBar(f *Framebuffer, xRange, yRange Range, percentage float64, color Color) {
	percentage = ClampPercentage(percentage)
	height := yRange.Len()
	if height <= 0 {
		return
	}
	filled := int(percentage / 100 * float64(height))
	if filled > height {
		filled = height
	}
	for y := yRange.End - filled; y < yRange.End; y++ {
		for x := xRange.Start; x < xRange.End; x++ {
			f.Set(x, y, color)
		}
	}
}

// FillHorizontalBar fills xRange x yRange from the left of xRange rightward.
// The number of filled columns is floor(percentage/100 * width).
func FillHorizontalBar(f *Framebuffer, xRange, yRange Range, percentage float64, color Color) {
	percentage = ClampPercentage(percentage)
	width := xRange.Len()
	if width <= 0 {
		return
	}
	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}
	for y := yRange.Start; y < yRange.End; y++ {
		for x := xRange.Start; x < xRange.Start+filled; x++ {
			f.Set(x, y, color)
		}
	}
}

// DrawOutlineRect draws a 1-pixel border around xRange x yRange.
func DrawOutlineRect(f *Framebuffer, xRange, yRange Range, color Color) {
	if xRange.Len() <= 0 || yRange.Len() <= 0 {
		return
	}
	top, bottom := yRange.Start, yRange.End-1
	for x := xRange.Start; x < xRange.End; x++ {
		f.Set(x, top, color)
		f.Set(x, bottom, color)
	}
	left, right := xRange.Start, xRange.End-1
	for y := yRange.Start; y < yRange.End; y++ {
		f.Set(left, y, color)
		f.Set(right, y, color)
	}
}

// DrawText draws text left-to-right starting at x,y using the fixed 3x5
// glyph table. Unknown glyphs advance GlyphAdvance pixels and draw nothing.
func DrawText(f *Framebuffer, text string, x, y int, color Color) {
	cursor := x
	for _, r := range text {
		g, ok := lookupGlyph(r)
		if ok {
			for row := 0; row < GlyphHeight; row++ {
				bits := g[row]
				for col := 0; col < GlyphWidth; col++ {
					if bits&(1<<(GlyphWidth-1-col)) != 0 {
						f.Set(cursor+col, y+row, color)
					}
				}
			}
		}
		cursor += GlyphAdvance
	}
}

// DrawTextCentered draws text horizontally centered on centerX.
func DrawTextCentered(f *Framebuffer, text string, centerX, y int, color Color) {
	width := TextWidth(text)
	DrawText(f, text, centerX-width/2, y, color)
}

// checkmarkSize is the fixed footprint of the checkmark sprite.
const checkmarkSize = 7

// checkmarkBaselineOffsetPx is the vertical offset applied when a checkmark
// replaces percentage text at a given baseline. The source this was derived
// from applies a small downward nudge relative to the text it replaces; kept
// as-is rather than re-centered.
const checkmarkBaselineOffsetPx = 1

// checkmarkTick is the 7x7 sprite mask: 1 draws the tick in white, 0 leaves
// the green background.
var checkmarkTick = [checkmarkSize]uint8{
	0b0000000,
	0b0000001,
	0b0000010,
	0b0000100,
	0b1101000,
	0b0111000,
	0b0010000,
}

// DrawCheckmark draws a 7x7 sprite at x,y: a green background with a white
// tick mark. Used wherever a bar or label reaches 100%.
func DrawCheckmark(f *Framebuffer, x, y int) {
	for row := 0; row < checkmarkSize; row++ {
		bits := checkmarkTick[row]
		for col := 0; col < checkmarkSize; col++ {
			c := ColorCheckmarkBG
			if bits&(1<<(checkmarkSize-1-col)) != 0 {
				c = ColorWhite
			}
			f.Set(x+col, y+row, c)
		}
	}
}

// DrawCheckmarkCentered draws the checkmark sprite centered on centerX, with
// its top edge at y adjusted by checkmarkBaselineOffsetPx.
func DrawCheckmarkCentered(f *Framebuffer, centerX, y int) {
	DrawCheckmark(f, centerX-checkmarkSize/2, y+checkmarkBaselineOffsetPx)
}

// PercentOrCheckmark draws percentage text centered on centerX, or a
// checkmark in its place once percentage has reached 100.
func PercentOrCheckmark(f *Framebuffer, percentage float64, centerX, y int, color Color) {
	percentage = ClampPercentage(percentage)
	if percentage >= 100 {
		DrawCheckmarkCentered(f, centerX, y)
		return
	}
	DrawTextCentered(f, formatPercent(percentage), centerX, y, color)
}

func formatPercent(percentage float64) string {
	return strconv.Itoa(int(percentage)) + "%"
}
