package display

// RenderHierarchyView is a fourth scene referenced by preview code paths but
// not one of the three layouts the wire protocol enumerates. It is built from the same primitives
// as the primary layouts — a top project bar, then one row per sprint with
// a label, a horizontal gauge, and a strip of per-user-story ticks — but is
// not wired to any ShowLayout dispatch path. Exported for preview parity and
// tests only; nothing in the coordinator calls it yet.
func RenderHierarchyView(payload LayoutPayload) *Framebuffer {
	f := NewFramebuffer()

	projectBand := Range{Start: 0, End: 10}
	FillHorizontalBar(f, Range{Start: 0, End: Width}, projectBand, payload.Project.Percentage, ColorProjectBlue)
	PercentOrCheckmark(f, payload.Project.Percentage, Width/2, 2, ColorText)

	if len(payload.Sprints) == 0 {
		return f
	}

	rowHeight := (Height - projectBand.End) / len(payload.Sprints)
	if rowHeight <= 0 {
		return f
	}

	for i, sprint := range payload.Sprints {
		top := projectBand.End + i*rowHeight
		renderHierarchyRow(f, top, rowHeight, sprint)
	}

	return f
}

func renderHierarchyRow(f *Framebuffer, top, height int, sprint Sprint) {
	label := truncateName(sprint.Name, sprintNameBudget)
	textY := top + 1
	DrawText(f, label, 2, textY, ColorText)

	gaugeX := Range{Start: 2, End: Width - 2}
	gaugeY := Range{Start: top + GlyphHeight + 2, End: top + GlyphHeight + 6}
	if gaugeY.End <= top+height {
		DrawOutlineRect(f, gaugeX, gaugeY, ColorGaugeOutline)
		FillHorizontalBar(f, Range{Start: gaugeX.Start + 1, End: gaugeX.End - 1}, Range{Start: gaugeY.Start + 1, End: gaugeY.End - 1}, sprint.Percentage, ColorSprintGreen)
	}

	tickY := gaugeY.End + 1
	if tickY < top+height && len(sprint.UserStories) > 0 {
		tickSpacing := (Width - 4) / len(sprint.UserStories)
		if tickSpacing < 1 {
			tickSpacing = 1
		}
		for i, story := range sprint.UserStories {
			x := 2 + i*tickSpacing
			tickHeight := int(ClampPercentage(story.Percentage) / 100 * 3)
			for dy := 0; dy < tickHeight; dy++ {
				f.Set(x, tickY+2-dy, UserStoryColor(i))
			}
		}
	}
}
