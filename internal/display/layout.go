package display

import "strconv"

// Layout names the hierarchical scene a LayoutPayload should render as.
type Layout string

const (
	LayoutSingleView      Layout = "SingleView"
	LayoutSprintView      Layout = "SprintView"
	LayoutUserStoryLayout Layout = "UserStoryLayout"
)

// UserStory is a single leaf item under a sprint.
type UserStory struct {
	Title      string  `json:"title"`
	Percentage float64 `json:"percentage"`
}

// Sprint groups a percentage and an ordered sequence of user stories.
type Sprint struct {
	Name        string      `json:"name"`
	Percentage  float64     `json:"percentage"`
	UserStories []UserStory `json:"user_stories"`
}

// Project is the top-level progress item every layout anchors on.
type Project struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// LayoutPayload is the coordinator's sole knowledge of the surrounding task
// hierarchy; it is supplied by an external task service with every
// ShowLayout command.
type LayoutPayload struct {
	Layout           Layout  `json:"layout"`
	Project          Project `json:"project"`
	Sprints          []Sprint `json:"sprints"`
	FocusSprintIndex *int    `json:"focus_sprint_index,omitempty"`
}

const (
	projectNameBudget   = 10
	sprintNameBudget    = 8
	userStoryNameBudget = 10
)

func truncateName(name string, budget int) string {
	runes := []rune(name)
	if len(runes) <= budget {
		return name
	}
	return string(runes[:budget])
}

// RenderSingleView draws the project gauge, sprint/user-story summary
// counts, and percentage text (or checkmark at 100%).
func RenderSingleView(payload LayoutPayload) *Framebuffer {
	f := NewFramebuffer()

	name := truncateName(payload.Project.Name, projectNameBudget)
	DrawTextCentered(f, name, Width/2, 3, ColorText)

	gaugeX := Range{Start: 22, End: 42}
	gaugeY := Range{Start: 12, End: 56}
	DrawOutlineRect(f, gaugeX, gaugeY, ColorGaugeOutline)
	FillVerticalBar(f, Range{Start: gaugeX.Start + 1, End: gaugeX.End - 1}, Range{Start: gaugeY.Start + 1, End: gaugeY.End - 1}, payload.Project.Percentage, ColorSprintGreen)

	if len(payload.Sprints) > 0 {
		DrawText(f, "S:", 2, 48, ColorText)
		completedSprints, totalSprints := countCompleted(sprintPercentages(payload.Sprints))
		DrawText(f, countLabel(completedSprints, totalSprints), 2, 61, ColorText)
	}
	if totalUserStories := countUserStories(payload.Sprints); totalUserStories > 0 {
		label := "US:"
		DrawText(f, label, Width-2-TextWidth(label), 48, ColorText)
		completed, total := countCompleted(userStoryPercentages(payload.Sprints))
		text := countLabel(completed, total)
		DrawText(f, text, Width-2-TextWidth(text), 61, ColorText)
	}

	PercentOrCheckmark(f, payload.Project.Percentage, Width/2, 64-GlyphHeight, ColorText)

	return f
}

func sprintPercentages(sprints []Sprint) []float64 {
	out := make([]float64, len(sprints))
	for i, s := range sprints {
		out[i] = s.Percentage
	}
	return out
}

func userStoryPercentages(sprints []Sprint) []float64 {
	var out []float64
	for _, s := range sprints {
		for _, us := range s.UserStories {
			out = append(out, us.Percentage)
		}
	}
	return out
}

func countUserStories(sprints []Sprint) int {
	total := 0
	for _, s := range sprints {
		total += len(s.UserStories)
	}
	return total
}

func countCompleted(percentages []float64) (completed, total int) {
	total = len(percentages)
	for _, p := range percentages {
		if ClampPercentage(p) >= 100 {
			completed++
		}
	}
	return completed, total
}

func countLabel(completed, total int) string {
	return strconv.Itoa(completed) + "/" + strconv.Itoa(total)
}

// RenderSprintView draws the full-width project bar and up to two sprint
// columns; a third column is rendered as an empty dim slot regardless of
// how many additional sprints exist.
func RenderSprintView(payload LayoutPayload) *Framebuffer {
	f := NewFramebuffer()

	projectBar := Range{Start: 0, End: Width}
	projectBand := Range{Start: 0, End: 10}
	FillHorizontalBar(f, projectBar, projectBand, payload.Project.Percentage, ColorProjectBlue)
	PercentOrCheckmark(f, payload.Project.Percentage, Width/2, 2, ColorText)

	columnWidth := Width / 3
	columns := [3]Range{
		{Start: 0, End: columnWidth},
		{Start: columnWidth, End: columnWidth * 2},
		{Start: columnWidth * 2, End: Width},
	}
	bodyY := Range{Start: 13, End: Height}

	for i, col := range columns {
		if i >= 2 || i >= len(payload.Sprints) {
			fillEmptySlot(f, col, bodyY)
			continue
		}
		sprint := payload.Sprints[i]
		renderSprintColumn(f, col, bodyY, i+1, sprint)
	}

	return f
}

func fillEmptySlot(f *Framebuffer, xRange, yRange Range) {
	for y := yRange.Start; y < yRange.End; y++ {
		for x := xRange.Start; x < xRange.End; x++ {
			f.Set(x, y, ColorEmptySlot)
		}
	}
}

func renderSprintColumn(f *Framebuffer, xRange, yRange Range, ordinal int, sprint Sprint) {
	label := "S" + strconv.Itoa(ordinal)
	DrawText(f, label, xRange.Start+2, 11, ColorText)

	barX := Range{Start: xRange.Start + 4, End: xRange.End - 4}
	barY := Range{Start: yRange.Start + 2, End: yRange.End - 2}
	DrawOutlineRect(f, barX, barY, ColorGaugeOutline)
	FillVerticalBar(f, Range{Start: barX.Start + 1, End: barX.End - 1}, Range{Start: barY.Start + 1, End: barY.End - 1}, sprint.Percentage, ColorSprintGreen)

	midY := (barY.Start + barY.End) / 2
	centerX := (xRange.Start + xRange.End) / 2
	if clamped := ClampPercentage(sprint.Percentage); clamped > 0 {
		PercentOrCheckmark(f, clamped, centerX, midY, ColorText)
	}
}

// RenderUserStoryLayout draws the focused sprint's top row and one row per
// user story beneath it, each line an outlined horizontal gauge with a
// label on the left and percentage text or a checkmark on the right.
func RenderUserStoryLayout(payload LayoutPayload) *Framebuffer {
	f := NewFramebuffer()

	focusIndex := 0
	if payload.FocusSprintIndex != nil {
		focusIndex = *payload.FocusSprintIndex
	}
	if focusIndex < 0 || focusIndex >= len(payload.Sprints) {
		return f
	}
	sprint := payload.Sprints[focusIndex]

	lineCount := 1 + len(sprint.UserStories)
	lineHeight := Height / lineCount

	drawUserStoryLine(f, 0, lineHeight, "S1", sprint.Percentage, ColorSprintGreen)
	for i, story := range sprint.UserStories {
		label := "U" + strconv.Itoa(i+1)
		drawUserStoryLine(f, (i+1)*lineHeight, lineHeight, label, story.Percentage, UserStoryColor(i))
	}

	return f
}

func drawUserStoryLine(f *Framebuffer, top, height int, label string, percentage float64, color Color) {
	centerY := top + height/2
	DrawText(f, label, 2, centerY-GlyphHeight/2, ColorText)

	gaugeX := Range{Start: 14, End: 38}
	gaugeY := Range{Start: top + 1, End: top + height - 1}
	if gaugeY.Len() > 0 {
		DrawOutlineRect(f, gaugeX, gaugeY, ColorGaugeOutline)
		FillHorizontalBar(f, Range{Start: gaugeX.Start + 1, End: gaugeX.End - 1}, Range{Start: gaugeY.Start + 1, End: gaugeY.End - 1}, percentage, color)
	}

	percentage = ClampPercentage(percentage)
	if percentage >= 100 {
		DrawCheckmark(f, Width-2-checkmarkSize, centerY-checkmarkSize/2+checkmarkBaselineOffsetPx)
	} else {
		DrawTextCentered(f, formatPercent(percentage), Width-2-TextWidth(formatPercent(percentage))/2, centerY-GlyphHeight/2, ColorText)
	}
}
