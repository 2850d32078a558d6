package display

import "testing"

func TestSprintViewTwoSprintsScenario(t *testing.T) {
	payload := LayoutPayload{
		Layout:  LayoutSprintView,
		Project: Project{Name: "Demo", Percentage: 50},
		Sprints: []Sprint{
			{Name: "S1", Percentage: 100},
			{Name: "S2", Percentage: 0},
		},
	}
	f := RenderSprintView(payload)

	for x := 0; x < Width/2; x++ {
		if got := f.At(x, 0); got != ColorProjectBlue {
			t.Fatalf("top band x=%d expected blue, got %v", x, got)
		}
	}

	third := Width / 3
	for y := 13; y < Height; y++ {
		if got := f.At(third*2+2, y); got != ColorEmptySlot {
			t.Fatalf("third column y=%d expected dim empty-slot color, got %v", y, got)
		}
	}
}

func TestSprintViewOmitsThirdAndBeyond(t *testing.T) {
	payload := LayoutPayload{
		Layout:  LayoutSprintView,
		Project: Project{Name: "Demo", Percentage: 10},
		Sprints: []Sprint{
			{Name: "S1", Percentage: 10},
			{Name: "S2", Percentage: 20},
			{Name: "S3", Percentage: 30},
			{Name: "S4", Percentage: 40},
		},
	}
	withExtra := RenderSprintView(payload)

	payload.Sprints = payload.Sprints[:2]
	withoutExtra := RenderSprintView(payload)

	if !withExtra.Equal(withoutExtra) {
		t.Fatal("expected sprints beyond the first two to be silently omitted")
	}
}

func TestSprintViewSuppressesPercentageTextAtZero(t *testing.T) {
	zero := RenderSprintView(LayoutPayload{
		Layout:  LayoutSprintView,
		Project: Project{Name: "Demo", Percentage: 50},
		Sprints: []Sprint{{Name: "S1", Percentage: 0}},
	})
	blank := RenderSprintView(LayoutPayload{
		Layout:  LayoutSprintView,
		Project: Project{Name: "Demo", Percentage: 50},
		Sprints: []Sprint{{Name: "S1", Percentage: -5}},
	})

	columnWidth := Width / 3
	barY := Range{Start: 13 + 2, End: Height - 2}
	midY := (barY.Start + barY.End) / 2
	for x := 0; x < columnWidth; x++ {
		if got := zero.At(x, midY); got != ColorBlack && got != ColorGaugeOutline {
			t.Fatalf("expected no percentage text drawn at 0%% fill, found %v at x=%d,y=%d", got, x, midY)
		}
	}
	if !zero.Equal(blank) {
		t.Fatal("expected a clamped-negative percentage to render identically to 0%")
	}
}

func TestSingleViewGaugeIsGreen(t *testing.T) {
	payload := LayoutPayload{
		Layout:  LayoutSingleView,
		Project: Project{Name: "Demo", Percentage: 100},
	}
	f := RenderSingleView(payload)

	for x := 23; x < 41; x++ {
		if got := f.At(x, 30); got != ColorSprintGreen {
			t.Fatalf("expected fully green gauge fill at x=%d, got %v", x, got)
		}
	}
}

func TestSingleViewOmitsSummaryWhenNoSprints(t *testing.T) {
	payload := LayoutPayload{
		Layout:  LayoutSingleView,
		Project: Project{Name: "Demo", Percentage: 25},
	}
	f := RenderSingleView(payload)

	// The gauge (x 22..41, y 12..55) crosses row 48; only the label areas
	// on either side of it must stay blank.
	for x := 0; x < Width; x++ {
		if x >= 22 && x < 42 {
			continue
		}
		if got := f.At(x, 48); got != ColorBlack {
			t.Fatalf("expected no summary labels at y=48 with no sprints, got %v at x=%d", got, x)
		}
	}
}

func TestSingleViewCompleteCounts(t *testing.T) {
	payload := LayoutPayload{
		Layout:  LayoutSingleView,
		Project: Project{Name: "Demo", Percentage: 100},
		Sprints: []Sprint{
			{
				Name:       "S1",
				Percentage: 10,
				UserStories: []UserStory{
					{Title: "story-a", Percentage: 100},
					{Title: "story-b", Percentage: 50},
				},
			},
		},
	}
	f := RenderSingleView(payload)

	hasDrawnPixel := false
	for x := 0; x < Width; x++ {
		if f.At(x, 61) != ColorBlack {
			hasDrawnPixel = true
			break
		}
	}
	if !hasDrawnPixel {
		t.Fatal("expected count labels to be drawn at y=61")
	}
}

func TestUserStoryLayoutSprintOnlyWhenNoStories(t *testing.T) {
	payload := LayoutPayload{
		Layout: LayoutUserStoryLayout,
		Sprints: []Sprint{
			{Name: "S1", Percentage: 58},
		},
	}
	f := RenderUserStoryLayout(payload)

	// The single sprint line occupies the full 64 rows; nothing below row 0
	// should differ from a one-line render.
	single := RenderUserStoryLayout(LayoutPayload{Sprints: []Sprint{{Name: "S1", Percentage: 58}}})
	if !f.Equal(single) {
		t.Fatal("expected sprint-only render to be stable")
	}
}

func TestUserStoryLayoutFourBandsScenario(t *testing.T) {
	payload := LayoutPayload{
		Layout: LayoutUserStoryLayout,
		Sprints: []Sprint{
			{
				Name:       "S1",
				Percentage: 58,
				UserStories: []UserStory{
					{Title: "U1", Percentage: 25},
					{Title: "U2", Percentage: 50},
					{Title: "U3", Percentage: 100},
				},
			},
		},
	}
	f := RenderUserStoryLayout(payload)

	lineHeight := Height / 4
	// Band 4 (U3 at 100%) should have a checkmark rather than percentage
	// text on the right; the sprite's rightmost column is x=Width-3, just
	// inside the 2px right margin.
	checkmarkFound := false
	for y := lineHeight * 3; y < Height; y++ {
		if f.At(Width-3, y) == ColorWhite {
			checkmarkFound = true
			break
		}
	}
	if !checkmarkFound {
		t.Fatal("expected checkmark sprite pixels in the 100% band")
	}
}

func TestUserStoryLayoutMissingFocusSprintRendersBlank(t *testing.T) {
	idx := 5
	payload := LayoutPayload{
		Layout:           LayoutUserStoryLayout,
		FocusSprintIndex: &idx,
		Sprints:          []Sprint{{Name: "S1", Percentage: 10}},
	}
	f := RenderUserStoryLayout(payload)
	blank := NewFramebuffer()
	if !f.Equal(blank) {
		t.Fatal("expected blank framebuffer when focus sprint index is out of range")
	}
}

func TestRenderProgressBarZeroIsBlack(t *testing.T) {
	f := RenderProgressBar(0)
	blank := NewFramebuffer()
	if !f.Equal(blank) {
		t.Fatal("expected 0% progress bar to be fully black")
	}
}

func TestRenderProgressBarFullHasNoBlackRows(t *testing.T) {
	f := RenderProgressBar(100)
	for y := 0; y < Height; y++ {
		rowAllBlack := true
		for x := 0; x < Width; x++ {
			if f.At(x, y) != ColorBlack {
				rowAllBlack = false
				break
			}
		}
		if rowAllBlack {
			t.Fatalf("row %d expected non-black pixels at 100%%", y)
		}
	}
}

func TestClearThenClearIsIdempotent(t *testing.T) {
	first := NewFramebuffer()
	first.Fill(ColorBlack)
	second := first.Clone()
	second.Fill(ColorBlack)
	if !first.Equal(second) {
		t.Fatal("expected repeated clear to be idempotent")
	}
}
