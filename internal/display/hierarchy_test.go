package display

import "testing"

func TestRenderHierarchyViewEmptySprintsStillDrawsProjectBar(t *testing.T) {
	f := RenderHierarchyView(LayoutPayload{Project: Project{Name: "Demo", Percentage: 75}})
	nonBlack := false
	for x := 0; x < Width; x++ {
		if f.At(x, 0) != ColorBlack {
			nonBlack = true
			break
		}
	}
	if !nonBlack {
		t.Fatal("expected project bar to render even with no sprints")
	}
}

func TestRenderHierarchyViewIsDeterministic(t *testing.T) {
	payload := LayoutPayload{
		Project: Project{Name: "Demo", Percentage: 40},
		Sprints: []Sprint{
			{Name: "Sprint A", Percentage: 30, UserStories: []UserStory{{Title: "A", Percentage: 100}}},
			{Name: "Sprint B", Percentage: 60},
		},
	}
	a := RenderHierarchyView(payload)
	b := RenderHierarchyView(payload)
	if !a.Equal(b) {
		t.Fatal("expected hierarchy view render to be deterministic")
	}
}
