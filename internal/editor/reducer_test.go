package editor_test

import (
	"reflect"
	"testing"

	"github.com/ja-he/memeplan/internal/editor"
	"github.com/ja-he/memeplan/internal/model"
)

func textLayer(id string) model.Layer {
	l := model.NewTextLayer("text of "+id, 10, 10, model.TextProperties{FontSize: 32, FontFamily: "Impact", Color: "#ffffff"})
	l.ID = id
	return l
}

func mustApply(t *testing.T, s model.EditorState, a editor.Action) model.EditorState {
	t.Helper()
	result, applied := editor.Reduce(s, a)
	if !applied {
		t.Fatalf("action '%s' did not apply", a.Explain())
	}
	return result
}

func stateWithLayers(t *testing.T, ids ...string) model.EditorState {
	t.Helper()
	s := model.NewEditorState()
	for _, id := range ids {
		s = mustApply(t, s, editor.AddLayer{Layer: textLayer(id)})
	}
	return s
}

func layerIDs(s model.EditorState) []string {
	ids := []string{}
	for _, l := range s.ActiveLayers {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestAddAndDeleteTextLayer(t *testing.T) {
	s := model.NewEditorState()
	l := textLayer("a")
	l.IsActive = true

	s = mustApply(t, s, editor.AddLayer{Layer: l})
	if len(s.ActiveLayers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(s.ActiveLayers))
	}
	if s.ActiveLayers[0].Properties.ZIndex != 0 {
		t.Errorf("expected zIndex 0, got %d", s.ActiveLayers[0].Properties.ZIndex)
	}
	if !s.ActiveLayers[0].IsActive {
		t.Error("layer added as active is not active")
	}

	s = mustApply(t, s, editor.DeleteLayer{ID: "a"})
	if len(s.ActiveLayers) != 0 {
		t.Errorf("expected no layers, got %d", len(s.ActiveLayers))
	}
}

func TestAddLayer(t *testing.T) {
	t.Run("appends on top with zIndex", func(t *testing.T) {
		s := stateWithLayers(t, "a", "b", "c")
		if !reflect.DeepEqual(layerIDs(s), []string{"a", "b", "c"}) {
			t.Errorf("unexpected order %v", layerIDs(s))
		}
		for i, l := range s.ActiveLayers {
			if l.Properties.ZIndex != i {
				t.Errorf("layer '%s' has zIndex %d, expected %d", l.ID, l.Properties.ZIndex, i)
			}
		}
	})

	t.Run("duplicate or missing ID does not apply", func(t *testing.T) {
		s := stateWithLayers(t, "a")
		if _, applied := editor.Reduce(s, editor.AddLayer{Layer: textLayer("a")}); applied {
			t.Error("duplicate ID applied")
		}
		if _, applied := editor.Reduce(s, editor.AddLayer{Layer: textLayer("")}); applied {
			t.Error("empty ID applied")
		}
	})

	t.Run("active layer deactivates others", func(t *testing.T) {
		s := model.NewEditorState()
		for _, id := range []string{"a", "b"} {
			l := textLayer(id)
			l.IsActive = true
			s = mustApply(t, s, editor.AddLayer{Layer: l})
		}
		if s.CountActive() != 1 || !s.ActiveLayers[1].IsActive {
			t.Errorf("expected only 'b' active, got %d active", s.CountActive())
		}
	})

	t.Run("normalizes variant", func(t *testing.T) {
		s := model.NewEditorState()
		l := model.Layer{ID: "s", Type: model.LayerTypeSticker, Content: "doge.png"}
		s = mustApply(t, s, editor.AddLayer{Layer: l})
		if s.ActiveLayers[0].Properties.MediaProperties == nil {
			t.Error("sticker layer lacks media properties")
		}
	})
}

func TestUpdateLayer(t *testing.T) {
	s := stateWithLayers(t, "a", "b")
	before := s

	s = mustApply(t, s, editor.UpdateLayer{
		ID: "a",
		Update: model.LayerUpdate{
			Content:    model.Pointer("new text"),
			Properties: &model.PropertiesUpdate{Y: model.Pointer(77.0), Color: model.Pointer("#00ff00")},
		},
	})

	a, _ := s.Layer("a")
	if a.Content != "new text" || a.Properties.Y != 77 || a.Properties.Color != "#00ff00" {
		t.Errorf("update not applied: %#v", a)
	}
	if a.Properties.X != 10 || a.Properties.FontSize != 32 || a.Properties.FontFamily != "Impact" {
		t.Errorf("omitted keys not preserved: %#v", a.Properties)
	}

	// snapshots are never modified in place
	beforeA, _ := before.Layer("a")
	if beforeA.Content != "text of a" || beforeA.Properties.Color != "#ffffff" {
		t.Error("update wrote through to previous snapshot")
	}

	t.Run("stale ID", func(t *testing.T) {
		result, applied := editor.Reduce(s, editor.UpdateLayer{ID: "gone", Update: model.LayerUpdate{Content: model.Pointer("x")}})
		if applied {
			t.Error("update of unknown ID applied")
		}
		if !result.Equal(s) {
			t.Error("update of unknown ID changed state")
		}
	})

	t.Run("activation through update keeps single active", func(t *testing.T) {
		r := mustApply(t, s, editor.SetActiveLayer{ID: "a"})
		r = mustApply(t, r, editor.UpdateLayer{ID: "b", Update: model.LayerUpdate{IsActive: model.Pointer(true)}})
		if r.CountActive() != 1 {
			t.Errorf("expected exactly one active layer, got %d", r.CountActive())
		}
		if l, _ := r.ActiveLayer(); l.ID != "b" {
			t.Errorf("expected 'b' active, got '%s'", l.ID)
		}
	})
}

func TestDeleteLayer(t *testing.T) {
	s := stateWithLayers(t, "a", "b", "c")
	s = mustApply(t, s, editor.SetActiveLayer{ID: "c"})
	s = mustApply(t, s, editor.DeleteLayer{ID: "b"})
	if !reflect.DeepEqual(layerIDs(s), []string{"a", "c"}) {
		t.Errorf("unexpected layers %v", layerIDs(s))
	}
	if l, ok := s.ActiveLayer(); !ok || l.ID != "c" {
		t.Error("deleting another layer changed the active layer")
	}
	if _, applied := editor.Reduce(s, editor.DeleteLayer{ID: "b"}); applied {
		t.Error("deleting a deleted layer applied")
	}
}

func TestSetActiveLayer(t *testing.T) {
	s := stateWithLayers(t, "a", "b", "c")

	once := mustApply(t, s, editor.SetActiveLayer{ID: "b"})
	twice := mustApply(t, once, editor.SetActiveLayer{ID: "b"})
	if !once.Equal(twice) {
		t.Error("setting the active layer is not idempotent")
	}
	if once.CountActive() != 1 {
		t.Errorf("expected 1 active layer, got %d", once.CountActive())
	}

	none := mustApply(t, once, editor.SetActiveLayer{ID: ""})
	if none.CountActive() != 0 {
		t.Errorf("expected no active layer, got %d", none.CountActive())
	}

	stale, applied := editor.Reduce(once, editor.SetActiveLayer{ID: "gone"})
	if applied {
		t.Error("activating unknown layer reported as applied")
	}
	if !stale.Equal(once) {
		t.Error("activating unknown layer changed the state")
	}
}

func TestAddAfterDeleteKeepsZIndexUnique(t *testing.T) {
	s := stateWithLayers(t, "A", "B", "C")
	s = mustApply(t, s, editor.DeleteLayer{ID: "A"})
	if s.ActiveLayers[0].Properties.ZIndex != 1 || s.ActiveLayers[1].Properties.ZIndex != 2 {
		t.Error("deleting a layer changed the others' zIndex")
	}

	s = mustApply(t, s, editor.AddLayer{Layer: textLayer("D")})
	if !reflect.DeepEqual(layerIDs(s), []string{"B", "C", "D"}) {
		t.Errorf("unexpected order %v", layerIDs(s))
	}
	for i := 1; i < len(s.ActiveLayers); i++ {
		below, above := s.ActiveLayers[i-1].Properties.ZIndex, s.ActiveLayers[i].Properties.ZIndex
		if above <= below {
			t.Errorf("layer '%s' has zIndex %d, not above %d", s.ActiveLayers[i].ID, above, below)
		}
	}
}

func TestReorderLayers(t *testing.T) {
	s := stateWithLayers(t, "A", "B", "C")

	t.Run("B up", func(t *testing.T) {
		r := mustApply(t, s, editor.ReorderLayers{ID: "B", Direction: editor.Up})
		if !reflect.DeepEqual(layerIDs(r), []string{"A", "C", "B"}) {
			t.Errorf("unexpected order %v", layerIDs(r))
		}
		for i, l := range r.ActiveLayers {
			if l.Properties.ZIndex != i {
				t.Errorf("layer '%s' has zIndex %d, expected %d", l.ID, l.Properties.ZIndex, i)
			}
		}
	})

	t.Run("A down is a no-op", func(t *testing.T) {
		r, applied := editor.Reduce(s, editor.ReorderLayers{ID: "A", Direction: editor.Down})
		if applied || !r.Equal(s) {
			t.Error("moving bottom layer down changed something")
		}
	})

	t.Run("C up is a no-op", func(t *testing.T) {
		r, applied := editor.Reduce(s, editor.ReorderLayers{ID: "C", Direction: editor.Up})
		if applied || !r.Equal(s) {
			t.Error("moving top layer up changed something")
		}
	})

	t.Run("renormalizes after deletion", func(t *testing.T) {
		r := mustApply(t, s, editor.DeleteLayer{ID: "A"})
		r = mustApply(t, r, editor.ReorderLayers{ID: "C", Direction: editor.Down})
		if !reflect.DeepEqual(layerIDs(r), []string{"C", "B"}) {
			t.Errorf("unexpected order %v", layerIDs(r))
		}
		if r.ActiveLayers[0].Properties.ZIndex != 0 || r.ActiveLayers[1].Properties.ZIndex != 1 {
			t.Error("zIndex not renormalized for all layers")
		}
	})
}

func TestToggles(t *testing.T) {
	// absent flags take their defaults
	l := textLayer("a")
	l.Properties.Visible = nil
	s := mustApply(t, model.NewEditorState(), editor.AddLayer{Layer: l})

	s = mustApply(t, s, editor.ToggleLayerVisibility{ID: "a"})
	if a, _ := s.Layer("a"); a.Properties.IsVisible() {
		t.Error("absent visibility should toggle to hidden")
	}
	s = mustApply(t, s, editor.ToggleLayerVisibility{ID: "a"})
	if a, _ := s.Layer("a"); !a.Properties.IsVisible() {
		t.Error("second toggle should make the layer visible again")
	}

	s = mustApply(t, s, editor.ToggleLayerLock{ID: "a"})
	if a, _ := s.Layer("a"); !a.Properties.Locked {
		t.Error("absent lock should toggle to locked")
	}

	if _, applied := editor.Reduce(s, editor.ToggleLayerLock{ID: "b"}); applied {
		t.Error("toggle of unknown layer applied")
	}
}

func TestTemplateSwitchClearsLayers(t *testing.T) {
	t1 := &model.TemplateDetail{Template: model.Template{ID: 1, Name: "Drake"}}
	t2 := &model.TemplateDetail{Template: model.Template{ID: 2, Name: "Distracted Boyfriend"}}

	s := mustApply(t, model.NewEditorState(), editor.SetSelectedTemplate{Template: t1})
	s = mustApply(t, s, editor.AddLayer{Layer: textLayer("a")})
	s = mustApply(t, s, editor.AddLayer{Layer: textLayer("b")})
	s = mustApply(t, s, editor.SetSelectedTemplate{Template: t2})
	if len(s.ActiveLayers) != 0 {
		t.Errorf("expected layers cleared, have %d", len(s.ActiveLayers))
	}

	// also for the same template
	s = mustApply(t, s, editor.AddLayer{Layer: textLayer("c")})
	s = mustApply(t, s, editor.SetSelectedTemplate{Template: t2})
	if len(s.ActiveLayers) != 0 {
		t.Errorf("expected layers cleared for same template, have %d", len(s.ActiveLayers))
	}
}

func TestViewAndFilters(t *testing.T) {
	s := model.NewEditorState()

	for _, tc := range []struct{ in, expected float64 }{{10, 3.0}, {-5, 0.1}, {2, 2}} {
		r := mustApply(t, s, editor.SetZoom{Value: tc.in})
		if r.Zoom != tc.expected {
			t.Errorf("zoom %f: expected %f, got %f", tc.in, tc.expected, r.Zoom)
		}
	}

	r := mustApply(t, s, editor.SetPan{X: -1000, Y: 5000})
	if r.PanX != -1000 || r.PanY != 5000 {
		t.Errorf("pan not stored verbatim: %f,%f", r.PanX, r.PanY)
	}

	r = mustApply(t, s, editor.SetFilter{Update: model.FilterUpdate{Contrast: model.Pointer(140.0)}})
	if r.Filters.Contrast != 140 || r.Filters.Brightness != 100 {
		t.Errorf("unexpected filters %#v", r.Filters)
	}
	r = mustApply(t, r, editor.ResetFilters{})
	if !r.Filters.IsIdentity() {
		t.Errorf("filters not reset: %#v", r.Filters)
	}
}

func TestBookkeeping(t *testing.T) {
	s := mustApply(t, model.NewEditorState(), editor.SetCurrentUser{UserID: 42})
	s = mustApply(t, s, editor.SetLoading{Loading: true})
	s = mustApply(t, s, editor.SetError{Message: "HTTP 500"})
	if s.IsLoading || s.Error != "HTTP 500" {
		t.Errorf("unexpected bookkeeping after error: loading=%t error='%s'", s.IsLoading, s.Error)
	}
	s = mustApply(t, s, editor.ClearError{})
	if s.Error != "" {
		t.Error("error not cleared")
	}

	s = mustApply(t, s, editor.AddLayer{Layer: textLayer("a")})
	s = mustApply(t, s, editor.SetZoom{Value: 2})
	s = mustApply(t, s, editor.ResetEditor{})
	expected := model.NewEditorState()
	expected.CurrentUserID = 42
	if !s.Equal(expected) {
		t.Errorf("reset state unexpected: %#v", s)
	}

	if !editor.IsBookkeeping(editor.SetLoading{}) || editor.IsBookkeeping(editor.SetZoom{}) {
		t.Error("bookkeeping classification wrong")
	}
}

func TestLoadSnapshot(t *testing.T) {
	a, b, dup := textLayer("a"), textLayer("b"), textLayer("a")
	a.IsActive, b.IsActive = true, true
	dup.Content = "duplicate"

	s := mustApply(t, model.NewEditorState(), editor.LoadSnapshot{
		Layers:  []model.Layer{a, b, dup},
		Filters: model.Filters{Brightness: 50, Contrast: 100, Saturation: 100},
	})
	if !reflect.DeepEqual(layerIDs(s), []string{"a", "b"}) {
		t.Errorf("unexpected layers %v", layerIDs(s))
	}
	if l, _ := s.ActiveLayer(); s.CountActive() != 1 || l.ID != "b" {
		t.Error("expected only the last active layer to stay active")
	}
	if s.Filters.Brightness != 50 {
		t.Error("filters not loaded")
	}
}

// Every step of a mixed action sequence keeps the invariants.
func TestInvariantsOverSequence(t *testing.T) {
	actions := []editor.Action{
		editor.AddLayer{Layer: textLayer("a")},
		editor.AddLayer{Layer: func() model.Layer { l := textLayer("b"); l.IsActive = true; return l }()},
		editor.SetActiveLayer{ID: "a"},
		editor.AddLayer{Layer: func() model.Layer { l := textLayer("c"); l.IsActive = true; return l }()},
		editor.UpdateLayer{ID: "a", Update: model.LayerUpdate{IsActive: model.Pointer(true)}},
		editor.ReorderLayers{ID: "a", Direction: editor.Up},
		editor.ReorderLayers{ID: "a", Direction: editor.Up},
		editor.ReorderLayers{ID: "a", Direction: editor.Up},
		editor.SetZoom{Value: 99},
		editor.DeleteLayer{ID: "b"},
		editor.ToggleLayerVisibility{ID: "c"},
		editor.SetActiveLayer{ID: "missing"},
		editor.SetZoom{Value: -99},
		editor.UpdateLayer{ID: "c", Update: model.LayerUpdate{IsActive: model.Pointer(true)}},
	}

	s := model.NewEditorState()
	for i, a := range actions {
		s, _ = editor.Reduce(s, a)
		if s.CountActive() > 1 {
			t.Errorf("step %d (%s): %d active layers", i, a.Explain(), s.CountActive())
		}
		if s.Zoom < model.MinZoom || s.Zoom > model.MaxZoom {
			t.Errorf("step %d (%s): zoom %f out of range", i, a.Explain(), s.Zoom)
		}
		seen := map[string]bool{}
		for _, l := range s.ActiveLayers {
			if seen[l.ID] {
				t.Errorf("step %d (%s): duplicate layer id '%s'", i, a.Explain(), l.ID)
			}
			seen[l.ID] = true
		}
	}
}
