package editor_test

import (
	"testing"

	"github.com/ja-he/memeplan/internal/editor"
	"github.com/ja-he/memeplan/internal/model"
)

var testDefaults = editor.LayerDefaults{
	Text:  model.TextProperties{FontSize: 32, FontFamily: "Arial", Color: "#000000", TextAlign: model.AlignCenter},
	Media: model.MediaProperties{Width: 100, Height: 100},
}

func TestParseScript(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		steps, err := editor.ParseScript([]byte(`
- action: add-text
  content: one does not simply
  active: true
  properties: {x: 40, y: 20, font-size: 48}
- action: raise
  layer: "#0"
- action: set-filter
  filters: {brightness: 120, hue-rotate: 90}
`))
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if len(steps) != 3 {
			t.Fatalf("expected 3 steps, got %d", len(steps))
		}
		if steps[0].Properties == nil || *steps[0].Properties.FontSize != 48 {
			t.Error("properties of first step not parsed")
		}
		if steps[2].Filters == nil || *steps[2].Filters.HueRotate != 90 {
			t.Error("filters of last step not parsed")
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := editor.ParseScript([]byte("- action: explode\n"))
		if err == nil {
			t.Error("expected error for unknown action")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := editor.ParseScript([]byte("action: [unterminated"))
		if err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

func TestStepResolve(t *testing.T) {
	s := stateWithLayers(t, "a", "b")
	s = mustApply(t, s, editor.SetActiveLayer{ID: "a"})

	t.Run("add-text applies defaults and overrides", func(t *testing.T) {
		steps, err := editor.ParseScript([]byte("- action: add-text\n  content: hi\n  properties: {font-size: 48}\n"))
		if err != nil {
			t.Fatal(err)
		}
		a, err := steps[0].Resolve(s, testDefaults)
		if err != nil {
			t.Fatal(err)
		}
		add, ok := a.(editor.AddLayer)
		if !ok {
			t.Fatalf("expected AddLayer, got %T", a)
		}
		if add.Layer.ID != "" {
			t.Error("script steps should leave ID assignment to the session")
		}
		p := add.Layer.Properties
		if p.FontSize != 48 || p.FontFamily != "Arial" || p.TextAlign != model.AlignCenter {
			t.Errorf("unexpected text properties %#v", *p.TextProperties)
		}
	})

	t.Run("media without content", func(t *testing.T) {
		_, err := editor.Step{Action: "add-sticker"}.Resolve(s, testDefaults)
		if err == nil {
			t.Error("expected error for sticker without content")
		}
	})

	for _, tc := range []struct {
		step     editor.Step
		expected editor.Action
	}{
		{editor.Step{Action: "raise"}, editor.ReorderLayers{ID: "a", Direction: editor.Up}},
		{editor.Step{Action: "lower", Layer: "top"}, editor.ReorderLayers{ID: "b", Direction: editor.Down}},
		{editor.Step{Action: "delete", Layer: "#1"}, editor.DeleteLayer{ID: "b"}},
		{editor.Step{Action: "activate", Layer: "bottom"}, editor.SetActiveLayer{ID: "a"}},
		{editor.Step{Action: "deactivate"}, editor.SetActiveLayer{ID: ""}},
		{editor.Step{Action: "toggle-lock", Layer: "b"}, editor.ToggleLayerLock{ID: "b"}},
		{editor.Step{Action: "zoom", Zoom: model.Pointer(2.5)}, editor.SetZoom{Value: 2.5}},
		{editor.Step{Action: "pan", X: model.Pointer(12.0)}, editor.SetPan{X: 12, Y: 0}},
		{editor.Step{Action: "reset"}, editor.ResetEditor{}},
	} {
		t.Run(tc.step.Action, func(t *testing.T) {
			a, err := tc.step.Resolve(s, testDefaults)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if a != tc.expected {
				t.Errorf("expected %#v, got %#v", tc.expected, a)
			}
		})
	}

	t.Run("bad references", func(t *testing.T) {
		for _, ref := range []string{"#2", "#x", "#-1"} {
			if _, err := (editor.Step{Action: "delete", Layer: ref}).Resolve(s, testDefaults); err == nil {
				t.Errorf("expected error for reference '%s'", ref)
			}
		}
		none := mustApply(t, s, editor.SetActiveLayer{ID: ""})
		if _, err := (editor.Step{Action: "raise"}).Resolve(none, testDefaults); err == nil {
			t.Error("expected error resolving 'active' without an active layer")
		}
	})
}

func TestSessionIDs(t *testing.T) {
	ids := editor.NewSessionIDs()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := ids.NextID()
		if id == "" || seen[id] {
			t.Fatalf("id '%s' empty or repeated", id)
		}
		seen[id] = true
	}
}
