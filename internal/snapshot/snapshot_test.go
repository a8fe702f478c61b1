package snapshot_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/memeplan/internal/editor"
	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/snapshot"
)

var testTime = time.Date(2024, 3, 5, 14, 7, 9, 512_000_000, time.UTC)

func populatedState(t *testing.T) model.EditorState {
	t.Helper()
	categoryID := 3
	steps := []editor.Action{
		editor.SetSelectedTemplate{Template: &model.TemplateDetail{
			Template: model.Template{ID: 7, Name: "Drake", ImageURL: "/static/drake.jpg", CategoryID: &categoryID},
			Fields:   []model.TemplateField{{ID: 1, Name: "top", XPos: 10, YPos: 10, Width: 200, Height: 50}},
		}},
		editor.AddLayer{Layer: func() model.Layer {
			l := model.NewTextLayer("no", 50, 50, model.TextProperties{FontSize: 32, FontFamily: "Impact", Color: "#ffffff", TextAlign: model.AlignCenter, Uppercase: true})
			l.ID = "t1"
			return l
		}()},
		editor.AddLayer{Layer: func() model.Layer {
			l := model.NewMediaLayer(model.LayerTypeSticker, "/static/stickers/doge.png", 120, 80, model.MediaProperties{Width: 100, Height: 100, Name: "doge"})
			l.ID = "s1"
			l.IsActive = true
			l.Properties.Opacity = model.Pointer(0.5)
			return l
		}()},
		editor.SetFilter{Update: model.FilterUpdate{Brightness: model.Pointer(120.0), HueRotate: model.Pointer(45.0)}},
		editor.SetZoom{Value: 2},
		editor.SetPan{X: 10, Y: -4},
	}
	s := model.NewEditorState()
	for _, a := range steps {
		var applied bool
		s, applied = editor.Reduce(s, a)
		if !applied {
			t.Fatalf("setup action '%s' did not apply", a.Explain())
		}
	}
	return s
}

func TestSerialize(t *testing.T) {
	s := populatedState(t)
	snap := snapshot.Serialize(s, testTime)

	if snap.Version != snapshot.Version {
		t.Errorf("expected version %d, got %d", snapshot.Version, snap.Version)
	}
	if snap.Timestamp != testTime.UnixMilli() {
		t.Errorf("expected timestamp %d, got %d", testTime.UnixMilli(), snap.Timestamp)
	}
	if len(snap.Layers) != 2 || snap.Template == nil || snap.Template.ID != 7 {
		t.Errorf("unexpected snapshot content: %#v", snap)
	}
}

func TestRoundTrip(t *testing.T) {
	s := populatedState(t)

	t.Run("in memory", func(t *testing.T) {
		restored, warnings := snapshot.Deserialize(snapshot.Serialize(s, testTime))
		if len(warnings) != 0 {
			t.Errorf("unexpected warnings: %v", warnings)
		}
		if !reflect.DeepEqual(restored.Template, s.SelectedTemplate) {
			t.Error("template not restored")
		}
		if !reflect.DeepEqual(restored.Layers, s.ActiveLayers) {
			t.Errorf("layers not restored:\n%#v\n%#v", restored.Layers, s.ActiveLayers)
		}
		if restored.Filters != s.Filters {
			t.Error("filters not restored")
		}
	})

	t.Run("through JSON", func(t *testing.T) {
		data, err := snapshot.ExportJSON(s, testTime)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !strings.Contains(string(data), "\n  \"template\"") {
			t.Errorf("expected two-space indentation:\n%s", string(data))
		}
		if strings.Contains(string(data), "zoom") || strings.Contains(string(data), "panX") {
			t.Error("view state leaked into snapshot")
		}

		snap, err := snapshot.ImportJSON(data)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		restored, warnings := snapshot.Deserialize(snap)
		if len(warnings) != 0 {
			t.Errorf("unexpected warnings: %v", warnings)
		}
		if !reflect.DeepEqual(restored.Template, s.SelectedTemplate) {
			t.Errorf("template not restored: %#v", restored.Template)
		}
		if !reflect.DeepEqual(restored.Layers, s.ActiveLayers) {
			t.Errorf("layers not restored:\n%#v\n%#v", restored.Layers, s.ActiveLayers)
		}
		if restored.Filters != s.Filters {
			t.Error("filters not restored")
		}
	})

	t.Run("serialized layers are independent", func(t *testing.T) {
		snap := snapshot.Serialize(s, testTime)
		*snap.Layers[0].Properties.TextProperties = model.TextProperties{}
		if s.ActiveLayers[0].Properties.FontSize != 32 {
			t.Error("snapshot shares properties with state")
		}
	})
}

func TestDeserializeWarnings(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = previous }()

	snap := snapshot.Snapshot{
		Version: 99,
		Layers: []model.Layer{
			{ID: "a", Type: model.LayerTypeText, Content: "kept"},
			{ID: "", Type: model.LayerTypeText},
			{ID: "b", Type: "hologram"},
		},
		Filters: model.DefaultFilters(),
	}
	restored, warnings := snapshot.Deserialize(snap)

	if len(restored.Layers) != 1 || restored.Layers[0].ID != "a" {
		t.Errorf("expected only layer 'a' restored, got %#v", restored.Layers)
	}
	if restored.Layers[0].Properties.TextProperties == nil {
		t.Error("restored text layer not normalized")
	}
	if len(warnings) != 3 || warnings[0].Kind != snapshot.VersionMismatch {
		t.Errorf("unexpected warnings %v", warnings)
	}
	if !strings.Contains(buf.String(), "version mismatch") {
		t.Errorf("version mismatch not logged: %s", buf.String())
	}
}

func TestImportJSONMissingFilters(t *testing.T) {
	t.Run("no filters key", func(t *testing.T) {
		snap, err := snapshot.ImportJSON([]byte(`{"layers": [{"id": "a", "type": "text", "content": "hi", "properties": {"x": 1, "y": 2}}], "version": 0}`))
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		restored, warnings := snapshot.Deserialize(snap)
		if !restored.Filters.IsIdentity() {
			t.Errorf("expected identity filters, got %#v (css '%s')", restored.Filters, restored.Filters.CSS())
		}
		if len(warnings) != 1 || warnings[0].Kind != snapshot.VersionMismatch {
			t.Errorf("unexpected warnings %v", warnings)
		}
	})

	t.Run("partial filters", func(t *testing.T) {
		snap, err := snapshot.ImportJSON([]byte(`{"layers": [], "filters": {"brightness": 120}, "version": 1}`))
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected := model.DefaultFilters()
		expected.Brightness = 120
		if snap.Filters != expected {
			t.Errorf("expected %#v, got %#v", expected, snap.Filters)
		}
	})
}

func TestImportJSONMalformed(t *testing.T) {
	_, err := snapshot.ImportJSON([]byte(`{"layers": [`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, snapshot.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %s", err)
	}
}

func TestLayersJSON(t *testing.T) {
	s := populatedState(t)

	data, err := snapshot.ExportLayersJSON(s.ActiveLayers)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	layers, err := snapshot.ImportLayersJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !reflect.DeepEqual(layers, s.ActiveLayers) {
		t.Error("layers changed in round trip")
	}

	for _, doc := range []string{`{"layers": []}`, `42`, `"text"`, `null`} {
		layers, err := snapshot.ImportLayersJSON([]byte(doc))
		if err != nil {
			t.Errorf("unexpected error for '%s': %s", doc, err)
		}
		if layers == nil || len(layers) != 0 {
			t.Errorf("expected empty list for '%s', got %#v", doc, layers)
		}
	}

	if _, err := snapshot.ImportLayersJSON([]byte(`[{"id": `)); !errors.Is(err, snapshot.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestDraftName(t *testing.T) {
	if name := snapshot.DraftName(testTime); name != "meme_draft_2024-03-05T14-07-09" {
		t.Errorf("unexpected draft name '%s'", name)
	}
	local := testTime.In(time.FixedZone("UTC+2", 2*60*60))
	if name := snapshot.DraftName(local); name != "meme_draft_2024-03-05T14-07-09" {
		t.Errorf("draft name depends on time zone: '%s'", name)
	}
}
