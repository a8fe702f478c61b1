package session_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ja-he/memeplan/internal/editor"
	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/session"
)

var testTime = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

func newTestSession(opts ...session.Option) *session.Session {
	counter := 0
	ids := editor.IDFunc(func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	})
	base := []session.Option{
		session.WithIDSource(ids),
		session.WithClock(func() time.Time { return testTime }),
		session.WithLogger(zerolog.Nop()),
	}
	return session.New(append(base, opts...)...)
}

func text(content string) model.Layer {
	return model.NewTextLayer(content, 50, 50, model.TextProperties{FontSize: 32, FontFamily: "Arial", Color: "#000000"})
}

func TestDispatchHistory(t *testing.T) {
	s := newTestSession()

	id, applied := s.AddLayer(text("top text"))
	if !applied || id != "id-1" {
		t.Fatalf("add failed (applied=%t, id='%s')", applied, id)
	}
	if !s.CanUndo() {
		t.Error("adding a layer should be undoable")
	}

	t.Run("stale reference pushes nothing", func(t *testing.T) {
		before, _ := s.HistoryDepth()
		if s.Dispatch(editor.DeleteLayer{ID: "nope"}) {
			t.Error("delete of unknown layer reported as applied")
		}
		if after, _ := s.HistoryDepth(); after != before {
			t.Error("stale action created an undo step")
		}
	})

	t.Run("unchanged state pushes nothing", func(t *testing.T) {
		before, _ := s.HistoryDepth()
		s.Dispatch(editor.SetZoom{Value: model.DefaultZoom})
		if after, _ := s.HistoryDepth(); after != before {
			t.Error("no-change action created an undo step")
		}
	})

	t.Run("undo and redo", func(t *testing.T) {
		s.Dispatch(editor.DeleteLayer{ID: id})
		if len(s.State().ActiveLayers) != 0 {
			t.Fatal("layer not deleted")
		}
		s.Undo()
		if len(s.State().ActiveLayers) != 1 {
			t.Error("undo did not restore the layer")
		}
		s.Redo()
		if len(s.State().ActiveLayers) != 0 {
			t.Error("redo did not delete the layer again")
		}
	})
}

func TestDispatchAssignsIDs(t *testing.T) {
	s := newTestSession()
	s.Dispatch(editor.AddLayer{Layer: text("a")})
	s.Dispatch(editor.AddLayer{Layer: text("b")})
	state := s.State()
	if len(state.ActiveLayers) != 2 || state.ActiveLayers[0].ID != "id-1" || state.ActiveLayers[1].ID != "id-2" {
		t.Errorf("unexpected layers %#v", state.ActiveLayers)
	}
}

func TestIDCollisionRedraws(t *testing.T) {
	ids := []string{"dup", "dup", "fresh"}
	i := 0
	s := session.New(
		session.WithLogger(zerolog.Nop()),
		session.WithIDSource(editor.IDFunc(func() string { i++; return ids[i-1] })),
	)
	first, _ := s.AddLayer(text("a"))
	second, _ := s.AddLayer(text("b"))
	if first != "dup" || second != "fresh" {
		t.Errorf("expected 'dup' and 'fresh', got '%s' and '%s'", first, second)
	}
}

func TestBookkeepingIsNotUndoable(t *testing.T) {
	s := newTestSession()
	s.AddLayer(text("a"))
	past, _ := s.HistoryDepth()

	s.Dispatch(editor.SetLoading{Loading: true})
	s.Dispatch(editor.SetError{Message: "HTTP 500"})
	if p, _ := s.HistoryDepth(); p != past {
		t.Errorf("bookkeeping created undo steps (%d -> %d)", past, p)
	}
	if st := s.State(); st.Error != "HTTP 500" || st.IsLoading {
		t.Errorf("bookkeeping not applied: %#v", st)
	}
	// network failures never roll back layers
	if len(s.State().ActiveLayers) != 1 {
		t.Error("error changed the layers")
	}
}

func TestGestureCoalescing(t *testing.T) {
	s := newTestSession()
	id, _ := s.AddLayer(text("a"))
	past, _ := s.HistoryDepth()

	s.Begin()
	for x := 51.0; x <= 60; x++ {
		s.Dispatch(editor.UpdateLayer{ID: id, Update: model.LayerUpdate{Properties: &model.PropertiesUpdate{X: model.Pointer(x)}}})
	}
	if p, _ := s.HistoryDepth(); p != past {
		t.Error("actions during gesture created undo steps")
	}
	if l, _ := s.State().Layer(id); l.Properties.X != 60 {
		t.Errorf("working copy not updated, x=%f", l.Properties.X)
	}
	if !s.Commit() {
		t.Fatal("commit pushed nothing")
	}
	if p, _ := s.HistoryDepth(); p != past+1 {
		t.Errorf("expected exactly one step for the gesture, got %d", p-past)
	}

	s.Undo()
	if l, _ := s.State().Layer(id); l.Properties.X != 50 {
		t.Errorf("undo did not revert whole gesture, x=%f", l.Properties.X)
	}

	t.Run("cancel", func(t *testing.T) {
		s.Begin()
		s.Dispatch(editor.DeleteLayer{ID: id})
		s.Cancel()
		if _, ok := s.State().Layer(id); !ok {
			t.Error("cancelled gesture still applied")
		}
	})

	t.Run("empty gesture", func(t *testing.T) {
		s.Begin()
		if s.Commit() {
			t.Error("empty gesture pushed a step")
		}
	})

	t.Run("undo cancels", func(t *testing.T) {
		s.Redo()
		s.Begin()
		s.Dispatch(editor.SetZoom{Value: 2})
		s.Undo()
		if s.InGesture() {
			t.Error("undo left gesture open")
		}
		if s.State().Zoom != model.DefaultZoom {
			t.Error("gesture changes survived undo")
		}
	})
}

func TestSnapshotRestore(t *testing.T) {
	s := newTestSession()
	s.Dispatch(editor.SetSelectedTemplate{Template: &model.TemplateDetail{Template: model.Template{ID: 3, Name: "Drake"}}})
	s.AddLayer(text("yes"))
	s.Dispatch(editor.SetFilter{Update: model.FilterUpdate{Blur: model.Pointer(4.0)}})
	s.Dispatch(editor.SetZoom{Value: 2})

	snap := s.Snapshot()
	if snap.Timestamp != testTime.UnixMilli() {
		t.Errorf("snapshot not stamped with session clock")
	}
	if s.DraftName() != "meme_draft_2024-03-05T14-07-09" {
		t.Errorf("unexpected draft name '%s'", s.DraftName())
	}

	other := newTestSession()
	if warnings := other.Restore(snap); len(warnings) != 0 {
		t.Errorf("unexpected warnings %v", warnings)
	}
	st := other.State()
	if st.SelectedTemplate == nil || st.SelectedTemplate.ID != 3 || len(st.ActiveLayers) != 1 || st.Filters.Blur != 4 {
		t.Errorf("state not restored: %#v", st)
	}
	if st.Zoom != model.DefaultZoom {
		t.Error("view state should not be restored")
	}
	if !other.CanUndo() {
		t.Error("restore should be undoable")
	}
	other.ClearHistory()
	if other.CanUndo() {
		t.Error("history not cleared")
	}
}
