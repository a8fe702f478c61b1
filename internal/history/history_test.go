package history_test

import (
	"testing"

	"github.com/ja-he/memeplan/internal/history"
	"github.com/ja-he/memeplan/internal/model"
)

func stateWithZoom(z float64) model.EditorState {
	s := model.NewEditorState()
	s.Zoom = z
	return s
}

func TestHistoryLaw(t *testing.T) {
	s0, s1, s2, s3 := stateWithZoom(1), stateWithZoom(1.5), stateWithZoom(2), stateWithZoom(2.5)

	h := history.New(s0)
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("fresh history can undo or redo")
	}

	h.Push(s1)
	h.Push(s2)

	if !h.Undo() {
		t.Fatal("undo did nothing")
	}
	if !h.Present().Equal(s1) {
		t.Errorf("after undo expected s1, got zoom %f", h.Present().Zoom)
	}

	if !h.Redo() {
		t.Fatal("redo did nothing")
	}
	if !h.Present().Equal(s2) {
		t.Errorf("after redo expected s2, got zoom %f", h.Present().Zoom)
	}

	h.Undo()
	h.Push(s3)
	if h.CanRedo() {
		t.Error("push after undo should clear the future")
	}
	if !h.Present().Equal(s3) {
		t.Errorf("expected s3, got zoom %f", h.Present().Zoom)
	}

	h.Undo()
	h.Undo()
	if !h.Present().Equal(s0) {
		t.Errorf("expected s0 after undoing everything, got zoom %f", h.Present().Zoom)
	}
	if h.Undo() {
		t.Error("undo past the beginning did something")
	}
}

func TestRedoOrder(t *testing.T) {
	h := history.New(stateWithZoom(1))
	for _, z := range []float64{1.1, 1.2, 1.3} {
		h.Push(stateWithZoom(z))
	}
	for h.Undo() {
	}
	for _, z := range []float64{1.1, 1.2, 1.3} {
		h.Redo()
		if h.Present().Zoom != z {
			t.Errorf("expected zoom %f on redo, got %f", z, h.Present().Zoom)
		}
	}
	if h.Redo() {
		t.Error("redo past the end did something")
	}
}

func TestReplaceAndClear(t *testing.T) {
	h := history.New(stateWithZoom(1))
	h.Push(stateWithZoom(2))
	h.Push(stateWithZoom(3))
	h.Undo()

	loading := h.Present()
	loading.IsLoading = true
	h.Replace(loading)
	if past, future := h.Depth(); past != 1 || future != 1 {
		t.Errorf("replace changed depth to %d/%d", past, future)
	}
	if !h.Present().IsLoading {
		t.Error("replace did not change present")
	}

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("clear kept entries")
	}
	if !h.Present().Equal(loading) {
		t.Error("clear changed the present")
	}
}
