// Package history implements linear undo/redo over editor state snapshots.
package history

import (
	"github.com/ja-he/memeplan/internal/model"
)

// History is a linear past/present/future timeline of editor states.
//
// Snapshots are stored as given; since editor states are never modified in
// place, storing them by value is enough to make undo exact.
// The history is unbounded.
type History struct {
	past    []model.EditorState
	present model.EditorState
	future  []model.EditorState
}

// New returns a history with the given state as its present and no past or
// future.
func New(initial model.EditorState) *History {
	return &History{
		past:    []model.EditorState{},
		present: initial,
		future:  []model.EditorState{},
	}
}

// Push makes s the present, moving the old present to the past.
// Any future is discarded.
func (h *History) Push(s model.EditorState) {
	h.past = append(h.past, h.present)
	h.present = s
	h.future = h.future[:0]
}

// Undo steps back one entry. It reports whether it did anything.
func (h *History) Undo() bool {
	if len(h.past) == 0 {
		return false
	}
	last := len(h.past) - 1
	h.future = append(h.future, h.present)
	h.present = h.past[last]
	h.past = h.past[:last]
	return true
}

// Redo steps forward one entry. It reports whether it did anything.
func (h *History) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	// future is kept as a stack; the next state is at the end
	next := len(h.future) - 1
	h.past = append(h.past, h.present)
	h.present = h.future[next]
	h.future = h.future[:next]
	return true
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Present returns the current state.
func (h *History) Present() model.EditorState { return h.present }

// Replace swaps the present for s without creating an undo entry.
// Past and future are kept.
func (h *History) Replace(s model.EditorState) {
	h.present = s
}

// Clear drops past and future, keeping the present.
func (h *History) Clear() {
	h.past = []model.EditorState{}
	h.future = []model.EditorState{}
}

// Depth returns the number of undo and redo steps available.
func (h *History) Depth() (past, future int) {
	return len(h.past), len(h.future)
}
