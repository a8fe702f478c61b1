// Package session provides the editing session: the state container that
// owns an editor's undo history and routes actions through the reducer.
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/memeplan/internal/editor"
	"github.com/ja-he/memeplan/internal/history"
	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/snapshot"
)

// Session is one editing session.
//
// All access goes through its methods, which are safe for concurrent use
// (e.g. API results arriving while the UI dispatches).
type Session struct {
	mutex sync.Mutex

	history *history.History
	ids     editor.IDSource
	now     func() time.Time
	log     zerolog.Logger

	// working copy of an open gesture, nil if there is none
	gesture *model.EditorState
}

// Option configures a Session on creation.
type Option func(*Session)

// WithIDSource sets the source of IDs for new layers.
func WithIDSource(ids editor.IDSource) Option {
	return func(s *Session) { s.ids = ids }
}

// WithClock sets the clock used for snapshot timestamps and draft names.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithInitialState starts the session from the given state instead of a fresh
// one.
func WithInitialState(initial model.EditorState) Option {
	return func(s *Session) { s.history = history.New(initial) }
}

// New returns a new session starting from the initial editor state.
func New(opts ...Option) *Session {
	s := &Session{
		history: history.New(model.NewEditorState()),
		ids:     editor.NewSessionIDs(),
		now:     time.Now,
		log:     log.With().Str("component", "session").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state, i.E. the working copy if a gesture is open
// and the history's present otherwise.
func (s *Session) State() model.EditorState {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.current()
}

func (s *Session) current() model.EditorState {
	if s.gesture != nil {
		return *s.gesture
	}
	return s.history.Present()
}

// Dispatch applies the action and reports whether it applied.
//
// An applied action that changed the state becomes one undo step, unless a
// gesture is open (see Begin) or the action is bookkeeping (loading, error,
// user), which replaces the present without an undo step.
// An AddLayer without ID gets one assigned.
func (s *Session) Dispatch(a editor.Action) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.dispatch(a)
}

func (s *Session) dispatch(a editor.Action) bool {
	if add, ok := a.(editor.AddLayer); ok && add.Layer.ID == "" {
		add.Layer.ID = s.freshID()
		a = add
	}

	if editor.IsBookkeeping(a) {
		present, applied := editor.Reduce(s.history.Present(), a)
		s.history.Replace(present)
		if s.gesture != nil {
			working, _ := editor.Reduce(*s.gesture, a)
			s.gesture = &working
		}
		return applied
	}

	before := s.current()
	after, applied := editor.Reduce(before, a)
	if !applied {
		s.log.Debug().Str("action", a.Explain()).Msg("action did not apply (stale reference or no-op)")
		return false
	}
	if after.Equal(before) {
		return true
	}

	if s.gesture != nil {
		s.gesture = &after
	} else {
		s.history.Push(after)
	}
	s.log.Trace().Str("action", a.Explain()).Msg("applied")
	return true
}

// freshID draws IDs until one is found that no current layer uses.
func (s *Session) freshID() string {
	state := s.current()
	for {
		id := s.ids.NextID()
		if id != "" && state.LayerIndex(id) < 0 {
			return id
		}
		s.log.Warn().Str("id", id).Msg("generated layer ID already in use, drawing another")
	}
}

// AddLayer adds the layer with a fresh ID and returns the ID.
// Any ID already set on the layer is replaced.
func (s *Session) AddLayer(l model.Layer) (string, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	l.ID = s.freshID()
	return l.ID, s.dispatch(editor.AddLayer{Layer: l})
}

// Begin opens a gesture: until Commit or Cancel, dispatched actions only
// change a working copy, and Commit turns all of them into a single undo step.
// Begin while a gesture is open does nothing.
func (s *Session) Begin() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.gesture != nil {
		return
	}
	working := s.history.Present()
	s.gesture = &working
}

// Commit closes the open gesture, pushing its result as one undo step if it
// changed anything. It reports whether a step was pushed.
func (s *Session) Commit() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.gesture == nil {
		return false
	}
	working := *s.gesture
	s.gesture = nil
	if working.Equal(s.history.Present()) {
		return false
	}
	s.history.Push(working)
	return true
}

// Cancel closes the open gesture, dropping its changes.
func (s *Session) Cancel() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.gesture = nil
}

// InGesture reports whether a gesture is open.
func (s *Session) InGesture() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.gesture != nil
}

// Undo steps back one entry, cancelling any open gesture first.
func (s *Session) Undo() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.gesture = nil
	return s.history.Undo()
}

// Redo steps forward one entry, cancelling any open gesture first.
func (s *Session) Redo() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.gesture = nil
	return s.history.Redo()
}

func (s *Session) CanUndo() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.history.CanUndo()
}

func (s *Session) CanRedo() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.history.CanRedo()
}

// HistoryDepth returns the number of available undo and redo steps.
func (s *Session) HistoryDepth() (past, future int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.history.Depth()
}

// ClearHistory drops all undo and redo steps, e.g. after loading a draft.
func (s *Session) ClearHistory() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.gesture = nil
	s.history.Clear()
}

// Snapshot serializes the current state, stamped with the session's clock.
func (s *Session) Snapshot() snapshot.Snapshot {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return snapshot.Serialize(s.current(), s.now())
}

// ExportJSON renders the current state as a snapshot document.
func (s *Session) ExportJSON() ([]byte, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return snapshot.ExportJSON(s.current(), s.now())
}

// DraftName returns a default draft name for the current time.
func (s *Session) DraftName() string {
	return snapshot.DraftName(s.now())
}

// Restore loads the snapshot as one undoable step, replacing template, layers
// and filters. Non-fatal problems with the snapshot are returned as warnings.
func (s *Session) Restore(snap snapshot.Snapshot) []snapshot.Warning {
	restored, warnings := snapshot.Deserialize(snap)
	for _, w := range warnings {
		s.log.Warn().Stringer("warning", w).Msg("restoring snapshot")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.gesture = nil
	s.dispatch(editor.LoadSnapshot{
		Template: restored.Template,
		Layers:   restored.Layers,
		Filters:  restored.Filters,
	})
	return warnings
}
