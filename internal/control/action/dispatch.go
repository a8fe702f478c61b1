package action

import (
	"github.com/ja-he/memeplan/internal/editor"
	"github.com/ja-he/memeplan/internal/model"
)

// A Dispatcher applies editor actions to an editing session.
type Dispatcher interface {
	State() model.EditorState
	Dispatch(editor.Action) bool
}

// Dispatching is an Action that builds an editor action from the
// session's current state and dispatches it.
//
// The builder may decline (e.g. when no layer is active) by returning false,
// in which case nothing is dispatched.
type Dispatching struct {
	target  Dispatcher
	build   func(model.EditorState) (editor.Action, bool)
	explain string

	applied bool
}

// NewDispatching returns a new dispatching action.
func NewDispatching(target Dispatcher, explain string, build func(model.EditorState) (editor.Action, bool)) *Dispatching {
	return &Dispatching{
		target:  target,
		build:   build,
		explain: explain,
	}
}

// Do builds the editor action and dispatches it.
func (a *Dispatching) Do() {
	a.applied = false
	editorAction, ok := a.build(a.target.State())
	if !ok {
		return
	}
	a.applied = a.target.Dispatch(editorAction)
}

// Applied reports whether the session applied the last Do.
func (a *Dispatching) Applied() bool { return a.applied }

// Explain returns the explanation given on construction.
func (a *Dispatching) Explain() string { return a.explain }
