// Package editor implements the editing state machine: a closed set of
// actions and the pure reducer applying them to editor state snapshots.
package editor

import (
	"fmt"

	"github.com/ja-he/memeplan/internal/model"
)

// Action is one of the editor's state transitions.
//
// The set of actions is closed; every action is one of the types declared in
// this package.
type Action interface {
	// Explain returns a short human-readable description of the action, e.g.
	// for logs or the help pane.
	Explain() string

	reduce(model.EditorState) (model.EditorState, bool)
}

// Direction is the direction in which a layer is moved in the stack.
type Direction string

const (
	// Up moves a layer towards the top of the stack (higher index).
	Up Direction = "up"
	// Down moves a layer towards the bottom of the stack (lower index).
	Down Direction = "down"
)

// SetSelectedTemplate replaces the template and clears all layers, even if
// the template is the same as before.
type SetSelectedTemplate struct {
	Template *model.TemplateDetail
}

// AddLayer appends a layer to the top of the stack.
// The layer must carry a fresh, non-empty ID; the editing session assigns
// one if it is left empty.
type AddLayer struct {
	Layer model.Layer
}

// UpdateLayer shallow-merges an update into the layer with the given ID.
type UpdateLayer struct {
	ID     string
	Update model.LayerUpdate
}

// DeleteLayer removes the layer with the given ID.
type DeleteLayer struct {
	ID string
}

// SetActiveLayer makes the layer with the given ID the only active one.
// An empty ID deactivates all layers.
type SetActiveLayer struct {
	ID string
}

// ReorderLayers swaps the layer with the given ID with its neighbor in the
// given direction.
type ReorderLayers struct {
	ID        string
	Direction Direction
}

// ToggleLayerVisibility flips the visibility of the layer with the given ID.
type ToggleLayerVisibility struct {
	ID string
}

// ToggleLayerLock flips the lock of the layer with the given ID.
type ToggleLayerLock struct {
	ID string
}

// SetFilter shallow-merges an update into the filters.
type SetFilter struct {
	Update model.FilterUpdate
}

// ResetFilters restores the identity filters.
type ResetFilters struct{}

// SetZoom sets the (clamped) zoom factor.
type SetZoom struct {
	Value float64
}

// SetPan sets the canvas pan offset.
type SetPan struct {
	X, Y float64
}

// ResetEditor restores the initial state, keeping the current user.
type ResetEditor struct{}

// SetCurrentUser sets the user on whose behalf the editor acts.
type SetCurrentUser struct {
	UserID int
}

// SetLoading sets the loading flag.
type SetLoading struct {
	Loading bool
}

// SetError stores an error message for display and ends loading.
type SetError struct {
	Message string
}

// ClearError clears a stored error message.
type ClearError struct{}

// LoadSnapshot replaces template, layers and filters with restored ones.
type LoadSnapshot struct {
	Template *model.TemplateDetail
	Layers   []model.Layer
	Filters  model.Filters
}

func (a SetSelectedTemplate) Explain() string {
	if a.Template == nil {
		return "unselect template"
	}
	return fmt.Sprintf("select template '%s'", a.Template.Name)
}
func (a AddLayer) Explain() string {
	return fmt.Sprintf("add %s layer '%s'", a.Layer.Type, a.Layer.ID)
}
func (a UpdateLayer) Explain() string { return fmt.Sprintf("update layer '%s'", a.ID) }
func (a DeleteLayer) Explain() string { return fmt.Sprintf("delete layer '%s'", a.ID) }
func (a SetActiveLayer) Explain() string {
	if a.ID == "" {
		return "deactivate all layers"
	}
	return fmt.Sprintf("activate layer '%s'", a.ID)
}
func (a ReorderLayers) Explain() string {
	return fmt.Sprintf("move layer '%s' %s", a.ID, a.Direction)
}
func (a ToggleLayerVisibility) Explain() string {
	return fmt.Sprintf("toggle visibility of layer '%s'", a.ID)
}
func (a ToggleLayerLock) Explain() string { return fmt.Sprintf("toggle lock of layer '%s'", a.ID) }
func (a SetFilter) Explain() string { return "adjust filters" }
func (a ResetFilters) Explain() string { return "reset filters" }
func (a SetZoom) Explain() string { return fmt.Sprintf("zoom to %.2f", a.Value) }
func (a SetPan) Explain() string { return fmt.Sprintf("pan to (%.0f,%.0f)", a.X, a.Y) }
func (a ResetEditor) Explain() string { return "reset editor" }
func (a SetCurrentUser) Explain() string { return fmt.Sprintf("set user %d", a.UserID) }
func (a SetLoading) Explain() string { return fmt.Sprintf("set loading %t", a.Loading) }
func (a SetError) Explain() string { return fmt.Sprintf("set error '%s'", a.Message) }
func (a ClearError) Explain() string { return "clear error" }
func (a LoadSnapshot) Explain() string {
	return fmt.Sprintf("load snapshot (%d layers)", len(a.Layers))
}

// IsBookkeeping reports whether the action only touches session bookkeeping
// (user, loading, error) and should therefore not become an undo step.
func IsBookkeeping(a Action) bool {
	switch a.(type) {
	case SetCurrentUser, SetLoading, SetError, ClearError:
		return true
	}
	return false
}
