package editor

import (
	"github.com/ja-he/memeplan/internal/model"
)

// Reduce applies the action to the given state and returns the resulting
// state.
//
// It never modifies the given state (nor anything it shares with other
// snapshots) and performs no I/O.
//
// The returned flag reports whether the action applied. Actions referencing an
// unknown layer ID, edge-of-stack reorders and malformed layers do not apply;
// for those the state is returned unchanged.
func Reduce(state model.EditorState, action Action) (model.EditorState, bool) {
	if action == nil {
		return state, false
	}
	return action.reduce(state)
}

// copyLayers returns a new slice holding the same layers.
// The layers themselves are shared and must be cloned before changing anything
// reachable through a pointer.
func copyLayers(layers []model.Layer) []model.Layer {
	result := make([]model.Layer, len(layers))
	copy(result, layers)
	return result
}

// deactivateAllBut clears the active flag on every layer except the one at
// index keep (pass -1 to keep none).
func deactivateAllBut(layers []model.Layer, keep int) {
	for i := range layers {
		if i != keep {
			layers[i].IsActive = false
		}
	}
}

func (a SetSelectedTemplate) reduce(s model.EditorState) (model.EditorState, bool) {
	s.SelectedTemplate = a.Template
	s.ActiveLayers = []model.Layer{}
	s.Error = ""
	return s, true
}

func (a AddLayer) reduce(s model.EditorState) (model.EditorState, bool) {
	if a.Layer.ID == "" || !a.Layer.Type.Valid() || s.LayerIndex(a.Layer.ID) >= 0 {
		return s, false
	}

	layer := a.Layer.Normalized()
	layer.Properties.ZIndex = nextZIndex(s.ActiveLayers)

	layers := append(copyLayers(s.ActiveLayers), layer)
	if layer.IsActive {
		deactivateAllBut(layers, len(layers)-1)
	}

	s.ActiveLayers = layers
	s.Error = ""
	return s, true
}

// nextZIndex returns the zIndex for a layer put on top of the stack: its
// index, or one above the highest zIndex if deletes have left gaps below that.
func nextZIndex(layers []model.Layer) int {
	z := len(layers)
	for _, l := range layers {
		z = max(z, l.Properties.ZIndex+1)
	}
	return z
}

func (a UpdateLayer) reduce(s model.EditorState) (model.EditorState, bool) {
	i := s.LayerIndex(a.ID)
	if i < 0 {
		return s, false
	}

	layers := copyLayers(s.ActiveLayers)
	layers[i] = layers[i].Merged(a.Update)
	if layers[i].IsActive {
		deactivateAllBut(layers, i)
	}

	s.ActiveLayers = layers
	s.Error = ""
	return s, true
}

func (a DeleteLayer) reduce(s model.EditorState) (model.EditorState, bool) {
	i := s.LayerIndex(a.ID)
	if i < 0 {
		return s, false
	}

	layers := make([]model.Layer, 0, len(s.ActiveLayers)-1)
	layers = append(layers, s.ActiveLayers[:i]...)
	layers = append(layers, s.ActiveLayers[i+1:]...)

	s.ActiveLayers = layers
	s.Error = ""
	return s, true
}

func (a SetActiveLayer) reduce(s model.EditorState) (model.EditorState, bool) {
	if a.ID != "" && s.LayerIndex(a.ID) < 0 {
		return s, false
	}

	layers := copyLayers(s.ActiveLayers)
	for i := range layers {
		layers[i].IsActive = layers[i].ID == a.ID
	}

	s.ActiveLayers = layers
	s.Error = ""
	return s, true
}

func (a ReorderLayers) reduce(s model.EditorState) (model.EditorState, bool) {
	i := s.LayerIndex(a.ID)
	if i < 0 {
		return s, false
	}

	var j int
	switch a.Direction {
	case Up:
		j = i + 1
	case Down:
		j = i - 1
	default:
		return s, false
	}
	if j < 0 || j >= len(s.ActiveLayers) {
		return s, false
	}

	layers := copyLayers(s.ActiveLayers)
	layers[i], layers[j] = layers[j], layers[i]
	for k := range layers {
		layers[k].Properties.ZIndex = k
	}

	s.ActiveLayers = layers
	return s, true
}

func (a ToggleLayerVisibility) reduce(s model.EditorState) (model.EditorState, bool) {
	i := s.LayerIndex(a.ID)
	if i < 0 {
		return s, false
	}

	layers := copyLayers(s.ActiveLayers)
	visible := !layers[i].Properties.IsVisible()
	layers[i] = layers[i].Clone()
	layers[i].Properties.Visible = &visible

	s.ActiveLayers = layers
	return s, true
}

func (a ToggleLayerLock) reduce(s model.EditorState) (model.EditorState, bool) {
	i := s.LayerIndex(a.ID)
	if i < 0 {
		return s, false
	}

	layers := copyLayers(s.ActiveLayers)
	layers[i].Properties.Locked = !layers[i].Properties.Locked

	s.ActiveLayers = layers
	return s, true
}

func (a SetFilter) reduce(s model.EditorState) (model.EditorState, bool) {
	s.Filters = s.Filters.Merged(a.Update)
	return s, true
}

func (a ResetFilters) reduce(s model.EditorState) (model.EditorState, bool) {
	s.Filters = model.DefaultFilters()
	return s, true
}

func (a SetZoom) reduce(s model.EditorState) (model.EditorState, bool) {
	s.Zoom = model.ClampZoom(a.Value)
	return s, true
}

func (a SetPan) reduce(s model.EditorState) (model.EditorState, bool) {
	s.PanX, s.PanY = a.X, a.Y
	return s, true
}

func (a ResetEditor) reduce(s model.EditorState) (model.EditorState, bool) {
	result := model.NewEditorState()
	result.CurrentUserID = s.CurrentUserID
	return result, true
}

func (a SetCurrentUser) reduce(s model.EditorState) (model.EditorState, bool) {
	s.CurrentUserID = a.UserID
	s.Error = ""
	return s, true
}

func (a SetLoading) reduce(s model.EditorState) (model.EditorState, bool) {
	s.IsLoading = a.Loading
	return s, true
}

func (a SetError) reduce(s model.EditorState) (model.EditorState, bool) {
	s.Error = a.Message
	s.IsLoading = false
	return s, true
}

func (a ClearError) reduce(s model.EditorState) (model.EditorState, bool) {
	s.Error = ""
	return s, true
}

func (a LoadSnapshot) reduce(s model.EditorState) (model.EditorState, bool) {
	seen := make(map[string]struct{}, len(a.Layers))
	layers := make([]model.Layer, 0, len(a.Layers))
	lastActive := -1
	for _, l := range a.Layers {
		if l.ID == "" {
			continue
		}
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		layers = append(layers, l.Normalized())
		if l.IsActive {
			lastActive = len(layers) - 1
		}
	}
	if lastActive >= 0 {
		deactivateAllBut(layers, lastActive)
	}

	s.SelectedTemplate = a.Template
	s.ActiveLayers = layers
	s.Filters = a.Filters
	s.Error = ""
	return s, true
}
