package model

import (
	"math"
	"reflect"
)

const (
	// MinZoom is the smallest zoom factor the canvas can be viewed at.
	MinZoom = 0.1
	// MaxZoom is the largest zoom factor the canvas can be viewed at.
	MaxZoom = 3.0
	// DefaultZoom is the zoom factor of a fresh editor.
	DefaultZoom = 1.0
	// DefaultUserID is the user a fresh editor acts on behalf of.
	DefaultUserID = 1
)

// EditorState is the complete state of one editing session.
//
// Values of EditorState are treated as immutable snapshots: whoever derives a
// new state from an old one must copy the parts it changes (see Layer.Clone)
// instead of writing through shared slices or pointers.
type EditorState struct {
	SelectedTemplate *TemplateDetail `json:"selectedTemplate"`
	ActiveLayers     []Layer         `json:"activeLayers"`
	Filters          Filters         `json:"filters"`

	Zoom float64 `json:"zoom"`
	PanX float64 `json:"panX"`
	PanY float64 `json:"panY"`

	CurrentUserID int    `json:"currentUserId"`
	IsLoading     bool   `json:"isLoading"`
	Error         string `json:"error,omitempty"`
}

// NewEditorState returns the initial state of an editing session.
func NewEditorState() EditorState {
	return EditorState{
		SelectedTemplate: nil,
		ActiveLayers:     []Layer{},
		Filters:          DefaultFilters(),
		Zoom:             DefaultZoom,
		CurrentUserID:    DefaultUserID,
	}
}

// ClampZoom clamps the given zoom factor to [MinZoom, MaxZoom].
// NaN is mapped to DefaultZoom.
func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) {
		return DefaultZoom
	}
	return clamp(zoom, MinZoom, MaxZoom)
}

// LayerIndex returns the stack index of the layer with the given ID, or -1.
func (s EditorState) LayerIndex(id string) int {
	for i := range s.ActiveLayers {
		if s.ActiveLayers[i].ID == id {
			return i
		}
	}
	return -1
}

// Layer returns the layer with the given ID, if present.
func (s EditorState) Layer(id string) (Layer, bool) {
	i := s.LayerIndex(id)
	if i < 0 {
		return Layer{}, false
	}
	return s.ActiveLayers[i], true
}

// ActiveLayer returns the currently active layer, if any.
func (s EditorState) ActiveLayer() (Layer, bool) {
	for _, l := range s.ActiveLayers {
		if l.IsActive {
			return l, true
		}
	}
	return Layer{}, false
}

// CountActive returns the number of layers flagged active.
// For any state produced by the reducer this is 0 or 1.
func (s EditorState) CountActive() int {
	n := 0
	for _, l := range s.ActiveLayers {
		if l.IsActive {
			n++
		}
	}
	return n
}

// Equal reports whether both states are deeply equal.
func (s EditorState) Equal(other EditorState) bool {
	return reflect.DeepEqual(s, other)
}
