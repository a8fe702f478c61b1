package editor

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/memeplan/internal/model"
)

// LayerDefaults are the property defaults for layers created by scripts (and
// the TUI).
type LayerDefaults struct {
	Text  model.TextProperties
	Media model.MediaProperties
}

// Step is one scripted editing step as read from YAML.
//
// Example:
//
//	- action: add-text
//	  content: "one does not simply"
//	  active: true
//	  properties: {x: 40, y: 20, font-size: 48}
//	- action: raise
//	  layer: "#0"
//	- action: set-filter
//	  filters: {brightness: 120}
//
// Layers are referenced by ID, by stack index ("#0" is the bottom), or by one
// of "top", "bottom" and "active". An omitted reference means "active".
type Step struct {
	Action     string                  `yaml:"action"`
	Layer      string                  `yaml:"layer,omitempty"`
	Content    *string                 `yaml:"content,omitempty"`
	Active     *bool                   `yaml:"active,omitempty"`
	Properties *model.PropertiesUpdate `yaml:"properties,omitempty"`
	Filters    *model.FilterUpdate     `yaml:"filters,omitempty"`
	Zoom       *float64                `yaml:"zoom,omitempty"`
	X          *float64                `yaml:"x,omitempty"`
	Y          *float64                `yaml:"y,omitempty"`
}

var layerCreatingSteps = map[string]model.LayerType{
	"add-text":    model.LayerTypeText,
	"add-sticker": model.LayerTypeSticker,
	"add-image":   model.LayerTypeImage,
	"add-gif":     model.LayerTypeGIF,
}

var knownSteps = map[string]struct{}{
	"update": {}, "delete": {}, "activate": {}, "deactivate": {},
	"raise": {}, "lower": {}, "toggle-visible": {}, "toggle-lock": {},
	"set-filter": {}, "reset-filters": {}, "zoom": {}, "pan": {}, "reset": {},
}

// ParseScript parses a YAML list of steps.
// Unknown step actions are an error.
func ParseScript(data []byte) ([]Step, error) {
	steps := []Step{}
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}
	for i, step := range steps {
		_, creating := layerCreatingSteps[step.Action]
		_, known := knownSteps[step.Action]
		if !creating && !known {
			return nil, fmt.Errorf("step %d: unknown action '%s'", i, step.Action)
		}
	}
	return steps, nil
}

// Resolve turns the step into an Action against the given state.
// Layer-creating steps return an AddLayer without ID, which the editing
// session fills in.
func (st Step) Resolve(s model.EditorState, defaults LayerDefaults) (Action, error) {
	if t, ok := layerCreatingSteps[st.Action]; ok {
		content := ""
		if st.Content != nil {
			content = *st.Content
		}
		var layer model.Layer
		if t == model.LayerTypeText {
			layer = model.NewTextLayer(content, 0, 0, defaults.Text)
		} else {
			if content == "" {
				return nil, fmt.Errorf("'%s' requires content (a resource reference)", st.Action)
			}
			layer = model.NewMediaLayer(t, content, 0, 0, defaults.Media)
		}
		layer = layer.Merged(model.LayerUpdate{IsActive: st.Active, Properties: st.Properties})
		return AddLayer{Layer: layer}, nil
	}

	switch st.Action {
	case "set-filter":
		if st.Filters == nil {
			return nil, fmt.Errorf("'set-filter' requires filters")
		}
		return SetFilter{Update: *st.Filters}, nil
	case "reset-filters":
		return ResetFilters{}, nil
	case "zoom":
		if st.Zoom == nil {
			return nil, fmt.Errorf("'zoom' requires zoom")
		}
		return SetZoom{Value: *st.Zoom}, nil
	case "pan":
		x, y := s.PanX, s.PanY
		if st.X != nil {
			x = *st.X
		}
		if st.Y != nil {
			y = *st.Y
		}
		return SetPan{X: x, Y: y}, nil
	case "reset":
		return ResetEditor{}, nil
	case "deactivate":
		return SetActiveLayer{ID: ""}, nil
	}

	id, err := ResolveLayerRef(s, st.Layer)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", st.Action, err)
	}

	switch st.Action {
	case "update":
		return UpdateLayer{ID: id, Update: model.LayerUpdate{Content: st.Content, IsActive: st.Active, Properties: st.Properties}}, nil
	case "delete":
		return DeleteLayer{ID: id}, nil
	case "activate":
		return SetActiveLayer{ID: id}, nil
	case "raise":
		return ReorderLayers{ID: id, Direction: Up}, nil
	case "lower":
		return ReorderLayers{ID: id, Direction: Down}, nil
	case "toggle-visible":
		return ToggleLayerVisibility{ID: id}, nil
	case "toggle-lock":
		return ToggleLayerLock{ID: id}, nil
	}

	return nil, fmt.Errorf("unknown action '%s'", st.Action)
}

// ResolveLayerRef resolves a layer reference ("active", "top", "bottom",
// "#<index>" or a literal ID) against the given state.
// Literal IDs are returned as-is, even if no such layer exists.
func ResolveLayerRef(s model.EditorState, ref string) (string, error) {
	switch {
	case ref == "" || ref == "active":
		l, ok := s.ActiveLayer()
		if !ok {
			return "", fmt.Errorf("no active layer")
		}
		return l.ID, nil
	case ref == "top" || ref == "bottom":
		if len(s.ActiveLayers) == 0 {
			return "", fmt.Errorf("no layers")
		}
		if ref == "top" {
			return s.ActiveLayers[len(s.ActiveLayers)-1].ID, nil
		}
		return s.ActiveLayers[0].ID, nil
	case strings.HasPrefix(ref, "#"):
		i, err := strconv.Atoi(ref[1:])
		if err != nil {
			return "", fmt.Errorf("invalid layer index '%s' (%w)", ref, err)
		}
		if i < 0 || i >= len(s.ActiveLayers) {
			return "", fmt.Errorf("layer index %d out of range (have %d layers)", i, len(s.ActiveLayers))
		}
		return s.ActiveLayers[i].ID, nil
	default:
		return ref, nil
	}
}
