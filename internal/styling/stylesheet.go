package styling

import (
	"fmt"

	"github.com/ja-he/memeplan/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal           DrawStyling
	NormalEmphasized DrawStyling

	LayerList         DrawStyling
	LayerListActive   DrawStyling
	LayerListHidden   DrawStyling
	Properties        DrawStyling
	PropertiesLabel   DrawStyling
	Canvas            DrawStyling
	CanvasTemplate    DrawStyling
	CanvasLayer       DrawStyling
	CanvasLayerActive DrawStyling
	Prompt            DrawStyling

	Status      DrawStyling
	StatusError DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling

	Help DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	entries := []struct {
		name   string
		target *DrawStyling
		source config.Styling
	}{
		{"normal", &stylesheet.Normal, c.Normal},
		{"normal-emphasized", &stylesheet.NormalEmphasized, c.NormalEmphasized},
		{"layer-list", &stylesheet.LayerList, c.LayerList},
		{"layer-list-active", &stylesheet.LayerListActive, c.LayerListActive},
		{"layer-list-hidden", &stylesheet.LayerListHidden, c.LayerListHidden},
		{"properties", &stylesheet.Properties, c.Properties},
		{"properties-label", &stylesheet.PropertiesLabel, c.PropertiesLabel},
		{"canvas", &stylesheet.Canvas, c.Canvas},
		{"canvas-template", &stylesheet.CanvasTemplate, c.CanvasTemplate},
		{"canvas-layer", &stylesheet.CanvasLayer, c.CanvasLayer},
		{"canvas-layer-active", &stylesheet.CanvasLayerActive, c.CanvasLayerActive},
		{"prompt", &stylesheet.Prompt, c.Prompt},
		{"status", &stylesheet.Status, c.Status},
		{"status-error", &stylesheet.StatusError, c.StatusError},
		{"log-default", &stylesheet.LogDefault, c.LogDefault},
		{"log-title-box", &stylesheet.LogTitleBox, c.LogTitleBox},
		{"log-entry-type-error", &stylesheet.LogEntryTypeError, c.LogEntryTypeError},
		{"log-entry-type-warn", &stylesheet.LogEntryTypeWarn, c.LogEntryTypeWarn},
		{"log-entry-type-info", &stylesheet.LogEntryTypeInfo, c.LogEntryTypeInfo},
		{"log-entry-type-debug", &stylesheet.LogEntryTypeDebug, c.LogEntryTypeDebug},
		{"log-entry-type-trace", &stylesheet.LogEntryTypeTrace, c.LogEntryTypeTrace},
		{"log-entry-location", &stylesheet.LogEntryLocation, c.LogEntryLocation},
		{"log-entry-time", &stylesheet.LogEntryTime, c.LogEntryTime},
		{"help", &stylesheet.Help, c.Help},
	}
	for _, e := range entries {
		style, err := StyleFromConfig(e.source)
		if err != nil {
			return nil, fmt.Errorf("invalid styling '%s' (%w)", e.name, err)
		}
		*e.target = style
	}

	return &stylesheet, nil
}
