package panes

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/styling"
	"github.com/ja-he/memeplan/internal/ui"
	"github.com/ja-he/memeplan/internal/util"
)

// PropertiesPane shows the properties of the active layer and the canvas
// filters.
type PropertiesPane struct {
	ui.LeafPane

	state func() model.EditorState
}

type propertyRow struct {
	label string
	value string
}

// Draw draws this pane.
func (p *PropertiesPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Properties)

	state := p.state()
	rows := []propertyRow{}
	if active, ok := state.ActiveLayer(); ok {
		rows = append(rows, propertyRow{label: "layer", value: active.ID})
		rows = append(rows, layerPropertyRows(active)...)
	} else {
		rows = append(rows, propertyRow{label: "layer", value: "none active"})
	}
	rows = append(rows, propertyRow{})
	rows = append(rows, filterRows(state.Filters)...)

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(r.label))
	}
	valueX := x + 1 + labelWidth + 1

	for i, r := range rows {
		row := y + i
		if row >= y+h {
			break
		}
		p.Renderer.DrawText(x+1, row, labelWidth, 1, p.Stylesheet.PropertiesLabel, r.label)
		p.Renderer.DrawText(valueX, row, x+w-valueX, 1, p.Stylesheet.Properties, util.TruncateAt(r.value, x+w-valueX))
	}
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// layerPropertyRows lists the properties meaningful for the layer's type.
func layerPropertyRows(l model.Layer) []propertyRow {
	props := l.Properties
	rows := []propertyRow{
		{"type", string(l.Type)},
		{"content", l.DisplayContent()},
		{"position", num(props.X) + ", " + num(props.Y)},
		{"rotation", num(props.Rotation)},
		{"opacity", num(props.OpacityOrDefault())},
		{"visible", strconv.FormatBool(props.IsVisible())},
		{"locked", strconv.FormatBool(props.Locked)},
		{"z-index", strconv.Itoa(props.ZIndex)},
	}

	switch {
	case props.TextProperties != nil:
		text := props.TextProperties
		rows = append(rows,
			propertyRow{"font", text.FontFamily + " " + num(text.FontSize)},
			propertyRow{"color", text.Color},
			propertyRow{"stroke", text.StrokeColor + " " + num(text.StrokeWidth)},
			propertyRow{"align", string(text.TextAlign)},
			propertyRow{"uppercase", strconv.FormatBool(text.Uppercase)},
		)
		if text.ShadowColor != "" {
			rows = append(rows, propertyRow{"shadow", text.ShadowColor + " " + num(text.ShadowBlur)})
		}
	case props.MediaProperties != nil:
		media := props.MediaProperties
		rows = append(rows, propertyRow{"size", num(media.Width) + "x" + num(media.Height)})
		if media.FlipH || media.FlipV {
			rows = append(rows, propertyRow{"flip", flipString(media.FlipH, media.FlipV)})
		}
		if media.Name != "" {
			rows = append(rows, propertyRow{"name", media.Name})
		}
	}
	return rows
}

func flipString(h, v bool) string {
	switch {
	case h && v:
		return "both"
	case h:
		return "horizontal"
	default:
		return "vertical"
	}
}

func filterRows(f model.Filters) []propertyRow {
	return []propertyRow{
		{"brightness", num(f.Brightness) + "%"},
		{"contrast", num(f.Contrast) + "%"},
		{"saturation", num(f.Saturation) + "%"},
		{"blur", num(f.Blur) + "px"},
		{"hue", num(f.HueRotate) + "deg"},
	}
}

// NewPropertiesPane constructs and returns a new PropertiesPane.
func NewPropertiesPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	state func() model.EditorState,
) *PropertiesPane {
	return &PropertiesPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		state: state,
	}
}
