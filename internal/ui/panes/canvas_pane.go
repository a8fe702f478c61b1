package panes

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/styling"
	"github.com/ja-he/memeplan/internal/ui"
	"github.com/ja-he/memeplan/internal/util"
)

const (
	// TemplateWidth is the width of the template area in canvas units.
	TemplateWidth = 400.0
	// TemplateHeight is the height of the template area in canvas units.
	TemplateHeight = 400.0

	// canvas units covered by one terminal cell at zoom 1
	unitsPerColumn = 8.0
	unitsPerRow    = 16.0
)

// CanvasPane shows a schematic preview of the canvas: the template area with
// its field regions and a box per visible layer, under the editor's zoom and
// pan.
type CanvasPane struct {
	ui.LeafPane

	state func() model.EditorState
}

// CanvasToCell maps a point in canvas units to a cell offset relative to the
// pane's origin.
func CanvasToCell(x, y float64, s model.EditorState) (col, row int) {
	zoom := model.ClampZoom(s.Zoom)
	col = int(math.Floor((x - s.PanX) * zoom / unitsPerColumn))
	row = int(math.Floor((y - s.PanY) * zoom / unitsPerRow))
	return col, row
}

// cellSpan is the number of cells a canvas length covers, at least one.
func cellSpan(length, zoom, unitsPerCell float64) int {
	return max(1, int(math.Round(length*zoom/unitsPerCell)))
}

// Draw draws this pane.
func (p *CanvasPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Canvas)

	state := p.state()
	zoom := model.ClampZoom(state.Zoom)

	tcol, trow := CanvasToCell(0, 0, state)
	tw, th := cellSpan(TemplateWidth, zoom, unitsPerColumn), cellSpan(TemplateHeight, zoom, unitsPerRow)
	p.Renderer.DrawBox(x+tcol, y+trow, tw, th, p.Stylesheet.CanvasTemplate)

	if t := state.SelectedTemplate; t != nil {
		p.Renderer.DrawText(x+tcol, y+trow, tw, 1, p.Stylesheet.CanvasTemplate.Italicized(), util.TruncateAt(t.Name, tw))
		for _, f := range t.Fields {
			fx, fy := f.XPos/100*TemplateWidth, f.YPos/100*TemplateHeight
			col, row := CanvasToCell(fx, fy, state)
			fw := cellSpan(f.Width/100*TemplateWidth, zoom, unitsPerColumn)
			fh := cellSpan(f.Height/100*TemplateHeight, zoom, unitsPerRow)
			fieldStyle := p.Stylesheet.CanvasTemplate.DarkenedBG(10)
			p.Renderer.DrawBox(x+col, y+row, fw, fh, fieldStyle)
			p.Renderer.DrawText(x+col, y+row, fw, 1, fieldStyle.Italicized(), util.TruncateAt(f.Name, fw))
		}
	}

	for _, l := range state.ActiveLayers {
		if !l.Properties.IsVisible() {
			continue
		}
		col, row, lw, lh := layerCells(l, state)

		style := p.Stylesheet.CanvasLayer
		if l.IsActive {
			style = p.Stylesheet.CanvasLayerActive
		}
		switch l.Type {
		case model.LayerTypeText:
			swatch := styling.LayerSwatch(l, style)
			p.Renderer.DrawBox(x+col, y+row, lw, lh, style)
			p.Renderer.DrawText(x+col, y+row, lw, lh, swatch, l.DisplayContent())
		default:
			p.Renderer.DrawBox(x+col, y+row, lw, lh, styling.LayerSwatch(l, style))
			p.Renderer.DrawText(x+col, y+row, lw, 1, style, util.TruncateAt(string(l.Type), lw))
		}
	}
}

// layerCells returns the cell box (relative to the pane's origin) covered by
// the layer.
// Text boxes are sized by their content, media boxes by their size.
func layerCells(l model.Layer, s model.EditorState) (col, row, w, h int) {
	zoom := model.ClampZoom(s.Zoom)
	col, row = CanvasToCell(l.Properties.X, l.Properties.Y, s)

	switch {
	case l.Properties.MediaProperties != nil:
		w = cellSpan(l.Properties.Width, zoom, unitsPerColumn)
		h = cellSpan(l.Properties.Height, zoom, unitsPerRow)
	default:
		w = max(1, runewidth.StringWidth(l.DisplayContent()))
		h = 1
		if l.Properties.TextProperties != nil {
			h = cellSpan(l.Properties.FontSize, zoom, unitsPerRow)
		}
	}
	return col, row, w, h
}

// NewCanvasPane constructs and returns a new CanvasPane.
func NewCanvasPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	state func() model.EditorState,
) *CanvasPane {
	return &CanvasPane{
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
