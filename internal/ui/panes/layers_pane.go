package panes

import (
	"fmt"

	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/styling"
	"github.com/ja-he/memeplan/internal/ui"
	"github.com/ja-he/memeplan/internal/util"
)

// LayersPane lists the layers of the editor, topmost layer first.
type LayersPane struct {
	ui.LeafPane

	state func() model.EditorState
}

const swatchWidth = 2

// Draw draws this pane.
func (p *LayersPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LayerList)

	state := p.state()
	title := fmt.Sprintf("layers (%d)", len(state.ActiveLayers))
	p.Renderer.DrawText(x+1, y, w-2, 1, p.Stylesheet.LayerList.DefaultEmphasized().Bolded(), util.TruncateAt(title, w-2))

	if len(state.ActiveLayers) == 0 {
		p.Renderer.DrawText(x+1, y+2, w-2, 1, p.Stylesheet.LayerList.Italicized(), util.TruncateAt("no layers", w-2))
		return
	}

	row := y + 2
	for i := len(state.ActiveLayers) - 1; i >= 0 && row < y+h; i-- {
		l := state.ActiveLayers[i]

		rowStyle := p.Stylesheet.LayerList
		switch {
		case l.IsActive:
			rowStyle = p.Stylesheet.LayerListActive
		case !l.Properties.IsVisible():
			rowStyle = p.Stylesheet.LayerListHidden
		}

		p.Renderer.DrawBox(x, row, w, 1, rowStyle)
		p.Renderer.DrawBox(x+1, row, swatchWidth, 1, styling.LayerSwatch(l, rowStyle))
		labelX := x + 1 + swatchWidth + 1
		p.Renderer.DrawText(labelX, row, x+w-labelX, 1, rowStyle, util.TruncateAt(layerLabel(l), x+w-labelX))
		row++
	}
}

// layerLabel is a one-line description of a layer for the list, e.g.
// "HL text 'one does not simply'", where H and L mark hidden and locked
// layers.
func layerLabel(l model.Layer) string {
	flags := []byte{' ', ' '}
	if !l.Properties.IsVisible() {
		flags[0] = 'H'
	}
	if l.Properties.Locked {
		flags[1] = 'L'
	}

	content := l.DisplayContent()
	if l.Type.IsMedia() && l.Properties.MediaProperties != nil && l.Properties.Name != "" {
		content = l.Properties.Name
	}
	return fmt.Sprintf("%s %s '%s'", flags, l.Type, content)
}

// NewLayersPane constructs and returns a new LayersPane.
func NewLayersPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	state func() model.EditorState,
) *LayersPane {
	return &LayersPane{
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
