package panes

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/styling"
	"github.com/ja-he/memeplan/internal/ui"
	"github.com/ja-he/memeplan/internal/util"
)

// StatusPane is a status bar that displays the input mode, a summary of the
// editor state and the latest message.
type StatusPane struct {
	ui.LeafPane

	state        func() model.EditorState
	historyDepth func() (past, future int)
	mode         func() string
	pending      func() string
	message      func() (msg string, isError bool)
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	modeStr := modeString(p.mode())
	modeWidth := runewidth.StringWidth(modeStr)
	p.Renderer.DrawBox(x, y, modeWidth+2, h, bgStyleEmph)
	p.Renderer.DrawText(x+1, y, modeWidth, 1, bgStyleEmph.Bolded(), modeStr)

	past, future := p.historyDepth()
	state := p.state()
	summary := strings.Join(statusSegments(state, past, future), " | ")
	p.Renderer.DrawText(x+modeWidth+3, y, w-modeWidth-3, 1, bgStyle, summary)

	right := p.pending()
	rightStyle := bgStyle.Italicized()
	if msg, isError := p.message(); msg != "" {
		right = msg
		if isError {
			rightStyle = p.Stylesheet.StatusError
		}
	}
	if state.Error != "" {
		right = state.Error
		rightStyle = p.Stylesheet.StatusError
	}
	if right == "" {
		return
	}
	right = util.TruncateAt(right, w/2)
	rightWidth := runewidth.StringWidth(right)
	p.Renderer.DrawText(x+w-rightWidth-1, y+h-1, rightWidth, 1, rightStyle, right)
}

func modeString(mode string) string {
	if mode == "" {
		mode = "normal"
	}
	return "-- " + strings.ToUpper(mode) + " --"
}

// statusSegments summarizes the editor state in short segments, e.g.
// "drake", "3 layers", "active layer-2", "zoom 150%", "undo 4/0".
func statusSegments(s model.EditorState, past, future int) []string {
	segments := []string{}

	if s.SelectedTemplate != nil {
		segments = append(segments, s.SelectedTemplate.Name)
	} else {
		segments = append(segments, "no template")
	}

	switch n := len(s.ActiveLayers); n {
	case 1:
		segments = append(segments, "1 layer")
	default:
		segments = append(segments, fmt.Sprintf("%d layers", n))
	}

	if active, ok := s.ActiveLayer(); ok {
		segments = append(segments, "active "+active.ID)
	}

	segments = append(segments, fmt.Sprintf("zoom %.0f%%", s.Zoom*100))
	if s.PanX != 0 || s.PanY != 0 {
		segments = append(segments, fmt.Sprintf("pan %.0f,%.0f", s.PanX, s.PanY))
	}
	if !s.Filters.IsIdentity() {
		segments = append(segments, "filters "+s.Filters.CSS())
	}

	segments = append(segments, fmt.Sprintf("undo %d/%d", past, future))

	if s.IsLoading {
		segments = append(segments, "loading...")
	}

	return segments
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	state func() model.EditorState,
	historyDepth func() (past, future int),
	mode func() string,
	pending func() string,
	message func() (msg string, isError bool),
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		state:        state,
		historyDepth: historyDepth,
		mode:         mode,
		pending:      pending,
		message:      message,
	}
}
