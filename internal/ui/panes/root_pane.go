package panes

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/memeplan/internal/input"
	"github.com/ja-he/memeplan/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	editorPane ui.Pane
	logPane    ui.Pane
	helpPane   ui.Pane

	subpanesMtx sync.Mutex
	subpanes    []ui.Pane

	inputProcessor input.ModalInputProcessor

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// activePanesInOrder returns the visible panes from bottommost to topmost.
func (p *RootPane) activePanesInOrder() []ui.Pane {
	active := []ui.Pane{p.editorPane}
	p.subpanesMtx.Lock()
	for i := range p.subpanes {
		if p.subpanes[i].IsVisible() {
			active = append(active, p.subpanes[i])
		}
	}
	p.subpanesMtx.Unlock()
	if p.logPane.IsVisible() {
		active = append(active, p.logPane)
	}
	if p.helpPane.IsVisible() {
		active = append(active, p.helpPane)
	}
	return active
}

// IsVisible returns true; the root is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	for _, pane := range p.activePanesInOrder() {
		p.log.Trace().Msgf("drawing %d...", pane.Identify())
		pane.Draw()
	}

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	if p.focussedPane().CapturesInput() {
		return true
	}
	return p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpanes.
func (p *RootPane) ProcessInput(key input.Key) bool {
	if p.inputProcessor.CapturesInput() {
		return p.inputProcessor.ProcessInput(key)
	}

	focussed := p.focussedPane()
	if focussed.CapturesInput() {
		return focussed.ProcessInput(key)
	}
	if focussed.ProcessInput(key) {
		return true
	}
	return p.inputProcessor.ProcessInput(key)
}

func (p *RootPane) Identify() ui.PaneID { return p.ID }
func (p *RootPane) HasFocus() bool      { return true }
func (p *RootPane) Focusses() ui.PaneID { return p.focussedPane().Identify() }
func (p *RootPane) FocusPrev()          {}
func (p *RootPane) FocusNext()          {}

// focussedPane is the topmost visible pane.
func (p *RootPane) focussedPane() ui.Pane {
	switch {
	case p.helpPane.IsVisible():
		return p.helpPane
	case p.logPane.IsVisible():
		return p.logPane
	}

	p.subpanesMtx.Lock()
	defer p.subpanesMtx.Unlock()
	for i := len(p.subpanes) - 1; i >= 0; i-- {
		if p.subpanes[i].IsVisible() {
			return p.subpanes[i]
		}
	}
	return p.editorPane
}

// SetParent panics, as the root can not have a parent.
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed
func (p *RootPane) ApplyModalOverlay(name string, overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(name, overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *RootPane) PopModalOverlays(index uint) {
	p.inputProcessor.PopModalOverlays(index)
}

// Mode returns the name of the topmost overlay of the root's own processor.
func (p *RootPane) Mode() string { return p.inputProcessor.Mode() }

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}

	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	for k, v := range p.focussedPane().GetHelp() {
		result[k] = v
	}

	return result
}

// PushSubpane allows adding a subpane over top of other subpanes, e.g. a
// text prompt. While visible, the topmost subpane is focussed.
func (p *RootPane) PushSubpane(pane ui.Pane) {
	pane.SetParent(p)
	p.subpanesMtx.Lock()
	defer p.subpanesMtx.Unlock()
	p.subpanes = append(p.subpanes, pane)
}

// PopSubpane pops the topmost subpane.
func (p *RootPane) PopSubpane() {
	p.subpanesMtx.Lock()
	defer p.subpanesMtx.Unlock()
	if len(p.subpanes) == 0 {
		return
	}
	p.subpanes = p.subpanes[:len(p.subpanes)-1]
}

// HasSubpanes returns whether any subpane is pushed.
func (p *RootPane) HasSubpanes() bool {
	p.subpanesMtx.Lock()
	defer p.subpanesMtx.Unlock()
	return len(p.subpanes) > 0
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	editorPane ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *RootPane {
	rootPane := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		editorPane:     editorPane,
		logPane:        logPane,
		helpPane:       helpPane,
		inputProcessor: inputProcessor,
		log:            log.With().Str("component", "root-pane").Logger(),
	}
	defer rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.Identify())

	editorPane.SetParent(rootPane)
	helpPane.SetParent(rootPane)
	logPane.SetParent(rootPane)

	return rootPane
}
