package panes

import (
	"math"

	"github.com/ja-he/memeplan/internal/input"
	"github.com/ja-he/memeplan/internal/ui"
)

// Composite is a generic wrapper pane without any rendering logic of its
// own.
type Composite struct {
	ui.BasePane

	drawables   []ui.Pane
	focussables []ui.Pane

	FocussedPane ui.Pane
}

// Draw draws this pane by drawing all its visible subpanes in order.
// Absent subpanes this draws nothing.
func (p *Composite) Draw() {
	for _, drawable := range p.drawables {
		if drawable.IsVisible() {
			drawable.Draw()
		}
	}
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane, i.E. the bounding box of its drawables.
func (p *Composite) Dimensions() (x, y, w, h int) {
	if len(p.drawables) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, drawable := range p.drawables {
		dx, dy, dw, dh := drawable.Dimensions()
		minX = min(minX, dx)
		minY = min(minY, dy)
		maxX = max(maxX, dx+dw)
		maxY = max(maxY, dy+dh)
	}
	return minX, minY, maxX - minX, maxY - minY
}

// FocusNext focusses the next visible focussable in the composite.
func (p *Composite) FocusNext() {
	for i := range p.focussables {
		if p.FocussedPane == p.focussables[i] {
			for j := i + 1; j < len(p.focussables); j++ {
				if p.focussables[j].IsVisible() {
					p.FocussedPane = p.focussables[j]
					return
				}
			}
		}
	}
}

// FocusPrev focusses the previous visible focussable in the composite.
func (p *Composite) FocusPrev() {
	for i := range p.focussables {
		if p.FocussedPane == p.focussables[i] {
			for j := i - 1; j >= 0; j-- {
				if p.focussables[j].IsVisible() {
					p.FocussedPane = p.focussables[j]
					return
				}
			}
		}
	}
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *Composite) CapturesInput() bool {
	childCaptures := p.FocussedPane != nil && p.FocussedPane.CapturesInput()
	selfCaptures := p.InputProcessor != nil && p.InputProcessor.CapturesInput()
	return childCaptures || selfCaptures
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpanes.
func (p *Composite) ProcessInput(key input.Key) bool {
	switch {
	case p.InputProcessor != nil && p.InputProcessor.CapturesInput():
		return p.InputProcessor.ProcessInput(key)
	case p.FocussedPane != nil && p.FocussedPane.CapturesInput():
		return p.FocussedPane.ProcessInput(key)
	default:
		return (p.FocussedPane != nil && p.FocussedPane.ProcessInput(key)) ||
			(p.InputProcessor != nil && p.InputProcessor.ProcessInput(key))
	}
}

// HasFocus indicates, whether this composite pane has focus.
func (p *Composite) HasFocus() bool {
	return p.Parent != nil && p.Parent.HasFocus() && p.Parent.Focusses() == p.Identify()
}

// Focusses returns the ID of the pane focussed by this composite.
func (p *Composite) Focusses() ui.PaneID {
	if p.FocussedPane == nil {
		return ui.NonePaneID
	}
	return p.FocussedPane.Identify()
}

// GetHelp returns the input help map for this processor.
func (p *Composite) GetHelp() input.Help {
	result := input.Help{}

	if p.InputProcessor != nil {
		for k, v := range p.InputProcessor.GetHelp() {
			result[k] = v
		}
	}
	if p.FocussedPane != nil {
		for k, v := range p.FocussedPane.GetHelp() {
			result[k] = v
		}
	}

	return result
}

// NewWrapperPane constructs and returns a new Composite.
func NewWrapperPane(
	drawables []ui.Pane,
	focussables []ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *Composite {
	p := &Composite{
		focussables: focussables,
		drawables:   drawables,
		BasePane: ui.BasePane{
			InputProcessor: inputProcessor,
			ID:             ui.GeneratePaneID(),
		},
	}
	if len(p.focussables) > 0 {
		p.FocussedPane = p.focussables[0]
	}
	for _, drawable := range p.drawables {
		drawable.SetParent(p)
	}
	return p
}
