package panes

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/memeplan/internal/input/processors"
	"github.com/ja-he/memeplan/internal/styling"
	"github.com/ja-he/memeplan/internal/ui"
)

// PromptPane is a single-line text prompt, e.g. for editing a text layer's
// content. It places the text cursor while drawn.
type PromptPane struct {
	ui.LeafPane

	label  string
	editor *processors.TextInputProcessor

	cursorController ui.CursorLocationRequestHandler
}

// Draw draws this pane and requests the text cursor at the edit position.
func (p *PromptPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Prompt)

	labelStyle := p.Stylesheet.Prompt.DefaultEmphasized().Bolded()
	labelWidth := runewidth.StringWidth(p.label)
	p.Renderer.DrawText(x+1, y, labelWidth, 1, labelStyle, p.label)

	textX := x + 1 + labelWidth + 1
	text := []rune(p.editor.Text())
	cursor := p.editor.Cursor()

	// scroll so that the cursor stays within the pane
	available := x + w - 1 - textX
	start := 0
	for start < cursor && runewidth.StringWidth(string(text[start:cursor])) >= available {
		start++
	}
	p.Renderer.DrawText(textX, y, available, 1, p.Stylesheet.Prompt, string(text[start:]))

	p.cursorController.Put(
		ui.CursorLocation{X: textX + runewidth.StringWidth(string(text[start:cursor])), Y: y},
		p.requesterID(),
	)
}

// Close withdraws the pane's cursor request.
func (p *PromptPane) Close() {
	p.cursorController.Delete(p.requesterID())
}

func (p *PromptPane) requesterID() string {
	return fmt.Sprintf("prompt-pane-%d", p.Identify())
}

// NewPromptPane constructs and returns a new PromptPane, editing text via the
// given text input processor.
func NewPromptPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	label string,
	editor *processors.TextInputProcessor,
	cursorController ui.CursorLocationRequestHandler,
) *PromptPane {
	return &PromptPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: processors.NewModalInputProcessor(editor),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		label:            label,
		editor:           editor,
		cursorController: cursorController,
	}
}
