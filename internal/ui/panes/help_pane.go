package panes

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/memeplan/internal/input"
	"github.com/ja-he/memeplan/internal/styling"
	"github.com/ja-he/memeplan/internal/ui"
	"github.com/ja-he/memeplan/internal/util"
)

// A HelpPane is a pane that displays a help popup.
// For example, it could display a list of key mappings and their actions.
type HelpPane struct {
	ui.LeafPane

	content func() input.Help
}

// Draw draws the help popup, sorted by action description.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const pad = 2
	const maxKeyWidth = 16

	content := sortedMappings(p.content())

	keyWidth := 0
	for _, m := range content {
		keyWidth = max(keyWidth, runewidth.StringWidth(m.mapping))
	}
	keyWidth = min(keyWidth, maxKeyWidth)

	keyOffset := x + border
	descriptionOffset := keyOffset + keyWidth + pad
	for i, m := range content {
		row := y + border + i
		if row >= y+h-border {
			break
		}
		keys := util.TruncateAt(m.mapping, keyWidth)
		keysWidth := runewidth.StringWidth(keys)
		p.Renderer.DrawText(keyOffset+keyWidth-keysWidth, row, keysWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), keys)
		p.Renderer.DrawText(descriptionOffset, row, x+w-border-descriptionOffset, 1, p.Stylesheet.Help.Italicized(), m.action)
	}
}

type mappingAndAction = struct {
	mapping string
	action  string
}
type byAction []mappingAndAction

func (a byAction) Len() int      { return len(a) }
func (a byAction) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a byAction) Less(i, j int) bool {
	if a[i].action == a[j].action {
		return a[i].mapping < a[j].mapping
	}
	return a[i].action < a[j].action
}

func sortedMappings(help input.Help) []mappingAndAction {
	content := make([]mappingAndAction, 0, len(help))
	for mapping, action := range help {
		content = append(content, mappingAndAction{mapping: mapping, action: action})
	}
	sort.Sort(byAction(content))
	return content
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	condition func() bool,
	content func() input.Help,
	inputProcessor input.ModalInputProcessor,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				Visible:        condition,
				InputProcessor: inputProcessor,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		content: content,
	}
}
