package processors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/memeplan/internal/control/action"
	"github.com/ja-he/memeplan/internal/input"
)

// TextInputProcessor is a SimpleInputProcessor editing a single line of text.
//
// Runes are inserted at the cursor; backspace, delete, the arrow keys, home,
// end and <c-u> edit the line. Further mappings (e.g. <cr> to submit, <esc> to
// cancel) are given on construction and take precedence over the built-in
// editing keys.
type TextInputProcessor struct {
	mappings map[input.Key]action.Action

	text   []rune
	cursor int
}

// NewTextInputProcessor returns a pointer to a new TextInputProcessor with the
// given initial text and the cursor at its end.
// Each mapping's keyspec must be exactly one key.
func NewTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	initial string,
) (*TextInputProcessor, error) {
	keyMappings := map[input.Key]action.Action{}
	for keyspec, a := range mappings {
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to keys (%w)", keyspec, err)
		}
		if len(keys) != 1 {
			return nil, fmt.Errorf("keyspec '%s' for text processor has not exactly one key (but %d)", keyspec, len(keys))
		}
		keyMappings[keys[0]] = a
	}
	p := &TextInputProcessor{mappings: keyMappings}
	p.SetText(initial)
	return p, nil
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied".
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	if a, ok := p.mappings[key]; ok {
		a.Do()
		return true
	}

	switch key.Key {
	case tcell.KeyRune:
		p.text = append(p.text[:p.cursor], append([]rune{key.Ch}, p.text[p.cursor:]...)...)
		p.cursor++
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if p.cursor == 0 {
			return false
		}
		p.text = append(p.text[:p.cursor-1], p.text[p.cursor:]...)
		p.cursor--
	case tcell.KeyDelete:
		if p.cursor == len(p.text) {
			return false
		}
		p.text = append(p.text[:p.cursor], p.text[p.cursor+1:]...)
	case tcell.KeyLeft:
		if p.cursor > 0 {
			p.cursor--
		}
	case tcell.KeyRight:
		if p.cursor < len(p.text) {
			p.cursor++
		}
	case tcell.KeyHome:
		p.cursor = 0
	case tcell.KeyEnd:
		p.cursor = len(p.text)
	case tcell.KeyCtrlU:
		p.text = p.text[p.cursor:]
		p.cursor = 0
	default:
		return false
	}
	return true
}

// CapturesInput always returns true, a text prompt takes all input.
func (p *TextInputProcessor) CapturesInput() bool {
	return true
}

// GetHelp returns the input help for the configured mappings.
func (p *TextInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for k, a := range p.mappings {
		result[input.ToConfigIdentifierString(k)] = a.Explain()
	}
	return result
}

// Text returns the current text.
func (p *TextInputProcessor) Text() string {
	return string(p.text)
}

// Cursor returns the cursor position as an index into the text's runes.
func (p *TextInputProcessor) Cursor() int {
	return p.cursor
}

// SetText replaces the text and moves the cursor to its end.
func (p *TextInputProcessor) SetText(text string) {
	p.text = []rune(text)
	p.cursor = len(p.text)
}
