package processors_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/memeplan/internal/control/action"
	"github.com/ja-he/memeplan/internal/input"
	"github.com/ja-he/memeplan/internal/input/processors"
)

func TestModalInputProcessor(t *testing.T) {
	x := input.Key{Key: tcell.KeyRune, Ch: 'x'}
	y := input.Key{Key: tcell.KeyRune, Ch: 'y'}
	z := input.Key{Key: tcell.KeyRune, Ch: 'z'}

	t.Run("CapturesInput", func(t *testing.T) {
		base := dummySIP{captures: false}
		m := processors.NewModalInputProcessor(&base)
		if m.CapturesInput() {
			t.Error("claims to capture input, initially")
		}
		base.captures = true
		if !m.CapturesInput() {
			t.Error("does not capture input despite its base doing so")
		}
		m.ApplyModalOverlay("quiet", &dummySIP{captures: false})
		if m.CapturesInput() {
			t.Error("captures input despite its overlay not capturing")
		}
	})

	t.Run("overlays", func(t *testing.T) {
		a := dummySIP{inputs: map[input.Key]bool{x: true}}
		b := dummySIP{inputs: map[input.Key]bool{y: true}}
		c := dummySIP{inputs: map[input.Key]bool{z: true}}
		m := processors.NewModalInputProcessor(&a)

		check := func(msg string, expected [3]bool, mode string) {
			t.Helper()
			actual := [3]bool{m.ProcessInput(x), m.ProcessInput(y), m.ProcessInput(z)}
			if actual != expected {
				t.Errorf("%s: processed %v, expected %v", msg, actual, expected)
			}
			if m.Mode() != mode {
				t.Errorf("%s: mode '%s', expected '%s'", msg, m.Mode(), mode)
			}
		}

		check("base", [3]bool{true, false, false}, "")

		if i := m.ApplyModalOverlay("b", &b); i != 0 {
			t.Errorf("got overlay index %d instead of 0", i)
		}
		check("b on top", [3]bool{false, true, false}, "b")

		if i := m.ApplyModalOverlay("c", &c); i != 1 {
			t.Errorf("got overlay index %d instead of 1", i)
		}
		check("c on top", [3]bool{false, false, true}, "c")

		if err := m.PopModalOverlay(); err != nil {
			t.Errorf("unexpected error: %s", err)
		}
		check("b on top again", [3]bool{false, true, false}, "b")

		if err := m.PopModalOverlay(); err != nil {
			t.Errorf("unexpected error: %s", err)
		}
		if err := m.PopModalOverlay(); err == nil {
			t.Error("expected error popping from empty overlay stack")
		}

		m.ApplyModalOverlay("b", &b)
		m.ApplyModalOverlay("c", &c)
		m.ApplyModalOverlay("a", &a)
		m.PopModalOverlays(1000)
		check("no-op pop", [3]bool{true, false, false}, "a")
		m.PopModalOverlays(1)
		check("popped to b", [3]bool{false, true, false}, "b")
		m.PopModalOverlays(0)
		check("popped to base", [3]bool{true, false, false}, "")
	})

	t.Run("GetHelp", func(t *testing.T) {
		a := dummySIP{help: map[string]string{"asdf": "qwer"}}
		m := processors.NewModalInputProcessor(&a)
		if help := m.GetHelp(); len(help) != 1 || help["asdf"] != "qwer" {
			t.Error("help looks unexpected:", help)
		}
		m.ApplyModalOverlay("empty", &dummySIP{help: map[string]string{}})
		if help := m.GetHelp(); len(help) != 0 {
			t.Error("overlay help looks unexpected:", help)
		}
	})
}

func TestTextInputProcessor(t *testing.T) {
	typeString := func(p *processors.TextInputProcessor, s string) {
		for _, r := range s {
			p.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: r})
		}
	}
	special := func(k tcell.Key) input.Key { return input.Key{Key: k} }

	t.Run("editing", func(t *testing.T) {
		p, err := processors.NewTextInputProcessor(nil, "one does")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if p.Cursor() != 8 {
			t.Errorf("expected cursor at end, got %d", p.Cursor())
		}

		typeString(p, " not")
		if p.Text() != "one does not" {
			t.Errorf("unexpected text '%s'", p.Text())
		}

		p.ProcessInput(special(tcell.KeyHome))
		p.ProcessInput(special(tcell.KeyDelete))
		typeString(p, "O")
		if p.Text() != "One does not" || p.Cursor() != 1 {
			t.Errorf("unexpected text '%s' (cursor %d)", p.Text(), p.Cursor())
		}

		p.ProcessInput(special(tcell.KeyEnd))
		p.ProcessInput(special(tcell.KeyBackspace2))
		p.ProcessInput(special(tcell.KeyLeft))
		typeString(p, "é")
		if p.Text() != "One does néo" {
			t.Errorf("unexpected text '%s'", p.Text())
		}

		p.ProcessInput(special(tcell.KeyCtrlU))
		if p.Text() != "o" || p.Cursor() != 0 {
			t.Errorf("unexpected text '%s' after <c-u> (cursor %d)", p.Text(), p.Cursor())
		}

		if p.ProcessInput(special(tcell.KeyBackspace2)) {
			t.Error("backspace at start should not apply")
		}
		if p.ProcessInput(special(tcell.KeyF1)) {
			t.Error("unmapped key should not apply")
		}
	})

	t.Run("mappings", func(t *testing.T) {
		submitted := ""
		var p *processors.TextInputProcessor
		p, err := processors.NewTextInputProcessor(
			map[input.Keyspec]action.Action{
				"<cr>": action.NewSimple(func() string { return "submit" }, func() { submitted = p.Text() }),
			},
			"",
		)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		typeString(p, "hi")
		p.ProcessInput(special(tcell.KeyEnter))
		if submitted != "hi" {
			t.Errorf("expected submit of 'hi', got '%s'", submitted)
		}
		if help := p.GetHelp(); help["<cr>"] != "submit" {
			t.Errorf("unexpected help %v", help)
		}
		if !p.CapturesInput() {
			t.Error("text processor must capture input")
		}
	})

	t.Run("invalid mappings", func(t *testing.T) {
		for _, spec := range []input.Keyspec{"<cr", "ab"} {
			_, err := processors.NewTextInputProcessor(map[input.Keyspec]action.Action{spec: action.NewSimple(func() string { return "" }, func() {})}, "")
			if err == nil {
				t.Errorf("expected error for '%s'", spec)
			}
		}
	})
}

type dummySIP struct {
	captures bool
	inputs   map[input.Key]bool
	help     map[string]string
}

func (d *dummySIP) CapturesInput() bool           { return d.captures }
func (d *dummySIP) ProcessInput(k input.Key) bool { return d.inputs[k] }
func (d *dummySIP) GetHelp() input.Help           { return d.help }
