package panes

import (
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/memeplan/internal/input"
	"github.com/ja-he/memeplan/internal/potatolog"
	"github.com/ja-he/memeplan/internal/styling"
	"github.com/ja-he/memeplan/internal/ui"
	"github.com/ja-he/memeplan/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.LogTitleBox, util.PadCenter(p.titleString(), w))

	const levelLen = len(" error ")
	indent := x + levelLen + 1

	entries := p.logReader.Get()
	row := y + 2
	for i := len(entries) - 1; i >= 0 && row < y+h; i-- {
		entry := entries[i]
		level := field(entry, "level")

		p.Renderer.DrawText(x, row, levelLen, 1, p.levelStyle(level), util.PadCenter(level, levelLen))

		col := indent
		for _, part := range []struct {
			text  string
			style styling.DrawStyling
		}{
			{field(entry, "message"), p.Stylesheet.LogDefault},
			{field(entry, "caller"), p.Stylesheet.LogEntryLocation},
			{field(entry, "time"), p.Stylesheet.LogEntryTime},
		} {
			if part.text == "" {
				continue
			}
			p.Renderer.DrawText(col, row, x+w-col, 1, part.style, part.text)
			col += runewidth.StringWidth(part.text) + 1
		}
		row++

		for _, k := range extraKeys(entry) {
			if row >= y+h {
				break
			}
			p.Renderer.DrawText(indent, row, w, 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(indent+runewidth.StringWidth(k)+2, row, w, 1, p.Stylesheet.LogEntryLocation, field(entry, k))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

func field(entry potatolog.LogEntry, key string) string {
	v, ok := entry[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// extraKeys returns the entry's keys other than the standard ones, sorted.
func extraKeys(entry potatolog.LogEntry) []string {
	keys := []string{}
	for k := range entry {
		switch k {
		case "caller", "message", "time", "level":
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
	inputProcessor input.ModalInputProcessor,
) *LogPane {
	return &LogPane{
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
		titleString: titleString,
		logReader:   logReader,
	}
}
