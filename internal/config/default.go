package config

import (
	"github.com/ja-he/memeplan/internal/api"
	"github.com/ja-he/memeplan/internal/model"
)

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	uppercase := true
	return Config{
		API: API{
			BaseURL:   api.DefaultBaseURL,
			UserAgent: "memeplan",
			Timeout:   "15s",
		},
		UserID:  model.DefaultUserID,
		Storage: StorageFiles,
		TextDefaults: TextDefaults{
			FontSize:    32,
			FontFamily:  "Impact",
			Color:       "#ffffff",
			StrokeColor: "#000000",
			StrokeWidth: 2,
			Align:       model.AlignCenter,
			Uppercase:   &uppercase,
		},
		StickerDefaults: StickerDefaults{Width: 100, Height: 100},
		Keys:            DefaultKeys(),
		Stylesheet:      defaultStylesheet(colorschemeType),
	}
}

// DefaultKeys returns the default key bindings of the editor, mapping
// keyspecs to editor action names.
func DefaultKeys() map[string]string {
	return map[string]string{
		"u":     "undo",
		"<c-r>": "redo",

		"a":  "add-text",
		"e":  "edit-text",
		"dd": "delete-layer",

		"<tab>":   "next-layer",
		"<s-tab>": "prev-layer",
		"<esc>":   "deactivate",
		"K":       "raise",
		"J":       "lower",
		"v":       "toggle-visible",
		"L":       "toggle-lock",

		"h":       "nudge-left",
		"j":       "nudge-down",
		"k":       "nudge-up",
		"l":       "nudge-right",
		"<left>":  "nudge-left-fine",
		"<down>":  "nudge-down-fine",
		"<up>":    "nudge-up-fine",
		"<right>": "nudge-right-fine",
		"+":       "font-grow",
		"-":       "font-shrink",

		"zi": "zoom-in",
		"zo": "zoom-out",
		"zz": "reset-view",

		"fb": "brightness-up",
		"fB": "brightness-down",
		"fc": "contrast-up",
		"fC": "contrast-down",
		"fr": "reset-filters",

		"w":  "save-draft",
		"gl": "toggle-log",
		"?":  "toggle-help",
		"q":  "quit",
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			NormalEmphasized:  Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{}},
			LayerList:         Styling{Fg: "#f0f0f0", Bg: "#101010", Style: &FontStyle{}},
			LayerListActive:   Styling{Fg: "#000000", Bg: "#ffd75f", Style: &FontStyle{Bold: true}},
			LayerListHidden:   Styling{Fg: "#808080", Bg: "#101010", Style: &FontStyle{Italic: true}},
			Properties:        Styling{Fg: "#f0f0f0", Bg: "#181818", Style: &FontStyle{}},
			PropertiesLabel:   Styling{Fg: "#a0a0a0", Bg: "#181818", Style: &FontStyle{Bold: true}},
			Canvas:            Styling{Fg: "#606060", Bg: "#000000", Style: &FontStyle{}},
			CanvasTemplate:    Styling{Fg: "#c0c0c0", Bg: "#303030", Style: &FontStyle{}},
			CanvasLayer:       Styling{Fg: "#ffffff", Bg: "#0067ab", Style: &FontStyle{}},
			CanvasLayerActive: Styling{Fg: "#000000", Bg: "#ffd75f", Style: &FontStyle{Bold: true}},
			Prompt:            Styling{Fg: "#ffffff", Bg: "#606060", Style: &FontStyle{}},
			Status:            Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			StatusError:       Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
			Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		NormalEmphasized:  Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		LayerList:         Styling{Fg: "#202020", Bg: "#fafafa", Style: &FontStyle{}},
		LayerListActive:   Styling{Fg: "#000000", Bg: "#ffd75f", Style: &FontStyle{Bold: true}},
		LayerListHidden:   Styling{Fg: "#a0a0a0", Bg: "#fafafa", Style: &FontStyle{Italic: true}},
		Properties:        Styling{Fg: "#202020", Bg: "#f0f0f0", Style: &FontStyle{}},
		PropertiesLabel:   Styling{Fg: "#606060", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
		Canvas:            Styling{Fg: "#c0c0c0", Bg: "#ffffff", Style: &FontStyle{}},
		CanvasTemplate:    Styling{Fg: "#404040", Bg: "#e0e0e0", Style: &FontStyle{}},
		CanvasLayer:       Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{}},
		CanvasLayerActive: Styling{Fg: "#000000", Bg: "#ffd75f", Style: &FontStyle{Bold: true}},
		Prompt:            Styling{Fg: "#000000", Bg: "#cccccc", Style: &FontStyle{}},
		Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		StatusError:       Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
		LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
		LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
		LogEntryTime:      Styling{Fg: "#f0f0f0", Bg: "#ffffff", Style: &FontStyle{}},
		Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
	}
}
