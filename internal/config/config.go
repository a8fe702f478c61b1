package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/memeplan/internal/editor"
	"github.com/ja-he/memeplan/internal/model"
)

// Config is the configuration data as present in a config file at
// '${MEMEPLAN_HOME}/config.yaml'.
type Config struct {
	API             API               `yaml:"api"`
	UserID          int               `yaml:"user-id"`
	Storage         StorageKind       `yaml:"storage"`
	TextDefaults    TextDefaults      `yaml:"text-defaults"`
	StickerDefaults StickerDefaults   `yaml:"sticker-defaults"`
	Keys            map[string]string `yaml:"keys"`
	Stylesheet      Stylesheet        `yaml:"stylesheet"`
}

// API configures access to the meme REST API.
type API struct {
	BaseURL   string `yaml:"base-url"`
	UserAgent string `yaml:"user-agent"`
	// Timeout in time.ParseDuration format, e.g. "10s".
	Timeout string `yaml:"timeout"`
}

// StorageKind selects where drafts are stored.
type StorageKind string

const (
	// StorageFiles stores drafts as files in '${MEMEPLAN_HOME}/drafts'.
	StorageFiles StorageKind = "files"
	// StorageAPI stores drafts through the API.
	StorageAPI StorageKind = "api"
)

// TextDefaults are the defaults for newly added text layers.
type TextDefaults struct {
	FontSize    float64         `yaml:"font-size"`
	FontFamily  string          `yaml:"font-family"`
	Color       string          `yaml:"color"`
	StrokeColor string          `yaml:"stroke-color"`
	StrokeWidth float64         `yaml:"stroke-width"`
	Align       model.TextAlign `yaml:"align"`
	Uppercase   *bool           `yaml:"uppercase"`
}

// StickerDefaults are the defaults for newly added sticker, image and GIF
// layers.
type StickerDefaults struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal           Styling `yaml:"normal"`
	NormalEmphasized Styling `yaml:"normal-emphasized"`

	LayerList         Styling `yaml:"layer-list"`
	LayerListActive   Styling `yaml:"layer-list-active"`
	LayerListHidden   Styling `yaml:"layer-list-hidden"`
	Properties        Styling `yaml:"properties"`
	PropertiesLabel   Styling `yaml:"properties-label"`
	Canvas            Styling `yaml:"canvas"`
	CanvasTemplate    Styling `yaml:"canvas-template"`
	CanvasLayer       Styling `yaml:"canvas-layer"`
	CanvasLayerActive Styling `yaml:"canvas-layer-active"`
	Prompt            Styling `yaml:"prompt"`

	Status      Styling `yaml:"status"`
	StatusError Styling `yaml:"status-error"`

	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`

	Help Styling `yaml:"help"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)
	if err := result.Validate(); err != nil {
		return defaultConfig, fmt.Errorf("invalid configuration (%w)", err)
	}

	return result, nil
}

// Validate checks values that can only be checked after parsing.
func (c Config) Validate() error {
	if _, err := c.APITimeout(); err != nil {
		return err
	}
	switch c.Storage {
	case StorageFiles, StorageAPI:
	default:
		return fmt.Errorf("unknown storage '%s' (expected '%s' or '%s')", c.Storage, StorageFiles, StorageAPI)
	}
	switch c.TextDefaults.Align {
	case model.AlignLeft, model.AlignCenter, model.AlignRight:
	default:
		return fmt.Errorf("unknown text alignment '%s'", c.TextDefaults.Align)
	}
	return nil
}

// APITimeout returns the parsed API timeout (zero if none is configured).
func (c Config) APITimeout() (time.Duration, error) {
	if c.API.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid api timeout '%s' (%w)", c.API.Timeout, err)
	}
	return d, nil
}

// LayerDefaults returns the property defaults for new layers.
func (c Config) LayerDefaults() editor.LayerDefaults {
	uppercase := c.TextDefaults.Uppercase != nil && *c.TextDefaults.Uppercase
	return editor.LayerDefaults{
		Text: model.TextProperties{
			FontSize:    c.TextDefaults.FontSize,
			FontFamily:  c.TextDefaults.FontFamily,
			Color:       c.TextDefaults.Color,
			StrokeColor: c.TextDefaults.StrokeColor,
			StrokeWidth: c.TextDefaults.StrokeWidth,
			TextAlign:   c.TextDefaults.Align,
			Uppercase:   uppercase,
		},
		Media: model.MediaProperties{
			Width:  c.StickerDefaults.Width,
			Height: c.StickerDefaults.Height,
		},
	}
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.API.BaseURL != "" {
		result.API.BaseURL = augment.API.BaseURL
	}
	if augment.API.UserAgent != "" {
		result.API.UserAgent = augment.API.UserAgent
	}
	if augment.API.Timeout != "" {
		result.API.Timeout = augment.API.Timeout
	}
	if augment.UserID != 0 {
		result.UserID = augment.UserID
	}
	if augment.Storage != "" {
		result.Storage = augment.Storage
	}

	result.TextDefaults = base.TextDefaults.augmentWith(augment.TextDefaults)
	if augment.StickerDefaults.Width > 0 {
		result.StickerDefaults.Width = augment.StickerDefaults.Width
	}
	if augment.StickerDefaults.Height > 0 {
		result.StickerDefaults.Height = augment.StickerDefaults.Height
	}

	// key bindings are merged per keyspec, an empty action unbinds
	result.Keys = make(map[string]string, len(base.Keys))
	for spec, action := range base.Keys {
		result.Keys[spec] = action
	}
	for spec, action := range augment.Keys {
		if action == "" {
			delete(result.Keys, spec)
		} else {
			result.Keys[spec] = action
		}
	}

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	return result
}

func (base TextDefaults) augmentWith(augment TextDefaults) TextDefaults {
	result := base
	if augment.FontSize > 0 {
		result.FontSize = augment.FontSize
	}
	if augment.FontFamily != "" {
		result.FontFamily = augment.FontFamily
	}
	if augment.Color != "" {
		result.Color = augment.Color
	}
	if augment.StrokeColor != "" {
		result.StrokeColor = augment.StrokeColor
	}
	if augment.StrokeWidth > 0 {
		result.StrokeWidth = augment.StrokeWidth
	}
	if augment.Align != "" {
		result.Align = augment.Align
	}
	if augment.Uppercase != nil {
		result.Uppercase = augment.Uppercase
	}
	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.NormalEmphasized.overwriteIfDefined(augment.NormalEmphasized)
	result.LayerList.overwriteIfDefined(augment.LayerList)
	result.LayerListActive.overwriteIfDefined(augment.LayerListActive)
	result.LayerListHidden.overwriteIfDefined(augment.LayerListHidden)
	result.Properties.overwriteIfDefined(augment.Properties)
	result.PropertiesLabel.overwriteIfDefined(augment.PropertiesLabel)
	result.Canvas.overwriteIfDefined(augment.Canvas)
	result.CanvasTemplate.overwriteIfDefined(augment.CanvasTemplate)
	result.CanvasLayer.overwriteIfDefined(augment.CanvasLayer)
	result.CanvasLayerActive.overwriteIfDefined(augment.CanvasLayerActive)
	result.Prompt.overwriteIfDefined(augment.Prompt)
	result.Status.overwriteIfDefined(augment.Status)
	result.StatusError.overwriteIfDefined(augment.StatusError)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)
	result.Help.overwriteIfDefined(augment.Help)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
