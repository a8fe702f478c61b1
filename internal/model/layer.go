package model

import "strings"

// LayerType is the variant tag of a Layer.
// It determines which property variant (text or media) is meaningful for the
// layer.
type LayerType string

const (
	// LayerTypeText is a layer of literal text.
	LayerTypeText LayerType = "text"
	// LayerTypeSticker is a layer showing a sticker asset.
	LayerTypeSticker LayerType = "sticker"
	// LayerTypeImage is a layer showing a raster image.
	LayerTypeImage LayerType = "image"
	// LayerTypeGIF is a layer showing an animated GIF.
	LayerTypeGIF LayerType = "gif"
)

// Valid reports whether the type is one of the known layer types.
func (t LayerType) Valid() bool {
	switch t {
	case LayerTypeText, LayerTypeSticker, LayerTypeImage, LayerTypeGIF:
		return true
	}
	return false
}

// IsMedia reports whether layers of this type reference a resource and carry
// media properties (size, flip).
func (t LayerType) IsMedia() bool {
	return t == LayerTypeSticker || t == LayerTypeImage || t == LayerTypeGIF
}

// TextAlign is the horizontal alignment of a text layer.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// A Layer is one placed element on the canvas.
//
// Its ID is assigned on creation and stays stable for the layer's lifetime; it
// is never reused. Content is literal text for text layers and a resource
// reference (URL or path) for all others.
type Layer struct {
	ID         string     `json:"id"`
	Type       LayerType  `json:"type"`
	Content    string     `json:"content"`
	Properties Properties `json:"properties"`
	IsActive   bool       `json:"isActive"`
}

// BaseProperties are the properties shared by all layer types.
//
// Opacity and Visible are optional; absent they default to 1 and true
// respectively (see OpacityOrDefault and IsVisible).
type BaseProperties struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Rotation float64  `json:"rotation"`
	Opacity  *float64 `json:"opacity,omitempty"`
	Visible  *bool    `json:"visible,omitempty"`
	Locked   bool     `json:"locked,omitempty"`
	ZIndex   int      `json:"zIndex"`
}

// TextProperties are the rendering hints meaningful for text layers.
type TextProperties struct {
	FontSize      float64   `json:"fontSize"`
	FontFamily    string    `json:"fontFamily"`
	Color         string    `json:"color"`
	StrokeColor   string    `json:"strokeColor"`
	StrokeWidth   float64   `json:"strokeWidth"`
	ShadowColor   string    `json:"shadowColor"`
	ShadowBlur    float64   `json:"shadowBlur"`
	ShadowOffsetX float64   `json:"shadowOffsetX"`
	ShadowOffsetY float64   `json:"shadowOffsetY"`
	TextAlign     TextAlign `json:"textAlign"`
	Uppercase     bool      `json:"uppercase"`
}

// MediaProperties are the rendering hints meaningful for sticker, image and
// GIF layers.
type MediaProperties struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	FlipH  bool    `json:"flipH"`
	FlipV  bool    `json:"flipV"`
	Name   string  `json:"name"`
}

// Properties combine the base properties with exactly one variant, keyed by
// the owning layer's type.
//
// All three are embedded so that the JSON form is a single flat object, as
// the rendering collaborator expects. After normalization (see
// Layer.Normalized) a text layer has a non-nil TextProperties and a nil
// MediaProperties, a media layer the other way around.
type Properties struct {
	BaseProperties
	*TextProperties
	*MediaProperties
}

// IsVisible returns the visibility flag, defaulting to true when absent.
func (p BaseProperties) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// OpacityOrDefault returns the opacity, defaulting to 1 when absent.
func (p BaseProperties) OpacityOrDefault() float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// Clone returns a deep copy of the properties, sharing no pointers with the
// original.
func (p Properties) Clone() Properties {
	result := p
	if p.Opacity != nil {
		result.Opacity = Pointer(*p.Opacity)
	}
	if p.Visible != nil {
		result.Visible = Pointer(*p.Visible)
	}
	if p.TextProperties != nil {
		text := *p.TextProperties
		result.TextProperties = &text
	}
	if p.MediaProperties != nil {
		media := *p.MediaProperties
		result.MediaProperties = &media
	}
	return result
}

// Clone returns a deep copy of the layer.
func (l Layer) Clone() Layer {
	result := l
	result.Properties = l.Properties.Clone()
	return result
}

// Normalized returns a copy of the layer in which exactly the property
// variant matching its type is present.
// Layers of unknown type are returned as deep copies without changes.
func (l Layer) Normalized() Layer {
	result := l.Clone()
	switch {
	case l.Type == LayerTypeText:
		if result.Properties.TextProperties == nil {
			result.Properties.TextProperties = &TextProperties{}
		}
		result.Properties.MediaProperties = nil
	case l.Type.IsMedia():
		if result.Properties.MediaProperties == nil {
			result.Properties.MediaProperties = &MediaProperties{}
		}
		result.Properties.TextProperties = nil
	}
	return result
}

// DisplayContent returns the content as it should be rendered, i.e. with the
// uppercase hint applied for text layers.
func (l Layer) DisplayContent() string {
	if l.Type == LayerTypeText && l.Properties.TextProperties != nil && l.Properties.Uppercase {
		return strings.ToUpper(l.Content)
	}
	return l.Content
}

// NewTextLayer returns a (not yet identified) text layer at the given position.
func NewTextLayer(content string, x, y float64, text TextProperties) Layer {
	return Layer{
		Type:    LayerTypeText,
		Content: content,
		Properties: Properties{
			BaseProperties: BaseProperties{X: x, Y: y, Visible: Pointer(true)},
			TextProperties: &text,
		},
	}
}

// NewMediaLayer returns a (not yet identified) media layer of the given type
// referencing the given resource.
func NewMediaLayer(t LayerType, ref string, x, y float64, media MediaProperties) Layer {
	return Layer{
		Type:    t,
		Content: ref,
		Properties: Properties{
			BaseProperties:  BaseProperties{X: x, Y: y, Visible: Pointer(true)},
			MediaProperties: &media,
		},
	}
}

// Pointer returns a pointer to a copy of v.
// It is mostly useful for building partial updates.
func Pointer[T any](v T) *T {
	return &v
}
