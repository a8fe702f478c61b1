package model

// LayerUpdate is a partial update of a layer.
// Nil fields are left untouched when the update is merged.
//
// The layer's ID and Type can not be updated.
type LayerUpdate struct {
	Content    *string           `json:"content,omitempty" yaml:"content,omitempty"`
	IsActive   *bool             `json:"isActive,omitempty" yaml:"active,omitempty"`
	Properties *PropertiesUpdate `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// PropertiesUpdate is a partial update of a layer's properties.
// Nil fields are left untouched; variant fields are only applied when the
// layer carries the matching variant.
type PropertiesUpdate struct {
	X        *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y        *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Rotation *float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Opacity  *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Visible  *bool    `json:"visible,omitempty" yaml:"visible,omitempty"`
	Locked   *bool    `json:"locked,omitempty" yaml:"locked,omitempty"`
	ZIndex   *int     `json:"zIndex,omitempty" yaml:"z-index,omitempty"`

	FontSize      *float64   `json:"fontSize,omitempty" yaml:"font-size,omitempty"`
	FontFamily    *string    `json:"fontFamily,omitempty" yaml:"font-family,omitempty"`
	Color         *string    `json:"color,omitempty" yaml:"color,omitempty"`
	StrokeColor   *string    `json:"strokeColor,omitempty" yaml:"stroke-color,omitempty"`
	StrokeWidth   *float64   `json:"strokeWidth,omitempty" yaml:"stroke-width,omitempty"`
	ShadowColor   *string    `json:"shadowColor,omitempty" yaml:"shadow-color,omitempty"`
	ShadowBlur    *float64   `json:"shadowBlur,omitempty" yaml:"shadow-blur,omitempty"`
	ShadowOffsetX *float64   `json:"shadowOffsetX,omitempty" yaml:"shadow-offset-x,omitempty"`
	ShadowOffsetY *float64   `json:"shadowOffsetY,omitempty" yaml:"shadow-offset-y,omitempty"`
	TextAlign     *TextAlign `json:"textAlign,omitempty" yaml:"text-align,omitempty"`
	Uppercase     *bool      `json:"uppercase,omitempty" yaml:"uppercase,omitempty"`

	Width  *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	FlipH  *bool    `json:"flipH,omitempty" yaml:"flip-h,omitempty"`
	FlipV  *bool    `json:"flipV,omitempty" yaml:"flip-v,omitempty"`
	Name   *string  `json:"name,omitempty" yaml:"name,omitempty"`
}

// Merged returns a copy of the layer with the update shallow-merged into it.
// Properties are merged key by key, so keys omitted from the update keep their
// previous values.
func (l Layer) Merged(u LayerUpdate) Layer {
	result := l.Clone()
	if u.Content != nil {
		result.Content = *u.Content
	}
	if u.IsActive != nil {
		result.IsActive = *u.IsActive
	}
	if u.Properties != nil {
		result.Properties = result.Properties.merge(*u.Properties)
	}
	return result
}

// merge applies the update to p in place; p must not share pointers with any
// snapshot (i.E. must be a fresh clone).
func (p Properties) merge(u PropertiesUpdate) Properties {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setS := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setB := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	setF(&p.X, u.X)
	setF(&p.Y, u.Y)
	setF(&p.Rotation, u.Rotation)
	if u.Opacity != nil {
		p.Opacity = Pointer(*u.Opacity)
	}
	if u.Visible != nil {
		p.Visible = Pointer(*u.Visible)
	}
	setB(&p.Locked, u.Locked)
	if u.ZIndex != nil {
		p.ZIndex = *u.ZIndex
	}

	if t := p.TextProperties; t != nil {
		setF(&t.FontSize, u.FontSize)
		setS(&t.FontFamily, u.FontFamily)
		setS(&t.Color, u.Color)
		setS(&t.StrokeColor, u.StrokeColor)
		setF(&t.StrokeWidth, u.StrokeWidth)
		setS(&t.ShadowColor, u.ShadowColor)
		setF(&t.ShadowBlur, u.ShadowBlur)
		setF(&t.ShadowOffsetX, u.ShadowOffsetX)
		setF(&t.ShadowOffsetY, u.ShadowOffsetY)
		if u.TextAlign != nil {
			t.TextAlign = *u.TextAlign
		}
		setB(&t.Uppercase, u.Uppercase)
	}

	if m := p.MediaProperties; m != nil {
		setF(&m.Width, u.Width)
		setF(&m.Height, u.Height)
		setB(&m.FlipH, u.FlipH)
		setB(&m.FlipV, u.FlipV)
		setS(&m.Name, u.Name)
	}

	return p
}

// IsEmpty reports whether the update would change nothing.
func (u LayerUpdate) IsEmpty() bool {
	return u.Content == nil && u.IsActive == nil && (u.Properties == nil || *u.Properties == PropertiesUpdate{})
}
