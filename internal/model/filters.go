package model

import (
	"strconv"
	"strings"
)

// Filters are the whole-canvas image adjustments.
// Brightness, contrast and saturation are percentages (identity 100), blur is
// in pixels and hue rotation in degrees (identity 0 each).
type Filters struct {
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Saturation float64 `json:"saturation"`
	Blur       float64 `json:"blur"`
	HueRotate  float64 `json:"hueRotate"`
}

// DefaultFilters returns the identity filters.
func DefaultFilters() Filters {
	return Filters{
		Brightness: 100,
		Contrast:   100,
		Saturation: 100,
		Blur:       0,
		HueRotate:  0,
	}
}

// FilterUpdate is a partial update of the filters; nil knobs stay unchanged.
type FilterUpdate struct {
	Brightness *float64 `json:"brightness,omitempty" yaml:"brightness,omitempty"`
	Contrast   *float64 `json:"contrast,omitempty" yaml:"contrast,omitempty"`
	Saturation *float64 `json:"saturation,omitempty" yaml:"saturation,omitempty"`
	Blur       *float64 `json:"blur,omitempty" yaml:"blur,omitempty"`
	HueRotate  *float64 `json:"hueRotate,omitempty" yaml:"hue-rotate,omitempty"`
}

// Merged returns the filters with the update shallow-merged into them.
func (f Filters) Merged(u FilterUpdate) Filters {
	if u.Brightness != nil {
		f.Brightness = *u.Brightness
	}
	if u.Contrast != nil {
		f.Contrast = *u.Contrast
	}
	if u.Saturation != nil {
		f.Saturation = *u.Saturation
	}
	if u.Blur != nil {
		f.Blur = *u.Blur
	}
	if u.HueRotate != nil {
		f.HueRotate = *u.HueRotate
	}
	return f
}

// IsIdentity reports whether the filters would leave an image unchanged.
func (f Filters) IsIdentity() bool {
	return f == DefaultFilters()
}

// CSS renders the filters as a CSS filter function list for the rendering
// collaborator, e.g. "brightness(120%) blur(2px)".
//
// Knobs are clamped to their renderable ranges and identity knobs are left
// out; identity filters render as the empty string.
func (f Filters) CSS() string {
	brightness := clamp(f.Brightness, 0, 200)
	contrast := clamp(f.Contrast, 0, 200)
	saturation := clamp(f.Saturation, 0, 200)
	blur := clamp(f.Blur, 0, 100)
	hue := clamp(f.HueRotate, 0, 360)

	parts := []string{}
	if brightness != 100 {
		parts = append(parts, "brightness("+formatNumber(brightness)+"%)")
	}
	if contrast != 100 {
		parts = append(parts, "contrast("+formatNumber(contrast)+"%)")
	}
	if saturation != 100 {
		parts = append(parts, "saturate("+formatNumber(saturation)+"%)")
	}
	if blur > 0 {
		parts = append(parts, "blur("+formatNumber(blur)+"px)")
	}
	if hue != 0 {
		parts = append(parts, "hue-rotate("+formatNumber(hue)+"deg)")
	}
	return strings.Join(parts, " ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
