package styling

import (
	"github.com/ja-he/memeplan/internal/model"
)

// marker colors of media layers, which carry no color of their own
var mediaSwatchColors = map[model.LayerType]string{
	model.LayerTypeSticker: "#c2edab",
	model.LayerTypeImage:   "#ccebff",
	model.LayerTypeGIF:     "#ffccf7",
}

// LayerSwatch returns the styling of a small color marker for the given layer.
//
// Text layers are shown in their text color, media layers in a fixed color per
// layer type. Hidden layers get a dimmed swatch. If the layer's color can not
// be parsed, the fallback is returned.
func LayerSwatch(l model.Layer, fallback DrawStyling) DrawStyling {
	hex, ok := mediaSwatchColors[l.Type]
	if l.Type == model.LayerTypeText && l.Properties.TextProperties != nil {
		hex, ok = l.Properties.Color, true
	}
	if !ok {
		return fallback
	}

	bg, err := ParseColor(hex)
	if err != nil {
		return fallback
	}
	var result DrawStyling = StyleFromColors(contrastingForeground(bg), bg)
	if !l.Properties.IsVisible() {
		result = result.DefaultDimmed()
	}
	return result
}
