package model_test

import (
	"math"
	"testing"

	"github.com/ja-he/memeplan/internal/model"
)

func TestFiltersCSS(t *testing.T) {
	testcases := []struct {
		name     string
		filters  model.Filters
		expected string
	}{
		{"identity", model.DefaultFilters(), ""},
		{"brightness only", model.DefaultFilters().Merged(model.FilterUpdate{Brightness: model.Pointer(120.0)}), "brightness(120%)"},
		{
			"all, in order",
			model.Filters{Brightness: 50, Contrast: 150, Saturation: 0, Blur: 2.5, HueRotate: 90},
			"brightness(50%) contrast(150%) saturate(0%) blur(2.5px) hue-rotate(90deg)",
		},
		{"clamped", model.Filters{Brightness: 500, Contrast: 100, Saturation: 100, Blur: -3, HueRotate: 720}, "brightness(200%) hue-rotate(360deg)"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if result := tc.filters.CSS(); result != tc.expected {
				t.Errorf("expected '%s', got '%s'", tc.expected, result)
			}
		})
	}
}

func TestFiltersMerged(t *testing.T) {
	f := model.DefaultFilters().Merged(model.FilterUpdate{Blur: model.Pointer(4.0)})
	if f.Blur != 4 || f.Brightness != 100 || f.HueRotate != 0 {
		t.Errorf("unexpected merge result %#v", f)
	}
	if f.IsIdentity() {
		t.Error("blurred filters claim to be identity")
	}
	if !model.DefaultFilters().IsIdentity() {
		t.Error("default filters do not claim to be identity")
	}
}

func TestClampZoom(t *testing.T) {
	testcases := []struct{ in, expected float64 }{
		{10, 3.0},
		{-5, 0.1},
		{0, 0.1},
		{1.5, 1.5},
		{3.0, 3.0},
		{0.1, 0.1},
		{math.Inf(1), 3.0},
		{math.NaN(), model.DefaultZoom},
	}
	for _, tc := range testcases {
		if result := model.ClampZoom(tc.in); result != tc.expected {
			t.Errorf("ClampZoom(%f) = %f, expected %f", tc.in, result, tc.expected)
		}
	}
}
