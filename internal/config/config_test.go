package config_test

import (
	"testing"
	"time"

	"github.com/ja-he/memeplan/internal/config"
	"github.com/ja-he/memeplan/internal/model"
)

func TestParseConfigAugmentDefaults(t *testing.T) {
	t.Run("empty keeps defaults", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte{})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		def := config.Default(config.Dark)
		if c.API != def.API || c.Storage != config.StorageFiles || c.TextDefaults.FontFamily != "Impact" {
			t.Errorf("unexpected config %#v", c)
		}
		if len(c.Keys) != len(def.Keys) {
			t.Errorf("expected %d default keys, got %d", len(def.Keys), len(c.Keys))
		}
	})

	t.Run("augment", func(t *testing.T) {
		yamlData := []byte(`
api:
  base-url: https://memes.example.com/api/v1
  timeout: 3s
user-id: 7
storage: api
text-defaults:
  font-size: 48
  uppercase: false
keys:
  x: delete-layer
  dd: ""
stylesheet:
  status:
    fg: "#123456"
    bg: "#654321"
  help:
    fg: "#111111"
`)
		c, err := config.ParseConfigAugmentDefaults(config.Light, yamlData)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if c.API.BaseURL != "https://memes.example.com/api/v1" || c.API.UserAgent != "memeplan" {
			t.Errorf("unexpected api config %#v", c.API)
		}
		if d, _ := c.APITimeout(); d != 3*time.Second {
			t.Errorf("expected 3s timeout, got %s", d)
		}
		if c.UserID != 7 || c.Storage != config.StorageAPI {
			t.Errorf("unexpected user/storage %d/%s", c.UserID, c.Storage)
		}
		if c.Keys["x"] != "delete-layer" {
			t.Errorf("binding 'x' not added")
		}
		if _, ok := c.Keys["dd"]; ok {
			t.Errorf("binding 'dd' not removed")
		}
		if c.Keys["u"] != "undo" {
			t.Errorf("default binding 'u' lost")
		}
		if c.Stylesheet.Status.Fg != "#123456" || c.Stylesheet.Status.Bg != "#654321" {
			t.Errorf("status styling not overwritten: %#v", c.Stylesheet.Status)
		}
		if c.Stylesheet.Help != config.Default(config.Light).Stylesheet.Help {
			t.Errorf("incomplete styling should not overwrite, got %#v", c.Stylesheet.Help)
		}

		defaults := c.LayerDefaults()
		if defaults.Text.FontSize != 48 || defaults.Text.Uppercase || defaults.Text.TextAlign != model.AlignCenter {
			t.Errorf("unexpected text defaults %#v", defaults.Text)
		}
		if defaults.Media.Width != 100 {
			t.Errorf("unexpected media defaults %#v", defaults.Media)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for name, data := range map[string]string{
			"yaml":    "api: [",
			"timeout": "api: {timeout: soon}",
			"storage": "storage: cloud",
			"align":   "text-defaults: {align: justify}",
		} {
			if _, err := config.ParseConfigAugmentDefaults(config.Dark, []byte(data)); err == nil {
				t.Errorf("%s: expected error", name)
			}
		}
	})
}
