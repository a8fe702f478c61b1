package model

import "encoding/json"

// Sticker is a sticker asset.
type Sticker struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	ImageURL   string       `json:"image_url"`
	CategoryID *int         `json:"category_id,omitempty"`
	Category   *CategoryRef `json:"category,omitempty"`
}

// Font is a font available for text layers.
type Font struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	FontFamily string `json:"font_family"`
	FilePath   string `json:"file_path,omitempty"`
}

// AssetCategories are the template and sticker categories.
type AssetCategories struct {
	Templates []CategoryRef `json:"templates"`
	Stickers  []CategoryRef `json:"stickers"`
}

// TrendingItem is a trending meme from an external source.
type TrendingItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	ImageURL string   `json:"image_url"`
	Score    *float64 `json:"score,omitempty"`
	Source   string   `json:"source"`
}

// GifRendition is one size variant of a GIF.
type GifRendition struct {
	URL    string `json:"url"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// GifItem is a GIF search result.
type GifItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Images struct {
		FixedHeight GifRendition `json:"fixed_height"`
		PreviewGif  GifRendition `json:"preview_gif"`
	} `json:"images"`
}

// Meme is a published meme.
type Meme struct {
	ID         int         `json:"id"`
	Title      string      `json:"title"`
	ImageURL   string      `json:"image_url"`
	UserID     int         `json:"user_id"`
	TemplateID *int        `json:"template_id,omitempty"`
	Layers     []MemeLayer `json:"layers,omitempty"`
	CreatedAt  string      `json:"created_at"`
}

// MemeLayer is the server-side form of a published layer.
// ID and MemeID are assigned by the server.
type MemeLayer struct {
	ID         int             `json:"id,omitempty"`
	MemeID     int             `json:"meme_id,omitempty"`
	LayerType  string          `json:"layer_type"`
	Content    string          `json:"content"`
	Properties json.RawMessage `json:"properties"`
	ZIndex     int             `json:"z_index"`
}

// MemeLayer returns the layer's form for publishing.
// The server knows no GIF layers; they are published as image layers, which
// reference their resource the same way.
func (l Layer) MemeLayer() (MemeLayer, error) {
	properties, err := json.Marshal(l.Properties)
	if err != nil {
		return MemeLayer{}, err
	}
	layerType := l.Type
	if layerType == LayerTypeGIF {
		layerType = LayerTypeImage
	}
	return MemeLayer{
		LayerType:  string(layerType),
		Content:    l.Content,
		Properties: properties,
		ZIndex:     l.Properties.ZIndex,
	}, nil
}

// Draft is a saved, unpublished editing state. Its Data carries a serialized
// snapshot.
type Draft struct {
	ID         int             `json:"id"`
	Title      string          `json:"title"`
	UserID     int             `json:"user_id"`
	TemplateID *int            `json:"template_id,omitempty"`
	Data       json.RawMessage `json:"data"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// DraftSummary is the short form of a draft as returned by listings and
// writes.
type DraftSummary struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Summary returns the short form of the draft.
func (d Draft) Summary() DraftSummary {
	return DraftSummary{ID: d.ID, Title: d.Title, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Items   []T `json:"items"`
}

// DraftInput is the writable part of a draft, as sent when creating or
// updating one.
type DraftInput struct {
	Title      string          `json:"title"`
	UserID     int             `json:"user_id,omitempty"`
	TemplateID *int            `json:"template_id,omitempty"`
	Data       json.RawMessage `json:"data"`
}
