package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ja-he/memeplan/internal/model"
)

// TemplateQuery filters the template listing.
type TemplateQuery struct {
	PageOptions
	CategoryID int
	Search     string
}

// Templates lists templates.
func (c *Client) Templates(ctx context.Context, q TemplateQuery) (model.Page[model.Template], error) {
	values := url.Values{}
	q.apply(values)
	setInt(values, "category_id", q.CategoryID)
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	return do[model.Page[model.Template]](ctx, c, http.MethodGet, "/templates", values, nil)
}

// Template fetches a template including its fields.
func (c *Client) Template(ctx context.Context, id int) (model.TemplateDetail, error) {
	return do[model.TemplateDetail](ctx, c, http.MethodGet, fmt.Sprintf("/templates/%d", id), nil, nil)
}

// Stickers lists stickers, optionally of one category (0 for all).
func (c *Client) Stickers(ctx context.Context, categoryID int) ([]model.Sticker, error) {
	values := url.Values{}
	setInt(values, "category_id", categoryID)
	return do[[]model.Sticker](ctx, c, http.MethodGet, "/stickers", values, nil)
}

// Fonts lists the available fonts.
func (c *Client) Fonts(ctx context.Context) ([]model.Font, error) {
	return do[[]model.Font](ctx, c, http.MethodGet, "/fonts", nil, nil)
}

// AssetCategories lists template and sticker categories.
func (c *Client) AssetCategories(ctx context.Context) (model.AssetCategories, error) {
	return do[model.AssetCategories](ctx, c, http.MethodGet, "/assets/categories", nil, nil)
}

// Trending lists trending memes.
func (c *Client) Trending(ctx context.Context) ([]model.TrendingItem, error) {
	return do[[]model.TrendingItem](ctx, c, http.MethodGet, "/trending", nil, nil)
}

// DefaultGifLimit is the number of GIFs requested when no limit is given.
const DefaultGifLimit = 20

// SearchGifs searches GIFs; a limit of 0 uses DefaultGifLimit.
func (c *Client) SearchGifs(ctx context.Context, query string, limit int) ([]model.GifItem, error) {
	if limit <= 0 {
		limit = DefaultGifLimit
	}
	values := url.Values{}
	values.Set("query", query)
	setInt(values, "limit", limit)
	return do[[]model.GifItem](ctx, c, http.MethodGet, "/gifs", values, nil)
}

// MemeQuery filters the meme listing.
type MemeQuery struct {
	PageOptions
	UserID int
}

// Memes lists published memes.
func (c *Client) Memes(ctx context.Context, q MemeQuery) (model.Page[model.Meme], error) {
	values := url.Values{}
	q.apply(values)
	setInt(values, "user_id", q.UserID)
	return do[model.Page[model.Meme]](ctx, c, http.MethodGet, "/memes", values, nil)
}

// NewMeme is a meme to be published.
type NewMeme struct {
	Title      string            `json:"title"`
	ImageURL   string            `json:"image_url,omitempty"`
	UserID     int               `json:"user_id,omitempty"`
	TemplateID *int              `json:"template_id,omitempty"`
	Layers     []model.MemeLayer `json:"layers,omitempty"`
}

// CreateMeme publishes a meme.
func (c *Client) CreateMeme(ctx context.Context, m NewMeme) (model.Meme, error) {
	return do[model.Meme](ctx, c, http.MethodPost, "/memes", nil, m)
}

// Meme fetches a published meme.
func (c *Client) Meme(ctx context.Context, id int) (model.Meme, error) {
	return do[model.Meme](ctx, c, http.MethodGet, fmt.Sprintf("/memes/%d", id), nil, nil)
}

// CreateDraft stores a new draft.
func (c *Client) CreateDraft(ctx context.Context, in model.DraftInput) (model.DraftSummary, error) {
	return do[model.DraftSummary](ctx, c, http.MethodPost, "/memes/draft", nil, in)
}

// UpdateDraft overwrites an existing draft.
func (c *Client) UpdateDraft(ctx context.Context, id int, in model.DraftInput) (model.DraftSummary, error) {
	return do[model.DraftSummary](ctx, c, http.MethodPut, fmt.Sprintf("/memes/draft/%d", id), nil, in)
}

// Draft fetches a draft including its data.
func (c *Client) Draft(ctx context.Context, id int) (model.Draft, error) {
	return do[model.Draft](ctx, c, http.MethodGet, fmt.Sprintf("/memes/draft/%d", id), nil, nil)
}

// DeleteDraft deletes a draft.
func (c *Client) DeleteDraft(ctx context.Context, id int) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, fmt.Sprintf("/memes/draft/%d", id), nil, nil)
	return err
}

// DraftQuery filters the draft listing.
type DraftQuery struct {
	PageOptions
	UserID int
}

// Drafts lists drafts.
func (c *Client) Drafts(ctx context.Context, q DraftQuery) (model.Page[model.DraftSummary], error) {
	values := url.Values{}
	q.apply(values)
	setInt(values, "user_id", q.UserID)
	return do[model.Page[model.DraftSummary]](ctx, c, http.MethodGet, "/memes/drafts", values, nil)
}
