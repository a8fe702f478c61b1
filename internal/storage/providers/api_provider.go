package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ja-he/memeplan/internal/api"
	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/storage"
)

// APIDraftProvider stores drafts through the meme API's draft endpoints.
type APIDraftProvider struct {
	client *api.Client
}

// NewAPIDraftProvider creates a provider using the given client.
func NewAPIDraftProvider(client *api.Client) *APIDraftProvider {
	return &APIDraftProvider{client: client}
}

// mapError translates the API's 404 into storage.ErrDraftNotFound.
func mapError(id int, err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
		return fmt.Errorf("no draft with id %d (%w)", id, storage.ErrDraftNotFound)
	}
	return err
}

func (p *APIDraftProvider) Create(ctx context.Context, in model.DraftInput) (model.DraftSummary, error) {
	return p.client.CreateDraft(ctx, in)
}

func (p *APIDraftProvider) Update(ctx context.Context, id int, in model.DraftInput) (model.DraftSummary, error) {
	result, err := p.client.UpdateDraft(ctx, id, in)
	return result, mapError(id, err)
}

func (p *APIDraftProvider) Get(ctx context.Context, id int) (model.Draft, error) {
	result, err := p.client.Draft(ctx, id)
	return result, mapError(id, err)
}

func (p *APIDraftProvider) Delete(ctx context.Context, id int) error {
	return mapError(id, p.client.DeleteDraft(ctx, id))
}

func (p *APIDraftProvider) List(ctx context.Context, opts storage.ListOptions) (model.Page[model.DraftSummary], error) {
	opts = opts.Normalized()
	return p.client.Drafts(ctx, api.DraftQuery{
		PageOptions: api.PageOptions{Page: opts.Page, PerPage: opts.PerPage},
		UserID:      opts.UserID,
	})
}

var (
	_ storage.DraftProvider = &APIDraftProvider{}
	_ storage.DraftProvider = &FilesDraftProvider{}
)
