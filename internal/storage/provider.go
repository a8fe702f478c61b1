package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/snapshot"
)

// ErrDraftNotFound is returned (possibly wrapped) when a draft does not exist.
var ErrDraftNotFound = errors.New("draft not found")

// DraftProvider is the abstracted draft storage, which can be implemented over
// various storage systems.
//
// The provider's responsibilities are as follows:
//   - store and retrieve drafts by ID
//   - allocate IDs for new drafts
//   - list drafts, optionally only those of one user
type DraftProvider interface {
	Create(ctx context.Context, in model.DraftInput) (model.DraftSummary, error)
	Update(ctx context.Context, id int, in model.DraftInput) (model.DraftSummary, error)
	Get(ctx context.Context, id int) (model.Draft, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, opts ListOptions) (model.Page[model.DraftSummary], error)
}

// ListOptions select a page of drafts. Zero values select defaults (page 1,
// DefaultPerPage, all users).
type ListOptions struct {
	Page    int
	PerPage int
	UserID  int
}

// DefaultPerPage is the page size used when none is given.
const DefaultPerPage = 10

// Normalized returns the options with defaults applied.
func (o ListOptions) Normalized() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PerPage < 1 {
		o.PerPage = DefaultPerPage
	}
	return o
}

// EncodeDraftData renders a snapshot for use as a draft's data.
func EncodeDraftData(snap snapshot.Snapshot) (json.RawMessage, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("error encoding draft data (%w)", err)
	}
	return data, nil
}

// DecodeDraftData parses a draft's data as a snapshot.
func DecodeDraftData(data json.RawMessage) (snapshot.Snapshot, error) {
	if len(data) == 0 {
		return snapshot.Snapshot{}, fmt.Errorf("%w: draft has no data", snapshot.ErrMalformed)
	}
	snap, err := snapshot.ImportJSON(data)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("error decoding draft data (%w)", err)
	}
	return snap, nil
}
