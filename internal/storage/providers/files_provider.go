package providers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/storage"
)

const timestampFormat = "2006-01-02T15:04:05"

// FilesDraftProvider stores drafts as one JSON file per draft in a directory.
type FilesDraftProvider struct {
	BasePath string

	fhMutex      sync.RWMutex
	fileHandlers map[int]*fileHandler

	now func() time.Time
	log zerolog.Logger
}

// NewFilesDraftProvider creates a provider for the given directory, creating
// the directory if needed.
func NewFilesDraftProvider(basePath string) (*FilesDraftProvider, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("could not create draft directory '%s' (%w)", basePath, err)
	}

	result := &FilesDraftProvider{
		BasePath:     basePath,
		fhMutex:      sync.RWMutex{},
		fileHandlers: make(map[int]*fileHandler),
		now:          time.Now,
		log:          log.With().Str("component", "files-draft-provider").Logger(),
	}

	return result, nil
}

// getFileHandler returns the handler for the draft with the given ID,
// creating it if it is not loaded yet.
func (p *FilesDraftProvider) getFileHandler(id int) *fileHandler {
	p.fhMutex.RLock()
	fh, ok := p.fileHandlers[id]
	p.fhMutex.RUnlock()
	if ok {
		return fh
	}

	p.fhMutex.Lock()
	defer p.fhMutex.Unlock()
	if fh, ok := p.fileHandlers[id]; ok {
		return fh
	}
	fh = newFileHandler(p.BasePath, id)
	p.fileHandlers[id] = fh
	return fh
}

// storedIDs returns the IDs of all drafts on disk, ascending.
func (p *FilesDraftProvider) storedIDs() ([]int, error) {
	entries, err := os.ReadDir(p.BasePath)
	if err != nil {
		return nil, fmt.Errorf("could not read draft directory '%s' (%w)", p.BasePath, err)
	}
	ids := []int{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(name, ".json"))
		if err != nil {
			p.log.Debug().Str("file", name).Msg("ignoring non-draft file in draft directory")
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// Create stores a new draft under the next free ID.
func (p *FilesDraftProvider) Create(_ context.Context, in model.DraftInput) (model.DraftSummary, error) {
	// allocation and first write happen under one lock, so concurrent creates
	// see each other's files
	p.fhMutex.Lock()
	defer p.fhMutex.Unlock()

	ids, err := p.storedIDs()
	if err != nil {
		return model.DraftSummary{}, err
	}
	id := 1
	if len(ids) > 0 {
		id = ids[len(ids)-1] + 1
	}

	stamp := p.now().UTC().Format(timestampFormat)
	draft := model.Draft{
		ID:         id,
		Title:      in.Title,
		UserID:     in.UserID,
		TemplateID: in.TemplateID,
		Data:       in.Data,
		CreatedAt:  stamp,
		UpdatedAt:  stamp,
	}
	fh := newFileHandler(p.BasePath, id)
	if err := fh.write(draft); err != nil {
		return model.DraftSummary{}, err
	}
	p.fileHandlers[id] = fh
	p.log.Debug().Int("id", id).Str("title", in.Title).Msg("created draft")
	return draft.Summary(), nil
}

// Update overwrites title, template and data of an existing draft.
func (p *FilesDraftProvider) Update(_ context.Context, id int, in model.DraftInput) (model.DraftSummary, error) {
	fh := p.getFileHandler(id)
	draft, err := fh.modify(func(d *model.Draft) {
		if in.Title != "" {
			d.Title = in.Title
		}
		if in.TemplateID != nil {
			d.TemplateID = in.TemplateID
		}
		if in.Data != nil {
			d.Data = in.Data
		}
		d.UpdatedAt = p.now().UTC().Format(timestampFormat)
	})
	if err != nil {
		return model.DraftSummary{}, err
	}
	return draft.Summary(), nil
}

// Get reads a draft.
func (p *FilesDraftProvider) Get(_ context.Context, id int) (model.Draft, error) {
	return p.getFileHandler(id).read()
}

// Delete removes a draft's file.
func (p *FilesDraftProvider) Delete(_ context.Context, id int) error {
	fh := p.getFileHandler(id)
	if err := fh.remove(); err != nil {
		return err
	}
	p.fhMutex.Lock()
	delete(p.fileHandlers, id)
	p.fhMutex.Unlock()
	return nil
}

// List returns a page of drafts ordered by ID.
func (p *FilesDraftProvider) List(ctx context.Context, opts storage.ListOptions) (model.Page[model.DraftSummary], error) {
	opts = opts.Normalized()
	result := model.Page[model.DraftSummary]{Page: opts.Page, PerPage: opts.PerPage, Items: []model.DraftSummary{}}

	p.fhMutex.RLock()
	ids, err := p.storedIDs()
	p.fhMutex.RUnlock()
	if err != nil {
		return result, err
	}

	matching := []model.DraftSummary{}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		draft, err := p.getFileHandler(id).read()
		if err != nil {
			if errors.Is(err, storage.ErrDraftNotFound) {
				continue
			}
			p.log.Warn().Err(err).Int("id", id).Msg("skipping unreadable draft")
			continue
		}
		if opts.UserID != 0 && draft.UserID != opts.UserID {
			continue
		}
		matching = append(matching, draft.Summary())
	}

	result.Total = len(matching)
	start := (opts.Page - 1) * opts.PerPage
	if start < len(matching) {
		end := start + opts.PerPage
		if end > len(matching) {
			end = len(matching)
		}
		result.Items = matching[start:end]
	}
	return result, nil
}

// Filename returns the path of the file storing the draft with the given ID.
func (p *FilesDraftProvider) Filename(id int) string {
	return path.Join(p.BasePath, fmt.Sprintf("%d.json", id))
}
