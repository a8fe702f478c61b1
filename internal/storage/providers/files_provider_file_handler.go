package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/storage"
)

type fileHandler struct {
	mutex sync.Mutex

	basePath string
	id       int
}

func newFileHandler(basePath string, id int) *fileHandler {
	return &fileHandler{basePath: basePath, id: id}
}

func (h *fileHandler) filename() string {
	return path.Join(h.basePath, fmt.Sprintf("%d.json", h.id))
}

func (h *fileHandler) read() (model.Draft, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.readUnlocked()
}

func (h *fileHandler) readUnlocked() (model.Draft, error) {
	data, err := os.ReadFile(h.filename())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Draft{}, fmt.Errorf("no draft with id %d (%w)", h.id, storage.ErrDraftNotFound)
		}
		return model.Draft{}, fmt.Errorf("could not read file '%s' from disk (%w)", h.filename(), err)
	}

	draft := model.Draft{}
	if err := json.Unmarshal(data, &draft); err != nil {
		return model.Draft{}, fmt.Errorf("could not parse draft file '%s' (%w)", h.filename(), err)
	}
	draft.ID = h.id
	return draft, nil
}

func (h *fileHandler) write(d model.Draft) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.writeUnlocked(d)
}

func (h *fileHandler) writeUnlocked(d model.Draft) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal draft %d (%w)", h.id, err)
	}

	// written via a temporary file, readers never see a partial draft
	tmp := h.filename() + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write file '%s' (%w)", tmp, err)
	}
	if err := os.Rename(tmp, h.filename()); err != nil {
		return fmt.Errorf("could not move '%s' into place (%w)", tmp, err)
	}
	return nil
}

// modify reads, changes and writes back the draft under one lock.
func (h *fileHandler) modify(change func(*model.Draft)) (model.Draft, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	d, err := h.readUnlocked()
	if err != nil {
		return model.Draft{}, err
	}
	change(&d)
	if err := h.writeUnlocked(d); err != nil {
		return model.Draft{}, err
	}
	return d, nil
}

func (h *fileHandler) remove() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	err := os.Remove(h.filename())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no draft with id %d (%w)", h.id, storage.ErrDraftNotFound)
		}
		return fmt.Errorf("could not remove file '%s' (%w)", h.filename(), err)
	}
	return nil
}
