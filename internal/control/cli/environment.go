package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/memeplan/internal/api"
	"github.com/ja-he/memeplan/internal/config"
	"github.com/ja-he/memeplan/internal/control"
	"github.com/ja-he/memeplan/internal/editor"
	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/session"
	"github.com/ja-he/memeplan/internal/snapshot"
	"github.com/ja-he/memeplan/internal/storage"
	"github.com/ja-he/memeplan/internal/storage/providers"
)

// stdout is where commands write their output.
var stdout io.Writer = os.Stdout

// environment bundles what commands need: config, API client and draft
// storage.
type environment struct {
	envData control.EnvData
	config  config.Config
	client  *api.Client
	drafts  storage.DraftProvider
}

func newEnvironment(theme config.ColorschemeType) (*environment, error) {
	envData := control.NewEnvData()

	configData, err := control.LoadConfig(envData, theme)
	if err != nil {
		return nil, err
	}

	timeout, err := configData.APITimeout()
	if err != nil {
		return nil, err
	}
	client := api.NewClient(configData.API.BaseURL, configData.API.UserAgent, timeout)

	var drafts storage.DraftProvider
	switch configData.Storage {
	case config.StorageAPI:
		drafts = providers.NewAPIDraftProvider(client)
	default:
		drafts, err = providers.NewFilesDraftProvider(envData.DraftsPath())
		if err != nil {
			return nil, fmt.Errorf("could not set up draft storage (%w)", err)
		}
	}

	log.Debug().
		Str("base-dir", envData.BaseDirPath).
		Str("api", client.BaseURL).
		Str("storage", string(configData.Storage)).
		Msg("set up environment")

	return &environment{
		envData: envData,
		config:  configData,
		client:  client,
		drafts:  drafts,
	}, nil
}

// newSession starts an editing session acting for the configured user.
func (e *environment) newSession() *session.Session {
	s := session.New()
	s.Dispatch(editor.SetCurrentUser{UserID: e.config.UserID})
	return s
}

// draftRef is an opened draft: either a stored draft (referenced by its
// numeric ID) or a snapshot document file (referenced by its path).
type draftRef struct {
	env *environment

	id    int
	path  string
	draft model.Draft
}

// openDraftRef opens the draft referenced by ref and returns it with the
// snapshot it holds.
// A numeric ref is a stored draft's ID, anything else a file path.
func (e *environment) openDraftRef(ctx context.Context, ref string) (*draftRef, snapshot.Snapshot, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		draft, err := e.drafts.Get(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrDraftNotFound) {
				return nil, snapshot.Snapshot{}, fmt.Errorf("no draft with ID %d", id)
			}
			return nil, snapshot.Snapshot{}, fmt.Errorf("could not get draft %d (%w)", id, err)
		}
		snap, err := storage.DecodeDraftData(draft.Data)
		if err != nil {
			return nil, snapshot.Snapshot{}, fmt.Errorf("could not read draft %d (%w)", id, err)
		}
		return &draftRef{env: e, id: id, draft: draft}, snap, nil
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, snapshot.Snapshot{}, fmt.Errorf("could not read draft file (%w)", err)
	}
	snap, err := snapshot.ImportJSON(data)
	if err != nil {
		return nil, snapshot.Snapshot{}, fmt.Errorf("could not import '%s' (%w)", ref, err)
	}
	return &draftRef{env: e, path: ref}, snap, nil
}

// String describes the reference, e.g. for messages.
func (r *draftRef) String() string {
	if r.path != "" {
		return "'" + r.path + "'"
	}
	return fmt.Sprintf("draft %d", r.id)
}

// save writes the session's current state back to the referenced draft.
func (r *draftRef) save(ctx context.Context, s *session.Session) error {
	if r.path != "" {
		data, err := s.ExportJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(r.path, data, 0644); err != nil {
			return fmt.Errorf("could not write '%s' (%w)", r.path, err)
		}
		return nil
	}

	in, err := draftInput(s, r.draft.Title, r.env.config.UserID)
	if err != nil {
		return err
	}
	summary, err := r.env.drafts.Update(ctx, r.id, in)
	if err != nil {
		return fmt.Errorf("could not update draft %d (%w)", r.id, err)
	}
	r.draft.UpdatedAt = summary.UpdatedAt
	return nil
}

// draftInput renders the session's current state as a draft to store.
func draftInput(s *session.Session, title string, userID int) (model.DraftInput, error) {
	snap := s.Snapshot()
	data, err := storage.EncodeDraftData(snap)
	if err != nil {
		return model.DraftInput{}, err
	}
	in := model.DraftInput{
		Title:  title,
		UserID: userID,
		Data:   data,
	}
	if snap.Template != nil {
		in.TemplateID = model.Pointer(snap.Template.ID)
	}
	return in, nil
}
