// Package snapshot converts editor states to and from the versioned,
// persistable document form used for drafts and exports.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/memeplan/internal/model"
)

// Version is the document version written by Serialize.
const Version = 1

// ErrMalformed is returned (wrapped) when a document can not be parsed.
var ErrMalformed = errors.New("malformed document")

// Snapshot is the persistable projection of an editor state.
//
// View state (zoom, pan) and session bookkeeping (user, loading, error) are
// not part of it.
type Snapshot struct {
	Template  *model.TemplateDetail `json:"template"`
	Layers    []model.Layer         `json:"layers"`
	Filters   model.Filters         `json:"filters"`
	Timestamp int64                 `json:"timestamp"`
	Version   int                   `json:"version"`
}

// Restored is the partial editor state recovered from a snapshot.
type Restored struct {
	Template *model.TemplateDetail
	Layers   []model.Layer
	Filters  model.Filters
}

// WarningKind classifies a Warning.
type WarningKind string

const (
	// VersionMismatch means the document was written with a different version
	// than Version.
	VersionMismatch WarningKind = "version-mismatch"
	// InvalidLayer means a layer of unknown type or without ID was dropped.
	InvalidLayer WarningKind = "invalid-layer"
)

// A Warning is a non-fatal problem encountered while restoring a snapshot.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return string(w.Kind) + ": " + w.Message }

// Serialize projects the state into a snapshot stamped with the given time.
func Serialize(s model.EditorState, now time.Time) Snapshot {
	layers := make([]model.Layer, len(s.ActiveLayers))
	for i := range s.ActiveLayers {
		layers[i] = s.ActiveLayers[i].Clone()
	}
	return Snapshot{
		Template:  s.SelectedTemplate,
		Layers:    layers,
		Filters:   s.Filters,
		Timestamp: now.UnixMilli(),
		Version:   Version,
	}
}

// Deserialize recovers the partial editor state from the snapshot.
//
// Problems that still allow a best-effort load are reported as warnings (and
// logged); a version mismatch never prevents loading.
func Deserialize(snap Snapshot) (Restored, []Warning) {
	warnings := []Warning{}

	if snap.Version != Version {
		w := Warning{
			Kind:    VersionMismatch,
			Message: fmt.Sprintf("expected version %d, got %d", Version, snap.Version),
		}
		log.Warn().Int("expected", Version).Int("got", snap.Version).Msg("snapshot version mismatch, loading anyway")
		warnings = append(warnings, w)
	}

	layers := make([]model.Layer, 0, len(snap.Layers))
	for i, l := range snap.Layers {
		if l.ID == "" || !l.Type.Valid() {
			w := Warning{
				Kind:    InvalidLayer,
				Message: fmt.Sprintf("dropping layer %d (id '%s', type '%s')", i, l.ID, l.Type),
			}
			log.Warn().Int("index", i).Str("id", l.ID).Str("type", string(l.Type)).Msg("dropping invalid layer from snapshot")
			warnings = append(warnings, w)
			continue
		}
		layers = append(layers, l.Normalized())
	}

	return Restored{
		Template: snap.Template,
		Layers:   layers,
		Filters:  snap.Filters,
	}, warnings
}

// ExportJSON serializes the state and renders it as indented JSON.
func ExportJSON(s model.EditorState, now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(Serialize(s, now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling snapshot (%w)", err)
	}
	return data, nil
}

// ImportJSON parses a snapshot document.
// Filter knobs the document lacks (older documents have no filters at all)
// keep their identity values. Errors wrap ErrMalformed.
func ImportJSON(data []byte) (Snapshot, error) {
	snap := Snapshot{Filters: model.DefaultFilters()}
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: could not parse snapshot (%s)", ErrMalformed, err)
	}
	return snap, nil
}

// ExportLayersJSON renders a bare layer list as indented JSON.
func ExportLayersJSON(layers []model.Layer) ([]byte, error) {
	if layers == nil {
		layers = []model.Layer{}
	}
	data, err := json.MarshalIndent(layers, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling layers (%w)", err)
	}
	return data, nil
}

// ImportLayersJSON parses a bare layer list.
// Any well-formed document that is not a list yields an empty list; malformed
// JSON is an error wrapping ErrMalformed.
func ImportLayersJSON(data []byte) ([]model.Layer, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: layers are not valid JSON", ErrMalformed)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return []model.Layer{}, nil
	}
	layers := []model.Layer{}
	if err := json.Unmarshal(data, &layers); err != nil {
		return nil, fmt.Errorf("%w: could not parse layers (%s)", ErrMalformed, err)
	}
	for i := range layers {
		layers[i] = layers[i].Normalized()
	}
	return layers, nil
}

// DraftName returns a default name for a draft created at the given time, e.g.
// "meme_draft_2024-03-05T14-07-09".
func DraftName(now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05")
	return "meme_draft_" + strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
}
