package ui

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CursorLocationRequestHandler is an interface for a type that can handle
// requests to place a (text/terminal) cursor on the screen.
type CursorLocationRequestHandler interface {
	Put(l CursorLocation, requesterID string)
	Delete(requesterID string)
}

// CursorWrangler collects requests to place a (text/terminal) cursor on the
// screen during a draw and enacts the latest one afterwards.
type CursorWrangler struct {
	mtx sync.RWMutex

	cc TextCursorController

	desiredLocation *CursorLocation
	requester       string

	log zerolog.Logger
}

// NewCursorWrangler creates a new CursorWrangler.
func NewCursorWrangler(controller TextCursorController) *CursorWrangler {
	return &CursorWrangler{
		cc:  controller,
		log: log.With().Str("component", "cursor-wrangler").Logger(),
	}
}

// Put requests the cursor at the given location.
func (w *CursorWrangler) Put(l CursorLocation, requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.desiredLocation != nil && w.requester != requesterID {
		w.log.Warn().
			Str("requester", requesterID).
			Str("previous-requester", w.requester).
			Msgf("cursor already placed at %s, overwriting with %s", w.desiredLocation, l)
	}

	w.desiredLocation = &l
	w.requester = requesterID
}

// Delete withdraws the requester's cursor request.
// Requests by other requesters are left in place.
func (w *CursorWrangler) Delete(requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.desiredLocation == nil || w.requester != requesterID {
		w.log.Trace().Str("requester", requesterID).Msg("ignoring cursor deletion without own active request")
		return
	}

	w.desiredLocation = nil
	w.requester = ""
}

// Enact shows the cursor at the requested location, or hides it without a
// request.
func (w *CursorWrangler) Enact() {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.desiredLocation != nil {
		w.cc.ShowCursor(*w.desiredLocation)
	} else {
		w.cc.HideCursor()
	}
}

var _ CursorLocationRequestHandler = &CursorWrangler{}
