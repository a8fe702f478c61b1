package editor

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"sync/atomic"
)

// IDSource produces layer IDs.
type IDSource interface {
	NextID() string
}

// IDFunc adapts a plain function to an IDSource.
type IDFunc func() string

// NextID calls f.
func (f IDFunc) NextID() string { return f() }

// SessionIDs generates IDs from a random per-source prefix and a counter.
// IDs from one source are never repeated; IDs from different sources (e.g.
// from an imported draft) collide only if the random prefixes do.
type SessionIDs struct {
	prefix  string
	counter uint64
}

// NewSessionIDs returns a new ID source with a fresh random prefix.
func NewSessionIDs() *SessionIDs {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms; the counter alone
		// still guarantees uniqueness within the session
		return &SessionIDs{prefix: "l"}
	}
	return &SessionIDs{prefix: strconv.FormatUint(binary.LittleEndian.Uint64(b[:])>>24, 36)}
}

// NextID returns the next ID, e.g. "k3x9q1-1".
func (s *SessionIDs) NextID() string {
	n := atomic.AddUint64(&s.counter, 1)
	return s.prefix + "-" + strconv.FormatUint(n, 36)
}
