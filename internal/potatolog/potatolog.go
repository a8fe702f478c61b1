package potatolog

import (
	"encoding/json"
	"fmt"
	"maps"
	"sync"
)

// LogEntry is a single log entry, as decoded from zerolog's JSON output.
type LogEntry = map[string]any

// DefaultCapacity is the number of entries kept by the global log.
const DefaultCapacity = 1000

// GlobalMemoryLogReaderWriter is the global in-memory log, shown in the
// editor's log pane.
var GlobalMemoryLogReaderWriter = NewMemoryLogReaderWriter(DefaultCapacity)

// MemoryLogReaderWriter is an in-memory log reader and writer keeping the most
// recent entries up to its capacity.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
	dropped  int
}

// NewMemoryLogReaderWriter creates a log keeping at most capacity entries.
// A non-positive capacity keeps all entries.
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{log: []LogEntry{}, capacity: capacity}
}

// Write appends a log entry to the log, dropping the oldest entry if the log is
// full.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.capacity > 0 && len(w.log) > w.capacity {
		excess := len(w.log) - w.capacity
		w.log = append([]LogEntry{}, w.log[excess:]...)
		w.dropped += excess
	}
	return len(p), nil
}

// Get returns a copy of the log, oldest entry first.
// Entries are copied as well (values within them are shared).
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	for i, entry := range w.log {
		result[i] = maps.Clone(entry)
	}
	return result
}

// Dropped returns how many entries were dropped for exceeding capacity.
func (w *MemoryLogReaderWriter) Dropped() int {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.dropped
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}
