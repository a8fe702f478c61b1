package potatolog_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/memeplan/internal/potatolog"
)

func TestMemoryLogReaderWriter(t *testing.T) {
	w := potatolog.NewMemoryLogReaderWriter(2)
	logger := zerolog.New(w)

	logger.Info().Str("layer", "a").Msg("first")
	logger.Warn().Msg("second")
	logger.Error().Msg("third")

	entries := w.Get()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["message"] != "second" || entries[1]["level"] != "error" {
		t.Errorf("unexpected entries %v", entries)
	}
	if w.Dropped() != 1 {
		t.Errorf("expected 1 dropped entry, got %d", w.Dropped())
	}

	entries[0]["message"] = "changed"
	if w.Get()[0]["message"] != "second" {
		t.Errorf("Get must return a copy")
	}

	if _, err := w.Write([]byte("not json")); err == nil {
		t.Errorf("expected error for non-JSON input")
	}
}
