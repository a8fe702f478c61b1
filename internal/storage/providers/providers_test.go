package providers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/ja-he/memeplan/internal/api"
	"github.com/ja-he/memeplan/internal/model"
	"github.com/ja-he/memeplan/internal/snapshot"
	"github.com/ja-he/memeplan/internal/storage"
	"github.com/ja-he/memeplan/internal/storage/providers"
)

func testTime() time.Time {
	return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
}

func TestFilesDraftProvider(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	p, err := providers.NewFilesDraftProvider(dir)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	data, err := storage.EncodeDraftData(snapshot.Serialize(model.NewEditorState(), testTime()))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	first, err := p.Create(ctx, model.DraftInput{Title: "first", UserID: 1, Data: data})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	second, err := p.Create(ctx, model.DraftInput{Title: "second", UserID: 2, Data: data})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if _, err := os.Stat(p.Filename(2)); err != nil {
		t.Errorf("draft file missing (%s)", err)
	}

	t.Run("get", func(t *testing.T) {
		d, err := p.Get(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if d.Title != "first" || d.UserID != 1 {
			t.Errorf("unexpected draft %#v", d)
		}
		snap, err := storage.DecodeDraftData(d.Data)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if snap.Version != snapshot.Version {
			t.Errorf("unexpected snapshot version %d", snap.Version)
		}
	})

	t.Run("update", func(t *testing.T) {
		s, err := p.Update(ctx, 1, model.DraftInput{Title: "renamed"})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if s.Title != "renamed" {
			t.Errorf("title not updated: %#v", s)
		}
		d, _ := p.Get(ctx, 1)
		if _, err := storage.DecodeDraftData(d.Data); err != nil {
			t.Errorf("update without data dropped the data (%s)", err)
		}
	})

	t.Run("list", func(t *testing.T) {
		page, err := p.List(ctx, storage.ListOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if page.Total != 2 || len(page.Items) != 2 || page.Page != 1 || page.PerPage != storage.DefaultPerPage {
			t.Errorf("unexpected page %#v", page)
		}

		page, _ = p.List(ctx, storage.ListOptions{UserID: 2})
		if page.Total != 1 || page.Items[0].Title != "second" {
			t.Errorf("unexpected filtered page %#v", page)
		}

		page, _ = p.List(ctx, storage.ListOptions{Page: 2, PerPage: 1})
		if len(page.Items) != 1 || page.Items[0].ID != 2 {
			t.Errorf("unexpected second page %#v", page)
		}

		page, _ = p.List(ctx, storage.ListOptions{Page: 5})
		if page.Items == nil || len(page.Items) != 0 {
			t.Errorf("expected empty items past the end, got %#v", page.Items)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := p.Delete(ctx, 2); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if _, err := p.Get(ctx, 2); !errors.Is(err, storage.ErrDraftNotFound) {
			t.Errorf("expected ErrDraftNotFound, got %v", err)
		}
		if err := p.Delete(ctx, 2); !errors.Is(err, storage.ErrDraftNotFound) {
			t.Errorf("expected ErrDraftNotFound deleting twice, got %v", err)
		}
		if _, err := p.Update(ctx, 2, model.DraftInput{Title: "x"}); !errors.Is(err, storage.ErrDraftNotFound) {
			t.Errorf("expected ErrDraftNotFound updating deleted draft, got %v", err)
		}
	})

	t.Run("ids continue after highest", func(t *testing.T) {
		os.WriteFile(p.Filename(41), []byte(`{"title": "external"}`), 0644)
		s, err := p.Create(ctx, model.DraftInput{Title: "next"})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if s.ID != 42 {
			t.Errorf("expected id 42, got %d", s.ID)
		}
	})
}

func TestDecodeDraftDataErrors(t *testing.T) {
	for _, raw := range []string{"", `{"layers": `} {
		if _, err := storage.DecodeDraftData(json.RawMessage(raw)); !errors.Is(err, snapshot.ErrMalformed) {
			t.Errorf("expected ErrMalformed for '%s', got %v", raw, err)
		}
	}
}

func TestAPIDraftProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/memes/draft/1":
			w.Write([]byte(`{"id": 1, "title": "remote", "user_id": 1, "data": {"version": 1, "layers": []}}`))
		case "/memes/drafts":
			if r.URL.Query().Get("per_page") != "10" || r.URL.Query().Get("user_id") != "3" {
				t.Errorf("unexpected query '%s'", r.URL.RawQuery)
			}
			w.Write([]byte(`{"page": 1, "per_page": 10, "total": 0, "items": []}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	p := providers.NewAPIDraftProvider(api.NewClient(server.URL, "", 0))
	ctx := context.Background()

	d, err := p.Get(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d.Title != "remote" {
		t.Errorf("unexpected draft %#v", d)
	}

	if _, err := p.Get(ctx, 2); !errors.Is(err, storage.ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}
	if err := p.Delete(ctx, 2); !errors.Is(err, storage.ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}

	if _, err := p.List(ctx, storage.ListOptions{UserID: 3}); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}
