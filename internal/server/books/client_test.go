package books

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hallowedlibrary/backend/internal/common"
)

const searchPayload = `{
  "items": [
    {
      "id": "vol-1",
      "volumeInfo": {
        "title": "Dune",
        "authors": ["Frank Herbert"],
        "publisher": "Chilton Books",
        "publishedDate": "1965",
        "description": "Desert planet.",
        "categories": ["Fiction"],
        "imageLinks": {"smallThumbnail": "http://img/small.jpg"},
        "industryIdentifiers": [
          {"type": "ISBN_13", "identifier": "9780441013593"},
          {"type": "ISBN_10", "identifier": "0441013597"}
        ]
      }
    },
    {
      "id": "vol-2",
      "volumeInfo": {"title": "Untitled"}
    }
  ]
}`

func TestSearch_ReshapesVolumes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/volumes" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "subject:fiction" {
			t.Errorf("unexpected q %q", got)
		}
		if got := r.URL.Query().Get("maxResults"); got != "20" {
			t.Errorf("unexpected maxResults %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchPayload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	got, err := c.Search(context.Background(), "", 0, 0)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 books, got %d", len(got))
	}

	first := got[0]
	if first.ID != "vol-1" || first.Title != "Dune" || first.ISBN13 != "9780441013593" || first.ISBN10 != "0441013597" {
		t.Fatalf("unexpected book: %+v", first)
	}
	if first.Thumbnail != "http://img/small.jpg" {
		t.Fatalf("smallThumbnail must be used when thumbnail is absent, got %q", first.Thumbnail)
	}

	// Sparse volumes decode to empty (not nil) slices.
	if got[1].Authors == nil || got[1].Categories == nil {
		t.Fatalf("authors/categories must not be nil: %+v", got[1])
	}
}

func TestSearch_ClampsMaxResults(t *testing.T) {
	t.Parallel()

	var gotMax string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMax = r.URL.Query().Get("maxResults")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Search(context.Background(), "dune", 0, 100); err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if gotMax != "30" {
		t.Fatalf("expected maxResults clamped to 30, got %q", gotMax)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestGetByID_PassesKey(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/volumes/vol-1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "api-key" {
			t.Errorf("unexpected key %q", got)
		}
		_, _ = w.Write([]byte(`{"id": "vol-1", "volumeInfo": {"title": "Dune"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "api-key")
	book, err := c.GetByID(context.Background(), "vol-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if book.ID != "vol-1" || book.Title != "Dune" {
		t.Fatalf("unexpected book: %+v", book)
	}
}

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		q, title, author, isbn string
		want                   string
	}{
		{"isbn wins", "dune", "Dune", "Herbert", "123", "isbn:123"},
		{"title only", "", "Dune Messiah", "", "", "intitle:Dune+Messiah"},
		{"author only", "", "", "Frank Herbert", "", "inauthor:Frank+Herbert"},
		{"title and author", "", "Dune", "Herbert", "", "intitle:Dune+inauthor:Herbert"},
		{"free form", "desert planet", "", "", "", "desert planet"},
		{"default", "", "", "", "", "subject:fiction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildQuery(tt.q, tt.title, tt.author, tt.isbn); got != tt.want {
				t.Fatalf("BuildQuery = %q, want %q", got, tt.want)
			}
		})
	}
}
