package kpdev

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/luzmane/kinotrailers/internal/models"
)

func newTestService(baseURL string) *Service {
	client, _ := newTestClient(baseURL, "token")
	return &Service{client: client, logger: testLogger()}
}

func TestGetTrailersFromCollection(t *testing.T) {
	response := `{
		"docs": [
			{
				"id": 111,
				"name": "First Movie",
				"description": "First overview",
				"externalId": {"imdb": "tt0000111", "tmdb": 555},
				"poster": {"url": "https://example.com/full1.jpg", "previewUrl": "https://example.com/preview1.jpg"},
				"premiere": {"world": "2024-01-25T12:34:56.001Z"},
				"videos": {
					"trailers": [{"url": "https://www.youtube.com/embed/aaa", "name": "Trailer 1"}],
					"teasers": [{"url": "https://www.youtube.com/embed/aaa", "name": "Teaser 1"}]
				}
			},
			{
				"id": 222,
				"name": "Second Movie",
				"description": "Second overview",
				"poster": {"url": "https://example.com/full2.jpg"},
				"videos": {
					"trailers": [{"url": "https://www.youtube.com/v/bbb", "name": "Trailer 2"}],
					"teasers": [{"url": "https://www.youtube.com/v/bbb", "name": "Teaser 2"}]
				}
			}
		],
		"total": 2,
		"limit": 250,
		"page": 1,
		"pages": 1
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(response))
	}))
	defer srv.Close()

	service := newTestService(srv.URL)
	trailers := service.GetTrailersFromCollection(context.Background(), "top250")

	// 2 movies x (1 trailer + 1 teaser), same video URL but different titles
	if len(trailers) != 4 {
		t.Fatalf("expected 4 distinct trailers, got %d", len(trailers))
	}

	for _, trailer := range trailers {
		if trailer.ProviderIDs[models.ProviderKey] == "" {
			t.Errorf("trailer %q is missing the provider id", trailer.TrailerName)
		}
	}

	first := trailers[0]
	if first.ImageURL != "https://example.com/preview1.jpg" {
		t.Errorf("expected the preview image, got %q", first.ImageURL)
	}
	if first.URL != "https://www.youtube.com/watch?v=aaa" {
		t.Errorf("expected a normalized URL, got %q", first.URL)
	}
	if first.ProviderIDs[models.ProviderImdb] != "tt0000111" {
		t.Errorf("expected the IMDB id, got %q", first.ProviderIDs[models.ProviderImdb])
	}
	if first.ProviderIDs[models.ProviderTmdb] != "555" {
		t.Errorf("expected the TMDB id, got %q", first.ProviderIDs[models.ProviderTmdb])
	}
	if first.PremierDate == nil || first.PremierDate.Year() != 2024 {
		t.Errorf("expected the world premiere date, got %v", first.PremierDate)
	}

	// The second movie has no preview image, so the full poster is used
	for _, trailer := range trailers {
		if trailer.VideoName == "Second Movie" && trailer.ImageURL != "https://example.com/full2.jpg" {
			t.Errorf("expected fallback to the full poster, got %q", trailer.ImageURL)
		}
	}
}

func TestGetTrailersFromCollectionDeduplicates(t *testing.T) {
	// The same movie repeated across two pages must not duplicate trailers
	page := func(pageNum int) string {
		body, _ := json.Marshal(map[string]any{
			"docs": []map[string]any{
				{
					"id":   111,
					"name": "The Movie",
					"videos": map[string]any{
						"trailers": []map[string]any{{"url": "https://www.youtube.com/watch?v=aaa", "name": "Trailer"}},
					},
				},
			},
			"total": 2,
			"limit": 1,
			"page":  pageNum,
			"pages": 2,
		})
		return string(body)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page(1)))
	}))
	defer srv.Close()

	service := newTestService(srv.URL)
	trailers := service.GetTrailersFromCollection(context.Background(), "top250")

	if len(trailers) != 1 {
		t.Errorf("expected 1 distinct trailer across pages, got %d", len(trailers))
	}
}

func TestGetCollectionsFiltersEmpty(t *testing.T) {
	response := `{
		"docs": [
			{"slug": "top250", "name": "250 Best", "category": "Movies", "moviesCount": 250},
			{"slug": "empty", "name": "Empty", "category": "Movies", "moviesCount": 0}
		],
		"total": 2,
		"limit": 100,
		"page": 1,
		"pages": 1
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(response))
	}))
	defer srv.Close()

	service := newTestService(srv.URL)
	collections := service.GetCollections(context.Background())

	if len(collections) != 1 {
		t.Fatalf("expected 1 non-empty collection, got %d", len(collections))
	}
	if collections[0].Slug != "top250" {
		t.Errorf("expected top250, got %q", collections[0].Slug)
	}
}

func TestGetCollectionsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	service := newTestService(srv.URL)
	collections := service.GetCollections(context.Background())

	if len(collections) != 0 {
		t.Errorf("expected an empty collection list on upstream failure, got %d", len(collections))
	}
}
