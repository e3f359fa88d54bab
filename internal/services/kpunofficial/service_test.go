package kpunofficial

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luzmane/kinotrailers/internal/models"
)

func newTestService(baseURL string) *Service {
	client, _ := newTestClient(baseURL, "token")
	return &Service{client: client, logger: testLogger()}
}

func TestGetCollectionsIsStatic(t *testing.T) {
	service := newTestService("http://unused")
	collections := service.GetCollections(context.Background())

	if len(collections) != 13 {
		t.Errorf("expected the 13 hardcoded collections, got %d", len(collections))
	}
	for _, c := range collections {
		if c.Slug == "" || c.Name == "" {
			t.Errorf("collection %+v is missing slug or name", c)
		}
	}
}

func TestGetTrailersUnmappedCollection(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	service := newTestService(srv.URL)
	trailers := service.GetTrailersFromCollection(context.Background(), "theme_zombie")

	if len(trailers) != 0 {
		t.Errorf("expected no trailers for an unmapped collection, got %d", len(trailers))
	}
	if requests != 0 {
		t.Errorf("an unmapped collection should fail before any request, got %d calls", requests)
	}
}

func TestGetTrailersFromCollection(t *testing.T) {
	var collectionType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/videos"):
			// Same flat video list for both films
			w.Write([]byte(`{"total":2,"items":[
				{"url":"https://www.youtube.com/v/abc","name":"Trailer","site":"YOUTUBE"},
				{"url":"https://www.youtube.com/v/abc","name":"Teaser","site":"YOUTUBE"}
			]}`))
		default:
			collectionType = r.URL.Query().Get("type")
			w.Write([]byte(`{"total":2,"totalPages":1,"items":[
				{"kinopoiskId":111,"imdbId":"tt0000111","nameRu":"Первый фильм","year":1999,
				 "posterUrl":"https://example.com/full1.jpg","posterUrlPreview":"https://example.com/preview1.jpg",
				 "description":"Описание 1"},
				{"kinopoiskId":222,"nameRu":"Второй фильм","year":0,
				 "posterUrl":"https://example.com/full2.jpg","posterUrlPreview":""}
			]}`))
		}
	}))
	defer srv.Close()

	service := newTestService(srv.URL)
	trailers := service.GetTrailersFromCollection(context.Background(), "top250")

	if collectionType != "TOP_250_MOVIES" {
		t.Errorf("expected the slug to be remapped to TOP_250_MOVIES, got %q", collectionType)
	}

	// 2 films x 2 videos, identical URLs but different titles
	if len(trailers) != 4 {
		t.Fatalf("expected 4 distinct trailers, got %d", len(trailers))
	}

	for _, trailer := range trailers {
		if trailer.ProviderIDs[models.ProviderKey] == "" {
			t.Errorf("trailer %q is missing the provider id", trailer.TrailerName)
		}
		if trailer.URL != "https://www.youtube.com/watch?v=abc" {
			t.Errorf("expected a normalized URL, got %q", trailer.URL)
		}
	}

	first := trailers[0]
	if first.VideoName != "Первый фильм" {
		t.Errorf("unexpected video name %q", first.VideoName)
	}
	if first.ImageURL != "https://example.com/preview1.jpg" {
		t.Errorf("expected the preview poster, got %q", first.ImageURL)
	}
	if first.ProviderIDs[models.ProviderImdb] != "tt0000111" {
		t.Errorf("expected the IMDB id, got %q", first.ProviderIDs[models.ProviderImdb])
	}
	if first.PremierDate == nil || first.PremierDate.Year() != 1999 {
		t.Errorf("expected a year-derived premiere date, got %v", first.PremierDate)
	}

	// The second film has an out-of-range year and no preview poster
	for _, trailer := range trailers {
		if trailer.VideoName != "Второй фильм" {
			continue
		}
		if trailer.PremierDate != nil {
			t.Errorf("expected no premiere date for year 0, got %v", trailer.PremierDate)
		}
		if trailer.ImageURL != "https://example.com/full2.jpg" {
			t.Errorf("expected fallback to the full poster, got %q", trailer.ImageURL)
		}
	}
}

func TestGetTrailersSkipsFilmWithFailedVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/films/111/"):
			w.WriteHeader(http.StatusInternalServerError)
		case strings.Contains(r.URL.Path, "/videos"):
			w.Write([]byte(`{"total":1,"items":[{"url":"https://example.com/v","name":"Trailer"}]}`))
		default:
			w.Write([]byte(`{"total":2,"totalPages":1,"items":[
				{"kinopoiskId":111,"nameRu":"Один"},
				{"kinopoiskId":222,"nameRu":"Два"}
			]}`))
		}
	}))
	defer srv.Close()

	service := newTestService(srv.URL)
	trailers := service.GetTrailersFromCollection(context.Background(), "top250")

	if len(trailers) != 1 {
		t.Fatalf("expected the surviving film's trailer only, got %d", len(trailers))
	}
	if trailers[0].VideoName != "Два" {
		t.Errorf("expected the second film's trailer, got %q", trailers[0].VideoName)
	}
}

func TestSlugMapCoversKnownCollections(t *testing.T) {
	for slug := range collectionSlugMap {
		found := false
		for _, c := range collections {
			if c.Slug == slug {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("mapped slug %q is not in the static catalog", slug)
		}
	}
}

func TestPaginationAcrossPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/videos"):
			filmID := strings.Split(r.URL.Path, "/")[4]
			fmt.Fprintf(w, `{"total":1,"items":[{"url":"https://example.com/%s","name":"Trailer %s"}]}`, filmID, filmID)
		default:
			page := r.URL.Query().Get("page")
			fmt.Fprintf(w, `{"total":2,"totalPages":2,"items":[{"kinopoiskId":%s00,"nameRu":"Film %s"}]}`, page, page)
		}
	}))
	defer srv.Close()

	service := newTestService(srv.URL)
	trailers := service.GetTrailersFromCollection(context.Background(), "top250")

	if len(trailers) != 2 {
		t.Fatalf("expected one trailer per page, got %d", len(trailers))
	}
}
