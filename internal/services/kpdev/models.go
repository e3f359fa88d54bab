package kpdev

import "github.com/luzmane/kinotrailers/internal/services/kinopoisk"

// Movie is a movie/show record from the api.kinopoisk.dev v1.4 movie
// endpoint, limited to the fields requested via selectFields
type Movie struct {
	AlternativeName string              `json:"alternativeName"`
	ExternalID      *ExternalID         `json:"externalId"`
	ID              int64               `json:"id"`
	Name            string              `json:"name"`
	TypeNumber      int                 `json:"typeNumber"`
	Videos          *Videos             `json:"videos"`
	Premiere        *kinopoisk.Premiere `json:"premiere"`
	Description     string              `json:"description"`
	Poster          *Image              `json:"poster"`
}

// ExternalID maps a movie to other metadata providers
type ExternalID struct {
	Imdb string `json:"imdb"`
	Tmdb *int64 `json:"tmdb"`
}

// Videos buckets the promotional videos of a movie
type Videos struct {
	Trailers []Video `json:"trailers"`
	Teasers  []Video `json:"teasers"`
}

// Video is a single trailer or teaser entry
type Video struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Image is a poster or cover with an optional preview variant
type Image struct {
	URL        string `json:"url"`
	PreviewURL string `json:"previewUrl"`
}

// List is a curated collection descriptor from the v1.4 list endpoint
type List struct {
	Category    string `json:"category"`
	Cover       *Image `json:"cover"`
	MoviesCount int    `json:"moviesCount"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
}

// errorResponse is the structured error body api.kinopoisk.dev returns for
// 4xx responses
type errorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    []string `json:"message"`
	Error      string   `json:"error"`
}

// searchResult is the paginated envelope of the v1.4 endpoints
type searchResult[T any] struct {
	Docs  []T `json:"docs"`
	Total int `json:"total"`
	Limit int `json:"limit"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// toPage converts the wire envelope into a provider-agnostic page. The page
// count is derived from total/limit rather than trusted from the envelope.
func toPage[T any](res searchResult[T]) kinopoisk.Page[T] {
	pages := 0
	if res.Limit > 0 {
		pages = (res.Total + res.Limit - 1) / res.Limit
	}
	return kinopoisk.Page[T]{
		Items:      res.Docs,
		Total:      res.Total,
		TotalPages: pages,
	}
}
