package models

// Collection represents a named, curated list of movies/shows exposed
// by a Kinopoisk provider (e.g. "Top 250")
type Collection struct {
	Slug        string
	Name        string
	Category    string
	MoviesCount int
}
