package kpunofficial

// Film is a movie record from the kinopoiskapiunofficial.tech v2.2
// collections endpoint
type Film struct {
	KinopoiskID      int64  `json:"kinopoiskId"`
	ImdbID           string `json:"imdbId"`
	Description      string `json:"description"`
	NameRu           string `json:"nameRu"`
	Year             int    `json:"year"`
	PosterURL        string `json:"posterUrl"`
	PosterURLPreview string `json:"posterUrlPreview"`
}

// Video is a single promotional video attached to a film
type Video struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Site string `json:"site"`
}

// searchResult is the paginated envelope of the v2.2 endpoints. The videos
// endpoint returns a single flat page with no totalPages.
type searchResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
