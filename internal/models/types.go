package models

// ProviderKey is the provider-id map key under which the aggregating
// Kinopoisk provider stores its own movie id
const ProviderKey = "kinotrailers"

// External metadata provider keys
const (
	ProviderImdb = "Imdb"
	ProviderTmdb = "Tmdb"
)

// DownloadStatus represents the state of a trailer download
type DownloadStatus string

const (
	DownloadStatusCompleted DownloadStatus = "completed"
	DownloadStatusFailed    DownloadStatus = "failed"
)
