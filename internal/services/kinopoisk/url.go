package kinopoisk

import "strings"

// YouTube URL fragments rewritten to the canonical watch form
const (
	youtubeEmbed = "www.youtube.com/embed/"
	youtubeV     = "www.youtube.com/v/"
	youtubeWatch = "www.youtube.com/watch?v="
)

// NormalizeVideoURL rewrites embed-style and short-form YouTube URLs to the
// canonical watch form. Already-canonical URLs pass through unchanged.
func NormalizeVideoURL(url string) string {
	url = strings.ReplaceAll(url, youtubeEmbed, youtubeWatch)
	url = strings.ReplaceAll(url, youtubeV, youtubeWatch)
	return url
}
