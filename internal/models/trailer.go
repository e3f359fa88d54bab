package models

import (
	"sort"
	"strings"
	"time"
)

// Trailer is the canonical trailer record produced by both Kinopoisk
// providers. Two trailers are considered the same iff every field matches.
type Trailer struct {
	ImageURL    string // preview image, falls back to the full poster
	VideoName   string // movie/show title
	TrailerName string // trailer or teaser title
	Overview    string
	ProviderIDs map[string]string // always contains ProviderKey, optionally Imdb/Tmdb
	URL         string            // normalized playable video URL
	PremierDate *time.Time
}

// Key returns the full-field identity of the trailer, used for dedup.
// Provider ids are serialized in sorted key order so that map iteration
// order never affects identity.
func (t *Trailer) Key() string {
	keys := make([]string, 0, len(t.ProviderIDs))
	for k := range t.ProviderIDs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(t.ImageURL)
	sb.WriteByte('\x1f')
	sb.WriteString(t.VideoName)
	sb.WriteByte('\x1f')
	sb.WriteString(t.TrailerName)
	sb.WriteByte('\x1f')
	sb.WriteString(t.Overview)
	sb.WriteByte('\x1f')
	sb.WriteString(t.URL)
	sb.WriteByte('\x1f')
	if t.PremierDate != nil {
		sb.WriteString(t.PremierDate.UTC().Format(time.RFC3339Nano))
	}
	for _, k := range keys {
		sb.WriteByte('\x1f')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(t.ProviderIDs[k])
	}
	return sb.String()
}

// TrailerSet collapses duplicate trailers by full-field identity.
// It is local to a single aggregation call and not safe for concurrent use.
type TrailerSet struct {
	trailers map[string]Trailer
	order    []string
}

// NewTrailerSet creates an empty trailer set
func NewTrailerSet() *TrailerSet {
	return &TrailerSet{trailers: make(map[string]Trailer)}
}

// Add inserts the trailer unless an identical one is already present.
// Returns true if the trailer was added.
func (s *TrailerSet) Add(t Trailer) bool {
	key := t.Key()
	if _, ok := s.trailers[key]; ok {
		return false
	}
	s.trailers[key] = t
	s.order = append(s.order, key)
	return true
}

// Len returns the number of distinct trailers in the set
func (s *TrailerSet) Len() int {
	return len(s.trailers)
}

// Items returns the distinct trailers in insertion order
func (s *TrailerSet) Items() []Trailer {
	items := make([]Trailer, 0, len(s.order))
	for _, key := range s.order {
		items = append(items, s.trailers[key])
	}
	return items
}
