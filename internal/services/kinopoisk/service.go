// Package kinopoisk defines the provider-agnostic trailer aggregation
// contract and the pieces shared by both Kinopoisk API clients.
package kinopoisk

import (
	"context"

	"github.com/luzmane/kinotrailers/internal/models"
)

// Service aggregates trailer metadata from one Kinopoisk provider.
// Implementations never return Go errors from these methods: every upstream
// failure is logged (and, for credential/quota problems, notified) and
// surfaces to the caller only as a shorter or empty result.
type Service interface {
	// GetCollections lists the collections the provider can serve
	GetCollections(ctx context.Context) []models.Collection

	// GetTrailersFromCollection returns the deduplicated trailers of every
	// movie in the collection identified by the given slug
	GetTrailersFromCollection(ctx context.Context, collectionID string) []models.Trailer
}

// TokenSource returns the current API token. An empty string means no token
// is configured and short-circuits any request before network I/O.
type TokenSource func() string
