package kinopoisk

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Page is one page of a paginated provider response. HasError marks pages
// that could not be fetched or parsed; such pages carry no items.
type Page[T any] struct {
	Items      []T
	Total      int
	TotalPages int
	HasError   bool
}

// ErrorPage returns an error-flagged empty page
func ErrorPage[T any]() Page[T] {
	return Page[T]{HasError: true}
}

// PageFunc fetches one page of a collection. Pages are numbered from 1.
type PageFunc[T any] func(ctx context.Context, page int) Page[T]

// FetchAllPages walks every page of a collection, one page at a time, and
// returns the concatenated items. A failed first page aborts the whole fetch
// (there is nothing to paginate from); a failed later page is skipped with a
// warning so one bad page degrades completeness but never the entire
// collection. The page count comes from the first page and is not
// re-evaluated.
func FetchAllPages[T any](ctx context.Context, log *logrus.Logger, collectionID string, fetch PageFunc[T]) []T {
	log.WithField("collection", collectionID).Info("Fetching all collection items")

	var items []T
	first := fetch(ctx, 1)
	if first.HasError {
		log.WithField("collection", collectionID).Error("Failed to fetch items list from API")
		return items
	}

	if len(first.Items) == 0 {
		log.WithField("collection", collectionID).Info("No items found")
		return items
	}

	items = append(items, first.Items...)
	for page := 2; page <= first.TotalPages; page++ {
		log.WithFields(logrus.Fields{
			"collection": collectionID,
			"page":       page,
			"pages":      first.TotalPages,
			"items":      len(items),
			"total":      first.Total,
		}).Info("Requesting collection page")

		next := fetch(ctx, page)
		if next.HasError {
			log.WithFields(logrus.Fields{
				"collection": collectionID,
				"page":       page,
			}).Warn("Failed to fetch page, skipping")
			continue
		}

		items = append(items, next.Items...)
	}

	return items
}
