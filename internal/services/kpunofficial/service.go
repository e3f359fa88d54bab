package kpunofficial

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/luzmane/kinotrailers/internal/models"
	"github.com/luzmane/kinotrailers/internal/notify"
	"github.com/luzmane/kinotrailers/internal/services/kinopoisk"
)

// Service aggregates trailers from kinopoiskapiunofficial.tech
type Service struct {
	client *Client
	logger *logrus.Logger
}

// NewService creates the kinopoiskapiunofficial.tech aggregation service
func NewService(token kinopoisk.TokenSource, notifier notify.Notifier, logger *logrus.Logger) *Service {
	return &Service{
		client: NewClient(token, notifier, logger),
		logger: logger,
	}
}

// GetCollections returns the static collection catalog. The API has no
// endpoint to list collections, so the list is hardcoded.
func (s *Service) GetCollections(ctx context.Context) []models.Collection {
	s.logger.Info("kinopoiskapiunofficial.tech doesn't have a method to fetch collections, so the list is hardcoded")
	return collections
}

// GetTrailersFromCollection fetches every film of the collection and the
// videos of each film, mapping them into deduplicated canonical trailer
// records. The collection slug must be present in the slug map.
func (s *Service) GetTrailersFromCollection(ctx context.Context, collectionID string) []models.Trailer {
	s.logger.WithField("collection", collectionID).Info("Get trailers")
	trailers := models.NewTrailerSet()

	slug, ok := collectionSlugMap[collectionID]
	if !ok {
		s.logger.WithField("collection", collectionID).Error("Unable to map to a collection id of kinopoiskapiunofficial.tech")
		return trailers.Items()
	}
	s.logger.WithFields(logrus.Fields{
		"collection": collectionID,
		"slug":       slug,
	}).Info("Collection mapped")

	films := kinopoisk.FetchAllPages(ctx, s.logger, slug, func(ctx context.Context, page int) kinopoisk.Page[Film] {
		return s.client.GetCollectionItems(ctx, slug, page)
	})

	for _, film := range films {
		filmID := strconv.FormatInt(film.KinopoiskID, 10)
		providerIDs := map[string]string{
			models.ProviderKey: filmID,
		}
		if film.ImdbID != "" {
			providerIDs[models.ProviderImdb] = film.ImdbID
		}

		videos := s.client.GetFilmVideos(ctx, filmID)
		if videos.HasError {
			s.logger.WithField("film", filmID).Error("Failed to fetch trailers from API")
			continue
		}

		s.logger.WithFields(logrus.Fields{
			"film":  filmID,
			"count": len(videos.Items),
		}).Debug("Film videos fetched")

		for _, video := range videos.Items {
			trailers.Add(models.Trailer{
				ImageURL:    posterOf(film),
				VideoName:   film.NameRu,
				TrailerName: video.Name,
				Overview:    film.Description,
				ProviderIDs: providerIDs,
				URL:         kinopoisk.NormalizeVideoURL(video.URL),
				PremierDate: premierDateOf(film),
			})
		}
	}

	s.logger.WithFields(logrus.Fields{
		"collection": collectionID,
		"count":      trailers.Len(),
	}).Info("Return trailers")

	return trailers.Items()
}

func posterOf(film Film) string {
	if film.PosterURLPreview != "" {
		return film.PosterURLPreview
	}
	return film.PosterURL
}

// premierDateOf derives a coarse premiere date from the release year, the
// only date this provider exposes
func premierDateOf(film Film) *time.Time {
	if film.Year <= 1000 || film.Year >= 3000 {
		return nil
	}
	date := time.Date(film.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &date
}
