package kpdev

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/luzmane/kinotrailers/internal/models"
	"github.com/luzmane/kinotrailers/internal/notify"
	"github.com/luzmane/kinotrailers/internal/services/kinopoisk"
)

// Service aggregates trailers from api.kinopoisk.dev
type Service struct {
	client *Client
	logger *logrus.Logger
}

// NewService creates the api.kinopoisk.dev aggregation service
func NewService(token kinopoisk.TokenSource, notifier notify.Notifier, logger *logrus.Logger) *Service {
	return &Service{
		client: NewClient(token, notifier, logger),
		logger: logger,
	}
}

// GetCollections fetches the collection catalog from the API, dropping
// empty collections
func (s *Service) GetCollections(ctx context.Context) []models.Collection {
	s.logger.Info("Fetch Kinopoisk collections")
	page := s.client.GetCollections(ctx)
	if page.HasError {
		s.logger.Info("Failed to fetch Kinopoisk collections")
		return []models.Collection{}
	}

	s.logger.WithField("count", len(page.Items)).Info("Found collections")
	collections := make([]models.Collection, 0, len(page.Items))
	for _, list := range page.Items {
		if list.MoviesCount <= 0 {
			continue
		}
		collections = append(collections, models.Collection{
			Slug:        list.Slug,
			Name:        list.Name,
			Category:    list.Category,
			MoviesCount: list.MoviesCount,
		})
	}
	return collections
}

// GetTrailersFromCollection fetches every movie of the collection and maps
// its trailers and teasers into deduplicated canonical trailer records
func (s *Service) GetTrailersFromCollection(ctx context.Context, collectionID string) []models.Trailer {
	s.logger.WithField("collection", collectionID).Info("Get trailers")
	trailers := models.NewTrailerSet()

	movies := kinopoisk.FetchAllPages(ctx, s.logger, collectionID, func(ctx context.Context, page int) kinopoisk.Page[Movie] {
		return s.client.GetCollectionItems(ctx, collectionID, page)
	})

	for _, movie := range movies {
		providerIDs := map[string]string{
			models.ProviderKey: strconv.FormatInt(movie.ID, 10),
		}
		if movie.ExternalID != nil && movie.ExternalID.Imdb != "" {
			providerIDs[models.ProviderImdb] = movie.ExternalID.Imdb
		}
		if movie.ExternalID != nil && movie.ExternalID.Tmdb != nil {
			providerIDs[models.ProviderTmdb] = strconv.FormatInt(*movie.ExternalID.Tmdb, 10)
		}

		if movie.Videos == nil {
			continue
		}
		for _, video := range movie.Videos.Trailers {
			trailers.Add(s.toTrailer(movie, video, providerIDs))
		}
		for _, video := range movie.Videos.Teasers {
			trailers.Add(s.toTrailer(movie, video, providerIDs))
		}
	}

	s.logger.WithFields(logrus.Fields{
		"collection": collectionID,
		"count":      trailers.Len(),
	}).Info("Return trailers")

	return trailers.Items()
}

func (s *Service) toTrailer(movie Movie, video Video, providerIDs map[string]string) models.Trailer {
	var imageURL string
	if movie.Poster != nil {
		imageURL = movie.Poster.PreviewURL
		if imageURL == "" {
			imageURL = movie.Poster.URL
		}
	}

	return models.Trailer{
		ImageURL:    imageURL,
		VideoName:   movie.Name,
		TrailerName: video.Name,
		Overview:    movie.Description,
		ProviderIDs: providerIDs,
		URL:         kinopoisk.NormalizeVideoURL(video.URL),
		PremierDate: kinopoisk.ResolvePremierDate(movie.Premiere),
	}
}
