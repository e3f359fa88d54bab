package controllers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/luzmane/kinotrailers/internal/config"
	"github.com/luzmane/kinotrailers/internal/metrics"
	"github.com/luzmane/kinotrailers/internal/models"
	"github.com/luzmane/kinotrailers/internal/services/kinopoisk"
	"github.com/luzmane/kinotrailers/internal/services/ytdlp"
)

// TrailersController syncs trailers of the configured collections: it asks
// the Kinopoisk service for trailer metadata, skips trailers that were
// already downloaded and hands the rest to yt-dlp
type TrailersController struct {
	service     kinopoisk.Service
	db          *models.Database
	downloader  *ytdlp.Downloader
	collections []string
	quality     int
	downloadDir string
	logger      *logrus.Logger
}

// NewTrailersController creates a new trailers controller
func NewTrailersController(cfg *config.Config, service kinopoisk.Service, db *models.Database, downloader *ytdlp.Downloader, logger *logrus.Logger) *TrailersController {
	return &TrailersController{
		service:     service,
		db:          db,
		downloader:  downloader,
		collections: cfg.Collections,
		quality:     cfg.TrailerQuality,
		downloadDir: cfg.DownloadDir,
		logger:      logger,
	}
}

// SyncAll syncs every configured collection
func (c *TrailersController) SyncAll(ctx context.Context) {
	for _, slug := range c.collections {
		if ctx.Err() != nil {
			c.logger.Info("Sync cancelled")
			return
		}
		c.SyncCollection(ctx, slug)
	}
}

// SyncCollection fetches the trailers of one collection and downloads the
// ones not seen before
func (c *TrailersController) SyncCollection(ctx context.Context, slug string) {
	c.logger.WithField("collection", slug).Info("Syncing collection")

	trailers := c.service.GetTrailersFromCollection(ctx, slug)
	if len(trailers) == 0 {
		c.logger.WithField("collection", slug).Info("No trailers to sync")
		return
	}

	downloaded := 0
	for _, trailer := range trailers {
		if ctx.Err() != nil {
			c.logger.Info("Sync cancelled")
			return
		}
		if c.downloadTrailer(ctx, trailer) {
			downloaded++
		}
	}

	c.logger.WithFields(logrus.Fields{
		"collection": slug,
		"trailers":   len(trailers),
		"downloaded": downloaded,
	}).Info("Collection synced")
}

// downloadTrailer downloads one trailer unless it is already on disk.
// Returns true when a new file was downloaded.
func (c *TrailersController) downloadTrailer(ctx context.Context, trailer models.Trailer) bool {
	key := trailer.Key()
	done, err := c.db.IsDownloaded(key)
	if err != nil {
		c.logger.WithError(err).Error("Failed to check download registry")
		return false
	}
	if done {
		c.logger.WithFields(logrus.Fields{
			"video":   trailer.VideoName,
			"trailer": trailer.TrailerName,
		}).Debug("Trailer already downloaded, skipping")
		return false
	}

	record := &models.DownloadedTrailer{
		Key:         key,
		VideoName:   trailer.VideoName,
		TrailerName: trailer.TrailerName,
		URL:         trailer.URL,
		ProviderIDs: trailer.ProviderIDs,
	}

	filePath, err := c.downloader.DownloadTrailer(ctx, trailer.URL, trailer.VideoName, c.quality, c.downloadDir)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"video": trailer.VideoName,
			"url":   trailer.URL,
		}).Error("Trailer download failed")
		metrics.TrailersDownloaded.WithLabelValues("failed").Inc()
		record.Status = models.DownloadStatusFailed
	} else {
		metrics.TrailersDownloaded.WithLabelValues("completed").Inc()
		record.Status = models.DownloadStatusCompleted
		record.FilePath = filePath
	}

	if err := c.db.SaveDownloadedTrailer(record); err != nil {
		c.logger.WithError(err).Error("Failed to record trailer download")
	}

	return record.Status == models.DownloadStatusCompleted
}
