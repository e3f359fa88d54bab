package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/luzmane/kinotrailers/internal/controllers"
	"github.com/luzmane/kinotrailers/internal/services/ytdlp"
)

// Scheduler manages scheduled tasks
type Scheduler struct {
	cron         *cron.Cron
	trailersCtrl *controllers.TrailersController
	updater      *ytdlp.Updater
	logger       *logrus.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(trailersCtrl *controllers.TrailersController, updater *ytdlp.Updater, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		trailersCtrl: trailersCtrl,
		updater:      updater,
		logger:       logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.logger.Info("Starting scheduler")

	// Every 12 hours: sync trailers of the configured collections
	_, err := s.cron.AddFunc("0 */12 * * *", func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("failed to add sync job: %w", err)
	}

	// Every day at 03:00: check for a new yt-dlp release
	_, err = s.cron.AddFunc("0 3 * * *", func() {
		s.runYtdlpUpdate()
	})
	if err != nil {
		return fmt.Errorf("failed to add yt-dlp update job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")

	// Install yt-dlp and run the first sync immediately
	go func() {
		s.runYtdlpUpdate()
		s.runSync()
	}()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	s.cron.Stop()
}

// runSync executes the trailer sync job
func (s *Scheduler) runSync() {
	s.logger.Info("Running scheduled trailer sync")
	s.trailersCtrl.SyncAll(context.Background())
	s.logger.Info("Trailer sync completed")
}

// runYtdlpUpdate executes the yt-dlp update job
func (s *Scheduler) runYtdlpUpdate() {
	s.logger.Debug("Running yt-dlp update check")
	if err := s.updater.EnsureLatest(context.Background()); err != nil {
		s.logger.WithError(err).Error("yt-dlp update check failed")
	}
}
