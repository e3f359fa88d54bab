package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/luzmane/kinotrailers/internal/api"
	"github.com/luzmane/kinotrailers/internal/config"
	"github.com/luzmane/kinotrailers/internal/controllers"
	"github.com/luzmane/kinotrailers/internal/models"
	"github.com/luzmane/kinotrailers/internal/notify"
	"github.com/luzmane/kinotrailers/internal/scheduler"
	"github.com/luzmane/kinotrailers/internal/services/kinopoisk"
	"github.com/luzmane/kinotrailers/internal/services/kpdev"
	"github.com/luzmane/kinotrailers/internal/services/kpunofficial"
	"github.com/luzmane/kinotrailers/internal/services/ytdlp"
	"github.com/luzmane/kinotrailers/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Setup logger
	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Starting kinotrailers")
	logger.WithField("config_dir", filepath.Dir(cfg.DatabaseFile)).Info("Configuration loaded")

	// 3. Initialize database
	db, err := models.NewDatabase(cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()
	logger.Info("Database initialized")

	// 4. Initialize notifier
	var notifier notify.Notifier
	if cfg.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.WebhookURL, logger)
		logger.Info("Webhook notifier initialized")
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	// 5. Initialize Kinopoisk service
	token := kinopoisk.TokenSource(func() string { return cfg.Token })
	var service kinopoisk.Service
	switch cfg.Provider {
	case config.ProviderKinopoiskDev:
		service = kpdev.NewService(token, notifier, logger)
	case config.ProviderKinopoiskUnofficial:
		service = kpunofficial.NewService(token, notifier, logger)
	default:
		return fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
	logger.WithField("provider", cfg.Provider).Info("Kinopoisk service initialized")

	// 6. Initialize downloader and controller
	downloader := ytdlp.NewDownloader(cfg.YtdlpPath, logger)
	updater := ytdlp.NewUpdater(cfg.YtdlpPath, logger)
	trailersCtrl := controllers.NewTrailersController(cfg, service, db, downloader, logger)
	logger.Info("Controllers initialized")

	// 7. Initialize scheduler
	sched := scheduler.NewScheduler(trailersCtrl, updater, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	// 8. Initialize HTTP server
	server := api.NewServer(cfg, db, trailersCtrl, logger)

	// Start server in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrChan <- err
		}
	}()

	// 9. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("kinotrailers is running")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}

	logger.Info("kinotrailers stopped")
	return nil
}
