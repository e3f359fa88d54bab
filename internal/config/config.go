package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Supported Kinopoisk providers
const (
	ProviderKinopoiskDev        = "kinopoisk.dev"
	ProviderKinopoiskUnofficial = "kinopoiskapiunofficial.tech"
)

// Config holds all application configuration
type Config struct {
	// Kinopoisk
	Provider    string // "kinopoisk.dev" or "kinopoiskapiunofficial.tech"
	Token       string
	Collections []string // collection slugs to sync (e.g. "top250")

	// Download
	DownloadDir    string
	TrailerQuality int // preferable video height (e.g. 1080)

	// Notifications
	WebhookURL string // optional, POST target for operator notifications

	// Server
	ServerPort string

	// Paths
	DatabaseFile string // $CONFIG_DIR/kinotrailers.db
	YtdlpPath    string // $CONFIG_DIR/yt-dlp unless overridden

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Setup viper FIRST to load .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("KINOPOISK_PROVIDER", ProviderKinopoiskDev)
	viper.SetDefault("COLLECTIONS", "top250")
	viper.SetDefault("TRAILER_QUALITY", 1080)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// NOW read CONFIG_DIR from viper (which has loaded .env file)
	configDir := viper.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "kinotrailers")
	} else {
		// Convert relative path to absolute path
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	downloadDir := viper.GetString("DOWNLOAD_DIR")
	if downloadDir == "" {
		downloadDir = filepath.Join(configDir, "trailers")
	}
	if err := os.MkdirAll(downloadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create download directory: %w", err)
	}

	ytdlpPath := viper.GetString("YTDLP_PATH")
	if ytdlpPath == "" {
		ytdlpPath = filepath.Join(configDir, "yt-dlp")
	}

	config := &Config{
		// Kinopoisk
		Provider:    viper.GetString("KINOPOISK_PROVIDER"),
		Token:       viper.GetString("KINOPOISK_TOKEN"),
		Collections: splitCollections(viper.GetString("COLLECTIONS")),

		// Download
		DownloadDir:    downloadDir,
		TrailerQuality: viper.GetInt("TRAILER_QUALITY"),

		// Notifications
		WebhookURL: viper.GetString("NOTIFY_WEBHOOK_URL"),

		// Server
		ServerPort: viper.GetString("SERVER_PORT"),

		// Paths
		DatabaseFile: filepath.Join(configDir, "kinotrailers.db"),
		YtdlpPath:    ytdlpPath,

		// Logging
		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	// Validate required fields
	if config.Provider != ProviderKinopoiskDev && config.Provider != ProviderKinopoiskUnofficial {
		return nil, fmt.Errorf("KINOPOISK_PROVIDER must be %q or %q", ProviderKinopoiskDev, ProviderKinopoiskUnofficial)
	}
	if config.Token == "" {
		return nil, fmt.Errorf("KINOPOISK_TOKEN is required")
	}
	if len(config.Collections) == 0 {
		return nil, fmt.Errorf("COLLECTIONS is required")
	}

	return config, nil
}

func splitCollections(raw string) []string {
	var collections []string
	for _, slug := range strings.Split(raw, ",") {
		slug = strings.TrimSpace(slug)
		if slug != "" {
			collections = append(collections, slug)
		}
	}
	return collections
}
