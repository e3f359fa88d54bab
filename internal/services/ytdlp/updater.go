package ytdlp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

const latestReleaseURL = "https://api.github.com/repos/yt-dlp/yt-dlp/releases/latest"

// releaseAsset is one downloadable file attached to a GitHub release
type releaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	ContentType        string `json:"content_type"`
}

// latestRelease is the GitHub latest-release response
type latestRelease struct {
	TagName string         `json:"tag_name"`
	Body    string         `json:"body"`
	HTMLURL string         `json:"html_url"`
	Assets  []releaseAsset `json:"assets"`
}

// Updater installs and updates the yt-dlp binary from GitHub releases
type Updater struct {
	binPath    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewUpdater creates an updater for the yt-dlp binary at binPath
func NewUpdater(binPath string, logger *logrus.Logger) *Updater {
	return &Updater{
		binPath:    binPath,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		logger:     logger,
	}
}

// EnsureLatest installs yt-dlp if missing, or replaces it when a newer
// release is available
func (u *Updater) EnsureLatest(ctx context.Context) error {
	release, err := u.fetchLatestRelease(ctx)
	if err != nil {
		return err
	}

	current, err := u.currentVersion(ctx)
	if err == nil && current == release.TagName {
		u.logger.WithField("version", current).Debug("yt-dlp is up to date")
		return nil
	}

	asset := pickAsset(release.Assets)
	if asset == nil {
		return fmt.Errorf("no suitable yt-dlp asset in release %s", release.TagName)
	}

	u.logger.WithFields(logrus.Fields{
		"version": release.TagName,
		"asset":   asset.Name,
	}).Info("Installing yt-dlp")

	if err := u.downloadAsset(ctx, asset.BrowserDownloadURL); err != nil {
		return err
	}

	u.logger.WithField("version", release.TagName).Info("yt-dlp installed")
	return nil
}

func (u *Updater) fetchLatestRelease(ctx context.Context) (*latestRelease, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestReleaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("accept", "application/vnd.github+json")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest yt-dlp release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release latestRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to parse release response: %w", err)
	}
	return &release, nil
}

func (u *Updater) currentVersion(ctx context.Context) (string, error) {
	if _, err := os.Stat(u.binPath); err != nil {
		return "", err
	}
	return NewDownloader(u.binPath, u.logger).Version(ctx)
}

func (u *Updater) downloadAsset(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download yt-dlp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("asset download returned status %d", resp.StatusCode)
	}

	tmpPath := u.binPath + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("failed to create binary file: %w", err)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write binary: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close binary file: %w", err)
	}

	if err := os.Rename(tmpPath, u.binPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace binary: %w", err)
	}
	return nil
}

// pickAsset selects the release asset matching the current platform
func pickAsset(assets []releaseAsset) *releaseAsset {
	wanted := "yt-dlp"
	switch runtime.GOOS {
	case "windows":
		wanted = "yt-dlp.exe"
	case "darwin":
		wanted = "yt-dlp_macos"
	}

	for i := range assets {
		if assets[i].Name == wanted {
			return &assets[i]
		}
	}
	return nil
}
