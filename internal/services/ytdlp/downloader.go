// Package ytdlp downloads trailer videos to disk through a yt-dlp binary
// and keeps that binary up to date from GitHub releases.
package ytdlp

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Downloader runs yt-dlp to fetch a trailer video
type Downloader struct {
	binPath string
	logger  *logrus.Logger
}

// NewDownloader creates a downloader around the given yt-dlp binary
func NewDownloader(binPath string, logger *logrus.Logger) *Downloader {
	return &Downloader{binPath: binPath, logger: logger}
}

// DownloadTrailer downloads the video at url into basePath, preferring the
// given video height. Returns the path of the downloaded file.
func (d *Downloader) DownloadTrailer(ctx context.Context, url, videoName string, quality int, basePath string) (string, error) {
	outputTemplate := filepath.Join(basePath, sanitizeFileName(videoName)+" - %(title)s.%(ext)s")
	format := fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", quality, quality)

	d.logger.WithFields(logrus.Fields{
		"url":     url,
		"video":   videoName,
		"quality": quality,
	}).Info("Downloading trailer")

	cmd := exec.CommandContext(ctx, d.binPath,
		"--no-progress",
		"--no-playlist",
		"-f", format,
		"-o", outputTemplate,
		"--print", "after_move:filepath",
		"--no-simulate",
		url,
	)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("yt-dlp failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("failed to run yt-dlp: %w", err)
	}

	filePath := strings.TrimSpace(string(output))
	d.logger.WithField("path", filePath).Info("Trailer downloaded")
	return filePath, nil
}

// Version returns the version of the installed yt-dlp binary
func (d *Downloader) Version(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, d.binPath, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("failed to get yt-dlp version: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// sanitizeFileName strips characters that are unsafe in file names
func sanitizeFileName(name string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(name)
}
