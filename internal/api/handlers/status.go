package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/luzmane/kinotrailers/internal/models"
)

// StatusHandler reports download registry statistics
type StatusHandler struct {
	db     *models.Database
	logger *logrus.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(db *models.Database, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{db: db, logger: logger}
}

type statusResponse struct {
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// ServeHTTP handles the status endpoint
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	completed, err := h.db.CountDownloaded(models.DownloadStatusCompleted)
	if err != nil {
		h.logger.WithError(err).Error("Failed to count completed downloads")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	failed, err := h.db.CountDownloaded(models.DownloadStatusFailed)
	if err != nil {
		h.logger.WithError(err).Error("Failed to count failed downloads")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statusResponse{
		Completed: completed,
		Failed:    failed,
	})
}
