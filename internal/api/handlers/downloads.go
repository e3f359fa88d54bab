package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/luzmane/kinotrailers/internal/models"
)

// DownloadsHandler lists the download registry
type DownloadsHandler struct {
	db     *models.Database
	logger *logrus.Logger
}

// NewDownloadsHandler creates a new downloads handler
func NewDownloadsHandler(db *models.Database, logger *logrus.Logger) *DownloadsHandler {
	return &DownloadsHandler{db: db, logger: logger}
}

// ServeHTTP handles the downloads listing endpoint
func (h *DownloadsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := h.db.ListDownloaded()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list downloads")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
