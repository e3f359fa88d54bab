package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/luzmane/kinotrailers/internal/controllers"
)

// SyncHandler triggers an out-of-schedule trailer sync
type SyncHandler struct {
	trailersCtrl *controllers.TrailersController
	logger       *logrus.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(trailersCtrl *controllers.TrailersController, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{trailersCtrl: trailersCtrl, logger: logger}
}

// ServeHTTP handles the manual sync endpoint. The sync runs in the
// background; the response only acknowledges the trigger.
func (h *SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.logger.Info("Manual sync triggered")
	go h.trailersCtrl.SyncAll(context.Background())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"status": "sync started"})
}
