// Package notify is the operator-facing side channel for credential and
// quota failures reported by the provider clients.
package notify

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Notifier delivers an operator-visible message. Implementations are
// fire-and-forget: delivery failures must not affect the caller.
type Notifier interface {
	Notify(message, short string)
}

// LogNotifier writes notifications to the application log only
type LogNotifier struct {
	logger *logrus.Logger
}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification at error level
func (n *LogNotifier) Notify(message, short string) {
	n.logger.WithField("title", short).Error(message)
}

// WebhookNotifier POSTs notifications to a configured webhook URL in
// addition to logging them
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewWebhookNotifier creates a webhook-backed notifier
func NewWebhookNotifier(url string, logger *logrus.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type webhookPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Notify logs the notification and posts it to the webhook
func (n *WebhookNotifier) Notify(message, short string) {
	n.logger.WithField("title", short).Error(message)

	payload, err := json.Marshal(webhookPayload{Title: short, Message: message})
	if err != nil {
		n.logger.WithError(err).Warn("Failed to marshal notification payload")
		return
	}

	resp, err := n.httpClient.Post(n.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		n.logger.WithError(err).Warn("Failed to deliver webhook notification")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.WithField("status_code", resp.StatusCode).Warn("Webhook notification rejected")
	}
}
