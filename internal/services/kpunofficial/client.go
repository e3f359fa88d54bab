package kpunofficial

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/luzmane/kinotrailers/internal/metrics"
	"github.com/luzmane/kinotrailers/internal/notify"
	"github.com/luzmane/kinotrailers/internal/services/kinopoisk"
)

const (
	defaultBaseURL = "https://kinopoiskapiunofficial.tech"
	providerName   = "kinopoiskapiunofficial.tech"
)

var errRateLimited = errors.New("rate limited")

// sendOutcome classifies the result of one request after the provider
// error policy has been applied
type sendOutcome int

const (
	sendOK sendOutcome = iota
	sendNotFound
	sendFailed
)

// Client issues authenticated requests to kinopoiskapiunofficial.tech
type Client struct {
	baseURL    string
	token      kinopoisk.TokenSource
	httpClient *http.Client
	notifier   notify.Notifier
	logger     *logrus.Logger
}

// NewClient creates a new kinopoiskapiunofficial.tech client
func NewClient(token kinopoisk.TokenSource, notifier notify.Notifier, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: kinopoisk.NewHTTPClient(),
		notifier:   notifier,
		logger:     logger,
	}
}

// GetCollectionItems fetches one page of a collection. collectionType is the
// provider-specific collection key (e.g. TOP_250_MOVIES).
func (c *Client) GetCollectionItems(ctx context.Context, collectionType string, page int) kinopoisk.Page[Film] {
	requestURL := fmt.Sprintf("%s/api/v2.2/films/collections?page=%d&type=%s", c.baseURL, page, collectionType)
	body, outcome := c.send(ctx, requestURL)
	switch outcome {
	case sendNotFound:
		return kinopoisk.Page[Film]{}
	case sendFailed:
		return kinopoisk.ErrorPage[Film]()
	}

	var res searchResult[Film]
	if err := json.Unmarshal(body, &res); err != nil {
		c.logger.WithError(err).Error("Failed to parse collection items response")
		return kinopoisk.ErrorPage[Film]()
	}

	return kinopoisk.Page[Film]{
		Items:      res.Items,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	}
}

// GetFilmVideos fetches the flat video list of one film
func (c *Client) GetFilmVideos(ctx context.Context, filmID string) kinopoisk.Page[Video] {
	requestURL := fmt.Sprintf("%s/api/v2.2/films/%s/videos", c.baseURL, filmID)
	body, outcome := c.send(ctx, requestURL)
	switch outcome {
	case sendNotFound:
		return kinopoisk.Page[Video]{}
	case sendFailed:
		return kinopoisk.ErrorPage[Video]()
	}

	var res searchResult[Video]
	if err := json.Unmarshal(body, &res); err != nil {
		c.logger.WithError(err).Error("Failed to parse film videos response")
		return kinopoisk.ErrorPage[Video]()
	}

	return kinopoisk.Page[Video]{
		Items: res.Items,
		Total: res.Total,
	}
}

// send issues one GET request and applies the provider error policy:
// 401 and 402 notify the operator, 404 is an empty non-error result, 429 is
// retried in place every 2 seconds until the rate limit lifts or the context
// is cancelled, anything else fails the request.
func (c *Client) send(ctx context.Context, requestURL string) ([]byte, sendOutcome) {
	c.logger.WithField("url", requestURL).Debug("Sending request")

	token := c.token()
	if token == "" {
		c.logger.Error("The token is empty. Skip request")
		return nil, sendFailed
	}

	var body []byte
	outcome := sendFailed
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			c.logger.WithError(err).Error("Failed to create request")
			return nil
		}
		req.Header.Set("X-API-KEY", token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.ProviderRequests.WithLabelValues(providerName, "transport_error").Inc()
			c.logger.WithError(err).WithField("url", requestURL).Error("Unable to fetch data from URL")
			return nil
		}
		defer resp.Body.Close()

		metrics.ProviderRequests.WithLabelValues(providerName, strconv.Itoa(resp.StatusCode)).Inc()
		result, err := io.ReadAll(resp.Body)
		if err != nil {
			c.logger.WithError(err).WithField("url", requestURL).Error("Failed to read response body")
			return nil
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			body = result
			outcome = sendOK
		case resp.StatusCode == http.StatusUnauthorized:
			msg := "Token is invalid: '" + token + "'"
			c.logger.Error(msg)
			c.notifier.Notify(msg, "Token is invalid")
		case resp.StatusCode == http.StatusPaymentRequired:
			msg := "Request limit exceeded (either daily or total) for current token"
			if len(result) > 0 {
				msg += ". Message: '" + string(result) + "'"
			}
			c.logger.Warn(msg)
			c.notifier.Notify(msg, "Request limit exceeded")
		case resp.StatusCode == http.StatusNotFound:
			c.logger.WithField("url", requestURL).Info("Data not found")
			outcome = sendNotFound
		case resp.StatusCode == http.StatusTooManyRequests:
			c.logger.Info("Too many requests per second. Waiting 2 sec")
			return errRateLimited
		default:
			c.logger.WithFields(logrus.Fields{
				"status_code": resp.StatusCode,
				"url":         requestURL,
			}).Errorf("Received error from API: '%s'", result)
		}
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.NewConstantBackOff(2*time.Second), ctx))
	if err != nil {
		c.logger.WithError(err).WithField("url", requestURL).Error("Request cancelled")
		return nil, sendFailed
	}

	return body, outcome
}
