package kpdev

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/luzmane/kinotrailers/internal/metrics"
	"github.com/luzmane/kinotrailers/internal/notify"
	"github.com/luzmane/kinotrailers/internal/services/kinopoisk"
)

const (
	defaultBaseURL = "https://api.kinopoisk.dev"
	providerName   = "kinopoisk.dev"
	pageLimit      = 250
)

// trailerFields is the field-selection allow-list sent with every movie
// request, passed as repeated selectFields query parameters
var trailerFields = []string{
	"alternativeName",
	"externalId",
	"id",
	"name",
	"typeNumber",
	"videos",
	"premiere",
	"description",
	"poster",
}

var errRateLimited = errors.New("rate limited")

// Client issues authenticated requests to api.kinopoisk.dev
type Client struct {
	baseURL    string
	token      kinopoisk.TokenSource
	httpClient *http.Client
	notifier   notify.Notifier
	logger     *logrus.Logger
}

// NewClient creates a new api.kinopoisk.dev client
func NewClient(token kinopoisk.TokenSource, notifier notify.Notifier, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: kinopoisk.NewHTTPClient(),
		notifier:   notifier,
		logger:     logger,
	}
}

// GetCollections fetches the collection catalog
func (c *Client) GetCollections(ctx context.Context) kinopoisk.Page[List] {
	params := url.Values{}
	params.Add("limit", "100")
	for _, field := range []string{"name", "slug", "moviesCount", "cover", "category"} {
		params.Add("selectFields", field)
	}

	body, ok := c.send(ctx, c.baseURL+"/v1.4/list?"+params.Encode())
	if !ok {
		return kinopoisk.ErrorPage[List]()
	}

	var res searchResult[List]
	if err := json.Unmarshal(body, &res); err != nil {
		c.logger.WithError(err).Error("Failed to parse collection list response")
		return kinopoisk.ErrorPage[List]()
	}

	return toPage(res)
}

// GetCollectionItems fetches one page of a collection
func (c *Client) GetCollectionItems(ctx context.Context, collectionID string, page int) kinopoisk.Page[Movie] {
	params := url.Values{}
	params.Add("limit", strconv.Itoa(pageLimit))
	params.Add("page", strconv.Itoa(page))
	params.Add("lists", collectionID)
	for _, field := range trailerFields {
		params.Add("selectFields", field)
	}

	body, ok := c.send(ctx, c.baseURL+"/v1.4/movie?"+params.Encode())
	if !ok {
		return kinopoisk.ErrorPage[Movie]()
	}

	var res searchResult[Movie]
	if err := json.Unmarshal(body, &res); err != nil {
		c.logger.WithError(err).Error("Failed to parse collection items response")
		return kinopoisk.ErrorPage[Movie]()
	}

	return toPage(res)
}

// send issues one GET request and applies the provider error policy.
// Returns the response body and true on 2xx; false on any failure, which is
// already logged (and notified for credential/quota problems) here.
// 429 responses are retried in place every 2 seconds until the rate limit
// lifts or the context is cancelled.
func (c *Client) send(ctx context.Context, requestURL string) ([]byte, bool) {
	c.logger.WithField("url", requestURL).Debug("Sending request")

	token := c.token()
	if token == "" {
		c.logger.Error("The token is empty. Skip request")
		return nil, false
	}

	var body []byte
	var ok bool
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			c.logger.WithError(err).Error("Failed to create request")
			return nil
		}
		req.Header.Set("X-API-KEY", token)
		req.Header.Set("accept", "application/json")

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
			ok = true
		case resp.StatusCode == http.StatusBadRequest:
			var apiErr errorResponse
			if err := json.Unmarshal(result, &apiErr); err == nil && len(apiErr.Message) > 0 {
				c.logger.WithFields(logrus.Fields{
					"error": apiErr.Error,
					"url":   requestURL,
				}).Error(apiErr.Message[0])
			} else {
				c.logger.WithField("url", requestURL).Errorf("Bad request: '%s'", result)
			}
		case resp.StatusCode == http.StatusUnauthorized:
			msg := "Token is invalid: '" + token + "'"
			c.logger.Error(msg)
			c.notifier.Notify(msg, "Token is invalid")
		case resp.StatusCode == http.StatusForbidden:
			msg := "Request limit exceeded (either daily or total) for current token"
			c.logger.Warn(msg)
			c.notifier.Notify(msg, "Request limit exceeded")
		case resp.StatusCode == http.StatusTooManyRequests:
			c.logger.Info("Too many requests per second. Waiting 2 sec")
			return errRateLimited
		default:
			var apiErr errorResponse
			entry := c.logger.WithFields(logrus.Fields{
				"status_code": resp.StatusCode,
				"url":         requestURL,
			})
			if err := json.Unmarshal(result, &apiErr); err == nil && apiErr.Error != "" {
				entry.WithField("error", apiErr.Error).Error("Received error from API")
			} else {
				entry.Errorf("Received error from API: '%s'", result)
			}
		}
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.NewConstantBackOff(2*time.Second), ctx))
	if err != nil {
		c.logger.WithError(err).WithField("url", requestURL).Error("Request cancelled")
		return nil, false
	}

	return body, ok
}
