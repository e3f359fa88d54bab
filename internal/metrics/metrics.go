package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ProviderRequests counts Kinopoisk API requests by provider and outcome
var ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kinotrailers_provider_requests_total",
	Help: "Kinopoisk API requests by provider and status code",
}, []string{"provider", "status"})

// TrailersDownloaded counts trailer downloads by result
var TrailersDownloaded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kinotrailers_trailers_downloaded_total",
	Help: "Trailer downloads by result",
}, []string{"result"})
