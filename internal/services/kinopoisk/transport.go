package kinopoisk

import (
	"bytes"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CacheTTL is the unconditional lifetime of cached provider responses
const CacheTTL = 12 * time.Hour

// requestTimeout is the fixed per-request timeout for both providers
const requestTimeout = 30 * time.Second

type cachedResponse struct {
	statusCode int
	header     http.Header
	body       []byte
}

// cachingTransport serves successful GET responses from an in-memory cache
// for CacheTTL before hitting the network again. Gzip decompression is left
// to the underlying transport.
type cachingTransport struct {
	next  http.RoundTripper
	cache *gocache.Cache
}

func (t *cachingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.next.RoundTrip(req)
	}

	key := req.URL.String()
	if entry, ok := t.cache.Get(key); ok {
		cached := entry.(*cachedResponse)
		return &http.Response{
			StatusCode: cached.statusCode,
			Header:     cached.header.Clone(),
			Body:       io.NopCloser(bytes.NewReader(cached.body)),
			Request:    req,
		}, nil
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		t.cache.Set(key, &cachedResponse{
			statusCode: resp.StatusCode,
			header:     resp.Header.Clone(),
			body:       body,
		}, gocache.DefaultExpiration)
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}

	return resp, nil
}

// NewHTTPClient creates the HTTP client shared by the provider API clients:
// 30 second timeout and a 12 hour unconditional response cache
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &cachingTransport{
			next:  http.DefaultTransport,
			cache: gocache.New(CacheTTL, CacheTTL),
		},
	}
}
