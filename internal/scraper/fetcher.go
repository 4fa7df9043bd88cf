// Package scraper extracts player and team data from the stats site's
// pages. It is a thin, page-structure-specific layer: everything it
// produces goes through the analytics pipeline as raw text.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "futmetrics_pages_fetched_total",
		Help: "Pages fetched from the stats site, by outcome",
	}, []string{"outcome"})

	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "futmetrics_page_fetch_duration_seconds",
		Help:    "Duration of page fetches",
		Buckets: prometheus.DefBuckets,
	})
)

// PageFetcher is the capability the scrapers need from the outside world:
// fetch a URL, get its HTML back.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches pages with a plain HTTP client.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", pageURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		pagesFetched.WithLabelValues("error").Inc()
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	fetchDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		pagesFetched.WithLabelValues("error").Inc()
		return "", fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		pagesFetched.WithLabelValues("error").Inc()
		return "", fmt.Errorf("read %s: %w", pageURL, err)
	}
	pagesFetched.WithLabelValues("ok").Inc()
	return string(body), nil
}

// searchURL builds the site's search URL for a free-text term.
// QueryEscape renders spaces as '+', which is what the site expects.
func searchURL(baseURL, term string) string {
	return strings.TrimSuffix(baseURL, "/") + "/search/?t=" + url.QueryEscape(strings.TrimSpace(term))
}

// pageURL resolves a relative link scraped from a page against the base.
func pageURL(baseURL, href string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(href, "/")
}
