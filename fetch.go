package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// PageFetcher retrieves listing and lesson pages through a colly
// collector configured with a browser-like User-Agent and a fixed
// request timeout. Visits are synchronous, so the captured response
// fields are only ever touched by one goroutine.
type PageFetcher struct {
	collector *colly.Collector

	body   []byte
	status int
	err    error
}

// NewPageFetcher creates a fetcher for HTML pages
func NewPageFetcher(timeout time.Duration, userAgent string) *PageFetcher {
	f := &PageFetcher{}

	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(timeout)

	c.OnResponse(func(r *colly.Response) {
		f.body = r.Body
		f.status = r.StatusCode
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			f.status = r.StatusCode
		}
		f.err = err
	})

	f.collector = c
	return f
}

// FetchHTML retrieves a page body as text. Network errors, timeouts and
// non-2xx statuses all fail closed; no partial content is returned.
func (f *PageFetcher) FetchHTML(pageURL string) (string, error) {
	f.body = nil
	f.status = 0
	f.err = nil

	err := f.collector.Visit(pageURL)
	if err == nil {
		err = f.err
	}
	if err != nil {
		if f.status >= 400 {
			return "", &HTTPError{StatusCode: f.status, URL: pageURL}
		}
		return "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	if len(f.body) == 0 {
		return "", fmt.Errorf("fetching %s: empty response", pageURL)
	}
	return string(f.body), nil
}

// audioFetcher opens a remote resource as a byte stream. The downloader
// depends on this seam so tests can count invocations.
type audioFetcher interface {
	Fetch(audioURL string) (io.ReadCloser, error)
}

type httpAudioFetcher struct {
	client    *http.Client
	userAgent string
}

func newAudioFetcher(timeout time.Duration, userAgent string) *httpAudioFetcher {
	return &httpAudioFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch issues a GET and hands back the body for incremental reading.
// The caller owns the stream and must close it.
func (f *httpAudioFetcher) Fetch(audioURL string) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, audioURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", audioURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", audioURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: audioURL}
	}
	return resp.Body, nil
}
