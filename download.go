package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const downloadChunkSize = 32 * 1024

// Downloader streams remote audio files to disk with bounded retries.
type Downloader struct {
	fetcher   audioFetcher
	attempts  int
	baseDelay time.Duration
	sleep     func(time.Duration)
}

// NewDownloader creates a downloader with the given retry budget and
// backoff base delay.
func NewDownloader(fetcher audioFetcher, attempts int, baseDelay time.Duration) *Downloader {
	return &Downloader{
		fetcher:   fetcher,
		attempts:  attempts,
		baseDelay: baseDelay,
		sleep:     time.Sleep,
	}
}

// Download streams audioURL into destDir/filename and reports success.
// A pre-existing destination file counts as success without any network
// activity. Transient failures are retried with a linearly growing
// backoff; a 404 means the resource is gone from the archive and stops
// the attempt loop immediately.
func (d *Downloader) Download(audioURL, destDir, filename string) bool {
	destPath := filepath.Join(destDir, filename)
	if _, err := os.Stat(destPath); err == nil {
		logSkip("Already exists: %s", filename)
		return true
	}

	for attempt := 1; attempt <= d.attempts; attempt++ {
		if attempt > 1 {
			d.sleep(time.Duration(attempt-1) * d.baseDelay)
		}

		err := d.tryDownload(audioURL, destPath)
		if err == nil {
			logSuccess("Downloaded %s", filename)
			return true
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			logError("Audio not found (404): %s", audioURL)
			return false
		}
		logWarn("Attempt %d/%d failed for %s: %v", attempt, d.attempts, audioURL, err)
	}

	logError("Giving up on %s after %d attempts", audioURL, d.attempts)
	return false
}

// tryDownload performs a single streaming attempt. A failure mid-write
// can leave a truncated file behind; the next attempt truncates it again
// on create.
func (d *Downloader) tryDownload(audioURL, destPath string) error {
	stream, err := d.fetcher.Fetch(audioURL)
	if err != nil {
		return err
	}
	defer stream.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}
	defer out.Close()

	buf := make([]byte, downloadChunkSize)
	if _, err := io.CopyBuffer(out, stream, buf); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return nil
}
