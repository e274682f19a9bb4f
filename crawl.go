package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// pageFetcher retrieves a page body as text
type pageFetcher interface {
	FetchHTML(pageURL string) (string, error)
}

// Crawler drives the listing pagination loop: fetch a listing page,
// process each lesson on it, then follow the next-page link until none
// remains. Everything runs on one goroutine.
type Crawler struct {
	cfg        Config
	pages      pageFetcher
	downloader *Downloader
	summary    *RunSummary
	sleep      func(time.Duration)

	pagesVisited int
	downloaded   int
	skipped      int
	noAudio      int
	failed       int
}

// NewCrawler creates a crawler wired with real fetchers
func NewCrawler(cfg Config) *Crawler {
	return &Crawler{
		cfg:        cfg,
		pages:      NewPageFetcher(cfg.PageTimeout, cfg.UserAgent),
		downloader: NewDownloader(newAudioFetcher(cfg.AudioTimeout, cfg.UserAgent), cfg.RetryAttempts, cfg.RetryBaseDelay),
		summary:    &RunSummary{},
		sleep:      time.Sleep,
	}
}

// Run crawls listing pages starting at startURL. A listing page fetch
// failure aborts the crawl; a page with neither lessons nor a next-page
// link ends it naturally. The summary is persisted once, at the end.
func (c *Crawler) Run(startURL string) error {
	if err := os.MkdirAll(c.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	pageURL := startURL
	for pageURL != "" {
		logVisit(pageURL)
		body, err := c.pages.FetchHTML(pageURL)
		if err != nil {
			return fmt.Errorf("listing page fetch failed: %w", err)
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err != nil {
			return fmt.Errorf("parsing listing page %s: %w", pageURL, err)
		}
		c.pagesVisited++

		lessons, nextURL := parseListing(doc, pageURL)
		if len(lessons) == 0 && nextURL == "" {
			logInfo("No lessons or next page found; crawl complete")
			break
		}
		if len(lessons) == 0 {
			logSkip("No lessons found on %s", pageURL)
		}

		for _, lesson := range lessons {
			c.processLesson(lesson)
			c.sleep(c.cfg.LessonDelay)
		}

		if nextURL != "" {
			c.sleep(c.cfg.PageDelay)
		}
		pageURL = nextURL
	}

	if err := c.summary.Save(c.cfg.OutputDir, c.cfg.SummaryFile); err != nil {
		logError("Failed to save summary: %v", err)
	}
	c.report()
	return nil
}

// processLesson handles one lesson reference from a listing page. The
// filename derived from the listing title is checked first so already
// downloaded lessons never cost a detail page fetch; the filename is
// then recomputed from the detail page's refined title and checked
// again before any download.
func (c *Crawler) processLesson(lesson LessonRef) {
	filename := sanitizeFilename(lesson.Title)
	if c.fileExists(filename) {
		logSkip("Already downloaded: %s", lesson.Title)
		c.skipped++
		c.summary.Add(LessonRecord{
			Title:     lesson.Title,
			LessonURL: lesson.URL,
			AudioURL:  audioAlreadyExists,
			Filename:  filename,
		})
		return
	}

	body, err := c.pages.FetchHTML(lesson.URL)
	if err != nil {
		logError("Lesson page fetch failed for %q: %v", lesson.Title, err)
		return
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		logError("Parsing lesson page %s: %v", lesson.URL, err)
		return
	}

	title := lesson.Title
	detailTitle, audioURL := parseLessonDetail(doc, lesson.URL)
	if detailTitle != "" {
		title = detailTitle
	}

	filename = sanitizeFilename(title)
	if c.fileExists(filename) {
		logSkip("Already downloaded: %s", title)
		c.skipped++
		c.summary.Add(LessonRecord{
			Title:     title,
			LessonURL: lesson.URL,
			AudioURL:  audioAlreadyExists,
			Filename:  filename,
		})
		return
	}

	if c.cfg.SaveTranscripts {
		if err := saveTranscript(body, c.cfg.OutputDir, filename); err != nil {
			logWarn("Transcript for %q: %v", title, err)
		}
	}

	if audioURL == "" {
		logSkip("No audio found for %q", title)
		c.noAudio++
		c.summary.Add(LessonRecord{
			Title:     title,
			LessonURL: lesson.URL,
			AudioURL:  audioNotFound,
			Filename:  filename,
		})
		return
	}

	c.summary.Add(LessonRecord{
		Title:     title,
		LessonURL: lesson.URL,
		AudioURL:  audioURL,
		Filename:  filename,
	})
	if c.downloader.Download(audioURL, c.cfg.OutputDir, filename) {
		c.downloaded++
	} else {
		c.failed++
	}
}

func (c *Crawler) fileExists(filename string) bool {
	_, err := os.Stat(filepath.Join(c.cfg.OutputDir, filename))
	return err == nil
}

// report prints the end-of-run totals
func (c *Crawler) report() {
	fmt.Println()
	logInfo("%s", colorBold(fmt.Sprintf("Crawl finished: %d pages visited", c.pagesVisited)))
	logSuccess("Downloaded: %d", c.downloaded)
	logSkip("Skipped (already on disk): %d", c.skipped)
	logSkip("No audio found: %d", c.noAudio)
	if c.failed > 0 {
		logError("Failed downloads: %d", c.failed)
	}
	logDim("Summary written to %s", filepath.Join(c.cfg.OutputDir, c.cfg.SummaryFile))
}
