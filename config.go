package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the archived site this tool was written for.
const (
	defaultArchiveBase    = "https://web.archive.org"
	defaultSnapshot       = "20221129182300"
	defaultSiteBase       = "https://popupchinese.com"
	defaultOutputDir      = "popup_chinese_audio"
	defaultSummaryFile    = "download_summary.json"
	defaultPageTimeout    = 15 * time.Second
	defaultAudioTimeout   = 60 * time.Second
	defaultLessonDelay    = 2 * time.Second
	defaultPageDelay      = 5 * time.Second
	defaultRetryAttempts  = 5
	defaultRetryBaseDelay = 5 * time.Second

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

var defaultCategories = []string{
	"Absolute Beginners",
	"Elementary",
	"Intermediate",
	"Advanced",
}

// Config carries every knob the crawler needs. Tests build one by hand
// so nothing in the pipeline reads process-wide state.
type Config struct {
	ArchiveBase     string
	Snapshot        string
	SiteBase        string
	OutputDir       string
	SummaryFile     string
	UserAgent       string
	PageTimeout     time.Duration
	AudioTimeout    time.Duration
	LessonDelay     time.Duration
	PageDelay       time.Duration
	RetryAttempts   int
	RetryBaseDelay  time.Duration
	SaveTranscripts bool
	Categories      []string
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		ArchiveBase:    defaultArchiveBase,
		Snapshot:       defaultSnapshot,
		SiteBase:       defaultSiteBase,
		OutputDir:      defaultOutputDir,
		SummaryFile:    defaultSummaryFile,
		UserAgent:      defaultUserAgent,
		PageTimeout:    defaultPageTimeout,
		AudioTimeout:   defaultAudioTimeout,
		LessonDelay:    defaultLessonDelay,
		PageDelay:      defaultPageDelay,
		RetryAttempts:  defaultRetryAttempts,
		RetryBaseDelay: defaultRetryBaseDelay,
		Categories:     defaultCategories,
	}
}

// Settings is the optional YAML settings file structure. Only fields
// present in the file override the defaults.
type Settings struct {
	ArchiveBase        string   `yaml:"archive_base"`
	Snapshot           string   `yaml:"snapshot"`
	SiteBase           string   `yaml:"site_base"`
	OutputDirectory    string   `yaml:"output_directory"`
	UserAgent          string   `yaml:"user_agent"`
	LessonDelaySeconds int      `yaml:"lesson_delay_seconds"`
	PageDelaySeconds   int      `yaml:"page_delay_seconds"`
	RetryAttempts      int      `yaml:"retry_attempts"`
	Categories         []string `yaml:"categories"`
}

// LoadConfig returns the defaults overlaid with settings from path. A
// missing settings file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return cfg, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if settings.ArchiveBase != "" {
		cfg.ArchiveBase = settings.ArchiveBase
	}
	if settings.Snapshot != "" {
		cfg.Snapshot = settings.Snapshot
	}
	if settings.SiteBase != "" {
		cfg.SiteBase = settings.SiteBase
	}
	if settings.OutputDirectory != "" {
		cfg.OutputDir = settings.OutputDirectory
	}
	if settings.UserAgent != "" {
		cfg.UserAgent = settings.UserAgent
	}
	if settings.LessonDelaySeconds > 0 {
		cfg.LessonDelay = time.Duration(settings.LessonDelaySeconds) * time.Second
	}
	if settings.PageDelaySeconds > 0 {
		cfg.PageDelay = time.Duration(settings.PageDelaySeconds) * time.Second
	}
	if settings.RetryAttempts > 0 {
		cfg.RetryAttempts = settings.RetryAttempts
	}
	if len(settings.Categories) > 0 {
		cfg.Categories = settings.Categories
	}

	return cfg, nil
}

// ListingURL builds the archive-resolved listing URL for a category page.
func (c Config) ListingURL(category string, page int) string {
	return fmt.Sprintf("%s/web/%s/%s/lessons/%s?page=%d",
		c.ArchiveBase, c.Snapshot, c.SiteBase, categorySlug(category), page)
}

// categorySlug lowercases a category name and replaces spaces with
// hyphens, matching the site's URL scheme.
func categorySlug(category string) string {
	slug := strings.ToLower(strings.TrimSpace(category))
	return strings.ReplaceAll(slug, " ", "-")
}
