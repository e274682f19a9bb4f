package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Sentinel audio_url values recorded when no download was attempted.
const (
	audioNotFound      = "not found"
	audioAlreadyExists = "skipped - already exists"
)

// LessonRecord is one processed lesson in the run summary. AudioURL
// holds either the real audio URL or one of the sentinel values above.
type LessonRecord struct {
	Title     string `json:"title"`
	LessonURL string `json:"lesson_url"`
	AudioURL  string `json:"audio_url"`
	Filename  string `json:"filename"`
}

// RunSummary accumulates lesson records in crawl order. Records are
// append-only and never mutated after being added.
type RunSummary struct {
	records []LessonRecord
}

// Add appends a record to the summary
func (s *RunSummary) Add(rec LessonRecord) {
	s.records = append(s.records, rec)
}

// Len returns the number of accumulated records
func (s *RunSummary) Len() int {
	return len(s.records)
}

// Records returns the accumulated records in order
func (s *RunSummary) Records() []LessonRecord {
	return s.records
}

// Save writes the summary as an indented JSON array. HTML escaping is
// disabled so lesson titles with non-ASCII characters and raw URLs stay
// readable. The write goes through a temp file and an atomic rename.
func (s *RunSummary) Save(outputDir, filename string) error {
	summaryPath := filepath.Join(outputDir, filename)
	tempPath := summaryPath + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	records := s.records
	if records == nil {
		records = []LessonRecord{}
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := os.Rename(tempPath, summaryPath); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}
	return nil
}
