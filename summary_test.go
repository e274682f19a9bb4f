package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSummarySaveAndReload(t *testing.T) {
	dir := t.TempDir()

	summary := &RunSummary{}
	summary.Add(LessonRecord{
		Title:     "Taxi Mandarin",
		LessonURL: "http://a.test/lessons/taxi-mandarin",
		AudioURL:  "http://cdn.test/taxi.mp3",
		Filename:  "Taxi_Mandarin.mp3",
	})
	summary.Add(LessonRecord{
		Title:     "Ordering Dumplings",
		LessonURL: "http://a.test/lessons/ordering-dumplings",
		AudioURL:  audioNotFound,
		Filename:  "Ordering_Dumplings.mp3",
	})

	if err := summary.Save(dir, "summary.json"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "summary.json"))
	if err != nil {
		t.Fatal(err)
	}

	var records []LessonRecord
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("summary is not valid JSON: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].AudioURL != "http://cdn.test/taxi.mp3" {
		t.Errorf("first audio_url = %q", records[0].AudioURL)
	}
	if records[1].AudioURL != audioNotFound {
		t.Errorf("second audio_url = %q, want %q", records[1].AudioURL, audioNotFound)
	}
}

func TestRunSummarySaveKeepsNonASCIILiteral(t *testing.T) {
	dir := t.TempDir()

	summary := &RunSummary{}
	summary.Add(LessonRecord{
		Title:     "你好 Taxi",
		LessonURL: "http://a.test/lessons/taxi?page=1&src=a",
		AudioURL:  audioAlreadyExists,
		Filename:  "Taxi.mp3",
	})

	if err := summary.Save(dir, "summary.json"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "summary.json"))
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "你好 Taxi") {
		t.Error("non-ASCII title was escaped in summary output")
	}
	if !strings.Contains(text, "page=1&src=a") {
		t.Error("URL ampersand was escaped in summary output")
	}
	if !strings.Contains(text, "\n  ") {
		t.Error("summary output is not indented")
	}
}

func TestRunSummarySaveEmpty(t *testing.T) {
	dir := t.TempDir()

	summary := &RunSummary{}
	if err := summary.Save(dir, "summary.json"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "summary.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty summary = %q, want []", data)
	}
}
