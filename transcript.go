package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jaytaylor/html2text"
)

// saveTranscript converts a lesson detail page to plain text and stores
// it next to the audio file, reusing the audio filename with a .txt
// extension. Existing transcripts are left alone.
func saveTranscript(pageHTML, destDir, audioFilename string) error {
	base := strings.TrimSuffix(audioFilename, filepath.Ext(audioFilename))
	destPath := filepath.Join(destDir, base+".txt")
	if _, err := os.Stat(destPath); err == nil {
		return nil
	}

	text, err := html2text.FromString(pageHTML, html2text.Options{TextOnly: true})
	if err != nil {
		return fmt.Errorf("converting lesson page: %w", err)
	}

	if err := os.WriteFile(destPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	return nil
}
