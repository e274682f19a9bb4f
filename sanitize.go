package main

import (
	"regexp"
	"strings"
)

const (
	audioExtension  = ".mp3"
	placeholderBase = "untitled_lesson"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// sanitizeFilename converts a lesson title into a safe local filename.
// Spaces become underscores and everything outside [A-Za-z0-9_-] is
// dropped, so two titles can collide once sanitized. Idempotency checks
// elsewhere rely on this being deterministic.
func sanitizeFilename(title string) string {
	name := strings.TrimSpace(title)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	if name == "" {
		name = placeholderBase
	}
	return name + audioExtension
}
