package main

import (
	"html"
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeSpace decodes HTML entities and collapses runs of whitespace
// into single spaces. Element text pulled out of archived markup tends to
// carry stray newlines and non-breaking spaces.
func normalizeSpace(text string) string {
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, " ", " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
