package main

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var mp3urlRe = regexp.MustCompile(`mp3url=([^&\s"']+)`)

var audioLinkExtensions = []string{".mp3", ".m4a", ".ogg", ".wav"}

// audioExtractors are tried in order; the first non-empty result wins.
// Each one is a self-contained heuristic over the detail page markup.
var audioExtractors = []func(*goquery.Document) string{
	extractAudioElement,
	extractFlashvars,
	extractAudioLink,
}

// parseLessonDetail extracts the canonical lesson title and the audio
// URL from a lesson detail page. Either result may be empty; the caller
// falls back to the listing title and records missing audio. Relative
// audio URLs are resolved against detailURL.
func parseLessonDetail(doc *goquery.Document, detailURL string) (title, audioURL string) {
	title = extractLessonTitle(doc)
	for _, extract := range audioExtractors {
		if raw := extract(doc); raw != "" {
			audioURL = resolveURL(detailURL, raw)
			break
		}
	}
	return title, audioURL
}

// extractLessonTitle reads the lesson title element. The site renders it
// as "<Category>: <Actual Title>"; only the part after the separator is
// kept. A missing element is not an error.
func extractLessonTitle(doc *goquery.Document) string {
	raw := normalizeSpace(doc.Find("div.lesson_title, h1.lesson_title").First().Text())
	if raw == "" {
		return ""
	}
	if _, rest, found := strings.Cut(raw, ": "); found {
		return rest
	}
	return raw
}

// extractAudioElement reads a native <audio> player: the nested <source>
// src first, then the src attribute on the audio element itself.
func extractAudioElement(doc *goquery.Document) string {
	audio := doc.Find("audio").First()
	if audio.Length() == 0 {
		return ""
	}
	if src := strings.TrimSpace(audio.Find("source").First().AttrOr("src", "")); src != "" {
		return src
	}
	return strings.TrimSpace(audio.AttrOr("src", ""))
}

// extractFlashvars mines legacy flash-player embeds for an mp3url key.
// The parameter blob lives either in a flashvars attribute or in a
// <param name="flashvars" value="..."> child.
func extractFlashvars(doc *goquery.Document) string {
	var found string
	doc.Find("embed, object, param").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		blob := s.AttrOr("flashvars", "")
		if blob == "" && strings.EqualFold(s.AttrOr("name", ""), "flashvars") {
			blob = s.AttrOr("value", "")
		}
		if blob == "" {
			return true
		}
		if m := mp3urlRe.FindStringSubmatch(blob); m != nil {
			found = m[1]
			return false
		}
		return true
	})
	return found
}

// extractAudioLink takes the first hyperlink whose target ends in a
// recognized audio extension, case-insensitively.
func extractAudioLink(doc *goquery.Document) string {
	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		lower := strings.ToLower(href)
		for _, ext := range audioLinkExtensions {
			if strings.HasSuffix(lower, ext) {
				found = href
				return false
			}
		}
		return true
	})
	return found
}
