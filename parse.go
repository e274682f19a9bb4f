package main

import (
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// LessonRef is a single lesson link discovered on a listing page.
type LessonRef struct {
	Title string
	URL   string
}

var lessonPathRe = regexp.MustCompile(`/lessons/[A-Za-z0-9_-]+/?$`)

// lessonCandidate pairs a lesson link with the container element used
// for title resolution.
type lessonCandidate struct {
	link      *goquery.Selection
	container *goquery.Selection
}

// parseListing extracts lesson references and the next listing page URL
// from a listing page. pageURL is the absolute URL the page was fetched
// from; relative links are resolved against it.
func parseListing(doc *goquery.Document, pageURL string) ([]LessonRef, string) {
	var lessons []LessonRef

	for _, cand := range findLessonCandidates(doc) {
		href, ok := cand.link.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			continue
		}
		lessonURL := resolveURL(pageURL, href)
		if lessonURL == "" {
			continue
		}
		title := resolveTitle(cand.link, cand.container, lessonURL)
		if title == "" {
			continue
		}
		lessons = append(lessons, LessonRef{Title: title, URL: lessonURL})
	}

	return lessons, findNextPage(doc, pageURL)
}

var teaserSelectors = []string{
	"div.archive_teaser",
	"div.lesson_teaser",
	"[class*='teaser']",
}

// findLessonCandidates tries progressively looser strategies for the
// per-lesson teaser blocks. The first selector matching any containers
// wins; archived snapshots of the site use different class names
// depending on when they were captured. When no teaser container
// exists at all, every lesson-shaped link becomes its own candidate,
// with its parent element serving as the container — one candidate per
// link, so sibling links under a shared parent each keep their lesson.
func findLessonCandidates(doc *goquery.Document) []lessonCandidate {
	for _, selector := range teaserSelectors {
		containers := doc.Find(selector)
		if containers.Length() == 0 {
			continue
		}
		var candidates []lessonCandidate
		containers.Each(func(_ int, container *goquery.Selection) {
			if link := findLessonLink(container); link != nil {
				candidates = append(candidates, lessonCandidate{link: link, container: container})
			}
		})
		return candidates
	}

	var candidates []lessonCandidate
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if isLessonLink(a.AttrOr("href", "")) {
			candidates = append(candidates, lessonCandidate{link: a, container: a.Parent()})
		}
	})
	return candidates
}

// isLessonLink reports whether href points at a lesson detail page,
// ignoring any query string or fragment.
func isLessonLink(href string) bool {
	if href == "" {
		return false
	}
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	return lessonPathRe.MatchString(href)
}

// findLessonLink locates the lesson anchor inside a teaser container.
func findLessonLink(container *goquery.Selection) *goquery.Selection {
	if link := container.Find("div.archive_title a.black.nonlink").First(); link.Length() > 0 {
		return link
	}
	if link := container.Find("a[href*='/lessons/']").First(); link.Length() > 0 {
		return link
	}
	if goquery.NodeName(container) == "a" && strings.Contains(container.AttrOr("href", ""), "/lessons/") {
		return container
	}
	return nil
}

// resolveTitle picks the best available title text for a lesson link.
// The link's own text wins outright; otherwise the first candidate
// longer than three characters is used, and failing that the title is
// derived from the lesson URL's final path segment.
func resolveTitle(link, container *goquery.Selection, lessonURL string) string {
	if t := normalizeSpace(link.Text()); t != "" {
		return t
	}
	candidates := []string{
		normalizeSpace(container.Text()),
		normalizeSpace(link.AttrOr("title", "")),
		normalizeSpace(link.AttrOr("alt", "")),
	}
	for _, c := range candidates {
		if len(c) > 3 {
			return c
		}
	}
	return titleFromURL(lessonURL)
}

// titleFromURL turns a lesson slug like "bargaining-at-the-market" into
// "Bargaining At The Market".
func titleFromURL(lessonURL string) string {
	u, err := url.Parse(lessonURL)
	if err != nil {
		return ""
	}
	slug := path.Base(u.Path)
	if slug == "." || slug == "/" || slug == "" {
		return ""
	}
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// findNextPage locates the paginator, reads the currently selected page
// number and looks for a link whose text is the next number. Wayback
// snapshots sometimes alias successive page links back to the same
// capture, so a candidate that resolves to the current page's path and
// query is treated as the end of the listing.
func findNextPage(doc *goquery.Document, pageURL string) string {
	paginator := doc.Find("div.paginator#paginator").First()
	if paginator.Length() == 0 {
		paginator = doc.Find("div.paginator").First()
	}
	if paginator.Length() == 0 {
		return ""
	}

	selected := normalizeSpace(paginator.Find("a.selected, span.selected").First().Text())
	current, err := strconv.Atoi(selected)
	if err != nil {
		return ""
	}

	want := strconv.Itoa(current + 1)
	var href string
	paginator.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if normalizeSpace(a.Text()) != want {
			return true
		}
		href = a.AttrOr("href", "")
		return false
	})
	if href == "" {
		return ""
	}

	next := resolveURL(pageURL, href)
	if next == "" || next == pageURL || sameResource(next, pageURL) {
		return ""
	}
	return next
}

// sameResource reports whether two URLs share path and query.
func sameResource(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Path == ub.Path && ua.RawQuery == ub.RawQuery
}

// resolveURL resolves ref against base, returning "" when either side
// does not parse.
func resolveURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	return b.ResolveReference(r).String()
}
