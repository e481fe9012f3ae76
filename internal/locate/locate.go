// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate finds where an article starts inside a whole-issue
// text, so the review view can scroll a shared full-text file to the
// right place.
package locate

import (
	"regexp"
	"strings"

	"github.com/Dexter626358/issuekit/pkg/types"
)

// tocMarkers announce a table of contents; the search for the article
// proper begins after it.
var tocMarkers = []string{
	"содержание",
	"оглавление",
	"contents",
	"table of contents",
}

// tocSkipLines is how far past a table-of-contents marker the search
// starts; a TOC usually runs on for a page or two.
const tocSkipLines = 30

// defaultSkipLines is the fallback skip when no marker is found.
const defaultSkipLines = 50

// minTitleSubstring is the shortest title accepted for substring
// matching; shorter titles only match a whole line.
const minTitleSubstring = 10

var (
	spaceRe = regexp.MustCompile(`\s+`)
	digitRe = regexp.MustCompile(`\d+`)
	// tocRowRe matches a line that ends in a bare number, the shape of
	// a contents row with its page number.
	tocRowRe = regexp.MustCompile(`^\s*\S+.*\d+\s*$`)
)

// Locate returns the 1-based line on which the article appears to
// start, searching by the first author's surname and then by title.
// It reports false when neither term is found past the table of
// contents.
func Locate(lines []types.Line, title, surname string) (int, bool) {
	title = strings.TrimSpace(title)
	surname = strings.TrimSpace(surname)
	if len(lines) == 0 || (title == "" && len([]rune(surname)) < 2) {
		return 0, false
	}

	start := searchStart(lines)

	// The surname is the more reliable marker, so it goes first.
	if len([]rune(surname)) >= 2 {
		if n, ok := findSurname(lines, start, surname); ok {
			return n, true
		}
	}
	if title != "" {
		if n, ok := findTitle(lines, start, title); ok {
			return n, true
		}
	}
	return 0, false
}

// searchStart returns the 0-based index from which to search: past the
// first table-of-contents marker plus tocSkipLines, or past the first
// defaultSkipLines lines when no marker is found.
func searchStart(lines []types.Line) int {
	for idx := range lines {
		text := strings.ToLower(strings.TrimSpace(lines[idx].Text))
		for _, marker := range tocMarkers {
			if strings.Contains(text, marker) {
				return idx + tocSkipLines
			}
		}
	}
	if len(lines) < defaultSkipLines {
		return len(lines)
	}
	return defaultSkipLines
}

// isTOCRow reports whether a line looks like part of the contents
// rather than article body: very short, or ending in a page number
// with at most two digit groups overall.
func isTOCRow(text string) bool {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < 5 {
		return true
	}
	return tocRowRe.MatchString(text) && len(digitRe.FindAllString(text, -1)) <= 2
}

func findSurname(lines []types.Line, start int, surname string) (int, bool) {
	needle := normalize(surname)
	// \b is ASCII-only in RE2, so spell out letter boundaries.
	wordRe := regexp.MustCompile(`(?:^|[^\pL])` + regexp.QuoteMeta(needle) + `(?:[^\pL]|$)`)
	for idx := start; idx < len(lines); idx++ {
		text := normalize(lines[idx].Text)
		if text == needle || strings.HasPrefix(text, needle+" ") || wordRe.MatchString(text) {
			if !isTOCRow(lines[idx].Text) {
				return idx + 1, true
			}
		}
	}
	return 0, false
}

func findTitle(lines []types.Line, start int, title string) (int, bool) {
	needle := normalize(title)
	for idx := start; idx < len(lines); idx++ {
		text := normalize(lines[idx].Text)
		if text == needle || (len([]rune(needle)) >= minTitleSubstring && strings.Contains(text, needle)) {
			if !isTOCRow(lines[idx].Text) {
				return idx + 1, true
			}
		}
	}

	// No full match; fall back to the first few words of the title.
	words := strings.Fields(needle)
	if len(words) < 3 {
		return 0, false
	}
	if len(words) > 5 {
		words = words[:5]
	}
	phrase := strings.Join(words, " ")
	for idx := start; idx < len(lines); idx++ {
		if strings.Contains(normalize(lines[idx].Text), phrase) && !isTOCRow(lines[idx].Text) {
			return idx + 1, true
		}
	}
	return 0, false
}

func normalize(s string) string {
	return spaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}
