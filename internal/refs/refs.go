// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package refs assembles individual citation strings from the raw
// reference-list fragments selected in the review form. The one rule
// that matters: a fragment that is nothing but a DOI or URL belongs to
// the citation before it, not on a line of its own.
package refs

import (
	"regexp"
	"strings"
)

var (
	numberingRe = regexp.MustCompile(`^\d+\.\s*`)
	spaceRunRe  = regexp.MustCompile(`\s+`)

	// doiURLRe matches fragments that carry only a locator: a bare URL,
	// a doi.org path, or a doi: prefix.
	doiURLRe = regexp.MustCompile(`(?i)^(https?://|doi\.org/|doi:\s*|http://dx\.doi\.org/)`)
)

// IsLocator reports whether the fragment starts like a bare DOI/URL
// continuation of the preceding citation.
func IsLocator(s string) bool {
	return doiURLRe.MatchString(strings.TrimSpace(s))
}

// Process turns a sequence of selected line fragments into a clean
// citation list: leading numbering tokens are stripped, internal
// whitespace collapsed, empties dropped, and DOI/URL fragments merged
// into the preceding citation. Input order is preserved. A locator with
// no preceding citation stands as its own entry.
func Process(fragments []string) []string {
	out := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		cleaned := strings.TrimSpace(spaceRunRe.ReplaceAllString(numberingRe.ReplaceAllString(strings.TrimSpace(frag), ""), " "))
		if cleaned == "" {
			continue
		}
		if IsLocator(cleaned) && len(out) > 0 {
			out[len(out)-1] += " " + cleaned
			continue
		}
		out = append(out, cleaned)
	}
	return out
}

// MergeTrailing re-applies the DOI/URL merge rule to an already
// assembled reference list. Applied before every persist as a guard
// against lists built elsewhere; on already merged input it is a no-op.
func MergeTrailing(references []string) []string {
	if len(references) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(references))
	for _, ref := range references {
		cleaned := strings.TrimSpace(ref)
		if cleaned == "" {
			continue
		}
		if IsLocator(cleaned) && len(out) > 0 {
			out[len(out)-1] += " " + cleaned
			continue
		}
		out = append(out, cleaned)
	}
	return out
}
