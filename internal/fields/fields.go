// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fields extracts single bibliographic values (DOI, email,
// author identifiers, UDC, dates) from arbitrary selected text. Every
// extractor returns the first match and a found flag; none of them
// error, whatever the input looks like.
package fields

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	doiRe   = regexp.MustCompile(`10\.\d{4,}/[^\s)]+`)
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	orcidRe = regexp.MustCompile(`(?i)(?:orcid\.org/)?(\d{4}-\d{4}-\d{4}-\d{3}[\dX])`)

	scopusRe     = regexp.MustCompile(`(?i)(?:Scopus\s*ID[:\s]*)?(\d{8,})`)
	researcherRe = regexp.MustCompile(`(?i)(?:Researcher\s*ID[:\s]*)?([A-Z]-\d{4}-\d{4}|\d{8,})`)

	yearRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	udcExplicitRe = regexp.MustCompile(`(?i)(?:УДК|UDC)\s*:?\s*([0-9.]+(?:[-\x{2013}\x{2014}][0-9.]+)?)`)
	udcBareRe     = regexp.MustCompile(`\b([0-9]{1,3}(?:\.[0-9]+)*(?:[-\x{2013}\x{2014}][0-9.]+)?)\b`)

	// datePatterns are tried in order; the first hit wins.
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{1,2}[./]\d{1,2}[./]\d{4})\b`),
		regexp.MustCompile(`\b(\d{4}[-./]\d{1,2}[-./]\d{1,2})\b`),
		regexp.MustCompile(`\b(\d{1,2}-\d{1,2}-\d{4})\b`),
	}
	yearFirstRe = regexp.MustCompile(`^\d{4}\.\d{1,2}\.\d{1,2}$`)
	dateSepRe   = regexp.MustCompile(`[/-]`)
)

// DOI returns the first DOI in text.
func DOI(text string) (string, bool) {
	return first(doiRe, text, 0)
}

// Email returns the first email address in text.
func Email(text string) (string, bool) {
	return first(emailRe, text, 0)
}

// Emails returns every distinct email address in text, in order of
// first appearance.
func Emails(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range emailRe.FindAllString(text, -1) {
		m = strings.ToLower(m)
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// ORCID returns the first ORCID identifier in text, with any
// orcid.org URL prefix stripped.
func ORCID(text string) (string, bool) {
	return first(orcidRe, text, 1)
}

// ScopusID returns the first Scopus author identifier in text.
func ScopusID(text string) (string, bool) {
	return first(scopusRe, text, 1)
}

// ResearcherID returns the first Researcher ID (A-1234-5678 style or a
// long numeric code) in text.
func ResearcherID(text string) (string, bool) {
	return first(researcherRe, text, 1)
}

// Year returns the first plausible publication year in text.
func Year(text string) (string, bool) {
	m, ok := first(yearRe, text, 1)
	if !ok {
		return "", false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1900 || n > 2100 {
		return "", false
	}
	return m, true
}

// UDC returns the first UDC classification code in text, preferring an
// explicitly labelled "УДК"/"UDC" value over a bare dotted number.
func UDC(text string) (string, bool) {
	if m, ok := first(udcExplicitRe, text, 1); ok {
		return strings.TrimSpace(m), true
	}
	if m, ok := first(udcBareRe, text, 1); ok {
		return strings.TrimSpace(m), true
	}
	return "", false
}

// Date returns the first date-looking token in text, normalized to
// DD.MM.YYYY with dot separators.
func Date(text string) (string, bool) {
	for _, re := range datePatterns {
		m, ok := first(re, text, 1)
		if !ok {
			continue
		}
		date := dateSepRe.ReplaceAllString(m, ".")
		if yearFirstRe.MatchString(date) {
			parts := strings.Split(date, ".")
			date = parts[2] + "." + parts[1] + "." + parts[0]
		}
		return date, true
	}
	return "", false
}

func first(re *regexp.Regexp, text string, group int) (string, bool) {
	if text == "" {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil || len(m) <= group || m[group] == "" {
		return "", false
	}
	return m[group], true
}
