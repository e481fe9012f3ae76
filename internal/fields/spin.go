// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"regexp"
	"strings"
)

var (
	// spinExplicitRe matches SPIN codes preceded by an explicit marker:
	// "SPIN-код 264275", "SPIN: 1234-5678", "AuthorID: 123456".
	spinExplicitRe = regexp.MustCompile(`(?i)(?:SPIN[-]?код|SPIN\s*код|SPIN[:\s-]+|AuthorID[:\s]+)\s*(\d{4,8}(?:[-.\s]\d+)*)`)

	spinSepRe        = regexp.MustCompile(`[-.\s]`)
	standaloneNumRe  = regexp.MustCompile(`\b(\d{4,8})\b`)
	emailTailRe      = regexp.MustCompile(`@[\w.-]*$`)
	emailHeadRe      = regexp.MustCompile(`^[\w.-]*@`)
	doiContextRe     = regexp.MustCompile(`10\.\d{4,}`)
	doiSuffixRe      = regexp.MustCompile(`^/[^\s)]+`)
	orcidContextRe   = regexp.MustCompile(`(?i)orcid`)
	orcidSuffixRe    = regexp.MustCompile(`^-\d{4}-\d{4}-\d{3}`)
	scopusContextRe  = regexp.MustCompile(`(?i)scopus`)
	researcherCtxRe  = regexp.MustCompile(`(?i)researcher\s*id`)
	researcherTailRe = regexp.MustCompile(`^-\d{4}-\d{4}`)
)

// SPIN extracts an eLibrary SPIN code from text. It first looks for an
// explicitly marked code (SPIN-код, SPIN:, AuthorID) and only then
// falls back to scanning standalone 4-8 digit runs, rejecting any run
// that sits inside an email, DOI, ORCID, Scopus ID, or Researcher ID.
// The fallback is best effort: plain numeric text can still look like
// a SPIN code.
func SPIN(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	if spin, ok := spinExplicit(text); ok {
		return spin, true
	}
	return spinFallback(text)
}

func spinExplicit(text string) (string, bool) {
	loc := spinExplicitRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", false
	}
	raw := text[loc[2]:loc[3]]
	spin := spinSepRe.ReplaceAllString(raw, "")
	if len(spin) < 4 || len(spin) > 8 {
		return "", false
	}
	// A marker match inside an email address is digits from the
	// local part or domain, not a code.
	before := text[:loc[0]]
	after := text[loc[1]:]
	if emailTailRe.MatchString(before) || emailHeadRe.MatchString(after) {
		return "", false
	}
	return spin, true
}

func spinFallback(text string) (string, bool) {
	for _, loc := range standaloneNumRe.FindAllStringSubmatchIndex(text, -1) {
		number := text[loc[2]:loc[3]]
		before := contextBefore(text, loc[2], 20)
		after := contextAfter(text, loc[3], 20)

		switch {
		case emailTailRe.MatchString(before) || emailHeadRe.MatchString(after):
		case doiContextRe.MatchString(before) || doiSuffixRe.MatchString(after):
		case orcidContextRe.MatchString(before) || orcidSuffixRe.MatchString(after):
		case scopusContextRe.MatchString(before) || len(number) >= 8:
		case researcherCtxRe.MatchString(before) || researcherTailRe.MatchString(after):
		default:
			return number, true
		}
	}
	return "", false
}

func contextBefore(text string, pos, window int) string {
	start := pos - window
	if start < 0 {
		start = 0
	}
	return text[start:pos]
}

func contextAfter(text string, pos, window int) string {
	end := pos + window
	if end > len(text) {
		end = len(text)
	}
	return text[pos:end]
}

// StripORCIDPrefix removes a leading orcid.org URL from an already
// extracted identifier, tolerating values pasted with the full address.
func StripORCIDPrefix(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"https://", "http://", "www.", "orcid.org/"} {
		s = strings.TrimPrefix(s, prefix)
	}
	return s
}
