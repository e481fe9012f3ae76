// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"regexp"
	"strings"
)

// DefaultMinRepeats is the repeat threshold above which a line is
// treated as a running header or footer.
const DefaultMinRepeats = 3

// wrapJoinRe matches a hyphen at a line end preceded by a word of four
// or more letters: shorter fragments are usually genuine compounds, not
// wrapped words.
var wrapJoinRe = regexp.MustCompile(`(\pL{4,})-\n\s*(\p{Ll})`)

// StripRepeatedLines removes running headers and footers from a page of
// extracted text: any line repeated minRepeats times or more (and at
// least three characters long) is dropped, together with lines matching
// the caller-supplied patterns. Wrapped words are rejoined and blank
// runs collapsed afterwards.
func StripRepeatedLines(text string, minRepeats int, extra []*regexp.Regexp) string {
	if text == "" {
		return ""
	}
	if minRepeats <= 0 {
		minRepeats = DefaultMinRepeats
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	counts := make(map[string]int)
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			counts[t]++
		}
	}

	drop := make(map[string]bool)
	for line, n := range counts {
		if n >= minRepeats && runeLen(line) >= 3 {
			drop[line] = true
		}
		for _, re := range extra {
			if re.MatchString(line) {
				drop[line] = true
			}
		}
	}

	kept := lines[:0]
	for _, line := range lines {
		if !drop[strings.TrimSpace(line)] {
			kept = append(kept, line)
		}
	}
	out := strings.Join(kept, "\n")

	out = wrapJoinRe.ReplaceAllString(out, "$1$2")
	out = blankRunRe.ReplaceAllString(out, "\n\n")
	out = spaceRunRe.ReplaceAllString(out, " ")

	trimmed := strings.Split(out, "\n")
	for i, line := range trimmed {
		trimmed[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(trimmed, "\n"))
}
