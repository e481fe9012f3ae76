// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm cleans text fragments handed over by the PDF/DOCX
// extractor: whitespace collapsing, line-wrap hyphenation repair,
// field-label stripping, and heuristic rejoining of words the extractor
// split apart. All functions are pure and idempotent.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

// FieldKind selects the label set stripped from the front of a field.
type FieldKind int

const (
	KindPlain FieldKind = iota
	KindAbstract
	KindFunding
	KindKeywords
)

var (
	softHyphenRe = regexp.MustCompile("­")

	// hyphenWrapRe matches a letter, a hyphen-like rune, a line break,
	// and a following lowercase letter: the signature of a word wrapped
	// across lines by the PDF layout.
	hyphenWrapRe = regexp.MustCompile(`(\pL)[-\x{2011}\x{2013}\x{2014}][ \t]*\n[ \t]*(\p{Ll})`)

	lineBreakRe  = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	wordPairRe   = regexp.MustCompile(`(\pL+) (\pL+)`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	abstractLabelRu = regexp.MustCompile(`(?i)^(Аннотация|Резюме|Аннот\.|Рез\.|Annotation|Abstract|Summary)\s*[.:]?\s*`)
	abstractLabelEn = regexp.MustCompile(`(?i)^(Annotation|Abstract|Summary|Resume|Résumé)\s*[.:]?\s*`)
	fundingLabel    = regexp.MustCompile(`(?i)^(Финансирование|Funding)\s*[.:]?\s*`)
	keywordsLabel   = regexp.MustCompile(`(?i)^(Ключевые слова|Keywords)\s*:?\s*`)
)

// Clean collapses tabs, line breaks and whitespace runs to single
// spaces and trims the result.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// HasCyrillic reports whether s contains at least one Cyrillic rune.
// Used to pick the language-specific label and repair tables.
func HasCyrillic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}

// Normalize cleans one extracted field value. The steps mirror what the
// review form does before accepting a selection: drop soft hyphens,
// undo line-wrap hyphenation, flatten line breaks, rejoin
// extractor-split words, and strip the field label. Label stripping
// comes after the repair stages: a label the layout broke apart must be
// whole before it can be recognized. Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string, kind FieldKind) string {
	if raw == "" {
		return ""
	}
	lang := langEN
	if HasCyrillic(raw) {
		lang = langRU
	}

	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = softHyphenRe.ReplaceAllString(s, "")
	s = hyphenWrapRe.ReplaceAllString(s, "$1$2")
	s = lineBreakRe.ReplaceAllString(s, " ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = repairBrokenWords(s, lang)
	s = stripLabel(s, kind, lang)
	return strings.TrimSpace(s)
}

// stripLabel removes a leading field label, repeatedly, so that a value
// already carrying a doubled label normalizes to a fixed point.
func stripLabel(s string, kind FieldKind, lang language) string {
	var re *regexp.Regexp
	switch kind {
	case KindAbstract:
		re = abstractLabelRu
		if lang == langEN {
			re = abstractLabelEn
		}
	case KindFunding:
		re = fundingLabel
	case KindKeywords:
		re = keywordsLabel
	default:
		return s
	}
	for {
		next := re.ReplaceAllString(strings.TrimSpace(s), "")
		if next == s {
			return s
		}
		s = next
	}
}

// repairBrokenWords rejoins two-token splits produced by the PDF text
// layer ("иссле дования", "documen tation"). A pair is joined when
// either token is two runes or shorter and not a stopword, when the
// first token is a known prefix, or when the second token is a known
// suffix. Best effort: the tables err on the side of leaving real word
// pairs alone. Runs to a fixed point so repeated application is a no-op.
func repairBrokenWords(s string, lang language) string {
	rules := repairTables[lang]
	for {
		next := joinPairsOnce(s, rules)
		if next == s {
			return s
		}
		s = next
	}
}

func joinPairsOnce(s string, rules repairRules) string {
	var b strings.Builder
	last := 0
	for _, m := range wordPairRe.FindAllStringSubmatchIndex(s, -1) {
		a := s[m[2]:m[3]]
		c := s[m[4]:m[5]]
		if !shouldJoin(a, c, rules) {
			continue
		}
		b.WriteString(s[last:m[2]])
		b.WriteString(a)
		b.WriteString(c)
		last = m[1]
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

func shouldJoin(a, c string, rules repairRules) bool {
	al := strings.ToLower(a)
	cl := strings.ToLower(c)
	if runeLen(al) <= 2 && !rules.stopwords[al] {
		return true
	}
	if runeLen(cl) <= 2 && !rules.stopwords[cl] {
		return true
	}
	if rules.prefixes[al] {
		return true
	}
	if rules.suffixes[cl] {
		return true
	}
	return false
}

func runeLen(s string) int {
	return len([]rune(s))
}
