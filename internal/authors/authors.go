// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authors assembles and finalizes the author records of one
// article: deciding who the corresponding author is, mirroring contact
// data between the RUS and ENG sub-records, and spreading shared
// affiliations.
package authors

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Dexter626358/issuekit/internal/fields"
	"github.com/Dexter626358/issuekit/pkg/types"
)

// correspondenceMarkers are the textual cues, per language, that
// explicitly name a corresponding author.
var correspondenceMarkers = []string{
	// English
	"corresponding author",
	"author for correspondence",
	"correspondence to",
	"correspondence should be addressed to",
	"for correspondence",
	// Russian
	"автор для переписки",
	"для переписки",
	"корреспондирующий автор",
	"для корреспонденции",
	"автор-корреспондент",
}

// symbolMarkers flag a corresponding author when adjacent to a name.
var symbolMarkers = []string{"*", "†", "‡"}

var whitespaceRe = regexp.MustCompile(`\s+`)

// rule is one step of the correspondence cascade: applies reports
// whether the rule fires for the given document, act mutates the
// author list accordingly.
type rule struct {
	name    string
	applies func(authors []types.Author, text string) bool
	act     func(authors []types.Author, text string)
}

// cascade is evaluated in order; the first rule that fires decides
// correspondence for every author in one pass.
var cascade = []rule{
	{
		name:    "textual marker",
		applies: textualMarkerApplies,
		act:     textualMarkerAct,
	},
	{
		name:    "symbol marker",
		applies: symbolMarkerApplies,
		act:     symbolMarkerAct,
	},
	{
		name:    "single email in document",
		applies: singleEmailApplies,
		act:     singleEmailAct,
	},
	{
		name:    "unique author email",
		applies: uniqueEmailApplies,
		act:     uniqueEmailAct,
	},
	{
		name:    "default",
		applies: func([]types.Author, string) bool { return true },
		act: func(authors []types.Author, _ string) {
			for i := range authors {
				setCorrespondence(&authors[i], false)
			}
		},
	},
}

// DetermineCorrespondence marks the corresponding author(s) of the
// document by running the rule cascade against the full article text.
// Exactly one rule fires; it assigns an explicit true/false to every
// author. The input slice is mutated and returned.
func DetermineCorrespondence(authors []types.Author, articleText string) []types.Author {
	if len(authors) == 0 {
		return authors
	}
	text := strings.ToLower(whitespaceRe.ReplaceAllString(articleText, " "))
	for _, r := range cascade {
		if r.applies(authors, text) {
			r.act(authors, text)
			break
		}
	}
	return authors
}

// MirrorEmail copies a non-empty email across the RUS/ENG sub-records
// of each author so that both language variants carry the same contact.
func MirrorEmail(authors []types.Author) {
	for i := range authors {
		rus := &authors[i].IndividInfo.RUS
		eng := &authors[i].IndividInfo.ENG
		switch {
		case rus.Email != "" && eng.Email == "":
			eng.Email = rus.Email
		case eng.Email != "" && rus.Email == "":
			rus.Email = eng.Email
		}
	}
}

// MirrorCodes makes the author identifier codes identical across the
// RUS and ENG sub-records; codes are language-independent. For each
// code the RUS value wins when both are set.
func MirrorCodes(authors []types.Author) {
	for i := range authors {
		rus := &authors[i].IndividInfo.RUS.Codes
		eng := &authors[i].IndividInfo.ENG.Codes
		merged := types.AuthorCodes{
			SPIN:         firstNonEmpty(rus.SPIN, eng.SPIN),
			ORCID:        fields.StripORCIDPrefix(firstNonEmpty(rus.ORCID, eng.ORCID)),
			ScopusID:     firstNonEmpty(rus.ScopusID, eng.ScopusID),
			ResearcherID: firstNonEmpty(rus.ResearcherID, eng.ResearcherID),
		}
		*rus = merged
		*eng = merged
	}
}

// Renumber rewrites the num field to the 1-based listed order.
func Renumber(authors []types.Author) {
	for i := range authors {
		authors[i].Num = strconv.Itoa(i + 1)
	}
}

// --- cascade rules ---

func textualMarkerApplies(authors []types.Author, text string) bool {
	for i := range authors {
		if markerNearAuthor(authors[i], text) {
			return true
		}
	}
	return false
}

func textualMarkerAct(authors []types.Author, text string) {
	for i := range authors {
		setCorrespondence(&authors[i], markerNearAuthor(authors[i], text))
	}
}

// markerNearAuthor reports whether a correspondence phrase is followed
// by the author's surname or email within a short window, as in
// "correspondence to Petrov" or "для переписки: petrov@mail.ru".
func markerNearAuthor(a types.Author, text string) bool {
	needles := surnames(a)
	if email := strings.ToLower(a.Email()); email != "" {
		needles = append(needles, email)
	}
	for _, marker := range correspondenceMarkers {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		window := afterWindow(text, idx+len(marker), 120)
		for _, needle := range needles {
			if strings.Contains(window, needle) {
				return true
			}
		}
	}
	return false
}

func symbolMarkerApplies(authors []types.Author, text string) bool {
	for i := range authors {
		if symbolNearAuthor(authors[i], text) {
			return true
		}
	}
	return false
}

func symbolMarkerAct(authors []types.Author, text string) {
	for i := range authors {
		setCorrespondence(&authors[i], symbolNearAuthor(authors[i], text))
	}
}

// symbolNearAuthor reports whether a marker symbol directly borders the
// author's surname.
func symbolNearAuthor(a types.Author, text string) bool {
	for _, surname := range surnames(a) {
		idx := strings.Index(text, surname)
		if idx < 0 {
			continue
		}
		before := ""
		if idx > 0 {
			before = text[idx-1 : idx]
		}
		after := ""
		if end := idx + len(surname); end < len(text) {
			after = text[end : end+1]
		}
		for _, sym := range symbolMarkers {
			if before == sym || after == sym {
				return true
			}
		}
	}
	return false
}

func singleEmailApplies(authors []types.Author, text string) bool {
	return len(documentEmails(authors, text)) == 1
}

// singleEmailAct implements the single-email rule: the first listed
// author corresponds, and the one known address is copied to every
// author so each record keeps a contact.
func singleEmailAct(authors []types.Author, text string) {
	emails := documentEmails(authors, text)
	email := emails[0]
	for i := range authors {
		setCorrespondence(&authors[i], i == 0)
		authors[i].IndividInfo.RUS.Email = email
		authors[i].IndividInfo.ENG.Email = email
	}
}

func uniqueEmailApplies(authors []types.Author, _ string) bool {
	return len(authors) > 1 && countWithEmail(authors) == 1
}

func uniqueEmailAct(authors []types.Author, _ string) {
	for i := range authors {
		setCorrespondence(&authors[i], authors[i].Email() != "")
	}
}

// --- helpers ---

// documentEmails collects the distinct emails known to the document:
// those on author records plus any found in the article text.
func documentEmails(authors []types.Author, text string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(email string) {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" && !seen[email] {
			seen[email] = true
			out = append(out, email)
		}
	}
	for i := range authors {
		add(authors[i].Email())
	}
	for _, email := range fields.Emails(text) {
		add(email)
	}
	return out
}

func countWithEmail(authors []types.Author) int {
	n := 0
	for i := range authors {
		if authors[i].Email() != "" {
			n++
		}
	}
	return n
}

func surnames(a types.Author) []string {
	var out []string
	for _, s := range []string{a.IndividInfo.RUS.Surname, a.IndividInfo.ENG.Surname} {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func afterWindow(text string, idx, window int) string {
	end := idx + window
	if end > len(text) {
		end = len(text)
	}
	return text[idx:end]
}

func setCorrespondence(a *types.Author, v bool) {
	a.Correspondence = &v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
