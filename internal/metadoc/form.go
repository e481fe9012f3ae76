// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadoc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/Dexter626358/issuekit/internal/refs"
	"github.com/Dexter626358/issuekit/pkg/types"
)

// Form is the flat editable projection of one document: every value a
// reviewer can touch, as plain strings. List fields are joined for
// display and split back on apply.
type Form struct {
	TitleRUS    string `json:"title_rus"`
	TitleENG    string `json:"title_eng"`
	AbstractRUS string `json:"abstract_rus"`
	AbstractENG string `json:"abstract_eng"`

	KeywordsRUS   string `json:"keywords_rus"`
	KeywordsENG   string `json:"keywords_eng"`
	ReferencesRUS string `json:"references_rus"`
	ReferencesENG string `json:"references_eng"`

	UDK string `json:"udk"`
	BBK string `json:"bbk"`
	DOI string `json:"doi"`
	EDN string `json:"edn"`

	Pages   string `json:"pages"`
	ArtType string `json:"art_type"`

	DateReceived    string `json:"date_received"`
	DateAccepted    string `json:"date_accepted"`
	DatePublication string `json:"date_publication"`

	FundingRUS string `json:"funding_rus"`
	FundingENG string `json:"funding_eng"`

	ShortMessageRUS string `json:"short_message_rus"`
	ShortMessageENG string `json:"short_message_eng"`

	// Authors replaces the document's author list wholesale when
	// non-nil; partial author edits are not supported.
	Authors []types.Author `json:"authors,omitempty"`
}

// ToForm projects doc into its flat edit form.
func ToForm(doc *types.Document) Form {
	return Form{
		TitleRUS:        doc.ArtTitles.RUS,
		TitleENG:        doc.ArtTitles.ENG,
		AbstractRUS:     doc.Abstracts.RUS,
		AbstractENG:     doc.Abstracts.ENG,
		KeywordsRUS:     JoinKeywords(doc.Keywords.RUS),
		KeywordsENG:     JoinKeywords(doc.Keywords.ENG),
		ReferencesRUS:   JoinReferences(doc.References.RUS),
		ReferencesENG:   JoinReferences(doc.References.ENG),
		UDK:             doc.Codes.UDK,
		BBK:             doc.Codes.BBK,
		DOI:             doc.Codes.DOI,
		EDN:             doc.Codes.EDN,
		Pages:           doc.Pages,
		ArtType:         string(doc.ArtType),
		DateReceived:    doc.Dates.Received,
		DateAccepted:    doc.Dates.Accepted,
		DatePublication: doc.Dates.Publication,
		FundingRUS:      doc.Fundings.RUS,
		FundingENG:      doc.Fundings.ENG,
		ShortMessageRUS: doc.ShortMessage.RUS,
		ShortMessageENG: doc.ShortMessage.ENG,
		Authors:         doc.Authors,
	}
}

// ApplyForm merges f into doc. Updates are partial: an empty form
// value leaves the document value alone, so a reviewer editing one
// field cannot wipe the rest. The author list is the single exception
// and replaces wholesale when non-nil. Dates are normalized to
// YYYY-MM-DD on the way in.
func ApplyForm(doc *types.Document, f Form) error {
	setIfNonEmpty(&doc.ArtTitles.RUS, f.TitleRUS)
	setIfNonEmpty(&doc.ArtTitles.ENG, f.TitleENG)
	setIfNonEmpty(&doc.Abstracts.RUS, f.AbstractRUS)
	setIfNonEmpty(&doc.Abstracts.ENG, f.AbstractENG)

	if f.KeywordsRUS != "" {
		doc.Keywords.RUS = SplitKeywords(f.KeywordsRUS)
	}
	if f.KeywordsENG != "" {
		doc.Keywords.ENG = SplitKeywords(f.KeywordsENG)
	}
	if f.ReferencesRUS != "" {
		doc.References.RUS = SplitReferences(f.ReferencesRUS)
	}
	if f.ReferencesENG != "" {
		doc.References.ENG = SplitReferences(f.ReferencesENG)
	}

	setIfNonEmpty(&doc.Codes.UDK, f.UDK)
	setIfNonEmpty(&doc.Codes.BBK, f.BBK)
	setIfNonEmpty(&doc.Codes.DOI, f.DOI)
	setIfNonEmpty(&doc.Codes.EDN, f.EDN)
	setIfNonEmpty(&doc.Pages, f.Pages)

	if f.ArtType != "" {
		t := types.ArtType(strings.ToUpper(strings.TrimSpace(f.ArtType)))
		if !t.Valid() {
			return fmt.Errorf("unknown article type %q", f.ArtType)
		}
		doc.ArtType = t
	}

	for _, d := range []struct {
		dst *string
		src string
	}{
		{&doc.Dates.Received, f.DateReceived},
		{&doc.Dates.Accepted, f.DateAccepted},
		{&doc.Dates.Publication, f.DatePublication},
	} {
		if d.src == "" {
			continue
		}
		// Unparseable input passes through untouched; the reviewer sees
		// exactly what they typed.
		if norm, err := NormalizeDate(d.src); err == nil {
			*d.dst = norm
		} else {
			*d.dst = strings.TrimSpace(d.src)
		}
	}

	setIfNonEmpty(&doc.Fundings.RUS, f.FundingRUS)
	setIfNonEmpty(&doc.Fundings.ENG, f.FundingENG)
	setIfNonEmpty(&doc.ShortMessage.RUS, f.ShortMessageRUS)
	setIfNonEmpty(&doc.ShortMessage.ENG, f.ShortMessageENG)

	if f.Authors != nil {
		doc.Authors = f.Authors
	}
	return nil
}

// MarkProcessed flags doc as human-reviewed. Only the save action of
// the review flow calls this.
func MarkProcessed(doc *types.Document) {
	doc.ProcessedViaWeb = true
}

// EnsureAuthors seeds the editorial placeholder author on editorial
// pieces that carry no author records of their own.
func EnsureAuthors(doc *types.Document) {
	if doc.ArtType == types.ArtTypeEDI && len(doc.Authors) == 0 {
		doc.Authors = append(doc.Authors, types.EditorialAuthor())
	}
}

func setIfNonEmpty(dst *string, src string) {
	if s := strings.TrimSpace(src); s != "" {
		*dst = s
	}
}

// JoinKeywords renders a keyword list for editing.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, "; ")
}

// SplitKeywords parses an edited keyword string: split on ";", falling
// back to "," when no semicolon is present, falling back to the whole
// string as a single keyword.
func SplitKeywords(s string) []string {
	sep := ""
	switch {
	case strings.Contains(s, ";"):
		sep = ";"
	case strings.Contains(s, ","):
		sep = ","
	}
	if sep == "" {
		if kw := strings.TrimSpace(s); kw != "" {
			return []string{kw}
		}
		return []string{}
	}
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinReferences renders a reference list for editing, one entry per
// line.
func JoinReferences(references []string) string {
	return strings.Join(references, "\n")
}

// SplitReferences parses an edited reference string: one entry per
// line, with bare DOI/URL lines re-merged into the entry above. Entries
// are otherwise kept as typed; the numbering strip of refs.Process is a
// one-time ingest step and must not re-fire on citations that start
// with a year.
func SplitReferences(s string) []string {
	return refs.MergeTrailing(strings.Split(s, "\n"))
}

var (
	dayFirstRe  = regexp.MustCompile(`^(\d{1,2})[./](\d{1,2})[./](\d{4})$`)
	yearFirstRe = regexp.MustCompile(`^(\d{4})[-./](\d{1,2})[-./](\d{1,2})$`)
)

// NormalizeDate converts a reviewer-entered date to YYYY-MM-DD. The
// two shapes that cover nearly all real input, DD.MM.YYYY (also with
// slashes) and YYYY.MM.DD, are handled directly; anything else goes
// through dateparse.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if m := dayFirstRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1])), nil
	}
	if m := yearFirstRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], pad2(m[2]), pad2(m[3])), nil
	}
	t, err := dateparse.ParseStrict(s)
	if err != nil {
		return "", fmt.Errorf("unrecognized date %q: %w", s, err)
	}
	return t.Format("2006-01-02"), nil
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
